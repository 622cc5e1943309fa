package main

import (
	"encoding/json"
	"errors"
	"flag"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"shell/internal/browser/keys"
	"shell/internal/config"
)

type ConfigCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig configLoader
}

const (
	configFormatJSON = "json"
	configFormatTOML = "toml"
)

type configOutput struct {
	ConfigPath      string            `json:"config_path,omitempty" toml:"config_path,omitempty"`
	StoragePath     string            `json:"storage_path,omitempty" toml:"storage_path,omitempty"`
	KeybindingsPath string            `json:"keybindings_path,omitempty" toml:"keybindings_path,omitempty"`
	LogPath         string            `json:"log_path,omitempty" toml:"log_path,omitempty"`
	Logging         loggingOutput     `json:"logging" toml:"logging"`
	UI              uiOutput          `json:"ui" toml:"ui"`
	NewTab          newTabOutput      `json:"newtab" toml:"newtab"`
	Keybindings     map[string]string `json:"keybindings,omitempty" toml:"keybindings,omitempty"`
}

type loggingOutput struct {
	Level string `json:"level" toml:"level"`
}

type uiOutput struct {
	SidebarOpen bool `json:"sidebar_open" toml:"sidebar_open"`
	MaxTabs     int  `json:"max_tabs" toml:"max_tabs"`
}

type newTabOutput struct {
	Wallpaper string              `json:"wallpaper" toml:"wallpaper"`
	Tiles     []config.TileConfig `json:"tiles" toml:"tiles"`
}

func NewConfigCommand(stdout, stderr io.Writer, loadConfig configLoader) *ConfigCommand {
	return &ConfigCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
	}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	defaults := fs.Bool("default", false, "print default config values")
	format := fs.String("format", configFormatJSON, "output format: json|toml")
	withKeys := fs.Bool("keys", false, "include the effective keybindings")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resolvedFormat, err := resolveConfigFormat(*format)
	if err != nil {
		return err
	}
	cfg := config.Default()
	if !*defaults {
		cfg, err = c.loadConfig()
		if err != nil {
			return err
		}
	}
	payload, err := buildConfigOutput(cfg, *defaults, *withKeys)
	if err != nil {
		return err
	}
	return writeConfigOutput(c.stdout, resolvedFormat, payload)
}

func buildConfigOutput(cfg config.Config, defaults, withKeys bool) (configOutput, error) {
	out := configOutput{
		Logging: loggingOutput{Level: cfg.LogLevel()},
		UI: uiOutput{
			SidebarOpen: cfg.SidebarOpen(),
			MaxTabs:     cfg.MaxTabs(),
		},
		NewTab: newTabOutput{
			Wallpaper: cfg.Wallpaper(),
			Tiles:     cfg.Tiles(),
		},
	}
	var err error
	if out.ConfigPath, err = config.ConfigPath(); err != nil {
		return configOutput{}, err
	}
	if out.StoragePath, err = cfg.ResolveStoragePath(); err != nil {
		return configOutput{}, err
	}
	if out.KeybindingsPath, err = cfg.ResolveKeybindingsPath(); err != nil {
		return configOutput{}, err
	}
	if out.LogPath, err = config.LogPath(); err != nil {
		return configOutput{}, err
	}
	if withKeys {
		keyMap := keys.Default()
		if !defaults {
			keyMap, err = keys.Load(out.KeybindingsPath)
			if err != nil {
				return configOutput{}, err
			}
		}
		out.Keybindings = map[string]string{}
		for _, command := range keys.Commands() {
			out.Keybindings[command] = keyMap.KeyFor(command)
		}
	}
	return out, nil
}

func writeConfigOutput(out io.Writer, format string, payload any) error {
	switch format {
	case configFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case configFormatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = out.Write(data)
		return err
	default:
		return errors.New("unsupported format")
	}
}

func resolveConfigFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", configFormatJSON:
		return configFormatJSON, nil
	case configFormatTOML:
		return configFormatTOML, nil
	default:
		return "", errors.New("invalid format: must be json or toml")
	}
}

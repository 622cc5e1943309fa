package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultLogLevel  = "info"
	defaultMaxTabs   = 12
	defaultWallpaper = "dark"
)

var defaultTiles = []TileConfig{
	{Title: "Go", URL: "https://go.dev"},
	{Title: "Packages", URL: "https://pkg.go.dev"},
	{Title: "Charm", URL: "https://charm.sh"},
	{Title: "Mozilla", URL: "https://www.mozilla.org"},
	{Title: "Wikipedia", URL: "https://www.wikipedia.org"},
	{Title: "Hacker News", URL: "https://news.ycombinator.com"},
}

type Config struct {
	Logging LoggingConfig `toml:"logging"`
	UI      UIConfig      `toml:"ui"`
	NewTab  NewTabConfig  `toml:"newtab"`
	Storage StorageConfig `toml:"storage"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

type UIConfig struct {
	SidebarOpen     *bool  `toml:"sidebar_open"`
	MaxTabs         int    `toml:"max_tabs"`
	KeybindingsPath string `toml:"keybindings_path"`
}

type NewTabConfig struct {
	Wallpaper string       `toml:"wallpaper"`
	Tiles     []TileConfig `toml:"tiles"`
}

type TileConfig struct {
	Title string `toml:"title" json:"title"`
	URL   string `toml:"url" json:"url"`
}

type StorageConfig struct {
	Path string `toml:"path"`
}

func Default() Config {
	open := true
	return Config{
		Logging: LoggingConfig{Level: defaultLogLevel},
		UI: UIConfig{
			SidebarOpen: &open,
			MaxTabs:     defaultMaxTabs,
		},
		NewTab: NewTabConfig{
			Wallpaper: defaultWallpaper,
			Tiles:     append([]TileConfig{}, defaultTiles...),
		},
	}
}

func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFromPath(path)
}

func LoadFromPath(path string) (Config, error) {
	cfg := Default()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return defaultLogLevel
	}
	return level
}

func (c Config) SidebarOpen() bool {
	if c.UI.SidebarOpen == nil {
		return true
	}
	return *c.UI.SidebarOpen
}

func (c Config) MaxTabs() int {
	if c.UI.MaxTabs <= 0 {
		return defaultMaxTabs
	}
	return c.UI.MaxTabs
}

func (c Config) Wallpaper() string {
	key := strings.TrimSpace(c.NewTab.Wallpaper)
	if key == "" {
		return defaultWallpaper
	}
	return key
}

// Tiles returns the configured default tiles with blank and duplicate
// URLs removed.
func (c Config) Tiles() []TileConfig {
	out := make([]TileConfig, 0, len(c.NewTab.Tiles))
	seen := map[string]struct{}{}
	for _, tile := range c.NewTab.Tiles {
		url := strings.TrimSpace(tile.URL)
		if url == "" {
			continue
		}
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		title := strings.TrimSpace(tile.Title)
		if title == "" {
			title = url
		}
		out = append(out, TileConfig{Title: title, URL: url})
	}
	return out
}

func (c Config) ResolveKeybindingsPath() (string, error) {
	path := strings.TrimSpace(c.UI.KeybindingsPath)
	if path == "" {
		return KeybindingsPath()
	}
	return resolveConfigPath(path)
}

func (c Config) ResolveStoragePath() (string, error) {
	path := strings.TrimSpace(c.Storage.Path)
	if path == "" {
		return StoragePath()
	}
	return resolveConfigPath(path)
}

// Encode renders the effective configuration as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func resolveConfigPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is required")
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, path), nil
}

package config

import (
	"os"
	"path/filepath"
)

const appDirName = ".browsershell"

// DataDir returns the base data directory for the browser shell.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

func dataPath(name string) (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, name), nil
}

// ConfigPath returns the path to the TOML configuration file.
func ConfigPath() (string, error) {
	return dataPath("config.toml")
}

// KeybindingsPath returns the default path of the keybinding overrides.
func KeybindingsPath() (string, error) {
	return dataPath("keybindings.json")
}

// StoragePath returns the default path of the bbolt database.
func StoragePath() (string, error) {
	return dataPath("shell.db")
}

// LogPath returns the path the UI writes its log to.
func LogPath() (string, error) {
	return dataPath("ui.log")
}

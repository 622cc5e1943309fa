package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestPaths(t *testing.T) {
	t.Setenv("HOME", filepath.Join(t.TempDir(), "home"))

	dataDir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if !strings.HasSuffix(dataDir, ".browsershell") {
		t.Fatalf("unexpected data dir: %s", dataDir)
	}

	cases := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{name: "config", fn: ConfigPath, want: "config.toml"},
		{name: "keybindings", fn: KeybindingsPath, want: "keybindings.json"},
		{name: "storage", fn: StoragePath, want: "shell.db"},
		{name: "log", fn: LogPath, want: "ui.log"},
	}
	for _, tc := range cases {
		path, err := tc.fn()
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if path != filepath.Join(dataDir, tc.want) {
			t.Fatalf("%s: unexpected path %s", tc.name, path)
		}
	}
}

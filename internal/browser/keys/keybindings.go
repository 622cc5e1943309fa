// Package keys resolves user keybinding overrides for browser commands.
package keys

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"strings"
)

const (
	CommandQuit            = "ui.quit"
	CommandToggleSidebar   = "ui.toggleSidebar"
	CommandNewTab          = "ui.newTab"
	CommandCloseTab        = "ui.closeTab"
	CommandNextTab         = "ui.nextTab"
	CommandPrevTab         = "ui.prevTab"
	CommandMoveTabUp       = "ui.moveTabUp"
	CommandMoveTabDown     = "ui.moveTabDown"
	CommandFocusLocation   = "ui.focusLocation"
	CommandCopyURL         = "ui.copyURL"
	CommandPinTab          = "ui.pinTab"
	CommandToggleTile      = "ui.toggleTile"
	CommandShowHome        = "ui.showHome"
	CommandCycleWallpaper  = "ui.cycleWallpaper"
	CommandLocationSubmit  = "ui.locationSubmit"
	CommandLocationCancel  = "ui.locationCancel"
	CommandCloseTabLegacy  = "ui.killTab" // legacy alias; normalized to ui.closeTab
	CommandToggleBookmarks = "ui.toggleBookmark" // legacy alias; normalized to ui.toggleTile
)

var defaultKeyByCommand = map[string]string{
	CommandQuit:           "ctrl+q",
	CommandToggleSidebar:  "ctrl+b",
	CommandNewTab:         "ctrl+t",
	CommandCloseTab:       "ctrl+w",
	CommandNextTab:        "]",
	CommandPrevTab:        "[",
	CommandMoveTabUp:      "alt+up",
	CommandMoveTabDown:    "alt+down",
	CommandFocusLocation:  "ctrl+l",
	CommandCopyURL:        "ctrl+y",
	CommandPinTab:         "ctrl+p",
	CommandToggleTile:     "ctrl+d",
	CommandShowHome:       "alt+h",
	CommandCycleWallpaper: "w",
	CommandLocationSubmit: "enter",
	CommandLocationCancel: "esc",
}

var commandHelp = map[string]string{
	CommandQuit:           "quit",
	CommandToggleSidebar:  "toggle sidebar",
	CommandNewTab:         "new tab",
	CommandCloseTab:       "close tab",
	CommandNextTab:        "next tab",
	CommandPrevTab:        "previous tab",
	CommandMoveTabUp:      "move tab up",
	CommandMoveTabDown:    "move tab down",
	CommandFocusLocation:  "edit location",
	CommandCopyURL:        "copy url",
	CommandPinTab:         "pin tab",
	CommandToggleTile:     "add/remove tile",
	CommandShowHome:       "new tab page",
	CommandCycleWallpaper: "next wallpaper",
	CommandLocationSubmit: "go",
	CommandLocationCancel: "cancel",
}

// Map is an immutable command to key table.
type Map struct {
	byCommand map[string]string
}

type entry struct {
	Command string `json:"command"`
	Key     string `json:"key"`
}

func Default() Map {
	return New(nil)
}

func New(overrides map[string]string) Map {
	byCommand := make(map[string]string, len(defaultKeyByCommand))
	for command, key := range defaultKeyByCommand {
		byCommand[command] = key
	}
	for command, key := range overrides {
		command = normalizeCommand(command)
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, ok := defaultKeyByCommand[command]; !ok {
			continue
		}
		byCommand[command] = key
	}
	return Map{byCommand: byCommand}
}

// Load reads overrides from path. A missing or empty file yields the
// defaults.
func Load(path string) (Map, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Map{}, err
	}
	overrides, err := parseOverrides(data)
	if err != nil {
		return Map{}, err
	}
	return New(overrides), nil
}

// IsZero reports whether m was never built by Default, New or Load.
func (m Map) IsZero() bool {
	return m.byCommand == nil
}

func (m Map) KeyFor(command string) string {
	command = normalizeCommand(command)
	if key := strings.TrimSpace(m.byCommand[command]); key != "" {
		return key
	}
	return defaultKeyByCommand[command]
}

// Command resolves a pressed key to its command.
func (m Map) Command(key string) (string, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	for _, command := range Commands() {
		if m.KeyFor(command) == key {
			return command, true
		}
	}
	return "", false
}

func Help(command string) string {
	return commandHelp[normalizeCommand(command)]
}

// Commands lists every known command in a stable order.
func Commands() []string {
	out := make([]string, 0, len(defaultKeyByCommand))
	for command := range defaultKeyByCommand {
		out = append(out, command)
	}
	sort.Strings(out)
	return out
}

func parseOverrides(data []byte) (map[string]string, error) {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 {
		return nil, nil
	}
	if data[0] == '[' {
		var entries []entry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
		out := make(map[string]string, len(entries))
		for _, e := range entries {
			out[e.Command] = e.Key
		}
		return out, nil
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func normalizeCommand(command string) string {
	command = strings.TrimSpace(command)
	switch command {
	case CommandCloseTabLegacy:
		return CommandCloseTab
	case CommandToggleBookmarks:
		return CommandToggleTile
	default:
		return command
	}
}

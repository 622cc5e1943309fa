// Package browser is the root component. It owns the tab deck and wires the
// sidebar, the new tab page and the location bar around it.
package browser

import (
	tea "charm.land/bubbletea/v2"

	"shell/internal/browser/keys"
	"shell/internal/browser/location"
	"shell/internal/browser/newtab"
	"shell/internal/browser/sidebar"
	"shell/internal/browser/sidebar/tabs"
	"shell/internal/types"
)

type Model struct {
	Sidebar  sidebar.Model
	Tabs     tabs.Model
	NewTab   newtab.Model
	Location location.Model
	Keys     keys.Map
	Width    int
	Height   int
	Status   string
	MaxTabs  int
	// Restored is set once the saved session has been applied. Tab changes
	// before that are not persisted so they cannot clobber the saved one.
	Restored bool
	Quit     bool
}

type Action interface {
	isBrowserAction()
}

type Sidebar struct{ Source sidebar.Action }

type Tabs struct{ Source tabs.Action }

type NewTab struct{ Source newtab.Action }

type Location struct{ Source location.Action }

// Open asks for a new tab showing URL.
type Open struct{ URL string }

// Opened carries the id generated for a tab requested by Open.
type Opened struct {
	ID  string
	URL string
}

// CreateTab shows the new tab page with the location bar focused.
type CreateTab struct{}

type Resize struct {
	Width  int
	Height int
}

type Command struct{ Name string }

type SessionLoaded struct {
	Session     types.TabSession
	SidebarOpen *bool
	Err         error
}

type SessionSaved struct{ Err error }

type PreferenceSaved struct{ Err error }

// Key is a raw key press for the focused location bar.
type Key struct{ Msg tea.KeyPressMsg }

func (Sidebar) isBrowserAction()         {}
func (Tabs) isBrowserAction()            {}
func (NewTab) isBrowserAction()          {}
func (Location) isBrowserAction()        {}
func (Open) isBrowserAction()            {}
func (Opened) isBrowserAction()          {}
func (CreateTab) isBrowserAction()       {}
func (Resize) isBrowserAction()          {}
func (Command) isBrowserAction()         {}
func (SessionLoaded) isBrowserAction()   {}
func (SessionSaved) isBrowserAction()    {}
func (PreferenceSaved) isBrowserAction() {}
func (Key) isBrowserAction()             {}

// SidebarAction tags sidebar actions. Tab creation and tab list actions
// pass through to the browser, which owns both.
func SidebarAction(action sidebar.Action) Action {
	switch action := action.(type) {
	case sidebar.CreateTab:
		return CreateTab{}
	case sidebar.Tabs:
		return Tabs{Source: action.Source}
	default:
		return Sidebar{Source: action}
	}
}

func TabsAction(action tabs.Action) Action {
	return Tabs{Source: action}
}

// NewTabAction tags new tab page actions; a tile click becomes Open.
func NewTabAction(action newtab.Action) Action {
	if open, ok := action.(newtab.Open); ok {
		return Open{URL: open.URL}
	}
	return NewTab{Source: action}
}

func LocationAction(action location.Action) Action {
	return Location{Source: action}
}

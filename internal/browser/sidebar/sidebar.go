// Package sidebar lays out the toolbar above the tab list and decides whether
// either is visible.
package sidebar

import (
	"fmt"

	"shell/internal/browser/keys"
	"shell/internal/browser/sidebar/tabs"
	"shell/internal/browser/sidebar/toolbar"
	"shell/internal/browser/theme"
	"shell/internal/cursor"
	"shell/internal/reflex"
	"shell/internal/unknown"
)

type Model struct {
	IsOpen  bool
	Toolbar toolbar.Model
}

type Action interface {
	isSidebarAction()
}

type Open struct{}

type Close struct{}

type Toggle struct{}

type Toolbar struct {
	Source toolbar.Action
}

// CreateTab and Tabs pass through the sidebar untouched; the browser owns
// both the tab deck and tab creation.
type CreateTab struct{}

type Tabs struct {
	Source tabs.Action
}

func (Open) isSidebarAction()      {}
func (Close) isSidebarAction()     {}
func (Toggle) isSidebarAction()    {}
func (Toolbar) isSidebarAction()   {}
func (CreateTab) isSidebarAction() {}
func (Tabs) isSidebarAction()      {}

func ToolbarAction(action toolbar.Action) Action {
	if _, ok := action.(toolbar.CreateTab); ok {
		return CreateTab{}
	}
	return Toolbar{Source: action}
}

func TabsAction(action tabs.Action) Action {
	return Tabs{Source: action}
}

var toolbarCursor = cursor.Cursor[Model, toolbar.Model, Action, toolbar.Action]{
	Get:    func(m Model) toolbar.Model { return m.Toolbar },
	Set:    func(m Model, t toolbar.Model) Model { m.Toolbar = t; return m },
	Update: toolbar.Update,
	Tag:    ToolbarAction,
}

func Init(open, newTabDisabled bool) Model {
	return Model{IsOpen: open, Toolbar: toolbar.Init(newTabDisabled)}
}

func Update(model Model, action Action) (Model, reflex.Effects[Action]) {
	switch action := action.(type) {
	case Open:
		model.IsOpen = true
		return model, reflex.None[Action]()
	case Close:
		model.IsOpen = false
		return model, reflex.None[Action]()
	case Toggle:
		model.IsOpen = !model.IsOpen
		return model, reflex.None[Action]()
	case Toolbar:
		return toolbarCursor.Apply(model, action.Source)
	default:
		return unknown.Update(model, action)
	}
}

type Context struct {
	Keys    keys.Map
	MaxTabs int
}

type Props struct {
	Model   Model
	Tabs    tabs.Model
	Context Context
}

func Render(props Props, address reflex.Address[Action]) reflex.Node {
	width := theme.SidebarWidth - 2
	header := fmt.Sprintf("Tabs %d", props.Tabs.Len())
	if props.Context.MaxTabs > 0 {
		header = fmt.Sprintf("Tabs %d/%d", props.Tabs.Len(), props.Context.MaxTabs)
	}
	return reflex.Column(
		reflex.Text(header).Styled(theme.Header),
		toolbar.View(props.Model.Toolbar, reflex.Forward(address, ToolbarAction), props.Context.Keys),
		reflex.Text(""),
		tabs.View(props.Tabs, reflex.Forward(address, TabsAction), tabs.Context{Width: width, Keys: props.Context.Keys}),
	).Styled(theme.Sidebar).Hide(!props.Model.IsOpen)
}

// View renders the sidebar. A closed sidebar renders nothing and binds no
// keys, so tab shortcuts are only live while the list is visible.
func View(model Model, deck tabs.Model, address reflex.Address[Action], context Context) reflex.Node {
	return reflex.Thunk("Browser/Sidebar", Render, Props{Model: model, Tabs: deck, Context: context}, address)
}

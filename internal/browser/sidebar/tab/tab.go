// Package tab renders one entry of the sidebar tab list.
package tab

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"shell/internal/browser/keys"
	"shell/internal/browser/navigator"
	"shell/internal/browser/theme"
	"shell/internal/reflex"
	"shell/internal/unknown"
)

const (
	pinMarker      = "▲"
	selectedMarker = "●"
	maxShortcut    = 9
)

type Action interface {
	isTabAction()
}

type Close struct{}

type Activate struct{}

type Navigator struct {
	Source navigator.Action
}

func (Close) isTabAction()     {}
func (Activate) isTabAction()  {}
func (Navigator) isTabAction() {}

func NavigatorAction(action navigator.Action) Action {
	return Navigator{Source: action}
}

// Update handles the actions that reach a tab's own card. Close and
// Activate are re-addressed by the tab list before they get here.
func Update(model navigator.Model, action Action) (navigator.Model, reflex.Effects[Action]) {
	switch action := action.(type) {
	case Navigator:
		next, fx := navigator.Update(model, action.Source)
		return next, reflex.Map(fx, NavigatorAction)
	default:
		return unknown.Update(model, action)
	}
}

// Context carries what a tab needs from its list besides its card.
type Context struct {
	Position int
	Selected bool
	Width    int
	Keys     keys.Map
}

type Props struct {
	Card    navigator.Model
	Context Context
}

func View(props Props, address reflex.Address[Action]) reflex.Node {
	card, ctx := props.Card, props.Context
	width := ctx.Width
	if width <= 0 {
		width = theme.SidebarWidth
	}
	marker := " "
	switch {
	case ctx.Selected:
		marker = selectedMarker
	case card.Pinned:
		marker = pinMarker
	}
	label := card.Title
	if label == "" {
		label = card.URL
	}
	prefix := fmt.Sprintf("%s ", marker)
	if ctx.Position > 0 && ctx.Position <= maxShortcut {
		prefix = fmt.Sprintf("%s %d ", marker, ctx.Position)
	}
	line := ansi.Truncate(prefix+label, width, "…")

	style := theme.Tab
	switch {
	case ctx.Selected:
		style = theme.TabSelected.Width(width)
	case card.Pinned:
		style = theme.TabPinned
	}
	node := reflex.Text(line).Styled(style)
	if ctx.Position > 0 && ctx.Position <= maxShortcut {
		node = reflex.On(node, fmt.Sprintf("alt+%d", ctx.Position), "switch to tab", address, Action(Activate{}))
	}
	if !ctx.Selected {
		return node
	}
	node = reflex.On(node, ctx.Keys.KeyFor(keys.CommandCloseTab), keys.Help(keys.CommandCloseTab), address, Action(Close{}))
	node = reflex.On(node, ctx.Keys.KeyFor(keys.CommandCopyURL), keys.Help(keys.CommandCopyURL), address, NavigatorAction(navigator.CopyURL{}))
	pin := navigator.Action(navigator.Pin{})
	if card.Pinned {
		pin = navigator.Unpin{}
	}
	return reflex.On(node, ctx.Keys.KeyFor(keys.CommandPinTab), keys.Help(keys.CommandPinTab), address, NavigatorAction(pin))
}

// Package toolbar holds the sidebar's new-tab button.
package toolbar

import (
	"fmt"

	"shell/internal/browser/keys"
	"shell/internal/browser/theme"
	"shell/internal/control"
	"shell/internal/cursor"
	"shell/internal/reflex"
	"shell/internal/unknown"
)

type Model struct {
	NewTab control.Model
}

type Action interface {
	isToolbarAction()
}

// CreateTab is observed by the browser; the toolbar itself never handles it.
type CreateTab struct{}

type Button struct {
	Source control.Action
}

func (CreateTab) isToolbarAction() {}
func (Button) isToolbarAction()    {}

func ButtonAction(action control.Action) Action {
	return Button{Source: action}
}

var newTab = cursor.Cursor[Model, control.Model, Action, control.Action]{
	Get:    func(m Model) control.Model { return m.NewTab },
	Set:    func(m Model, c control.Model) Model { m.NewTab = c; return m },
	Update: control.Update[control.Model],
	Tag:    ButtonAction,
}

func Init(disabled bool) Model {
	return Model{NewTab: control.Model{IsDisabled: disabled}}
}

func Update(model Model, action Action) (Model, reflex.Effects[Action]) {
	switch action := action.(type) {
	case Button:
		return newTab.Apply(model, action.Source)
	default:
		return unknown.Update(model, action)
	}
}

// Accepts reports whether action should reach the browser. A disabled
// new-tab button swallows CreateTab.
func Accepts(model Model, action Action) bool {
	if _, ok := action.(CreateTab); ok {
		return !model.NewTab.Disabled()
	}
	return true
}

type Props struct {
	Model Model
	Keys  keys.Map
}

func Render(props Props, address reflex.Address[Action]) reflex.Node {
	key := props.Keys.KeyFor(keys.CommandNewTab)
	label := fmt.Sprintf("+ new tab  %s", key)
	if props.Model.NewTab.Disabled() {
		return reflex.Text(label).Styled(theme.ButtonOff)
	}
	return reflex.On(reflex.Text(label).Styled(theme.Button), key, keys.Help(keys.CommandNewTab), address, Action(CreateTab{}))
}

func View(model Model, address reflex.Address[Action], km keys.Map) reflex.Node {
	return reflex.Thunk("Browser/Sidebar/Toolbar", Render, Props{Model: model, Keys: km}, address)
}

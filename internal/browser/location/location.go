// Package location is the address bar. It wraps a bubbles text input and
// feeds the input's own commands back through effects.
package location

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"shell/internal/browser/theme"
	"shell/internal/reflex"
	"shell/internal/unknown"
)

const placeholder = "search or enter address"

type Model struct {
	Input   textinput.Model
	Focused bool
}

type Action interface {
	isLocationAction()
}

// Focus starts editing with Value in the input.
type Focus struct{ Value string }

type Blur struct{}

// Input carries a message for the text input, usually a key press or a
// cursor blink.
type Input struct{ Msg tea.Msg }

func (Focus) isLocationAction() {}
func (Blur) isLocationAction()  {}
func (Input) isLocationAction() {}

func InputAction(msg tea.Msg) Action {
	return Input{Msg: msg}
}

func New() Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = placeholder
	input.CharLimit = 2048
	return Model{Input: input}
}

func Update(model Model, action Action) (Model, reflex.Effects[Action]) {
	switch action := action.(type) {
	case Focus:
		model.Input.SetValue(action.Value)
		model.Input.CursorEnd()
		model.Focused = true
		return model, reflex.FromCmd(model.Input.Focus(), InputAction)
	case Blur:
		model.Input.Blur()
		model.Input.SetValue("")
		model.Focused = false
		return model, reflex.None[Action]()
	case Input:
		if batch, ok := action.Msg.(tea.BatchMsg); ok {
			fxs := make([]reflex.Effects[Action], 0, len(batch))
			for _, cmd := range batch {
				fxs = append(fxs, reflex.FromCmd(cmd, InputAction))
			}
			return model, reflex.Batch(fxs...)
		}
		if action.Msg == nil {
			return model, reflex.None[Action]()
		}
		if _, ok := action.Msg.(tea.KeyPressMsg); ok && !model.Focused {
			return model, reflex.None[Action]()
		}
		var cmd tea.Cmd
		model.Input, cmd = model.Input.Update(action.Msg)
		return model, reflex.FromCmd(cmd, InputAction)
	default:
		return unknown.Update(model, action)
	}
}

func Value(model Model) string {
	return model.Input.Value()
}

// View shows the input while editing and current otherwise.
func View(model Model, current string, width int) reflex.Node {
	style := theme.Location
	if model.Focused {
		style = theme.LocationFocus
	}
	if width > 4 {
		style = style.Width(width)
	}
	if model.Focused {
		return reflex.Text(model.Input.View()).Styled(style)
	}
	if current == "" {
		return reflex.Text(placeholder).Styled(style.Foreground(theme.Help.GetForeground()))
	}
	return reflex.Text(current).Styled(style)
}

// Package control implements the enable/disable switch shared by buttons
// and inputs.
package control

import (
	"shell/internal/reflex"
	"shell/internal/unknown"
)

type Action interface {
	isControlAction()
}

type Enable struct{}

type Disable struct{}

func (Enable) isControlAction()  {}
func (Disable) isControlAction() {}

// Disableable is satisfied by any model carrying a disabled flag.
type Disableable[M any] interface {
	Disabled() bool
	WithDisabled(disabled bool) M
}

type Model struct {
	IsDisabled bool
}

func (m Model) Disabled() bool {
	return m.IsDisabled
}

func (m Model) WithDisabled(disabled bool) Model {
	m.IsDisabled = disabled
	return m
}

func Update[M Disableable[M]](model M, action Action) (M, reflex.Effects[Action]) {
	switch action.(type) {
	case Enable:
		return model.WithDisabled(false), reflex.None[Action]()
	case Disable:
		return model.WithDisabled(true), reflex.None[Action]()
	default:
		return unknown.Update(model, action)
	}
}

// Set returns the action that moves a control into the requested state.
func Set(disabled bool) Action {
	if disabled {
		return Disable{}
	}
	return Enable{}
}

// Package cursor composes a child component's update into its parent's.
package cursor

import "shell/internal/reflex"

// Cursor focuses a parent model onto a child model. Get and Set must only
// touch the child's slot; Tag wraps child actions so the parent's update can
// route their results back down.
type Cursor[PM, CM, PA, CA any] struct {
	Get    func(PM) CM
	Set    func(PM, CM) PM
	Update func(CM, CA) (CM, reflex.Effects[CA])
	Tag    func(CA) PA
}

// Apply runs the child update against the focused slot.
func (c Cursor[PM, CM, PA, CA]) Apply(model PM, action CA) (PM, reflex.Effects[PA]) {
	child, fx := c.Update(c.Get(model), action)
	return c.Set(model, child), reflex.Map(fx, c.Tag)
}

// New returns c as a plain update function.
func New[PM, CM, PA, CA any](c Cursor[PM, CM, PA, CA]) func(PM, CA) (PM, reflex.Effects[PA]) {
	return c.Apply
}

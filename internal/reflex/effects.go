package reflex

import (
	"context"

	tea "charm.land/bubbletea/v2"
)

// Task is one unit of pending work. It runs outside the update loop and
// resolves to the action that is fed back into it.
type Task[A any] func(ctx context.Context) A

// Effects describes pending work produced by an update. Building, batching
// and mapping effects never runs a task; only a driver does.
type Effects[A any] struct {
	tasks []Task[A]
}

func None[A any]() Effects[A] {
	return Effects[A]{}
}

func Perform[A any](task Task[A]) Effects[A] {
	if task == nil {
		return Effects[A]{}
	}
	return Effects[A]{tasks: []Task[A]{task}}
}

// Receive resolves immediately to action.
func Receive[A any](action A) Effects[A] {
	return Perform(func(context.Context) A { return action })
}

// FromCmd adapts a bubbletea command, as produced by bubbles components,
// into effects. A nil command yields no effects.
func FromCmd[A any](cmd tea.Cmd, wrap func(tea.Msg) A) Effects[A] {
	if cmd == nil {
		return Effects[A]{}
	}
	return Perform(func(context.Context) A { return wrap(cmd()) })
}

func Batch[A any](fxs ...Effects[A]) Effects[A] {
	n := 0
	for _, fx := range fxs {
		n += len(fx.tasks)
	}
	if n == 0 {
		return Effects[A]{}
	}
	tasks := make([]Task[A], 0, n)
	for _, fx := range fxs {
		tasks = append(tasks, fx.tasks...)
	}
	return Effects[A]{tasks: tasks}
}

// Map re-tags every action the effects will eventually produce.
func Map[A, B any](fx Effects[A], tag func(A) B) Effects[B] {
	if len(fx.tasks) == 0 {
		return Effects[B]{}
	}
	tasks := make([]Task[B], len(fx.tasks))
	for i, task := range fx.tasks {
		task := task
		tasks[i] = func(ctx context.Context) B {
			return tag(task(ctx))
		}
	}
	return Effects[B]{tasks: tasks}
}

func (fx Effects[A]) Len() int {
	return len(fx.tasks)
}

func (fx Effects[A]) IsNone() bool {
	return len(fx.tasks) == 0
}

// Tasks returns a copy of the pending tasks.
func (fx Effects[A]) Tasks() []Task[A] {
	return append([]Task[A](nil), fx.tasks...)
}

// Run executes every task sequentially and returns the produced actions.
// Drivers schedule tasks concurrently through Cmd; Run exists for tooling
// and tests that need the results in order.
func (fx Effects[A]) Run(ctx context.Context) []A {
	out := make([]A, 0, len(fx.tasks))
	for _, task := range fx.tasks {
		out = append(out, task(ctx))
	}
	return out
}

// Cmd converts effects into a bubbletea command. Each task becomes its own
// command so that a slow task never delays the others.
func Cmd[A any](ctx context.Context, fx Effects[A], wrap func(A) tea.Msg) tea.Cmd {
	if len(fx.tasks) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(fx.tasks))
	for _, task := range fx.tasks {
		task := task
		cmds = append(cmds, func() tea.Msg {
			if err := ctx.Err(); err != nil {
				return nil
			}
			return wrap(task(ctx))
		})
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

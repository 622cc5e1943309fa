package reflex

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"shell/internal/logging"
)

// App is a root component: the program owns exactly one model and feeds
// every action through Update.
type App[M, A any] interface {
	Init() (M, Effects[A])
	Update(model M, action A) (M, Effects[A])
	View(model M, address Address[A]) Node
}

// Finisher is implemented by apps that can ask the program to exit.
type Finisher[M any] interface {
	Done(model M) bool
}

type actionMsg[A any] struct {
	action A
}

type Option[M, A any] func(*Program[M, A])

// WithKeyHandler installs a handler consulted for every key press before the
// rendered bindings; returning false falls through to the bindings.
func WithKeyHandler[M, A any](fn func(M, tea.KeyPressMsg) (A, bool)) Option[M, A] {
	return func(p *Program[M, A]) { p.keyHandler = fn }
}

func WithResize[M, A any](fn func(width, height int) A) Option[M, A] {
	return func(p *Program[M, A]) { p.resize = fn }
}

func WithQuitKeys[M, A any](keys ...string) Option[M, A] {
	return func(p *Program[M, A]) {
		for _, key := range keys {
			if key != "" {
				p.quitKeys[key] = struct{}{}
			}
		}
	}
}

func WithLogger[M, A any](logger logging.Logger) Option[M, A] {
	return func(p *Program[M, A]) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func WithContext[M, A any](ctx context.Context) Option[M, A] {
	return func(p *Program[M, A]) {
		if ctx != nil {
			p.parent = ctx
		}
	}
}

// Program adapts an App to bubbletea. It serializes actions: each is
// applied to the model before the next one is looked at, and effects are
// handed to bubbletea as commands whose results re-enter the same queue.
type Program[M, A any] struct {
	app        App[M, A]
	model      M
	renderer   *Renderer
	frame      Frame
	queue      []A
	address    Address[A]
	keyHandler func(M, tea.KeyPressMsg) (A, bool)
	resize     func(width, height int) A
	quitKeys   map[string]struct{}
	logger     logging.Logger
	parent     context.Context
	ctx        context.Context
	cancel     context.CancelFunc
	initFx     Effects[A]
	done       bool
}

func NewProgram[M, A any](app App[M, A], opts ...Option[M, A]) *Program[M, A] {
	p := &Program[M, A]{
		app:      app,
		renderer: NewRenderer(),
		quitKeys: map[string]struct{}{},
		logger:   logging.Default(),
		parent:   context.Background(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	p.ctx, p.cancel = context.WithCancel(p.parent)
	p.address = func(action A) {
		p.queue = append(p.queue, action)
	}
	p.model, p.initFx = app.Init()
	p.render()
	return p
}

func (p *Program[M, A]) Model() M {
	return p.model
}

func (p *Program[M, A]) Frame() Frame {
	return p.frame
}

// Dispatch queues action as if it came from the view.
func (p *Program[M, A]) Dispatch(action A) {
	p.address(action)
}

func (p *Program[M, A]) Init() tea.Cmd {
	fx := p.initFx
	p.initFx = None[A]()
	return Cmd(p.ctx, fx, p.wrap)
}

func (p *Program[M, A]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionMsg[A]:
		p.queue = append(p.queue, msg.action)
	case tea.WindowSizeMsg:
		if p.resize != nil {
			p.queue = append(p.queue, p.resize(msg.Width, msg.Height))
		}
	case tea.KeyPressMsg:
		key := msg.String()
		if _, ok := p.quitKeys[key]; ok {
			return p, p.quit()
		}
		if p.keyHandler != nil {
			if action, ok := p.keyHandler(p.model, msg); ok {
				p.queue = append(p.queue, action)
				break
			}
		}
		if binding, ok := p.frame.Lookup(key); ok {
			binding.Send()
		}
	}
	cmd := p.drain()
	if finisher, ok := p.app.(Finisher[M]); ok && finisher.Done(p.model) {
		return p, tea.Batch(cmd, p.quit())
	}
	return p, cmd
}

func (p *Program[M, A]) View() tea.View {
	view := tea.NewView(p.frame.Content)
	view.AltScreen = true
	return view
}

func (p *Program[M, A]) drain() tea.Cmd {
	if len(p.queue) == 0 {
		return nil
	}
	var cmds []tea.Cmd
	for len(p.queue) > 0 {
		action := p.queue[0]
		p.queue = p.queue[1:]
		if p.logger.Enabled(logging.Debug) {
			p.logger.Debug("update", logging.F("action", fmt.Sprintf("%T", action)))
		}
		var fx Effects[A]
		p.model, fx = p.app.Update(p.model, action)
		if cmd := Cmd(p.ctx, fx, p.wrap); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	p.render()
	return tea.Batch(cmds...)
}

func (p *Program[M, A]) render() {
	p.frame = p.renderer.Render(p.app.View(p.model, p.address))
}

func (p *Program[M, A]) wrap(action A) tea.Msg {
	return actionMsg[A]{action: action}
}

func (p *Program[M, A]) quit() tea.Cmd {
	if !p.done {
		p.done = true
		p.cancel()
	}
	return tea.Quit
}

// Run drives app in the terminal until it finishes or ctx is cancelled and
// returns the final model.
func Run[M, A any](ctx context.Context, app App[M, A], opts ...Option[M, A]) (M, error) {
	opts = append(opts, WithContext[M, A](ctx))
	p := NewProgram(app, opts...)
	defer p.cancel()
	_, err := tea.NewProgram(p, tea.WithContext(ctx)).Run()
	return p.model, err
}

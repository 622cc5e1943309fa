package browser

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"shell/internal/browser/keys"
	"shell/internal/browser/location"
	"shell/internal/browser/navigator"
	"shell/internal/browser/newtab"
	"shell/internal/browser/sidebar"
	"shell/internal/deck"
	"shell/internal/logging"
	"shell/internal/reflex"
	"shell/internal/store"
	"shell/internal/types"
)

type Options struct {
	// Repository persists tiles, preferences and the tab session. Nil runs
	// without persistence.
	Repository  store.Repository
	Keys        keys.Map
	MaxTabs     int
	SidebarOpen bool
	Wallpaper   string
	Tiles       []types.Tile
	// URLs are opened after the saved session is restored.
	URLs   []string
	NewID  func() string
	Now    func() time.Time
	Logger logging.Logger
}

// App runs the browser on the reflex driver. Services live here; the model
// stays plain data.
type App struct {
	opts Options
	env  newtab.Env
}

func New(opts Options) *App {
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	if opts.Keys.IsZero() {
		opts.Keys = keys.Default()
	}
	app := &App{opts: opts}
	if opts.Repository != nil {
		app.env = newtab.Env{Tiles: opts.Repository.Tiles(), Preferences: opts.Repository.Preferences()}
	}
	return app
}

func (a *App) Init() (Model, reflex.Effects[Action]) {
	page, pageFx := newtab.Init(a.env, newtab.Options{
		Shown:     true,
		Wallpaper: a.opts.Wallpaper,
		Tiles:     a.opts.Tiles,
	})
	model := Model{
		Sidebar:  sidebar.Init(a.opts.SidebarOpen, false),
		Tabs:     deck.New[navigator.Model](),
		NewTab:   page,
		Location: location.New(),
		Keys:     a.opts.Keys,
		MaxTabs:  a.opts.MaxTabs,
	}
	return model, reflex.Batch(
		reflex.Map(pageFx, NewTabAction),
		a.loadSession(),
	)
}

// Done stops the program once a quit command went through.
func (a *App) Done(model Model) bool {
	return model.Quit
}

// HandleKey routes key presses that are not tied to anything on screen.
// While the location bar has focus it receives every key except submit,
// cancel and quit.
func (a *App) HandleKey(model Model, msg tea.KeyPressMsg) (Action, bool) {
	command, ok := model.Keys.Command(msg.String())
	if model.Location.Focused {
		switch command {
		case keys.CommandLocationSubmit, keys.CommandLocationCancel, keys.CommandQuit:
			return Command{Name: command}, true
		}
		return Key{Msg: msg}, true
	}
	if !ok {
		return nil, false
	}
	switch command {
	case keys.CommandLocationSubmit, keys.CommandLocationCancel:
		return nil, false
	}
	return Command{Name: command}, true
}

func (a *App) Resize(width, height int) Action {
	return Resize{Width: width, Height: height}
}

// Run blocks until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) (Model, error) {
	return reflex.Run[Model, Action](ctx, a,
		reflex.WithKeyHandler[Model, Action](a.HandleKey),
		reflex.WithResize[Model, Action](a.Resize),
		reflex.WithQuitKeys[Model, Action]("ctrl+c"),
		reflex.WithLogger[Model, Action](a.opts.Logger),
	)
}

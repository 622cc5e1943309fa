// Package newtab is the page shown when no tab is open: the tile grid, the
// wallpaper picker and the key reference.
package newtab

import (
	"charm.land/lipgloss/v2"

	"shell/internal/browser/keys"
	"shell/internal/browser/newtab/help"
	"shell/internal/browser/newtab/tiles"
	"shell/internal/browser/newtab/wallpaper"
	"shell/internal/browser/theme"
	"shell/internal/cursor"
	"shell/internal/reflex"
	"shell/internal/store"
	"shell/internal/types"
	"shell/internal/unknown"
)

type Model struct {
	IsShown   bool
	Wallpaper wallpaper.Model
	Tiles     tiles.Model
}

type Action interface {
	isNewTabAction()
}

type Show struct{}

type Hide struct{}

type Wallpaper struct {
	Source wallpaper.Action
}

type Tiles struct {
	Source tiles.Action
}

// Open passes a tile click up to the browser.
type Open struct{ URL string }

func (Show) isNewTabAction()      {}
func (Hide) isNewTabAction()      {}
func (Wallpaper) isNewTabAction() {}
func (Tiles) isNewTabAction()     {}
func (Open) isNewTabAction()      {}

func WallpaperAction(action wallpaper.Action) Action {
	return Wallpaper{Source: action}
}

// TilesAction tags tile actions, except Open which is re-addressed to the
// browser unchanged.
func TilesAction(action tiles.Action) Action {
	if open, ok := action.(tiles.Open); ok {
		return Open{URL: open.URL}
	}
	return Tiles{Source: action}
}

// Env is what the page needs from the outside world. Nil stores disable
// persistence.
type Env struct {
	Tiles       store.TileStore
	Preferences store.PreferenceStore
}

type Options struct {
	Shown     bool
	Wallpaper string
	Tiles     []types.Tile
}

func Init(env Env, opts Options) (Model, reflex.Effects[Action]) {
	tilesModel, tilesFx := tiles.Init(env.Tiles, opts.Tiles)
	wallpaperModel, wallpaperFx := wallpaper.Init(env.Preferences, opts.Wallpaper)
	model := Model{IsShown: opts.Shown, Wallpaper: wallpaperModel, Tiles: tilesModel}
	return model, reflex.Batch(
		reflex.Map(tilesFx, TilesAction),
		reflex.Map(wallpaperFx, WallpaperAction),
	)
}

func (env Env) tilesCursor() cursor.Cursor[Model, tiles.Model, Action, tiles.Action] {
	return cursor.Cursor[Model, tiles.Model, Action, tiles.Action]{
		Get: func(m Model) tiles.Model { return m.Tiles },
		Set: func(m Model, t tiles.Model) Model { m.Tiles = t; return m },
		Update: func(m tiles.Model, a tiles.Action) (tiles.Model, reflex.Effects[tiles.Action]) {
			return tiles.Update(env.Tiles, m, a)
		},
		Tag: TilesAction,
	}
}

func (env Env) wallpaperCursor() cursor.Cursor[Model, wallpaper.Model, Action, wallpaper.Action] {
	return cursor.Cursor[Model, wallpaper.Model, Action, wallpaper.Action]{
		Get: func(m Model) wallpaper.Model { return m.Wallpaper },
		Set: func(m Model, w wallpaper.Model) Model { m.Wallpaper = w; return m },
		Update: func(m wallpaper.Model, a wallpaper.Action) (wallpaper.Model, reflex.Effects[wallpaper.Action]) {
			return wallpaper.Update(env.Preferences, m, a)
		},
		Tag: WallpaperAction,
	}
}

func Update(env Env, model Model, action Action) (Model, reflex.Effects[Action]) {
	switch action := action.(type) {
	case Show:
		model.IsShown = true
		return model, reflex.None[Action]()
	case Hide:
		model.IsShown = false
		return model, reflex.None[Action]()
	case Tiles:
		return env.tilesCursor().Apply(model, action.Source)
	case Wallpaper:
		return env.wallpaperCursor().Apply(model, action.Source)
	default:
		return unknown.Update(model, action)
	}
}

type Context struct {
	Keys   keys.Map
	Width  int
	Height int
}

type Props struct {
	Model   Model
	Context Context
}

func Render(props Props, address reflex.Address[Action]) reflex.Node {
	model, ctx := props.Model, props.Context
	active := wallpaper.Active(model.Wallpaper)
	dark := active.IsDark()
	page := theme.Page.Background(lipgloss.Color(active.Color))
	if ctx.Width > 0 {
		page = page.Width(ctx.Width)
	}
	if ctx.Height > 0 {
		page = page.Height(ctx.Height)
	}
	helpWidth := ctx.Width - 4
	if helpWidth <= 0 {
		helpWidth = 60
	}
	return reflex.Column(
		tiles.View(model.Tiles, reflex.Forward(address, TilesAction), dark),
		reflex.Text(""),
		wallpaper.View(model.Wallpaper, reflex.Forward(address, WallpaperAction)),
		reflex.Text(""),
		help.View(help.Props{Keys: ctx.Keys, Width: helpWidth, Dark: dark}),
	).Styled(page).Hide(!model.IsShown)
}

func View(model Model, address reflex.Address[Action], context Context) reflex.Node {
	return reflex.Thunk("Browser/NewTab", Render, Props{Model: model, Context: context}, address)
}

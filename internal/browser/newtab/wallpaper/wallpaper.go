// Package wallpaper picks the new tab page background and remembers the
// choice.
package wallpaper

import (
	"context"
	"errors"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"shell/internal/browser/theme"
	"shell/internal/reflex"
	"shell/internal/store"
	"shell/internal/types"
	"shell/internal/unknown"
)

type Wallpaper struct {
	Key   string
	Name  string
	Color string
}

// IsDark reports whether light text reads better on the wallpaper.
func (w Wallpaper) IsDark() bool {
	c, err := colorful.Hex(w.Color)
	if err != nil {
		return true
	}
	l, _, _ := c.Lab()
	return l < 0.5
}

var palette = []Wallpaper{
	{Key: "dark", Name: "Midnight", Color: "#1d1f27"},
	{Key: "harbor", Name: "Harbor", Color: "#1e3a5f"},
	{Key: "plum", Name: "Plum", Color: "#4a2a4f"},
	{Key: "moss", Name: "Moss", Color: "#3b5b3a"},
	{Key: "sand", Name: "Sand", Color: "#e8d9b5"},
	{Key: "mint", Name: "Mint", Color: "#cfeee0"},
	{Key: "paper", Name: "Paper", Color: "#f5f5f0"},
}

// Palette returns the built-in wallpapers in display order.
func Palette() []Wallpaper {
	return append([]Wallpaper(nil), palette...)
}

func Find(key string) (Wallpaper, bool) {
	for _, w := range palette {
		if w.Key == key {
			return w, true
		}
	}
	return Wallpaper{}, false
}

type Model struct {
	Selected string
	Status   string
}

type Action interface {
	isWallpaperAction()
}

type Choose struct{ Key string }

// Next cycles forward through the palette.
type Next struct{}

type Loaded struct {
	Key string
	Err error
}

type Saved struct{ Err error }

func (Choose) isWallpaperAction() {}
func (Next) isWallpaperAction()   {}
func (Loaded) isWallpaperAction() {}
func (Saved) isWallpaperAction()  {}

// Init starts from fallback and asks the store for a saved choice.
func Init(prefs store.PreferenceStore, fallback string) (Model, reflex.Effects[Action]) {
	if _, ok := Find(fallback); !ok {
		fallback = palette[0].Key
	}
	model := Model{Selected: fallback}
	if prefs == nil {
		return model, reflex.None[Action]()
	}
	return model, reflex.Perform(func(ctx context.Context) Action {
		key, err := prefs.Get(ctx, types.PreferenceWallpaper)
		if errors.Is(err, store.ErrNotFound) {
			return Loaded{}
		}
		if err != nil {
			return Loaded{Err: fmt.Errorf("load wallpaper: %w", err)}
		}
		return Loaded{Key: key}
	})
}

func Update(prefs store.PreferenceStore, model Model, action Action) (Model, reflex.Effects[Action]) {
	switch action := action.(type) {
	case Choose:
		if _, ok := Find(action.Key); !ok || action.Key == model.Selected {
			return model, reflex.None[Action]()
		}
		model.Selected = action.Key
		model.Status = ""
		return model, save(prefs, action.Key)
	case Next:
		return Update(prefs, model, Choose{Key: next(model.Selected)})
	case Loaded:
		if action.Err != nil {
			model.Status = action.Err.Error()
			return model, reflex.None[Action]()
		}
		if _, ok := Find(action.Key); ok {
			model.Selected = action.Key
		}
		return model, reflex.None[Action]()
	case Saved:
		if action.Err != nil {
			model.Status = action.Err.Error()
		}
		return model, reflex.None[Action]()
	default:
		return unknown.Update(model, action)
	}
}

func save(prefs store.PreferenceStore, key string) reflex.Effects[Action] {
	if prefs == nil {
		return reflex.None[Action]()
	}
	return reflex.Perform(func(ctx context.Context) Action {
		if err := prefs.Set(ctx, types.PreferenceWallpaper, key); err != nil {
			return Saved{Err: fmt.Errorf("save wallpaper: %w", err)}
		}
		return Saved{}
	})
}

func next(key string) string {
	for i, w := range palette {
		if w.Key == key {
			return palette[(i+1)%len(palette)].Key
		}
	}
	return palette[0].Key
}

// Active returns the selected wallpaper, falling back to the first one.
func Active(model Model) Wallpaper {
	if w, ok := Find(model.Selected); ok {
		return w
	}
	return palette[0]
}

func Render(model Model, address reflex.Address[Action]) reflex.Node {
	swatches := make([]reflex.Node, 0, len(palette))
	for _, w := range palette {
		style := theme.Swatch
		if w.Key == model.Selected {
			style = theme.SwatchActive
		}
		fg := lipgloss.Color("#f0f0f0")
		if !w.IsDark() {
			fg = lipgloss.Color("#202020")
		}
		swatches = append(swatches, reflex.Text(w.Name).Styled(style.Background(lipgloss.Color(w.Color)).Foreground(fg)))
	}
	row := reflex.Row(swatches...)
	if model.Status == "" {
		return row
	}
	return reflex.Column(row, reflex.Text(model.Status).Styled(theme.StatusError))
}

func View(model Model, address reflex.Address[Action]) reflex.Node {
	return reflex.Thunk("wallpaper", Render, model, address)
}

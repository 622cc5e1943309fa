package newtab

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"shell/internal/browser/keys"
	"shell/internal/browser/newtab/tiles"
	"shell/internal/browser/newtab/wallpaper"
	"shell/internal/reflex"
	"shell/internal/store"
	"shell/internal/types"
)

func testEnv() Env {
	repo := store.NewMemoryRepository()
	return Env{Tiles: repo.Tiles(), Preferences: repo.Preferences()}
}

func TestInitBatchesChildEffects(t *testing.T) {
	env := testEnv()
	model, fx := Init(env, Options{Shown: true, Wallpaper: "sand", Tiles: []types.Tile{{URL: "https://a.test"}}})
	if fx.Len() != 2 {
		t.Fatalf("expected tile and wallpaper effects, got %d", fx.Len())
	}
	for _, action := range fx.Run(context.Background()) {
		switch action.(type) {
		case Tiles, Wallpaper:
		default:
			t.Fatalf("child effect escaped untagged: %#v", action)
		}
		model, _ = Update(env, model, action)
	}
	if !model.Tiles.Ready || len(model.Tiles.Items) != 1 {
		t.Fatalf("tiles not loaded: %#v", model.Tiles)
	}
	if model.Wallpaper.Selected != "sand" {
		t.Fatalf("unexpected wallpaper %q", model.Wallpaper.Selected)
	}
}

func TestTileOpenPassesThrough(t *testing.T) {
	if got := TilesAction(tiles.Open{URL: "https://a.test"}); got != Action(Open{URL: "https://a.test"}) {
		t.Fatalf("unexpected tag %#v", got)
	}
	source := tiles.Action(tiles.Load{})
	if got := TilesAction(source); got != Action(Tiles{Source: source}) {
		t.Fatalf("unexpected tag %#v", got)
	}
	model := Model{IsShown: true}
	next, fx := Update(testEnv(), model, Open{URL: "x"})
	if !fx.IsNone() || !cmp.Equal(next, model) {
		t.Fatalf("newtab must not handle Open itself")
	}
}

func TestShowHide(t *testing.T) {
	env := Env{}
	model, _ := Update(env, Model{}, Show{})
	if !model.IsShown {
		t.Fatalf("expected shown")
	}
	model, _ = Update(env, model, Hide{})
	if model.IsShown {
		t.Fatalf("expected hidden")
	}
}

func TestWallpaperRoutedThroughCursor(t *testing.T) {
	env := testEnv()
	model := Model{Wallpaper: wallpaper.Model{Selected: "dark"}, Tiles: tiles.Model{Ready: true}}
	next, fx := Update(env, model, WallpaperAction(wallpaper.Choose{Key: "mint"}))
	if next.Wallpaper.Selected != "mint" {
		t.Fatalf("unexpected wallpaper %q", next.Wallpaper.Selected)
	}
	if diff := cmp.Diff(model.Tiles, next.Tiles); diff != "" {
		t.Fatalf("tiles slot changed (-want +got):\n%s", diff)
	}
	results := fx.Run(context.Background())
	if diff := cmp.Diff([]Action{Wallpaper{Source: wallpaper.Saved{}}}, results); diff != "" {
		t.Fatalf("unexpected results (-want +got):\n%s", diff)
	}
}

func TestViewHiddenRendersNothing(t *testing.T) {
	model := Model{Tiles: tiles.Model{Ready: true, Items: []types.Tile{{URL: "https://a.test", Title: "A"}}}}
	frame := reflex.NewRenderer().Render(View(model, func(Action) {}, Context{Keys: keys.Default(), Width: 80}))
	if frame.Content != "" || len(frame.Bindings) != 0 {
		t.Fatalf("hidden page should render nothing, got %q", frame.Content)
	}
}

func TestViewForwardsTileOpen(t *testing.T) {
	model := Model{IsShown: true, Tiles: tiles.Model{Ready: true, Items: []types.Tile{{URL: "https://a.test", Title: "A"}}}}
	var sent []Action
	frame := reflex.NewRenderer().Render(View(model, func(a Action) { sent = append(sent, a) }, Context{Keys: keys.Default(), Width: 80, Height: 30}))
	binding, ok := frame.Lookup("1")
	if !ok {
		t.Fatalf("expected tile shortcut")
	}
	binding.Send()
	if diff := cmp.Diff([]Action{Open{URL: "https://a.test"}}, sent); diff != "" {
		t.Fatalf("unexpected actions (-want +got):\n%s", diff)
	}
}

func TestViewMemoizesUnchangedModel(t *testing.T) {
	model := Model{IsShown: true, Wallpaper: wallpaper.Model{Selected: "dark"}, Tiles: tiles.Model{Ready: true}}
	ctx := Context{Keys: keys.Default(), Width: 80}
	r := reflex.NewRenderer()
	r.Render(View(model, nil, ctx))
	misses := r.Misses()
	r.Render(View(model, nil, ctx))
	if r.Misses() != misses {
		t.Fatalf("unchanged page should be served from memo")
	}

	model.Wallpaper.Selected = "paper"
	r.Render(View(model, nil, ctx))
	if r.Misses() == misses {
		t.Fatalf("wallpaper change must re-render")
	}
}

package wallpaper

import (
	"context"
	"errors"
	"testing"

	"shell/internal/store"
	"shell/internal/types"
)

func TestIsDark(t *testing.T) {
	tests := []struct {
		key  string
		dark bool
	}{
		{key: "dark", dark: true},
		{key: "harbor", dark: true},
		{key: "moss", dark: true},
		{key: "sand", dark: false},
		{key: "paper", dark: false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			w, ok := Find(tt.key)
			if !ok {
				t.Fatalf("missing wallpaper %s", tt.key)
			}
			if w.IsDark() != tt.dark {
				t.Fatalf("IsDark = %v, want %v", w.IsDark(), tt.dark)
			}
		})
	}
	if !(Wallpaper{Color: "not a color"}).IsDark() {
		t.Fatalf("invalid colors should default to dark")
	}
}

func TestInitLoadsSavedChoice(t *testing.T) {
	ctx := context.Background()
	prefs := store.NewMemoryRepository().Preferences()
	if err := prefs.Set(ctx, types.PreferenceWallpaper, "mint"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	model, fx := Init(prefs, "unknown")
	if model.Selected != "dark" {
		t.Fatalf("unknown fallback should use the first wallpaper, got %q", model.Selected)
	}
	results := fx.Run(ctx)
	model, _ = Update(prefs, model, results[0])
	if Active(model).Key != "mint" {
		t.Fatalf("expected saved wallpaper, got %q", model.Selected)
	}
}

func TestInitWithoutSavedChoiceKeepsFallback(t *testing.T) {
	prefs := store.NewMemoryRepository().Preferences()
	model, fx := Init(prefs, "sand")
	model, _ = Update(prefs, model, fx.Run(context.Background())[0])
	if model.Selected != "sand" || model.Status != "" {
		t.Fatalf("unexpected model %#v", model)
	}
}

func TestChoosePersists(t *testing.T) {
	ctx := context.Background()
	prefs := store.NewMemoryRepository().Preferences()
	model := Model{Selected: "dark"}

	model, fx := Update(prefs, model, Choose{Key: "plum"})
	if model.Selected != "plum" || fx.Len() != 1 {
		t.Fatalf("unexpected choose result %#v fx=%d", model, fx.Len())
	}
	model, _ = Update(prefs, model, fx.Run(ctx)[0])
	if got, _ := prefs.Get(ctx, types.PreferenceWallpaper); got != "plum" {
		t.Fatalf("expected persisted choice, got %q", got)
	}

	same, fx := Update(prefs, model, Choose{Key: "plum"})
	if !fx.IsNone() || same != model {
		t.Fatalf("choosing the current wallpaper is a no-op")
	}
	bogus, fx := Update(prefs, model, Choose{Key: "nope"})
	if !fx.IsNone() || bogus != model {
		t.Fatalf("unknown wallpapers are ignored")
	}
}

func TestNextWraps(t *testing.T) {
	all := Palette()
	model := Model{Selected: all[len(all)-1].Key}
	model, _ = Update(nil, model, Next{})
	if model.Selected != all[0].Key {
		t.Fatalf("expected wrap to %s, got %s", all[0].Key, model.Selected)
	}
}

func TestSaveFailureShowsStatus(t *testing.T) {
	model, _ := Update(nil, Model{Selected: "dark"}, Saved{Err: errors.New("read-only")})
	if model.Status != "read-only" {
		t.Fatalf("unexpected status %q", model.Status)
	}
}

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"shell/internal/types"
)

func newTestRepository(t *testing.T) Repository {
	t.Helper()
	repo, err := NewBboltRepository(filepath.Join(t.TempDir(), "nested", "shell.db"))
	if err != nil {
		t.Fatalf("NewBboltRepository: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func tileURLs(tiles []*types.Tile) []string {
	out := make([]string, 0, len(tiles))
	for _, tile := range tiles {
		out = append(out, tile.URL)
	}
	return out
}

func TestTileSeedRunsOnce(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seeded, err := repo.Tiles().Seed(ctx, []*types.Tile{
		{URL: "https://b.test", Title: "B"},
		{URL: "https://a.test", Title: "A"},
	})
	if err != nil || !seeded {
		t.Fatalf("Seed: seeded=%v err=%v", seeded, err)
	}
	tiles, err := repo.Tiles().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := tileURLs(tiles); len(got) != 2 || got[0] != "https://b.test" {
		t.Fatalf("expected seed order, got %v", got)
	}

	if err := repo.Tiles().Delete(ctx, "https://b.test"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Tiles().Delete(ctx, "https://a.test"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	seeded, err = repo.Tiles().Seed(ctx, []*types.Tile{{URL: "https://c.test"}})
	if err != nil || seeded {
		t.Fatalf("expected no reseed after deletes: seeded=%v err=%v", seeded, err)
	}
}

func TestTileUpsertAndOrdering(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.Tiles().Upsert(ctx, &types.Tile{URL: " https://one.test "})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if first.URL != "https://one.test" || first.Title != "https://one.test" || first.CreatedAt.IsZero() {
		t.Fatalf("unexpected tile: %#v", first)
	}
	if _, err := repo.Tiles().Upsert(ctx, &types.Tile{URL: "https://two.test", Title: "Two"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	pinned, err := repo.Tiles().Upsert(ctx, &types.Tile{URL: "https://two.test", Pinned: true, Position: 1})
	if err != nil {
		t.Fatalf("Upsert pin: %v", err)
	}
	if pinned.Title != "Two" {
		t.Fatalf("expected title kept on update, got %q", pinned.Title)
	}
	tiles, err := repo.Tiles().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := tileURLs(tiles); len(got) != 2 || got[0] != "https://two.test" {
		t.Fatalf("expected pinned tile first, got %v", got)
	}
	if _, err := repo.Tiles().Upsert(ctx, &types.Tile{}); err == nil {
		t.Fatalf("expected error for blank url")
	}
	if err := repo.Tiles().Delete(ctx, "https://missing.test"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPreferences(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if _, err := repo.Preferences().Get(ctx, types.PreferenceWallpaper); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Preferences().Set(ctx, types.PreferenceWallpaper, "sand"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, err := repo.Preferences().Get(ctx, types.PreferenceWallpaper)
	if err != nil || value != "sand" {
		t.Fatalf("Get: value=%q err=%v", value, err)
	}
	if err := repo.Preferences().Set(ctx, " ", "x"); err == nil {
		t.Fatalf("expected error for blank key")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	empty, err := repo.Session().Load(ctx)
	if err != nil || len(empty.Tabs) != 0 {
		t.Fatalf("expected empty session, got %#v err=%v", empty, err)
	}
	session := &types.TabSession{
		Tabs: []types.TabRecord{
			{ID: "tab-1", URL: "https://a.test", Title: "A"},
			{ID: "tab-2", URL: "https://b.test", Pinned: true},
		},
		Selected: "tab-2",
	}
	if err := repo.Session().Save(ctx, session); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := repo.Session().Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Selected != "tab-2" || len(loaded.Tabs) != 2 || !loaded.Tabs[1].Pinned {
		t.Fatalf("unexpected session: %#v", loaded)
	}
	if err := repo.Session().Save(ctx, nil); err == nil {
		t.Fatalf("expected error for nil session")
	}
}

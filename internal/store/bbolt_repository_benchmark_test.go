package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"shell/internal/types"
)

func BenchmarkBboltTilesListLarge(b *testing.B) {
	repo, err := NewBboltRepository(filepath.Join(b.TempDir(), "bench.db"))
	if err != nil {
		b.Fatalf("NewBboltRepository: %v", err)
	}
	defer repo.Close()
	ctx := context.Background()
	for i := 0; i < 2000; i++ {
		_, err := repo.Tiles().Upsert(ctx, &types.Tile{
			URL:   fmt.Sprintf("https://site-%04d.test", i),
			Title: fmt.Sprintf("site %d", i),
		})
		if err != nil {
			b.Fatalf("seed tile %d: %v", i, err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tiles, err := repo.Tiles().List(ctx)
		if err != nil {
			b.Fatalf("List: %v", err)
		}
		if len(tiles) != 2000 {
			b.Fatalf("unexpected tiles length: %d", len(tiles))
		}
	}
}

func BenchmarkBboltSessionSave(b *testing.B) {
	repo, err := NewBboltRepository(filepath.Join(b.TempDir(), "bench.db"))
	if err != nil {
		b.Fatalf("NewBboltRepository: %v", err)
	}
	defer repo.Close()
	ctx := context.Background()
	session := &types.TabSession{SavedAt: time.Now().UTC()}
	for i := 0; i < 64; i++ {
		id := fmt.Sprintf("tab-%02d", i)
		session.Tabs = append(session.Tabs, types.TabRecord{ID: id, URL: "https://" + id + ".test", Title: id})
	}
	session.Selected = session.Tabs[0].ID

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := repo.Session().Save(ctx, session); err != nil {
			b.Fatalf("Save: %v", err)
		}
	}
}

package store

import (
	"context"
	"errors"

	"shell/internal/types"
)

var ErrNotFound = errors.New("not found")

type Repository interface {
	Tiles() TileStore
	Preferences() PreferenceStore
	Session() SessionStore
	Close() error
}

type TileStore interface {
	// List returns pinned tiles first, then the rest, each group in
	// position order.
	List(ctx context.Context) ([]*types.Tile, error)
	Upsert(ctx context.Context, tile *types.Tile) (*types.Tile, error)
	Delete(ctx context.Context, url string) error
	// Seed stores tiles only when no tile has ever been stored.
	Seed(ctx context.Context, tiles []*types.Tile) (bool, error)
}

type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type SessionStore interface {
	Load(ctx context.Context) (*types.TabSession, error)
	Save(ctx context.Context, session *types.TabSession) error
}

package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"shell/internal/types"
)

// NewMemoryRepository returns a repository that keeps everything in process
// memory. It backs ephemeral UI sessions and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		tiles:       &memoryTileStore{byURL: map[string]types.Tile{}},
		preferences: &memoryPreferenceStore{values: map[string]string{}},
		session:     &memorySessionStore{},
	}
}

type memoryRepository struct {
	tiles       *memoryTileStore
	preferences *memoryPreferenceStore
	session     *memorySessionStore
}

func (r *memoryRepository) Tiles() TileStore             { return r.tiles }
func (r *memoryRepository) Preferences() PreferenceStore { return r.preferences }
func (r *memoryRepository) Session() SessionStore        { return r.session }
func (r *memoryRepository) Close() error                 { return nil }

type memoryTileStore struct {
	mu     sync.Mutex
	byURL  map[string]types.Tile
	seeded bool
}

func (s *memoryTileStore) List(ctx context.Context) ([]*types.Tile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*types.Tile, 0, len(s.byURL))
	for _, tile := range s.byURL {
		item := tile
		out = append(out, &item)
	}
	sortTiles(out)
	return out, nil
}

func (s *memoryTileStore) Upsert(ctx context.Context, tile *types.Tile) (*types.Tile, error) {
	if tile == nil || strings.TrimSpace(tile.URL) == "" {
		return nil, errors.New("tile url is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := *tile
	next.URL = strings.TrimSpace(next.URL)
	if existing, ok := s.byURL[next.URL]; ok {
		next.CreatedAt = existing.CreatedAt
		if next.Title == "" {
			next.Title = existing.Title
		}
	} else {
		next.Position = 0
		for _, tile := range s.byURL {
			next.Position = max(next.Position, tile.Position+1)
		}
	}
	if next.CreatedAt.IsZero() {
		next.CreatedAt = time.Now().UTC()
	}
	if next.Title == "" {
		next.Title = next.URL
	}
	s.byURL[next.URL] = next
	s.seeded = true
	out := next
	return &out, nil
}

func (s *memoryTileStore) Delete(ctx context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	url = strings.TrimSpace(url)
	if _, ok := s.byURL[url]; !ok {
		return ErrNotFound
	}
	delete(s.byURL, url)
	return nil
}

func (s *memoryTileStore) Seed(ctx context.Context, tiles []*types.Tile) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seeded {
		return false, nil
	}
	now := time.Now().UTC()
	for i, tile := range tiles {
		if tile == nil || strings.TrimSpace(tile.URL) == "" {
			continue
		}
		next := *tile
		next.URL = strings.TrimSpace(next.URL)
		next.Position = i
		if next.CreatedAt.IsZero() {
			next.CreatedAt = now
		}
		s.byURL[next.URL] = next
	}
	s.seeded = true
	return true, nil
}

type memoryPreferenceStore struct {
	mu     sync.Mutex
	values map[string]string
}

func (s *memoryPreferenceStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *memoryPreferenceStore) Set(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("preference key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

type memorySessionStore struct {
	mu      sync.Mutex
	session *types.TabSession
}

func (s *memorySessionStore) Load(ctx context.Context) (*types.TabSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return &types.TabSession{}, nil
	}
	return cloneSession(s.session), nil
}

func (s *memorySessionStore) Save(ctx context.Context, session *types.TabSession) error {
	if session == nil {
		return errors.New("session is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = cloneSession(session)
	return nil
}

func cloneSession(session *types.TabSession) *types.TabSession {
	out := *session
	out.Tabs = append([]types.TabRecord(nil), session.Tabs...)
	return &out
}

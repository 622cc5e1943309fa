package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"shell/internal/types"
)

var (
	bucketTiles       = []byte("tiles")
	bucketPreferences = []byte("preferences")
	bucketSession     = []byte("session")
	bucketMeta        = []byte("meta")
	keySession        = []byte("current")
	keyTilesSeeded    = []byte("tiles_seeded")
)

type bboltRepository struct {
	db          *bolt.DB
	tiles       TileStore
	preferences PreferenceStore
	session     SessionStore
}

func NewBboltRepository(path string) (Repository, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("repository db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := initBboltSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &bboltRepository{
		db:          db,
		tiles:       &bboltTileStore{db: db},
		preferences: &bboltPreferenceStore{db: db},
		session:     &bboltSessionStore{db: db},
	}, nil
}

func (r *bboltRepository) Tiles() TileStore {
	return r.tiles
}

func (r *bboltRepository) Preferences() PreferenceStore {
	return r.preferences
}

func (r *bboltRepository) Session() SessionStore {
	return r.session
}

func (r *bboltRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func initBboltSchema(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketTiles, bucketPreferences, bucketSession, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
}

type bboltTileStore struct {
	db *bolt.DB
}

func (s *bboltTileStore) List(ctx context.Context) ([]*types.Tile, error) {
	out := make([]*types.Tile, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTiles)
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, raw []byte) error {
			tile := &types.Tile{}
			if err := json.Unmarshal(raw, tile); err != nil {
				return err
			}
			out = append(out, tile)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortTiles(out)
	return out, nil
}

func (s *bboltTileStore) Upsert(ctx context.Context, tile *types.Tile) (*types.Tile, error) {
	if tile == nil {
		return nil, errors.New("tile is required")
	}
	url := strings.TrimSpace(tile.URL)
	if url == "" {
		return nil, errors.New("tile url is required")
	}
	next := *tile
	next.URL = url
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTiles)
		if b == nil {
			return errors.New("tiles bucket missing")
		}
		if raw := b.Get([]byte(url)); len(raw) > 0 {
			existing := &types.Tile{}
			if err := json.Unmarshal(raw, existing); err != nil {
				return err
			}
			next.CreatedAt = existing.CreatedAt
			if next.Title == "" {
				next.Title = existing.Title
			}
		} else {
			position, err := nextPosition(b)
			if err != nil {
				return err
			}
			next.Position = position
		}
		if next.CreatedAt.IsZero() {
			next.CreatedAt = time.Now().UTC()
		}
		if next.Title == "" {
			next.Title = url
		}
		if err := putJSON(b, []byte(url), &next); err != nil {
			return err
		}
		return markSeeded(tx)
	})
	if err != nil {
		return nil, err
	}
	return &next, nil
}

func (s *bboltTileStore) Delete(ctx context.Context, url string) error {
	key := []byte(strings.TrimSpace(url))
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTiles)
		if b == nil {
			return errors.New("tiles bucket missing")
		}
		if b.Get(key) == nil {
			return ErrNotFound
		}
		return b.Delete(key)
	})
}

func (s *bboltTileStore) Seed(ctx context.Context, tiles []*types.Tile) (bool, error) {
	seeded := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		meta := tx.Bucket(bucketMeta)
		if meta == nil {
			return errors.New("meta bucket missing")
		}
		if meta.Get(keyTilesSeeded) != nil {
			return nil
		}
		b := tx.Bucket(bucketTiles)
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
			if err := putJSON(b, []byte(next.URL), &next); err != nil {
				return err
			}
		}
		seeded = true
		return markSeeded(tx)
	})
	return seeded, err
}

// nextPosition returns one past the highest stored position so new tiles
// land at the end even after deletes left gaps.
func nextPosition(b *bolt.Bucket) (int, error) {
	next := 0
	c := b.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		tile := types.Tile{}
		if err := json.Unmarshal(v, &tile); err != nil {
			return 0, err
		}
		next = max(next, tile.Position+1)
	}
	return next, nil
}

func markSeeded(tx *bolt.Tx) error {
	meta := tx.Bucket(bucketMeta)
	if meta == nil {
		return errors.New("meta bucket missing")
	}
	return meta.Put(keyTilesSeeded, []byte("1"))
}

// sortTiles orders tiles pinned first, then by position, then by URL.
func sortTiles(tiles []*types.Tile) {
	sort.SliceStable(tiles, func(i, j int) bool {
		if tiles[i].Pinned != tiles[j].Pinned {
			return tiles[i].Pinned
		}
		if tiles[i].Position != tiles[j].Position {
			return tiles[i].Position < tiles[j].Position
		}
		return tiles[i].URL < tiles[j].URL
	})
}

type bboltPreferenceStore struct {
	db *bolt.DB
}

func (s *bboltPreferenceStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPreferences)
		if b == nil {
			return ErrNotFound
		}
		raw := b.Get([]byte(key))
		if raw == nil {
			return ErrNotFound
		}
		value = string(raw)
		return nil
	})
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *bboltPreferenceStore) Set(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("preference key is required")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPreferences)
		if b == nil {
			return errors.New("preferences bucket missing")
		}
		return b.Put([]byte(key), []byte(value))
	})
}

type bboltSessionStore struct {
	db *bolt.DB
}

func (s *bboltSessionStore) Load(ctx context.Context) (*types.TabSession, error) {
	session := &types.TabSession{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if b == nil {
			return nil
		}
		raw := b.Get(keySession)
		if len(raw) == 0 {
			return nil
		}
		return json.Unmarshal(raw, session)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *bboltSessionStore) Save(ctx context.Context, session *types.TabSession) error {
	if session == nil {
		return errors.New("session is required")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if b == nil {
			return errors.New("session bucket missing")
		}
		return putJSON(b, keySession, session)
	})
}

func putJSON(b *bolt.Bucket, key []byte, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return b.Put(key, raw)
}

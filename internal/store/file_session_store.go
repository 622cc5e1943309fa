package store

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"

	"shell/internal/types"
)

// FileSessionStore keeps a tab session in a standalone JSON file. The CLI
// uses it to export and import sessions between machines.
type FileSessionStore struct {
	path string
	mu   sync.Mutex
}

func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: strings.TrimSpace(path)}
}

func (s *FileSessionStore) Load(ctx context.Context) (*types.TabSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &types.TabSession{}
	if err := readJSON(s.path, session); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *FileSessionStore) Save(ctx context.Context, session *types.TabSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session == nil {
		return errors.New("session is required")
	}
	if s.path == "" {
		return errors.New("session path is required")
	}
	return writeJSONAtomic(s.path, session)
}

package engagement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"partnerdash-be/internal/models"
)

// Store persists the single engagement cache entry. Get returns nil, nil when
// nothing has been written yet.
type Store interface {
	Get(ctx context.Context) (*models.EngagementCacheEntry, error)
	Put(ctx context.Context, entry models.EngagementCacheEntry) error
}

// FileStore keeps the entry as a JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(ctx context.Context) (*models.EngagementCacheEntry, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache file: %w", err)
	}

	var entry models.EngagementCacheEntry
	if err := json.Unmarshal(b, &entry); err != nil {
		return nil, fmt.Errorf("decode cache file: %w", err)
	}
	return &entry, nil
}

func (s *FileStore) Put(ctx context.Context, entry models.EngagementCacheEntry) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
	}
	b, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return os.Rename(tmp, s.path)
}

// MemoryStore keeps the entry in process memory.
type MemoryStore struct {
	mu    sync.Mutex
	entry *models.EngagementCacheEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(ctx context.Context) (*models.EngagementCacheEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entry == nil {
		return nil, nil
	}
	e := *s.entry
	return &e, nil
}

func (s *MemoryStore) Put(ctx context.Context, entry models.EngagementCacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry = &entry
	return nil
}

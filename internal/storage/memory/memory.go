package memory

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"spendlog/internal/storage"
)

// Store keeps documents in process memory. Nothing survives a restart.
type Store struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func New() *Store {
	return &Store{docs: make(map[string][]byte)}
}

// NewFromFiles seeds the store with <base>/<key>.json for every known key.
// Missing or unreadable files are skipped.
func NewFromFiles(base string) *Store {
	s := New()
	for _, key := range []string{storage.KeyExpenses, storage.KeyBudgets} {
		b, err := os.ReadFile(filepath.Join(base, key+".json"))
		if err != nil {
			continue
		}
		s.docs[key] = b
	}
	return s
}

// Get returns a copy of the document stored under key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.docs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

// Put replaces the document stored under key.
func (s *Store) Put(_ context.Context, key string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = append([]byte(nil), body...)
	return nil
}

// Keys lists the stored keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.docs))
	for k := range s.docs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

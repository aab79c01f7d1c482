// Package memory implements an in-process settings store.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/optionsinject/optionsinject/internal/storage"
)

// Store keeps items in a map guarded by a mutex.
type Store struct {
	mu    sync.RWMutex
	items map[string][]byte
	quota storage.Quota
	sets  int
}

// Option configures a Store.
type Option func(*Store)

// WithQuota enforces host limits on every write.
func WithQuota(q storage.Quota) Option {
	return func(s *Store) {
		s.quota = q
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{items: make(map[string][]byte)}
	for _, o := range opts {
		o(s)
	}

	return s
}

// SetAll writes all items or none of them.
func (s *Store) SetAll(ctx context.Context, items map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := storage.ValidateKeys(items); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := maps.Clone(s.items)
	for k, v := range items {
		next[k] = clone(v)
	}

	if err := s.quota.Check(next); err != nil {
		return err
	}

	s.items = next
	s.sets++

	return nil
}

// Get returns a copy of the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return clone(v), nil
}

// Snapshot returns a copy of the whole store.
func (s *Store) Snapshot() map[string][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]byte, len(s.items))
	for k, v := range s.items {
		out[k] = clone(v)
	}

	return out
}

// Sets reports how many writes succeeded.
func (s *Store) Sets() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sets
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}

	out := make([]byte, len(b))
	copy(out, b)

	return out
}

// Package mirror implements synchronized storage: one primary store mirrored to replicas.
package mirror

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/optionsinject/optionsinject/internal/storage"
)

// Store writes the primary first and then every replica concurrently.
type Store struct {
	primary  storage.Store
	replicas []storage.Store
}

// New mirrors primary to replicas.
func New(primary storage.Store, replicas ...storage.Store) *Store {
	return &Store{primary: primary, replicas: replicas}
}

// SetAll returns the primary's error without touching replicas.
// Replica failures are logged and the first one is returned after all replicas finished.
func (s *Store) SetAll(ctx context.Context, items map[string][]byte) error {
	if err := s.primary.SetAll(ctx, items); err != nil {
		log.Warn().Err(err).Int("items", len(items)).Msg("primary storage rejected write")

		return errors.Wrap(err, "primary")
	}

	var g errgroup.Group

	for i, r := range s.replicas {
		g.Go(func() error {
			if err := r.SetAll(ctx, items); err != nil {
				log.Warn().Err(err).Int("replica", i).Msg("replica storage rejected write")

				return errors.Wrapf(err, "replica %d", i)
			}

			return nil
		})
	}

	return g.Wait() //nolint:wrapcheck
}

// Get reads from the primary.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	return s.primary.Get(ctx, key) //nolint:wrapcheck
}

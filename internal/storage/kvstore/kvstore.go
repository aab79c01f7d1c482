// Package kvstore keeps a storage area in a fiber key-value storage backend.
package kvstore

import (
	"context"
	"slices"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/mysql/v2"
	"github.com/gofiber/storage/postgres/v3"
	"github.com/pkg/errors"

	"github.com/optionsinject/optionsinject/internal/config"
	"github.com/optionsinject/optionsinject/internal/db/dsn"
	"github.com/optionsinject/optionsinject/internal/storage"
)

// ErrUnsupportedEngine is returned when no fiber storage exists for the engine.
var ErrUnsupportedEngine = errors.New("kv backend supports mysql and postgres only")

// Store prefixes every key with the area and writes it without expiration.
type Store struct {
	kv   fiber.Storage
	area storage.Area
}

// New wraps a fiber storage.
func New(kv fiber.Storage, area storage.Area) *Store {
	return &Store{kv: kv, area: area}
}

// Open connects the fiber storage matching the configured engine.
// The gofiber storages panic when the database is unreachable.
func Open(cfg *config.Config, area storage.Area) (*Store, error) {
	var kv fiber.Storage

	switch cfg.DB.GormEngine {
	case "mysql":
		kv = mysql.New(mysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         cfg.Storage.Table,
		})
	case "postgres":
		kv = postgres.New(postgres.Config{
			ConnectionURI: dsn.CreatePostgres(cfg),
			Table:         cfg.Storage.Table,
		})
	default:
		return nil, errors.Wrap(ErrUnsupportedEngine, cfg.DB.GormEngine)
	}

	return New(kv, area), nil
}

func (s *Store) key(name string) string {
	return s.area.String() + ":" + name
}

// SetAll writes items in key order and stops at the first failure.
// The backend has no transactions, so a failed batch may be partially applied.
func (s *Store) SetAll(ctx context.Context, items map[string][]byte) error {
	if err := storage.ValidateKeys(items); err != nil {
		return err
	}

	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.kv.Set(s.key(name), items[name], 0); err != nil {
			return errors.Wrapf(err, "set %s", name)
		}
	}

	return nil
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, err := s.kv.Get(s.key(key))
	if err != nil {
		return nil, err
	}

	if v == nil {
		return nil, storage.ErrNotFound
	}

	return v, nil
}

// Close releases the backend connection.
func (s *Store) Close() error {
	return s.kv.Close()
}

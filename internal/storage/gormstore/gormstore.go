// Package gormstore keeps a storage area in a gorm managed table.
package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/optionsinject/optionsinject/internal/db/controller/setting"
	"github.com/optionsinject/optionsinject/internal/storage"
)

// Store writes the items of one area as rows of the settings table.
type Store struct {
	db   *gorm.DB
	area storage.Area
}

// New returns a store for area backed by db.
func New(db *gorm.DB, area storage.Area) *Store {
	return &Store{db: db, area: area}
}

// SetAll upserts all items in one transaction.
func (s *Store) SetAll(ctx context.Context, items map[string][]byte) error {
	if s.db == nil {
		return setting.ErrDBNil
	}

	err := setting.SetAll(s.db.WithContext(ctx), s.area.String(), items)
	if errors.Is(err, setting.ErrSettingNameEmpty) {
		return storage.ErrKeyEmpty
	}

	return err
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if s.db == nil {
		return nil, setting.ErrDBNil
	}

	row, err := setting.Get(s.db.WithContext(ctx), s.area.String(), key)
	if errors.Is(err, setting.ErrSettingNotFound) || errors.Is(err, setting.ErrSettingNameEmpty) {
		return nil, storage.ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return row.Value, nil
}

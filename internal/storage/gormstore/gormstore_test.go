package gormstore

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/optionsinject/optionsinject/internal/db/models"
	"github.com/optionsinject/optionsinject/internal/settings"
	"github.com/optionsinject/optionsinject/internal/storage"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Setting{}))

	return db
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(setupTestDB(t), storage.AreaSync)

	items, err := settings.Default().Items()
	require.NoError(t, err)

	require.NoError(t, s.SetAll(ctx, items))

	for key, want := range items {
		got, err := s.Get(ctx, key)
		require.NoError(t, err, key)
		assert.JSONEq(t, string(want), string(got), key)
	}

	theme, err := s.Get(ctx, "theme")
	require.NoError(t, err)

	var decoded settings.Theme
	require.NoError(t, json.Unmarshal(theme, &decoded))
	assert.Equal(t, settings.ModeDark, decoded.Mode)
}

func TestStoreAreasAreSeparate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	syncStore := New(db, storage.AreaSync)
	localStore := New(db, storage.AreaLocal)

	require.NoError(t, syncStore.SetAll(ctx, map[string][]byte{"enabled": []byte("true")}))

	_, err := localStore.Get(ctx, "enabled")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStoreErrors(t *testing.T) {
	ctx := context.Background()
	s := New(setupTestDB(t), storage.AreaSync)

	require.ErrorIs(t, s.SetAll(ctx, map[string][]byte{"": []byte("1")}), storage.ErrKeyEmpty)

	_, err := s.Get(ctx, "")
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.Error(t, New(nil, storage.AreaSync).SetAll(ctx, nil))
}

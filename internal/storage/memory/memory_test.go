package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optionsinject/optionsinject/internal/settings"
	"github.com/optionsinject/optionsinject/internal/storage"
)

func TestSetAllAndGet(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.SetAll(ctx, map[string][]byte{
		"enabled": []byte("true"),
		"time":    []byte(`{"activation":"18:00","deactivation":"9:00"}`),
	}))

	v, err := s.Get(ctx, "enabled")
	require.NoError(t, err)
	assert.Equal(t, []byte("true"), v)

	_, err = s.Get(ctx, "missing")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSetAllKeepsOtherKeys(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.SetAll(ctx, map[string][]byte{"installDate": []byte("1700000000")}))
	require.NoError(t, s.SetAll(ctx, map[string][]byte{"enabled": []byte("false")}))
	require.NoError(t, s.SetAll(ctx, map[string][]byte{"enabled": []byte("true")}))

	snap := s.Snapshot()
	assert.Equal(t, []byte("1700000000"), snap["installDate"])
	assert.Equal(t, []byte("true"), snap["enabled"])
	assert.Equal(t, 3, s.Sets())
}

func TestSetAllIsIdempotent(t *testing.T) {
	ctx := context.Background()

	items, err := settings.Default().Items()
	require.NoError(t, err)

	once := New()
	require.NoError(t, once.SetAll(ctx, items))

	twice := New()
	require.NoError(t, twice.SetAll(ctx, items))
	require.NoError(t, twice.SetAll(ctx, items))

	assert.Equal(t, once.Snapshot(), twice.Snapshot())
}

func TestSetAllCopiesInput(t *testing.T) {
	ctx := context.Background()
	s := New()

	value := []byte("true")
	require.NoError(t, s.SetAll(ctx, map[string][]byte{"enabled": value}))

	value[0] = 'X'

	got, err := s.Get(ctx, "enabled")
	require.NoError(t, err)
	assert.Equal(t, []byte("true"), got)
}

func TestSetAllQuota(t *testing.T) {
	ctx := context.Background()
	s := New(WithQuota(storage.SyncQuota))

	require.NoError(t, s.SetAll(ctx, map[string][]byte{"enabled": []byte("true")}))

	err := s.SetAll(ctx, map[string][]byte{
		"enabled":    []byte("false"),
		"stylesheet": []byte(`"` + strings.Repeat("a", 9000) + `"`),
	})
	require.ErrorIs(t, err, storage.ErrQuotaBytesPerItem)

	// rejected batches leave the store untouched
	got, err := s.Get(ctx, "enabled")
	require.NoError(t, err)
	assert.Equal(t, []byte("true"), got)

	_, err = s.Get(ctx, "stylesheet")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSetAllRejects(t *testing.T) {
	s := New()

	require.ErrorIs(t, s.SetAll(context.Background(), map[string][]byte{"": nil}), storage.ErrKeyEmpty)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.SetAll(ctx, map[string][]byte{"a": nil}), context.Canceled)
	assert.Equal(t, 0, s.Sets())
}

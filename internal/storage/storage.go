// Package storage describes the host key-value storage the settings are written to.
package storage

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a key is not present in a store.
	ErrNotFound = errors.New("storage: key not found")
	// ErrKeyEmpty is returned when a write contains an empty key.
	ErrKeyEmpty = errors.New("storage: key cannot be empty")
	// ErrQuotaBytes is returned when a write would exceed the total byte quota.
	ErrQuotaBytes = errors.New("storage: QUOTA_BYTES quota exceeded")
	// ErrQuotaBytesPerItem is returned when a single item exceeds the per item quota.
	ErrQuotaBytesPerItem = errors.New("storage: QUOTA_BYTES_PER_ITEM quota exceeded")
	// ErrMaxItems is returned when a write would exceed the maximum number of items.
	ErrMaxItems = errors.New("storage: MAX_ITEMS quota exceeded")
	// ErrUnknownArea is returned when an area name is not sync or local.
	ErrUnknownArea = errors.New("storage: unknown area")
)

// Store is a key-value store holding one encoded JSON value per key.
type Store interface {
	// SetAll writes every item, replacing existing values of the same keys.
	// Keys not in items are left untouched.
	SetAll(ctx context.Context, items map[string][]byte) error
	// Get returns the value stored under key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
}

// Area names a storage area of the host.
type Area string

// Storage areas.
const (
	AreaSync  Area = "sync"
	AreaLocal Area = "local"
)

// syncExtensions lists extension id fragments whose settings live in sync storage.
var syncExtensions = []string{"darkreader", "dyslexia"} //nolint:gochecknoglobals

// AreaFor returns the storage area an extension keeps its options in.
func AreaFor(extensionID string) Area {
	for _, s := range syncExtensions {
		if strings.Contains(extensionID, s) {
			return AreaSync
		}
	}

	return AreaLocal
}

// ParseArea converts a configured area name.
func ParseArea(s string) (Area, error) {
	switch Area(s) {
	case AreaSync, AreaLocal:
		return Area(s), nil
	default:
		return "", ErrUnknownArea
	}
}

// String implements fmt.Stringer.
func (a Area) String() string {
	return string(a)
}

// Quota is the set of limits the host enforces on an area.
// A zero limit is not enforced.
type Quota struct {
	Bytes        int
	BytesPerItem int
	MaxItems     int
}

// Host limits per area.
var (
	SyncQuota  = Quota{Bytes: 102400, BytesPerItem: 8192, MaxItems: 512} //nolint:gochecknoglobals,mnd
	LocalQuota = Quota{Bytes: 10485760}                                  //nolint:gochecknoglobals,mnd
)

// QuotaFor returns the host limits of an area.
func QuotaFor(a Area) Quota {
	if a == AreaSync {
		return SyncQuota
	}

	return LocalQuota
}

// ItemSize is the size an item counts against the quota: key length plus value length.
func ItemSize(key string, value []byte) int {
	return len(key) + len(value)
}

// Check validates the full contents of an area against the quota.
func (q Quota) Check(contents map[string][]byte) error {
	if q.MaxItems > 0 && len(contents) > q.MaxItems {
		return ErrMaxItems
	}

	total := 0

	for k, v := range contents {
		size := ItemSize(k, v)
		if q.BytesPerItem > 0 && size > q.BytesPerItem {
			return ErrQuotaBytesPerItem
		}

		total += size
	}

	if q.Bytes > 0 && total > q.Bytes {
		return ErrQuotaBytes
	}

	return nil
}

// ValidateKeys rejects batches containing empty keys.
func ValidateKeys(items map[string][]byte) error {
	for k := range items {
		if k == "" {
			return ErrKeyEmpty
		}
	}

	return nil
}

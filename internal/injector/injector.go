package injector

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/optionsinject/optionsinject/internal/settings"
)

// CompletionMessage is logged once per finished write.
const CompletionMessage = "Options updated."

// SettingsStore is the host key-value storage.
type SettingsStore interface {
	SetAll(ctx context.Context, items map[string][]byte) error
}

// Logger receives the completion message.
type Logger interface {
	Info(msg string)
}

// Injector writes settings records to a store.
type Injector struct {
	store SettingsStore
	log   Logger
}

// New creates an Injector. Both collaborators are required.
func New(store SettingsStore, log Logger) *Injector {
	if store == nil || log == nil {
		panic("injector: store and logger are required")
	}

	return &Injector{store: store, log: log}
}

// ApplyDefaultSettings starts writing settings.Default and returns immediately.
func (in *Injector) ApplyDefaultSettings(ctx context.Context) *Future {
	items, err := settings.Default().Items()
	if err != nil {
		// the record is a constant, encoding it cannot fail
		panic(err)
	}

	return in.Apply(ctx, items)
}

// Apply starts writing items and returns immediately.
// The store error, if any, is dropped. A panic in the store is logged as a
// warning and the completion is still logged.
func (in *Injector) Apply(ctx context.Context, items map[string][]byte) *Future {
	f := newFuture()

	go func() {
		defer f.resolve()

		in.write(ctx, items)
		in.log.Info(CompletionMessage)
	}()

	return f
}

// write drops the store's error and survives a panicking store.
func (in *Injector) write(ctx context.Context, items map[string][]byte) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Int("items", len(items)).Msg("settings store panicked")
		}
	}()

	_ = in.store.SetAll(ctx, items) //nolint:errcheck
}

// Package daemon wires the configured store, the injector and the web service.
package daemon

import (
	"context"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/optionsinject/optionsinject/internal/config"
	"github.com/optionsinject/optionsinject/internal/db"
	"github.com/optionsinject/optionsinject/internal/injector"
	"github.com/optionsinject/optionsinject/internal/logger"
	"github.com/optionsinject/optionsinject/internal/storage"
	"github.com/optionsinject/optionsinject/internal/storage/gormstore"
	"github.com/optionsinject/optionsinject/internal/storage/kvstore"
	"github.com/optionsinject/optionsinject/internal/storage/memory"
	"github.com/optionsinject/optionsinject/internal/storage/mirror"
	"github.com/optionsinject/optionsinject/internal/web"
)

// Storage backend names.
const (
	BackendMemory = "memory"
	BackendGorm   = "gorm"
	BackendKV     = "kv"
)

// ErrUnknownBackend is returned for a backend name OpenStore does not know.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	Store      storage.Store
	Injector   *injector.Injector
	webService *web.Service
	closers    []io.Closer
}

// OpenStore opens every configured backend. The first one is the primary,
// the others receive mirrored writes.
func OpenStore(cfg *config.Config) (storage.Store, []io.Closer, error) {
	area, err := storage.ParseArea(cfg.Storage.Area)
	if err != nil {
		return nil, nil, errors.Wrap(err, cfg.Storage.Area)
	}

	var (
		stores  []storage.Store
		closers []io.Closer
	)

	for _, backend := range cfg.Storage.Backends {
		switch backend {
		case BackendMemory:
			var opts []memory.Option
			if cfg.Storage.EnforceQuota {
				opts = append(opts, memory.WithQuota(storage.QuotaFor(area)))
			}

			stores = append(stores, memory.New(opts...))
		case BackendGorm:
			gdb, err := db.Open(cfg)
			if err != nil {
				closeAll(closers)
				return nil, nil, err
			}

			sqlDB, err := gdb.DB()
			if err != nil {
				closeAll(closers)
				return nil, nil, errors.Wrap(err, "failed to get sql db")
			}

			closers = append(closers, sqlDB)
			stores = append(stores, gormstore.New(gdb, area))
		case BackendKV:
			kv, err := kvstore.Open(cfg, area)
			if err != nil {
				closeAll(closers)
				return nil, nil, err
			}

			closers = append(closers, kv)
			stores = append(stores, kv)
		default:
			closeAll(closers)
			return nil, nil, errors.Wrap(ErrUnknownBackend, backend)
		}

		log.Debug().Str("backend", backend).Str("area", area.String()).Msg("storage backend opened")
	}

	if len(stores) == 0 {
		return nil, nil, errors.Wrap(ErrUnknownBackend, "no backend configured")
	}

	if len(stores) == 1 {
		return stores[0], closers, nil
	}

	return mirror.New(stores[0], stores[1:]...), closers, nil
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		if err := c.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close storage backend")
		}
	}
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	store, closers, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}

	in := injector.New(store, logger.Sink{})

	return &Daemon{
		cfg:        cfg,
		Store:      store,
		Injector:   in,
		webService: web.New(cfg, store, in),
		closers:    closers,
	}, nil
}

// Start seeds an empty store and serves the web service until shutdown.
func (d *Daemon) Start(ctx context.Context) error {
	seed(ctx, d.Store, d.Injector)

	go d.webService.WaitShutdown()

	return d.webService.Start(":" + strconv.Itoa(d.cfg.Webserver.Port))
}

// Close releases the storage backends.
func (d *Daemon) Close() {
	closeAll(d.closers)
}

// seed starts the injector when the store holds no record yet.
func seed(ctx context.Context, store storage.Store, in *injector.Injector) *injector.Future {
	_, err := store.Get(ctx, "schemeVersion")
	if err == nil {
		return nil
	}

	if !errors.Is(err, storage.ErrNotFound) {
		log.Warn().Err(err).Msg("can't read stored settings, skip seeding")
		return nil
	}

	log.Info().Msg("store is empty, applying default settings")

	return in.ApplyDefaultSettings(ctx)
}

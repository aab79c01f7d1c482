// Package settings provides the handlers reading and applying the settings record.
package settings

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/optionsinject/optionsinject/internal/config"
	"github.com/optionsinject/optionsinject/internal/injector"
	record "github.com/optionsinject/optionsinject/internal/settings"
	"github.com/optionsinject/optionsinject/internal/storage"
	"github.com/optionsinject/optionsinject/internal/web/handler"
)

const (
	// Path is the base path of the settings routes.
	Path = handler.RootPath + "settings"

	// DefaultsPath returns the record the injector writes.
	DefaultsPath = Path + "/defaults"

	// ApplyPath starts the injector.
	ApplyPath = Path + "/apply"

	// DefaultApplyRate is the number of apply requests allowed per second.
	DefaultApplyRate = 5
)

// Service is the settings handler service.
type Service struct {
	cfg      *config.Config
	store    storage.Store
	injector *injector.Injector
	limiter  *rate.Limiter
}

// Handler is the settings handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the settings routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, store storage.Store, in *injector.Injector) {
	if app == nil || cfg == nil || store == nil || in == nil {
		log.Fatal().Msg(handler.ErrNilFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.store = store
	s.injector = in

	qps := cfg.Webserver.ApplyRate
	if qps <= 0 {
		qps = DefaultApplyRate
	}

	s.limiter = rate.NewLimiter(rate.Limit(qps), qps) // burst = qps

	app.Get(DefaultsPath, s.Defaults)
	app.Get(Path, s.Stored)
	app.Post(ApplyPath, s.Apply)
}

// Defaults returns the default settings record.
func (s *Service) Defaults(c *fiber.Ctx) error {
	return c.JSON(record.Default())
}

// Stored returns the values currently stored under the record keys.
// Keys that were never written are omitted.
func (s *Service) Stored(c *fiber.Ctx) error {
	stored := make(map[string]json.RawMessage)

	for _, key := range record.Keys() {
		value, err := s.store.Get(c.UserContext(), key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}

		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to read setting")

			return fiber.NewError(fiber.StatusServiceUnavailable, "storage unavailable")
		}

		stored[key] = value
	}

	return c.JSON(stored)
}

// Apply starts the injector and answers without waiting for the write.
func (s *Service) Apply(c *fiber.Ctx) error {
	if !s.limiter.Allow() {
		return fiber.NewError(fiber.StatusTooManyRequests, "too many apply requests")
	}

	// the write outlives the request
	s.injector.ApplyDefaultSettings(context.Background())

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"area":   s.cfg.Storage.Area,
		"status": "started",
	})
}

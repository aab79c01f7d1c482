// Package db opens the configured gorm database.
package db

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/optionsinject/optionsinject/internal/config"
	"github.com/optionsinject/optionsinject/internal/db/dsn"
	"github.com/optionsinject/optionsinject/internal/db/models"
)

// Supported gorm engines.
const (
	EngineSQLite   = "sqlite"
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
)

// ErrUnknownEngine is returned for an unsupported DB.GormEngine.
var ErrUnknownEngine = errors.New("unknown gorm engine")

// Dialector returns the gorm driver for the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case EngineSQLite:
		return sqlite.Open(cfg.DB.Name), nil
	case EngineMySQL:
		return gormmysql.Open(dsn.Create(cfg)), nil
	case EnginePostgres:
		return gormpostgres.Open(dsn.CreatePostgres(cfg)), nil
	default:
		return nil, errors.Wrap(ErrUnknownEngine, cfg.DB.GormEngine)
	}
}

// Open connects to the configured database and migrates the settings table.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err = db.AutoMigrate(&models.Setting{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	return db, nil
}

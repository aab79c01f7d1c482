package config

import (
	"github.com/optionsinject/optionsinject/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Storage   Storage
	Webserver Webserver
}

// Storage selects where injected settings are written.
type Storage struct {
	Area         string   `validate:"required,oneof=sync local"`                 // host storage area
	Backends     []string `validate:"required,min=1,dive,oneof=memory gorm kv"` // first is primary, the rest are mirrors
	Table        string   // table used by the kv backend
	EnforceQuota bool     // apply host quotas to the memory backend
}

// Webserver implement webserver settings.
type Webserver struct {
	Port         int    // listening port for the webserver
	ShutDownTime int    // wait time for shutdown
	URL          string // base url for the webserver
	ApplyRate    int    // POST /settings/apply requests per second
}

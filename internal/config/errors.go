package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrGormEngineRequired error if a database backend is configured without an engine.
	ErrGormEngineRequired = errors.New("toml config db.gormengine is required by the gorm and kv backends")
)

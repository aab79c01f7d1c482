// Package handler holds the shared constants of the web handlers.
package handler

const (
	// RootPath is the root path the route group.
	RootPath = "/"

	// ErrNilFatalLogMsg is used if app, cfg, store or injector is nil.
	ErrNilFatalLogMsg = "app, cfg, store or injector is nil"
)

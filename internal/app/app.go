// Package app wires configuration, logging and the HTTP adapter together.
// It provides lifecycle management for the distance server: create, start, stop.
package app

import (
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/corey/distance/internal/adapters/web"
)

// App is the top-level container for a running server.
type App struct {
	Config    Config
	Logger    *slog.Logger
	WebServer *web.Server

	listener net.Listener
	stopOnce sync.Once
}

// New creates an App. Does not bind or start anything.
func New(cfg Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &App{
		Config:    cfg,
		Logger:    logger,
		WebServer: web.NewServer(logger),
	}, nil
}

// Start binds the configured address and begins serving.
func (a *App) Start() error {
	ln, err := net.Listen("tcp", a.Config.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.Config.Addr(), err)
	}
	a.listener = ln
	if err := a.WebServer.Start(ln); err != nil {
		ln.Close()
		return fmt.Errorf("start server: %w", err)
	}
	a.Logger.Debug("listening", slog.String("addr", ln.Addr().String()))
	return nil
}

// Stop shuts the server down. Idempotent.
func (a *App) Stop() error {
	a.stopOnce.Do(func() {
		a.WebServer.Stop()
		a.Logger.Debug("stopped")
	})
	return nil
}

// Err delivers an error if the server stops serving without Stop being called.
func (a *App) Err() <-chan error {
	return a.WebServer.Err()
}

// URL returns the base URL of the running server.
func (a *App) URL() string {
	return a.WebServer.URL()
}

// Port returns the bound port, which differs from Config.Port when that was 0.
func (a *App) Port() int {
	return a.WebServer.Port()
}

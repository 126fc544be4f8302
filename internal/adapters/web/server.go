package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/corey/distance/internal/ports"
)

// Server serves the calculator page and JSON API over HTTP.
type Server struct {
	logger   *slog.Logger
	listener net.Listener
	httpSrv  *http.Server
	port     int
	started  time.Time
	stopOnce sync.Once
	errCh    chan error
}

// NewServer creates an HTTP server. A nil logger discards log output.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{logger: logger, errCh: make(chan error, 1)}
}

// Handler returns the routing table. Every handler is stateless apart from
// the uptime reported by the health endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET "+ports.PathDistance, s.handleDistance)
	mux.HandleFunc("GET "+ports.PathHealth, s.handleHealth)
	return mux
}

// Start serves on ln in the background. The caller owns ln: it was bound
// before Start and is closed by Stop.
func (s *Server) Start(ln net.Listener) error {
	if ln == nil {
		return errors.New("start: nil listener")
	}
	s.listener = ln
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		s.port = addr.Port
	}
	s.started = time.Now()
	s.httpSrv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http serve failed", slog.String("addr", ln.Addr().String()), slog.String("error", err.Error()))
			s.errCh <- fmt.Errorf("serve %s: %w", ln.Addr(), err)
		}
	}()
	return nil
}

// Err delivers at most one error if serving stops for any reason other than Stop.
func (s *Server) Err() <-chan error {
	return s.errCh
}

// Stop gracefully shuts down the HTTP server. Idempotent.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		if s.httpSrv == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			s.logger.Warn("http shutdown", slog.String("error", err.Error()))
		}
	})
}

// Port returns the bound port number.
func (s *Server) Port() int {
	return s.port
}

// URL returns the base URL clients should use.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.port)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(indexHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	uptime := time.Duration(0)
	if !s.started.IsZero() {
		uptime = time.Since(s.started).Round(time.Second)
	}
	writeJSON(w, http.StatusOK, ports.HealthResult{
		Status: "ok",
		Uptime: uptime.String(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

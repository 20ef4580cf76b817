// Package server serves a review feed over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Server wraps an HTTP server with graceful shutdown.
type Server struct {
	server *http.Server
	logger zerolog.Logger
}

// New creates a server listening on addr.
func New(addr string, feed Feed, logger zerolog.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:         addr,
			Handler:      NewRouter(feed, logger),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		logger: logger,
	}
}

// Start serves until Stop is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Info().Str("address", s.server.Addr).Msg("starting HTTP server")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server.Start: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server with a 30-second timeout.
func (s *Server) Stop() error {
	s.logger.Info().Msg("shutting down HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Stop: %w", err)
	}
	return nil
}

// Package server provides the HTTP and WebSocket surface for the ainything
// catalog browser.
//
// The architecture follows the pattern: CLI → App → Server → Router → Handlers.
// Stateless endpoints evaluate queries against the shared catalog. Each
// WebSocket connection owns one view.Controller, the equivalent of one
// browser page session.
//
// Usage:
//
//	cfg := server.DefaultConfig()
//	srv, err := server.New(app, cfg)
//	if err != nil {
//	    return err
//	}
//	srv.Start()
//	defer srv.Shutdown(ctx)
//	http.ListenAndServe(cfg.Addr(), srv.Handler())
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/agentstation/ainything/cmd/application"
	"github.com/agentstation/ainything/internal/server/cache"
	ws "github.com/agentstation/ainything/internal/server/websocket"
	"github.com/agentstation/ainything/pkg/constants"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	app       application.Application
	cache     *cache.Cache
	hub       *ws.Hub
	upgrader  websocket.Upgrader
	logger    *zerolog.Logger
	config    Config
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	startTime time.Time
}

// New creates a new server instance with the given configuration.
func New(app application.Application, cfg Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := app.Logger()
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = constants.CacheTTL
	}
	if cfg.PathPrefix == "" {
		cfg.PathPrefix = "/api/v1"
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		app:   app,
		cache: cache.New(cfg.CacheTTL, cfg.CacheTTL*2),
		hub:   ws.NewHub(logger),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true // sessions carry no credentials
			},
		},
		logger:    logger,
		config:    cfg,
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
		startTime: time.Now(),
	}

	logger.Debug().Str("addr", cfg.Addr()).Msg("Server instance created")
	return s, nil
}

// Start starts background services.
func (s *Server) Start() {
	s.logger.Debug().Msg("Starting session hub")
	go func() {
		defer close(s.done)
		s.hub.Run(s.ctx)
	}()
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// Shutdown stops background services and closes open sessions.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down server background services")
	s.cancel()

	select {
	case <-s.done:
		s.logger.Info().Msg("Background services shut down successfully")
		return nil
	case <-ctx.Done():
		s.logger.Warn().Msg("Background services shutdown timed out")
		return ctx.Err()
	}
}

// Cache returns the server's cache instance.
func (s *Server) Cache() *cache.Cache {
	return s.cache
}

// Hub returns the session hub.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime
}

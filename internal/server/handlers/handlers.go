// Package handlers provides HTTP request handlers for the ainything API.
package handlers

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/agentstation/ainything/cmd/application"
	"github.com/agentstation/ainything/internal/server/cache"
	ws "github.com/agentstation/ainything/internal/server/websocket"
	"github.com/agentstation/ainything/pkg/constants"
	"github.com/agentstation/ainything/pkg/view"
)

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	app       application.Application
	cache     *cache.Cache
	hub       *ws.Hub
	upgrader  websocket.Upgrader
	logger    *zerolog.Logger
	startTime time.Time
}

// New creates a new Handlers instance.
func New(
	app application.Application,
	cache *cache.Cache,
	hub *ws.Hub,
	upgrader websocket.Upgrader,
	logger *zerolog.Logger,
	startTime time.Time,
) *Handlers {
	return &Handlers{
		app:       app,
		cache:     cache,
		hub:       hub,
		upgrader:  upgrader,
		logger:    logger,
		startTime: startTime,
	}
}

// newSession creates a view controller wired to the application's loader
// and content.
func (h *Handlers) newSession(logger *zerolog.Logger) *view.Controller {
	return view.New(
		h.app.CatalogLoader(),
		view.WithContent(h.app.Content(), constants.DefaultAboutDocument),
		view.WithSettings(h.app.DefaultSettings()),
		view.WithLogger(logger),
	)
}

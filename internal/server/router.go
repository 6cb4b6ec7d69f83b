package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/agentstation/ainything/internal/server/handlers"
	"github.com/agentstation/ainything/internal/server/middleware"
	"github.com/agentstation/ainything/internal/server/response"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()

	h := handlers.New(
		s.app,
		s.cache,
		s.hub,
		s.upgrader,
		s.logger,
		s.startTime,
	)

	s.registerRoutes(mux, h)

	return s.applyMiddleware(mux)
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	prefix := s.config.PathPrefix

	// Favicon handler (return 204 No Content to avoid 404 logs)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Health endpoints
	mux.HandleFunc("/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/ready", h.HandleReady)

	// Models endpoints
	mux.HandleFunc(prefix+"/models", getOnly(h.HandleListModels))
	mux.HandleFunc(prefix+"/models/", getOnly(func(w http.ResponseWriter, r *http.Request) {
		name := extractPathParam(r.URL.EscapedPath(), prefix+"/models/")
		if name == "" {
			response.NotFound(w, "Model name required", "")
			return
		}
		h.HandleGetModel(w, r, name)
	}))

	// Browsing state endpoints
	mux.HandleFunc(prefix+"/facets", getOnly(h.HandleFacets))
	mux.HandleFunc(prefix+"/about", getOnly(h.HandleAbout))
	mux.HandleFunc(prefix+"/resolve", getOnly(h.HandleResolve))

	// Interactive session
	mux.HandleFunc(prefix+"/session/ws", h.HandleSession)

	// OpenAPI specification endpoints
	mux.HandleFunc(prefix+"/openapi.json", getOnly(h.HandleOpenAPIJSON))
	mux.HandleFunc(prefix+"/openapi.yaml", getOnly(h.HandleOpenAPIYAML))
}

// applyMiddleware wraps handler with middleware chain.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	cfg := s.config

	// Rate limiting (if enabled)
	if cfg.RateLimit > 0 {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, s.logger)
		handler = middleware.RateLimit(rateLimiter)(handler)
	}

	// CORS (if enabled)
	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
			corsConfig.AllowAll = false
		} else {
			corsConfig.AllowAll = true
		}
		handler = middleware.CORS(corsConfig)(handler)
	}

	// Logging and recovery (always enabled)
	handler = middleware.Logger(s.logger)(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

// getOnly rejects methods other than GET and HEAD.
func getOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			response.MethodNotAllowed(w, r.Method)
			return
		}
		next(w, r)
	}
}

// extractPathParam extracts and unescapes the first path segment after
// prefix. Model names may contain spaces and other escaped characters.
func extractPathParam(path, prefix string) string {
	trimmed := strings.TrimPrefix(path, prefix)
	segment, _, _ := strings.Cut(trimmed, "/")
	name, err := url.PathUnescape(segment)
	if err != nil {
		return ""
	}
	return name
}

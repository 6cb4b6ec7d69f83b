package handlers

import (
	"net/http"
	"time"

	"github.com/agentstation/ainything/internal/server/response"
)

// HandleHealth handles GET /api/v1/health.
// @Summary Health check
// @Description Health check endpoint (liveness check)
// @Tags health
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Router /api/v1/health [get].
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": "ainything-api",
		"version": h.app.Version(),
		"uptime":  time.Since(h.startTime).Round(time.Second).String(),
	})
}

// HandleReady handles GET /api/v1/ready.
// @Summary Readiness check
// @Description Readiness check including catalog, cache and session status
// @Tags health
// @Produce json
// @Success 200 {object} response.Response{data=object}
// @Failure 503 {object} response.Response{error=response.Error}
// @Router /api/v1/ready [get].
func (h *Handlers) HandleReady(w http.ResponseWriter, r *http.Request) {
	cat, err := h.app.Catalog(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("Catalog not available")
		response.ServiceUnavailable(w, "Catalog not available: "+err.Error())
		return
	}

	response.OK(w, map[string]any{
		"status":   "ready",
		"models":   cat.Len(),
		"cache":    h.cache.GetStats(),
		"sessions": h.hub.ClientCount(),
	})
}

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/agentstation/ainything/internal/server/cache"
	"github.com/agentstation/ainything/internal/server/response"
	ws "github.com/agentstation/ainything/internal/server/websocket"
	"github.com/agentstation/ainything/pkg/constants"
	"github.com/agentstation/ainything/pkg/logging"
	"github.com/agentstation/ainything/pkg/view"
)

// aboutUnavailable carries the user-facing About failure message.
type aboutUnavailable struct{ message string }

func (e aboutUnavailable) Error() string { return e.message }

// HandleAbout handles GET /api/v1/about.
// @Summary About document
// @Description The About document with front matter and rendered HTML
// @Tags content
// @Produce json
// @Success 200 {object} response.Response{data=content.Document}
// @Failure 503 {object} response.Response{error=response.Error}
// @Router /api/v1/about [get].
func (h *Handlers) HandleAbout(w http.ResponseWriter, r *http.Request) {
	renderer := h.app.Content()
	if renderer == nil {
		response.ServiceUnavailable(w, "Failed to load About content.")
		return
	}

	doc, err := h.cache.GetOrCompute(cache.KindAbout, func() (any, error) {
		about := view.LoadAbout(r.Context(), renderer, constants.DefaultAboutDocument)
		if about.Err != "" {
			return nil, aboutUnavailable{message: about.Err}
		}
		return about.Document, nil
	})
	if err != nil {
		h.logger.Warn().Err(err).Msg("About content unavailable")
		response.ServiceUnavailable(w, err.Error())
		return
	}

	response.OK(w, doc)
}

// HandleResolve handles GET /api/v1/resolve.
// @Summary Resolve a URL fragment
// @Description Snapshot of a fresh browsing session after navigating to the fragment
// @Tags session
// @Produce json
// @Param fragment query string false "URL fragment such as #model=Claude or #search=chat"
// @Success 200 {object} response.Response{data=view.Snapshot}
// @Router /api/v1/resolve [get].
func (h *Handlers) HandleResolve(w http.ResponseWriter, r *http.Request) {
	session := h.newSession(logging.FromContext(r.Context()))
	snap := session.Start(r.Context(), r.URL.Query().Get("fragment"))
	response.OK(w, snap)
}

// HandleSession handles WebSocket browsing sessions at /api/v1/session/ws.
// @Summary Interactive session
// @Description WebSocket session driven by view actions; replies with snapshots
// @Tags session
// @Param fragment query string false "Initial URL fragment"
// @Success 101 "Switching Protocols"
// @Router /api/v1/session/ws [get].
func (h *Handlers) HandleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	clientID := fmt.Sprintf("%s-%d", r.RemoteAddr, time.Now().UnixNano())
	ctx := logging.WithSession(context.WithoutCancel(r.Context()), clientID)
	client := ws.NewClient(clientID, h.hub, conn, h.newSession(logging.FromContext(ctx)))

	if !h.hub.Register(client) {
		_ = conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump(ctx, r.URL.Query().Get("fragment"))
}

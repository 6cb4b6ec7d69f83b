// Package websocket runs interactive browsing sessions over WebSocket.
// Each connection owns one view.Controller; frames from the peer are
// decoded into view actions and every transition is pushed back as a
// snapshot.
package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/agentstation/ainything/pkg/constants"
	"github.com/agentstation/ainything/pkg/view"
)

// Hub tracks active sessions and closes them on shutdown.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
	logger     *zerolog.Logger
}

// NewHub creates a new session hub.
func NewHub(logger *zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run starts the hub's main loop and blocks until ctx is canceled.
// All sessions still open at that point are closed.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Info().
				Str("client_id", client.id).
				Int("total_clients", total).
				Msg("Session opened")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.close()
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Info().
				Str("client_id", client.id).
				Int("total_clients", total).
				Msg("Session closed")

		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				client.close()
			}
			h.mu.Unlock()
			h.logger.Debug().Msg("Session hub stopped")
			return
		}
	}
}

// Register adds a client to the hub. It returns false if the hub has
// stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client and stops its write pump.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// ClientCount returns the number of open sessions.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Message types sent to the peer.
const (
	TypeSnapshot = "snapshot"
	TypeError    = "error"
)

// Message represents a WebSocket message.
type Message struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// ErrorData is the payload of an error message.
type ErrorData struct {
	Message string `json:"message"`
}

// Client is one browsing session bound to a WebSocket connection. The send
// channel is never closed; done signals that the hub has let go of the
// client.
type Client struct {
	id        string
	hub       *Hub
	conn      *websocket.Conn
	send      chan Message
	done      chan struct{}
	closeOnce sync.Once
	session   *view.Controller
}

// NewClient creates a new session client.
func NewClient(id string, hub *Hub, conn *websocket.Conn, session *view.Controller) *Client {
	return &Client{
		id:      id,
		hub:     hub,
		conn:    conn,
		send:    make(chan Message, 16),
		done:    make(chan struct{}),
		session: session,
	}
}

// close stops the client. It is safe to call more than once.
func (c *Client) close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// Done is closed once the hub has released the client.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// ID returns the client identifier.
func (c *Client) ID() string {
	return c.id
}

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = constants.MaxSessionMessageBytes
)

// Start loads the session with the initial fragment and queues the first
// snapshot.
func (c *Client) Start(ctx context.Context, initial string) {
	c.push(snapshotMessage(c.session.Start(ctx, initial)))
}

// Handle decodes one frame and dispatches it to the session. A frame
// that cannot be decoded yields an error message and leaves the session
// untouched.
func (c *Client) Handle(ctx context.Context, data []byte) {
	action, err := DecodeAction(data)
	if err != nil {
		c.hub.logger.Debug().Err(err).Str("client_id", c.id).Msg("Rejected session frame")
		c.push(Message{
			Type:      TypeError,
			Timestamp: time.Now(),
			Data:      ErrorData{Message: err.Error()},
		})
		return
	}
	c.push(snapshotMessage(c.session.Dispatch(ctx, action)))
}

// push queues a message. Messages for a released client are discarded and
// messages the peer is not keeping up with are dropped.
func (c *Client) push(m Message) {
	select {
	case <-c.done:
		return
	default:
	}
	select {
	case c.send <- m:
	case <-c.done:
	default:
		c.hub.logger.Warn().Str("client_id", c.id).Msg("Session send buffer full, message dropped")
	}
}

func snapshotMessage(s view.Snapshot) Message {
	return Message{Type: TypeSnapshot, Timestamp: time.Now(), Data: s}
}

// ReadPump starts the session and then pumps frames from the connection
// into it until the peer goes away.
func (c *Client) ReadPump(ctx context.Context, initial string) {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	c.Start(ctx, initial)

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Error().Err(err).Str("client_id", c.id).Msg("WebSocket read error")
			}
			return
		}
		c.Handle(ctx, data)
	}
}

// WritePump pumps messages from the session to the WebSocket connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			data, err := json.Marshal(message)
			if err != nil {
				c.hub.logger.Error().Err(err).Msg("Failed to marshal session message")
				continue
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

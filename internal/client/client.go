// Package client implements the chat-side connection and session engine:
// one live socket per active session with automatic reconnection, a
// bounded registry of known sessions, a history loader and the message
// pipeline that feeds the transcript view.
package client

import (
	"context"
	"sync"

	"github.com/huynh044/ChatBot-BookStore/internal/api"
	"github.com/huynh044/ChatBot-BookStore/internal/model/chat"
	"github.com/huynh044/ChatBot-BookStore/internal/storage"
)

// greeting opens every freshly reset conversation.
const greeting = "Đã tạo đoạn chat mới. Bạn có thể bắt đầu hỏi hoặc đặt sách nhé!"

// Config wires a chat client.
type Config struct {
	// API is the REST client for the chat backend.
	API *api.Client
	// Store persists the session registry.
	Store storage.Store
	// WSBase is the live endpoint base, e.g. "ws://localhost:8080";
	// sessions connect at WSBase + "/ws/<session_id>".
	WSBase string
	// Dialer overrides the transport, for tests. Nil means WebSocket.
	Dialer Dialer
	// OnState observes the connection indicator. May be nil.
	OnState func(ConnState)
	// OnMode observes the mode badge. May be nil.
	OnMode func(string)
}

// Client owns the active session identifier and coordinates the registry,
// connection manager, history loader and message pipeline around it.
// Switching the active session is the single mutation point that cascades
// to the other components.
type Client struct {
	api      *api.Client
	registry *Registry
	view     *Transcript
	history  *HistoryLoader
	pipeline *Pipeline
	conn     *Conn
	onMode   func(string)

	mu     sync.Mutex
	active string
}

// New assembles a client from cfg.
func New(cfg Config) *Client {
	view := NewTranscript()
	pipeline := NewPipeline(cfg.API, view, cfg.OnMode)

	conn := NewConn(ConnConfig{
		Dialer: cfg.Dialer,
		URLFor: func(sessionID string) string {
			return cfg.WSBase + "/ws/" + sessionID
		},
		OnEvent: pipeline.HandleEvent,
		OnState: cfg.OnState,
	})

	return &Client{
		api:      cfg.API,
		registry: NewRegistry(cfg.Store),
		view:     view,
		history:  NewHistoryLoader(cfg.API, view),
		pipeline: pipeline,
		conn:     conn,
		onMode:   cfg.OnMode,
	}
}

// Transcript exposes the view for renderers.
func (c *Client) Transcript() *Transcript { return c.view }

// ConnState reports the live-connection indicator.
func (c *Client) ConnState() ConnState { return c.conn.State() }

// Active returns the current session identifier.
func (c *Client) Active() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Sessions lists remembered session identifiers, most recent first.
func (c *Client) Sessions() []string {
	return c.registry.List()
}

// Start adopts sessionID as the active session, loads its history and
// opens the live connection.
func (c *Client) Start(ctx context.Context, sessionID string) {
	c.setActive(sessionID)
	c.registry.Remember(sessionID)
	c.history.Load(ctx, sessionID)
	c.conn.Connect(ctx, sessionID)
}

// Send runs the message pipeline against the active session.
func (c *Client) Send(ctx context.Context, text string) {
	c.pipeline.Send(ctx, c.Active(), text)
}

// SwitchTo makes sessionID current: it is remembered, its transcript
// repaints the view, and the connection retargets without reconnecting
// into the old session.
func (c *Client) SwitchTo(ctx context.Context, sessionID string) {
	c.setActive(sessionID)
	c.registry.Remember(sessionID)
	c.history.Load(ctx, sessionID)
	c.conn.SwitchTo(ctx, sessionID)
}

// Reset asks the server for a fresh session. On success the new id
// becomes active, the transcript clears down to the localized greeting,
// the mode badge returns to Catalog and the connection retargets. The
// error is returned for the caller to surface as a blocking message.
func (c *Client) Reset(ctx context.Context) (string, error) {
	sessionID, err := c.api.Reset(ctx)
	if err != nil {
		return "", err
	}

	c.setActive(sessionID)
	c.registry.Remember(sessionID)

	c.view.Replace(nil)
	c.view.Append(chat.Message{Role: chat.RoleAssistant, Content: greeting})
	if c.onMode != nil {
		c.onMode(ModeCatalog)
	}

	c.conn.SwitchTo(ctx, sessionID)
	return sessionID, nil
}

// Close tears the live connection down deliberately.
func (c *Client) Close() {
	c.conn.Disconnect()
}

func (c *Client) setActive(sessionID string) {
	c.mu.Lock()
	c.active = sessionID
	c.mu.Unlock()
}

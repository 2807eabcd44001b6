// Package admin consumes the admin-side live feed: a one-directional
// variant of the chat connection that always reconnects and carries only
// new-order notifications.
package admin

import (
	"context"

	"github.com/huynh044/ChatBot-BookStore/internal/client"
	"github.com/huynh044/ChatBot-BookStore/internal/model/chat"
)

// Config wires a watcher.
type Config struct {
	// URL is the admin live endpoint, e.g. "ws://localhost:8080/ws/admin".
	URL string
	// Dialer overrides the transport, for tests.
	Dialer client.Dialer
	// OnNewOrder fires once per pushed new_order notification.
	OnNewOrder func(orderID int64)
	// OnState observes the connection indicator. May be nil.
	OnState func(client.ConnState)
}

// Watcher follows /ws/admin. There is no session multiplexing: the target
// never changes, so every drop is unexpected and retries forever.
type Watcher struct {
	conn *client.Conn
}

// New creates a watcher from cfg.
func New(cfg Config) *Watcher {
	conn := client.NewConn(client.ConnConfig{
		Dialer: cfg.Dialer,
		URLFor: func(string) string { return cfg.URL },
		OnEvent: func(ev chat.Event) {
			if ev.Type == chat.EventNewOrder && cfg.OnNewOrder != nil {
				cfg.OnNewOrder(ev.OrderID)
			}
		},
		OnState: cfg.OnState,
	})
	return &Watcher{conn: conn}
}

// Start opens the feed.
func (w *Watcher) Start(ctx context.Context) {
	w.conn.Connect(ctx, "admin")
}

// State reports the connection indicator.
func (w *Watcher) State() client.ConnState {
	return w.conn.State()
}

// Stop closes the feed deliberately; no reconnect fires afterwards.
func (w *Watcher) Stop() {
	w.conn.Disconnect()
}

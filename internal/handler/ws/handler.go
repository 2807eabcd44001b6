// Package ws exposes the live endpoints of the stub server: one channel
// per chat session and a broadcast channel for admins.
package ws

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// Handler upgrades and registers live connections.
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// New creates a handler feeding hub.
func New(hub *Hub) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// RegisterRoutes mounts the live endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/admin", h.handleAdmin)
	r.Get("/ws/{sessionID}", h.handleSession)
}

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade session=%s failed: %v", sessionID, err)
		return
	}

	h.hub.addUser(sessionID, conn)
	defer func() {
		h.hub.removeUser(sessionID, conn)
		conn.Close()
	}()

	drain(conn)
}

func (h *Handler) handleAdmin(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] admin upgrade failed: %v", err)
		return
	}

	h.hub.addAdmin(conn)
	defer func() {
		h.hub.removeAdmin(conn)
		conn.Close()
	}()

	drain(conn)
}

// drain keeps the connection open until the peer goes away; the stub
// never acts on inbound frames.
func drain(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

package ws

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks live connections: per-session user channels plus the admin
// broadcast set.
type Hub struct {
	mu     sync.Mutex
	users  map[string]map[*websocket.Conn]struct{}
	admins map[*websocket.Conn]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		users:  make(map[string]map[*websocket.Conn]struct{}),
		admins: make(map[*websocket.Conn]struct{}),
	}
}

// SendToSession pushes payload to every connection of one session.
func (h *Hub) SendToSession(sessionID string, payload any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.users[sessionID] {
		if err := conn.WriteJSON(payload); err != nil {
			log.Printf("[ws] push to session=%s failed: %v", sessionID, err)
			conn.Close()
			delete(h.users[sessionID], conn)
		}
	}
}

// BroadcastAdmin pushes payload to every admin connection.
func (h *Hub) BroadcastAdmin(payload any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.admins {
		if err := conn.WriteJSON(payload); err != nil {
			log.Printf("[ws] admin broadcast failed: %v", err)
			conn.Close()
			delete(h.admins, conn)
		}
	}
}

func (h *Hub) addUser(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.users[sessionID] == nil {
		h.users[sessionID] = make(map[*websocket.Conn]struct{})
	}
	h.users[sessionID][conn] = struct{}{}
}

func (h *Hub) removeUser(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.users[sessionID], conn)
}

func (h *Hub) addAdmin(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.admins[conn] = struct{}{}
}

func (h *Hub) removeAdmin(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.admins, conn)
}

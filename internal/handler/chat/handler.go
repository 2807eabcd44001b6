package chat

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/huynh044/ChatBot-BookStore/internal/handler/ws"
	model "github.com/huynh044/ChatBot-BookStore/internal/model/chat"
	chatService "github.com/huynh044/ChatBot-BookStore/internal/service/chat"
	"github.com/huynh044/ChatBot-BookStore/pkg/utils"
)

// Handler serves the user-facing chat endpoints of the stub server.
type Handler struct {
	chatSvc *chatService.Service
	hub     *ws.Hub
}

// New creates the chat handler.
func New(chatSvc *chatService.Service, hub *ws.Hub) *Handler {
	return &Handler{chatSvc: chatSvc, hub: hub}
}

// RegisterRoutes mounts the chat endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleSend)
	r.Get("/chat/history", h.handleHistory)
	r.Post("/chat/reset", h.handleReset)
}

// handleSend runs one request/response turn and notifies admins when the
// turn opened a pending order.
func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"session_id"`
		Message   string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payload.Message = strings.TrimSpace(payload.Message)
	if payload.SessionID == "" || payload.Message == "" {
		utils.RespondError(w, http.StatusBadRequest, "session_id and message are required")
		return
	}

	h.chatSvc.Append(r.Context(), payload.SessionID, model.RoleUser, payload.Message)

	reply, state, orderID := h.chatSvc.Reply(r.Context(), payload.SessionID, payload.Message)
	h.chatSvc.Append(r.Context(), payload.SessionID, model.RoleAssistant, reply)

	if orderID != 0 {
		h.hub.BroadcastAdmin(model.Event{Type: model.EventNewOrder, OrderID: orderID})
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"session_id": payload.SessionID,
		"reply":      reply,
		"state":      state,
	})
}

// handleHistory returns the ordered transcript for one session.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		utils.RespondError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	messages := h.chatSvc.Transcript(r.Context(), sessionID)
	utils.RespondJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

// handleReset provisions a fresh session identifier.
func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	sessionID := h.chatSvc.CreateSession(r.Context())
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"session_id": sessionID,
	})
}

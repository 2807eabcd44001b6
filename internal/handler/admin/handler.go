package admin

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/huynh044/ChatBot-BookStore/internal/handler/ws"
	model "github.com/huynh044/ChatBot-BookStore/internal/model/chat"
	chatService "github.com/huynh044/ChatBot-BookStore/internal/service/chat"
	"github.com/huynh044/ChatBot-BookStore/pkg/utils"
)

// Handler serves the admin-side endpoints: read-only chat browsing plus
// the order decisions that push events to the owning session.
type Handler struct {
	chatSvc *chatService.Service
	hub     *ws.Hub
}

// New creates the admin handler.
func New(chatSvc *chatService.Service, hub *ws.Hub) *Handler {
	return &Handler{chatSvc: chatSvc, hub: hub}
}

// RegisterRoutes mounts the admin endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/chats", h.handleListChats)
	r.Get("/api/chats/{sessionID}", h.handleChatTranscript)
	r.Post("/orders/{orderID}/approve", h.decideOrder(model.EventOrderApproved))
	r.Post("/orders/{orderID}/cancel", h.decideOrder(model.EventOrderCancelled))
}

func (h *Handler) handleListChats(w http.ResponseWriter, r *http.Request) {
	items := h.chatSvc.ListSessions(r.Context(), r.URL.Query().Get("q"))
	utils.RespondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) handleChatTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	messages := h.chatSvc.Transcript(r.Context(), sessionID)
	utils.RespondJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

// decideOrder resolves the order's owning session and pushes the decision
// event over its live channel.
func (h *Handler) decideOrder(eventType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
		if err != nil {
			utils.RespondJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "message": "invalid order id"})
			return
		}

		sessionID, err := h.chatSvc.OrderSession(r.Context(), orderID)
		if err != nil {
			utils.RespondJSON(w, http.StatusNotFound, map[string]any{"ok": false, "message": err.Error()})
			return
		}

		h.hub.SendToSession(sessionID, model.Event{Type: eventType, OrderID: orderID})
		utils.RespondJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

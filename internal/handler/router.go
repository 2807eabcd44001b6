package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	adminHandler "github.com/huynh044/ChatBot-BookStore/internal/handler/admin"
	chatHandler "github.com/huynh044/ChatBot-BookStore/internal/handler/chat"
	"github.com/huynh044/ChatBot-BookStore/internal/handler/ws"
	chatService "github.com/huynh044/ChatBot-BookStore/internal/service/chat"
)

// NewRouter wires the stub server's HTTP and live routes.
func NewRouter(chatSvc *chatService.Service, hub *ws.Hub) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	chatH := chatHandler.New(chatSvc, hub)
	adminH := adminHandler.New(chatSvc, hub)
	wsH := ws.New(hub)

	r.Route("/api", func(api chi.Router) {
		chatH.RegisterRoutes(api)
	})

	r.Route("/admin", func(admin chi.Router) {
		adminH.RegisterRoutes(admin)
	})

	wsH.RegisterRoutes(r)

	return r
}

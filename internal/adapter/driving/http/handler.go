package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/voxlink/relay/internal/adapter/driven/gateway/ws"
	"github.com/voxlink/relay/internal/core/service"
)

type Handler struct {
	Registry *service.Registry
	Router   *service.Router
	Keywords *service.KeywordFilter
	Hub      *ws.Hub
}

func NewHandler(registry *service.Registry, router *service.Router, keywords *service.KeywordFilter, hub *ws.Hub) *Handler {
	return &Handler{
		Registry: registry,
		Router:   router,
		Keywords: keywords,
		Hub:      hub,
	}
}

func (h *Handler) NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/ws", h.ServeWS)

	return r
}

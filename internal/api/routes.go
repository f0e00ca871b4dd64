package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter returns the tool API router. Paths are relative so it can be
// mounted under a prefix.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/tools", func(r chi.Router) {
		r.Get("/", h.ListTools)
		r.Get("/{tool}", h.GetTool)
		r.Post("/{tool}/execute", h.ExecuteTool)
	})

	return r
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all dataset routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/datasets", func(r chi.Router) {
		r.Get("/list", h.HandleList)
		r.Get("/{name}/metadata", func(w http.ResponseWriter, r *http.Request) {
			name := chi.URLParam(r, "name")
			h.HandleMetadata(w, r, name)
		})
	})
}

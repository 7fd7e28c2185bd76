package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers strategy and backtest routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/strategy", func(r chi.Router) {
		r.Post("/validate", h.HandleValidateStrategy)
	})

	r.Route("/backtest", func(r chi.Router) {
		r.Post("/run", h.HandleRunBacktest)
	})
}

// Package handlers provides HTTP handlers for strategy validation and
// backtest execution.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"optionslab/internal/domain"
	"optionslab/internal/modules/backtest"
)

// Handler handles strategy and backtest HTTP requests
type Handler struct {
	service *backtest.Service
	log     zerolog.Logger
}

// NewHandler creates a new backtest handler
func NewHandler(service *backtest.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "backtest").Logger(),
	}
}

// HandleValidateStrategy handles POST /api/strategy/validate.
// Structural validation (formats, ranges, enums) happens here, before
// the core is invoked; existence checks happen inside the service.
func (h *Handler) HandleValidateStrategy(w http.ResponseWriter, r *http.Request) {
	var strategy domain.StrategyConfig
	if err := json.NewDecoder(r.Body).Decode(&strategy); err != nil {
		h.writeBadRequest(w, "Invalid request body: "+err.Error())
		return
	}

	if err := strategy.Validate(); err != nil {
		h.writeBadRequest(w, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, h.service.ValidateStrategy(strategy))
}

// HandleRunBacktest handles POST /api/backtest/run. Semantic failures
// (missing dataset, bad strike, thin data) come back as a 200 with
// status "error" and a machine-readable code, matching the validation
// endpoint; only malformed requests yield a 4xx.
func (h *Handler) HandleRunBacktest(w http.ResponseWriter, r *http.Request) {
	var req backtest.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Strategy.Validate(); err != nil {
		h.writeBadRequest(w, err.Error())
		return
	}
	if err := req.DateRange.Validate(); err != nil {
		h.writeBadRequest(w, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, h.service.Run(req))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, message string) {
	h.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"status":  "error",
		"message": message,
	})
}

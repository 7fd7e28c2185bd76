// Package handlers provides HTTP handlers for dataset operations.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"optionslab/internal/domain"
	"optionslab/internal/modules/datasets"
)

// Handler handles dataset HTTP requests
type Handler struct {
	service *datasets.Service
	log     zerolog.Logger
}

// NewHandler creates a new dataset handler
func NewHandler(service *datasets.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "datasets").Logger(),
	}
}

// HandleList handles GET /api/datasets/list
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListAll()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list datasets")
		h.writeError(w, http.StatusInternalServerError, "Failed to list datasets", "")
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// HandleMetadata handles GET /api/datasets/{name}/metadata
func (h *Handler) HandleMetadata(w http.ResponseWriter, r *http.Request, name string) {
	resp, err := h.service.Metadata(name)
	if err != nil {
		if code, ok := domain.CodeOf(err); ok && code == domain.CodeDatasetNotFound {
			h.writeError(w, http.StatusNotFound, domain.MessageOf(err), string(code))
			return
		}
		h.log.Error().Err(err).Str("dataset", name).Msg("Failed to get dataset metadata")
		h.writeError(w, http.StatusInternalServerError, "Failed to get dataset metadata", "")
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message, code string) {
	body := map[string]interface{}{
		"status":  "error",
		"message": message,
	}
	if code != "" {
		body["error_code"] = code
	}
	h.writeJSON(w, status, body)
}

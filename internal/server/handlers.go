package server

import (
	"encoding/json"
	"net/http"
)

// handleRoot describes the API
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Options Strategy Backtester API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"strategy_validation": "/api/strategy/validate",
			"backtest_execution":  "/api/backtest/run",
			"list_datasets":       "/api/datasets/list",
			"dataset_metadata":    "/api/datasets/{dataset_name}/metadata",
		},
	})
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "optionslab",
	})
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

package handlers

import (
	"encoding/json"
	"net/http"

	"uiforge/internal/contextutil"
	"uiforge/internal/ingest"
)

// StatsHandler reports per-source-type embedding counts.
type StatsHandler struct {
	pipeline *ingest.Pipeline
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(pipeline *ingest.Pipeline) *StatsHandler {
	return &StatsHandler{pipeline: pipeline}
}

// ServeHTTP handles embedding statistics requests.
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	stats, err := h.pipeline.Stats(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to gather embedding stats", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to gather stats")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// Package handlers implements the HTTP API handlers.
package handlers

import (
	"encoding/json"
	"net/http"

	"uiforge/internal/contextutil"
	"uiforge/internal/recommender"
)

// RecommendHandler handles HTTP requests for style recommendations.
type RecommendHandler struct {
	recommender *recommender.Recommender
}

// NewRecommendHandler creates a new RecommendHandler.
func NewRecommendHandler(rec *recommender.Recommender) *RecommendHandler {
	return &RecommendHandler{recommender: rec}
}

// RecommendRequest represents the HTTP request payload for style
// recommendations.
type RecommendRequest struct {
	Prompt   string `json:"prompt"`
	Industry string `json:"industry,omitempty"`
	Mood     string `json:"mood,omitempty"`
}

// ServeHTTP handles style recommendation requests.
func (h *RecommendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Prompt == "" {
		logger.WarnContext(ctx, "empty prompt in request")
		writeError(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	rec := h.recommender.RecommendStyle(ctx, req.Prompt, recommender.StyleContext{
		Industry: req.Industry,
		Mood:     req.Mood,
	})

	logger.InfoContext(ctx, "style recommendation served",
		"source", rec.Source,
		"design_system", rec.DesignSystem,
		"confidence", rec.Confidence,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(rec); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

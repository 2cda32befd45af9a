// Package http wires the API routes and request middleware.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"uiforge/internal/handlers"
	"uiforge/internal/ingest"
	"uiforge/internal/recommender"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Recommender *recommender.Recommender
	Pipeline    *ingest.Pipeline
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)
	r.Use(LoggerMiddleware)

	recommendHandler := handlers.NewRecommendHandler(deps.Recommender)
	statsHandler := handlers.NewStatsHandler(deps.Pipeline)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/recommend", recommendHandler)
		r.Method(http.MethodGet, "/stats", statsHandler)
	})

	r.Method(http.MethodGet, "/health", handlers.NewHealthHandler())

	return r
}

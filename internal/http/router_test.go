package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	storemocks "uiforge/internal/embedstore/mocks"
	"uiforge/internal/ingest"
	ingestmocks "uiforge/internal/ingest/mocks"
	"uiforge/internal/recommender"
	recmocks "uiforge/internal/recommender/mocks"
)

func newTestRouter(t *testing.T) (http.Handler, *storemocks.MockEmbeddingStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := storemocks.NewMockEmbeddingStore(ctrl)

	table, err := recommender.LoadStyleTable("")
	if err != nil {
		t.Fatalf("LoadStyleTable() error = %v", err)
	}

	rec := recommender.New(recmocks.NewMockQueryEmbedder(ctrl), store, table, nil)
	pipeline := ingest.NewPipeline(ingestmocks.NewMockEmbedder(ctrl), store, ingest.Options{})

	return NewRouter(&Deps{Recommender: rec, Pipeline: pipeline}), store
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /health status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("GET /nope status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestRouter_RecommendValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/recommend", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("POST /api/recommend without prompt status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"uiforge/internal/embedstore"
	storemocks "uiforge/internal/embedstore/mocks"
	"uiforge/internal/ingest"
	ingestmocks "uiforge/internal/ingest/mocks"
)

func newStatsHandler(t *testing.T) (*StatsHandler, *storemocks.MockEmbeddingStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	embedder := ingestmocks.NewMockEmbedder(ctrl)
	store := storemocks.NewMockEmbeddingStore(ctrl)

	pipeline := ingest.NewPipeline(embedder, store, ingest.Options{})
	return NewStatsHandler(pipeline), store
}

func TestStatsHandler(t *testing.T) {
	handler, store := newStatsHandler(t)

	store.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, st embedstore.SourceType) (int, error) {
			if st == embedstore.SourceToken {
				return 42, nil
			}
			return 0, nil
		}).
		Times(len(embedstore.SourceTypes))

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var stats ingest.Stats
	if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if stats.Total != 42 {
		t.Errorf("Total = %d, want 42", stats.Total)
	}
	if stats.BySourceType[embedstore.SourceToken] != 42 {
		t.Errorf("token count = %d, want 42", stats.BySourceType[embedstore.SourceToken])
	}
}

func TestStatsHandler_StoreError(t *testing.T) {
	handler, store := newStatsHandler(t)

	store.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(0, errors.New("store down"))

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestHealthHandler(t *testing.T) {
	handler := NewHealthHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

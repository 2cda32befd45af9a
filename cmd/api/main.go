package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"uiforge/internal/config"
	"uiforge/internal/embedstore"
	"uiforge/internal/http"
	"uiforge/internal/ingest"
	"uiforge/internal/llm"
	"uiforge/internal/recommender"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx := context.Background()

	// Initialize the embedding store backend
	var store embedstore.EmbeddingStore
	switch cfg.StoreBackend {
	case "qdrant":
		qdrantStore, err := embedstore.NewQdrantStore(cfg.QdrantURL, cfg.QdrantCollection)
		if err != nil {
			log.Fatalf("Failed to create Qdrant client: %v", err)
		}
		if err := qdrantStore.EnsureCollection(ctx, cfg.VectorSize); err != nil {
			log.Fatalf("Failed to ensure Qdrant collection: %v", err)
		}
		slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.VectorSize)
		store = qdrantStore
	default:
		sqliteStore, err := embedstore.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to open embedding store: %v", err)
		}
		defer func() {
			_ = sqliteStore.Close()
		}()
		slog.Info("SQLite embedding store ready", "path", cfg.DBPath)
		store = sqliteStore
	}

	// Validate embedding client vector size (fail-fast)
	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.EmbeddingAPIKey, cfg.EmbeddingModelName, cfg.VectorSize)
	testEmbeddings, err := embedder.EmbedTexts(ctx, []string{"test"})
	if err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	if len(testEmbeddings) == 0 || len(testEmbeddings[0]) != cfg.VectorSize {
		log.Fatalf("Embedding vector size mismatch: expected %d, got %d", cfg.VectorSize, len(testEmbeddings[0]))
	}
	slog.Info("Embedding client validated", "vector_size", cfg.VectorSize)

	// Load heuristic style tables
	table, err := recommender.LoadStyleTable(cfg.StyleTablePath)
	if err != nil {
		log.Fatalf("Failed to load style table: %v", err)
	}

	rec := recommender.New(embedder, store, table, logger)
	slog.Info("Style recommender initialized", "backend", cfg.StoreBackend)

	pipeline := ingest.NewPipeline(embedder, store, ingest.Options{
		CacheDir:  cfg.IngestCacheDir,
		DocsDir:   cfg.DocsDir,
		ShadcnDir: cfg.ShadcnDir,
	})

	deps := &http.Deps{
		Recommender: rec,
		Pipeline:    pipeline,
	}
	router := http.NewRouter(deps)

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}

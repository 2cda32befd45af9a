// Command ingest populates the embedding store with design knowledge.
//
// Usage:
//
//	ingest [flags] <source>
//	ingest -stats
//	ingest -test-query "dark fintech dashboard"
//
// Sources: shadcn, axe, tokens, aria, docs, all.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"uiforge/internal/config"
	"uiforge/internal/embedstore"
	"uiforge/internal/ingest"
	"uiforge/internal/llm"
)

func main() {
	stats := flag.Bool("stats", false, "print per-source-type embedding counts and exit")
	testQuery := flag.String("test-query", "", "run a semantic search against token embeddings and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})
	slog.SetDefault(slog.New(handler))

	ctx := context.Background()

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
		store = qdrantStore
	default:
		sqliteStore, err := embedstore.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to open embedding store: %v", err)
		}
		defer func() {
			_ = sqliteStore.Close()
		}()
		store = sqliteStore
	}

	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.EmbeddingAPIKey, cfg.EmbeddingModelName, cfg.VectorSize)
	pipeline := ingest.NewPipeline(embedder, store, ingest.Options{
		CacheDir:  cfg.IngestCacheDir,
		DocsDir:   cfg.DocsDir,
		ShadcnDir: cfg.ShadcnDir,
	})

	if *stats {
		printStats(ctx, pipeline)
		return
	}

	if *testQuery != "" {
		runTestQuery(ctx, embedder, store, *testQuery)
		return
	}

	source := flag.Arg(0)
	if source == "" {
		fmt.Fprintf(os.Stderr, "usage: ingest [-stats] [-test-query QUERY] <%s|all>\n", strings.Join(ingest.Sources(), "|"))
		os.Exit(2)
	}

	count, err := pipeline.Run(ctx, source)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}
	slog.Info("Ingestion complete", "source", source, "count", count)
}

func printStats(ctx context.Context, pipeline *ingest.Pipeline) {
	stats, err := pipeline.Stats(ctx)
	if err != nil {
		log.Fatalf("Failed to gather stats: %v", err)
	}

	fmt.Println("\nEmbedding statistics:")
	fmt.Println(strings.Repeat("-", 28))
	for _, st := range embedstore.SourceTypes {
		if count := stats.BySourceType[st]; count > 0 {
			fmt.Printf("  %-15s %6d\n", st, count)
		}
	}
	fmt.Println(strings.Repeat("-", 28))
	fmt.Printf("  %-15s %6d\n", "TOTAL", stats.Total)
}

func runTestQuery(ctx context.Context, embedder *llm.EmbeddingsClient, store embedstore.EmbeddingStore, query string) {
	vector, err := embedder.Embed(ctx, query)
	if err != nil {
		log.Fatalf("Failed to embed query: %v", err)
	}

	results, err := store.SemanticSearch(ctx, vector, embedstore.SourceToken, 10, 0.3)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	fmt.Printf("\nTop matches for %q:\n", query)
	for i, r := range results {
		fmt.Printf("  %2d. [%.3f] %s\n", i+1, r.Similarity, r.Text)
	}
	if len(results) == 0 {
		fmt.Println("  (no matches above threshold)")
	}
}

// Package ingest populates the embedding store with design knowledge:
// design tokens, accessibility rules, ARIA patterns, component registries,
// and design guideline documents.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"uiforge/internal/embedstore"
)

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedder.go -package=mocks uiforge/internal/ingest Embedder

// Embedder generates embeddings for batches of texts.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

const (
	// embedBatchSize bounds the number of texts per embedding request.
	embedBatchSize = 10
	// maxTokensPerRun caps token ingestion to bound embedding cost and
	// storage growth.
	maxTokensPerRun = 500
)

// Options configures where the pipeline reads its sources from.
type Options struct {
	// CacheDir holds per-system token JSON mirrors (CacheDir/<system>/...).
	CacheDir string
	// DocsDir holds markdown design guidelines for the docs source.
	DocsDir string
	// ShadcnDir holds a local shadcn/ui registry checkout (.tsx files).
	ShadcnDir string
}

// Pipeline orchestrates ingestion of all sources into the embedding store.
type Pipeline struct {
	embedder Embedder
	store    embedstore.EmbeddingStore
	opts     Options
	logger   *slog.Logger
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(embedder Embedder, store embedstore.EmbeddingStore, opts Options) *Pipeline {
	return &Pipeline{
		embedder: embedder,
		store:    store,
		opts:     opts,
		logger:   slog.Default(),
	}
}

// Sources lists the supported source selectors in run order.
func Sources() []string {
	return []string{"shadcn", "axe", "tokens", "aria", "docs"}
}

// Run ingests a single source, or every source when the selector is "all".
// With "all", a failing source is logged and skipped so the remaining
// sources still ingest. Returns the number of embeddings stored.
func (p *Pipeline) Run(ctx context.Context, source string) (int, error) {
	if source == "all" {
		total := 0
		for _, name := range Sources() {
			count, err := p.runOne(ctx, name)
			if err != nil {
				p.logger.ErrorContext(ctx, "source ingestion failed", "source", name, "error", err)
				continue
			}
			p.logger.InfoContext(ctx, "source ingested", "source", name, "count", count)
			total += count
		}
		return total, nil
	}

	return p.runOne(ctx, source)
}

func (p *Pipeline) runOne(ctx context.Context, source string) (int, error) {
	switch source {
	case "shadcn":
		return p.ingestShadcn(ctx)
	case "axe":
		return p.ingestAxeRules(ctx)
	case "tokens":
		return p.ingestTokens(ctx)
	case "aria":
		return p.ingestAriaPatterns(ctx)
	case "docs":
		return p.ingestDocs(ctx)
	default:
		return 0, fmt.Errorf("unknown source %q", source)
	}
}

// embedAndStore embeds texts in chunks of embedBatchSize, fills in vectors,
// dimensions, and timestamps on the matching records, and persists the lot.
// records[i] must correspond to texts[i].
func (p *Pipeline) embedAndStore(ctx context.Context, records []embedstore.Record, texts []string) (int, error) {
	if len(records) != len(texts) {
		return 0, fmt.Errorf("record/text count mismatch: %d != %d", len(records), len(texts))
	}
	if len(records) == 0 {
		return 0, nil
	}

	now := time.Now().UnixMilli()
	for start := 0; start < len(texts); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(texts) {
			end = len(texts)
		}

		vectors, err := p.embedder.EmbedTexts(ctx, texts[start:end])
		if err != nil {
			return 0, fmt.Errorf("failed to embed batch at %d: %w", start, err)
		}
		if len(vectors) != end-start {
			return 0, fmt.Errorf("embedding count mismatch: expected %d, got %d", end-start, len(vectors))
		}

		for i, vec := range vectors {
			records[start+i].Text = texts[start+i]
			records[start+i].Vector = vec
			records[start+i].Dimensions = len(vec)
			records[start+i].CreatedAt = now
		}
	}

	if err := p.store.StoreEmbeddings(ctx, records); err != nil {
		return 0, fmt.Errorf("failed to store embeddings: %w", err)
	}

	return len(records), nil
}

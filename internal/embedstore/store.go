package embedstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedding_store.go -package=mocks uiforge/internal/embedstore EmbeddingStore

import "context"

// SourceType partitions stored embeddings by the kind of document they came from.
// Searches are always scoped to exactly one source type.
type SourceType string

const (
	SourceComponent   SourceType = "component"
	SourcePrompt      SourceType = "prompt"
	SourceDescription SourceType = "description"
	SourceRule        SourceType = "rule"
	SourceToken       SourceType = "token"
	SourcePattern     SourceType = "pattern"
	SourceExample     SourceType = "example"
)

// SourceTypes lists every known source type, in a fixed order for stats output.
var SourceTypes = []SourceType{
	SourceComponent,
	SourcePrompt,
	SourceDescription,
	SourceRule,
	SourceToken,
	SourcePattern,
	SourceExample,
}

// Record is a stored embedding with its provenance.
// Category and Value carry structured metadata for design tokens so that
// retrieval consumers don't have to re-parse the embedded text. They are
// empty for non-token records.
type Record struct {
	SourceID   string
	SourceType SourceType
	Text       string
	Category   string
	Value      string
	Vector     []float32
	Dimensions int
	CreatedAt  int64 // epoch milliseconds
}

// SimilarityResult is a search hit: the record fields plus its similarity score.
type SimilarityResult struct {
	SourceID   string  `json:"source_id"`
	SourceType string  `json:"source_type"`
	Text       string  `json:"text"`
	Category   string  `json:"category,omitempty"`
	Value      string  `json:"value,omitempty"`
	Similarity float64 `json:"similarity"`
}

// EmbeddingStore persists embedding records and performs similarity search.
//
// Writes happen during offline ingestion; reads are request-scoped and may
// run concurrently with a growing store. Implementations don't enforce
// SourceID uniqueness; deduplication is an ingestion-time concern.
type EmbeddingStore interface {
	// StoreEmbeddings persists a batch of records.
	StoreEmbeddings(ctx context.Context, records []Record) error

	// Count returns the number of stored records for a source type.
	Count(ctx context.Context, sourceType SourceType) (int, error)

	// SemanticSearch scores every stored vector of the given source type
	// against query with cosine similarity, discards hits below minSimilarity,
	// and returns at most limit results ordered by descending similarity.
	// An empty result is not an error.
	SemanticSearch(ctx context.Context, query []float32, sourceType SourceType, limit int, minSimilarity float64) ([]SimilarityResult, error)
}

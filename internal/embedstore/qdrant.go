package embedstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"uiforge/internal/contextutil"
)

// QdrantStore implements EmbeddingStore using a Qdrant collection.
//
// Point IDs are derived deterministically from SourceID, so re-ingesting a
// source upserts instead of accumulating duplicates. Unlike the SQLite
// backend, equal-score ordering is whatever Qdrant returns.
type QdrantStore struct {
	client     *qdrant.Client
	collection string
}

// NewQdrantStore creates a Qdrant-backed embedding store.
// urlStr should be in the format "http://host:port" (e.g., "http://localhost:6333").
// The gRPC port is derived from the HTTP port.
func NewQdrantStore(urlStr, collection string) (*QdrantStore, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsedURL.Hostname()
	if host == "" {
		host = "localhost"
	}

	port := 6334 // Default gRPC port
	if parsedURL.Port() != "" {
		httpPort, err := strconv.Atoi(parsedURL.Port())
		if err == nil {
			// gRPC port is typically HTTP port + 1
			port = httpPort + 1
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return &QdrantStore{
		client:     client,
		collection: collection,
	}, nil
}

// EnsureCollection creates the collection if missing and validates the
// vector size if it already exists.
func (s *QdrantStore) EnsureCollection(ctx context.Context, vectorSize int) error {
	logger := contextutil.LoggerFromContext(ctx)

	exists, err := s.client.CollectionExists(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("failed to check collection existence: %w", err)
	}

	if !exists {
		logger.InfoContext(ctx, "creating collection", "collection", s.collection, "vector_size", vectorSize)
		err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: s.collection,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     uint64(vectorSize),
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}
		return nil
	}

	info, err := s.client.GetCollectionInfo(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("failed to get collection info: %w", err)
	}

	config := info.Config
	if config == nil || config.Params == nil {
		return fmt.Errorf("collection config is invalid")
	}
	vectorsConfig := config.Params.GetVectorsConfig()
	if vectorsConfig == nil {
		return fmt.Errorf("collection vectors config is invalid")
	}
	params := vectorsConfig.GetParams()
	if params == nil {
		return fmt.Errorf("collection vector params are invalid")
	}

	if int(params.Size) != vectorSize {
		return fmt.Errorf("collection vector size mismatch: expected %d, got %d", vectorSize, params.Size)
	}

	logger.InfoContext(ctx, "collection validated", "collection", s.collection, "vector_size", vectorSize)
	return nil
}

// StoreEmbeddings upserts a batch of records as points.
func (s *QdrantStore) StoreEmbeddings(ctx context.Context, records []Record) error {
	logger := contextutil.LoggerFromContext(ctx)

	if len(records) == 0 {
		return nil
	}

	points := make([]*qdrant.PointStruct, 0, len(records))
	for _, r := range records {
		pointID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(r.SourceID)).String()

		dimensions := r.Dimensions
		if dimensions == 0 {
			dimensions = len(r.Vector)
		}

		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(pointID),
			Vectors: qdrant.NewVectors(r.Vector...),
			Payload: qdrant.NewValueMap(map[string]any{
				"source_id":   r.SourceID,
				"source_type": string(r.SourceType),
				"text":        r.Text,
				"category":    r.Category,
				"value":       r.Value,
				"dimensions":  dimensions,
				"created_at":  r.CreatedAt,
			}),
		})
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Points:         points,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to upsert points", "collection", s.collection, "count", len(records), "error", err)
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	logger.InfoContext(ctx, "stored embeddings", "collection", s.collection, "count", len(records))
	return nil
}

// Count returns the number of stored points for a source type.
func (s *QdrantStore) Count(ctx context.Context, sourceType SourceType) (int, error) {
	exact := true
	count, err := s.client.Count(ctx, &qdrant.CountPoints{
		CollectionName: s.collection,
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("source_type", string(sourceType)),
			},
		},
		Exact: &exact,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count points: %w", err)
	}
	return int(count), nil
}

// SemanticSearch queries the collection with a score threshold and source
// type filter.
func (s *QdrantStore) SemanticSearch(ctx context.Context, query []float32, sourceType SourceType, limit int, minSimilarity float64) ([]SimilarityResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0")
	}

	limitU := uint64(limit)
	threshold := float32(minSimilarity)
	scoredPoints, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(query...),
		Limit:          &limitU,
		ScoreThreshold: &threshold,
		WithPayload:    qdrant.NewWithPayload(true),
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("source_type", string(sourceType)),
			},
		},
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to search points", "collection", s.collection, "error", err)
		return nil, fmt.Errorf("failed to search points: %w", err)
	}

	results := make([]SimilarityResult, 0, len(scoredPoints))
	for _, point := range scoredPoints {
		r := SimilarityResult{Similarity: float64(point.Score)}
		if point.Payload != nil {
			r.SourceID = payloadString(point.Payload, "source_id")
			r.SourceType = payloadString(point.Payload, "source_type")
			r.Text = payloadString(point.Payload, "text")
			r.Category = payloadString(point.Payload, "category")
			r.Value = payloadString(point.Payload, "value")
		}
		results = append(results, r)
	}

	logger.DebugContext(ctx, "semantic search completed",
		"collection", s.collection, "source_type", string(sourceType), "results", len(results))
	return results, nil
}

// payloadString extracts a string field from a point payload.
func payloadString(payload map[string]*qdrant.Value, key string) string {
	v, ok := payload[key]
	if !ok || v == nil {
		return ""
	}
	if sv, ok := v.Kind.(*qdrant.Value_StringValue); ok {
		return sv.StringValue
	}
	return ""
}

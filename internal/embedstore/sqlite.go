package embedstore

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"uiforge/internal/contextutil"
)

// SQLiteStore implements EmbeddingStore on a local SQLite database.
// Vectors are stored as packed little-endian float32 BLOBs. Similarity
// scoring is a full scan in Go; rowid order makes tie-breaks deterministic
// (earliest inserted record wins).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at the given path and
// runs migrations. Use ":memory:" for an ephemeral store in tests.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// migrate creates the embeddings table. Idempotent.
func (s *SQLiteStore) migrate() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS embeddings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source_id TEXT NOT NULL,
			source_type TEXT NOT NULL,
			text TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			value TEXT NOT NULL DEFAULT '',
			vector BLOB NOT NULL,
			dimensions INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_embeddings_source_type ON embeddings(source_type);`,
	}

	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// StoreEmbeddings persists a batch of records in a single transaction.
func (s *SQLiteStore) StoreEmbeddings(ctx context.Context, records []Record) error {
	logger := contextutil.LoggerFromContext(ctx)

	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO embeddings (source_id, source_type, text, category, value, vector, dimensions, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, r := range records {
		blob, err := EncodeVector(r.Vector)
		if err != nil {
			return fmt.Errorf("failed to encode vector for %s: %w", r.SourceID, err)
		}

		createdAt := r.CreatedAt
		if createdAt == 0 {
			createdAt = time.Now().UnixMilli()
		}

		dimensions := r.Dimensions
		if dimensions == 0 {
			dimensions = len(r.Vector)
		}

		if _, err := stmt.ExecContext(ctx,
			r.SourceID, string(r.SourceType), r.Text, r.Category, r.Value,
			blob, dimensions, createdAt); err != nil {
			return fmt.Errorf("failed to insert embedding %s: %w", r.SourceID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit embeddings: %w", err)
	}

	logger.InfoContext(ctx, "stored embeddings", "count", len(records))
	return nil
}

// Count returns the number of stored records for a source type.
func (s *SQLiteStore) Count(ctx context.Context, sourceType SourceType) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM embeddings WHERE source_type = ?`, string(sourceType)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count embeddings: %w", err)
	}
	return count, nil
}

// SemanticSearch scans all vectors of the given source type and returns the
// best matches. Results are ordered by descending similarity; equal scores
// keep insertion order.
func (s *SQLiteStore) SemanticSearch(ctx context.Context, query []float32, sourceType SourceType, limit int, minSimilarity float64) ([]SimilarityResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT source_id, source_type, text, category, value, vector, dimensions
		 FROM embeddings WHERE source_type = ? ORDER BY id`, string(sourceType))
	if err != nil {
		return nil, fmt.Errorf("failed to query embeddings: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	results := make([]SimilarityResult, 0)
	for rows.Next() {
		var (
			r          SimilarityResult
			blob       []byte
			dimensions int
		)
		if err := rows.Scan(&r.SourceID, &r.SourceType, &r.Text, &r.Category, &r.Value, &blob, &dimensions); err != nil {
			return nil, fmt.Errorf("failed to scan embedding row: %w", err)
		}

		vec, err := DecodeVector(blob)
		if err != nil {
			return nil, fmt.Errorf("failed to decode vector for %s: %w", r.SourceID, err)
		}
		if len(vec) != dimensions {
			return nil, fmt.Errorf("stored vector for %s has %d dimensions, recorded %d", r.SourceID, len(vec), dimensions)
		}

		similarity, err := CosineSimilarity(query, vec)
		if err != nil {
			return nil, fmt.Errorf("failed to score %s: %w", r.SourceID, err)
		}
		if similarity < minSimilarity {
			continue
		}

		r.Similarity = similarity
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	// Stable sort preserves rowid order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > limit {
		results = results[:limit]
	}

	logger.DebugContext(ctx, "semantic search completed",
		"source_type", string(sourceType), "limit", limit, "results", len(results))
	return results, nil
}

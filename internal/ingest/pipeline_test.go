package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"uiforge/internal/embedstore"
	storemocks "uiforge/internal/embedstore/mocks"
	"uiforge/internal/ingest/mocks"
	"uiforge/internal/tokens"
)

// fakeVectors returns one unit vector per input text.
func fakeVectors(texts []string) [][]float32 {
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{1, 0}
	}
	return vectors
}

func TestPipeline_RunUnknownSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := mocks.NewMockEmbedder(ctrl)
	store := storemocks.NewMockEmbeddingStore(ctrl)

	pipeline := NewPipeline(embedder, store, Options{})

	if _, err := pipeline.Run(context.Background(), "nope"); err == nil {
		t.Error("Run() with unknown source should return error")
	}
}

func TestPipeline_IngestTokens_FallbackToBuiltin(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := mocks.NewMockEmbedder(ctrl)
	store := storemocks.NewMockEmbeddingStore(ctrl)

	// Empty cache dir: every system falls back to its built-in set.
	pipeline := NewPipeline(embedder, store, Options{CacheDir: t.TempDir()})

	wantTokens := 0
	for _, system := range tokens.BuiltinSystems() {
		wantTokens += len(tokens.Builtin(system))
	}

	embedder.EXPECT().
		EmbedTexts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, texts []string) ([][]float32, error) {
			if len(texts) > embedBatchSize {
				t.Errorf("EmbedTexts() batch size = %d, want <= %d", len(texts), embedBatchSize)
			}
			return fakeVectors(texts), nil
		}).
		AnyTimes()

	var stored []embedstore.Record
	store.EXPECT().
		StoreEmbeddings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []embedstore.Record) error {
			stored = records
			return nil
		})

	count, err := pipeline.Run(context.Background(), "tokens")
	if err != nil {
		t.Fatalf("Run(tokens) error = %v", err)
	}
	if count != wantTokens {
		t.Errorf("Run(tokens) = %d, want %d", count, wantTokens)
	}
	if len(stored) != wantTokens {
		t.Fatalf("stored %d records, want %d", len(stored), wantTokens)
	}

	for _, r := range stored {
		if r.SourceType != embedstore.SourceToken {
			t.Errorf("record %s has source type %s, want token", r.SourceID, r.SourceType)
		}
		if !strings.HasPrefix(r.SourceID, "token-") {
			t.Errorf("record source id %s missing token- prefix", r.SourceID)
		}
		if r.Value == "" {
			t.Errorf("record %s has no structured value", r.SourceID)
		}
		if len(r.Vector) == 0 || r.Dimensions != len(r.Vector) {
			t.Errorf("record %s has inconsistent vector/dimensions", r.SourceID)
		}
		if r.CreatedAt == 0 {
			t.Errorf("record %s has zero created_at", r.SourceID)
		}
	}
}

func TestPipeline_EmbedAndStoreChunking(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := mocks.NewMockEmbedder(ctrl)
	store := storemocks.NewMockEmbeddingStore(ctrl)

	pipeline := NewPipeline(embedder, store, Options{})

	const n = 25
	records := make([]embedstore.Record, n)
	texts := make([]string, n)
	for i := range texts {
		records[i] = embedstore.Record{SourceID: fmt.Sprintf("r-%d", i), SourceType: embedstore.SourceRule}
		texts[i] = fmt.Sprintf("text %d", i)
	}

	var batchSizes []int
	embedder.EXPECT().
		EmbedTexts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch []string) ([][]float32, error) {
			batchSizes = append(batchSizes, len(batch))
			return fakeVectors(batch), nil
		}).
		Times(3)

	store.EXPECT().StoreEmbeddings(gomock.Any(), gomock.Len(n)).Return(nil)

	count, err := pipeline.embedAndStore(context.Background(), records, texts)
	if err != nil {
		t.Fatalf("embedAndStore() error = %v", err)
	}
	if count != n {
		t.Errorf("embedAndStore() = %d, want %d", count, n)
	}

	want := []int{10, 10, 5}
	if len(batchSizes) != len(want) {
		t.Fatalf("batch sizes = %v, want %v", batchSizes, want)
	}
	for i := range want {
		if batchSizes[i] != want[i] {
			t.Errorf("batch %d size = %d, want %d", i, batchSizes[i], want[i])
		}
	}

	// Texts must land on their matching records.
	for i, r := range records {
		if r.Text != texts[i] {
			t.Errorf("records[%d].Text = %q, want %q", i, r.Text, texts[i])
		}
	}
}

func TestPipeline_EmbedAndStoreMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := mocks.NewMockEmbedder(ctrl)
	store := storemocks.NewMockEmbeddingStore(ctrl)

	pipeline := NewPipeline(embedder, store, Options{})

	_, err := pipeline.embedAndStore(context.Background(),
		[]embedstore.Record{{SourceID: "a"}}, []string{"a", "b"})
	if err == nil {
		t.Error("embedAndStore() with mismatched lengths should return error")
	}
}

func TestPipeline_RunAll_SourceErrorsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := mocks.NewMockEmbedder(ctrl)
	store := storemocks.NewMockEmbeddingStore(ctrl)

	// Every embedding call fails; sources with nothing to embed still run.
	embedder.EXPECT().
		EmbedTexts(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("provider down")).
		AnyTimes()

	pipeline := NewPipeline(embedder, store, Options{CacheDir: t.TempDir()})

	total, err := pipeline.Run(context.Background(), "all")
	if err != nil {
		t.Fatalf("Run(all) should isolate per-source failures, got error %v", err)
	}
	if total != 0 {
		t.Errorf("Run(all) = %d, want 0 when every embed fails", total)
	}
}

func TestPipeline_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := mocks.NewMockEmbedder(ctrl)
	store := storemocks.NewMockEmbeddingStore(ctrl)

	pipeline := NewPipeline(embedder, store, Options{})

	counts := map[embedstore.SourceType]int{
		embedstore.SourceToken: 120,
		embedstore.SourceRule:  49,
	}
	store.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, st embedstore.SourceType) (int, error) {
			return counts[st], nil
		}).
		Times(len(embedstore.SourceTypes))

	stats, err := pipeline.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Total != 169 {
		t.Errorf("Stats().Total = %d, want 169", stats.Total)
	}
	if stats.BySourceType[embedstore.SourceToken] != 120 {
		t.Errorf("Stats() token count = %d, want 120", stats.BySourceType[embedstore.SourceToken])
	}
}

func TestPipeline_StatsPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := mocks.NewMockEmbedder(ctrl)
	store := storemocks.NewMockEmbeddingStore(ctrl)

	pipeline := NewPipeline(embedder, store, Options{})

	store.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(0, errors.New("store down"))

	if _, err := pipeline.Stats(context.Background()); err == nil {
		t.Error("Stats() should propagate store errors")
	}
}

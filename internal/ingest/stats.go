package ingest

import (
	"context"
	"fmt"

	"uiforge/internal/embedstore"
)

// Stats holds per-source-type embedding counts.
type Stats struct {
	BySourceType map[embedstore.SourceType]int `json:"bySourceType"`
	Total        int                           `json:"total"`
}

// Stats reports how many embeddings are stored per source type.
func (p *Pipeline) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{BySourceType: make(map[embedstore.SourceType]int, len(embedstore.SourceTypes))}

	for _, st := range embedstore.SourceTypes {
		count, err := p.store.Count(ctx, st)
		if err != nil {
			return Stats{}, fmt.Errorf("failed to count %s embeddings: %w", st, err)
		}
		stats.BySourceType[st] = count
		stats.Total += count
	}

	return stats, nil
}

// Package recommender suggests design styling for a free-text prompt.
//
// It retrieves nearest-neighbor design tokens from the embedding store when
// token embeddings exist, and falls back to a heuristic industry/mood lookup
// table when they don't or when retrieval fails.
package recommender

import (
	"context"
	"log/slog"
	"strings"

	"uiforge/internal/embedstore"
)

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_query_embedder.go -package=mocks uiforge/internal/recommender QueryEmbedder

// QueryEmbedder embeds a single query string.
type QueryEmbedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

const (
	searchLimit         = 10
	searchMinSimilarity = 0.3
	maxMatchedTokens    = 5

	heuristicConfidence = 0.4
	confidenceBonus     = 0.1
	maxConfidence       = 0.9
)

// StyleContext carries optional hints that bias the recommendation.
type StyleContext struct {
	Industry string `json:"industry,omitempty"`
	Mood     string `json:"mood,omitempty"`
}

// StyleRecommendation is the recommender's output. Every style field is
// always populated; heuristic defaults backstop retrieval misses.
type StyleRecommendation struct {
	PrimaryColor   string                        `json:"primaryColor"`
	SecondaryColor string                        `json:"secondaryColor"`
	FontFamily     string                        `json:"fontFamily"`
	Spacing        string                        `json:"spacing"`
	BorderRadius   string                        `json:"borderRadius"`
	DesignSystem   string                        `json:"designSystem"`
	Confidence     float64                       `json:"confidence"`
	Source         string                        `json:"source"` // "rag" or "heuristic"
	MatchedTokens  []embedstore.SimilarityResult `json:"matchedTokens"`
}

// Recommender decides per call between retrieval-augmented and heuristic
// recommendation. It holds no mutable state; calls are independent.
type Recommender struct {
	embedder QueryEmbedder
	store    embedstore.EmbeddingStore
	table    *StyleTable
	logger   *slog.Logger
}

// New creates a recommender using the given embedder, store, and style table.
func New(embedder QueryEmbedder, store embedstore.EmbeddingStore, table *StyleTable, logger *slog.Logger) *Recommender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recommender{
		embedder: embedder,
		store:    store,
		table:    table,
		logger:   logger,
	}
}

// RecommendStyle returns a style recommendation for the prompt. It never
// returns an error: retrieval failures degrade to the heuristic path, which
// is a pure lookup into static tables.
func (r *Recommender) RecommendStyle(ctx context.Context, prompt string, styleCtx StyleContext) StyleRecommendation {
	tokenCount, err := r.store.Count(ctx, embedstore.SourceToken)
	if err != nil {
		r.logger.WarnContext(ctx, "token count failed, using heuristic", "error", err)
		return r.heuristic(styleCtx)
	}

	if tokenCount > 0 {
		rec, err := r.withRAG(ctx, prompt, styleCtx)
		if err != nil {
			r.logger.WarnContext(ctx, "retrieval recommendation failed, using heuristic", "error", err)
			return r.heuristic(styleCtx)
		}
		return rec
	}

	return r.heuristic(styleCtx)
}

// withRAG embeds a composed search string, retrieves nearby token
// embeddings, and assembles a recommendation from the matches. Zero results
// degrade to the heuristic path without error.
func (r *Recommender) withRAG(ctx context.Context, prompt string, styleCtx StyleContext) (StyleRecommendation, error) {
	parts := []string{prompt}
	if styleCtx.Industry != "" {
		parts = append(parts, styleCtx.Industry+" industry")
	}
	if styleCtx.Mood != "" {
		parts = append(parts, styleCtx.Mood+" mood")
	}
	searchText := strings.Join(parts, " ")

	queryVector, err := r.embedder.Embed(ctx, searchText)
	if err != nil {
		return StyleRecommendation{}, err
	}

	results, err := r.store.SemanticSearch(ctx, queryVector, embedstore.SourceToken, searchLimit, searchMinSimilarity)
	if err != nil {
		return StyleRecommendation{}, err
	}
	if len(results) == 0 {
		return r.heuristic(styleCtx), nil
	}

	base := r.table.Base(styleCtx.Industry)

	confidence := results[0].Similarity + confidenceBonus
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	matched := results
	if len(matched) > maxMatchedTokens {
		matched = matched[:maxMatchedTokens]
	}

	return StyleRecommendation{
		PrimaryColor:   attributeValue(findMatch(results, "color", "primary"), base.PrimaryColor),
		SecondaryColor: base.SecondaryColor,
		FontFamily:     attributeValue(findAny(results, "typography", "font"), base.FontFamily),
		Spacing:        attributeValue(findAny(results, "spacing", "space"), base.Spacing),
		BorderRadius:   attributeValue(findAny(results, "radius", "corner", "shape"), base.BorderRadius),
		DesignSystem:   dominantSystem(results),
		Confidence:     confidence,
		Source:         "rag",
		MatchedTokens:  matched,
	}, nil
}

// heuristic is the pure lookup path: industry base merged with mood
// overrides, fixed low confidence, no matched tokens.
func (r *Recommender) heuristic(styleCtx StyleContext) StyleRecommendation {
	style := r.table.Apply(r.table.Base(styleCtx.Industry), styleCtx.Mood)

	return StyleRecommendation{
		PrimaryColor:   style.PrimaryColor,
		SecondaryColor: style.SecondaryColor,
		FontFamily:     style.FontFamily,
		Spacing:        style.Spacing,
		BorderRadius:   style.BorderRadius,
		DesignSystem:   style.DesignSystem,
		Confidence:     heuristicConfidence,
		Source:         "heuristic",
		MatchedTokens:  []embedstore.SimilarityResult{},
	}
}

// dominantSystem tallies the design-system name (first whitespace-delimited
// word of each result's text) and returns the most frequent one. Ties favor
// whichever system reached the max count first in scan order.
func dominantSystem(results []embedstore.SimilarityResult) string {
	counts := make(map[string]int, len(results))
	order := make([]string, 0, len(results))
	for _, r := range results {
		system := "unknown"
		if fields := strings.Fields(r.Text); len(fields) > 0 {
			system = fields[0]
		}
		if _, seen := counts[system]; !seen {
			order = append(order, system)
		}
		counts[system]++
	}

	bestSystem := "material-design-3"
	bestCount := 0
	for _, system := range order {
		if counts[system] > bestCount {
			bestSystem = system
			bestCount = counts[system]
		}
	}
	return bestSystem
}

// findMatch returns the first result whose text contains every substring.
func findMatch(results []embedstore.SimilarityResult, substrings ...string) *embedstore.SimilarityResult {
	for i := range results {
		all := true
		for _, s := range substrings {
			if !strings.Contains(results[i].Text, s) {
				all = false
				break
			}
		}
		if all {
			return &results[i]
		}
	}
	return nil
}

// findAny returns the first result whose text contains any of the substrings.
func findAny(results []embedstore.SimilarityResult, substrings ...string) *embedstore.SimilarityResult {
	for i := range results {
		for _, s := range substrings {
			if strings.Contains(results[i].Text, s) {
				return &results[i]
			}
		}
	}
	return nil
}

// attributeValue picks the value for a matched attribute: the structured
// Value field when present, a scrape of the stored text otherwise, and the
// heuristic base value when both come up empty or no result matched.
func attributeValue(match *embedstore.SimilarityResult, fallback string) string {
	if match == nil {
		return fallback
	}
	if match.Value != "" {
		return match.Value
	}
	if v := scrapeValue(match.Text); v != "" {
		return v
	}
	return fallback
}

// scrapeValue extracts the substring after the first ':' up to the first
// '.', trimmed. Kept as a compatibility fallback for records ingested
// before structured values were stored.
func scrapeValue(text string) string {
	_, after, found := strings.Cut(text, ":")
	if !found {
		return ""
	}
	if i := strings.Index(after, "."); i >= 0 {
		after = after[:i]
	}
	return strings.TrimSpace(after)
}

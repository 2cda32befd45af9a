package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"uiforge/internal/embedstore"
	"uiforge/internal/tokens"
)

// ingestTokens flattens design-token documents for each known design system
// and stores them as sourceType "token" with structured category/value
// metadata. A system whose mirror yields no tokens falls back to its
// built-in set; other systems are unaffected.
func (p *Pipeline) ingestTokens(ctx context.Context) (int, error) {
	var all []tokens.Token

	for _, system := range tokens.BuiltinSystems() {
		systemTokens := p.flattenSystemDir(ctx, system)
		if len(systemTokens) == 0 {
			p.logger.WarnContext(ctx, "no tokens found for system, using built-in set", "system", system)
			systemTokens = tokens.Builtin(system)
		}
		all = append(all, systemTokens...)
	}

	unique := tokens.Dedup(all)
	if len(unique) > maxTokensPerRun {
		unique = unique[:maxTokensPerRun]
	}

	records := make([]embedstore.Record, len(unique))
	texts := make([]string, len(unique))
	for i, t := range unique {
		records[i] = embedstore.Record{
			SourceID:   fmt.Sprintf("token-%s-%s", t.System, t.Name),
			SourceType: embedstore.SourceToken,
			Category:   t.Category,
			Value:      t.Value,
		}
		texts[i] = t.EmbeddingText()
	}

	count, err := p.embedAndStore(ctx, records, texts)
	if err != nil {
		return 0, err
	}

	p.logger.InfoContext(ctx, "design tokens ingested", "count", count)
	return count, nil
}

// flattenSystemDir parses every JSON file under the system's mirror
// directory and flattens it. Unparseable files are skipped.
func (p *Pipeline) flattenSystemDir(ctx context.Context, system string) []tokens.Token {
	dir := filepath.Join(p.opts.CacheDir, system)

	var result []tokens.Token
	for _, file := range findJSONFiles(dir, 3) {
		data, err := os.ReadFile(file)
		if err != nil {
			p.logger.DebugContext(ctx, "skipped unreadable token file", "file", file, "error", err)
			continue
		}

		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			p.logger.DebugContext(ctx, "skipped unparseable token file", "file", file, "error", err)
			continue
		}

		result = append(result, tokens.Flatten(doc, system)...)
	}

	return result
}

// findJSONFiles recursively collects .json files up to maxDepth levels deep,
// skipping hidden directories and node_modules.
func findJSONFiles(dir string, maxDepth int) []string {
	if maxDepth <= 0 {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, entry := range entries {
		fullPath := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if strings.HasPrefix(entry.Name(), ".") || entry.Name() == "node_modules" {
				continue
			}
			files = append(files, findJSONFiles(fullPath, maxDepth-1)...)
		} else if strings.HasSuffix(entry.Name(), ".json") {
			files = append(files, fullPath)
		}
	}

	return files
}

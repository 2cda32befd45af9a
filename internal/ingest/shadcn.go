package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"uiforge/internal/embedstore"
)

// ShadcnComponent is a UI component parsed from a shadcn/ui registry checkout.
type ShadcnComponent struct {
	Name            string
	Code            string
	Description     string
	Props           []string
	TailwindClasses []string
}

var (
	jsdocRe     = regexp.MustCompile(`(?s)/\*\*.*?\*/`)
	jsdocTrimRe = regexp.MustCompile(`/\*\*|\*/|\n\s*\*/?`)
	propsRe     = regexp.MustCompile(`interface\s+\w+Props\s*\{([^}]*)\}`)
	classAttrRe = regexp.MustCompile(`(?:className|class)=["'][^"']*["']`)
	classTrimRe = regexp.MustCompile(`^(?:className|class)=["']|["']$`)
	lowerStart  = regexp.MustCompile(`^[a-z]`)
)

// maxCodeSnippetLen bounds how much component source gets embedded per example.
const maxCodeSnippetLen = 1000

// ingestShadcn parses .tsx files from a local shadcn/ui registry checkout and
// stores one "component" embedding per component plus one "example" embedding
// for a truncated code snippet.
func (p *Pipeline) ingestShadcn(ctx context.Context) (int, error) {
	registryPaths := []string{
		filepath.Join(p.opts.ShadcnDir, "packages", "shadcn", "src", "registry", "default", "ui"),
		filepath.Join(p.opts.ShadcnDir, "packages", "shadcn", "src", "registry", "new-york", "ui"),
	}

	var all []ShadcnComponent
	for _, dir := range registryPaths {
		all = append(all, parseShadcnRegistry(dir)...)
	}

	components := dedupComponents(all)
	if len(components) == 0 {
		p.logger.WarnContext(ctx, "no shadcn components found, trying alternative registry path")
		alt := filepath.Join(p.opts.ShadcnDir, "apps", "www", "registry", "default", "ui")
		components = dedupComponents(parseShadcnRegistry(alt))
	}
	if len(components) == 0 {
		p.logger.WarnContext(ctx, "no shadcn components found after trying all paths")
		return 0, nil
	}

	records := make([]embedstore.Record, 0, 2*len(components))
	texts := make([]string, 0, 2*len(components))
	for _, c := range components {
		records = append(records, embedstore.Record{
			SourceID:   "shadcn-" + c.Name,
			SourceType: embedstore.SourceComponent,
			Category:   "component",
		})
		texts = append(texts, fmt.Sprintf("shadcn %s: %s. Tags: %s. Patterns: %s",
			c.Name, c.Description, strings.Join(c.Props, ", "), strings.Join(firstN(c.TailwindClasses, 20), " ")))
	}
	for _, c := range components {
		snippet := c.Code
		if len(snippet) > maxCodeSnippetLen {
			snippet = snippet[:maxCodeSnippetLen]
		}
		records = append(records, embedstore.Record{
			SourceID:   "shadcn-code-" + c.Name,
			SourceType: embedstore.SourceExample,
			Category:   "example",
		})
		texts = append(texts, snippet)
	}

	count, err := p.embedAndStore(ctx, records, texts)
	if err != nil {
		return 0, err
	}

	p.logger.InfoContext(ctx, "shadcn components ingested", "count", count)
	return count, nil
}

// parseShadcnRegistry extracts component metadata from every .tsx file in a
// registry directory. A missing directory yields an empty slice.
func parseShadcnRegistry(dir string) []ShadcnComponent {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".tsx") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var components []ShadcnComponent
	for _, file := range names {
		data, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			continue
		}
		code := string(data)
		name := strings.TrimSuffix(file, ".tsx")

		description := name + " component"
		if m := jsdocRe.FindString(code); m != "" {
			description = strings.TrimSpace(jsdocTrimRe.ReplaceAllString(m, " "))
		}

		var props []string
		if m := propsRe.FindStringSubmatch(code); m != nil {
			for _, line := range strings.Split(m[1], "\n") {
				prop := strings.TrimSpace(strings.SplitN(strings.TrimSpace(line), ":", 2)[0])
				if prop != "" {
					props = append(props, prop)
				}
			}
		}

		components = append(components, ShadcnComponent{
			Name:            name,
			Code:            code,
			Description:     description,
			Props:           props,
			TailwindClasses: extractTailwindClasses(code),
		})
	}

	return components
}

// extractTailwindClasses collects unique lowercase-leading class names from
// className/class attributes, preserving first-seen order.
func extractTailwindClasses(code string) []string {
	seen := make(map[string]struct{})
	var classes []string
	for _, attr := range classAttrRe.FindAllString(code, -1) {
		for _, class := range strings.Fields(classTrimRe.ReplaceAllString(attr, "")) {
			if !lowerStart.MatchString(class) {
				continue
			}
			if _, dup := seen[class]; dup {
				continue
			}
			seen[class] = struct{}{}
			classes = append(classes, class)
		}
	}
	return classes
}

// dedupComponents keeps the first component seen per name.
func dedupComponents(all []ShadcnComponent) []ShadcnComponent {
	seen := make(map[string]struct{}, len(all))
	result := make([]ShadcnComponent, 0, len(all))
	for _, c := range all {
		if _, dup := seen[c.Name]; dup {
			continue
		}
		seen[c.Name] = struct{}{}
		result = append(result, c)
	}
	return result
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

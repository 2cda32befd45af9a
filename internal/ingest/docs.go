package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"uiforge/internal/embedstore"
)

// minSectionRunes drops boilerplate fragments that carry no design guidance.
const minSectionRunes = 40

// DocSection is one heading-delimited section of a guideline document.
type DocSection struct {
	Heading string
	Body    string
}

// ingestDocs parses markdown design guideline files from DocsDir and stores
// one "description" embedding per heading section.
func (p *Pipeline) ingestDocs(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(p.opts.DocsDir)
	if err != nil {
		p.logger.WarnContext(ctx, "docs directory unavailable", "dir", p.opts.DocsDir, "error", err)
		return 0, nil
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".md") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var records []embedstore.Record
	var texts []string
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(p.opts.DocsDir, name))
		if err != nil {
			p.logger.DebugContext(ctx, "skipped unreadable doc", "file", name, "error", err)
			continue
		}

		stem := strings.TrimSuffix(name, ".md")
		for i, section := range splitSections(md, data) {
			records = append(records, embedstore.Record{
				SourceID:   fmt.Sprintf("docs-%s-%d", stem, i),
				SourceType: embedstore.SourceDescription,
				Category:   "guideline",
			})
			texts = append(texts, fmt.Sprintf("design guideline %s: %s", section.Heading, section.Body))
		}
	}

	count, err := p.embedAndStore(ctx, records, texts)
	if err != nil {
		return 0, err
	}

	p.logger.InfoContext(ctx, "guideline docs ingested", "count", count)
	return count, nil
}

// splitSections parses markdown and groups text under its nearest heading.
// Content before the first heading falls under an empty heading and is kept
// only when long enough to matter.
func splitSections(md goldmark.Markdown, content []byte) []DocSection {
	doc := md.Parser().Parse(text.NewReader(content))

	var sections []DocSection
	current := DocSection{}
	flush := func() {
		body := strings.TrimSpace(current.Body)
		if len([]rune(body)) >= minSectionRunes {
			heading := current.Heading
			if heading == "" {
				heading = "introduction"
			}
			sections = append(sections, DocSection{Heading: heading, Body: body})
		}
	}

	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		if heading, ok := node.(*ast.Heading); ok {
			flush()
			current = DocSection{Heading: nodeText(heading, content)}
			continue
		}
		if body := nodeText(node, content); body != "" {
			if current.Body != "" {
				current.Body += " "
			}
			current.Body += body
		}
	}
	flush()

	return sections
}

// nodeText concatenates the raw text of a node's leaves.
func nodeText(node ast.Node, content []byte) string {
	var sb strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			sb.Write(t.Segment.Value(content))
			sb.WriteByte(' ')
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}

package ingest

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

func newTestMarkdown() goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(extension.Table))
}

func TestSplitSections(t *testing.T) {
	md := newTestMarkdown()

	content := []byte(`# Color Usage

Primary colors should carry brand identity and be used sparingly across the interface surface.

## Contrast

Text must maintain a contrast ratio of at least 4.5:1 against its background for readability.

## Tiny

Too short.
`)

	sections := splitSections(md, content)
	if len(sections) != 2 {
		t.Fatalf("splitSections() returned %d sections, want 2 (short section dropped)", len(sections))
	}

	if sections[0].Heading != "Color Usage" {
		t.Errorf("sections[0].Heading = %q, want %q", sections[0].Heading, "Color Usage")
	}
	if !strings.Contains(sections[0].Body, "brand identity") {
		t.Errorf("sections[0].Body missing expected content: %q", sections[0].Body)
	}
	if sections[1].Heading != "Contrast" {
		t.Errorf("sections[1].Heading = %q, want %q", sections[1].Heading, "Contrast")
	}
}

func TestSplitSections_PreambleBeforeHeading(t *testing.T) {
	md := newTestMarkdown()

	content := []byte(`These guidelines describe how spacing scales should be applied consistently in layouts.

# Spacing

Use multiples of the base unit for all margins and padding values in every component.
`)

	sections := splitSections(md, content)
	if len(sections) != 2 {
		t.Fatalf("splitSections() returned %d sections, want 2", len(sections))
	}
	if sections[0].Heading != "introduction" {
		t.Errorf("preamble heading = %q, want %q", sections[0].Heading, "introduction")
	}
}

func TestSplitSections_Empty(t *testing.T) {
	md := newTestMarkdown()

	if sections := splitSections(md, []byte("")); len(sections) != 0 {
		t.Errorf("splitSections(empty) returned %d sections, want 0", len(sections))
	}
}

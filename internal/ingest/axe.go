package ingest

import (
	"context"
	"fmt"

	"uiforge/internal/embedstore"
)

// AccessibilityRule is a single automated accessibility check, mirroring the
// axe-core rule metadata shape.
type AccessibilityRule struct {
	ID          string
	Description string
	Help        string
	Impact      string
	Tags        []string
}

// ingestAxeRules stores the bundled axe-core rule set as sourceType "rule".
func (p *Pipeline) ingestAxeRules(ctx context.Context) (int, error) {
	rules := knownAxeRules()

	records := make([]embedstore.Record, len(rules))
	texts := make([]string, len(rules))
	for i, r := range rules {
		records[i] = embedstore.Record{
			SourceID:   "axe-" + r.ID,
			SourceType: embedstore.SourceRule,
		}
		texts[i] = fmt.Sprintf("a11y rule %s: %s. Impact: %s. Fix: %s", r.ID, r.Description, r.Impact, r.Help)
	}

	count, err := p.embedAndStore(ctx, records, texts)
	if err != nil {
		return 0, err
	}

	p.logger.InfoContext(ctx, "accessibility rules ingested", "count", count)
	return count, nil
}

// knownAxeRules returns the bundled axe-core rule set (MPL 2.0 metadata).
func knownAxeRules() []AccessibilityRule {
	return []AccessibilityRule{
		{ID: "area-alt", Description: "Active <area> elements must have alternate text", Help: "Add alt attribute to <area> elements", Impact: "critical", Tags: []string{"wcag2a", "1.1.1"}},
		{ID: "aria-allowed-attr", Description: "ARIA attributes must be allowed for the element role", Help: "Remove disallowed ARIA attributes", Impact: "critical", Tags: []string{"wcag2a", "4.1.2"}},
		{ID: "aria-hidden-body", Description: "aria-hidden=true must not be present on the document body", Help: "Remove aria-hidden from body", Impact: "critical", Tags: []string{"wcag2a", "4.1.2"}},
		{ID: "aria-hidden-focus", Description: "aria-hidden elements must not contain focusable elements", Help: "Remove focusable content from hidden areas", Impact: "serious", Tags: []string{"wcag2a", "4.1.2"}},
		{ID: "aria-required-attr", Description: "Required ARIA attributes must be provided", Help: "Add required ARIA attributes for the role", Impact: "critical", Tags: []string{"wcag2a", "4.1.2"}},
		{ID: "aria-required-parent", Description: "ARIA roles must be contained by required parent roles", Help: "Place element within proper parent role", Impact: "critical", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "aria-roles", Description: "ARIA roles must conform to valid values", Help: "Use valid ARIA role values", Impact: "critical", Tags: []string{"wcag2a", "4.1.2"}},
		{ID: "aria-valid-attr", Description: "ARIA attributes must conform to valid names", Help: "Use valid ARIA attribute names", Impact: "critical", Tags: []string{"wcag2a", "4.1.2"}},
		{ID: "aria-valid-attr-value", Description: "ARIA attributes must conform to valid values", Help: "Use valid ARIA attribute values", Impact: "critical", Tags: []string{"wcag2a", "4.1.2"}},
		{ID: "button-name", Description: "Buttons must have discernible text", Help: "Add accessible name via text content, aria-label, or aria-labelledby", Impact: "critical", Tags: []string{"wcag2a", "4.1.2"}},
		{ID: "bypass", Description: "Page must have means to bypass repeated blocks", Help: "Add skip navigation link or landmark regions", Impact: "serious", Tags: []string{"wcag2a", "2.4.1"}},
		{ID: "color-contrast", Description: "Elements must meet minimum color contrast ratio thresholds", Help: "Ensure 4.5:1 contrast ratio for normal text, 3:1 for large text", Impact: "serious", Tags: []string{"wcag2aa", "1.4.3"}},
		{ID: "document-title", Description: "Documents must have a <title> element", Help: "Add a descriptive <title> element", Impact: "serious", Tags: []string{"wcag2a", "2.4.2"}},
		{ID: "duplicate-id", Description: "id attribute values must be unique", Help: "Ensure each id attribute value is unique", Impact: "minor", Tags: []string{"wcag2a", "4.1.1"}},
		{ID: "form-field-multiple-labels", Description: "Form fields should not have multiple labels", Help: "Use a single label per form field", Impact: "moderate", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "frame-title", Description: "Frames must have an accessible name", Help: "Add title attribute to frames", Impact: "serious", Tags: []string{"wcag2a", "4.1.2"}},
		{ID: "html-has-lang", Description: "HTML element must have a lang attribute", Help: "Add lang attribute to <html> element", Impact: "serious", Tags: []string{"wcag2a", "3.1.1"}},
		{ID: "html-lang-valid", Description: "HTML element must have a valid value for the lang attribute", Help: "Use a valid BCP 47 language tag", Impact: "serious", Tags: []string{"wcag2a", "3.1.1"}},
		{ID: "image-alt", Description: "Images must have alternate text", Help: "Add descriptive alt attribute or alt=\"\" for decorative images", Impact: "critical", Tags: []string{"wcag2a", "1.1.1"}},
		{ID: "input-image-alt", Description: "Image buttons must have alternate text", Help: "Add alt attribute to input type=image", Impact: "critical", Tags: []string{"wcag2a", "1.1.1"}},
		{ID: "label", Description: "Form elements must have labels", Help: "Add visible label or aria-label to form elements", Impact: "critical", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "link-name", Description: "Links must have discernible text", Help: "Add text content, aria-label, or aria-labelledby to links", Impact: "serious", Tags: []string{"wcag2a", "4.1.2"}},
		{ID: "list", Description: "Lists must be structured correctly", Help: "Use only <li> elements within <ul> and <ol>", Impact: "serious", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "listitem", Description: "List items must be contained in <ul> or <ol>", Help: "Place <li> elements within proper list containers", Impact: "serious", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "meta-viewport", Description: "Zooming and scaling must not be disabled", Help: "Do not use maximum-scale=1 or user-scalable=no", Impact: "critical", Tags: []string{"wcag2aa", "1.4.4"}},
		{ID: "object-alt", Description: "<object> elements must have alternate text", Help: "Add alt text or aria-label to object elements", Impact: "serious", Tags: []string{"wcag2a", "1.1.1"}},
		{ID: "role-img-alt", Description: "Elements with role=img must have alternate text", Help: "Add aria-label or aria-labelledby", Impact: "serious", Tags: []string{"wcag2a", "1.1.1"}},
		{ID: "scope-attr-valid", Description: "scope attribute must be used correctly", Help: "Use scope=col or scope=row on <th> elements only", Impact: "moderate", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "tabindex", Description: "tabindex should not be greater than 0", Help: "Use tabindex=0 or tabindex=-1 only", Impact: "serious", Tags: []string{"wcag2a", "2.4.3"}},
		{ID: "td-headers-attr", Description: "Table cell headers must refer to existing cells", Help: "Ensure headers attribute references valid th elements", Impact: "serious", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "autocomplete-valid", Description: "autocomplete attribute must be used correctly", Help: "Use valid autocomplete values from the HTML spec", Impact: "serious", Tags: []string{"wcag21a", "1.3.5"}},
		{ID: "avoid-inline-spacing", Description: "Inline text spacing must be adjustable with custom stylesheets", Help: "Do not use !important on text spacing properties", Impact: "serious", Tags: []string{"wcag21aa", "1.4.12"}},
		{ID: "empty-heading", Description: "Headings must not be empty", Help: "Add text content to heading elements", Impact: "minor", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "empty-table-header", Description: "Table headers must not be empty", Help: "Add text content to <th> elements", Impact: "minor", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "heading-order", Description: "Heading levels should increase by one", Help: "Do not skip heading levels (e.g., h1 to h3)", Impact: "moderate", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "image-redundant-alt", Description: "Alt text must not duplicate text of adjacent link or button", Help: "Remove redundant alt text", Impact: "minor", Tags: []string{"wcag2a", "1.1.1"}},
		{ID: "label-title-only", Description: "Form elements should have visible labels", Help: "Add visible text labels instead of relying only on title", Impact: "serious", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "landmark-banner-is-top-level", Description: "Banner landmark must be top level", Help: "Place banner role at top level of DOM", Impact: "moderate", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "landmark-contentinfo-is-top-level", Description: "Contentinfo landmark must be top level", Help: "Place contentinfo role at top level", Impact: "moderate", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "landmark-main-is-top-level", Description: "Main landmark must be top level", Help: "Place main role at top level of DOM", Impact: "moderate", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "landmark-no-duplicate-banner", Description: "Document must not have more than one banner", Help: "Use only one banner landmark per document", Impact: "moderate", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "landmark-no-duplicate-contentinfo", Description: "Document must not have more than one contentinfo", Help: "Use only one contentinfo landmark per document", Impact: "moderate", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "landmark-no-duplicate-main", Description: "Document must not have more than one main", Help: "Use only one main landmark per document", Impact: "moderate", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "landmark-one-main", Description: "Document must have one main landmark", Help: "Add exactly one element with role=main", Impact: "moderate", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "landmark-unique", Description: "Landmarks must have a unique role or label", Help: "Add unique aria-label to duplicate landmarks", Impact: "moderate", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "page-has-heading-one", Description: "Page must contain a level-one heading", Help: "Add an <h1> element to the page", Impact: "moderate", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "region", Description: "All page content must be contained by landmarks", Help: "Wrap content in landmark regions", Impact: "moderate", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "table-duplicate-name", Description: "Tables must not have duplicate accessible names", Help: "Use unique caption or aria-label for each table", Impact: "minor", Tags: []string{"wcag2a", "1.3.1"}},
		{ID: "target-size", Description: "Touch target must be at least 24x24 CSS pixels", Help: "Increase click/tap target size", Impact: "serious", Tags: []string{"wcag22aa", "2.5.8"}},
		{ID: "link-in-text-block", Description: "Links within text must be distinguishable", Help: "Use underline or non-color indicator for links in text", Impact: "serious", Tags: []string{"wcag2a", "1.4.1"}},
	}
}

// Package tokens models design tokens and flattens nested design-system
// token documents into flat records ready for embedding.
package tokens

import (
	"fmt"
	"sort"
)

// Token is a single design token extracted from a design system.
type Token struct {
	System      string
	Category    string
	Name        string
	Value       string
	Description string
}

// Key returns the identity used for deduplication.
func (t Token) Key() string {
	return fmt.Sprintf("%s-%s-%s", t.System, t.Category, t.Name)
}

// Flatten walks a nested token document depth-first and emits a token for
// every object node carrying a value marker ("value" or "$value"). The
// accumulated dash-joined path becomes the token name, and the nearest
// enclosing key the category. Arrays are not traversed.
func Flatten(doc map[string]any, system string) []Token {
	return flatten(doc, system, "", "")
}

func flatten(obj map[string]any, system, category, prefix string) []Token {
	var result []Token

	// Sorted keys keep output deterministic across runs.
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := obj[key]
		fullName := key
		if prefix != "" {
			fullName = prefix + "-" + key
		}

		child, ok := value.(map[string]any)
		if !ok {
			continue
		}

		cat := category
		if cat == "" {
			cat = key
		}

		if v, marked := valueMarker(child); marked {
			result = append(result, Token{
				System:      system,
				Category:    cat,
				Name:        fullName,
				Value:       v,
				Description: descriptionOf(child),
			})
			continue
		}

		result = append(result, flatten(child, system, cat, fullName)...)
	}

	return result
}

// valueMarker reports whether a node is terminal, preferring the W3C "$value"
// spelling over plain "value".
func valueMarker(node map[string]any) (string, bool) {
	if v, ok := node["$value"]; ok {
		return fmt.Sprintf("%v", v), true
	}
	if v, ok := node["value"]; ok {
		return fmt.Sprintf("%v", v), true
	}
	return "", false
}

func descriptionOf(node map[string]any) string {
	if d, ok := node["$description"]; ok {
		return fmt.Sprintf("%v", d)
	}
	if d, ok := node["description"]; ok {
		return fmt.Sprintf("%v", d)
	}
	return ""
}

// Dedup keeps the first-seen token per (system, category, name) identity,
// preserving input order.
func Dedup(all []Token) []Token {
	seen := make(map[string]struct{}, len(all))
	result := make([]Token, 0, len(all))
	for _, t := range all {
		key := t.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, t)
	}
	return result
}

// EmbeddingText composes the descriptive string that gets embedded for a
// token. The recommender's fallback text scraping expects this exact shape.
func (t Token) EmbeddingText() string {
	desc := t.Description
	if desc == "" {
		desc = t.Category + " token"
	}
	return fmt.Sprintf("%s %s %s: %s. Usage: %s", t.System, t.Category, t.Name, t.Value, desc)
}

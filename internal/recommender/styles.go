package recommender

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed styles.json
var defaultStylesJSON []byte

// BaseStyle is an industry's complete style bundle. Every field is populated
// in the bundled table.
type BaseStyle struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	FontFamily     string `json:"fontFamily"`
	Spacing        string `json:"spacing"`
	BorderRadius   string `json:"borderRadius"`
	DesignSystem   string `json:"designSystem"`
}

// MoodModifier overrides a subset of style fields. Empty fields leave the
// base value in place.
type MoodModifier struct {
	PrimaryColor string `json:"primaryColor,omitempty"`
	FontFamily   string `json:"fontFamily,omitempty"`
	Spacing      string `json:"spacing,omitempty"`
	BorderRadius string `json:"borderRadius,omitempty"`
}

// StyleTable holds the heuristic industry and mood lookup tables.
type StyleTable struct {
	Industries map[string]BaseStyle    `json:"industries"`
	Moods      map[string]MoodModifier `json:"moods"`
}

// defaultIndustry backstops unknown or missing industry keys.
const defaultIndustry = "general"

// LoadStyleTable returns the bundled style table, or the one at path when
// path is non-empty. The table must contain a "general" industry entry.
func LoadStyleTable(path string) (*StyleTable, error) {
	data := defaultStylesJSON
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read style table %s: %w", path, err)
		}
		data = fileData
	}

	var table StyleTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse style table: %w", err)
	}
	if _, ok := table.Industries[defaultIndustry]; !ok {
		return nil, fmt.Errorf("style table missing %q industry entry", defaultIndustry)
	}

	return &table, nil
}

// Base returns the style bundle for an industry, defaulting to "general"
// when the industry is unknown or empty.
func (t *StyleTable) Base(industry string) BaseStyle {
	if style, ok := t.Industries[industry]; ok {
		return style
	}
	return t.Industries[defaultIndustry]
}

// Apply layers a mood's overrides onto a base style. An unknown or empty
// mood leaves the base unchanged.
func (t *StyleTable) Apply(base BaseStyle, mood string) BaseStyle {
	mod, ok := t.Moods[mood]
	if !ok {
		return base
	}

	if mod.PrimaryColor != "" {
		base.PrimaryColor = mod.PrimaryColor
	}
	if mod.FontFamily != "" {
		base.FontFamily = mod.FontFamily
	}
	if mod.Spacing != "" {
		base.Spacing = mod.Spacing
	}
	if mod.BorderRadius != "" {
		base.BorderRadius = mod.BorderRadius
	}
	return base
}

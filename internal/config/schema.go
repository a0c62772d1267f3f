// Package config provides the Conventional-Commits grammar configuration
// for clgen using koanf. Configuration is loaded with priority: environment
// variables > config file (.clgen.yml, .clgen.yaml or .clgen.json in the
// repository) > defaults. The recognized options are explicitly enumerated
// in the Grammar schema; unknown keys in config files are ignored.
package config

import (
	"strings"
)

// TypeSpec declares one recognized commit type and the section heading its
// commits are grouped under. The position of a TypeSpec within
// Grammar.Types is the section's rendering order.
type TypeSpec struct {
	// Type is the commit-title prefix, e.g. "feat" or "fix".
	Type string `koanf:"type" validate:"required"`
	// Heading is the changelog section heading for this type.
	Heading string `koanf:"heading" validate:"required"`
}

// BreakingSpec configures breaking-change detection and rendering.
type BreakingSpec struct {
	// Marker is the footer token that flags a breaking change when a body
	// line starts with it, independent of the "!" title marker.
	Marker string `koanf:"marker" validate:"required"`
	// Heading is the heading of the synthetic breaking-changes section.
	Heading string `koanf:"heading" validate:"required"`
}

// OthersSpec configures the catch-all bucket for commits whose titles do
// not match the grammar. Disabled by default: unclassified commits are
// dropped from the changelog.
type OthersSpec struct {
	Enabled bool   `koanf:"enabled"`
	Heading string `koanf:"heading"`
}

// HashSpec configures the short-hash suffix on rendered entries.
type HashSpec struct {
	Show   bool `koanf:"show"`
	Length int  `koanf:"length" validate:"min=4,max=40"`
}

// Grammar is the commit-title grammar and rendering configuration for a
// run. It is loaded once and read-only thereafter.
type Grammar struct {
	// Types is the ordered set of recognized commit types. Section output
	// order follows this list, not first occurrence in history.
	Types []TypeSpec `koanf:"types" validate:"required,min=1,dive"`

	// CaseInsensitive makes type matching ignore case ("Feat:" == "feat:").
	CaseInsensitive bool `koanf:"case_insensitive"`

	Breaking BreakingSpec `koanf:"breaking"`
	Others   OthersSpec   `koanf:"others"`
	Hash     HashSpec     `koanf:"hash"`

	// CapitalizeDescriptions upper-cases the first character of each
	// rendered description.
	CapitalizeDescriptions bool `koanf:"capitalize_descriptions"`
}

// Lookup finds the TypeSpec for a commit type, honoring the configured
// case sensitivity. The returned index is the section order key.
func (g *Grammar) Lookup(commitType string) (TypeSpec, int, bool) {
	for i, ts := range g.Types {
		if g.typeEqual(ts.Type, commitType) {
			return ts, i, true
		}
	}
	return TypeSpec{}, 0, false
}

func (g *Grammar) typeEqual(a, b string) bool {
	if g.CaseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}

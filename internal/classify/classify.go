// Package classify decides whether a commit matches the Conventional-Commit
// shape "type(scope)?!?: description" under a grammar configuration, and
// extracts the structured fields when it does.
//
// Non-matching titles are a normal input shape, never an error: real
// histories contain merge commits, reverts and free-form messages.
package classify

import (
	"regexp"
	"strings"

	"github.com/ariel-frischer/clgen/internal/config"
	"github.com/ariel-frischer/clgen/internal/gitlog"
)

// titlePattern captures the conventional-commit title shape:
// type, optional parenthesized scope, optional "!" breaking marker,
// and the description after the first colon.
var titlePattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_-]*)(?:\(([^)]*)\))?(!)?:(.*)$`)

// Classified is a commit that matched the grammar, with its extracted
// fields. Type holds the configured canonical spelling, so case-insensitive
// grammars still group "Feat:" and "feat:" together.
type Classified struct {
	Commit      gitlog.RawCommit
	Type        string
	Scope       string
	Description string
	Breaking    bool

	// BreakingNote is the text of the breaking-change footer line when one
	// was present, otherwise empty. The synthetic breaking section prefers
	// it over the title description.
	BreakingNote string
}

// Classify matches one commit against the grammar. The second return value
// is false when the title does not have the conventional shape or its type
// is not in the configured set.
//
// A commit is breaking when the title carries "!" before the colon or the
// body contains a configured breaking footer; the two signals are OR'd.
// An empty description after the colon is still a valid match.
func Classify(commit gitlog.RawCommit, g *config.Grammar) (Classified, bool) {
	m := titlePattern.FindStringSubmatch(commit.Title)
	if m == nil {
		return Classified{}, false
	}

	spec, _, ok := g.Lookup(m[1])
	if !ok {
		return Classified{}, false
	}

	note, footerBreaking := BreakingFooter(commit, g)

	return Classified{
		Commit:       commit,
		Type:         spec.Type,
		Scope:        m[2],
		Description:  strings.TrimSpace(m[4]),
		Breaking:     m[3] == "!" || footerBreaking,
		BreakingNote: note,
	}, true
}

// BreakingFooter scans the commit body for a line starting with the
// configured breaking marker and returns the remainder of that line. It is
// separate from Classify so the aggregator can honor breaking footers on
// commits that did not match the grammar.
func BreakingFooter(commit gitlog.RawCommit, g *config.Grammar) (string, bool) {
	marker := g.Breaking.Marker
	if marker == "" {
		return "", false
	}

	for _, line := range strings.Split(commit.Body, "\n") {
		if rest, found := strings.CutPrefix(line, marker); found {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}

// FormatConventional renders fields back into the title convention the
// classifier parses. Classifying a formatted title reconstructs the fields.
func FormatConventional(typeName, scope, description string, breaking bool) string {
	var b strings.Builder
	b.WriteString(typeName)
	if scope != "" {
		b.WriteString("(")
		b.WriteString(scope)
		b.WriteString(")")
	}
	if breaking {
		b.WriteString("!")
	}
	b.WriteString(": ")
	b.WriteString(description)
	return b.String()
}

package changelog

import (
	"io"

	"github.com/ariel-frischer/clgen/internal/classify"
	"github.com/ariel-frischer/clgen/internal/config"
	"github.com/ariel-frischer/clgen/internal/gitlog"
)

// Aggregate consumes the commit stream once, in the order supplied, and
// groups classified commits into sections.
//
// Output order: the synthetic breaking-changes section first, then one
// section per configured type in grammar order, then the catch-all Others
// section when enabled. Empty sections are omitted. Within a section,
// entries keep input order.
//
// A breaking commit appears both in the breaking section and in its
// type-based section. Commits whose titles do not match the grammar are
// dropped unless the Others bucket is enabled; a breaking footer on an
// unmatched commit still surfaces in the breaking section, since the footer
// is an explicit author signal independent of the title shape.
//
// When the stream fails mid-iteration, the sections built so far are
// returned together with the error so the caller can decide whether a
// partial changelog is acceptable.
func Aggregate(commits gitlog.CommitIter, g *config.Grammar) ([]Section, error) {
	agg := newAggregator(g)

	for {
		commit, err := commits.Next()
		if err == io.EOF {
			return agg.sections(), nil
		}
		if err != nil {
			return agg.sections(), err
		}
		agg.add(commit)
	}
}

// aggregator accumulates grouped entries during the forward pass.
type aggregator struct {
	grammar  *config.Grammar
	byType   map[string][]Entry
	others   []Entry
	breaking []Entry
}

func newAggregator(g *config.Grammar) *aggregator {
	return &aggregator{
		grammar: g,
		byType:  make(map[string][]Entry, len(g.Types)),
	}
}

// add classifies one commit and appends it to its buckets.
func (a *aggregator) add(commit gitlog.RawCommit) {
	classified, ok := classify.Classify(commit, a.grammar)
	if !ok {
		a.addUnmatched(commit)
		return
	}

	entry := Entry{
		Scope:       classified.Scope,
		Description: classified.Description,
		Hash:        commit.Hash,
	}
	a.byType[classified.Type] = append(a.byType[classified.Type], entry)

	if classified.Breaking {
		breakingEntry := entry
		if classified.BreakingNote != "" {
			breakingEntry.Description = classified.BreakingNote
		}
		a.breaking = append(a.breaking, breakingEntry)
	}
}

// addUnmatched handles a commit the grammar did not match: bucketed under
// Others when enabled, and checked for a breaking footer either way.
func (a *aggregator) addUnmatched(commit gitlog.RawCommit) {
	if a.grammar.Others.Enabled {
		a.others = append(a.others, Entry{
			Description: commit.Title,
			Hash:        commit.Hash,
		})
	}

	if note, ok := classify.BreakingFooter(commit, a.grammar); ok {
		a.breaking = append(a.breaking, Entry{
			Description: note,
			Hash:        commit.Hash,
		})
	}
}

// sections assembles the final ordered, non-empty section list.
func (a *aggregator) sections() []Section {
	var out []Section

	if len(a.breaking) > 0 {
		out = append(out, Section{Heading: a.grammar.Breaking.Heading, Entries: a.breaking})
	}

	for _, ts := range a.grammar.Types {
		if entries := a.byType[ts.Type]; len(entries) > 0 {
			out = append(out, Section{Heading: ts.Heading, Entries: entries})
		}
	}

	if len(a.others) > 0 {
		out = append(out, Section{Heading: a.grammar.Others.Heading, Entries: a.others})
	}

	return out
}

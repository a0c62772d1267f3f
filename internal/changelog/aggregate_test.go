package changelog

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/clgen/internal/config"
	"github.com/ariel-frischer/clgen/internal/gitlog"
)

// sliceIter serves commits from a slice, optionally failing after the
// slice is exhausted to simulate an interrupted log source.
type sliceIter struct {
	commits []gitlog.RawCommit
	failErr error
	pos     int
}

func (it *sliceIter) Next() (gitlog.RawCommit, error) {
	if it.pos >= len(it.commits) {
		if it.failErr != nil {
			return gitlog.RawCommit{}, it.failErr
		}
		return gitlog.RawCommit{}, io.EOF
	}
	commit := it.commits[it.pos]
	it.pos++
	return commit, nil
}

func (it *sliceIter) Close() {}

func testGrammar() *config.Grammar {
	return &config.Grammar{
		Types: []config.TypeSpec{
			{Type: "feat", Heading: "Features"},
			{Type: "fix", Heading: "Bug Fixes"},
			{Type: "docs", Heading: "Documentation"},
		},
		Breaking: config.BreakingSpec{
			Marker:  "BREAKING CHANGE:",
			Heading: "BREAKING CHANGES",
		},
		Others: config.OthersSpec{Heading: "Others"},
	}
}

func titled(titles ...string) []gitlog.RawCommit {
	commits := make([]gitlog.RawCommit, 0, len(titles))
	for i, title := range titles {
		commits = append(commits, gitlog.RawCommit{
			Hash:  string(rune('a'+i)) + "000000",
			Title: title,
		})
	}
	return commits
}

func headings(sections []Section) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Heading)
	}
	return out
}

func TestAggregate_SectionOrderFollowsGrammar(t *testing.T) {
	t.Parallel()

	// Input order deliberately disagrees with the configured type order.
	commits := titled(
		"docs: document retries",
		"fix: close file handles",
		"feat: add retries",
	)

	sections, err := Aggregate(&sliceIter{commits: commits}, testGrammar())
	require.NoError(t, err)

	assert.Equal(t, []string{"Features", "Bug Fixes", "Documentation"}, headings(sections))
}

func TestAggregate_PreservesInputOrderWithinSection(t *testing.T) {
	t.Parallel()

	commits := titled(
		"feat: first",
		"fix: in between",
		"feat: second",
		"feat: third",
	)

	sections, err := Aggregate(&sliceIter{commits: commits}, testGrammar())
	require.NoError(t, err)
	require.Len(t, sections, 2)

	features := sections[0]
	require.Equal(t, "Features", features.Heading)
	descriptions := make([]string, 0, len(features.Entries))
	for _, e := range features.Entries {
		descriptions = append(descriptions, e.Description)
	}
	assert.Equal(t, []string{"first", "second", "third"}, descriptions)
}

func TestAggregate_EmptyConfiguredTypesProduceNoSection(t *testing.T) {
	t.Parallel()

	commits := titled("feat: only features here")

	sections, err := Aggregate(&sliceIter{commits: commits}, testGrammar())
	require.NoError(t, err)

	assert.Equal(t, []string{"Features"}, headings(sections))
}

func TestAggregate_BreakingSectionFirst(t *testing.T) {
	t.Parallel()

	commits := []gitlog.RawCommit{
		{Hash: "a000000", Title: "feat: add endpoint"},
		{Hash: "b000000", Title: "fix!: change exit codes"},
	}

	sections, err := Aggregate(&sliceIter{commits: commits}, testGrammar())
	require.NoError(t, err)

	require.Equal(t, []string{"BREAKING CHANGES", "Features", "Bug Fixes"}, headings(sections))

	// The breaking commit appears in both its type section and the
	// breaking section.
	assert.Equal(t, "change exit codes", sections[0].Entries[0].Description)
	assert.Equal(t, "change exit codes", sections[2].Entries[0].Description)
}

func TestAggregate_BreakingNotePreferredOverDescription(t *testing.T) {
	t.Parallel()

	commits := []gitlog.RawCommit{
		{
			Hash:  "a000000",
			Title: "feat: change defaults",
			Body:  "BREAKING CHANGE: config keys renamed",
		},
	}

	sections, err := Aggregate(&sliceIter{commits: commits}, testGrammar())
	require.NoError(t, err)

	require.Equal(t, "BREAKING CHANGES", sections[0].Heading)
	assert.Equal(t, "config keys renamed", sections[0].Entries[0].Description)
	assert.Equal(t, "change defaults", sections[1].Entries[0].Description)
}

func TestAggregate_UnmatchedDroppedByDefault(t *testing.T) {
	t.Parallel()

	commits := titled(
		"feat: kept",
		"Merge branch 'main'",
		"chore: unconfigured type",
	)

	sections, err := Aggregate(&sliceIter{commits: commits}, testGrammar())
	require.NoError(t, err)

	assert.Equal(t, []string{"Features"}, headings(sections))
}

func TestAggregate_OthersBucketWhenEnabled(t *testing.T) {
	t.Parallel()

	g := testGrammar()
	g.Others.Enabled = true

	commits := titled(
		"feat: kept",
		"Merge branch 'main'",
		"chore: unconfigured type",
	)

	sections, err := Aggregate(&sliceIter{commits: commits}, g)
	require.NoError(t, err)

	require.Equal(t, []string{"Features", "Others"}, headings(sections))

	others := sections[1]
	require.Len(t, others.Entries, 2)
	assert.Equal(t, "Merge branch 'main'", others.Entries[0].Description)
	assert.Equal(t, "chore: unconfigured type", others.Entries[1].Description)
}

func TestAggregate_BreakingFooterOnUnmatchedCommit(t *testing.T) {
	t.Parallel()

	commits := []gitlog.RawCommit{
		{
			Hash:  "a000000",
			Title: "rewrite storage layer",
			Body:  "BREAKING CHANGE: on-disk format changed",
		},
	}

	sections, err := Aggregate(&sliceIter{commits: commits}, testGrammar())
	require.NoError(t, err)

	require.Equal(t, []string{"BREAKING CHANGES"}, headings(sections))
	assert.Equal(t, "on-disk format changed", sections[0].Entries[0].Description)
}

func TestAggregate_NoCommits(t *testing.T) {
	t.Parallel()

	sections, err := Aggregate(&sliceIter{}, testGrammar())
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestAggregate_PartialStreamReturnsSectionsAndError(t *testing.T) {
	t.Parallel()

	streamErr := errors.New("object not found")
	iter := &sliceIter{
		commits: titled("feat: consumed before the failure"),
		failErr: streamErr,
	}

	sections, err := Aggregate(iter, testGrammar())
	require.ErrorIs(t, err, streamErr)

	// Whatever was consumed still aggregates.
	require.Equal(t, []string{"Features"}, headings(sections))
	assert.Equal(t, "consumed before the failure", sections[0].Entries[0].Description)
}

package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *Document {
	return &Document{
		Title: "v1.4.0",
		Sections: []Section{
			{
				Heading: "BREAKING CHANGES",
				Entries: []Entry{
					{Description: "config keys renamed", Hash: "aaaabbbbccccdddd"},
				},
			},
			{
				Heading: "Features",
				Entries: []Entry{
					{Scope: "api", Description: "add endpoint", Hash: "1111222233334444"},
					{Description: "add retries", Hash: "5555666677778888"},
				},
			},
		},
	}
}

func TestRenderString(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		doc         *Document
		opts        RenderOptions
		contains    []string
		notContains []string
	}{
		"full document with hashes": {
			doc:  testDocument(),
			opts: RenderOptions{Capitalize: true, ShowHash: true, HashLength: 7},
			contains: []string{
				"# v1.4.0",
				"## BREAKING CHANGES",
				"- Config keys renamed (aaaabbb)",
				"## Features",
				"- [api] Add endpoint (1111222)",
				"- Add retries (5555666)",
			},
		},
		"hashes disabled": {
			doc:  testDocument(),
			opts: RenderOptions{Capitalize: true},
			contains: []string{
				"- [api] Add endpoint",
			},
			notContains: []string{
				"1111222",
			},
		},
		"capitalization disabled": {
			doc:  testDocument(),
			opts: RenderOptions{ShowHash: true, HashLength: 7},
			contains: []string{
				"- [api] add endpoint (1111222)",
			},
			notContains: []string{
				"Add endpoint",
			},
		},
		"empty sections omitted": {
			doc: &Document{
				Title: "v0.1.0",
				Sections: []Section{
					{Heading: "Features"},
					{Heading: "Bug Fixes", Entries: []Entry{{Description: "fix it"}}},
				},
			},
			opts: RenderOptions{},
			contains: []string{
				"## Bug Fixes",
			},
			notContains: []string{
				"## Features",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := RenderString(tt.doc, tt.opts)
			require.NoError(t, err)

			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, notWant := range tt.notContains {
				assert.NotContains(t, got, notWant)
			}
		})
	}
}

func TestRenderString_Idempotent(t *testing.T) {
	t.Parallel()

	opts := RenderOptions{Capitalize: true, ShowHash: true, HashLength: 7}

	first, err := RenderString(testDocument(), opts)
	require.NoError(t, err)
	second, err := RenderString(testDocument(), opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderString_Structure(t *testing.T) {
	t.Parallel()

	got, err := RenderString(testDocument(), RenderOptions{})
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	assert.Equal(t, "# v1.4.0", lines[0])

	// Each section heading is preceded and followed by a blank line.
	for i, line := range lines {
		if strings.HasPrefix(line, "## ") {
			assert.Equal(t, "", lines[i-1], "blank line before %q", line)
			assert.Equal(t, "", lines[i+1], "blank line after %q", line)
		}
	}
}

func TestCapitalizeFirst(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want string
	}{
		"lowercase":      {in: "add endpoint", want: "Add endpoint"},
		"already upper":  {in: "Add endpoint", want: "Add endpoint"},
		"empty":          {in: "", want: ""},
		"single rune":    {in: "x", want: "X"},
		"unicode letter": {in: "ändern", want: "Ändern"},
		"digit first":    {in: "2x faster", want: "2x faster"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, capitalizeFirst(tt.in))
		})
	}
}

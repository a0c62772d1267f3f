package changelog

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/ariel-frischer/clgen/internal/config"
)

// RenderOptions controls entry formatting. Derive from the grammar with
// OptionsFromGrammar.
type RenderOptions struct {
	// Capitalize upper-cases the first character of each description.
	Capitalize bool
	// ShowHash appends the abbreviated commit hash to each entry.
	ShowHash bool
	// HashLength is the abbreviation length when ShowHash is set.
	HashLength int
}

// OptionsFromGrammar maps the grammar's rendering options.
func OptionsFromGrammar(g *config.Grammar) RenderOptions {
	return RenderOptions{
		Capitalize: g.CapitalizeDescriptions,
		ShowHash:   g.Hash.Show,
		HashLength: g.Hash.Length,
	}
}

// Render writes the document as Markdown: a top-level title heading, one
// "##" heading per section and one list item per entry.
//
// The function is idempotent - given the same input, it produces identical
// output. No locale-dependent formatting is used.
func Render(doc *Document, opts RenderOptions, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# %s\n", doc.Title); err != nil {
		return fmt.Errorf("rendering title: %w", err)
	}

	for _, section := range doc.Sections {
		if section.IsEmpty() {
			continue
		}
		if err := renderSection(section, opts, w); err != nil {
			return fmt.Errorf("rendering section %q: %w", section.Heading, err)
		}
	}

	return nil
}

// RenderString is a convenience function that renders to a string.
func RenderString(doc *Document, opts RenderOptions) (string, error) {
	var b strings.Builder
	if err := Render(doc, opts, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// renderSection writes one section heading and its entries.
func renderSection(section Section, opts RenderOptions, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\n## %s\n\n", section.Heading); err != nil {
		return err
	}

	for _, entry := range section.Entries {
		if _, err := io.WriteString(w, "- "+formatEntry(entry, opts)+"\n"); err != nil {
			return err
		}
	}

	return nil
}

// formatEntry renders a single list item: bracketed scope when present,
// description, abbreviated hash suffix when configured.
func formatEntry(entry Entry, opts RenderOptions) string {
	var b strings.Builder

	if entry.Scope != "" {
		b.WriteString("[")
		b.WriteString(entry.Scope)
		b.WriteString("] ")
	}

	desc := entry.Description
	if opts.Capitalize {
		desc = capitalizeFirst(desc)
	}
	b.WriteString(desc)

	if opts.ShowHash && entry.Hash != "" {
		b.WriteString(" (")
		b.WriteString(abbreviate(entry.Hash, opts.HashLength))
		b.WriteString(")")
	}

	return b.String()
}

// capitalizeFirst upper-cases the first rune of s.
func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// abbreviate shortens a hash to n characters. Non-positive or oversized n
// leaves the hash untouched.
func abbreviate(hash string, n int) string {
	if n <= 0 || n >= len(hash) {
		return hash
	}
	return hash[:n]
}

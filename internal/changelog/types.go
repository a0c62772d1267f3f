package changelog

// Entry is one rendered changelog line: a description with its optional
// scope and the commit hash it came from.
type Entry struct {
	Scope       string
	Description string
	Hash        string
}

// Section is a heading with its entries in input order. The aggregator
// never reorders entries within a section.
type Section struct {
	Heading string
	Entries []Entry
}

// IsEmpty returns true if the section has no entries.
func (s Section) IsEmpty() bool {
	return len(s.Entries) == 0
}

// Document is a fully aggregated changelog ready for rendering.
type Document struct {
	Title    string
	Sections []Section
}

// EntryCount returns the total number of entries across all sections.
func (d *Document) EntryCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Entries)
	}
	return n
}

package structparser

import (
	stratalint "github.com/stratalint/stratalint"
)

// BracketToken is the content of one [...] occurrence anywhere in the text.
// Tokens are extracted independently of line classification and consumed
// only by the token resolver.
type BracketToken struct {
	Text string
	Pos  stratalint.Position
	File string
}

// Item is a free-text leaf entry belonging to exactly one section or one
// subsection. Ownership is decided at parse time and never reassigned.
type Item struct {
	Text string
	Pos  stratalint.Position
}

// Subsection is a named sub-grouping within a section. Pos is the position
// of its first occurrence; re-encountering the same name reuses the
// existing subsection.
type Subsection struct {
	Name  string
	Pos   stratalint.Position
	Items []Item
}

// Section is a top-level named grouping. Items holds entries not belonging
// to any subsection. SubOrder preserves first-seen subsection order for
// deterministic validation output. Lines keeps the raw header lines for
// diagnostics.
type Section struct {
	Name     string
	Pos      stratalint.Position
	Items    []Item
	Subs     map[string]*Subsection
	SubOrder []string
	Lines    []string
}

// subsection returns the named subsection, creating it on first encounter.
func (s *Section) subsection(name string, pos stratalint.Position) *Subsection {
	if sub, ok := s.Subs[name]; ok {
		return sub
	}

	sub := &Subsection{Name: name, Pos: pos}
	s.Subs[name] = sub
	s.SubOrder = append(s.SubOrder, name)

	return sub
}

// ParseResult is the per-file parse output: name-keyed sections plus the
// flat ordered sequence of bracket tokens found anywhere in the file.
// Built once, read-only thereafter.
type ParseResult struct {
	File     string
	Sections map[string]*Section
	Order    []string
	Tokens   []BracketToken
}

// section returns the named section, creating it on first encounter.
// Re-opening a previously seen name continues accumulating into the same
// section object.
func (r *ParseResult) section(name string, pos stratalint.Position) *Section {
	if sec, ok := r.Sections[name]; ok {
		return sec
	}

	sec := &Section{
		Name: name,
		Pos:  pos,
		Subs: make(map[string]*Subsection),
	}
	r.Sections[name] = sec
	r.Order = append(r.Order, name)

	return sec
}

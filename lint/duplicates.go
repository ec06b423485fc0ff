package lint

import (
	"fmt"

	stratalint "github.com/stratalint/stratalint"
	"github.com/stratalint/stratalint/structparser"
)

// Duplicates detects items whose normalized text repeats within a section
// or within a subsection. The two scopes never overlap: a top-level item is
// not a duplicate of a same-text subsection item. Issues come out in
// section insertion order, top-level items before subsections, item
// encounter order within each scope.
func Duplicates(file string, res *structparser.ParseResult) []stratalint.Issue {
	var issues []stratalint.Issue

	for _, name := range res.Order {
		sec := res.Sections[name]
		issues = append(issues, duplicatesInScope(file, sec.Name, sec.Items)...)

		for _, subName := range sec.SubOrder {
			sub := sec.Subs[subName]
			issues = append(issues, duplicatesInScope(file, sec.Name+"."+sub.Name, sub.Items)...)
		}
	}

	return issues
}

// duplicatesInScope runs one left-to-right pass over a single scope,
// mapping normalized text to the row of first occurrence.
func duplicatesInScope(file, scope string, items []structparser.Item) []stratalint.Issue {
	var issues []stratalint.Issue

	firstSeen := make(map[string]int)

	for _, item := range items {
		key := normalize(item.Text)

		if first, ok := firstSeen[key]; ok {
			issues = append(issues, stratalint.Issue{
				File: file,
				Pos:  item.Pos,
				Err: fmt.Errorf("%w %q in %s at line %d (first seen at line %d)",
					stratalint.ErrDuplicateEntry, item.Text, scope, item.Pos.Line, first),
			})

			continue
		}

		firstSeen[key] = item.Pos.Line
	}

	return issues
}

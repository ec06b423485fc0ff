// Package structparser converts indentation-based plain text into a
// section/subsection/item hierarchy. There is no formal grammar for the
// format; structure is inferred from whitespace heuristics, processed in a
// single top-to-bottom pass.
package structparser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	stratalint "github.com/stratalint/stratalint"
)

// bracketRef matches one [...] occurrence; the group is the token text.
var bracketRef = regexp.MustCompile(`\[([^\]]+)\]`)

// cursor is the parsing context threaded through the line loop: the most
// recently opened section, and the active subsection within it (nil when a
// new section resets the context).
type cursor struct {
	section *Section
	sub     *Subsection
}

// Parse builds a ParseResult from raw text. Lines are classified top to
// bottom; bracket tokens are extracted from every raw line regardless of
// which structural branch the line took.
func Parse(file, src string) *ParseResult {
	res := &ParseResult{
		File:     file,
		Sections: make(map[string]*Section),
	}

	var cur cursor

	for i, raw := range splitLines(src) {
		row := i + 1
		res.collectTokens(file, raw, row)

		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}

		first, _ := utf8.DecodeRuneInString(raw)
		if !unicode.IsSpace(first) {
			// Top-level header: first token names the section and resets
			// the subsection context.
			sec := res.section(firstWord(trimmed), stratalint.Position{Line: row, Column: 1})
			sec.Lines = append(sec.Lines, raw)
			cur.section = sec
			cur.sub = nil

			continue
		}

		switch {
		case isSecondLevel(raw):
			if cur.section == nil {
				continue
			}

			if SubsectionLike(trimmed) {
				pos := stratalint.Position{Line: row, Column: 3}
				cur.sub = cur.section.subsection(firstWord(trimmed), pos)
				// A subsection header also counts as an entry of its
				// section, so a repeated header shows up as a duplicate.
				cur.section.Items = append(cur.section.Items, Item{Text: trimmed, Pos: pos})

				continue
			}

			cur.attach(Item{Text: trimmed, Pos: stratalint.Position{Line: row, Column: 3}})
		case leadingSpaces(raw) >= 4:
			// Nested content never changes the subsection context.
			if cur.section == nil {
				continue
			}

			cur.attach(Item{Text: trimmed, Pos: stratalint.Position{Line: row, Column: leadingSpaces(raw) + 1}})
		}
		// One to three leading spaces falling through: continuation, no
		// state change.
	}

	return res
}

// attach appends an item to the most specific enclosing scope.
func (c *cursor) attach(item Item) {
	if c.sub != nil {
		c.sub.Items = append(c.sub.Items, item)
		return
	}

	c.section.Items = append(c.section.Items, item)
}

// collectTokens records every [...] occurrence on the line with the column
// of its opening bracket.
func (r *ParseResult) collectTokens(file, raw string, row int) {
	for _, match := range bracketRef.FindAllStringSubmatchIndex(raw, -1) {
		r.Tokens = append(r.Tokens, BracketToken{
			Text: raw[match[2]:match[3]],
			Pos:  stratalint.Position{Line: row, Column: match[0] + 1},
			File: file,
		})
	}
}

// isSecondLevel reports exactly two leading spaces followed by a non-space
// character.
func isSecondLevel(raw string) bool {
	if !strings.HasPrefix(raw, "  ") {
		return false
	}

	rest := raw[2:]
	if rest == "" {
		return false
	}

	first, _ := utf8.DecodeRuneInString(rest)

	return !unicode.IsSpace(first)
}

// leadingSpaces counts leading space characters (not tabs).
func leadingSpaces(raw string) int {
	return len(raw) - len(strings.TrimLeft(raw, " "))
}

// firstWord returns the first whitespace-delimited token of trimmed text.
func firstWord(trimmed string) string {
	if i := strings.IndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		return trimmed[:i]
	}

	return trimmed
}

// splitLines splits on \n and strips a trailing \r from each line, so \n
// and \r\n endings are accepted uniformly.
func splitLines(src string) []string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

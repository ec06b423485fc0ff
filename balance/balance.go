// Package balance checks well-nestedness of (), {} and [] across a whole file.
package balance

import (
	"fmt"

	stratalint "github.com/stratalint/stratalint"
)

// openBracket is one entry on the scan stack: an opener still waiting for
// its closing counterpart.
type openBracket struct {
	char rune
	pos  stratalint.Position
}

var closerFor = map[rune]rune{
	'(': ')',
	'{': '}',
	'[': ']',
}

// Check scans src in row-major, left-to-right order and returns the first
// bracket error found, or nil if every bracket is balanced. Exactly one
// issue is reported per invocation.
func Check(file, src string) *stratalint.Issue {
	var stack []openBracket

	line := 1
	column := 1

	for _, ch := range src {
		switch ch {
		case '\n':
			line++
			column = 1
			continue
		case '\r':
			// CRLF line endings are accepted uniformly; the carriage
			// return occupies no column of its own.
			continue
		}

		switch ch {
		case '(', '{', '[':
			stack = append(stack, openBracket{
				char: ch,
				pos:  stratalint.Position{Line: line, Column: column},
			})
		case ')', '}', ']':
			pos := stratalint.Position{Line: line, Column: column}
			if len(stack) == 0 {
				return &stratalint.Issue{
					File: file,
					Pos:  pos,
					Err:  fmt.Errorf("%w '%c' at %s", stratalint.ErrUnmatchedClosing, ch, pos),
				}
			}

			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if closerFor[top.char] != ch {
				return &stratalint.Issue{
					File: file,
					Pos:  pos,
					Err: fmt.Errorf("%w '%c' at %s: expected '%c' to close '%c' opened at %s",
						stratalint.ErrMismatchedClosing, ch, pos, closerFor[top.char], top.char, top.pos),
				}
			}
		}

		column++
	}

	if len(stack) > 0 {
		// The most recently opened, still-open bracket is the one reported.
		top := stack[len(stack)-1]

		return &stratalint.Issue{
			File: file,
			Pos:  top.pos,
			Err:  fmt.Errorf("%w '%c' opened at %s", stratalint.ErrUnclosedBracket, top.char, top.pos),
		}
	}

	return nil
}

package structparser

import (
	"regexp"
	"strings"
)

// subsectionWord is the restricted identifier shape a subsection header word
// may take: letters, digits, underscore, hyphen, apostrophe.
var subsectionWord = regexp.MustCompile(`^[A-Za-z0-9_'-]+$`)

// SubsectionLike reports whether a trimmed second-level line reads like a
// subsection header rather than an item. The classification is heuristic:
// no comma, no pipe, not a bracket reference, at most two words, and every
// word restricted to the identifier shape. Two-word items that happen to
// satisfy all of this are classified as subsections; token resolution
// depends on that quirk, so it must not be tightened.
func SubsectionLike(trimmed string) bool {
	if strings.ContainsAny(trimmed, ",|") {
		return false
	}

	if strings.HasPrefix(trimmed, "[") {
		return false
	}

	words := strings.Fields(trimmed)
	if len(words) == 0 || len(words) > 2 {
		return false
	}

	for _, word := range words {
		if !subsectionWord.MatchString(word) {
			return false
		}
	}

	return true
}

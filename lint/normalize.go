package lint

import (
	"strings"

	"golang.org/x/text/cases"
)

// normalize trims surrounding whitespace and case-folds text for the
// case-insensitive comparisons used by duplicate detection and token
// resolution. A fresh Caser per call: cases.Caser is stateful and the
// runner lints files concurrently.
func normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

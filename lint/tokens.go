package lint

import (
	"fmt"
	"regexp"
	"strings"

	stratalint "github.com/stratalint/stratalint"
	"github.com/stratalint/stratalint/structparser"
)

// allCaps matches constant-style tokens that are exempt from resolution.
var allCaps = regexp.MustCompile(`^[A-Z0-9_]+$`)

// skipToken reports whether a trimmed token is exempt from resolution.
// Exempt tokens can never produce an error regardless of document contents.
func skipToken(text string) bool {
	switch {
	case strings.HasPrefix(text, "input."):
	case strings.Contains(text, "?."):
	case strings.HasPrefix(text, "random"):
	case strings.HasPrefix(text, "canonical"):
	case allCaps.MatchString(text):
	case strings.ContainsAny(text, "()|{}"):
	default:
		return false
	}

	return true
}

// ResolveTokens checks every bracket token of the parse result against the
// section/subsection/item structure and reports each one that refers to
// nothing. Resolution is purely structural name matching; the semantic
// meaning of config values is never evaluated.
func ResolveTokens(res *structparser.ParseResult) []stratalint.Issue {
	var issues []stratalint.Issue

	for _, tok := range res.Tokens {
		if issue := resolveToken(res, tok); issue != nil {
			issues = append(issues, *issue)
		}
	}

	return issues
}

func resolveToken(res *structparser.ParseResult, tok structparser.BracketToken) *stratalint.Issue {
	text := strings.TrimSpace(tok.Text)
	if skipToken(text) {
		return nil
	}

	prefix, suffix, dotted := strings.Cut(text, ".")
	if !dotted {
		if findSection(res, text) != nil {
			return nil
		}

		return &stratalint.Issue{
			File: tok.File,
			Pos:  tok.Pos,
			Err:  fmt.Errorf("%w [%s]: no section named %q", stratalint.ErrUnresolvedToken, tok.Text, text),
		}
	}

	prefix = strings.TrimSpace(prefix)
	suffix = strings.TrimSpace(suffix)

	sec := findSection(res, prefix)
	if sec == nil {
		return &stratalint.Issue{
			File: tok.File,
			Pos:  tok.Pos,
			Err:  fmt.Errorf("%w %q in token [%s]", stratalint.ErrUnknownPrefix, prefix, tok.Text),
		}
	}

	if resolveSuffix(sec, suffix) {
		return nil
	}

	return &stratalint.Issue{
		File: tok.File,
		Pos:  tok.Pos,
		Err: fmt.Errorf("%w [%s]: %q not found under %q",
			stratalint.ErrUnresolvedToken, tok.Text, suffix, sec.Name),
	}
}

// resolveSuffix searches, in order: a subsection named suffix, a top-level
// item starting with suffix, then any subsection item starting with suffix.
// First match wins. The starts-with test against item text is intentionally
// lenient; do not tighten it to an exact match.
func resolveSuffix(sec *structparser.Section, suffix string) bool {
	want := normalize(suffix)

	for _, name := range sec.SubOrder {
		if normalize(name) == want {
			return true
		}
	}

	for _, item := range sec.Items {
		if strings.HasPrefix(normalize(item.Text), want) {
			return true
		}
	}

	for _, name := range sec.SubOrder {
		for _, item := range sec.Subs[name].Items {
			if strings.HasPrefix(normalize(item.Text), want) {
				return true
			}
		}
	}

	return false
}

// findSection looks a section up by case-insensitive name.
func findSection(res *structparser.ParseResult, name string) *structparser.Section {
	want := normalize(name)

	for _, candidate := range res.Order {
		if normalize(candidate) == want {
			return res.Sections[candidate]
		}
	}

	return nil
}

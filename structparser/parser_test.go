package structparser

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	stratalint "github.com/stratalint/stratalint"
)

func TestSubsectionLike(t *testing.T) {
	tests := []struct {
		name    string
		trimmed string
		want    bool
	}{
		{
			name:    "single identifier word",
			trimmed: "indoors",
			want:    true,
		},
		{
			name:    "two identifier words",
			trimmed: "winter coats",
			want:    true,
		},
		{
			name:    "hyphen and apostrophe allowed",
			trimmed: "semi-gloss finish's",
			want:    true,
		},
		{
			name:    "digits and underscore allowed",
			trimmed: "rack_2",
			want:    true,
		},
		{
			name:    "comma disqualifies",
			trimmed: "hats, gloves",
			want:    false,
		},
		{
			name:    "pipe disqualifies",
			trimmed: "red|blue",
			want:    false,
		},
		{
			name:    "bracket reference disqualifies",
			trimmed: "[closet.indoors]",
			want:    false,
		},
		{
			name:    "three words disqualify",
			trimmed: "one two three",
			want:    false,
		},
		{
			name:    "punctuation outside the identifier shape",
			trimmed: "shoes!",
			want:    false,
		},
		{
			name:    "empty string",
			trimmed: "",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubsectionLike(tt.trimmed))
		})
	}
}

func TestParseHierarchy(t *testing.T) {
	src := "closet\n" +
		"  indoors\n" +
		"    jacket\n" +
		"    boots\n" +
		"  red shoes, worn\n" +
		"outfit\n" +
		"    scarf\n"

	res := Parse("test.txt", src)

	assert.Equal(t, []string{"closet", "outfit"}, res.Order)

	closet := res.Sections["closet"]
	assert.NotZero(t, closet)
	assert.Equal(t, stratalint.Position{Line: 1, Column: 1}, closet.Pos)
	assert.Equal(t, []string{"indoors"}, closet.SubOrder)

	// The comma line is not subsection-like, and indoors is still the
	// active subsection, so it lands under indoors with the nested items.
	indoors := closet.Subs["indoors"]
	assert.Equal(t, stratalint.Position{Line: 2, Column: 3}, indoors.Pos)
	assert.Equal(t, []string{"jacket", "boots", "red shoes, worn"}, itemTexts(indoors.Items))
	assert.Equal(t, stratalint.Position{Line: 3, Column: 5}, indoors.Items[0].Pos)

	// The subsection header itself registers as a section entry.
	assert.Equal(t, []string{"indoors"}, itemTexts(closet.Items))

	// Nested content under a section with no active subsection attaches
	// to the section directly.
	outfit := res.Sections["outfit"]
	assert.Equal(t, 1, len(outfit.Items))
	assert.Equal(t, "scarf", outfit.Items[0].Text)
	assert.Equal(t, stratalint.Position{Line: 7, Column: 5}, outfit.Items[0].Pos)
}

func TestParseSecondLevelItemGoesToActiveSubsection(t *testing.T) {
	src := "closet\n" +
		"  indoors\n" +
		"  hats, gloves\n"

	res := Parse("test.txt", src)

	closet := res.Sections["closet"]
	indoors := closet.Subs["indoors"]
	assert.Equal(t, 1, len(indoors.Items))
	assert.Equal(t, "hats, gloves", indoors.Items[0].Text)
	// Only the subsection header itself sits in the section's entry list.
	assert.Equal(t, []string{"indoors"}, itemTexts(closet.Items))
}

func TestParseSectionHeaderResetsSubsection(t *testing.T) {
	src := "closet\n" +
		"  indoors\n" +
		"outfit\n" +
		"    scarf\n"

	res := Parse("test.txt", src)

	// The nested scarf follows the outfit header, so the indoors context
	// from closet does not leak across sections.
	assert.Equal(t, 0, len(res.Sections["closet"].Subs["indoors"].Items))
	assert.Equal(t, []string{"scarf"}, itemTexts(res.Sections["outfit"].Items))
}

func TestParseReopensExistingSection(t *testing.T) {
	src := "closet\n" +
		"    jacket\n" +
		"outfit\n" +
		"    scarf\n" +
		"closet\n" +
		"    boots\n"

	res := Parse("test.txt", src)

	// Non-contiguous occurrences accumulate into the same section.
	assert.Equal(t, []string{"closet", "outfit"}, res.Order)
	assert.Equal(t, []string{"jacket", "boots"}, itemTexts(res.Sections["closet"].Items))
	assert.Equal(t, stratalint.Position{Line: 1, Column: 1}, res.Sections["closet"].Pos)
	assert.Equal(t, 2, len(res.Sections["closet"].Lines))
}

func TestParseSectionNameIsFirstToken(t *testing.T) {
	res := Parse("test.txt", "closet upstairs hallway\n")

	assert.Equal(t, []string{"closet"}, res.Order)
}

func TestParseIgnoresShallowIndentAndBlankLines(t *testing.T) {
	src := "closet\n" +
		"   three spaces\n" +
		" one space\n" +
		"\n" +
		"  \n" +
		"    kept\n"

	res := Parse("test.txt", src)

	// One to three leading spaces fall through without altering state.
	assert.Equal(t, []string{"kept"}, itemTexts(res.Sections["closet"].Items))
	assert.Equal(t, 0, len(res.Sections["closet"].SubOrder))
}

func TestParseContentBeforeAnySection(t *testing.T) {
	src := "  stray [closet.indoors]\n" +
		"closet\n"

	res := Parse("test.txt", src)

	// No enclosing scope exists for the stray line, but its bracket
	// token is still extracted.
	assert.Equal(t, []string{"closet"}, res.Order)
	assert.Equal(t, 0, len(res.Sections["closet"].Items))
	assert.Equal(t, 1, len(res.Tokens))
	assert.Equal(t, "closet.indoors", res.Tokens[0].Text)
}

func TestParseBracketTokens(t *testing.T) {
	src := "outfit [a.b] then [C_D]\n" +
		"  item with [ref one] and [ref two]\n"

	res := Parse("test.txt", src)

	assert.Equal(t, 4, len(res.Tokens))
	assert.Equal(t, "a.b", res.Tokens[0].Text)
	assert.Equal(t, stratalint.Position{Line: 1, Column: 8}, res.Tokens[0].Pos)
	assert.Equal(t, "C_D", res.Tokens[1].Text)
	assert.Equal(t, stratalint.Position{Line: 1, Column: 19}, res.Tokens[1].Pos)
	assert.Equal(t, "ref one", res.Tokens[2].Text)
	assert.Equal(t, "ref two", res.Tokens[3].Text)
	assert.Equal(t, "test.txt", res.Tokens[0].File)
}

func TestParseCRLF(t *testing.T) {
	src := "closet\r\n  indoors\r\n    jacket\r\n"

	res := Parse("test.txt", src)

	closet := res.Sections["closet"]
	assert.NotZero(t, closet)
	assert.Equal(t, []string{"indoors"}, closet.SubOrder)
	assert.Equal(t, []string{"jacket"}, itemTexts(closet.Subs["indoors"].Items))
}

func itemTexts(items []Item) []string {
	texts := make([]string, 0, len(items))
	for _, item := range items {
		texts = append(texts, item.Text)
	}

	return texts
}

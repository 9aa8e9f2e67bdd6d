package prompt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptweave/internal/syntax"
)

// tagView is the comparable slice of a parsed tag (IDs are fresh per parse).
type tagView struct {
	text    string
	weight  float64
	enabled bool
	hint    SyntaxHint
}

func view(tags []Tag) []tagView {
	var out []tagView
	for _, tag := range tags {
		out = append(out, tagView{
			text:    tag.Text,
			weight:  math.Round(tag.Weight*1e6) / 1e6,
			enabled: tag.Enabled,
			hint:    tag.Hint,
		})
	}
	return out
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tagView
	}{
		{
			name:  "plain tags",
			input: "forest, castle",
			expected: []tagView{
				{text: "forest", weight: 1, enabled: true, hint: HintBrackets},
				{text: "castle", weight: 1, enabled: true, hint: HintBrackets},
			},
		},
		{
			name:  "full-width comma separates",
			input: "桜の森，夜空",
			expected: []tagView{
				{text: "桜の森", weight: 1, enabled: true, hint: HintBrackets},
				{text: "夜空", weight: 1, enabled: true, hint: HintBrackets},
			},
		},
		{
			name:  "single pipe separates",
			input: "a|b",
			expected: []tagView{
				{text: "a", weight: 1, enabled: true, hint: HintBrackets},
				{text: "b", weight: 1, enabled: true, hint: HintBrackets},
			},
		},
		{
			name:  "pipe inside alias does not separate",
			input: "<a|b>, c",
			expected: []tagView{
				{text: "<a|b>", weight: 1, enabled: true, hint: HintBrackets},
				{text: "c", weight: 1, enabled: true, hint: HintBrackets},
			},
		},
		{
			name:  "brace nesting amplifies",
			input: "{{castle}}",
			expected: []tagView{
				{text: "castle", weight: 1.1025, enabled: true, hint: HintBrackets},
			},
		},
		{
			name:  "bracket nesting attenuates",
			input: "[sky]",
			expected: []tagView{
				{text: "sky", weight: math.Round(1e6/1.05) / 1e6, enabled: true, hint: HintBrackets},
			},
		},
		{
			name:  "explicit numeric weight",
			input: "1.5::forest::",
			expected: []tagView{
				{text: "forest", weight: 1.5, enabled: true, hint: HintNumeric},
			},
		},
		{
			name:  "numeric weight clamps to bounds",
			input: "9::sun::, 0.01::dust::",
			expected: []tagView{
				{text: "sun", weight: WeightMax, enabled: true, hint: HintNumeric},
				{text: "dust", weight: WeightMin, enabled: true, hint: HintNumeric},
			},
		},
		{
			name:  "empty segments dropped silently",
			input: "a, , ,b,",
			expected: []tagView{
				{text: "a", weight: 1, enabled: true, hint: HintBrackets},
				{text: "b", weight: 1, enabled: true, hint: HintBrackets},
			},
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, errs := Parse(tt.input)
			assert.Empty(t, errs)
			assert.Equal(t, tt.expected, view(tags))
		})
	}
}

func TestParse_EndToEndExample(t *testing.T) {
	tags, errs := Parse("1.5::forest::, {castle}, [sky], plain")
	require.Empty(t, errs)
	require.Len(t, tags, 4)

	assert.Equal(t, "forest", tags[0].Text)
	assert.InDelta(t, 1.5, tags[0].Weight, 0.01)

	assert.Equal(t, "castle", tags[1].Text)
	assert.InDelta(t, EmphasisFactor, tags[1].Weight, 0.01)

	assert.Equal(t, "sky", tags[2].Text)
	assert.InDelta(t, 1/EmphasisFactor, tags[2].Weight, 0.01)

	assert.Equal(t, "plain", tags[3].Text)
	assert.InDelta(t, 1.0, tags[3].Weight, 0.01)

	// Re-serializing then re-parsing reproduces the same four tags.
	again, errs := Parse(String(tags))
	require.Empty(t, errs)
	require.Len(t, again, 4)
	for i := range tags {
		assert.Equal(t, tags[i].Text, again[i].Text)
		assert.InDelta(t, tags[i].Weight, again[i].Weight, 0.01)
	}
}

func TestParse_MalformedWeight(t *testing.T) {
	tags, errs := Parse("1.2.3::blur::")

	require.Len(t, tags, 1)
	assert.Equal(t, "blur", tags[0].Text)
	assert.Equal(t, 1.0, tags[0].Weight, "malformed prefix degrades to default weight")

	require.Len(t, errs, 1)
	assert.Equal(t, syntax.ErrMalformedWeight, errs[0].Kind)
}

func TestParse_FreshIdentities(t *testing.T) {
	first, _ := Parse("a, b")
	second, _ := Parse("a, b")

	require.Len(t, first, 2)
	assert.NotEqual(t, first[0].ID, first[1].ID, "ids unique within a list")
	assert.NotEqual(t, first[0].ID, second[0].ID, "ids unique across parses")
}

func TestParse_Deterministic(t *testing.T) {
	input := "1.5::forest::, {castle}, ||a|b||, <style>"
	first, errsA := Parse(input)
	second, errsB := Parse(input)

	assert.Equal(t, view(first), view(second))
	assert.Equal(t, errsA, errsB)
}

package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanBrackets_MatchedPairs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Match
	}{
		{
			name:  "single brace pair",
			input: "{castle}",
			expected: []Match{
				{Start: 0, End: 8, Text: "{castle}", Kind: KindBrace, Depth: 1},
			},
		},
		{
			name:  "single bracket pair",
			input: "[sky]",
			expected: []Match{
				{Start: 0, End: 5, Text: "[sky]", Kind: KindBracket, Depth: 1},
			},
		},
		{
			name:  "nested braces emit inner first",
			input: "{a{b}c}",
			expected: []Match{
				{Start: 2, End: 5, Text: "{b}", Kind: KindBrace, Depth: 2},
				{Start: 0, End: 7, Text: "{a{b}c}", Kind: KindBrace, Depth: 1},
			},
		},
		{
			name:  "brace and bracket families are independent",
			input: "{a]b}",
			expected: []Match{
				{Start: 2, End: 3, Text: "]", Kind: KindError, Err: &ScanError{Kind: ErrUnmatchedClosing, Pos: 2}},
				{Start: 0, End: 5, Text: "{a]b}", Kind: KindBrace, Depth: 1},
			},
		},
		{
			name:  "interleaved families both match",
			input: "{[a]}",
			expected: []Match{
				{Start: 1, End: 4, Text: "[a]", Kind: KindBracket, Depth: 1},
				{Start: 0, End: 5, Text: "{[a]}", Kind: KindBrace, Depth: 1},
			},
		},
		{
			name:     "no brackets",
			input:    "plain text",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScanBrackets(tt.input))
		})
	}
}

func TestScanBrackets_ErrorLocalization(t *testing.T) {
	t.Run("unmatched closing at offset 4", func(t *testing.T) {
		matches := ScanBrackets("text}")
		require.Len(t, matches, 1)
		assert.Equal(t, KindError, matches[0].Kind)
		require.NotNil(t, matches[0].Err)
		assert.Equal(t, ErrUnmatchedClosing, matches[0].Err.Kind)
		assert.Equal(t, 4, matches[0].Err.Pos)
	})

	t.Run("unclosed opening at offset 0", func(t *testing.T) {
		matches := ScanBrackets("{text")
		require.Len(t, matches, 1)
		assert.Equal(t, KindError, matches[0].Kind)
		require.NotNil(t, matches[0].Err)
		assert.Equal(t, ErrUnclosedOpening, matches[0].Err.Kind)
		assert.Equal(t, 0, matches[0].Err.Pos)
	})

	t.Run("every unclosed opening is reported", func(t *testing.T) {
		matches := ScanBrackets("{{[")
		require.Len(t, matches, 3)
		for _, m := range matches {
			assert.Equal(t, KindError, m.Kind)
			require.NotNil(t, m.Err)
			assert.Equal(t, ErrUnclosedOpening, m.Err.Kind)
		}
	})
}

func TestScanBrackets_BalancedNesting(t *testing.T) {
	// Correctly nested pairs: zero errors, max depth equals true nesting
	// depth clamped to MaxDepth.
	for depth := 1; depth <= 8; depth++ {
		input := ""
		for i := 0; i < depth; i++ {
			input = "{" + input + "}"
		}

		matches := ScanBrackets(input)
		require.Len(t, matches, depth, "input %q", input)

		maxDepth := 0
		for _, m := range matches {
			assert.NotEqual(t, KindError, m.Kind)
			if m.Depth > maxDepth {
				maxDepth = m.Depth
			}
		}

		want := depth
		if want > MaxDepth {
			want = MaxDepth
		}
		assert.Equal(t, want, maxDepth, "input %q", input)
	}
}

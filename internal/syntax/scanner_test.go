package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestScan_RunsCoverText(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain", "a simple prompt"},
		{"braces", "{castle}, [sky]"},
		{"weights", "1.5::forest::, plain"},
		{"alias and choice", "||<a|b>|c||, <style>"},
		{"errors", "broken}, {open"},
		{"everything", "1.5::forest::, {a{b}}, [c], <s>, ||x|y||, }"},
		{"unicode", "桜の森，夜空, {月}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Scan(tt.input)

			var sb strings.Builder
			for _, run := range res.Runs {
				sb.WriteString(run.Text)
			}
			assert.Equal(t, tt.input, sb.String(), "runs must reconstruct input")

			last := 0
			for _, m := range res.Matches {
				assert.GreaterOrEqual(t, m.Start, last, "matches must not overlap")
				assert.Less(t, m.Start, m.End)
				last = m.End
			}
		})
	}
}

func TestScan_ErrorsSurviveMerge(t *testing.T) {
	// The stray ] sits inside the brace span, so its error match loses the
	// merge. The error itself must still be reported.
	res := Scan("{a]b}")

	require.Len(t, res.Errors, 1)
	assert.Equal(t, ErrUnmatchedClosing, res.Errors[0].Kind)
	assert.Equal(t, 2, res.Errors[0].Pos)

	require.Len(t, res.Matches, 1)
	assert.Equal(t, KindBrace, res.Matches[0].Kind)
}

func TestScan_MalformedWeightStillHighlighted(t *testing.T) {
	res := Scan("1.2.3::blur::")

	require.Len(t, res.Errors, 1)
	assert.Equal(t, ErrMalformedWeight, res.Errors[0].Kind)

	require.NotEmpty(t, res.Matches)
	assert.Equal(t, KindWeightMain, res.Matches[0].Kind)
}

func TestScan_EndToEndExample(t *testing.T) {
	res := Scan("1.5::forest::, {castle}, [sky], plain")

	assert.Empty(t, res.Errors)

	var kinds []Kind
	for _, m := range res.Matches {
		kinds = append(kinds, m.Kind)
	}
	assert.Equal(t, []Kind{KindWeightMain, KindWeightTrailing, KindBrace, KindBracket}, kinds)
}

func TestScan_Properties(t *testing.T) {
	gen := rapid.StringMatching(`[a-z ,{}\[\]<>|:.0-9]*`)

	t.Run("coverage and non-overlap", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			text := gen.Draw(t, "text")
			res := Scan(text)

			var sb strings.Builder
			for _, run := range res.Runs {
				sb.WriteString(run.Text)
			}
			if sb.String() != text {
				t.Fatalf("runs do not reconstruct input: %q != %q", sb.String(), text)
			}

			last := 0
			for _, m := range res.Matches {
				if m.Start < last {
					t.Fatalf("overlapping match at %d (last end %d)", m.Start, last)
				}
				last = m.End
			}
		})
	})

	t.Run("determinism", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			text := gen.Draw(t, "text")
			first := Scan(text)
			second := Scan(text)
			assert.Equal(t, first, second)
		})
	})
}

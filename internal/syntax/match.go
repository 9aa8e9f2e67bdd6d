// Package syntax implements the prompt syntax recognizers and match merger.
//
// The package is a pipeline of independent single-pass scanners (emphasis
// brackets, weight annotations, alias references, dynamic-choice blocks)
// whose pooled matches are merged into a non-overlapping, text-covering run
// sequence. Every scanner is total: malformed mid-edit input degrades to
// advisory errors, never a failure.
package syntax

// Kind identifies which recognizer produced a match.
type Kind int

const (
	// KindBrace is {…} emphasis nesting (amplifying).
	KindBrace Kind = iota
	// KindBracket is […] emphasis nesting (attenuating).
	KindBracket
	// KindWeightMain covers the "w::content" part of a weight annotation.
	KindWeightMain
	// KindWeightTrailing covers the closing "::" of a weight annotation.
	KindWeightTrailing
	// KindAlias is a <name> reference.
	KindAlias
	// KindChoice is a ||…|| boundary or an interior alternative separator.
	KindChoice
	// KindError is an advisory error span (unmatched/unclosed bracket).
	KindError
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBrace:
		return "brace"
	case KindBracket:
		return "bracket"
	case KindWeightMain:
		return "weight"
	case KindWeightTrailing:
		return "weight-trailing"
	case KindAlias:
		return "alias"
	case KindChoice:
		return "choice"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// MaxDepth is the depth at which bracket nesting stops being distinguished.
// Deeper nesting still parses; only the reported depth is clamped.
const MaxDepth = 5

// Match is one recognized span of prompt text.
//
// Start and End are half-open byte offsets into the scanned text. They are
// only meaningful for that exact text and must be recomputed after any edit.
type Match struct {
	Start int
	End   int
	Text  string
	Kind  Kind

	// Depth is set for KindBrace and KindBracket, clamped to [1, MaxDepth].
	Depth int

	// Weight is set for KindWeightMain and KindWeightTrailing.
	Weight float64

	// Err carries the advisory error for KindError spans, and for
	// KindWeightMain spans whose numeric prefix failed to parse.
	Err *ScanError
}

// clampDepth limits a nesting depth to [1, MaxDepth].
func clampDepth(d int) int {
	if d < 1 {
		return 1
	}
	if d > MaxDepth {
		return MaxDepth
	}
	return d
}

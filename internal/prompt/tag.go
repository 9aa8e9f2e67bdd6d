// Package prompt implements the structured tag model and the bidirectional
// converter between raw prompt text and tag lists.
//
// Parsing and serialization form a round trip: for any tag list T,
// Parse(String(T)) yields the enabled subset of T with identical text and
// order, and weights within 0.01.
package prompt

import (
	"math"

	"github.com/google/uuid"
)

// Weight bounds and defaults shared by parsing and editing.
const (
	WeightMin     = 0.1
	WeightMax     = 3.0
	WeightDefault = 1.0

	// WeightStep is the fixed increment used by the weight-adjust ops.
	WeightStep = 0.05

	// EmphasisFactor is the multiplicative weight change per brace or
	// bracket nesting level: {x} is 1.05, [x] is 1/1.05.
	EmphasisFactor = 1.05
)

// SyntaxHint records which sub-syntax produced a tag, so serialization can
// pick the canonical rendering.
type SyntaxHint int

const (
	// HintBrackets renders integral emphasis levels as {…}/[…] nesting
	// (and weight 1.0 as plain text).
	HintBrackets SyntaxHint = iota
	// HintNumeric renders the explicit "w::text::" form.
	HintNumeric
)

// String returns the hint name.
func (h SyntaxHint) String() string {
	switch h {
	case HintBrackets:
		return "brackets"
	case HintNumeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// Tag is one prompt term. Text is opaque: the engine attaches no meaning to
// it. Disabled tags stay in the editable list but are excluded from
// serialization.
type Tag struct {
	ID      string
	Text    string
	Weight  float64
	Enabled bool
	Hint    SyntaxHint
}

// New creates an enabled tag with default weight and a fresh identity.
func New(text string) Tag {
	return Tag{
		ID:      uuid.NewString(),
		Text:    text,
		Weight:  WeightDefault,
		Enabled: true,
		Hint:    HintBrackets,
	}
}

// ClampWeight limits w to [WeightMin, WeightMax].
func ClampWeight(w float64) float64 {
	return math.Min(WeightMax, math.Max(WeightMin, w))
}

// emphasisLevel returns the signed nesting level n for which
// EmphasisFactor^n equals w, or ok=false when w is not an integral level.
// Positive levels are braces, negative levels brackets, zero plain text.
func emphasisLevel(w float64) (int, bool) {
	if w <= 0 {
		return 0, false
	}
	level := math.Log(w) / math.Log(EmphasisFactor)
	n := int(math.Round(level))
	if math.Abs(math.Pow(EmphasisFactor, float64(n))-w) > 1e-6 {
		return 0, false
	}
	return n, true
}

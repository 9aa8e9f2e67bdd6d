// Package highlight turns scan results into styled text. Color choice is a
// pure function of (match kind, payload, theme) and never feeds back into
// parsing.
package highlight

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"promptweave/internal/syntax"
	"promptweave/internal/ui/styles"
)

// depthLightnessStep is the HCL lightness increase per nesting level.
const depthLightnessStep = 0.06

// weightRampSpan is the |weight - 1.0| distance at which the weight ramp
// saturates.
const weightRampSpan = 2.0

// StyleFor returns the lipgloss style for a match under the current theme.
func StyleFor(m syntax.Match) lipgloss.Style {
	pal := styles.Syntax

	switch m.Kind {
	case syntax.KindBrace:
		return fg(depthColor(pal.Brace, m.Depth))
	case syntax.KindBracket:
		return fg(depthColor(pal.Bracket, m.Depth))
	case syntax.KindWeightMain:
		return fg(weightColor(m.Weight))
	case syntax.KindWeightTrailing:
		return fg(pal.WeightBaseline)
	case syntax.KindAlias:
		return fg(pal.Alias)
	case syntax.KindChoice:
		return fg(pal.Choice).Bold(true)
	case syntax.KindError:
		return fg(pal.Error).Bold(true)
	default:
		return lipgloss.NewStyle()
	}
}

func fg(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// depthColor lightens the base color by nesting depth, giving the 1..5
// lightness ramp for bracket runs.
func depthColor(baseHex string, depth int) string {
	base, err := colorful.Hex(baseHex)
	if err != nil {
		return baseHex
	}
	if depth < 1 {
		depth = 1
	}
	if depth > syntax.MaxDepth {
		depth = syntax.MaxDepth
	}

	h, c, l := base.Hcl()
	l += float64(depth-1) * depthLightnessStep
	if l > 0.95 {
		l = 0.95
	}
	return colorful.Hcl(h, c, l).Clamped().Hex()
}

// weightColor blends from the baseline accent toward the up or down hue
// family by |weight - 1.0|, saturating at weightRampSpan.
func weightColor(weight float64) string {
	pal := styles.Syntax

	base, err := colorful.Hex(pal.WeightBaseline)
	if err != nil {
		return pal.WeightBaseline
	}

	accentHex := pal.WeightUp
	dist := weight - 1.0
	if dist < 0 {
		accentHex = pal.WeightDown
		dist = -dist
	}
	accent, err := colorful.Hex(accentHex)
	if err != nil {
		return accentHex
	}

	t := dist / weightRampSpan
	if t > 1 {
		t = 1
	}
	return base.BlendHcl(accent, t).Clamped().Hex()
}

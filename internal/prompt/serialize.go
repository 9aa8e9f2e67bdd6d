package prompt

import (
	"strconv"
	"strings"
)

// String renders a tag list back to canonical prompt text. Only enabled
// tags are rendered, joined by ", "; disabled tags are omitted entirely.
// Each tag uses the canonical form for its syntax hint: brace/bracket
// nesting when the weight is an integral emphasis level, the explicit
// numeric form otherwise.
func String(tags []Tag) string {
	var parts []string
	for _, tag := range tags {
		if !tag.Enabled {
			continue
		}
		parts = append(parts, render(tag))
	}
	return strings.Join(parts, ", ")
}

// render picks the canonical textual form for one tag.
func render(tag Tag) string {
	w := ClampWeight(tag.Weight)

	if tag.Hint == HintBrackets {
		if n, ok := emphasisLevel(w); ok {
			switch {
			case n == 0:
				return tag.Text
			case n > 0:
				return strings.Repeat("{", n) + tag.Text + strings.Repeat("}", n)
			default:
				return strings.Repeat("[", -n) + tag.Text + strings.Repeat("]", -n)
			}
		}
	}

	return FormatWeight(w) + "::" + tag.Text + "::"
}

// FormatWeight renders a weight with the shortest decimal form that parses
// back to the same value.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

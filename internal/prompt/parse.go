package prompt

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"promptweave/internal/syntax"
)

// segment is one separator-delimited slice of the source text. start is the
// byte offset of the segment, used for error positions.
type segment struct {
	text  string
	start int
}

// Parse converts raw prompt text into an ordered tag list. Tag separators
// are comma, full-width comma, and a single "|" that is not half of a "||"
// pair; separators inside an alias reference are interior text. Segments
// that normalize to empty are dropped silently. Parse never fails: weight
// anomalies degrade to advisory errors.
func Parse(text string) ([]Tag, []syntax.ScanError) {
	var tags []Tag
	var errs []syntax.ScanError

	for _, seg := range splitSegments(text) {
		tag, segErr, ok := parseSegment(seg)
		if segErr != nil {
			errs = append(errs, *segErr)
		}
		if ok {
			tags = append(tags, tag)
		}
	}

	return tags, errs
}

// splitSegments cuts text at top-level tag separators, tracking alias depth
// so "<a,b>" stays whole and skipping "||" pairs so dynamic-choice
// boundaries never split.
func splitSegments(text string) []segment {
	var segs []segment
	depth := 0
	segStart := 0

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case r == '<':
			depth++
		case r == '>':
			if depth > 0 {
				depth--
			}
		case depth == 0 && (r == ',' || r == '，'):
			segs = append(segs, segment{text: text[segStart:i], start: segStart})
			segStart = i + size
		case depth == 0 && r == '|':
			if i+1 < len(text) && text[i+1] == '|' {
				i += 2 // "||" pair, not a separator
				continue
			}
			segs = append(segs, segment{text: text[segStart:i], start: segStart})
			segStart = i + size
		}
		i += size
	}

	return append(segs, segment{text: text[segStart:], start: segStart})
}

// parseSegment normalizes one segment into a tag. ok is false when the
// segment normalizes to empty.
func parseSegment(seg segment) (Tag, *syntax.ScanError, bool) {
	s := strings.TrimSpace(seg.text)

	// Surrounding emphasis nesting: each brace level amplifies, each
	// bracket level attenuates.
	level := 0
	for {
		if len(s) >= 2 && s[0] == '{' && s[len(s)-1] == '}' {
			s = strings.TrimSpace(s[1 : len(s)-1])
			level++
			continue
		}
		if len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']' {
			s = strings.TrimSpace(s[1 : len(s)-1])
			level--
			continue
		}
		break
	}

	weight := math.Pow(EmphasisFactor, float64(level))
	hint := HintBrackets
	var segErr *syntax.ScanError

	// Explicit numeric form: w::content::.
	if idx := strings.Index(s, "::"); idx >= 0 && idx <= len(s)-4 && strings.HasSuffix(s, "::") {
		prefix := s[:idx]
		s = strings.TrimSpace(s[idx+2 : len(s)-2])
		hint = HintNumeric
		if w, err := strconv.ParseFloat(prefix, 64); err == nil {
			weight *= w
		} else {
			segErr = &syntax.ScanError{Kind: syntax.ErrMalformedWeight, Pos: seg.start}
		}
	}

	if s == "" {
		return Tag{}, segErr, false
	}

	tag := New(s)
	tag.Weight = ClampWeight(weight)
	tag.Hint = hint
	return tag, segErr, true
}

package syntax

import (
	"strconv"
	"strings"
)

// ScanWeights recognizes explicit weight annotations of the form
// "w::content::". Each annotation emits a KindWeightMain match covering
// "w::content" and a separate KindWeightTrailing match for the closing "::".
//
// "::" pairs are consumed greedily left to right; a "::" with no closing
// counterpart is plain text. A prefix that does not parse as a float degrades
// to weight 1.0 and attaches an ErrMalformedWeight advisory to the main
// match, which stays highlighted.
func ScanWeights(text string) []Match {
	var matches []Match

	pos := 0
	for pos < len(text) {
		rel := strings.Index(text[pos:], "::")
		if rel < 0 {
			break
		}
		open := pos + rel

		closeRel := strings.Index(text[open+2:], "::")
		if closeRel < 0 {
			// Lone "::" with no closing pair: plain text.
			pos = open + 2
			continue
		}
		close := open + 2 + closeRel

		start := prefixStart(text, open)
		prefix := text[start:open]

		weight := 1.0
		var scanErr *ScanError
		if w, err := strconv.ParseFloat(prefix, 64); err == nil {
			weight = w
		} else {
			scanErr = &ScanError{Kind: ErrMalformedWeight, Pos: start}
		}

		matches = append(matches,
			Match{
				Start:  start,
				End:    close,
				Text:   text[start:close],
				Kind:   KindWeightMain,
				Weight: weight,
				Err:    scanErr,
			},
			Match{
				Start:  close,
				End:    close + 2,
				Text:   text[close : close+2],
				Kind:   KindWeightTrailing,
				Weight: weight,
			},
		)

		pos = close + 2
	}

	return matches
}

// prefixStart walks backwards from the opening "::" to the start of the
// weight prefix. Boundary characters are all ASCII, so multibyte runes are
// never split.
func prefixStart(text string, open int) int {
	start := open
	for start > 0 && !isWeightBoundary(text[start-1]) {
		start--
	}
	return start
}

// isWeightBoundary reports whether b terminates a weight prefix.
func isWeightBoundary(b byte) bool {
	switch b {
	case ',', '|', '{', '}', '[', ']', '<', '>', ':', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

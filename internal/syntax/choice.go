package syntax

import "strings"

// ScanChoices recognizes dynamic-choice blocks of the form "||a|b|c||".
// Blocks are located with a greedy, non-nested match: each "||" opens a
// block that ends at the next "||". The two boundary tokens and every
// interior "|" found at alias depth zero are emitted as KindChoice matches;
// a "|" inside a <name> reference is interior to the alias, not a
// separator. Content between separators is left to the other recognizers.
func ScanChoices(text string) []Match {
	var matches []Match

	pos := 0
	for pos < len(text) {
		rel := strings.Index(text[pos:], "||")
		if rel < 0 {
			break
		}
		open := pos + rel

		closeRel := strings.Index(text[open+2:], "||")
		if closeRel < 0 {
			break // unterminated block: plain text
		}
		close := open + 2 + closeRel

		matches = append(matches, choiceMatch(text, open))

		depth := 0
		for i := open + 2; i < close; i++ {
			b := text[i]
			if b == '|' && depth == 0 {
				matches = append(matches, Match{
					Start: i,
					End:   i + 1,
					Text:  text[i : i+1],
					Kind:  KindChoice,
				})
				continue
			}
			depth = aliasDepthStep(depth, b)
		}

		matches = append(matches, choiceMatch(text, close))
		pos = close + 2
	}

	return matches
}

// choiceMatch builds the KindChoice match for a "||" boundary at pos.
func choiceMatch(text string, pos int) Match {
	return Match{
		Start: pos,
		End:   pos + 2,
		Text:  text[pos : pos+2],
		Kind:  KindChoice,
	}
}

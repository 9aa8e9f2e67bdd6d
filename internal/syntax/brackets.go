package syntax

// bracketInfo is a matching-stack entry. It exists only for the duration of
// a single scan.
type bracketInfo struct {
	open  byte
	pos   int
	depth int
}

// ScanBrackets recognizes {…} and […] emphasis nesting in a single linear
// pass. Braces and brackets use two independent stacks, so the families
// never interfere with each other.
//
// Matched pairs emit a KindBrace/KindBracket match spanning the opening
// through the closing character, with the nesting depth at the opening
// (clamped to MaxDepth). A closing character with an empty stack emits a
// KindError match at the closing position; entries still on a stack at end
// of text emit a KindError match at their opening position.
func ScanBrackets(text string) []Match {
	var matches []Match
	var braces, brackets []bracketInfo

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			braces = append(braces, bracketInfo{open: '{', pos: i, depth: len(braces) + 1})
		case '[':
			brackets = append(brackets, bracketInfo{open: '[', pos: i, depth: len(brackets) + 1})
		case '}':
			if n := len(braces); n > 0 {
				open := braces[n-1]
				braces = braces[:n-1]
				matches = append(matches, Match{
					Start: open.pos,
					End:   i + 1,
					Text:  text[open.pos : i+1],
					Kind:  KindBrace,
					Depth: clampDepth(open.depth),
				})
			} else {
				matches = append(matches, errorMatch(text, i, ErrUnmatchedClosing))
			}
		case ']':
			if n := len(brackets); n > 0 {
				open := brackets[n-1]
				brackets = brackets[:n-1]
				matches = append(matches, Match{
					Start: open.pos,
					End:   i + 1,
					Text:  text[open.pos : i+1],
					Kind:  KindBracket,
					Depth: clampDepth(open.depth),
				})
			} else {
				matches = append(matches, errorMatch(text, i, ErrUnmatchedClosing))
			}
		}
	}

	for _, open := range braces {
		matches = append(matches, errorMatch(text, open.pos, ErrUnclosedOpening))
	}
	for _, open := range brackets {
		matches = append(matches, errorMatch(text, open.pos, ErrUnclosedOpening))
	}

	return matches
}

// errorMatch builds a single-character KindError match at pos.
func errorMatch(text string, pos int, kind ErrorKind) Match {
	return Match{
		Start: pos,
		End:   pos + 1,
		Text:  text[pos : pos+1],
		Kind:  KindError,
		Err:   &ScanError{Kind: kind, Pos: pos},
	}
}

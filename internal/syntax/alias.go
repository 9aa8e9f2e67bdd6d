package syntax

// AliasRef is one <name> reference, purely structural. Resolution of the
// name to stored content happens outside this package.
type AliasRef struct {
	Start int
	End   int
	Raw   string // includes the < > delimiters
}

// AliasRefs returns the alias references in text using leftmost,
// non-overlapping matching. A "<" opens a reference and increases the
// nesting depth; the reference closes at the ">" that returns the depth to
// zero. An unclosed "<" is plain text, not an error.
func AliasRefs(text string) []AliasRef {
	var refs []AliasRef

	for i := 0; i < len(text); i++ {
		if text[i] != '<' {
			continue
		}
		end := aliasEnd(text, i)
		if end < 0 {
			break // nothing after an unclosed reference can close
		}
		refs = append(refs, AliasRef{Start: i, End: end, Raw: text[i:end]})
		i = end - 1
	}

	return refs
}

// ScanAliases returns the alias references as KindAlias matches.
func ScanAliases(text string) []Match {
	refs := AliasRefs(text)
	if len(refs) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(refs))
	for _, ref := range refs {
		matches = append(matches, Match{
			Start: ref.Start,
			End:   ref.End,
			Text:  ref.Raw,
			Kind:  KindAlias,
		})
	}
	return matches
}

// aliasEnd returns the half-open end offset of the alias reference opening
// at start, or -1 if it never closes.
func aliasEnd(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth <= 0 {
				return i + 1
			}
		}
	}
	return -1
}

// aliasDepthStep adjusts an alias nesting depth for one byte, clamping at
// zero. Other scanners use this to treat "|" inside a reference as interior
// text rather than a separator.
func aliasDepthStep(depth int, b byte) int {
	switch b {
	case '<':
		return depth + 1
	case '>':
		if depth > 0 {
			return depth - 1
		}
	}
	return depth
}

package syntax

import "sort"

// Merge pools matches from multiple recognizers and resolves overlaps.
// Matches are stably sorted by start offset; a match is kept only when it
// starts at or after the end of the last kept match. The stable sort makes
// the tie-break "first-registered wins": among equally-early candidates, the
// earlier pool takes precedence.
func Merge(pools ...[]Match) []Match {
	var all []Match
	for _, pool := range pools {
		all = append(all, pool...)
	}
	if len(all) == 0 {
		return nil
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Start < all[j].Start
	})

	kept := all[:0:0]
	lastEnd := 0
	for _, m := range all {
		if m.Start >= lastEnd {
			kept = append(kept, m)
			lastEnd = m.End
		}
	}

	return kept
}

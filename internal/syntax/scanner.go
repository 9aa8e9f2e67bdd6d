package syntax

import "sort"

// Run is one slice of the scanned text. Match is nil for plain gaps between
// matches. Concatenating the Text of all runs in order reconstructs the
// scanned text byte for byte.
type Run struct {
	Text  string
	Match *Match
}

// Result is the output of one full scan over a prompt text.
type Result struct {
	// Matches is the merged, non-overlapping match list sorted by start.
	Matches []Match
	// Runs covers the input exactly, alternating plain gaps and matches.
	Runs []Run
	// Errors are the advisory errors for the whole text, sorted by
	// position. They include errors whose spans lost the overlap merge.
	Errors []ScanError
}

// Scan runs every recognizer over text, merges their matches and slices the
// text into runs. It is a pure function: same text, same result. It never
// fails; malformed input produces advisory Errors alongside best-effort
// highlighting.
func Scan(text string) Result {
	pools := [][]Match{
		ScanBrackets(text),
		ScanWeights(text),
		ScanAliases(text),
		ScanChoices(text),
	}

	// Errors are collected before the merge so an error inside a span
	// claimed by another recognizer still surfaces in the list.
	var errs []ScanError
	for _, pool := range pools {
		for _, m := range pool {
			if m.Err != nil {
				errs = append(errs, *m.Err)
			}
		}
	}
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Pos < errs[j].Pos })

	merged := Merge(pools...)

	return Result{
		Matches: merged,
		Runs:    sliceRuns(text, merged),
		Errors:  errs,
	}
}

// sliceRuns cuts text into alternating plain/matched runs using the merged
// match list. The concatenation of all run texts equals text exactly.
func sliceRuns(text string, merged []Match) []Run {
	if text == "" {
		return nil
	}

	runs := make([]Run, 0, 2*len(merged)+1)
	pos := 0
	for i := range merged {
		m := &merged[i]
		if m.Start > pos {
			runs = append(runs, Run{Text: text[pos:m.Start]})
		}
		runs = append(runs, Run{Text: text[m.Start:m.End], Match: m})
		pos = m.End
	}
	if pos < len(text) {
		runs = append(runs, Run{Text: text[pos:]})
	}

	return runs
}

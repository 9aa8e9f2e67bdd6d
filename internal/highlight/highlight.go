package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"promptweave/internal/syntax"
)

// StyledRun is one slice of prompt text with its resolved style. Runs are
// non-overlapping, sorted by Start, and cover the text exactly; Match is
// nil for plain gaps.
type StyledRun struct {
	Start int
	End   int
	Text  string
	Style lipgloss.Style
	Match *syntax.Match
}

// Runs scans text and resolves a style for every run under the current
// theme. The concatenated run texts equal the input exactly.
func Runs(text string) ([]StyledRun, []syntax.ScanError) {
	res := syntax.Scan(text)

	runs := make([]StyledRun, 0, len(res.Runs))
	pos := 0
	for _, run := range res.Runs {
		styled := StyledRun{
			Start: pos,
			End:   pos + len(run.Text),
			Text:  run.Text,
			Match: run.Match,
		}
		if run.Match != nil {
			styled.Style = StyleFor(*run.Match)
		}
		runs = append(runs, styled)
		pos = styled.End
	}

	return runs, res.Errors
}

// Render joins styled runs into ANSI text. Styles add escape codes only;
// stripping them yields the original text byte for byte.
func Render(runs []StyledRun) string {
	var sb strings.Builder
	for _, run := range runs {
		if run.Match != nil {
			sb.WriteString(run.Style.Render(run.Text))
		} else {
			sb.WriteString(run.Text)
		}
	}
	return sb.String()
}

// Highlight is the convenience path: scan, style and render in one call.
func Highlight(text string) string {
	runs, _ := Runs(text)
	return Render(runs)
}

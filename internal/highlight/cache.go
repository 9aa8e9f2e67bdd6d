package highlight

import (
	"promptweave/internal/log"
	"promptweave/internal/syntax"
	"promptweave/internal/ui/styles"
)

// Cache memoizes the last (text, theme) scan so cursor-only redraws never
// re-scan. It is a single-owner cell: a lookup either returns the stored
// record unchanged or replaces the whole record. The theme half of the key
// is the styles generation, which ApplyTheme bumps, so any theme change
// invalidates the cell wholesale.
//
// The cell is not safe for concurrent use; the editing surface that owns it
// is single-threaded.
type Cache struct {
	text string
	gen  uint64
	ok   bool

	runs []StyledRun
	errs []syntax.ScanError
}

// Runs returns the styled runs and advisory errors for text, scanning only
// when text or theme changed since the last call.
func (c *Cache) Runs(text string) ([]StyledRun, []syntax.ScanError) {
	gen := styles.Generation()
	if c.ok && c.text == text && c.gen == gen {
		return c.runs, c.errs
	}

	runs, errs := Runs(text)
	*c = Cache{text: text, gen: gen, ok: true, runs: runs, errs: errs}
	log.Debug(log.CatCache, "highlight cache refreshed", "chars", len(text), "runs", len(runs), "errors", len(errs))

	return runs, errs
}

// Render returns the ANSI-rendered form of the cached runs for text.
func (c *Cache) Render(text string) string {
	runs, _ := c.Runs(text)
	return Render(runs)
}

// Invalidate clears the cell.
func (c *Cache) Invalidate() {
	*c = Cache{}
}

// Package editor implements the two-pane prompt editing surface: a
// live-highlighted text input on top and the structured tag list below,
// with an advisory error bar. Text and tag views stay consistent: text
// edits re-parse, tag edits re-serialize.
package editor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"promptweave/internal/cachemanager"
	"promptweave/internal/config"
	"promptweave/internal/log"
	"promptweave/internal/prompt"
	"promptweave/internal/syntax"
	"promptweave/internal/ui/promptarea"
	"promptweave/internal/ui/styles"
)

// pane identifies which half of the editor has focus.
type pane int

const (
	paneText pane = iota
	paneTags
)

const parseTTL = time.Minute

// parseResult bundles what one Parse call produced, so the read-through
// cache can key it by prompt text.
type parseResult struct {
	tags []prompt.Tag
	errs []syntax.ScanError
}

// Model is the bubbletea model for the prompt editor.
type Model struct {
	cfg  config.Config
	keys keyMap
	help help.Model

	area   promptarea.Model
	tags   []prompt.Tag
	sel    map[string]bool
	cursor int

	focus  pane
	width  int
	height int

	parses *cachemanager.ReadThroughCache[string, parseResult]
}

// New creates an editor pre-filled with initial prompt text.
func New(cfg config.Config, initial string) Model {
	area := promptarea.New()
	area.SetPlaceholder("type a prompt: tag, {emphasized}, [softened], 1.5::weighted::, <alias>, ||a|b||")
	area.SetValue(initial)
	area.Focus()

	cache := cachemanager.NewInMemoryCache[string, parseResult](
		"parse", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	parses := cachemanager.NewReadThroughCache(cache, func(_ context.Context, text string) parseResult {
		tags, errs := prompt.Parse(text)
		return parseResult{tags: tags, errs: errs}
	})

	m := Model{
		cfg:    cfg,
		keys:   defaultKeyMap(),
		help:   help.New(),
		area:   area,
		sel:    map[string]bool{},
		focus:  paneText,
		width:  80,
		height: 24,
		parses: parses,
	}
	m.syncFromText()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Tags returns the current tag list.
func (m Model) Tags() []prompt.Tag {
	return m.tags
}

// Value returns the current prompt text.
func (m Model) Value() string {
	return m.area.Value()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.area.SetWidth(max(10, msg.Width-4))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.SwitchPane) {
			return m.switchPane(), nil
		}

		if m.focus == paneText {
			var cmd tea.Cmd
			m.area, cmd = m.area.Update(msg)
			m.syncFromText()
			return m, cmd
		}
		return m.updateTags(msg)
	}

	return m, nil
}

// switchPane moves focus between the text input and the tag pane.
func (m Model) switchPane() Model {
	if m.focus == paneText {
		m.focus = paneTags
		m.area.Blur()
	} else {
		m.focus = paneText
		m.area.Focus()
	}
	return m
}

// updateTags handles key input while the tag pane has focus. Every edit
// goes through the pure ops in internal/prompt and then re-serializes, so
// the text pane always shows the canonical form.
func (m Model) updateTags(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tags)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if tag, ok := m.current(); ok {
			m.sel = cloneSelection(m.sel)
			m.sel[tag.ID] = !m.sel[tag.ID]
		}

	case key.Matches(msg, m.keys.SelectAll):
		m.sel = prompt.ToggleSelectAll(m.tags, m.sel)

	case key.Matches(msg, m.keys.Remove):
		if len(m.selectedIDs()) > 0 {
			m.applyTags(prompt.RemoveSelected(m.tags, m.sel))
			m.sel = map[string]bool{}
		} else if tag, ok := m.current(); ok {
			m.applyTags(prompt.Remove(m.tags, tag.ID))
		}

	case key.Matches(msg, m.keys.Disable):
		if len(m.selectedIDs()) > 0 {
			m.applyTags(prompt.DisableSelected(m.tags, m.sel))
		}

	case key.Matches(msg, m.keys.Toggle):
		if tag, ok := m.current(); ok {
			m.applyTags(prompt.ToggleEnabled(m.tags, tag.ID))
		}

	case key.Matches(msg, m.keys.WeightUp):
		if tag, ok := m.current(); ok {
			m.applyTags(prompt.IncreaseWeight(m.tags, tag.ID))
		}

	case key.Matches(msg, m.keys.WeightDown):
		if tag, ok := m.current(); ok {
			m.applyTags(prompt.DecreaseWeight(m.tags, tag.ID))
		}

	case key.Matches(msg, m.keys.MoveUp):
		if m.cursor > 0 {
			m.applyTags(prompt.Move(m.tags, m.cursor, m.cursor-1))
			m.cursor--
		}

	case key.Matches(msg, m.keys.MoveDown):
		if m.cursor < len(m.tags)-1 {
			m.applyTags(prompt.Move(m.tags, m.cursor, m.cursor+1))
			m.cursor++
		}

	case key.Matches(msg, m.keys.Insert):
		m.applyTags(prompt.Insert(m.tags, m.cursor+1, "new tag"))
		if len(m.tags) > 1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
	}

	if m.cursor >= len(m.tags) {
		m.cursor = len(m.tags) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	return m, nil
}

// applyTags installs an edited tag list and re-serializes it into the text
// pane. Serialization drops disabled tags from the text; the list keeps
// them.
func (m *Model) applyTags(tags []prompt.Tag) {
	m.tags = tags
	m.area.SetValue(prompt.String(tags))
	log.Debug(log.CatUI, "tag edit applied", "tags", len(tags))
}

// syncFromText re-derives the tag list from the current text through the
// parse cache.
func (m *Model) syncFromText() {
	res := m.parses.Get(context.Background(), m.area.Value(), parseTTL)
	m.tags = res.tags
	if m.cursor >= len(m.tags) {
		m.cursor = max(0, len(m.tags)-1)
	}
	m.sel = map[string]bool{}
}

func (m Model) current() (prompt.Tag, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tags) {
		return prompt.Tag{}, false
	}
	return m.tags[m.cursor], true
}

func (m Model) selectedIDs() []string {
	var ids []string
	for id, on := range m.sel {
		if on {
			ids = append(ids, id)
		}
	}
	return ids
}

func cloneSelection(sel map[string]bool) map[string]bool {
	out := make(map[string]bool, len(sel))
	for k, v := range sel {
		out[k] = v
	}
	return out
}

// View implements tea.Model.
func (m Model) View() string {
	var sections []string

	sections = append(sections, styles.TitleStyle.Render("promptweave"))
	sections = append(sections, m.viewTextPane())
	sections = append(sections, m.viewTagPane())
	if m.cfg.UI.ShowErrorBar {
		if bar := m.viewErrorBar(); bar != "" {
			sections = append(sections, bar)
		}
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTextPane() string {
	border := styles.PaneBorderStyle
	if m.focus == paneText {
		border = styles.FocusBorderStyle
	}
	return border.Width(max(10, m.width-2)).Render(m.area.View())
}

func (m Model) viewTagPane() string {
	border := styles.PaneBorderStyle
	if m.focus == paneTags {
		border = styles.FocusBorderStyle
	}

	if len(m.tags) == 0 {
		return border.Width(max(10, m.width-2)).Render(styles.MutedStyle.Render("no tags"))
	}

	rows := make([]string, 0, len(m.tags))
	for i, tag := range m.tags {
		rows = append(rows, m.viewTagRow(i, tag))
	}
	return border.Width(max(10, m.width-2)).Render(strings.Join(rows, "\n"))
}

func (m Model) viewTagRow(i int, tag prompt.Tag) string {
	cursor := "  "
	if i == m.cursor && m.focus == paneTags {
		cursor = styles.SelectedStyle.Render("▸ ")
	}

	mark := "[ ]"
	if m.sel[tag.ID] {
		mark = styles.SelectedStyle.Render("[*]")
	}

	state := "on "
	if !tag.Enabled {
		state = styles.MutedStyle.Render("off")
	}

	text := runewidth.Truncate(tag.Text, max(8, m.width-24), "…")
	row := fmt.Sprintf("%s%s %s %s", cursor, mark, state, text)
	if m.cfg.UI.ShowWeights {
		row += styles.MutedStyle.Render(fmt.Sprintf("  ×%s", prompt.FormatWeight(tag.Weight)))
	}
	if !tag.Enabled {
		row = styles.MutedStyle.Render(row)
	}
	return row
}

func (m Model) viewErrorBar() string {
	errs := m.area.Errors()
	if len(errs) == 0 {
		return ""
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message())
	}
	return styles.ErrorStyle.Render("! " + strings.Join(msgs, "; "))
}

// Package promptarea provides a text input with live prompt syntax
// highlighting and wrapping.
package promptarea

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"promptweave/internal/highlight"
	"promptweave/internal/syntax"
	"promptweave/internal/ui/styles"
)

// Model is a single-field text input with prompt syntax highlighting.
// Scanning goes through a highlight.Cache, so cursor-only updates reuse the
// previous scan.
type Model struct {
	value       string
	cursor      int // byte position, 0 = before first char
	focused     bool
	width       int
	placeholder string

	cache highlight.Cache

	placeholderStyle lipgloss.Style
}

// New creates a new prompt input model.
func New() Model {
	return Model{
		width:            40,
		placeholderStyle: lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor),
	}
}

// Value returns the current text value.
func (m Model) Value() string {
	return m.value
}

// SetValue sets the text value and clamps the cursor.
func (m *Model) SetValue(v string) {
	m.value = v
	if m.cursor > len(v) {
		m.cursor = len(v)
	}
}

// Cursor returns the current cursor position.
func (m Model) Cursor() int {
	return m.cursor
}

// SetCursor sets the cursor position (clamped to valid range).
func (m *Model) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(m.value) {
		pos = len(m.value)
	}
	m.cursor = pos
}

// Focused returns whether the input is focused.
func (m Model) Focused() bool {
	return m.focused
}

// Focus focuses the input.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes focus from the input.
func (m *Model) Blur() {
	m.focused = false
}

// SetWidth sets the display width.
func (m *Model) SetWidth(w int) {
	if w < 1 {
		w = 1
	}
	m.width = w
}

// SetPlaceholder sets the placeholder text.
func (m *Model) SetPlaceholder(p string) {
	m.placeholder = p
}

// Errors returns the advisory scan errors for the current value.
func (m *Model) Errors() []syntax.ScanError {
	_, errs := m.cache.Runs(m.value)
	return errs
}

// InsertTagAt inserts name as a new tag at the given byte position, adding
// a separator when the position does not already sit at a tag boundary.
// This is the primitive an external autocomplete source calls into.
func (m *Model) InsertTagAt(pos int, name string) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(m.value) {
		pos = len(m.value)
	}

	insert := name
	before := strings.TrimRight(m.value[:pos], " ")
	if before != "" && !strings.HasSuffix(before, ",") {
		insert = ", " + name
	}
	after := m.value[pos:]
	if after != "" && !strings.HasPrefix(strings.TrimLeft(after, " "), ",") {
		insert += ", "
	}

	m.value = m.value[:pos] + insert + m.value[pos:]
	m.cursor = pos + len(insert)
}

// Update handles key messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyLeft:
			if msg.Alt {
				m.cursor = prevWordStart(m.value, m.cursor)
			} else if m.cursor > 0 {
				_, size := utf8.DecodeLastRuneInString(m.value[:m.cursor])
				m.cursor -= size
			}
		case tea.KeyRight:
			if msg.Alt {
				m.cursor = nextWordEnd(m.value, m.cursor)
			} else if m.cursor < len(m.value) {
				_, size := utf8.DecodeRuneInString(m.value[m.cursor:])
				m.cursor += size
			}
		case tea.KeyHome, tea.KeyCtrlA:
			m.cursor = 0
		case tea.KeyEnd, tea.KeyCtrlE:
			m.cursor = len(m.value)
		case tea.KeyBackspace:
			if m.cursor > 0 {
				_, size := utf8.DecodeLastRuneInString(m.value[:m.cursor])
				m.value = m.value[:m.cursor-size] + m.value[m.cursor:]
				m.cursor -= size
			}
		case tea.KeyDelete:
			if m.cursor < len(m.value) {
				_, size := utf8.DecodeRuneInString(m.value[m.cursor:])
				m.value = m.value[:m.cursor] + m.value[m.cursor+size:]
			}
		case tea.KeyCtrlK:
			m.value = m.value[:m.cursor]
		case tea.KeyCtrlU:
			m.value = m.value[m.cursor:]
			m.cursor = 0
		case tea.KeyRunes:
			if msg.Alt && len(msg.Runes) == 1 {
				switch msg.Runes[0] {
				case 'f':
					m.cursor = nextWordEnd(m.value, m.cursor)
					return m, nil
				case 'b':
					m.cursor = prevWordStart(m.value, m.cursor)
					return m, nil
				}
			}
			for _, r := range msg.Runes {
				m.value = m.value[:m.cursor] + string(r) + m.value[m.cursor:]
				m.cursor += len(string(r))
			}
		case tea.KeySpace:
			m.value = m.value[:m.cursor] + " " + m.value[m.cursor:]
			m.cursor++
		}
	}

	return m, nil
}

// ANSI codes for the cursor: toggle reverse video only, so surrounding
// highlight styles survive.
const (
	cursorOn  = "\x1b[7m"
	cursorOff = "\x1b[27m"
)

// View renders the input with syntax highlighting and wrapping.
func (m Model) View() string {
	return strings.Join(m.wrapText(), "\n")
}

// Height returns the number of display lines for the current content.
func (m Model) Height() int {
	lines := m.wrapText()
	if len(lines) == 0 {
		return 1
	}
	return len(lines)
}

func (m Model) wrapText() []string {
	if m.value == "" {
		if m.focused {
			return []string{cursorOn + " " + cursorOff}
		}
		if m.placeholder != "" {
			return []string{m.placeholderStyle.Render(m.placeholder)}
		}
		return []string{""}
	}

	highlighted := m.cache.Render(m.value)

	if m.focused {
		highlighted = insertCursor(highlighted, m.value, m.cursor)
	}

	if lipgloss.Width(highlighted) <= m.width {
		return []string{highlighted}
	}
	return wrapHighlighted(highlighted, m.width)
}

// wrapHighlighted wraps ANSI text at word boundaries, preserving every
// character. Width is measured in display cells, so wide runes count two
// and never split across lines.
func wrapHighlighted(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		maxWidth = 40
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0
	lastSpaceIdx := -1
	lastSpaceWidth := 0

	i := 0
	for i < len(text) {
		if text[i] == '\x1b' {
			start := i
			for i < len(text) && text[i] != 'm' {
				i++
			}
			if i < len(text) {
				i++
			}
			current.WriteString(text[start:i])
			continue
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		rw := runewidth.RuneWidth(r)

		if currentWidth+rw > maxWidth && currentWidth > 0 {
			if lastSpaceIdx > 0 {
				content := current.String()[:lastSpaceIdx+1]
				lines = append(lines, content)

				remainder := current.String()[lastSpaceIdx+1:]
				current.Reset()
				current.WriteString(remainder)
				currentWidth = currentWidth - lastSpaceWidth - 1
			} else {
				lines = append(lines, current.String())
				current.Reset()
				currentWidth = 0
			}
			lastSpaceIdx = -1
			lastSpaceWidth = 0
		}

		if r == ' ' {
			lastSpaceIdx = current.Len()
			lastSpaceWidth = currentWidth
		}

		current.WriteString(text[i : i+size])
		currentWidth += rw
		i += size
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	if len(lines) == 0 {
		return []string{text}
	}
	return lines
}

// insertCursor maps the byte cursor from the original text into the
// highlighted text, skipping ANSI sequences.
func insertCursor(highlighted, original string, cursor int) string {
	if cursor >= len(original) {
		return highlighted + cursorOn + " " + cursorOff
	}

	origIdx := 0
	highIdx := 0
	for origIdx < cursor && highIdx < len(highlighted) {
		if highlighted[highIdx] == '\x1b' {
			for highIdx < len(highlighted) && highlighted[highIdx] != 'm' {
				highIdx++
			}
			if highIdx < len(highlighted) {
				highIdx++
			}
			continue
		}
		origIdx++
		highIdx++
	}

	for highIdx < len(highlighted) && highlighted[highIdx] == '\x1b' {
		for highIdx < len(highlighted) && highlighted[highIdx] != 'm' {
			highIdx++
		}
		if highIdx < len(highlighted) {
			highIdx++
		}
	}

	if highIdx >= len(highlighted) {
		return highlighted + cursorOn + " " + cursorOff
	}

	_, size := utf8.DecodeRuneInString(highlighted[highIdx:])
	return highlighted[:highIdx] + cursorOn + highlighted[highIdx:highIdx+size] + cursorOff + highlighted[highIdx+size:]
}

// nextWordEnd finds the position after the next word from pos.
func nextWordEnd(s string, pos int) int {
	n := len(s)
	for pos < n && !isWordChar(s[pos]) {
		pos++
	}
	for pos < n && isWordChar(s[pos]) {
		pos++
	}
	return pos
}

// prevWordStart finds the start of the previous word from pos.
func prevWordStart(s string, pos int) int {
	for pos > 0 && !isWordChar(s[pos-1]) {
		pos--
	}
	for pos > 0 && isWordChar(s[pos-1]) {
		pos--
	}
	return pos
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

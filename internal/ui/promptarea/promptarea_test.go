package promptarea

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptweave/internal/syntax"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		var msg tea.KeyMsg
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace}
		} else {
			msg = keyRunes(string(r))
		}
		m, _ = m.Update(msg)
	}
	return m
}

func TestModel_TypeAndValue(t *testing.T) {
	m := New()
	m.Focus()

	m = typeString(t, m, "red hair, {smile}")

	assert.Equal(t, "red hair, {smile}", m.Value())
	assert.Equal(t, len("red hair, {smile}"), m.Cursor())
}

func TestModel_IgnoresInputWhenBlurred(t *testing.T) {
	m := New()
	m.SetValue("keep")
	m.Blur()

	m, _ = m.Update(keyRunes("x"))
	assert.Equal(t, "keep", m.Value())
}

func TestModel_CursorMotion(t *testing.T) {
	m := New()
	m.Focus()
	m.SetValue("one two")
	m.SetCursor(len("one two"))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 6, m.Cursor())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, m.Cursor())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Cursor())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 7, m.Cursor())

	// Word motion jumps over the previous word.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft, Alt: true})
	assert.Equal(t, 4, m.Cursor())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft, Alt: true})
	assert.Equal(t, 0, m.Cursor())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight, Alt: true})
	assert.Equal(t, 3, m.Cursor())
}

func TestModel_Editing(t *testing.T) {
	m := New()
	m.Focus()
	m.SetValue("abcdef")

	m.SetCursor(3)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "abdef", m.Value())
	assert.Equal(t, 2, m.Cursor())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	assert.Equal(t, "abef", m.Value())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	assert.Equal(t, "ab", m.Value())

	m.SetValue("abcd")
	m.SetCursor(2)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Equal(t, "cd", m.Value())
	assert.Equal(t, 0, m.Cursor())
}

func TestModel_MultibyteEditing(t *testing.T) {
	t.Run("backspace removes a whole rune", func(t *testing.T) {
		m := New()
		m.Focus()

		m, _ = m.Update(keyRunes("桜"))
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

		assert.Equal(t, "", m.Value())
		assert.True(t, utf8.ValidString(m.Value()))
	})

	t.Run("cursor motion steps over whole runes", func(t *testing.T) {
		m := New()
		m.Focus()
		m.SetValue("森，空")
		m.SetCursor(len("森，空"))

		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
		m, _ = m.Update(keyRunes("x"))

		assert.Equal(t, "森，x空", m.Value())
		assert.True(t, utf8.ValidString(m.Value()))

		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
		assert.Equal(t, len("森，x空"), m.Cursor())
	})

	t.Run("delete removes a whole rune", func(t *testing.T) {
		m := New()
		m.Focus()
		m.SetValue("桜の森")
		m.SetCursor(len("桜"))

		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})

		assert.Equal(t, "桜森", m.Value())
		assert.True(t, utf8.ValidString(m.Value()))
	})

	t.Run("full-width separator still parses after edits", func(t *testing.T) {
		m := New()
		m.Focus()
		m.SetValue("桜，夜空")
		m.SetCursor(len("桜，夜空"))

		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		assert.Equal(t, "桜，夜", m.Value())
		assert.Empty(t, m.Errors())
	})
}

func TestSetCursor_Clamps(t *testing.T) {
	m := New()
	m.SetValue("abc")

	m.SetCursor(-5)
	assert.Equal(t, 0, m.Cursor())

	m.SetCursor(99)
	assert.Equal(t, 3, m.Cursor())
}

func TestSetValue_ClampsCursor(t *testing.T) {
	m := New()
	m.SetValue("long value here")
	m.SetCursor(len("long value here"))

	m.SetValue("short")
	assert.Equal(t, 5, m.Cursor())
}

func TestInsertTagAt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		pos   int
		tag   string
		want  string
	}{
		{
			name:  "into empty",
			value: "",
			pos:   0,
			tag:   "smile",
			want:  "smile",
		},
		{
			name:  "append to end",
			value: "red hair",
			pos:   8,
			tag:   "smile",
			want:  "red hair, smile",
		},
		{
			name:  "after existing separator",
			value: "red hair, ",
			pos:   10,
			tag:   "smile",
			want:  "red hair, smile",
		},
		{
			name:  "before existing tag",
			value: "red hair",
			pos:   0,
			tag:   "smile",
			want:  "smile, red hair",
		},
		{
			name:  "between tags",
			value: "a, b",
			pos:   2,
			tag:   "mid",
			want:  "a, mid, b",
		},
		{
			name:  "position clamped",
			value: "a",
			pos:   99,
			tag:   "b",
			want:  "a, b",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := New()
			m.SetValue(tc.value)
			m.InsertTagAt(tc.pos, tc.tag)
			assert.Equal(t, tc.want, m.Value())
		})
	}
}

func TestErrors_Advisory(t *testing.T) {
	m := New()
	m.SetValue("{tag, other]")

	errs := m.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, syntax.ErrUnclosedOpening, errs[0].Kind)
	assert.Equal(t, 0, errs[0].Pos)
	assert.Equal(t, syntax.ErrUnmatchedClosing, errs[1].Kind)
	assert.Equal(t, 11, errs[1].Pos)
}

func TestView_PlaceholderAndHeight(t *testing.T) {
	m := New()
	m.SetPlaceholder("type a prompt")

	assert.Contains(t, m.View(), "type a prompt")
	assert.Equal(t, 1, m.Height())
}

func TestView_WrapsLongValues(t *testing.T) {
	m := New()
	m.SetWidth(10)
	m.SetValue("one two three four five six")

	assert.Greater(t, m.Height(), 1)
}

func TestView_WrapsWideRunesByCell(t *testing.T) {
	m := New()
	m.SetWidth(4)
	m.SetValue("日本語の文字")

	lines := strings.Split(m.View(), "\n")
	require.Equal(t, []string{"日本", "語の", "文字"}, lines)

	for _, line := range lines {
		assert.True(t, utf8.ValidString(line))
		assert.LessOrEqual(t, runewidth.StringWidth(line), 4)
	}
	assert.Equal(t, "日本語の文字", strings.Join(lines, ""))
}

func TestView_CursorCoversWholeRune(t *testing.T) {
	m := New()
	m.Focus()
	m.SetValue("桜空")
	m.SetCursor(len("桜"))

	assert.Equal(t, "桜"+cursorOn+"空"+cursorOff, m.View())
}

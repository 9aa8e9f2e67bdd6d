package styles

import "github.com/charmbracelet/lipgloss"

// SyntaxPalette holds the hex colors the highlighter ramps and accents are
// built from. It is rebuilt wholesale by ApplyTheme.
type SyntaxPalette struct {
	Brace          string
	Bracket        string
	WeightUp       string
	WeightDown     string
	WeightBaseline string
	Alias          string
	Choice         string
	Error          string
}

// Current theme colors, initialized from the default preset and replaced by
// ApplyTheme.
var (
	TextPrimaryColor     lipgloss.Color
	TextMutedColor       lipgloss.Color
	TextPlaceholderColor lipgloss.Color

	BorderDefaultColor lipgloss.Color
	BorderFocusColor   lipgloss.Color

	StatusSuccessColor lipgloss.Color
	StatusWarningColor lipgloss.Color
	StatusErrorColor   lipgloss.Color

	SelectionIndicatorColor lipgloss.Color

	Syntax SyntaxPalette
)

// Shared UI styles, rebuilt after every theme change.
var (
	TitleStyle       lipgloss.Style
	MutedStyle       lipgloss.Style
	ErrorStyle       lipgloss.Style
	FocusBorderStyle lipgloss.Style
	PaneBorderStyle  lipgloss.Style
	SelectedStyle    lipgloss.Style
)

func init() {
	applyColors(DefaultPreset.Colors)
	rebuildStyles()
}

func applyColors(colors map[ColorToken]string) {
	get := func(token ColorToken) lipgloss.Color {
		return lipgloss.Color(colors[token])
	}

	TextPrimaryColor = get(TokenTextPrimary)
	TextMutedColor = get(TokenTextMuted)
	TextPlaceholderColor = get(TokenTextPlaceholder)

	BorderDefaultColor = get(TokenBorderDefault)
	BorderFocusColor = get(TokenBorderFocus)

	StatusSuccessColor = get(TokenStatusSuccess)
	StatusWarningColor = get(TokenStatusWarning)
	StatusErrorColor = get(TokenStatusError)

	SelectionIndicatorColor = get(TokenSelectionIndicator)

	Syntax = SyntaxPalette{
		Brace:          colors[TokenPromptBrace],
		Bracket:        colors[TokenPromptBracket],
		WeightUp:       colors[TokenPromptWeightUp],
		WeightDown:     colors[TokenPromptWeightDown],
		WeightBaseline: colors[TokenPromptWeightBaseline],
		Alias:          colors[TokenPromptAlias],
		Choice:         colors[TokenPromptChoice],
		Error:          colors[TokenPromptError],
	}
}

func rebuildStyles() {
	TitleStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor).Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	FocusBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderFocusColor)
	PaneBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderDefaultColor)
	SelectedStyle = lipgloss.NewStyle().Foreground(SelectionIndicatorColor).Bold(true)
}

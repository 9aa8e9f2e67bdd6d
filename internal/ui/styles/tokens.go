// Package styles contains Lip Gloss style definitions and the themeable
// color token system.
package styles

// ColorToken represents a named, themeable color. These are the keys users
// can override in their config.
type ColorToken string

const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	// Borders
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Selection
	TokenSelectionIndicator ColorToken = "selection.indicator"

	// Prompt syntax highlighting
	TokenPromptBrace          ColorToken = "prompt.brace"
	TokenPromptBracket        ColorToken = "prompt.bracket"
	TokenPromptWeightUp       ColorToken = "prompt.weight.up"
	TokenPromptWeightDown     ColorToken = "prompt.weight.down"
	TokenPromptWeightBaseline ColorToken = "prompt.weight.baseline"
	TokenPromptAlias          ColorToken = "prompt.alias"
	TokenPromptChoice         ColorToken = "prompt.choice"
	TokenPromptError          ColorToken = "prompt.error"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextMuted,
		TokenTextPlaceholder,

		TokenBorderDefault,
		TokenBorderFocus,

		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		TokenSelectionIndicator,

		TokenPromptBrace,
		TokenPromptBracket,
		TokenPromptWeightUp,
		TokenPromptWeightDown,
		TokenPromptWeightBaseline,
		TokenPromptAlias,
		TokenPromptChoice,
		TokenPromptError,
	}
}

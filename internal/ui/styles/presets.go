package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":       DefaultPreset,
	"dracula":       DraculaPreset,
	"nord":          NordPreset,
	"high-contrast": HighContrastPreset,
}

// DefaultPreset is the stock promptweave color scheme.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default promptweave theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CCCCCC",
		TokenTextMuted:       "#696969",
		TokenTextPlaceholder: "#777777",

		TokenBorderDefault: "#696969",
		TokenBorderFocus:   "#FFFFFF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		TokenSelectionIndicator: "#FFFFFF",

		TokenPromptBrace:          "#F5B971",
		TokenPromptBracket:        "#74B9FF",
		TokenPromptWeightUp:       "#FF9F43",
		TokenPromptWeightDown:     "#54A0FF",
		TokenPromptWeightBaseline: "#A29BFE",
		TokenPromptAlias:          "#55EFC4",
		TokenPromptChoice:         "#FD79A8",
		TokenPromptError:          "#FF6B6B",
	},
}

// DraculaPreset follows the Dracula palette.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula color scheme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#F8F8F2",
		TokenTextMuted:       "#6272A4",
		TokenTextPlaceholder: "#6272A4",

		TokenBorderDefault: "#6272A4",
		TokenBorderFocus:   "#BD93F9",

		TokenStatusSuccess: "#50FA7B",
		TokenStatusWarning: "#F1FA8C",
		TokenStatusError:   "#FF5555",

		TokenSelectionIndicator: "#F8F8F2",

		TokenPromptBrace:          "#FFB86C",
		TokenPromptBracket:        "#8BE9FD",
		TokenPromptWeightUp:       "#FFB86C",
		TokenPromptWeightDown:     "#8BE9FD",
		TokenPromptWeightBaseline: "#BD93F9",
		TokenPromptAlias:          "#50FA7B",
		TokenPromptChoice:         "#FF79C6",
		TokenPromptError:          "#FF5555",
	},
}

// NordPreset follows the Nord palette.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord color scheme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#ECEFF4",
		TokenTextMuted:       "#4C566A",
		TokenTextPlaceholder: "#4C566A",

		TokenBorderDefault: "#4C566A",
		TokenBorderFocus:   "#88C0D0",

		TokenStatusSuccess: "#A3BE8C",
		TokenStatusWarning: "#EBCB8B",
		TokenStatusError:   "#BF616A",

		TokenSelectionIndicator: "#ECEFF4",

		TokenPromptBrace:          "#D08770",
		TokenPromptBracket:        "#81A1C1",
		TokenPromptWeightUp:       "#D08770",
		TokenPromptWeightDown:     "#81A1C1",
		TokenPromptWeightBaseline: "#B48EAD",
		TokenPromptAlias:          "#A3BE8C",
		TokenPromptChoice:         "#EBCB8B",
		TokenPromptError:          "#BF616A",
	},
}

// HighContrastPreset maximizes legibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast theme for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#FFFFFF",
		TokenTextMuted:       "#AAAAAA",
		TokenTextPlaceholder: "#AAAAAA",

		TokenBorderDefault: "#FFFFFF",
		TokenBorderFocus:   "#FFFF00",

		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		TokenSelectionIndicator: "#FFFF00",

		TokenPromptBrace:          "#FFA500",
		TokenPromptBracket:        "#00BFFF",
		TokenPromptWeightUp:       "#FFA500",
		TokenPromptWeightDown:     "#00BFFF",
		TokenPromptWeightBaseline: "#DA70D6",
		TokenPromptAlias:          "#00FF7F",
		TokenPromptChoice:         "#FF69B4",
		TokenPromptError:          "#FF0000",
	},
}

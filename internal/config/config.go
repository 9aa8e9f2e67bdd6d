// Package config provides configuration types and defaults for promptweave.
package config

import (
	"fmt"

	"promptweave/internal/ui/styles"
)

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowErrorBar bool `mapstructure:"show_error_bar"` // advisory error list under the editor
	ShowWeights  bool `mapstructure:"show_weights"`   // weight column in the tag pane
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "dracula", "nord", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Colors allows overriding individual color tokens, e.g.
	//   colors:
	//     "prompt.alias": "#00FF00"
	Colors map[string]string `mapstructure:"colors"`
}

// Config holds all configuration options for promptweave.
type Config struct {
	Theme ThemeConfig `mapstructure:"theme"`
	UI    UIConfig    `mapstructure:"ui"`
}

// Defaults returns the stock configuration.
func Defaults() Config {
	return Config{
		Theme: ThemeConfig{Preset: "default"},
		UI: UIConfig{
			ShowErrorBar: true,
			ShowWeights:  true,
		},
	}
}

// Validate checks the theme settings against the known presets and tokens.
func (c Config) Validate() error {
	if c.Theme.Preset != "" {
		if _, ok := styles.Presets[c.Theme.Preset]; !ok {
			return fmt.Errorf("unknown theme preset: %s", c.Theme.Preset)
		}
	}
	for key := range c.Theme.Colors {
		if !knownToken(key) {
			return fmt.Errorf("unknown color token: %s", key)
		}
	}
	return nil
}

// ApplyTheme pushes the theme settings into the styles package.
func (c Config) ApplyTheme() error {
	return styles.ApplyTheme(styles.ThemeConfig{
		Preset: c.Theme.Preset,
		Colors: c.Theme.Colors,
	})
}

func knownToken(key string) bool {
	for _, t := range styles.AllTokens() {
		if string(t) == key {
			return true
		}
	}
	return false
}

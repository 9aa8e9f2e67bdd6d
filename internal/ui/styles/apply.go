package styles

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// styleRebuilders holds callbacks to rebuild styles in other packages.
// This avoids import cycles (styles can't import highlight, but highlight
// can register).
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback that will be called after
// ApplyTheme updates colors.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// generation counts theme applications. Caches keyed by (text, theme) fold
// it into their key so a theme change invalidates them wholesale.
var generation uint64

// Generation returns the current theme generation.
func Generation() uint64 {
	return generation
}

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration: default colors, then
// the preset, then individual token overrides, then a rebuild of every
// registered style set.
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()
	generation++

	for _, fn := range styleRebuilders {
		fn()
	}

	return nil
}

func isValidToken(token ColorToken) bool {
	for _, t := range AllTokens() {
		if t == token {
			return true
		}
	}
	return false
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}

package config

import (
	"os"
	"path/filepath"

	"promptweave/internal/log"
)

// defaultConfigTemplate is the commented starter config written on first
// run when no config file exists anywhere.
const defaultConfigTemplate = `# promptweave configuration
#
# theme:
#   preset: default        # default | dracula | nord | high-contrast
#   colors:                # per-token overrides, hex colors
#     "prompt.alias": "#55EFC4"
#     "prompt.error": "#FF6B6B"

theme:
  preset: default

ui:
  show_error_bar: true
  show_weights: true
`

// WriteDefaultConfig writes the commented default config to path, creating
// parent directories as needed. Existing files are left alone.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0644); err != nil {
		return err
	}

	log.Info(log.CatConfig, "wrote default config", "path", path)
	return nil
}

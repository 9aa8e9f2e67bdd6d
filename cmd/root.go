// Package cmd wires the promptweave CLI.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"promptweave/internal/config"
	"promptweave/internal/log"
	"promptweave/internal/ui/editor"
)

var (
	version = "dev"
	cfgFile string
	debug   bool
	theme   string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "promptweave [prompt]",
	Short:   "A terminal editor for image-generation prompts",
	Long: `A terminal editor for weighted image-generation prompts with live
syntax highlighting: emphasis brackets, numeric weights, aliases and
dynamic-choice blocks.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runEditor,
}

// SetVersion overrides the version shown by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/promptweave/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write a debug log to promptweave.log")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "",
		"theme preset (default, dracula, nord, high-contrast)")

	_ = viper.BindPFlag("theme.preset", rootCmd.PersistentFlags().Lookup("theme"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("theme.preset", defaults.Theme.Preset)
	viper.SetDefault("ui.show_error_bar", defaults.UI.ShowErrorBar)
	viper.SetDefault("ui.show_weights", defaults.UI.ShowWeights)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .promptweave/config.yaml (current directory)
		// 2. ~/.config/promptweave/config.yaml (user config)
		if _, err := os.Stat(".promptweave/config.yaml"); err == nil {
			viper.SetConfigFile(".promptweave/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "promptweave"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".promptweave/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// setup validates config, applies the theme and enables logging when asked.
// Every subcommand goes through it.
func setup() (func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.ApplyTheme(); err != nil {
		return nil, fmt.Errorf("applying theme: %w", err)
	}

	cleanup := func() {}
	if debug || os.Getenv("PROMPTWEAVE_DEBUG") != "" {
		c, err := log.Init("promptweave.log")
		if err != nil {
			return nil, fmt.Errorf("opening debug log: %w", err)
		}
		cleanup = c
		log.Info(log.CatConfig, "promptweave starting", "version", version)
	} else {
		log.SetEnabled(false)
	}

	return cleanup, nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	initial := ""
	if len(args) == 1 {
		initial = args[0]
	}

	p := tea.NewProgram(editor.New(cfg, initial), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"promptweave/internal/highlight"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [prompt]",
	Short: "Print a prompt with ANSI syntax highlighting",
	Long: `Print a prompt with ANSI syntax highlighting and an advisory error
list. Reads the prompt from the argument, or from stdin when absent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHighlight,
}

func init() {
	rootCmd.AddCommand(highlightCmd)
}

func runHighlight(cmd *cobra.Command, args []string) error {
	cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	text, err := promptArg(args)
	if err != nil {
		return err
	}

	runs, errs := highlight.Runs(text)
	fmt.Fprintln(cmd.OutOrStdout(), highlight.Render(runs))

	for _, e := range errs {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", e.Message())
	}
	return nil
}

// promptArg returns the prompt text from args or stdin.
func promptArg(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

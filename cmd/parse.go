package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptweave/internal/prompt"
)

var parseCmd = &cobra.Command{
	Use:   "parse [prompt]",
	Short: "Print the structured tag list for a prompt",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	text, err := promptArg(args)
	if err != nil {
		return err
	}

	tags, errs := prompt.Parse(text)
	for i, tag := range tags {
		fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-8s  ×%-8s  %s\n",
			i, tag.Hint, prompt.FormatWeight(tag.Weight), tag.Text)
	}
	for _, e := range errs {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", e.Message())
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptweave/internal/prompt"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [prompt]",
	Short: "Reformat a prompt into its canonical form",
	Long: `Parse a prompt and re-serialize it into canonical form: normalized
separators, canonical emphasis nesting for integral weights and the
explicit numeric form for everything else.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
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
	fmt.Fprintln(cmd.OutOrStdout(), prompt.String(tags))

	for _, e := range errs {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", e.Message())
	}
	return nil
}

package main

import (
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/jlfreif/storybook/internal/book"
	"github.com/jlfreif/storybook/internal/report"
	"github.com/jlfreif/storybook/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the storybook structure for consistency",
	Long: `Loads every character and page document and runs the full battery of
structural checks: reference formatting, existence, solo-spread
constraints, stray pages, node types, scene structure and world
interactions. Exits 0 when all checks pass, 1 otherwise.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := bookConfig(cmd)
		printer := report.New(os.Stdout, termenv.EnvColorProfile())

		if watch, _ := cmd.Flags().GetBool("watch"); watch {
			os.Exit(runValidateWatch(cmd, cfg, printer))
		}
		if !runValidate(cfg, printer) {
			os.Exit(1)
		}
	},
}

func init() {
	validateCmd.Flags().BoolP("watch", "w", false, "Re-run validation whenever a document changes")
	rootCmd.AddCommand(validateCmd)

	// Running the binary with no arguments validates the working directory.
	rootCmd.Run = validateCmd.Run
}

// runValidate performs one full validation pass and reports it. A loader
// failure halts before any rule runs, matching the fatal error contract.
func runValidate(cfg book.Config, printer *report.Printer) bool {
	b, err := book.Load(cfg)
	if err != nil {
		printer.Error(err.Error())
		return false
	}

	rep := validator.Run(b)
	printer.Print(rep)
	return rep.Passed()
}

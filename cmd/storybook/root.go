package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jlfreif/storybook/internal/book"
	"github.com/jlfreif/storybook/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "storybook",
	Short: "Storybook is an authoring toolkit for a multi-character picture book",
	Long: `Storybook works on a directory of YAML documents: characters/, pages/
and world.yaml. It validates the structural consistency of the story graph,
renders a character's story for review, and assembles illustration prompts.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Directory containing the storybook project")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// bookConfig resolves the project layout from the persistent flags.
func bookConfig(cmd *cobra.Command) book.Config {
	dir, _ := cmd.Flags().GetString("dir")
	return book.Config{
		CharactersDir: filepath.Join(dir, "characters"),
		PagesDir:      filepath.Join(dir, "pages"),
		WorldFile:     filepath.Join(dir, "world.yaml"),
		Logger:        createLogger(cmd),
	}
}

// createLogger configures the application logger. Quiet by default: stdout
// belongs to the report and rendered output.
func createLogger(cmd *cobra.Command) *slog.Logger {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

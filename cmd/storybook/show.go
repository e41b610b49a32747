package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jlfreif/storybook/internal/book"
	"github.com/jlfreif/storybook/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <character-code>",
	Short: "Render a character's full story in the terminal",
	Long: `Renders the complete story for a character given their two-letter code,
including node metadata and a narrative analysis of every page shared
with another character. Output is styled Markdown on a terminal and
plain Markdown when piped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code := strings.ToLower(args[0])
		if len(code) != 2 {
			return fmt.Errorf("character code must be exactly 2 characters, got '%s'", args[0])
		}

		b, err := book.Load(bookConfig(cmd))
		if err != nil {
			return err
		}

		markdown, err := render.Story(b, code)
		if err != nil {
			return err
		}

		fmt.Print(renderMarkdown(markdown))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// renderMarkdown styles Markdown for the terminal via glamour, wrapped to
// the terminal width. When stdout is not a terminal, or styling fails, the
// raw Markdown passes through untouched.
func renderMarkdown(markdown string) string {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return markdown
	}

	width := 100
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		width = w
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}

	styled, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return styled
}

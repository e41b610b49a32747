package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jlfreif/storybook/internal/book"
	"github.com/jlfreif/storybook/internal/prompt"
)

var promptCmd = &cobra.Command{
	Use:   "prompt <page-file>",
	Short: "Assemble the illustration prompt(s) for a page",
	Long: `Builds the complete illustration prompt for a page: storybook framing,
typography instructions, reference image listing, world visual style,
character visual descriptions and the scene content. The prompt is
printed for use with an external generation pipeline; no API is called.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrompt,
}

func init() {
	promptCmd.Flags().String("scene", "both", "Which image to prompt for: left, right, both or spread")
	promptCmd.Flags().String("backend", "prompt", "Target backend, used to pre-flight required API keys")
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	// Best effort; the project may not carry a .env at all.
	_ = godotenv.Load()

	sceneFlag, _ := cmd.Flags().GetString("scene")
	mode := prompt.Mode(sceneFlag)
	if !mode.Valid() {
		return fmt.Errorf("invalid scene mode '%s'. Use: left, right, both, or spread", sceneFlag)
	}

	backendFlag, _ := cmd.Flags().GetString("backend")
	backend, ok := prompt.Backends[backendFlag]
	if !ok {
		return fmt.Errorf("unknown backend '%s'. Available: %s", backendFlag, strings.Join(prompt.BackendNames(), ", "))
	}
	if backend.Deprecated {
		return fmt.Errorf("backend '%s' is deprecated. Use 'openai' or 'prompt' instead", backendFlag)
	}
	if missing := prompt.MissingKeys(backend); len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "Note: missing environment variables for %s:\n", backend.Name)
		for _, key := range missing {
			fmt.Fprintf(os.Stderr, "  - %s\n", key)
		}
	}

	cfg := bookConfig(cmd)
	b, err := book.Load(cfg)
	if err != nil {
		return err
	}

	// Accept both "pages/cu-01.yaml" and "cu-01.yaml".
	pageFile := filepath.Base(args[0])
	page, err := b.Page(pageFile)
	if err != nil {
		return fmt.Errorf("failed to load page %s: %w", pageFile, err)
	}
	if !page.HasScenes() && !page.Has("visual") {
		return fmt.Errorf("no 'visual' or 'scenes' field found in %s", pageFile)
	}

	world, err := b.World()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	dir, _ := cmd.Flags().GetString("dir")
	refs := prompt.References(b, pageFile, filepath.Join(dir, "ref-images"))
	descs := prompt.CharacterDescriptions(b, pageFile)
	style := prompt.VisualStyle(world)

	for _, target := range prompt.Targets(page, pageFile, mode) {
		text := prompt.Build(prompt.Input{
			Visual:       target.Visual,
			Text:         target.Text,
			VisualStyle:  style,
			References:   refs,
			Characters:   descs,
			SinglePage:   target.SinglePage,
			PagePosition: target.Position,
		})
		printPrompt(target.ID, text)
	}
	return nil
}

func printPrompt(id, text string) {
	bar := strings.Repeat("=", 80)
	fmt.Printf("\n%s\n", bar)
	fmt.Println("GENERATED PROMPT")
	fmt.Printf("%s\n\n", bar)
	fmt.Println(text)
	fmt.Printf("\n%s\n", bar)
	fmt.Printf("Prompt length: %d characters\n", len(text))
	fmt.Printf("Page ID: %s\n", id)
	fmt.Printf("%s\n\n", bar)
}

// Package prompt assembles illustration prompts for storybook pages. It
// gathers everything a generation backend needs (framing, typography
// instructions, reference images, world style, character descriptions,
// scene content) into one string; actually calling a backend is someone
// else's job.
package prompt

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jlfreif/storybook/internal/book"
)

// Reference is one reference image passed alongside the prompt.
type Reference struct {
	Path        string
	Description string
}

// CharacterDescription carries one character's visual description lines.
type CharacterDescription struct {
	Name  string
	Lines []string
}

// Input is everything Build needs to assemble a prompt.
type Input struct {
	Visual       string
	Text         string
	VisualStyle  string
	References   []Reference
	Characters   []CharacterDescription
	SinglePage   bool
	PagePosition string
}

// Build assembles the complete prompt.
func Build(in Input) string {
	parts := []string{
		"Create a beautiful illustration for a children's storybook page.",
	}

	if in.SinglePage {
		parts = append(parts,
			fmt.Sprintf("Output a single image for the %s page of a two-page spread.", in.PagePosition),
			"This is ONE page, not a spread - do not create multiple images or panels.")
	} else {
		parts = append(parts,
			"Output a single wide image for a two-page spread.",
			"Do not create multiple images or panels, just one cohesive scene.")
	}

	if in.Text != "" {
		parts = append(parts,
			"",
			"IMPORTANT: You MUST include story text as readable typography in the image.",
			"The text should be clearly legible, using 16pt font size.")
		if !in.SinglePage {
			parts = append(parts,
				"CRITICAL: Do NOT place any text across the 50% vertical centerline of the image.",
				"The center is where the two-page spread folds together - keep text away from this area.",
				"Place text either on the left side or right side, but never spanning across the middle.")
		}
		parts = append(parts,
			"Integrate the text into the illustration using a font style that matches the storybook aesthetic.",
			"The exact text to include will be provided at the end of this prompt.")
	}

	if len(in.References) > 0 {
		parts = append(parts, "\n--- REFERENCE IMAGES ---")
		for i, ref := range in.References {
			parts = append(parts, fmt.Sprintf("Image %d is %s.", i+1, ref.Description))
		}
	}

	if in.VisualStyle != "" {
		parts = append(parts, "\n--- VISUAL STYLE ---", in.VisualStyle)
	}

	if len(in.Characters) > 0 {
		parts = append(parts, "\n--- CHARACTER VISUAL DESCRIPTIONS ---")
		for _, char := range in.Characters {
			parts = append(parts, fmt.Sprintf("\n%s:", char.Name))
			for _, line := range char.Lines {
				parts = append(parts, "- "+line)
			}
		}
	}

	parts = append(parts, "\n--- SCENE TO ILLUSTRATE ---", in.Visual)

	if in.Text != "" {
		parts = append(parts, "\n--- TEXT TO INCLUDE IN IMAGE ---", strings.TrimSpace(in.Text))
	}

	return strings.Join(parts, "\n")
}

// VisualStyle formats the world's visual style list as bullet lines.
// Empty when there is no world or no style.
func VisualStyle(world *book.World) string {
	if world == nil || len(world.VisualStyle) == 0 {
		return ""
	}
	lines := make([]string, len(world.VisualStyle))
	for i, item := range world.VisualStyle {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

// pageCharacters returns the loaded characters whose codes appear in the
// page filename, in filename order.
func pageCharacters(b *book.Book, pageFile string) []*book.Character {
	var chars []*book.Character
	for _, code := range book.CharacterCodes(pageFile) {
		if char := b.Character(code); char != nil {
			chars = append(chars, char)
		}
	}
	return chars
}

// CharacterDescriptions collects the visual descriptions of every
// character appearing on the page.
func CharacterDescriptions(b *book.Book, pageFile string) []CharacterDescription {
	var descs []CharacterDescription
	for _, char := range pageCharacters(b, pageFile) {
		if len(char.Attributes.VisualDescription) == 0 {
			continue
		}
		descs = append(descs, CharacterDescription{
			Name:  char.Name(),
			Lines: char.Attributes.VisualDescription,
		})
	}
	return descs
}

// References lists the reference images for a page: style references
// always, character references when the character appears in the filename.
func References(b *book.Book, pageFile, refDir string) []Reference {
	var refs []Reference

	style, _ := filepath.Glob(filepath.Join(refDir, "style-*.jpg"))
	sort.Strings(style)
	for _, path := range style {
		refs = append(refs, Reference{Path: path, Description: "a style reference image"})
	}

	for _, char := range pageCharacters(b, pageFile) {
		images, _ := filepath.Glob(filepath.Join(refDir, char.ID+"-*.jpg"))
		sort.Strings(images)
		for _, path := range images {
			refs = append(refs, Reference{
				Path:        path,
				Description: fmt.Sprintf("a reference image for %s", char.Name()),
			})
		}
	}

	return refs
}

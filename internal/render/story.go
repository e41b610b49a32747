// Package render builds Markdown views of the storybook for terminal
// review. The output is plain Markdown; callers decide how to display it.
package render

import (
	"fmt"
	"strings"

	"github.com/jlfreif/storybook/internal/book"
)

// Story builds the full Markdown document for one character's story,
// including a narrative-node analysis of every page shared with another
// character.
func Story(b *book.Book, code string) (string, error) {
	char := b.Character(code)
	if char == nil {
		return "", fmt.Errorf("no character found for code '%s'", code)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s's Story\n\n", char.Name())
	fmt.Fprintf(&sb, "**Character Code:** %s\n", strings.ToUpper(code))
	fmt.Fprintf(&sb, "**Total Spreads:** %d\n", len(char.Story))
	sb.WriteString("**Layout:** 2 pages per spread, 1 image per page, 3-4 sentences per scene\n\n")
	sb.WriteString("## Story\n\n")

	// Joint pages collected along the way feed the analysis section.
	type overlap struct {
		page   string
		others []string
	}
	var overlaps []overlap

	for _, page := range char.Story {
		others := writePage(&sb, b, page, code, 3)
		if len(others) > 0 {
			overlaps = append(overlaps, overlap{page: page, others: others})
		}
		sb.WriteString("---\n\n")
	}

	if len(overlaps) == 0 {
		return sb.String(), nil
	}

	sb.WriteString("## Narrative Node Analysis\n\n")
	fmt.Fprintf(&sb, "This story connects with other characters at %d point(s):\n\n", len(overlaps))

	for _, ov := range overlaps {
		for _, other := range ov.others {
			otherChar := b.Character(other)
			if otherChar == nil {
				continue
			}

			nodeType := book.InferNodeType(ov.page)
			if page, err := b.Page(ov.page); err == nil && page.NodeType != "" {
				nodeType = book.NodeType(page.NodeType)
			}

			fmt.Fprintf(&sb, "### %s with %s (%s)\n\n", nodeType.DisplayName(), otherChar.Name(), strings.ToUpper(other))

			preceding, succeeding := surroundingPages(otherChar, ov.page)
			if preceding != "" {
				fmt.Fprintf(&sb, "#### Before (from %s's story)\n\n", otherChar.Name())
				writePage(&sb, b, preceding, other, 5)
			}

			sb.WriteString("#### Shared/Connected Page\n\n")
			writePage(&sb, b, ov.page, code, 5)

			if succeeding != "" {
				fmt.Fprintf(&sb, "#### After (from %s's story)\n\n", otherChar.Name())
				writePage(&sb, b, succeeding, other, 5)
			}
		}
	}

	return sb.String(), nil
}

// writePage appends one page at the given heading level and returns the
// other character codes embedded in its filename.
func writePage(sb *strings.Builder, b *book.Book, filename, code string, level int) []string {
	page, err := b.Page(filename)
	if err != nil {
		fmt.Fprintf(sb, "_Page file not found: %s_\n\n", filename)
		return nil
	}

	others := book.OtherCharacters(filename, code)
	jointNote := ""
	if len(others) > 0 {
		upper := make([]string, len(others))
		for i, c := range others {
			upper[i] = strings.ToUpper(c)
		}
		jointNote = fmt.Sprintf(" (joint with %s)", strings.Join(upper, ", "))
	}

	nodeType := book.NodeType(page.NodeType)
	if page.NodeType == "" {
		nodeType = book.InferNodeType(filename)
	}

	pageHeading := strings.Repeat("#", level)
	contentHeading := strings.Repeat("#", level+1)

	spread := "?"
	if page.Has("spread") {
		spread = fmt.Sprintf("%d", page.Spread)
	}
	beat := page.Beat
	if beat == "" {
		beat = "Unknown beat"
	}
	fmt.Fprintf(sb, "%s Spread %s: %s%s\n", pageHeading, spread, filename, jointNote)
	fmt.Fprintf(sb, "**Node Type:** %s | **Beat:** %s\n\n", nodeType.DisplayName(), beat)

	description := page.Description
	if description == "" {
		description = "No description available"
	}
	fmt.Fprintf(sb, "%s Description\n\n%s\n\n", contentHeading, description)

	if page.HasScenes() {
		for i, scene := range page.Scenes {
			position := scene.Page
			if position == "" {
				if i == 0 {
					position = "left"
				} else {
					position = "right"
				}
			}

			title := capitalize(position) + " Page"
			if scene.PageNumber > 0 {
				title = fmt.Sprintf("Page %d (%s)", scene.PageNumber, capitalize(position))
			}
			if scene.Focus != "" {
				title += " - " + scene.Focus
			}
			fmt.Fprintf(sb, "%s %s\n\n", contentHeading, title)

			visual := scene.Visual
			if visual == "" {
				visual = "No visual description"
			}
			fmt.Fprintf(sb, "**Visual:**\n%s\n\n", strings.TrimSpace(visual))

			text := scene.Text
			if text == "" {
				text = "No text"
			}
			fmt.Fprintf(sb, "**Text:**\n%s\n\n", strings.TrimSpace(text))
		}
	} else {
		visual := page.Visual
		if visual == "" {
			visual = "No visual description available"
		}
		fmt.Fprintf(sb, "%s Visual\n\n%s\n\n", contentHeading, strings.TrimSpace(visual))

		text := page.Text
		if text == "" {
			text = "No text available"
		}
		fmt.Fprintf(sb, "%s Text\n\n%s\n\n", contentHeading, strings.TrimSpace(text))
	}

	if nodeType == book.NodeMeeting {
		if page.Location != "" {
			fmt.Fprintf(sb, "**Meeting Location:** %s\n\n", page.Location)
		}
		if page.SharedAction != "" {
			fmt.Fprintf(sb, "**Shared Action:** %s\n\n", page.SharedAction)
		}
	}

	return others
}

// surroundingPages finds the pages before and after filename in another
// character's story. Empty strings mean the page is absent or at an edge.
func surroundingPages(char *book.Character, filename string) (preceding, succeeding string) {
	for i, page := range char.Story {
		if page != filename {
			continue
		}
		if i > 0 {
			preceding = char.Story[i-1]
		}
		if i < len(char.Story)-1 {
			succeeding = char.Story[i+1]
		}
		return preceding, succeeding
	}
	return "", ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package prompt

import (
	"fmt"

	"github.com/jlfreif/storybook/internal/book"
)

// Mode selects which image(s) of a spread to build prompts for.
type Mode string

const (
	ModeLeft   Mode = "left"
	ModeRight  Mode = "right"
	ModeBoth   Mode = "both"
	ModeSpread Mode = "spread"
)

// Valid reports whether m is a recognized scene mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeLeft, ModeRight, ModeBoth, ModeSpread:
		return true
	}
	return false
}

// Target is one prompt to build: either a single page of a spread or, in
// legacy/spread mode, the whole spread at once.
type Target struct {
	ID         string
	Visual     string
	Text       string
	SinglePage bool
	Position   string
}

// Targets resolves the scene mode against the page layout. Scene-based
// pages yield one target per selected scene; legacy pages and spread mode
// yield a single whole-spread target. Left/right selection falls back to
// scene order when side tags are missing.
func Targets(page *book.Page, pageFile string, mode Mode) []Target {
	id := book.PageID(pageFile)

	if !page.HasScenes() || mode == ModeSpread {
		return []Target{{
			ID:     id,
			Visual: page.Visual,
			Text:   page.Text,
		}}
	}

	var picked []int
	switch mode {
	case ModeBoth:
		for i := range page.Scenes {
			picked = append(picked, i)
		}
	case ModeLeft:
		for i, scene := range page.Scenes {
			if scene.Page == "left" {
				picked = append(picked, i)
			}
		}
		if len(picked) == 0 && len(page.Scenes) > 0 {
			picked = []int{0}
		}
	case ModeRight:
		for i, scene := range page.Scenes {
			if scene.Page == "right" {
				picked = append(picked, i)
			}
		}
		if len(picked) == 0 && len(page.Scenes) > 1 {
			picked = []int{1}
		}
	}

	var targets []Target
	for _, i := range picked {
		scene := page.Scenes[i]
		position := scene.Page
		if position == "" {
			if i == 0 {
				position = "left"
			} else {
				position = "right"
			}
		}
		targets = append(targets, Target{
			ID:         fmt.Sprintf("%s-%s", id, position),
			Visual:     scene.Visual,
			Text:       scene.Text,
			SinglePage: true,
			Position:   position,
		})
	}
	return targets
}

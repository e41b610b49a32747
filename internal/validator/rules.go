package validator

import (
	"strings"

	"github.com/jlfreif/storybook/internal/book"
)

func checkCharacterCount(b *book.Book, r *Result) {
	if b.Len() == 0 {
		r.Errorf("No characters found")
		return
	}
	r.Successf("Found %d character(s)", b.Len())
}

func checkReferenceFormat(b *book.Book, r *Result) {
	for _, code := range b.Codes() {
		char := b.Character(code)
		for _, page := range char.Story {
			if strings.HasPrefix(page, "pages/") {
				r.Errorf("%s (%s): Page '%s' includes 'pages/' prefix - should be just filename", char.Name(), code, page)
			}
			if !strings.HasSuffix(page, ".yaml") {
				r.Errorf("%s (%s): Page '%s' missing '.yaml' extension", char.Name(), code, page)
			}
			if strings.ContainsAny(page, `/\`) {
				r.Errorf("%s (%s): Page '%s' contains path separator - should be just filename", char.Name(), code, page)
			}
		}
	}
	if r.Passed {
		r.Successf("All page references are properly formatted")
	}
}

func checkReferencesExist(b *book.Book, r *Result) {
	if _, err := b.PageFiles(); err != nil {
		r.Errorf("Pages directory not found")
		return
	}
	for _, code := range b.Codes() {
		char := b.Character(code)
		for _, page := range char.Story {
			if !b.PageExists(page) {
				r.Errorf("%s (%s): Referenced page '%s' does not exist", char.Name(), code, page)
			}
		}
	}
	if r.Passed {
		r.Successf("All referenced pages exist")
	}
}

func checkRequiredSoloSpreads(b *book.Book, r *Result) {
	for _, code := range b.Codes() {
		char := b.Character(code)
		for _, pos := range book.RequiredSoloSpreads {
			if pos-1 >= len(char.Story) {
				continue
			}
			page := char.Story[pos-1]
			codes := book.CharacterCodes(page)
			if len(codes) > 1 {
				r.Errorf("%s (%s): Spread %d ('%s') is a joint page with %v - spreads 1, 11, 12 must be character-specific", char.Name(), code, pos, page, codes)
			}
		}
	}
	if r.Passed {
		r.Successf("Spreads 1, 11, and 12 are all character-specific (no overlaps)")
	}
}

func checkStrayPages(b *book.Book, r *Result) {
	files, err := b.PageFiles()
	if err != nil {
		r.Errorf("Pages directory not found")
		return
	}

	referenced := make(map[string]bool)
	for _, ref := range b.ReferencedPages() {
		referenced[ref] = true
	}

	var stray []string
	for _, file := range files {
		if !referenced[file] {
			stray = append(stray, file)
		}
	}

	if len(stray) > 0 {
		r.Errorf("Found %d stray page(s) not referenced by any character:", len(stray))
		for _, page := range stray {
			r.Infof("  - %s", page)
		}
		return
	}
	r.Successf("No stray pages found - all pages are referenced")
}

// checkStoryShape is a soft check: wrong page counts warn, odd numbering is
// surfaced, but nothing here fails the run.
func checkStoryShape(b *book.Book, r *Result) {
	warned := false
	for _, code := range b.Codes() {
		char := b.Character(code)

		if len(char.Story) != book.ExpectedSpreads {
			r.Warnf("%s (%s): Has %d pages, expected %d", char.Name(), code, len(char.Story), book.ExpectedSpreads)
			warned = true
		}

		var numbers []int
		sequential := true
		for i, page := range char.Story {
			n, ok := book.SpreadNumber(page)
			if !ok {
				r.Warnf("%s (%s): Page '%s' has no numeric spread suffix", char.Name(), code, page)
				warned = true
				sequential = false
				continue
			}
			numbers = append(numbers, n)
			if n != i+1 {
				sequential = false
			}
		}
		if len(numbers) > 0 && (!sequential || len(numbers) != book.ExpectedSpreads) {
			r.Infof("%s (%s): Page numbering is %v", char.Name(), code, numbers)
		}
	}
	if !warned {
		r.Successf("All characters have %d pages", book.ExpectedSpreads)
	}
}

func checkPageValidity(b *book.Book, r *Result) {
	for _, page := range b.ReferencedPages() {
		if !b.PageExists(page) {
			continue
		}
		if _, err := b.Page(page); err != nil {
			r.Errorf("Page '%s' is not valid YAML: %v", page, err)
		}
	}
	if r.Passed {
		r.Successf("All page YAML files are valid")
	}
}

func checkNodeTypes(b *book.Book, r *Result) {
	explicit := 0
	inferred := 0

	for _, file := range b.ReferencedPages() {
		if !b.PageExists(file) {
			continue
		}
		page, err := b.Page(file)
		if err != nil {
			r.Errorf("Failed to check node_type for '%s': %v", file, err)
			continue
		}

		if page.NodeType == "" {
			// Node type is inferred from the filename. Informational only.
			inferred++
			continue
		}

		explicit++
		nodeType := book.NodeType(page.NodeType)
		if !nodeType.Valid() {
			r.Errorf("Page '%s' has invalid node_type '%s'. Valid types: %v", file, page.NodeType, book.NodeTypes)
		}

		codes := book.CharacterCodes(file)
		if nodeType == book.NodeMeeting && len(codes) < 2 {
			r.Errorf("Page '%s' is marked as meeting node but has only one character code", file)
		}
		if nodeType == book.NodeSolo && len(codes) > 1 {
			r.Warnf("Page '%s' is marked as solo but has multiple character codes", file)
		}
	}

	if inferred > 0 {
		r.Notef("%d page(s) don't have explicit node_type (using legacy format)", inferred)
	}
	if r.Passed {
		r.Successf("All page node types are valid (%d explicit, %d inferred)", explicit, inferred)
	}
}

func checkSceneStructure(b *book.Book, r *Result) {
	withScenes := 0
	withLegacy := 0

	for _, file := range b.ReferencedPages() {
		if !b.PageExists(file) {
			continue
		}
		page, err := b.Page(file)
		if err != nil {
			r.Errorf("Failed to check scene structure for '%s': %v", file, err)
			continue
		}

		switch {
		case page.HasScenes():
			withScenes++
			if len(page.Scenes) != 2 {
				r.Warnf("Page '%s' has %d scenes, expected 2 (left and right)", file, len(page.Scenes))
			}
			for i, scene := range page.Scenes {
				if !scene.Has("visual") {
					r.Errorf("Page '%s' scene %d missing 'visual' field", file, i+1)
				}
				if !scene.Has("text") {
					r.Errorf("Page '%s' scene %d missing 'text' field", file, i+1)
				}
				if !scene.Has("page") {
					r.Warnf("Page '%s' scene %d missing 'page' field (left/right)", file, i+1)
				}
			}
		case page.Has("visual") && page.Has("text"):
			withLegacy++
		default:
			r.Errorf("Page '%s' has neither scenes structure nor legacy visual/text fields", file)
		}
	}

	r.Notef("Page formats: %d new (scenes), %d legacy (visual/text)", withScenes, withLegacy)
	if r.Passed {
		r.Successf("All pages have valid content structure")
	}
}

func checkWorldInteractions(b *book.Book, r *Result) {
	world, err := b.World()
	if err != nil {
		r.Errorf("%v", err)
		return
	}
	if world == nil {
		r.Warnf("%s not found - skipping interaction validation", b.WorldFile())
		return
	}
	if len(world.Interactions) == 0 {
		r.Notef("No interactions defined in %s", b.WorldFile())
		return
	}

	soloOnly := make(map[int]bool)
	for _, pos := range book.RequiredSoloSpreads {
		soloOnly[pos] = true
	}

	for _, ia := range world.Interactions {
		for _, code := range ia.Characters {
			if code != "" && b.Character(code) == nil {
				r.Errorf("Interaction references unknown character '%s'", code)
			}
		}
		for _, node := range ia.Nodes {
			if soloOnly[node.Spread] {
				r.Errorf("Node at spread %d violates constraint - spreads 1, 11, 12 must be character-specific", node.Spread)
			}
			if node.Type != "" && !book.NodeType(node.Type).Valid() {
				r.Errorf("Node has invalid type '%s'", node.Type)
			}
			if node.PageFile != "" && !b.PageExists(node.PageFile) {
				r.Errorf("Node references non-existent page '%s'", node.PageFile)
			}
		}
	}

	if r.Passed {
		r.Successf("World interactions are valid")
	}
}

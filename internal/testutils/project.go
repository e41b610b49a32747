package testutils

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jlfreif/storybook/internal/book"
)

// Project is a throwaway storybook tree under a temp directory.
type Project struct {
	Dir string
}

// NewProject creates an empty project layout (characters/ and pages/) in a
// temp directory that is cleaned up with the test.
func NewProject(t *testing.T) *Project {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "characters"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pages"), 0o755))
	return &Project{Dir: dir}
}

// Config returns a loader config pointing at the project.
func (p *Project) Config() book.Config {
	return book.Config{
		CharactersDir: filepath.Join(p.Dir, "characters"),
		PagesDir:      filepath.Join(p.Dir, "pages"),
		WorldFile:     filepath.Join(p.Dir, "world.yaml"),
	}
}

// WriteCharacter writes one character document.
func (p *Project) WriteCharacter(t *testing.T, filename, content string) {
	t.Helper()
	p.write(t, filepath.Join("characters", filename), content)
}

// WritePage writes one page document.
func (p *Project) WritePage(t *testing.T, filename, content string) {
	t.Helper()
	p.write(t, filepath.Join("pages", filename), content)
}

// WriteWorld writes the world document.
func (p *Project) WriteWorld(t *testing.T, content string) {
	t.Helper()
	p.write(t, "world.yaml", content)
}

func (p *Project) write(t *testing.T, rel, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(p.Dir, rel), []byte(content), 0o644))
}

// ScenePage returns a well-formed scene-based page document.
func ScenePage(nodeType string, spread int) string {
	return `node_type: ` + nodeType + `
spread: ` + strconv.Itoa(spread) + `
beat: Beat
description: A page of the story.
scenes:
  - page: left
    visual: Something happens on the left.
    text: Three or four sentences of story.
  - page: right
    visual: Something happens on the right.
    text: The story continues.
`
}

// LegacyPage returns a well-formed legacy page document.
func LegacyPage(spread int) string {
	return `spread: ` + strconv.Itoa(spread) + `
visual: A single spread-wide scene.
text: The whole spread's text.
`
}

// Load loads the project, failing the test on error.
func (p *Project) Load(t *testing.T) *book.Book {
	t.Helper()
	b, err := book.Load(p.Config())
	require.NoError(t, err)
	return b
}


package book

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config locates the storybook documents. Zero-value fields fall back to
// the conventional layout relative to the working directory.
type Config struct {
	CharactersDir string
	PagesDir      string
	WorldFile     string
	Logger        *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.CharactersDir == "" {
		c.CharactersDir = "characters"
	}
	if c.PagesDir == "" {
		c.PagesDir = "pages"
	}
	if c.WorldFile == "" {
		c.WorldFile = "world.yaml"
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)}))
	}
	return c
}

// Book is an immutable snapshot of the loaded document set. Characters are
// loaded eagerly; pages and the world document are loaded on first access
// and memoized, including their load errors.
type Book struct {
	cfg        Config
	characters map[string]*Character

	pageCache map[string]*pageResult

	worldLoaded bool
	world       *World
	worldErr    error
}

type pageResult struct {
	page *Page
	err  error
}

// Load reads every character document under the characters directory.
// It fails when the directory is missing, no usable character files exist,
// or any character file is not valid YAML. A file without an id is skipped
// with a logged warning; every other oddity (missing name, odd code) is
// the rule battery's business, not the loader's.
func Load(cfg Config) (*Book, error) {
	cfg = cfg.withDefaults()

	entries, err := os.ReadDir(cfg.CharactersDir)
	if err != nil {
		return nil, fmt.Errorf("characters directory not found: %w", err)
	}

	check := validator.New(validator.WithRequiredStructEnabled())

	chars := make(map[string]*Character)
	usable := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isDocument(name) {
			continue
		}
		usable++

		data, err := os.ReadFile(filepath.Join(cfg.CharactersDir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to load character file %s: %w", name, err)
		}

		var char Character
		if err := yaml.Unmarshal(data, &char); err != nil {
			return nil, fmt.Errorf("failed to load character file %s: %w", name, err)
		}
		char.File = name

		if err := check.Struct(&char); err != nil {
			cfg.Logger.Warn("skipping character file", "file", name, "err", err)
			continue
		}

		chars[char.ID] = &char
	}

	if usable == 0 {
		return nil, fmt.Errorf("no character files found in %s", cfg.CharactersDir)
	}

	return &Book{
		cfg:        cfg,
		characters: chars,
		pageCache:  make(map[string]*pageResult),
	}, nil
}

// isDocument reports whether a filename is a loadable YAML document.
// Template and example files are skipped.
func isDocument(name string) bool {
	if !strings.HasSuffix(name, ".yaml") {
		return false
	}
	return !strings.Contains(name, "template") && !strings.Contains(name, "example")
}

// Codes returns the loaded character codes in sorted order.
func (b *Book) Codes() []string {
	codes := make([]string, 0, len(b.characters))
	for code := range b.characters {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Character returns the character with the given code, or nil.
func (b *Book) Character(code string) *Character {
	return b.characters[code]
}

// Len returns the number of loaded characters.
func (b *Book) Len() int {
	return len(b.characters)
}

// PagesDir returns the configured pages directory.
func (b *Book) PagesDir() string {
	return b.cfg.PagesDir
}

// PageExists reports whether the named page file is present on disk.
func (b *Book) PageExists(filename string) bool {
	info, err := os.Stat(filepath.Join(b.cfg.PagesDir, filename))
	return err == nil && !info.IsDir()
}

// PageFiles lists the page documents present in the pages directory,
// sorted by name.
func (b *Book) PageFiles() ([]string, error) {
	entries, err := os.ReadDir(b.cfg.PagesDir)
	if err != nil {
		return nil, fmt.Errorf("pages directory not found: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !isDocument(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

// ReferencedPages returns the union of every character's story references,
// sorted and deduplicated.
func (b *Book) ReferencedPages() []string {
	seen := make(map[string]bool)
	for _, char := range b.characters {
		for _, ref := range char.Story {
			seen[ref] = true
		}
	}
	refs := make([]string, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}

// Page loads the named page document. Results (including errors) are
// memoized, so repeated access during one validation run touches the disk
// once per file.
func (b *Book) Page(filename string) (*Page, error) {
	if cached, ok := b.pageCache[filename]; ok {
		return cached.page, cached.err
	}

	page, err := loadPage(filepath.Join(b.cfg.PagesDir, filename))
	if page != nil {
		page.File = filename
	}
	b.pageCache[filename] = &pageResult{page: page, err: err}
	return page, err
}

func loadPage(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("not valid YAML: %w", err)
	}

	var page Page
	if err := decode(raw, &page); err != nil {
		return nil, fmt.Errorf("unexpected document shape: %w", err)
	}
	page.raw = raw

	// Re-attach the raw maps so scene-level presence checks work.
	if scenes, ok := raw["scenes"].([]any); ok {
		for i, entry := range scenes {
			m, ok := entry.(map[string]any)
			if !ok || i >= len(page.Scenes) {
				continue
			}
			page.Scenes[i].raw = m
		}
	}

	return &page, nil
}

// World loads the optional world document. A missing file is not an error;
// both the document and the error are nil. Malformed interaction entries
// are skipped individually rather than failing the whole document.
func (b *Book) World() (*World, error) {
	if b.worldLoaded {
		return b.world, b.worldErr
	}
	b.worldLoaded = true

	data, err := os.ReadFile(b.cfg.WorldFile)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		b.worldErr = fmt.Errorf("failed to load %s: %w", b.cfg.WorldFile, err)
		return nil, b.worldErr
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		b.worldErr = fmt.Errorf("failed to load %s: %w", b.cfg.WorldFile, err)
		return nil, b.worldErr
	}

	var world World
	if err := decode(raw, &world); err != nil {
		b.worldErr = fmt.Errorf("failed to load %s: %w", b.cfg.WorldFile, err)
		return nil, b.worldErr
	}

	if list, ok := raw["interactions"].([]any); ok {
		for _, entry := range list {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			var ia Interaction
			if err := decode(m, &ia); err != nil {
				b.cfg.Logger.Warn("skipping malformed interaction", "err", err)
				continue
			}
			world.Interactions = append(world.Interactions, ia)
		}
	}

	b.world = &world
	return b.world, nil
}

// WorldFile returns the configured world document path.
func (b *Book) WorldFile() string {
	return b.cfg.WorldFile
}

// decode maps a generic YAML document onto a typed record. Weak typing
// tolerates scalar mismatches (numeric text fields, string spreads) the
// same way the authoring documents have historically been written.
func decode(raw any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

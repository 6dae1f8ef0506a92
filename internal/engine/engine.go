// Package engine is the file-backed data engine behind the cookbook: recipes,
// ingredients, pantry stock and knowledge-base articles stored in one data
// directory.
//
// Layout of a data directory:
//
//	recipes/<slug>.yaml      one recipe per file
//	recipes/img/             recipe images (referenced, never read)
//	ingredients/<slug>.yaml  one ingredient per file
//	kb/<slug>.md             markdown articles, titled by their first heading
//	pantry.yaml              stock list
//
// A Manager is not safe for concurrent use. It is built on a loader goroutine
// and afterwards only touched from the UI event loop.
package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/atomicstack/cookbook-tui/internal/format/markdown"
	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")
	ErrInvalid  = errors.New("invalid")
)

const (
	recipesDir     = "recipes"
	recipeImgDir   = "recipes/img"
	ingredientsDir = "ingredients"
	kbDir          = "kb"
	pantryFile     = "pantry.yaml"
	pantryVersion  = 1
	dateLayout     = "2006-01-02"
)

// Manager holds the whole data set in memory and writes every mutation
// through to disk.
type Manager struct {
	dir         string
	recipes     map[string]*Recipe
	ingredients map[string]*Ingredient
	pantry      map[string]*PantryItem
	kb          map[string]*KBEntry
	now         func() time.Time
}

// Open loads every entity below dir. Missing subdirectories are treated as
// empty; a missing or non-directory dir is an error.
func Open(dir string) (*Manager, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("data directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data directory %s: not a directory", dir)
	}
	m := &Manager{
		dir:         dir,
		recipes:     map[string]*Recipe{},
		ingredients: map[string]*Ingredient{},
		pantry:      map[string]*PantryItem{},
		kb:          map[string]*KBEntry{},
		now:         time.Now,
	}
	if err := m.loadRecipes(); err != nil {
		return nil, err
	}
	if err := m.loadIngredients(); err != nil {
		return nil, err
	}
	if err := m.loadPantry(); err != nil {
		return nil, err
	}
	if err := m.loadKB(); err != nil {
		return nil, err
	}
	return m, nil
}

// Dir returns the directory the manager was opened on.
func (m *Manager) Dir() string {
	return m.dir
}

// EnsureLayout creates the subdirectories and a minimal pantry file a data
// directory needs. Existing content is left untouched.
func EnsureLayout(dir string) error {
	for _, sub := range []string{ingredientsDir, recipesDir, recipeImgDir, kbDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", sub, err)
		}
	}
	path := filepath.Join(dir, pantryFile)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte("version: 1\nitems: []\n"), 0o644); err != nil {
			return fmt.Errorf("create %s: %w", pantryFile, err)
		}
	}
	return nil
}

// Slugify derives a file-safe identifier from a display name.
func Slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		case r == '/' || r == '\\' || r == '.' || r == ':':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (m *Manager) loadRecipes() error {
	return eachFile(filepath.Join(m.dir, recipesDir), ".yaml", func(path string, data []byte) error {
		var r Recipe
		if err := yaml.Unmarshal(data, &r); err != nil {
			return fmt.Errorf("parse recipe %s: %w", path, err)
		}
		if strings.TrimSpace(r.Title) == "" {
			return fmt.Errorf("recipe %s: missing title: %w", path, ErrInvalid)
		}
		m.recipes[r.Title] = &r
		return nil
	})
}

func (m *Manager) loadIngredients() error {
	return eachFile(filepath.Join(m.dir, ingredientsDir), ".yaml", func(path string, data []byte) error {
		var ing Ingredient
		if err := yaml.Unmarshal(data, &ing); err != nil {
			return fmt.Errorf("parse ingredient %s: %w", path, err)
		}
		if strings.TrimSpace(ing.Name) == "" {
			return fmt.Errorf("ingredient %s: missing name: %w", path, ErrInvalid)
		}
		if ing.Slug == "" {
			ing.Slug = Slugify(ing.Name)
		}
		m.ingredients[ing.Name] = &ing
		return nil
	})
}

type pantryDocument struct {
	Version int          `yaml:"version"`
	Items   []PantryItem `yaml:"items"`
}

func (m *Manager) loadPantry() error {
	data, err := os.ReadFile(filepath.Join(m.dir, pantryFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read pantry: %w", err)
	}
	var doc pantryDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse pantry: %w", err)
	}
	for i := range doc.Items {
		item := doc.Items[i]
		m.pantry[item.Ingredient] = &item
	}
	return nil
}

func (m *Manager) loadKB() error {
	return eachFile(filepath.Join(m.dir, kbDir), ".md", func(path string, data []byte) error {
		slug := strings.TrimSuffix(filepath.Base(path), ".md")
		title := markdown.Title(data)
		if title == "" {
			title = slug
		}
		m.kb[slug] = &KBEntry{Slug: slug, Title: title, Content: string(data)}
		return nil
	})
}

func eachFile(dir, ext string, fn func(path string, data []byte) error) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := fn(path, data); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func removeFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

func (m *Manager) savePantry() error {
	doc := pantryDocument{Version: pantryVersion, Items: make([]PantryItem, 0, len(m.pantry))}
	for _, item := range m.pantry {
		doc.Items = append(doc.Items, *item)
	}
	sort.Slice(doc.Items, func(i, j int) bool { return doc.Items[i].Ingredient < doc.Items[j].Ingredient })
	return writeYAML(filepath.Join(m.dir, pantryFile), doc)
}

// Package testutil builds data directories and engine doubles for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/cookbook-tui/internal/engine"
)

var fixtureFiles = map[string]string{
	"recipes/lasagna.yaml": `title: Lasagna
ingredients:
  - ingredient: Tomato
    quantity: 4
  - ingredient: Beef
    quantity: 500
    quantity_type: g
prep_time: 30
servings: 4
tags: [italian]
instructions: |
  Brown the beef.
  Layer and bake.
`,
	"recipes/pancakes.yaml": `title: Pancakes
ingredients:
  - ingredient: Flour
tags: [breakfast]
`,
	"ingredients/tomato.yaml": "name: Tomato\nslug: tomato\ncategory: vegetable\nkb: nightshades\n",
	"ingredients/beef.yaml":   "name: Beef\nslug: beef\ncategory: meat\n",
	"ingredients/flour.yaml":  "name: Flour\nslug: flour\ncategory: baking\n",
	"pantry.yaml": `version: 1
items:
  - ingredient: Tomato
    quantity: 6
    last_updated: "2024-01-01"
  - ingredient: Flour
    quantity: 1
    quantity_type: kg
    last_updated: "2024-01-01"
`,
	"kb/nightshades.md": "# Nightshades\n\nTomatoes belong to the nightshade family.\n",
}

// DataDir writes a small data directory and returns its path. It holds two
// recipes (Lasagna, Pancakes), three ingredients (Tomato, Beef, Flour) of
// which Tomato and Flour are stocked, and one article (nightshades).
func DataDir(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	for rel, body := range fixtureFiles {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return dir
}

// OpenEngine opens DataDir with the real engine.
func OpenEngine(t testing.TB) *engine.Manager {
	t.Helper()
	m, err := engine.Open(DataDir(t))
	if err != nil {
		t.Fatalf("open fixture engine: %v", err)
	}
	return m
}

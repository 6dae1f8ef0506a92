// Package state holds the single application state owned by the event
// loop. Nothing here is safe for concurrent use; every access happens on
// the Bubble Tea update goroutine.
package state

import (
	"github.com/atomicstack/cookbook-tui/internal/backend"
	"github.com/atomicstack/cookbook-tui/internal/engine"
	"github.com/atomicstack/cookbook-tui/internal/settings"
)

// Engine is the data contract consulted by transitions and rendering.
type Engine = engine.Store

// App is the application state.
type App struct {
	Tab      Tab
	Engine   Engine
	Settings *settings.Settings
	DataDir  string

	RecipeSearch   string
	SelectedRecipe *string

	IngredientSearch   string
	SelectedIngredient *string
	CategoryFilter     []string
	InStockOnly        bool

	KBSearch   string
	SelectedKB *string

	Dirty    Dirty
	Requests Requests

	// Pending is set exactly while a load is outstanding.
	Pending *backend.Pending
	Toast   string
}

// New returns the startup state: no engine, Recipes tab, every list marked
// so the first reconcile renders them.
func New(s *settings.Settings, dataDir string) *App {
	if s == nil {
		d := settings.Default()
		s = &d
	}
	app := &App{
		Tab:      TabRecipes,
		Settings: s,
		DataDir:  dataDir,
	}
	app.Dirty.Mark(ListRegions)
	return app
}

// ClearSelections drops every per-tab selection.
func (a *App) ClearSelections() {
	a.SelectedRecipe = nil
	a.SelectedIngredient = nil
	a.SelectedKB = nil
}

// Loading reports whether a load is outstanding.
func (a *App) Loading() bool {
	return a.Pending != nil
}

// StringPtr returns a pointer to a copy of s.
func StringPtr(s string) *string {
	return &s
}

// SameID reports whether two optional identifiers are equal.
func SameID(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

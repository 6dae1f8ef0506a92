package engine

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// AllRecipes returns every recipe sorted by title.
func (m *Manager) AllRecipes() []Recipe {
	out := make([]Recipe, 0, len(m.recipes))
	for _, r := range m.recipes {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// SearchRecipes matches query against each recipe's title, tags and
// ingredient names. An empty query returns every recipe.
func (m *Manager) SearchRecipes(query string) []Recipe {
	all := m.AllRecipes()
	labels := make([]string, len(all))
	for i, r := range all {
		parts := append([]string{r.Title}, r.Tags...)
		for _, ing := range r.Ingredients {
			parts = append(parts, ing.Ingredient)
		}
		labels[i] = strings.Join(parts, " ")
	}
	idx := matchIndices(query, labels)
	out := make([]Recipe, 0, len(idx))
	for _, i := range idx {
		out = append(out, all[i])
	}
	return out
}

// Recipe looks up a recipe by title.
func (m *Manager) Recipe(title string) (Recipe, bool) {
	r, ok := m.recipes[title]
	if !ok {
		return Recipe{}, false
	}
	return *r, true
}

// CreateRecipe stores a new recipe. Titles are unique.
func (m *Manager) CreateRecipe(r Recipe) error {
	if err := validateRecipe(r); err != nil {
		return err
	}
	if _, ok := m.recipes[r.Title]; ok {
		return fmt.Errorf("recipe %q: %w", r.Title, ErrExists)
	}
	for title := range m.recipes {
		if Slugify(title) == Slugify(r.Title) {
			return fmt.Errorf("recipe %q clashes with %q: %w", r.Title, title, ErrExists)
		}
	}
	if err := writeYAML(m.recipePath(r.Title), r); err != nil {
		return err
	}
	m.recipes[r.Title] = &r
	return nil
}

// UpdateRecipe replaces the recipe stored under original. A changed title
// renames the backing file.
func (m *Manager) UpdateRecipe(original string, r Recipe) error {
	if err := validateRecipe(r); err != nil {
		return err
	}
	if _, ok := m.recipes[original]; !ok {
		return fmt.Errorf("recipe %q: %w", original, ErrNotFound)
	}
	if r.Title != original {
		if _, ok := m.recipes[r.Title]; ok {
			return fmt.Errorf("recipe %q: %w", r.Title, ErrExists)
		}
	}
	if err := writeYAML(m.recipePath(r.Title), r); err != nil {
		return err
	}
	if r.Title != original {
		if m.recipePath(original) != m.recipePath(r.Title) {
			if err := removeFile(m.recipePath(original)); err != nil {
				return err
			}
		}
		delete(m.recipes, original)
	}
	m.recipes[r.Title] = &r
	return nil
}

// DeleteRecipe removes a recipe and its file.
func (m *Manager) DeleteRecipe(title string) error {
	if _, ok := m.recipes[title]; !ok {
		return fmt.Errorf("recipe %q: %w", title, ErrNotFound)
	}
	if err := removeFile(m.recipePath(title)); err != nil {
		return err
	}
	delete(m.recipes, title)
	return nil
}

// CanCook reports whether every ingredient of r is in the pantry. A recipe
// without ingredients can always be cooked.
func (m *Manager) CanCook(r Recipe) bool {
	for _, ing := range r.Ingredients {
		if !m.InPantry(ing.Ingredient) {
			return false
		}
	}
	return true
}

// RecipesWithIngredient lists recipes that use the named ingredient.
func (m *Manager) RecipesWithIngredient(name string) []Recipe {
	var out []Recipe
	for _, r := range m.AllRecipes() {
		for _, ing := range r.Ingredients {
			if ing.Ingredient == name {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func (m *Manager) recipePath(title string) string {
	return filepath.Join(m.dir, recipesDir, Slugify(title)+".yaml")
}

func validateRecipe(r Recipe) error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("recipe title is empty: %w", ErrInvalid)
	}
	if Slugify(r.Title) == "" {
		return fmt.Errorf("recipe title %q has no usable characters: %w", r.Title, ErrInvalid)
	}
	return nil
}

package engine

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// AllIngredients returns every ingredient sorted by name.
func (m *Manager) AllIngredients() []Ingredient {
	out := make([]Ingredient, 0, len(m.ingredients))
	for _, ing := range m.ingredients {
		out = append(out, *ing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Ingredient looks up an ingredient by name.
func (m *Manager) Ingredient(name string) (Ingredient, bool) {
	ing, ok := m.ingredients[name]
	if !ok {
		return Ingredient{}, false
	}
	return *ing, true
}

// FilterIngredients narrows the ingredient list by search text, category
// set and stock. An empty category set matches every category.
func (m *Manager) FilterIngredients(search string, categories []string, inStockOnly bool) []Ingredient {
	var pool []Ingredient
	for _, ing := range m.AllIngredients() {
		if len(categories) > 0 && !containsFold(categories, ing.Category) {
			continue
		}
		if inStockOnly && !m.InPantry(ing.Name) {
			continue
		}
		pool = append(pool, ing)
	}
	labels := make([]string, len(pool))
	for i, ing := range pool {
		labels[i] = strings.Join(append([]string{ing.Name, ing.Category}, ing.Tags...), " ")
	}
	idx := matchIndices(search, labels)
	out := make([]Ingredient, 0, len(idx))
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}

// IngredientCategories returns the distinct non-empty categories, sorted.
func (m *Manager) IngredientCategories() []string {
	seen := map[string]struct{}{}
	for _, ing := range m.ingredients {
		if ing.Category != "" {
			seen[ing.Category] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// CreateIngredient stores a new ingredient. Names are unique.
func (m *Manager) CreateIngredient(ing Ingredient) error {
	if err := validateIngredient(&ing); err != nil {
		return err
	}
	if _, ok := m.ingredients[ing.Name]; ok {
		return fmt.Errorf("ingredient %q: %w", ing.Name, ErrExists)
	}
	if err := writeYAML(m.ingredientPath(ing.Slug), ing); err != nil {
		return err
	}
	m.ingredients[ing.Name] = &ing
	return nil
}

// UpdateIngredientWithPantry replaces the ingredient stored under original
// and reconciles its pantry entry in one step: inPantry upserts the entry
// with qty and unit, otherwise any existing entry is removed. A rename
// carries over to recipe ingredient lines and the pantry.
func (m *Manager) UpdateIngredientWithPantry(original string, ing Ingredient, inPantry bool, qty *float64, unit string) error {
	if err := validateIngredient(&ing); err != nil {
		return err
	}
	prev, ok := m.ingredients[original]
	if !ok {
		return fmt.Errorf("ingredient %q: %w", original, ErrNotFound)
	}
	renamed := ing.Name != original
	if renamed {
		if _, ok := m.ingredients[ing.Name]; ok {
			return fmt.Errorf("ingredient %q: %w", ing.Name, ErrExists)
		}
	}
	if err := writeYAML(m.ingredientPath(ing.Slug), ing); err != nil {
		return err
	}
	if prev.Slug != ing.Slug {
		if err := removeFile(m.ingredientPath(prev.Slug)); err != nil {
			return err
		}
	}
	delete(m.ingredients, original)
	m.ingredients[ing.Name] = &ing

	_, stocked := m.pantry[original]
	if renamed {
		if err := m.renameRecipeIngredient(original, ing.Name); err != nil {
			return err
		}
		delete(m.pantry, original)
	}
	if inPantry {
		return m.UpdatePantryItem(ing.Name, qty, unit)
	}
	if stocked {
		delete(m.pantry, ing.Name)
		return m.savePantry()
	}
	return nil
}

// DeleteIngredient removes an ingredient, its file and its pantry entry.
// Recipes referencing it keep their lines.
func (m *Manager) DeleteIngredient(name string) error {
	ing, ok := m.ingredients[name]
	if !ok {
		return fmt.Errorf("ingredient %q: %w", name, ErrNotFound)
	}
	if err := removeFile(m.ingredientPath(ing.Slug)); err != nil {
		return err
	}
	delete(m.ingredients, name)
	if _, ok := m.pantry[name]; ok {
		delete(m.pantry, name)
		return m.savePantry()
	}
	return nil
}

// IngredientsWithKB lists ingredients linking to the given article.
func (m *Manager) IngredientsWithKB(slug string) []Ingredient {
	var out []Ingredient
	for _, ing := range m.AllIngredients() {
		if ing.KB == slug {
			out = append(out, ing)
		}
	}
	return out
}

// PantryItem returns the stock entry for an ingredient.
func (m *Manager) PantryItem(name string) (PantryItem, bool) {
	item, ok := m.pantry[name]
	if !ok {
		return PantryItem{}, false
	}
	return *item, true
}

// InPantry reports whether an ingredient is in stock.
func (m *Manager) InPantry(name string) bool {
	_, ok := m.pantry[name]
	return ok
}

// UpdatePantryItem inserts or replaces the stock entry for name, stamping
// today's date.
func (m *Manager) UpdatePantryItem(name string, qty *float64, unit string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("pantry ingredient is empty: %w", ErrInvalid)
	}
	m.pantry[name] = &PantryItem{
		Ingredient:   name,
		Quantity:     qty,
		QuantityType: unit,
		LastUpdated:  m.now().Format(dateLayout),
	}
	return m.savePantry()
}

func (m *Manager) renameRecipeIngredient(from, to string) error {
	for _, r := range m.recipes {
		changed := false
		for i := range r.Ingredients {
			if r.Ingredients[i].Ingredient == from {
				r.Ingredients[i].Ingredient = to
				changed = true
			}
		}
		if changed {
			if err := writeYAML(m.recipePath(r.Title), r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Manager) ingredientPath(slug string) string {
	return filepath.Join(m.dir, ingredientsDir, slug+".yaml")
}

func validateIngredient(ing *Ingredient) error {
	ing.Name = strings.TrimSpace(ing.Name)
	if ing.Name == "" {
		return fmt.Errorf("ingredient name is empty: %w", ErrInvalid)
	}
	ing.Slug = Slugify(ing.Name)
	if ing.Slug == "" {
		return fmt.Errorf("ingredient name %q has no usable characters: %w", ing.Name, ErrInvalid)
	}
	return nil
}

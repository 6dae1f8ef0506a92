package testutil

import "github.com/atomicstack/cookbook-tui/internal/engine"

// FailingStore wraps a store and rejects every mutation with Err while
// leaving reads untouched.
type FailingStore struct {
	engine.Store
	Err error
}

func (f FailingStore) CreateRecipe(engine.Recipe) error         { return f.Err }
func (f FailingStore) UpdateRecipe(string, engine.Recipe) error { return f.Err }
func (f FailingStore) DeleteRecipe(string) error                { return f.Err }
func (f FailingStore) CreateIngredient(engine.Ingredient) error { return f.Err }
func (f FailingStore) DeleteIngredient(string) error            { return f.Err }
func (f FailingStore) UpdatePantryItem(string, *float64, string) error {
	return f.Err
}
func (f FailingStore) UpdateIngredientWithPantry(string, engine.Ingredient, bool, *float64, string) error {
	return f.Err
}

package engine

// Store is the read/write contract the application consumes. *Manager
// satisfies it; tests substitute in-memory fakes.
type Store interface {
	AllRecipes() []Recipe
	SearchRecipes(query string) []Recipe
	Recipe(title string) (Recipe, bool)
	CreateRecipe(r Recipe) error
	UpdateRecipe(original string, r Recipe) error
	DeleteRecipe(title string) error
	CanCook(r Recipe) bool
	RecipesWithIngredient(name string) []Recipe

	AllIngredients() []Ingredient
	Ingredient(name string) (Ingredient, bool)
	FilterIngredients(search string, categories []string, inStockOnly bool) []Ingredient
	IngredientCategories() []string
	CreateIngredient(ing Ingredient) error
	UpdateIngredientWithPantry(original string, ing Ingredient, inPantry bool, qty *float64, unit string) error
	DeleteIngredient(name string) error
	IngredientsWithKB(slug string) []Ingredient

	PantryItem(name string) (PantryItem, bool)
	InPantry(name string) bool
	UpdatePantryItem(name string, qty *float64, unit string) error

	KBEntries() []KBEntry
	SearchKB(query string) []KBEntry
	KBEntry(slug string) (KBEntry, bool)
}

var _ Store = (*Manager)(nil)

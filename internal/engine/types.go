package engine

// RecipeIngredient is one line of a recipe's ingredient list.
type RecipeIngredient struct {
	Ingredient   string   `yaml:"ingredient"`
	Quantity     *float64 `yaml:"quantity,omitempty"`
	QuantityType string   `yaml:"quantity_type,omitempty"`
}

// Recipe is keyed by Title.
type Recipe struct {
	Title        string             `yaml:"title"`
	Ingredients  []RecipeIngredient `yaml:"ingredients"`
	PrepTime     *int               `yaml:"prep_time,omitempty"`
	Downtime     *int               `yaml:"downtime,omitempty"`
	Servings     *int               `yaml:"servings,omitempty"`
	Tags         []string           `yaml:"tags,omitempty"`
	Image        string             `yaml:"image,omitempty"`
	Instructions string             `yaml:"instructions,omitempty"`
}

// Ingredient is keyed by Name.
type Ingredient struct {
	Name     string   `yaml:"name"`
	Slug     string   `yaml:"slug"`
	Category string   `yaml:"category"`
	KB       string   `yaml:"kb,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
}

// PantryItem records that an ingredient is in stock.
type PantryItem struct {
	Ingredient   string   `yaml:"ingredient"`
	Quantity     *float64 `yaml:"quantity,omitempty"`
	QuantityType string   `yaml:"quantity_type,omitempty"`
	LastUpdated  string   `yaml:"last_updated"`
}

// KBEntry is a knowledge-base article keyed by Slug.
type KBEntry struct {
	Slug    string
	Title   string
	Content string
}

package form

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/cookbook-tui/internal/engine"
	"github.com/atomicstack/cookbook-tui/internal/event"
	"github.com/atomicstack/cookbook-tui/internal/logging/events"
)

// IngredientForm edits one ingredient and its pantry entry.
type IngredientForm struct {
	base
	original *string

	name     *inputField
	category *inputField
	tags     *inputField
	kb       *inputField
	inPantry *toggleField
	qty      *inputField
	unit     *inputField
}

// NewIngredient builds a blank form when existing is nil, otherwise one
// filled from existing and its pantry item. categories feed the category
// field's completion.
func NewIngredient(existing *engine.Ingredient, pantry *engine.PantryItem, categories []string) *IngredientForm {
	var ing engine.Ingredient
	f := &IngredientForm{}
	f.title = "Add Ingredient"
	if existing != nil {
		ing = *existing
		name := ing.Name
		f.original = &name
		f.title = "Edit Ingredient"
	}
	f.help = "tab: next field · space: toggle · enter/ctrl+s: save · esc: cancel"
	f.name = newInput("Name", "ingredient name", ing.Name)
	categoryPlaceholder := ""
	if len(categories) > 0 {
		categoryPlaceholder = "e.g. " + categories[0]
	}
	f.category = newInput("Category", categoryPlaceholder, ing.Category)
	f.category.input.ShowSuggestions = len(categories) > 0
	f.category.input.SetSuggestions(categories)
	f.tags = newInput("Tags (comma-separated)", "", strings.Join(ing.Tags, ", "))
	f.kb = newInput("Knowledge base article", "slug", ing.KB)
	f.inPantry = &toggleField{label: "In pantry", on: pantry != nil}
	var qty, unit string
	if pantry != nil {
		qty = formatFloat(pantry.Quantity)
		unit = pantry.QuantityType
	}
	f.qty = newInput("Quantity", "", qty)
	f.unit = newInput("Unit (e.g. kg, g, ml, pcs)", "", unit)
	f.fields = []field{f.name, f.category, f.tags, f.kb, f.inPantry, f.qty, f.unit}
	return f
}

// Init focuses the first field.
func (f *IngredientForm) Init() tea.Cmd {
	return f.base.init()
}

// Update mirrors RecipeForm.Update.
func (f *IngredientForm) Update(msg tea.Msg) (cmd tea.Cmd, done bool, cancel bool) {
	cmd, act := f.route(msg)
	switch act {
	case actionCancel:
		return nil, false, true
	case actionSubmit:
		ev, err := f.Event()
		if err != "" {
			f.err = err
			return nil, false, false
		}
		f.err = ""
		events.Ingredient.Submit(idString(f.original), ev.Ingredient.Name)
		return event.Enqueue(ev), true, false
	}
	return cmd, false, false
}

// Event builds the save event from the current field values.
func (f *IngredientForm) Event() (event.SaveIngredient, string) {
	name := f.name.Value()
	if name == "" {
		return event.SaveIngredient{}, "Name required"
	}
	ing := engine.Ingredient{
		Name:     name,
		Slug:     engine.Slugify(name),
		Category: f.category.Value(),
		KB:       f.kb.Value(),
		Tags:     splitTags(f.tags.Value()),
	}
	return event.SaveIngredient{
		Original:   f.original,
		Ingredient: ing,
		InPantry:   f.inPantry.on,
		Qty:        parseFloat(f.qty.Value()),
		Unit:       f.unit.Value(),
	}, ""
}

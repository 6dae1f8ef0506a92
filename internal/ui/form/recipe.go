// Package form holds the modal dialogs for adding and editing recipes and
// ingredients. A dialog is built from an engine snapshot when the request
// is drained and answers with the matching save event when submitted.
package form

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/cookbook-tui/internal/engine"
	"github.com/atomicstack/cookbook-tui/internal/event"
	"github.com/atomicstack/cookbook-tui/internal/logging/events"
	"github.com/atomicstack/cookbook-tui/internal/theme"
)

// RecipeForm edits one recipe.
type RecipeForm struct {
	base
	original *string
	image    string
	known    []string

	name         *inputField
	prepTime     *inputField
	downtime     *inputField
	servings     *inputField
	tags         *inputField
	ingredients  *areaField
	instructions *areaField
}

// NewRecipe builds a blank form when existing is nil, otherwise one filled
// from existing. known lists ingredient names offered as a hint.
func NewRecipe(existing *engine.Recipe, known []string) *RecipeForm {
	var r engine.Recipe
	f := &RecipeForm{known: append([]string(nil), known...)}
	f.title = "Add Recipe"
	if existing != nil {
		r = *existing
		title := r.Title
		f.original = &title
		f.image = r.Image
		f.title = "Edit Recipe"
	}
	f.help = "tab: next field · enter/ctrl+s: save · esc: cancel"
	f.name = newInput("Title", "Recipe title", r.Title)
	f.prepTime = newInput("Prep time (minutes)", "", formatCount(r.PrepTime))
	f.downtime = newInput("Oven / resting time (minutes)", "", formatCount(r.Downtime))
	f.servings = newInput("Servings", "", formatCount(r.Servings))
	f.tags = newInput("Tags (comma-separated)", "", strings.Join(r.Tags, ", "))
	f.ingredients = newArea("Ingredients (one per line: name quantity unit)", "potato 2 kg", formatIngredientLines(r.Ingredients), 5)
	f.instructions = newArea("Instructions", "", r.Instructions, 6)
	f.fields = []field{f.name, f.prepTime, f.downtime, f.servings, f.tags, f.ingredients, f.instructions}
	return f
}

// Init focuses the first field.
func (f *RecipeForm) Init() tea.Cmd {
	return f.base.init()
}

// Update returns done once a valid recipe was submitted, in which case cmd
// enqueues the save event, and cancel when the dialog was dismissed.
func (f *RecipeForm) Update(msg tea.Msg) (cmd tea.Cmd, done bool, cancel bool) {
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
		events.Recipe.Submit(idString(f.original), ev.Recipe.Title)
		return event.Enqueue(ev), true, false
	}
	return cmd, false, false
}

// Event builds the save event from the current field values. A non-empty
// string reports why the form cannot be submitted.
func (f *RecipeForm) Event() (event.SaveRecipe, string) {
	title := f.name.Value()
	if title == "" {
		return event.SaveRecipe{}, "Title required"
	}
	r := engine.Recipe{
		Title:        title,
		Ingredients:  ParseIngredientLines(f.ingredients.Value()),
		PrepTime:     parseCount(f.prepTime.Value()),
		Downtime:     parseCount(f.downtime.Value()),
		Servings:     parseCount(f.servings.Value()),
		Tags:         splitTags(f.tags.Value()),
		Image:        f.image,
		Instructions: f.instructions.Value(),
	}
	return event.SaveRecipe{Original: f.original, Recipe: r}, ""
}

// View renders the dialog with a hint of known ingredient names.
func (f *RecipeForm) View() string {
	body := f.base.View()
	if len(f.known) == 0 {
		return body
	}
	hint := "Known ingredients: " + strings.Join(f.known, ", ")
	if f.width > 0 {
		hint = truncate.StringWithTail(hint, uint(f.width), "…")
	}
	return body + "\n" + theme.Current().Caption.Render(hint)
}

// ParseIngredientLines reads one ingredient per non-blank line in the form
// "name [quantity [unit]]". Names may contain spaces: the quantity is the
// last numeric token, optionally followed by a single unit token. A
// quantity that does not parse is left out.
func ParseIngredientLines(raw string) []engine.RecipeIngredient {
	var out []engine.RecipeIngredient
	for _, line := range strings.Split(raw, "\n") {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		ing := engine.RecipeIngredient{Ingredient: strings.Join(parts, " ")}
		n := len(parts)
		switch {
		case n >= 3 && parseFloat(parts[n-2]) != nil:
			ing.Ingredient = strings.Join(parts[:n-2], " ")
			ing.Quantity = parseFloat(parts[n-2])
			ing.QuantityType = parts[n-1]
		case n >= 2 && parseFloat(parts[n-1]) != nil:
			ing.Ingredient = strings.Join(parts[:n-1], " ")
			ing.Quantity = parseFloat(parts[n-1])
		}
		out = append(out, ing)
	}
	return out
}

func formatIngredientLines(items []engine.RecipeIngredient) string {
	lines := make([]string, 0, len(items))
	for _, ing := range items {
		switch {
		case ing.Quantity != nil && ing.QuantityType != "":
			lines = append(lines, fmt.Sprintf("%s %s %s", ing.Ingredient, formatFloat(ing.Quantity), ing.QuantityType))
		case ing.Quantity != nil:
			lines = append(lines, fmt.Sprintf("%s %s", ing.Ingredient, formatFloat(ing.Quantity)))
		default:
			lines = append(lines, ing.Ingredient)
		}
	}
	return strings.Join(lines, "\n")
}

func idString(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}

package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/cookbook-tui/internal/engine"
	"github.com/atomicstack/cookbook-tui/internal/event"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	saveKey  = tea.KeyMsg{Type: tea.KeyCtrlS}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func TestRecipeFormRequiresTitle(t *testing.T) {
	f := NewRecipe(nil, nil)
	f.Init()
	cmd, done, cancel := f.Update(enterKey)
	if done || cancel || cmd != nil {
		t.Fatalf("empty title must keep the form open")
	}
	if f.Error() != "Title required" {
		t.Fatalf("unexpected error %q", f.Error())
	}
}

func TestRecipeFormSubmitsCreate(t *testing.T) {
	f := NewRecipe(nil, []string{"Tomato"})
	f.Init()
	f.name.input.SetValue("  Soup ")
	f.servings.input.SetValue("four")
	f.prepTime.input.SetValue("15")
	f.tags.input.SetValue("winter, , quick")
	f.ingredients.area.SetValue("Tomato 3\nolive oil 2 tbsp\nsalt")
	cmd, done, _ := f.Update(enterKey)
	if !done || cmd == nil {
		t.Fatalf("expected submission")
	}
	ev, ok := cmd().(event.SaveRecipe)
	if !ok {
		t.Fatalf("expected SaveRecipe message")
	}
	if ev.Original != nil || ev.Recipe.Title != "Soup" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev.Recipe.Servings != nil {
		t.Fatalf("unparsable servings should be omitted")
	}
	if ev.Recipe.PrepTime == nil || *ev.Recipe.PrepTime != 15 {
		t.Fatalf("prep time not parsed")
	}
	if len(ev.Recipe.Tags) != 2 || ev.Recipe.Tags[1] != "quick" {
		t.Fatalf("unexpected tags %v", ev.Recipe.Tags)
	}
	if len(ev.Recipe.Ingredients) != 3 || ev.Recipe.Ingredients[1].Ingredient != "olive oil" {
		t.Fatalf("unexpected ingredients %+v", ev.Recipe.Ingredients)
	}
}

func TestRecipeFormEditKeepsOriginal(t *testing.T) {
	qty := 4.0
	existing := engine.Recipe{
		Title:       "Lasagna",
		Image:       "img/lasagna.jpg",
		Ingredients: []engine.RecipeIngredient{{Ingredient: "Tomato", Quantity: &qty}},
	}
	f := NewRecipe(&existing, nil)
	f.Init()
	if f.Title() != "Edit Recipe" {
		t.Fatalf("unexpected title %q", f.Title())
	}
	if got := f.ingredients.Value(); got != "Tomato 4" {
		t.Fatalf("unexpected ingredient text %q", got)
	}
	f.name.input.SetValue("Lasagne")
	cmd, done, _ := f.Update(saveKey)
	if !done {
		t.Fatalf("expected submission")
	}
	ev := cmd().(event.SaveRecipe)
	if ev.Original == nil || *ev.Original != "Lasagna" || ev.Recipe.Title != "Lasagne" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev.Recipe.Image != "img/lasagna.jpg" {
		t.Fatalf("image reference lost")
	}
}

func TestEnterInTextAreaDoesNotSubmit(t *testing.T) {
	f := NewRecipe(nil, nil)
	f.Init()
	f.name.input.SetValue("Soup")
	for i := 0; i < 5; i++ {
		f.Update(tabKey)
	}
	if f.fields[f.focus] != field(f.ingredients) {
		t.Fatalf("expected focus on ingredients, got %s", f.fields[f.focus].Label())
	}
	if _, done, _ := f.Update(enterKey); done {
		t.Fatalf("enter in a text area must not submit")
	}
}

func TestRecipeFormCancel(t *testing.T) {
	f := NewRecipe(nil, nil)
	f.Init()
	if _, done, cancel := f.Update(escKey); done || !cancel {
		t.Fatalf("expected cancel")
	}
}

func TestParseIngredientLines(t *testing.T) {
	got := ParseIngredientLines("potato 2 kg\n\n  egg 3\nsea salt\nflour x cup")
	if len(got) != 4 {
		t.Fatalf("expected 4 lines, got %+v", got)
	}
	if got[0].Ingredient != "potato" || got[0].Quantity == nil || *got[0].Quantity != 2 || got[0].QuantityType != "kg" {
		t.Fatalf("unexpected first line %+v", got[0])
	}
	if got[1].Ingredient != "egg" || got[1].Quantity == nil || *got[1].Quantity != 3 || got[1].QuantityType != "" {
		t.Fatalf("unexpected second line %+v", got[1])
	}
	if got[2].Ingredient != "sea salt" || got[2].Quantity != nil {
		t.Fatalf("unexpected third line %+v", got[2])
	}
	if got[3].Quantity != nil {
		t.Fatalf("unparsable quantity should be omitted: %+v", got[3])
	}
}

func TestIngredientFormTogglesPantry(t *testing.T) {
	qty := 6.0
	existing := engine.Ingredient{Name: "Tomato", Category: "vegetable", KB: "nightshades"}
	pantry := engine.PantryItem{Ingredient: "Tomato", Quantity: &qty, QuantityType: "pcs"}
	f := NewIngredient(&existing, &pantry, []string{"meat", "vegetable"})
	f.Init()
	if f.qty.Value() != "6" || f.unit.Value() != "pcs" || !f.inPantry.on {
		t.Fatalf("pantry fields not filled")
	}
	for f.fields[f.focus] != field(f.inPantry) {
		f.Update(tabKey)
	}
	f.Update(spaceKey)
	if f.inPantry.on {
		t.Fatalf("space should toggle the pantry flag")
	}
	cmd, done, _ := f.Update(saveKey)
	if !done {
		t.Fatalf("expected submission")
	}
	ev := cmd().(event.SaveIngredient)
	if ev.InPantry || ev.Original == nil || *ev.Original != "Tomato" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev.Ingredient.KB != "nightshades" || ev.Ingredient.Slug != "tomato" {
		t.Fatalf("ingredient fields lost: %+v", ev.Ingredient)
	}
}

func TestIngredientFormOmitsBadQuantity(t *testing.T) {
	f := NewIngredient(nil, nil, nil)
	f.Init()
	f.name.input.SetValue("Olive Oil")
	f.qty.input.SetValue("lots")
	f.inPantry.on = true
	cmd, done, _ := f.Update(enterKey)
	if !done {
		t.Fatalf("expected submission: %s", f.Error())
	}
	ev := cmd().(event.SaveIngredient)
	if ev.Qty != nil || !ev.InPantry || ev.Ingredient.Slug != "olive_oil" {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestIngredientFormRequiresName(t *testing.T) {
	f := NewIngredient(nil, nil, nil)
	f.Init()
	if _, done, _ := f.Update(saveKey); done || f.Error() != "Name required" {
		t.Fatalf("empty name must block submission")
	}
}

func TestConfirm(t *testing.T) {
	c := NewConfirm("Delete Lasagna?", event.DeleteRecipe{ID: "Lasagna"})
	if _, done, cancel := c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}); done || cancel {
		t.Fatalf("unrelated key should be ignored")
	}
	cmd, done, _ := c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if !done {
		t.Fatalf("expected confirmation")
	}
	if ev, ok := cmd().(event.DeleteRecipe); !ok || ev.ID != "Lasagna" {
		t.Fatalf("unexpected message")
	}
	if _, _, cancel := NewConfirm("?", nil).Update(escKey); !cancel {
		t.Fatalf("esc should cancel")
	}
}

// Package dispatcher implements the state transition function: it applies
// one event to the application state, calls the engine synchronously, and
// marks the view regions the change made stale. It never touches view
// objects; anything that must happen later is returned as a command.
package dispatcher

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/cookbook-tui/internal/backend"
	"github.com/atomicstack/cookbook-tui/internal/event"
	"github.com/atomicstack/cookbook-tui/internal/logging"
	"github.com/atomicstack/cookbook-tui/internal/logging/events"
	"github.com/atomicstack/cookbook-tui/internal/settings"
	"github.com/atomicstack/cookbook-tui/internal/state"
	"github.com/atomicstack/cookbook-tui/internal/theme"
)

// Dispatcher holds the collaborators the transition function reaches
// outside the application state.
type Dispatcher struct {
	Loader     *backend.Loader
	Settings   settings.Store
	ApplyTheme func(theme.Name)
}

// New returns a Dispatcher, filling a nil loader or theme hook with the
// defaults.
func New(loader *backend.Loader, store settings.Store, apply func(theme.Name)) *Dispatcher {
	if loader == nil {
		loader = backend.NewLoader(nil)
	}
	if apply == nil {
		apply = theme.Apply
	}
	return &Dispatcher{Loader: loader, Settings: store, ApplyTheme: apply}
}

// Handle applies ev to app. The returned command, if any, carries
// follow-up events back through the queue. Unknown events are ignored.
func (d *Dispatcher) Handle(app *state.App, ev any) tea.Cmd {
	switch ev := ev.(type) {
	case event.SwitchTab:
		app.Tab = ev.Tab
		events.UI.Tab(ev.Tab.String())

	case event.SearchRecipes:
		app.RecipeSearch = ev.Query
		app.Dirty.Mark(state.RegionRecipeList)
		events.Recipe.Search(ev.Query)
	case event.SearchIngredients:
		app.IngredientSearch = ev.Query
		app.Dirty.Mark(state.RegionPantryList)
		events.Ingredient.Search(ev.Query)
	case event.ToggleInStockOnly:
		app.InStockOnly = ev.On
		app.Dirty.Mark(state.RegionPantryList)
		events.UI.Filter("in_stock_only", ev.On)
	case event.SetCategoryFilter:
		app.CategoryFilter = append([]string(nil), ev.Categories...)
		app.Dirty.Mark(state.RegionPantryList)
		events.UI.Filter("category", ev.Categories)
	case event.SearchKB:
		app.KBSearch = ev.Query
		app.Dirty.Mark(state.RegionKBList)
		events.KB.Search(ev.Query)

	case event.SelectRecipe:
		app.SelectedRecipe = ev.ID
		app.Dirty.Mark(state.RegionRecipeDetail)
		events.Recipe.Select(idString(ev.ID))
	case event.SelectIngredient:
		app.SelectedIngredient = ev.ID
		app.Dirty.Mark(state.RegionIngredientDetail)
		events.Ingredient.Select(idString(ev.ID))
	case event.SelectKB:
		app.SelectedKB = ev.ID
		app.Dirty.Mark(state.RegionKBDetail)
		events.KB.Select(idString(ev.ID))

	case event.AddRecipe:
		app.Requests.AddRecipe = true
	case event.EditRecipe:
		app.Requests.EditRecipe = state.StringPtr(ev.ID)
	case event.AddIngredient:
		app.Requests.AddIngredient = true
	case event.EditIngredient:
		app.Requests.EditIngredient = state.StringPtr(ev.ID)

	case event.SaveRecipe:
		return d.saveRecipe(app, ev)
	case event.SaveIngredient:
		return d.saveIngredient(app, ev)
	case event.DeleteRecipe:
		return d.deleteRecipe(app, ev.ID)
	case event.DeleteIngredient:
		return d.deleteIngredient(app, ev.ID)

	case event.SetDataDir:
		return d.setDataDir(app, ev.Dir)
	case event.Reload:
		if app.DataDir == "" {
			return toast("No data directory set")
		}
		return d.startLoad(app, app.DataDir)
	case event.DataDirReady:
		return d.dataDirReady(app, ev)

	case event.SetTheme:
		return d.setTheme(app, ev.Theme)
	case event.ShowToast:
		logging.Info("toast: %s", ev.Text)
		events.App.Toast(ev.Text)
		app.Toast = ev.Text

	default:
		events.Event.Ignored(fmt.Sprintf("%T", ev))
	}
	return nil
}

func (d *Dispatcher) saveRecipe(app *state.App, ev event.SaveRecipe) tea.Cmd {
	if app.Engine == nil {
		return nil
	}
	var err error
	if ev.Original != nil {
		err = app.Engine.UpdateRecipe(*ev.Original, ev.Recipe)
	} else {
		err = app.Engine.CreateRecipe(ev.Recipe)
	}
	if err != nil {
		events.Recipe.Error("save", err)
		return toast(fmt.Sprintf("Error saving recipe: %v", err))
	}
	events.Recipe.Save(idString(ev.Original), ev.Recipe.Title)
	app.SelectedRecipe = state.StringPtr(ev.Recipe.Title)
	app.Dirty.Mark(state.RegionRecipeList, state.RegionRecipeDetail)
	return nil
}

func (d *Dispatcher) saveIngredient(app *state.App, ev event.SaveIngredient) tea.Cmd {
	if app.Engine == nil {
		return nil
	}
	ing := ev.Ingredient
	var err error
	if ev.Original != nil {
		qty, unit := ev.Qty, ev.Unit
		if !ev.InPantry {
			qty, unit = nil, ""
		}
		err = app.Engine.UpdateIngredientWithPantry(*ev.Original, ing, ev.InPantry, qty, unit)
	} else {
		err = app.Engine.CreateIngredient(ing)
		if err == nil && ev.InPantry {
			// The ingredient exists now even if stocking it fails.
			if perr := app.Engine.UpdatePantryItem(ing.Name, ev.Qty, ev.Unit); perr != nil {
				events.Ingredient.Error("save", perr)
				markIngredientSaved(app, ing.Name)
				return toast(fmt.Sprintf("Error: %v", perr))
			}
		}
	}
	if err != nil {
		events.Ingredient.Error("save", err)
		return toast(fmt.Sprintf("Error: %v", err))
	}
	events.Ingredient.Save(idString(ev.Original), ing.Name)
	markIngredientSaved(app, ing.Name)
	return nil
}

// markIngredientSaved selects name and marks what depends on it. Recipe
// availability depends on pantry contents.
func markIngredientSaved(app *state.App, name string) {
	app.SelectedIngredient = state.StringPtr(name)
	app.Dirty.Mark(state.RegionPantryList, state.RegionIngredientDetail, state.RegionRecipeList)
}

func (d *Dispatcher) deleteRecipe(app *state.App, id string) tea.Cmd {
	if app.Engine == nil {
		return nil
	}
	if err := app.Engine.DeleteRecipe(id); err != nil {
		events.Recipe.Error("delete", err)
		return toast(fmt.Sprintf("Error: %v", err))
	}
	events.Recipe.Delete(id)
	if app.SelectedRecipe != nil && *app.SelectedRecipe == id {
		app.SelectedRecipe = nil
	}
	app.Dirty.Mark(state.RegionRecipeList, state.RegionRecipeDetail)
	return nil
}

func (d *Dispatcher) deleteIngredient(app *state.App, id string) tea.Cmd {
	if app.Engine == nil {
		return nil
	}
	if err := app.Engine.DeleteIngredient(id); err != nil {
		events.Ingredient.Error("delete", err)
		return toast(fmt.Sprintf("Error: %v", err))
	}
	events.Ingredient.Delete(id)
	if app.SelectedIngredient != nil && *app.SelectedIngredient == id {
		app.SelectedIngredient = nil
	}
	app.Dirty.Mark(state.RegionPantryList, state.RegionIngredientDetail, state.RegionRecipeList)
	return nil
}

func (d *Dispatcher) setDataDir(app *state.App, dir string) tea.Cmd {
	app.DataDir = dir
	app.Settings.DataDir = dir
	var cmds []tea.Cmd
	if err := d.saveSettings(app); err != nil {
		cmds = append(cmds, toast(fmt.Sprintf("Could not save settings: %v", err)))
	}
	cmds = append(cmds, d.startLoad(app, dir))
	return tea.Batch(cmds...)
}

// startLoad replaces any outstanding handle; the superseded load's
// completion will no longer match and is dropped.
func (d *Dispatcher) startLoad(app *state.App, dir string) tea.Cmd {
	pending, cmd := d.Loader.Start(dir)
	app.Pending = pending
	return cmd
}

func (d *Dispatcher) dataDirReady(app *state.App, ev event.DataDirReady) tea.Cmd {
	if app.Pending == nil || app.Pending.ID != ev.LoadID {
		events.Load.Stale(ev.LoadID, ev.Dir)
		return nil
	}
	res, ok := app.Pending.Take()
	if !ok {
		return nil
	}
	app.Pending = nil
	var cmd tea.Cmd
	if res.Err != nil {
		logging.Error(res.Err)
		cmd = toast(res.Err.Error())
	} else {
		app.Engine = res.Engine
		events.Load.Installed(ev.Dir)
	}
	app.ClearSelections()
	app.Dirty.Mark(state.ListRegions, state.RegionRecipeDetail, state.RegionIngredientDetail, state.RegionKBDetail)
	return cmd
}

func (d *Dispatcher) setTheme(app *state.App, name theme.Name) tea.Cmd {
	app.Settings.Theme = name
	d.ApplyTheme(name)
	events.App.Theme(string(name))
	if err := d.saveSettings(app); err != nil {
		return toast(fmt.Sprintf("Could not save settings: %v", err))
	}
	return nil
}

func (d *Dispatcher) saveSettings(app *state.App) error {
	if d.Settings == nil {
		return nil
	}
	if err := d.Settings.Save(*app.Settings); err != nil {
		logging.Error(err)
		return err
	}
	return nil
}

func toast(text string) tea.Cmd {
	return event.Enqueue(event.ShowToast{Text: text})
}

func idString(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}

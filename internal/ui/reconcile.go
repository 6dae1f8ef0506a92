package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/cookbook-tui/internal/engine"
	"github.com/atomicstack/cookbook-tui/internal/logging/events"
	"github.com/atomicstack/cookbook-tui/internal/state"
	"github.com/atomicstack/cookbook-tui/internal/ui/form"
	uistate "github.com/atomicstack/cookbook-tui/internal/ui/state"
)

const (
	markerInStock = "●"
	markerMissing = "○"

	markerSelected = "▌ "
	markerCursor   = "› "

	placeholderNoData = "No data directory set"
)

var (
	listOrder   = []state.Region{state.RegionRecipeList, state.RegionPantryList, state.RegionKBList}
	detailOrder = []state.Region{state.RegionRecipeDetail, state.RegionIngredientDetail, state.RegionKBDetail}
)

func listRegion(tab state.Tab) state.Region {
	switch tab {
	case state.TabRecipes:
		return state.RegionRecipeList
	case state.TabPantry:
		return state.RegionPantryList
	case state.TabKB:
		return state.RegionKBList
	}
	return 0
}

func detailRegion(tab state.Tab) state.Region {
	switch tab {
	case state.TabRecipes:
		return state.RegionRecipeDetail
	case state.TabPantry:
		return state.RegionIngredientDetail
	case state.TabKB:
		return state.RegionKBDetail
	}
	return 0
}

func detailTab(region state.Region) state.Tab {
	switch region {
	case state.RegionIngredientDetail:
		return state.TabPantry
	case state.RegionKBDetail:
		return state.TabKB
	}
	return state.TabRecipes
}

// reconcile rebuilds every stale region, then drains dialog requests. It
// is the only reader that clears dirty flags. The visible detail is also
// rebuilt after any domain event, resize or tab entry; widget ticks such
// as spinner frames leave it alone.
func (m *Model) reconcile() tea.Cmd {
	for _, region := range listOrder {
		if m.app.Dirty.Take(region) {
			m.rebuildList(region)
		}
	}
	for _, region := range detailOrder {
		marked := m.app.Dirty.Take(region)
		visible := m.app.Tab == detailTab(region) && (m.refresh || region != m.shown)
		if marked || visible {
			m.rebuildDetail(region)
		}
	}
	m.refresh = false
	m.syncDetailView()
	return m.drainRequests()
}

func (m *Model) rebuildList(region state.Region) {
	list := m.lists[region]
	rows, placeholder, selected := m.listRows(region)
	list.SetRows(rows, placeholder)
	list.Highlight(selected)
	m.renders[region]++
	events.Reconcile.Region(region.String(), len(rows))
}

// listRows queries the engine for region with the current filters. It
// returns the rows, the placeholder shown when there are none, and the
// identifier to highlight.
func (m *Model) listRows(region state.Region) ([]uistate.Row, string, *string) {
	e := m.app.Engine
	switch region {
	case state.RegionRecipeList:
		if e == nil {
			return nil, placeholderNoData, nil
		}
		recipes := e.SearchRecipes(m.app.RecipeSearch)
		rows := make([]uistate.Row, 0, len(recipes))
		for _, r := range recipes {
			marker := markerMissing
			if e.CanCook(r) {
				marker = markerInStock
			}
			rows = append(rows, uistate.Row{ID: r.Title, Cells: []string{marker, r.Title, joinTags(r.Tags)}})
		}
		return rows, "No recipes found", m.app.SelectedRecipe

	case state.RegionPantryList:
		if e == nil {
			return nil, placeholderNoData, nil
		}
		items := e.FilterIngredients(m.app.IngredientSearch, m.app.CategoryFilter, m.app.InStockOnly)
		rows := make([]uistate.Row, 0, len(items))
		for _, ing := range items {
			marker := markerMissing
			if e.InPantry(ing.Name) {
				marker = markerInStock
			}
			rows = append(rows, uistate.Row{ID: ing.Name, Cells: []string{marker, ing.Name, ing.Category}})
		}
		return rows, "No ingredients found", m.app.SelectedIngredient

	case state.RegionKBList:
		if e == nil {
			return nil, placeholderNoData, nil
		}
		entries := e.SearchKB(m.app.KBSearch)
		rows := make([]uistate.Row, 0, len(entries))
		for _, entry := range entries {
			rows = append(rows, uistate.Row{ID: entry.Slug, Cells: []string{entry.Title}})
		}
		return rows, "No articles found", m.app.SelectedKB
	}
	return nil, "", nil
}

func (m *Model) rebuildDetail(region state.Region) {
	width := m.detailWidth()
	switch region {
	case state.RegionRecipeDetail:
		m.details[region] = recipeDetail(m.app.Engine, m.app.SelectedRecipe, width)
	case state.RegionIngredientDetail:
		m.details[region] = ingredientDetail(m.app.Engine, m.app.SelectedIngredient, width)
	case state.RegionKBDetail:
		m.details[region] = kbDetail(m.app.Engine, m.app.SelectedKB, width)
	}
	m.renders[region]++
}

// syncDetailView loads the active tab's detail into the viewport, resetting
// the scroll position when a different region comes into view.
func (m *Model) syncDetailView() {
	region := detailRegion(m.app.Tab)
	if region == 0 {
		return
	}
	m.detail.SetContent(m.details[region])
	if region != m.shown {
		m.detail.GotoTop()
		m.shown = region
	}
}

// drainRequests resolves queued dialog requests against the current
// engine. Each slot is cleared before its dialog is built; an edit whose
// target no longer exists is dropped.
func (m *Model) drainRequests() tea.Cmd {
	e := m.app.Engine
	var opened dialog
	if m.app.Requests.TakeAddRecipe() {
		var known []string
		if e != nil {
			for _, ing := range e.AllIngredients() {
				known = append(known, ing.Name)
			}
		}
		opened = form.NewRecipe(nil, known)
		events.Recipe.DialogOpen("")
	}
	if id := m.app.Requests.TakeEditRecipe(); id != nil {
		if r, ok := lookupRecipe(e, *id); ok {
			var known []string
			for _, ing := range e.AllIngredients() {
				known = append(known, ing.Name)
			}
			opened = form.NewRecipe(&r, known)
			events.Recipe.DialogOpen(*id)
		} else {
			events.Recipe.DialogDrop(*id)
		}
	}
	if m.app.Requests.TakeAddIngredient() {
		var categories []string
		if e != nil {
			categories = e.IngredientCategories()
		}
		opened = form.NewIngredient(nil, nil, categories)
		events.Ingredient.DialogOpen("")
	}
	if id := m.app.Requests.TakeEditIngredient(); id != nil {
		if ing, ok := lookupIngredient(e, *id); ok {
			var pantry *engine.PantryItem
			if item, stocked := e.PantryItem(ing.Name); stocked {
				pantry = &item
			}
			opened = form.NewIngredient(&ing, pantry, e.IngredientCategories())
			events.Ingredient.DialogOpen(*id)
		} else {
			events.Ingredient.DialogDrop(*id)
		}
	}
	if opened == nil {
		return nil
	}
	return m.openDialog(opened)
}

func lookupRecipe(e state.Engine, title string) (engine.Recipe, bool) {
	if e == nil {
		return engine.Recipe{}, false
	}
	return e.Recipe(title)
}

func lookupIngredient(e state.Engine, name string) (engine.Ingredient, bool) {
	if e == nil {
		return engine.Ingredient{}, false
	}
	return e.Ingredient(name)
}

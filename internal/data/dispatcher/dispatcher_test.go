package dispatcher

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/cookbook-tui/internal/backend"
	"github.com/atomicstack/cookbook-tui/internal/engine"
	"github.com/atomicstack/cookbook-tui/internal/event"
	"github.com/atomicstack/cookbook-tui/internal/settings"
	"github.com/atomicstack/cookbook-tui/internal/state"
	"github.com/atomicstack/cookbook-tui/internal/testutil"
	"github.com/atomicstack/cookbook-tui/internal/theme"
)

type memStore struct {
	saved []settings.Settings
	err   error
}

func (m *memStore) Load() (settings.Settings, error) { return settings.Default(), nil }

func (m *memStore) Save(s settings.Settings) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, s)
	return nil
}

type fixture struct {
	d       *Dispatcher
	app     *state.App
	store   *memStore
	applied []theme.Name
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{store: &memStore{}}
	f.d = New(backend.NewLoader(nil), f.store, func(n theme.Name) { f.applied = append(f.applied, n) })
	f.app = state.New(nil, "")
	return f
}

// withEngine installs the fixture engine and clears the startup flags.
func withEngine(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t)
	f.app.Engine = testutil.OpenEngine(t)
	reconcile(f.app)
	return f
}

func reconcile(app *state.App) {
	app.Dirty.Take(state.ListRegions | state.RegionRecipeDetail | state.RegionIngredientDetail | state.RegionKBDetail)
}

// drain runs cmd and every command it batches, collecting the messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// settle handles ev and then every follow-up message in arrival order, as
// the program loop would.
func (f *fixture) settle(ev any) {
	queue := []tea.Msg{ev}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		queue = append(queue, drain(f.d.Handle(f.app, next))...)
	}
}

func TestSearchMarksListOnEveryEvent(t *testing.T) {
	f := withEngine(t)
	cases := []struct {
		ev     any
		region state.Region
	}{
		{event.SearchRecipes{Query: "l"}, state.RegionRecipeList},
		{event.SearchRecipes{Query: "la"}, state.RegionRecipeList},
		{event.SearchRecipes{Query: ""}, state.RegionRecipeList},
		{event.SearchIngredients{Query: "to"}, state.RegionPantryList},
		{event.ToggleInStockOnly{On: true}, state.RegionPantryList},
		{event.SetCategoryFilter{Categories: []string{"meat"}}, state.RegionPantryList},
		{event.SearchKB{Query: "night"}, state.RegionKBList},
	}
	for _, tc := range cases {
		f.settle(tc.ev)
		if !f.app.Dirty.Take(tc.region) {
			t.Fatalf("%T did not mark %s", tc.ev, tc.region)
		}
		if !f.app.Dirty.Empty() {
			t.Fatalf("%T marked more than %s", tc.ev, tc.region)
		}
	}
	if f.app.RecipeSearch != "" || f.app.IngredientSearch != "to" || !f.app.InStockOnly || f.app.KBSearch != "night" {
		t.Fatalf("search fields not stored: %+v", f.app)
	}
	if len(f.app.CategoryFilter) != 1 || f.app.CategoryFilter[0] != "meat" {
		t.Fatalf("category filter not stored: %v", f.app.CategoryFilter)
	}
}

func TestSelectionMarksDetail(t *testing.T) {
	f := withEngine(t)
	f.settle(event.SelectRecipe{ID: state.StringPtr("Lasagna")})
	if !f.app.Dirty.Take(state.RegionRecipeDetail) || *f.app.SelectedRecipe != "Lasagna" {
		t.Fatalf("recipe selection not applied")
	}
	f.settle(event.SelectIngredient{ID: nil})
	if !f.app.Dirty.Take(state.RegionIngredientDetail) || f.app.SelectedIngredient != nil {
		t.Fatalf("cleared selection not applied")
	}
	f.settle(event.SelectKB{ID: state.StringPtr("nightshades")})
	if !f.app.Dirty.Take(state.RegionKBDetail) {
		t.Fatalf("kb selection did not mark detail")
	}
}

func TestSwitchTabMarksNothing(t *testing.T) {
	f := withEngine(t)
	f.settle(event.SwitchTab{Tab: state.TabPantry})
	if f.app.Tab != state.TabPantry {
		t.Fatalf("tab not switched")
	}
	if !f.app.Dirty.Empty() {
		t.Fatalf("switching tabs must not mark regions")
	}
}

func TestDeleteSelectedRecipeClearsSelection(t *testing.T) {
	f := withEngine(t)
	f.app.Tab = state.TabRecipes
	f.app.SelectedRecipe = state.StringPtr("Lasagna")
	f.settle(event.DeleteRecipe{ID: "Lasagna"})
	if f.app.SelectedRecipe != nil {
		t.Fatalf("expected selection cleared, got %q", *f.app.SelectedRecipe)
	}
	if !f.app.Dirty.Has(state.RegionRecipeList) || !f.app.Dirty.Has(state.RegionRecipeDetail) {
		t.Fatalf("expected recipe list and detail marked")
	}
	if _, ok := f.app.Engine.Recipe("Lasagna"); ok {
		t.Fatalf("recipe still present")
	}
}

func TestDeleteOtherEntityKeepsSelection(t *testing.T) {
	f := withEngine(t)
	f.app.SelectedRecipe = state.StringPtr("Pancakes")
	f.settle(event.DeleteRecipe{ID: "Lasagna"})
	if f.app.SelectedRecipe == nil || *f.app.SelectedRecipe != "Pancakes" {
		t.Fatalf("selection changed by unrelated delete")
	}
	f.app.SelectedIngredient = state.StringPtr("Tomato")
	f.settle(event.DeleteIngredient{ID: "Beef"})
	if f.app.SelectedIngredient == nil || *f.app.SelectedIngredient != "Tomato" {
		t.Fatalf("ingredient selection changed by unrelated delete")
	}
}

func TestSaveSelectsSavedIdentifier(t *testing.T) {
	f := withEngine(t)
	f.settle(event.SaveRecipe{Recipe: engine.Recipe{Title: "Omelette"}})
	if f.app.SelectedRecipe == nil || *f.app.SelectedRecipe != "Omelette" {
		t.Fatalf("create did not select recipe")
	}
	reconcile(f.app)
	f.settle(event.SaveRecipe{Original: state.StringPtr("Omelette"), Recipe: engine.Recipe{Title: "Cheese Omelette"}})
	if f.app.SelectedRecipe == nil || *f.app.SelectedRecipe != "Cheese Omelette" {
		t.Fatalf("update did not select recipe")
	}
	if !f.app.Dirty.Has(state.RegionRecipeList) || !f.app.Dirty.Has(state.RegionRecipeDetail) {
		t.Fatalf("recipe save did not mark list and detail")
	}
	reconcile(f.app)
	f.settle(event.SaveIngredient{Ingredient: engine.Ingredient{Name: "Egg", Category: "dairy"}, InPantry: true})
	if f.app.SelectedIngredient == nil || *f.app.SelectedIngredient != "Egg" {
		t.Fatalf("ingredient create did not select")
	}
	if !f.app.Engine.InPantry("Egg") {
		t.Fatalf("create with InPantry should stock the ingredient")
	}
}

func TestIngredientMutationsMarkRecipeList(t *testing.T) {
	f := withEngine(t)
	f.settle(event.SaveIngredient{Original: state.StringPtr("Beef"), Ingredient: engine.Ingredient{Name: "Beef", Category: "meat"}, InPantry: true})
	for _, r := range []state.Region{state.RegionRecipeList, state.RegionPantryList, state.RegionIngredientDetail} {
		if !f.app.Dirty.Has(r) {
			t.Fatalf("save did not mark %s", r)
		}
	}
	reconcile(f.app)
	f.settle(event.DeleteIngredient{ID: "Beef"})
	for _, r := range []state.Region{state.RegionRecipeList, state.RegionPantryList, state.RegionIngredientDetail} {
		if !f.app.Dirty.Has(r) {
			t.Fatalf("delete did not mark %s", r)
		}
	}
}

func TestSaveIngredientOutOfPantryRemovesEntry(t *testing.T) {
	f := withEngine(t)
	qty := 3.0
	f.settle(event.SaveIngredient{
		Original:   state.StringPtr("Tomato"),
		Ingredient: engine.Ingredient{Name: "Tomato", Category: "fruit"},
		InPantry:   false,
		Qty:        &qty,
		Unit:       "pcs",
	})
	if f.app.Engine.InPantry("Tomato") {
		t.Fatalf("expected pantry entry removed")
	}
	ing, ok := f.app.Engine.Ingredient("Tomato")
	if !ok || ing.Category != "fruit" {
		t.Fatalf("ingredient not updated: %+v", ing)
	}
	for _, r := range []state.Region{state.RegionRecipeList, state.RegionPantryList, state.RegionIngredientDetail} {
		if !f.app.Dirty.Has(r) {
			t.Fatalf("expected %s marked", r)
		}
	}
}

func TestFailedMutationOnlyToasts(t *testing.T) {
	f := withEngine(t)
	f.app.Engine = testutil.FailingStore{Store: f.app.Engine, Err: errors.New("disk full")}
	f.app.SelectedRecipe = state.StringPtr("Pancakes")
	events := []any{
		event.SaveRecipe{Recipe: engine.Recipe{Title: "Soup"}},
		event.SaveIngredient{Ingredient: engine.Ingredient{Name: "Salt"}},
		event.DeleteRecipe{ID: "Pancakes"},
		event.DeleteIngredient{ID: "Flour"},
	}
	for _, ev := range events {
		f.app.Toast = ""
		f.settle(ev)
		if !f.app.Dirty.Empty() {
			t.Fatalf("%T marked regions on failure", ev)
		}
		if !strings.Contains(f.app.Toast, "disk full") {
			t.Fatalf("%T toast = %q", ev, f.app.Toast)
		}
	}
	if f.app.SelectedRecipe == nil || *f.app.SelectedRecipe != "Pancakes" {
		t.Fatalf("failure changed selection")
	}
}

// pantryFailingStore accepts every mutation except pantry writes.
type pantryFailingStore struct {
	engine.Store
	err error
}

func (p pantryFailingStore) UpdatePantryItem(string, *float64, string) error { return p.err }

func TestCreatedIngredientMarksListsWhenStockingFails(t *testing.T) {
	f := withEngine(t)
	f.app.Engine = pantryFailingStore{Store: f.app.Engine, err: errors.New("disk full")}
	qty := 1.0
	f.settle(event.SaveIngredient{Ingredient: engine.Ingredient{Name: "Salt"}, InPantry: true, Qty: &qty, Unit: "kg"})
	if _, ok := f.app.Engine.Ingredient("Salt"); !ok {
		t.Fatalf("expected Salt to be created")
	}
	if !strings.Contains(f.app.Toast, "disk full") {
		t.Fatalf("toast = %q", f.app.Toast)
	}
	for _, r := range []state.Region{state.RegionRecipeList, state.RegionPantryList, state.RegionIngredientDetail} {
		if !f.app.Dirty.Has(r) {
			t.Fatalf("expected %s marked", r)
		}
	}
	if sel := f.app.SelectedIngredient; sel == nil || *sel != "Salt" {
		t.Fatalf("expected Salt selected, got %v", sel)
	}
}

func TestNoEngineMutationsAreNoops(t *testing.T) {
	f := newFixture(t)
	f.app.SelectedRecipe = state.StringPtr("Lasagna")
	f.app.SelectedIngredient = state.StringPtr("Tomato")
	before := f.app.Dirty
	events := []any{
		event.SaveRecipe{Recipe: engine.Recipe{Title: "Soup"}},
		event.SaveIngredient{Ingredient: engine.Ingredient{Name: "Salt"}, InPantry: true},
		event.DeleteRecipe{ID: "Lasagna"},
		event.DeleteIngredient{ID: "Tomato"},
	}
	for _, ev := range events {
		if cmd := f.d.Handle(f.app, ev); cmd != nil {
			t.Fatalf("%T returned a command without an engine", ev)
		}
	}
	if f.app.Dirty != before {
		t.Fatalf("flags changed without an engine")
	}
	if *f.app.SelectedRecipe != "Lasagna" || *f.app.SelectedIngredient != "Tomato" {
		t.Fatalf("selections changed without an engine")
	}
	if f.app.Toast != "" {
		t.Fatalf("unexpected toast %q", f.app.Toast)
	}
}

func TestDialogRequestsFillSlots(t *testing.T) {
	f := newFixture(t)
	f.settle(event.AddRecipe{})
	f.settle(event.EditRecipe{ID: "Lasagna"})
	f.settle(event.AddIngredient{})
	f.settle(event.EditIngredient{ID: "Tomato"})
	r := f.app.Requests
	if !r.AddRecipe || !r.AddIngredient || r.EditRecipe == nil || *r.EditRecipe != "Lasagna" || r.EditIngredient == nil || *r.EditIngredient != "Tomato" {
		t.Fatalf("unexpected requests %+v", r)
	}
}

func TestSetDataDirLoadsAndResets(t *testing.T) {
	f := newFixture(t)
	reconcile(f.app)
	f.app.SelectedKB = state.StringPtr("stale")
	dir := testutil.DataDir(t)

	cmd := f.d.Handle(f.app, event.SetDataDir{Dir: dir})
	if !f.app.Dirty.Empty() {
		t.Fatalf("SetDataDir must not mark regions before the load completes")
	}
	if f.app.Pending == nil || f.app.Engine != nil {
		t.Fatalf("expected pending load and no engine")
	}
	if len(f.store.saved) != 1 || f.store.saved[0].DataDir != dir {
		t.Fatalf("data dir not persisted: %+v", f.store.saved)
	}
	for _, msg := range drain(cmd) {
		f.settle(msg)
	}
	if f.app.Engine == nil {
		t.Fatalf("expected engine installed")
	}
	if f.app.Pending != nil {
		t.Fatalf("expected handle consumed")
	}
	for _, r := range []state.Region{state.RegionRecipeList, state.RegionPantryList, state.RegionKBList} {
		if !f.app.Dirty.Has(r) {
			t.Fatalf("expected %s marked after load", r)
		}
	}
	if f.app.SelectedRecipe != nil || f.app.SelectedIngredient != nil || f.app.SelectedKB != nil {
		t.Fatalf("expected selections cleared")
	}
}

func TestSupersededLoadIsIgnored(t *testing.T) {
	f := newFixture(t)
	reconcile(f.app)
	first := f.d.Handle(f.app, event.SetDataDir{Dir: testutil.DataDir(t)})
	second := f.d.Handle(f.app, event.SetDataDir{Dir: testutil.DataDir(t)})

	for _, msg := range drain(first) {
		if cmd := f.d.Handle(f.app, msg); cmd != nil {
			t.Fatalf("stale completion produced a command")
		}
	}
	if f.app.Engine != nil || !f.app.Dirty.Empty() || f.app.Pending == nil {
		t.Fatalf("stale completion changed state")
	}
	for _, msg := range drain(second) {
		f.settle(msg)
	}
	if f.app.Engine == nil || f.app.Pending != nil {
		t.Fatalf("current completion not applied")
	}
}

func TestLoadFailureKeepsPreviousEngine(t *testing.T) {
	f := withEngine(t)
	previous := f.app.Engine
	f.app.SelectedRecipe = state.StringPtr("Lasagna")
	missing := filepath.Join(t.TempDir(), "missing")
	f.settle(event.SetDataDir{Dir: missing})
	if f.app.Engine != previous {
		t.Fatalf("failed load replaced the engine")
	}
	if !strings.HasPrefix(f.app.Toast, "could not load data from "+missing) {
		t.Fatalf("unexpected toast %q", f.app.Toast)
	}
	if f.app.SelectedRecipe != nil || !f.app.Dirty.Has(state.ListRegions) {
		t.Fatalf("failed load must still reset selections and mark lists")
	}
}

func TestReloadReusesDataDir(t *testing.T) {
	f := newFixture(t)
	f.settle(event.Reload{})
	if f.app.Toast != "No data directory set" || f.app.Pending != nil {
		t.Fatalf("reload without a directory should only toast")
	}
	f.app.DataDir = testutil.DataDir(t)
	f.settle(event.Reload{})
	if f.app.Engine == nil {
		t.Fatalf("reload did not install an engine")
	}
	if len(f.store.saved) != 0 {
		t.Fatalf("reload must not persist settings")
	}
}

func TestSetThemePersistsAndApplies(t *testing.T) {
	f := newFixture(t)
	before := f.app.Dirty
	f.settle(event.SetTheme{Theme: theme.Dark})
	if len(f.applied) != 1 || f.applied[0] != theme.Dark {
		t.Fatalf("theme not applied: %v", f.applied)
	}
	if f.app.Settings.Theme != theme.Dark || len(f.store.saved) != 1 || f.store.saved[0].Theme != theme.Dark {
		t.Fatalf("theme not persisted")
	}
	if f.app.Dirty != before {
		t.Fatalf("theme change must bypass dirty flags")
	}
}

func TestSettingsSaveFailureToasts(t *testing.T) {
	f := newFixture(t)
	f.store.err = errors.New("read-only")
	f.settle(event.SetTheme{Theme: theme.Light})
	if !strings.Contains(f.app.Toast, "read-only") {
		t.Fatalf("expected toast, got %q", f.app.Toast)
	}
}

func TestUnknownEventIsIgnored(t *testing.T) {
	f := newFixture(t)
	before := *f.app
	if cmd := f.d.Handle(f.app, struct{ X int }{1}); cmd != nil {
		t.Fatalf("unknown event returned a command")
	}
	if f.app.Dirty != before.Dirty || f.app.Tab != before.Tab {
		t.Fatalf("unknown event changed state")
	}
}

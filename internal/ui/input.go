package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/cookbook-tui/internal/engine"
	"github.com/atomicstack/cookbook-tui/internal/event"
	"github.com/atomicstack/cookbook-tui/internal/logging"
	"github.com/atomicstack/cookbook-tui/internal/logging/events"
	"github.com/atomicstack/cookbook-tui/internal/state"
	"github.com/atomicstack/cookbook-tui/internal/ui/form"
)

const (
	settingsDataDir = iota
	settingsTheme
	settingsRows
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	if m.editingDir {
		return m.handleDirInputKey(keyMsg)
	}
	if m.searching {
		return m.handleSearchKey(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return nil
	case key.Matches(keyMsg, m.keys.Reload):
		return m.dispatch(event.Reload{})
	case key.Matches(keyMsg, m.keys.NextTab):
		return m.dispatch(event.SwitchTab{Tab: m.app.Tab.Next()})
	case key.Matches(keyMsg, m.keys.PrevTab):
		return m.dispatch(event.SwitchTab{Tab: m.app.Tab.Prev()})
	case key.Matches(keyMsg, m.keys.JumpTab):
		idx := int(keyMsg.String()[0] - '1')
		if idx >= 0 && idx < len(state.Tabs) {
			return m.dispatch(event.SwitchTab{Tab: state.Tabs[idx]})
		}
		return nil
	}

	if m.app.Tab == state.TabSettings {
		return m.handleSettingsKey(keyMsg)
	}
	return m.handleListKey(keyMsg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	tab := m.app.Tab
	list := m.lists[listRegion(tab)]
	if list == nil {
		return nil
	}
	page := m.listHeight()
	moved := false

	switch {
	case key.Matches(msg, m.keys.Up):
		moved = list.Move(-1)
	case key.Matches(msg, m.keys.Down):
		moved = list.Move(1)
	case key.Matches(msg, m.keys.PageUp):
		moved = list.PageUp(page)
	case key.Matches(msg, m.keys.PageDown):
		moved = list.PageDown(page)
	case key.Matches(msg, m.keys.Home):
		moved = list.Home()
	case key.Matches(msg, m.keys.End):
		moved = list.End()
	case key.Matches(msg, m.keys.ScrollUp):
		m.detail.SetYOffset(m.detail.YOffset - 3)
	case key.Matches(msg, m.keys.ScrollDown):
		m.detail.SetYOffset(m.detail.YOffset + 3)
	case key.Matches(msg, m.keys.Search):
		return m.focusSearch()
	case key.Matches(msg, m.keys.Select):
		return m.selectCurrent()
	case key.Matches(msg, m.keys.Add):
		switch tab {
		case state.TabRecipes:
			return m.dispatch(event.AddRecipe{})
		case state.TabPantry:
			return m.dispatch(event.AddIngredient{})
		}
	case key.Matches(msg, m.keys.Edit):
		id, ok := m.target(tab)
		if !ok {
			return nil
		}
		switch tab {
		case state.TabRecipes:
			return m.dispatch(event.EditRecipe{ID: id})
		case state.TabPantry:
			return m.dispatch(event.EditIngredient{ID: id})
		}
	case key.Matches(msg, m.keys.Delete):
		id, ok := m.target(tab)
		if !ok {
			return nil
		}
		switch tab {
		case state.TabRecipes:
			return m.openDialog(form.NewConfirm(fmt.Sprintf("Delete recipe %q?", id), event.DeleteRecipe{ID: id}))
		case state.TabPantry:
			return m.openDialog(form.NewConfirm(fmt.Sprintf("Delete ingredient %q?", id), event.DeleteIngredient{ID: id}))
		}
	case key.Matches(msg, m.keys.InStock):
		if tab == state.TabPantry {
			return m.dispatch(event.ToggleInStockOnly{On: !m.app.InStockOnly})
		}
	case key.Matches(msg, m.keys.Category):
		if tab == state.TabPantry && m.app.Engine != nil {
			return m.dispatch(event.SetCategoryFilter{Categories: nextCategory(m.app.Engine.IngredientCategories(), m.app.CategoryFilter)})
		}
	}

	if moved {
		return m.selectCurrent()
	}
	return nil
}

// selectCurrent selects the row under the cursor on the active tab.
func (m *Model) selectCurrent() tea.Cmd {
	list := m.lists[listRegion(m.app.Tab)]
	if list == nil {
		return nil
	}
	row, ok := list.Current()
	if !ok {
		return nil
	}
	id := state.StringPtr(row.ID)
	if state.SameID(m.selectedID(m.app.Tab), id) {
		return nil
	}
	switch m.app.Tab {
	case state.TabRecipes:
		return m.dispatch(event.SelectRecipe{ID: id})
	case state.TabPantry:
		return m.dispatch(event.SelectIngredient{ID: id})
	case state.TabKB:
		return m.dispatch(event.SelectKB{ID: id})
	}
	return nil
}

func (m *Model) selectedID(tab state.Tab) *string {
	switch tab {
	case state.TabRecipes:
		return m.app.SelectedRecipe
	case state.TabPantry:
		return m.app.SelectedIngredient
	case state.TabKB:
		return m.app.SelectedKB
	}
	return nil
}

// target names the entity edit and delete act on: the selection shown in
// the detail pane, or the row under the cursor when nothing is selected.
func (m *Model) target(tab state.Tab) (string, bool) {
	if id := m.selectedID(tab); id != nil {
		return *id, true
	}
	row, ok := m.lists[listRegion(tab)].Current()
	if !ok {
		return "", false
	}
	return row.ID, true
}

// nextCategory cycles the filter: none, then each category alone, then
// none again.
func nextCategory(categories, current []string) []string {
	if len(categories) == 0 {
		return nil
	}
	if len(current) == 0 {
		return []string{categories[0]}
	}
	for i, c := range categories {
		if c == current[0] && i+1 < len(categories) {
			return []string{categories[i+1]}
		}
	}
	return nil
}

func (m *Model) focusSearch() tea.Cmd {
	input := m.search[m.app.Tab]
	if input == nil {
		return nil
	}
	m.searching = true
	events.UI.Focus("search:" + m.app.Tab.String())
	return input.Focus()
}

func (m *Model) blurSearch() {
	for _, input := range m.search {
		input.Blur()
	}
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	input := m.search[m.app.Tab]
	if input == nil {
		m.searching = false
		return nil
	}
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		input.Blur()
		return nil
	case tea.KeyEsc:
		m.searching = false
		input.Blur()
		if input.Value() == "" {
			return nil
		}
		input.SetValue("")
		return m.dispatch(m.searchEvent(""))
	}
	before := input.Value()
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	if input.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, m.dispatch(m.searchEvent(input.Value())))
}

func (m *Model) searchEvent(query string) any {
	switch m.app.Tab {
	case state.TabPantry:
		return event.SearchIngredients{Query: query}
	case state.TabKB:
		return event.SearchKB{Query: query}
	default:
		return event.SearchRecipes{Query: query}
	}
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.settingsCursor < settingsRows-1 {
			m.settingsCursor++
		}
	case key.Matches(msg, m.keys.Activate):
		switch m.settingsCursor {
		case settingsDataDir:
			m.editingDir = true
			m.dirInput.SetValue(m.app.DataDir)
			m.dirInput.CursorEnd()
			events.UI.Focus("data-dir")
			return m.dirInput.Focus()
		case settingsTheme:
			return m.dispatch(event.SetTheme{Theme: m.app.Settings.Theme.Next()})
		}
	}
	return nil
}

func (m *Model) handleDirInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.editingDir = false
		m.dirInput.Blur()
		return nil
	case tea.KeyEnter:
		m.editingDir = false
		m.dirInput.Blur()
		return m.submitDataDir(m.dirInput.Value())
	}
	var cmd tea.Cmd
	m.dirInput, cmd = m.dirInput.Update(msg)
	return cmd
}

// submitDataDir prepares the directory layout and hands the path to the
// transition function. Preparation failures surface as a toast.
func (m *Model) submitDataDir(raw string) tea.Cmd {
	dir := expandHome(strings.TrimSpace(raw))
	if dir == "" {
		return m.dispatch(event.ShowToast{Text: "Data directory required"})
	}
	if err := engine.EnsureLayout(dir); err != nil {
		logging.Error(err)
		return m.dispatch(event.ShowToast{Text: fmt.Sprintf("Could not prepare %s: %v", dir, err)})
	}
	return m.dispatch(event.SetDataDir{Dir: dir})
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

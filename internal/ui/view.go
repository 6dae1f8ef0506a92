package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/cookbook-tui/internal/format/table"
	"github.com/atomicstack/cookbook-tui/internal/state"
	"github.com/atomicstack/cookbook-tui/internal/theme"
)

func (m *Model) View() string {
	m.keys.tab = m.app.Tab
	var body string
	switch {
	case m.dialog != nil:
		body = m.viewDialog()
	case m.app.Tab == state.TabSettings:
		body = m.viewSettings()
	default:
		body = m.viewBrowser()
	}
	sections := []string{m.viewTabs(), body, m.viewStatus()}
	if m.footer {
		sections = append(sections, m.help.View(m.keys))
	}
	return strings.Join(sections, "\n")
}

func (m *Model) viewTabs() string {
	styles := theme.Current()
	parts := make([]string, 0, len(state.Tabs))
	for i, tab := range state.Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab)
		if tab == m.app.Tab {
			parts = append(parts, styles.ActiveTab.Render(label))
		} else {
			parts = append(parts, styles.Tab.Render(label))
		}
	}
	return truncate.String(lipgloss.JoinHorizontal(lipgloss.Top, parts...), uint(m.width))
}

func (m *Model) viewBrowser() string {
	styles := theme.Current()
	height := m.bodyHeight()
	list := m.viewList(m.app.Tab)
	sep := styles.Border.Render(strings.TrimRight(strings.Repeat("│\n", height), "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, list, sep, m.detail.View())
}

func (m *Model) viewList(tab state.Tab) string {
	styles := theme.Current()
	width := m.listWidth()
	lines := []string{m.viewSearch(tab)}

	list := m.lists[listRegion(tab)]
	if list.Empty() {
		lines = append(lines, styles.Placeholder.Render(list.Placeholder))
	} else {
		visible, offset := list.Visible(m.listHeight())
		cells := make([][]string, len(visible))
		for i, row := range visible {
			cells[i] = row.Cells
		}
		selected := m.selectedID(tab)
		for i, line := range table.Format(cells, nil, width-2) {
			switch {
			case selected != nil && visible[i].ID == *selected:
				lines = append(lines, styles.SelectedItem.Render(markerSelected+line))
			case offset+i == list.Cursor:
				lines = append(lines, styles.ItemIndicator.Render(markerCursor)+styles.Item.Render(line))
			default:
				lines = append(lines, "  "+styles.Item.Render(line))
			}
		}
	}
	height := m.bodyHeight()
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(strings.Join(lines, "\n"))
}

func (m *Model) viewSearch(tab state.Tab) string {
	styles := theme.Current()
	input := m.search[tab]
	var line string
	switch {
	case m.searching && tab == m.app.Tab:
		line = input.View()
	case input.Value() != "":
		line = styles.FilterPrompt.Render("/") + styles.Filter.Render(input.Value())
	default:
		line = styles.FilterPlaceholder.Render("/ " + input.Placeholder)
	}
	if tab == state.TabPantry {
		var flags []string
		if m.app.InStockOnly {
			flags = append(flags, "in stock")
		}
		flags = append(flags, m.app.CategoryFilter...)
		if len(flags) > 0 {
			line += " " + styles.Caption.Render("["+strings.Join(flags, "] [")+"]")
		}
	}
	return truncate.String(line, uint(m.listWidth()))
}

func (m *Model) viewSettings() string {
	styles := theme.Current()
	dir := m.app.DataDir
	if dir == "" {
		dir = "(not set)"
	}
	if m.editingDir {
		dir = m.dirInput.View()
	}
	status := "not loaded"
	switch {
	case m.app.Loading():
		status = "loading"
	case m.app.Engine != nil:
		status = "loaded"
	}
	rows := table.Format([][]string{
		{"Data directory", dir},
		{"Theme", string(m.app.Settings.Theme)},
		{"Language", m.app.Settings.Language},
		{"Data", status},
	}, nil, m.width-4)

	lines := []string{styles.Title.Render("Settings"), ""}
	for i, row := range rows {
		if i == m.settingsCursor {
			lines = append(lines, styles.SelectedItem.Render("▌ "+row))
		} else {
			lines = append(lines, "  "+styles.Item.Render(row))
		}
	}
	hint := "enter: change"
	if m.editingDir {
		hint = "enter: apply · esc: cancel"
	}
	lines = append(lines, "", styles.Caption.Render(hint))
	height := m.bodyHeight()
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(strings.Join(lines, "\n"))
}

func (m *Model) viewDialog() string {
	styles := theme.Current()
	box := styles.Border.
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(m.dialogWidth()).
		Render(m.dialog.View())
	height := m.bodyHeight()
	placed := lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
	return lipgloss.NewStyle().MaxHeight(height).Render(placed)
}

func (m *Model) viewStatus() string {
	styles := theme.Current()
	var line string
	switch {
	case m.toastVisible && m.app.Toast != "":
		line = styles.Toast.Render(m.app.Toast)
	case m.app.Loading():
		line = m.spinner.View() + " " + styles.Loading.Render("Loading "+m.app.Pending.Dir+"…")
	case m.app.DataDir != "":
		line = styles.Footer.Render(m.app.DataDir)
	}
	return truncate.StringWithTail(line, uint(m.width), "…")
}

func (m *Model) listWidth() int {
	w := m.width * 2 / 5
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) detailWidth() int {
	w := m.width - m.listWidth() - 1
	if w < 10 {
		w = 10
	}
	return w
}

func (m *Model) bodyHeight() int {
	h := m.height - 2
	if m.footer {
		h -= lipgloss.Height(m.help.View(m.keys))
	}
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) listHeight() int {
	return m.bodyHeight() - 1
}

func (m *Model) dialogWidth() int {
	w := m.width - 4
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

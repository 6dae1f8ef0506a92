package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/atomicstack/cookbook-tui/internal/state"
)

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	JumpTab    key.Binding
	Search     key.Binding
	Select     key.Binding
	Add        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	InStock    key.Binding
	Category   key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Activate   key.Binding
	Reload     key.Binding
	Help       key.Binding
	Quit       key.Binding

	tab state.Tab
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		NextTab:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev tab")),
		JumpTab:    key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump to tab")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:     key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		InStock:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "in stock only")),
		Category:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		ScrollUp:   key.NewBinding(key.WithKeys("K", "ctrl+u"), key.WithHelp("K", "scroll detail up")),
		ScrollDown: key.NewBinding(key.WithKeys("J", "ctrl+d"), key.WithHelp("J", "scroll detail down")),
		Activate:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "change")),
		Reload:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings relevant to the active tab.
func (k keyMap) ShortHelp() []key.Binding {
	switch k.tab {
	case state.TabPantry:
		return []key.Binding{k.Search, k.Select, k.Add, k.Edit, k.Delete, k.InStock, k.Category, k.NextTab, k.Help, k.Quit}
	case state.TabKB:
		return []key.Binding{k.Search, k.Select, k.ScrollDown, k.NextTab, k.Help, k.Quit}
	case state.TabSettings:
		return []key.Binding{k.Up, k.Down, k.Activate, k.NextTab, k.Quit}
	default:
		return []key.Binding{k.Search, k.Select, k.Add, k.Edit, k.Delete, k.NextTab, k.Help, k.Quit}
	}
}

// FullHelp returns every binding grouped for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.NextTab, k.PrevTab, k.JumpTab, k.Search, k.Reload},
		{k.Select, k.Add, k.Edit, k.Delete, k.InStock, k.Category},
		{k.ScrollUp, k.ScrollDown, k.Help, k.Quit},
	}
}

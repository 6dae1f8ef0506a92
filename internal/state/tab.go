package state

// Tab identifies the visible top-level view.
type Tab int

const (
	TabRecipes Tab = iota
	TabPantry
	TabKB
	TabSettings
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabRecipes, TabPantry, TabKB, TabSettings}

func (t Tab) String() string {
	switch t {
	case TabRecipes:
		return "Recipes"
	case TabPantry:
		return "Pantry"
	case TabKB:
		return "Knowledge Base"
	case TabSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	return Tabs[(int(t)+1)%len(Tabs)]
}

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab {
	return Tabs[(int(t)+len(Tabs)-1)%len(Tabs)]
}

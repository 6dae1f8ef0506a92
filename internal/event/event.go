// Package event defines every message the state transition function
// accepts. Widgets submit them through Enqueue so they travel the same
// queue as key presses and load completions.
package event

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/cookbook-tui/internal/backend"
	"github.com/atomicstack/cookbook-tui/internal/engine"
	"github.com/atomicstack/cookbook-tui/internal/state"
	"github.com/atomicstack/cookbook-tui/internal/theme"
)

// Enqueue returns a command that delivers ev as the next message.
func Enqueue(ev any) tea.Cmd {
	return func() tea.Msg { return ev }
}

type SwitchTab struct{ Tab state.Tab }

type SearchRecipes struct{ Query string }

type SearchIngredients struct{ Query string }

type ToggleInStockOnly struct{ On bool }

type SetCategoryFilter struct{ Categories []string }

type SearchKB struct{ Query string }

// Selection events carry nil to clear the selection.
type (
	SelectRecipe     struct{ ID *string }
	SelectIngredient struct{ ID *string }
	SelectKB         struct{ ID *string }
)

type (
	AddRecipe      struct{}
	AddIngredient  struct{}
	EditRecipe     struct{ ID string }
	EditIngredient struct{ ID string }
)

// SaveRecipe creates Recipe when Original is nil, otherwise updates the
// recipe stored under *Original.
type SaveRecipe struct {
	Original *string
	Recipe   engine.Recipe
}

// SaveIngredient creates or updates Ingredient and reconciles its pantry
// entry: InPantry upserts Qty and Unit, otherwise the entry is removed.
type SaveIngredient struct {
	Original   *string
	Ingredient engine.Ingredient
	InPantry   bool
	Qty        *float64
	Unit       string
}

type DeleteRecipe struct{ ID string }

type DeleteIngredient struct{ ID string }

type SetDataDir struct{ Dir string }

// Reload reopens the current data directory.
type Reload struct{}

// DataDirReady signals that the load with LoadID has parked its result.
type DataDirReady = backend.Ready

type SetTheme struct{ Theme theme.Name }

type ShowToast struct{ Text string }

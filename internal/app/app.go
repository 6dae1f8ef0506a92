package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/cookbook-tui/internal/backend"
	"github.com/atomicstack/cookbook-tui/internal/data/dispatcher"
	"github.com/atomicstack/cookbook-tui/internal/engine"
	"github.com/atomicstack/cookbook-tui/internal/logging"
	"github.com/atomicstack/cookbook-tui/internal/settings"
	"github.com/atomicstack/cookbook-tui/internal/state"
	"github.com/atomicstack/cookbook-tui/internal/theme"
	"github.com/atomicstack/cookbook-tui/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	DataDir      string
	SettingsPath string
	Width        int
	Height       int
	ShowFooter   bool
}

// NewModel loads the persisted settings, applies the saved theme and wires
// the transition function and view around a fresh application state.
func NewModel(cfg Config) *ui.Model {
	store := settings.NewFileStore(cfg.SettingsPath)
	saved, err := store.Load()
	if err != nil {
		logging.Error(err)
	}
	dataDir := settings.EffectiveDataDir(cfg.DataDir, saved)
	if cfg.DataDir == "" && saved.DataDir == "" {
		// First run: give the default directory a usable layout.
		if err := engine.EnsureLayout(dataDir); err != nil {
			logging.Error(err)
		}
	}
	theme.Apply(saved.Theme)

	d := dispatcher.New(backend.NewLoader(nil), store, theme.Apply)
	return ui.NewModel(state.New(&saved, dataDir), d, ui.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Footer: cfg.ShowFooter,
	})
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	program := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/cookbook-tui/internal/theme"
)

func TestNewModelUsesSavedSettings(t *testing.T) {
	defer theme.Apply(theme.System)
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "user_settings.yaml")
	dataDir := filepath.Join(dir, "data")
	body := "data_dir: " + dataDir + "\nlanguage: en\ntheme: Dark\n"
	if err := os.WriteFile(settingsPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	m := NewModel(Config{SettingsPath: settingsPath})
	app := m.App()
	if app.DataDir != dataDir {
		t.Fatalf("expected data dir %q, got %q", dataDir, app.DataDir)
	}
	if app.Settings.Theme != theme.Dark || theme.Active() != theme.Dark {
		t.Fatalf("expected Dark theme to be applied, got %q / %q", app.Settings.Theme, theme.Active())
	}
	if app.Engine != nil {
		t.Fatalf("engine must only be installed by a load")
	}
	if m.Init() == nil {
		t.Fatalf("expected an initial load command")
	}
}

func TestNewModelOverrideWins(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "user_settings.yaml")
	override := filepath.Join(dir, "elsewhere")

	m := NewModel(Config{SettingsPath: settingsPath, DataDir: override})
	if got := m.App().DataDir; got != override {
		t.Fatalf("expected override %q, got %q", override, got)
	}
	if _, err := os.Stat(override); !os.IsNotExist(err) {
		t.Fatalf("an explicit data dir must not be created at startup")
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DataDir != "" || cfg.App.SettingsPath != "" {
		t.Fatalf("expected empty paths, got %+v", cfg.App)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer on by default")
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace off by default")
	}
}

func TestLoadArgsReadsEnvironment(t *testing.T) {
	environ := []string{
		"COOKBOOK_DATA_DIR=/srv/cookbook",
		"COOKBOOK_SETTINGS=/tmp/settings.yaml",
		"COOKBOOK_WIDTH=120",
		"COOKBOOK_FOOTER=false",
		"COOKBOOK_TRACE=1",
		"COOKBOOK_LOG_FILE=/tmp/cookbook.log",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DataDir != "/srv/cookbook" {
		t.Fatalf("unexpected data dir %q", cfg.App.DataDir)
	}
	if cfg.App.SettingsPath != "/tmp/settings.yaml" {
		t.Fatalf("unexpected settings path %q", cfg.App.SettingsPath)
	}
	if cfg.App.Width != 120 || cfg.App.ShowFooter {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/cookbook.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{"COOKBOOK_DATA_DIR=/srv/cookbook", "COOKBOOK_FOOTER=true"}
	cfg, err := LoadArgs([]string{"--data-dir", "/home/me/food", "--no-footer", "--height", "40"}, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DataDir != "/home/me/food" {
		t.Fatalf("unexpected data dir %q", cfg.App.DataDir)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected --no-footer to win")
	}
	if cfg.App.Height != 40 || cfg.Flags["height"] != "40" {
		t.Fatalf("unexpected height %d / %q", cfg.App.Height, cfg.Flags["height"])
	}
	if len(cfg.Args) != 5 {
		t.Fatalf("expected args to be recorded, got %v", cfg.Args)
	}
}

func TestInvalidEnvironmentFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"COOKBOOK_WIDTH=wide", "COOKBOOK_TRACE=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.Logging.Trace {
		t.Fatalf("expected defaults, got %+v %+v", cfg.App, cfg.Logging)
	}
}

func TestNegativeSizeRejected(t *testing.T) {
	if _, err := LoadArgs([]string{"--width=-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
}

func TestUnknownFlagRejected(t *testing.T) {
	if _, err := LoadArgs([]string{"--socket", "x"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestHelpReturnsErrHelp(t *testing.T) {
	if _, err := LoadArgs([]string{"--help"}, nil); !errors.Is(err, ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
}

func TestValidateRejectsFileAsDataDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadArgs([]string{"--data-dir", file}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation error")
	}
	cfg.App.DataDir = dir
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error for directory: %v", err)
	}
	cfg.App.DataDir = filepath.Join(dir, "missing")
	if err := Validate(cfg); err != nil {
		t.Fatalf("missing directory should be left to the loader: %v", err)
	}
}

// Package settings persists the small per-user record the application keeps
// between runs: the data directory, the colour scheme, and the language.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/cookbook-tui/internal/theme"
	"gopkg.in/yaml.v3"
)

const (
	appDirName       = "cookbook-tui"
	settingsFileName = "user_settings.yaml"
	defaultLanguage  = "en"
)

// Settings is the persisted user record.
type Settings struct {
	DataDir  string     `yaml:"data_dir,omitempty"`
	Language string     `yaml:"language"`
	Theme    theme.Name `yaml:"theme"`
}

// Default returns the settings used when nothing has been persisted yet.
func Default() Settings {
	return Settings{Language: defaultLanguage, Theme: theme.System}
}

// Store loads and saves Settings.
type Store interface {
	Load() (Settings, error)
	Save(Settings) error
}

// FileStore keeps Settings in a YAML file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store rooted at path, or at DefaultPath when empty.
func NewFileStore(path string) *FileStore {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	return &FileStore{Path: path}
}

// DefaultPath is <user config dir>/cookbook-tui/user_settings.yaml.
func DefaultPath() string {
	return filepath.Join(configRoot(), appDirName, settingsFileName)
}

// DefaultDataDir is the data directory used when neither the environment nor
// the persisted settings name one.
func DefaultDataDir() string {
	return filepath.Join(configRoot(), appDirName, "data")
}

func configRoot() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "."
	}
	return dir
}

// Load reads the settings file. A missing or empty file yields defaults
// without error; an unreadable one yields defaults and the error.
func (s *FileStore) Load() (Settings, error) {
	cfg := Default()
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("settings: reading %s: %w", s.Path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("settings: parsing %s: %w", s.Path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes the settings file, creating its directory when missing.
func (s *FileStore) Save(cfg Settings) error {
	cfg.normalize()
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("settings: create dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("settings: write %s: %w", s.Path, err)
	}
	return nil
}

func (s *Settings) normalize() {
	if strings.TrimSpace(s.Language) == "" {
		s.Language = defaultLanguage
	}
	s.Theme = theme.ParseName(string(s.Theme))
}

// EffectiveDataDir resolves the data directory: an explicit override (CLI
// flag or COOKBOOK_DATA_DIR) wins over the persisted value, which wins over
// DefaultDataDir.
func EffectiveDataDir(override string, cfg Settings) string {
	if v := strings.TrimSpace(override); v != "" {
		return v
	}
	if v := strings.TrimSpace(cfg.DataDir); v != "" {
		return v
	}
	return DefaultDataDir()
}

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/atomicstack/cookbook-tui/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// CLI is the command line grammar. Defaults come from the environment
// through kong variables so LoadArgs stays independent of os.Environ.
type CLI struct {
	DataDir  string `name:"data-dir" help:"Data directory holding recipes, ingredients, pantry and kb (overrides the saved setting)." default:"${data_dir}"`
	Settings string `name:"settings" help:"Path to the user settings file." default:"${settings}"`
	Width    int    `name:"width" help:"Viewport width in cells (0 uses terminal width)." default:"${width}"`
	Height   int    `name:"height" help:"Viewport height in rows (0 uses terminal height)." default:"${height}"`
	Footer   bool   `name:"footer" help:"Show the key help row." default:"${footer}" negatable:""`
	Trace    bool   `name:"trace" help:"Enable verbose JSON trace logging." default:"${trace}"`
	LogFile  string `name:"log-file" help:"Path to the log file." default:"${log_file}"`
}

const (
	envDataDir  = "COOKBOOK_DATA_DIR"
	envSettings = "COOKBOOK_SETTINGS"
	envWidth    = "COOKBOOK_WIDTH"
	envHeight   = "COOKBOOK_HEIGHT"
	envFooter   = "COOKBOOK_FOOTER"
	envTrace    = "COOKBOOK_TRACE"
	envLogFile  = "COOKBOOK_LOG_FILE"
)

// ErrHelp is returned by LoadArgs when usage was requested.
var ErrHelp = errors.New("help requested")

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return load(os.Args[1:], os.Environ(), kong.Writers(os.Stdout, os.Stderr))
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	return load(args, environ, kong.Writers(io.Discard, io.Discard))
}

func load(args []string, environ []string, writers kong.Option) (Config, error) {
	env := parseEnv(environ)
	helped := false

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("cookbook-tui"),
		kong.Description("Terminal cookbook: recipes, pantry and knowledge base."),
		kong.Vars{
			"data_dir": envOrDefault(env, envDataDir, ""),
			"settings": envOrDefault(env, envSettings, ""),
			"width":    strconv.Itoa(envOrInt(env, envWidth, 0)),
			"height":   strconv.Itoa(envOrInt(env, envHeight, 0)),
			"footer":   strconv.FormatBool(envOrBool(env, envFooter, true)),
			"trace":    strconv.FormatBool(envOrBool(env, envTrace, false)),
			"log_file": envOrDefault(env, envLogFile, ""),
		},
		writers,
		kong.Exit(func(int) { helped = true }),
	)
	if err != nil {
		return Config{}, err
	}
	if _, err := parser.Parse(args); err != nil {
		if helped {
			return Config{}, ErrHelp
		}
		return Config{}, err
	}
	if helped {
		return Config{}, ErrHelp
	}

	if cli.Width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", cli.Width)
	}
	if cli.Height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", cli.Height)
	}

	cfg := Config{
		App: app.Config{
			DataDir:      strings.TrimSpace(cli.DataDir),
			SettingsPath: strings.TrimSpace(cli.Settings),
			Width:        cli.Width,
			Height:       cli.Height,
			ShowFooter:   cli.Footer,
		},
		Logging: Logging{
			FilePath: cli.LogFile,
			Trace:    cli.Trace,
		},
		Flags: map[string]string{
			"dataDir":  cli.DataDir,
			"settings": cli.Settings,
			"width":    strconv.Itoa(cli.Width),
			"height":   strconv.Itoa(cli.Height),
			"footer":   strconv.FormatBool(cli.Footer),
			"trace":    strconv.FormatBool(cli.Trace),
			"logFile":  cli.LogFile,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects a data directory that exists but is not a directory.
func Validate(cfg Config) error {
	if cfg.App.DataDir == "" {
		return nil
	}
	info, err := os.Stat(cfg.App.DataDir)
	if err != nil {
		// Missing directories surface as a load failure inside the UI.
		return nil
	}
	if !info.IsDir() {
		return fmt.Errorf("data dir %s is not a directory", cfg.App.DataDir)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/atomicstack/cookbook-tui/internal/app"
	"github.com/atomicstack/cookbook-tui/internal/config"
	"github.com/atomicstack/cookbook-tui/internal/logging"
	"github.com/atomicstack/cookbook-tui/internal/logging/events"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	terminal := probeTerminal()
	events.App.Start(startupPayload(cfg, terminal))
	if !terminal.Interactive() {
		fmt.Fprintln(os.Stderr, "Error: cookbook-tui must run in an interactive terminal")
		os.Exit(1)
	}
	if w, h, ok := terminal.Size(); ok {
		if cfg.App.Width == 0 {
			cfg.App.Width = w
		}
		if cfg.App.Height == 0 {
			cfg.App.Height = h
		}
	}

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupPayload is the trace entry written once per run.
func startupPayload(cfg config.Config, terminal terminalReport) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"terminal": terminal,
		"logPath":  logging.Path(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type terminalReport struct {
	Streams []streamInfo `json:"streams"`
}

type streamInfo struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Cygwin   bool   `json:"cygwin,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// Interactive reports whether stdin and stdout are both terminals.
func (r terminalReport) Interactive() bool {
	found := 0
	for _, s := range r.Streams {
		if (s.Name == "stdin" || s.Name == "stdout") && (s.Terminal || s.Cygwin) {
			found++
		}
	}
	return found == 2
}

// Size returns the first known terminal size.
func (r terminalReport) Size() (int, int, bool) {
	for _, s := range r.Streams {
		if s.Width > 0 && s.Height > 0 {
			return s.Width, s.Height, true
		}
	}
	return 0, 0, false
}

func probeTerminal() terminalReport {
	return probeStreams(map[string]*os.File{
		"stdin":  os.Stdin,
		"stdout": os.Stdout,
		"stderr": os.Stderr,
	})
}

func probeStreams(files map[string]*os.File) terminalReport {
	var report terminalReport
	for _, name := range []string{"stdin", "stdout", "stderr"} {
		f, ok := files[name]
		if !ok || f == nil {
			continue
		}
		fd := f.Fd()
		info := streamInfo{
			Name:     name,
			Terminal: isatty.IsTerminal(fd),
			Cygwin:   isatty.IsCygwinTerminal(fd),
		}
		if info.Terminal {
			if w, h, err := term.GetSize(int(fd)); err == nil {
				info.Width, info.Height = w, h
			}
		}
		report.Streams = append(report.Streams, info)
	}
	return report
}

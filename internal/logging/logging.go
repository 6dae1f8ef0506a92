// Package logging appends plain lines and JSON trace entries to a single
// log file. The terminal belongs to the UI, so nothing is written to stdout.
package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "cookbook-tui.log"

type sink struct {
	mu    sync.Mutex
	path  string
	trace bool
}

var out = &sink{path: defaultLogFile}

// withFile opens the log for appending and hands it to fn under the lock.
func (s *sink) withFile(fn func(*os.File) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()
	if err := fn(f); err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
	}
}

// Error writes err to the log. Nil errors are ignored.
func Error(err error) {
	if err == nil {
		return
	}
	line("ERROR " + err.Error())
}

// Info writes a formatted informational line.
func Info(format string, args ...interface{}) {
	line(fmt.Sprintf(format, args...))
}

func line(text string) {
	out.withFile(func(f *os.File) error {
		log.New(f, "", log.LstdFlags).Println(text)
		return nil
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	out.mu.Lock()
	out.trace = enabled
	out.mu.Unlock()
}

// TraceEnabled reports whether structured tracing is on.
func TraceEnabled() bool {
	out.mu.Lock()
	defer out.mu.Unlock()
	return out.trace
}

type traceEntry struct {
	Time    time.Time   `json:"time"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Trace appends one JSON line when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	entry := traceEntry{Time: time.Now().UTC(), Event: event, Payload: payload}
	out.withFile(func(f *os.File) error {
		return json.NewEncoder(f).Encode(entry)
	})
}

// Configure sets the log destination. An empty path selects the default
// file in the working directory; missing parent directories are created.
func Configure(path string) {
	path = strings.TrimSpace(path)
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
			path = ""
		}
	}
	if path == "" {
		path = defaultLogFile
	}
	out.mu.Lock()
	out.path = path
	out.mu.Unlock()
}

// Path returns the active log destination.
func Path() string {
	out.mu.Lock()
	defer out.mu.Unlock()
	return out.path
}

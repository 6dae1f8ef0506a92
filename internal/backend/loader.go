// Package backend runs slow data-directory loads off the update goroutine.
//
// Start hands back a Pending handle and a tea.Cmd. The command is the worker:
// it opens the engine, parks the result on the handle, then returns a Ready
// message so completion is queued behind every message sent before it.
package backend

import (
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/cookbook-tui/internal/engine"
	"github.com/atomicstack/cookbook-tui/internal/logging/events"
)

// OpenFunc builds an engine for a data directory.
type OpenFunc func(dir string) (engine.Store, error)

// Result is the one-shot outcome of a load.
type Result struct {
	Engine engine.Store
	Err    error
}

// Ready is the completion message for the load identified by LoadID.
type Ready struct {
	Dir    string
	LoadID uint64
}

// Pending is the receiving end of one outstanding load.
type Pending struct {
	ID  uint64
	Dir string
	ch  chan Result
}

// Take returns the result without blocking. ok is false when the worker has
// not delivered yet or the result was already taken.
func (p *Pending) Take() (Result, bool) {
	if p == nil {
		return Result{}, false
	}
	select {
	case res := <-p.ch:
		return res, true
	default:
		return Result{}, false
	}
}

// Loader starts background loads. The zero value opens directories with
// engine.Open.
type Loader struct {
	Open OpenFunc
	next atomic.Uint64
}

// NewLoader returns a loader using open, or engine.Open when nil.
func NewLoader(open OpenFunc) *Loader {
	return &Loader{Open: open}
}

// OpenDir is the default OpenFunc.
func OpenDir(dir string) (engine.Store, error) {
	m, err := engine.Open(dir)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Start allocates a handle for dir and returns the worker command.
func (l *Loader) Start(dir string) (*Pending, tea.Cmd) {
	open := l.Open
	if open == nil {
		open = OpenDir
	}
	p := &Pending{ID: l.next.Add(1), Dir: dir, ch: make(chan Result, 1)}
	events.Load.Start(p.ID, dir)
	cmd := func() tea.Msg {
		store, err := open(dir)
		if err != nil {
			err = fmt.Errorf("could not load data from %s: %w", dir, err)
			store = nil
		}
		events.Load.Done(p.ID, dir, err)
		p.ch <- Result{Engine: store, Err: err}
		return Ready{Dir: dir, LoadID: p.ID}
	}
	return p, cmd
}

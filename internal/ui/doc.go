// Package ui contains the Bubble Tea program for the cookbook. Model owns
// message orchestration; the application state and its transition function
// live in internal/state and internal/data/dispatcher.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Domain events
//     (internal/event) and key presses translated into domain events are
//     handed to the dispatcher, which mutates state.App and marks stale
//     regions in App.Dirty.
//   - finishUpdate then runs the reconciler (reconcile.go) exactly once: it
//     takes each marked list region, rebuilds its rows from the engine,
//     re-applies the highlight by identifier, rebuilds detail regions that
//     are marked or visible, and finally drains pending dialog requests.
//   - Dialogs (internal/ui/form) answer with save events through
//     event.Enqueue, so a submission is just another queued message.
//
// Background loads:
//   - The dispatcher starts loads through backend.Loader; the returned
//     tea.Cmd is the worker and its completion message re-enters Update like
//     any other event. A spinner runs while App.Pending is set.
//
// The Harness drives a Model synchronously for tests without timers.
package ui

package events

import "github.com/atomicstack/cookbook-tui/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Theme(theme string) {
	logging.Trace("app.theme", map[string]interface{}{"theme": theme})
}

func (AppTracer) Toast(text string) {
	logging.Trace("app.toast", map[string]interface{}{"text": text})
}

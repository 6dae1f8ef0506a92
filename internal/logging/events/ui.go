package events

import "github.com/atomicstack/cookbook-tui/internal/logging"

type UITracer struct{}

type ReconcileTracer struct{}

type EventTracer struct{}

var (
	UI        = UITracer{}
	Reconcile = ReconcileTracer{}
	Event     = EventTracer{}
)

func (UITracer) Tab(tab string) {
	logging.Trace("ui.tab", map[string]interface{}{"tab": tab})
}

func (UITracer) Filter(field string, value interface{}) {
	logging.Trace("ui.filter", map[string]interface{}{"field": field, "value": value})
}

func (UITracer) Focus(field string) {
	logging.Trace("ui.focus", map[string]interface{}{"field": field})
}

func (ReconcileTracer) Region(region string, rows int) {
	logging.Trace("reconcile.region", map[string]interface{}{"region": region, "rows": rows})
}

func (EventTracer) Handle(msgType string) {
	logging.Trace("event.handle", map[string]interface{}{"msg": msgType})
}

func (EventTracer) Ignored(msgType string) {
	logging.Trace("event.ignored", map[string]interface{}{"msg": msgType})
}

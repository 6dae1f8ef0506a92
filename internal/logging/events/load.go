package events

import "github.com/atomicstack/cookbook-tui/internal/logging"

type LoadTracer struct{}

var Load = LoadTracer{}

func (LoadTracer) Start(id uint64, dir string) {
	logging.Trace("load.start", map[string]interface{}{"id": id, "dir": dir})
}

func (LoadTracer) Done(id uint64, dir string, err error) {
	payload := map[string]interface{}{"id": id, "dir": dir}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("load.done", payload)
}

// Stale records a completion event that no longer matches the pending handle.
func (LoadTracer) Stale(id uint64, dir string) {
	logging.Trace("load.stale", map[string]interface{}{"id": id, "dir": dir})
}

func (LoadTracer) Installed(dir string) {
	logging.Trace("load.installed", map[string]interface{}{"dir": dir})
}

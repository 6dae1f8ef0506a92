package events

import "github.com/atomicstack/cookbook-tui/internal/logging"

// EntityTracer emits trace entries for one entity kind.
type EntityTracer struct {
	kind string
}

var (
	Recipe     = EntityTracer{kind: "recipe"}
	Ingredient = EntityTracer{kind: "ingredient"}
	KB         = EntityTracer{kind: "kb"}
)

func (t EntityTracer) Search(query string) {
	logging.Trace(t.kind+".search", map[string]interface{}{"query": query})
}

func (t EntityTracer) Select(id string) {
	logging.Trace(t.kind+".select", map[string]interface{}{"id": id})
}

func (t EntityTracer) Save(original, id string) {
	logging.Trace(t.kind+".save", map[string]interface{}{"original": original, "id": id})
}

// Submit records a dialog handing its save event to the queue.
func (t EntityTracer) Submit(original, id string) {
	logging.Trace(t.kind+".dialog.submit", map[string]interface{}{"original": original, "id": id})
}

func (t EntityTracer) Delete(id string) {
	logging.Trace(t.kind+".delete", map[string]interface{}{"id": id})
}

func (t EntityTracer) Error(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace(t.kind+"."+op+".error", map[string]interface{}{"error": err.Error()})
}

func (t EntityTracer) DialogOpen(id string) {
	logging.Trace(t.kind+".dialog.open", map[string]interface{}{"id": id})
}

// DialogDrop records an edit request whose target vanished before drain.
func (t EntityTracer) DialogDrop(id string) {
	logging.Trace(t.kind+".dialog.drop", map[string]interface{}{"id": id})
}

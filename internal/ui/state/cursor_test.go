package state

import "testing"

func newTestList(ids ...string) *List {
	rows := make([]Row, len(ids))
	for i, id := range ids {
		rows[i] = Row{ID: id, Cells: []string{id}}
	}
	l := &List{}
	l.SetRows(rows, "empty")
	return l
}

func TestHomeAndEnd(t *testing.T) {
	l := newTestList("a", "b", "c")
	if !l.End() || l.Cursor != 2 {
		t.Fatalf("expected cursor at end, got %d", l.Cursor)
	}
	if !l.Home() || l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
	empty := newTestList()
	if empty.Home() || empty.End() {
		t.Fatalf("expected no movement for empty list")
	}
}

func TestPaging(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	if !l.PageDown(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	l.PageDown(10)
	if l.Cursor != 4 {
		t.Fatalf("expected clamp to 4, got %d", l.Cursor)
	}
	l.PageUp(3)
	if l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisible(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}
	l.Cursor = 1
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset 1, got %d", l.ViewportOffset)
	}
	rows, first := l.Visible(2)
	if first != 1 || len(rows) != 2 || rows[0].ID != "b" {
		t.Fatalf("unexpected visible window %v from %d", rows, first)
	}
}

func TestHighlightByID(t *testing.T) {
	l := newTestList("a", "b", "c")
	id := "c"
	if !l.Highlight(&id) || l.Cursor != 2 {
		t.Fatalf("expected highlight on c")
	}
	l.SetRows([]Row{{ID: "c"}, {ID: "a"}}, "empty")
	if !l.Highlight(&id) || l.Cursor != 0 {
		t.Fatalf("highlight must follow the id after a rebuild, cursor=%d", l.Cursor)
	}
	missing := "z"
	if l.Highlight(&missing) || l.Highlight(nil) {
		t.Fatalf("unknown or nil ids must not highlight")
	}
}

func TestPlaceholderOnlyWhenEmpty(t *testing.T) {
	l := newTestList("a")
	if l.Placeholder != "" || l.Empty() {
		t.Fatalf("non-empty list should not carry a placeholder")
	}
	l.SetRows(nil, "No recipes found")
	if !l.Empty() || l.Placeholder != "No recipes found" || l.Cursor != 0 {
		t.Fatalf("unexpected empty state %+v", l)
	}
	if _, ok := l.Current(); ok {
		t.Fatalf("empty list has no current row")
	}
}

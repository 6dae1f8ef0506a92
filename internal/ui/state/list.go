// Package state tracks per-region view state: the rows a list region last
// rendered, the cursor over them and the scroll offset.
package state

// Row is one rendered list entry. ID is the entity identifier the
// application state selects by; Cells are the display columns.
type Row struct {
	ID    string
	Cells []string
}

// List is the view state of one list region.
type List struct {
	Rows           []Row
	Placeholder    string
	Cursor         int
	ViewportOffset int
}

// SetRows replaces the rows. When rows is empty, placeholder is shown in
// their place. The cursor is clamped; Highlight re-targets it by ID.
func (l *List) SetRows(rows []Row, placeholder string) {
	l.Rows = append([]Row(nil), rows...)
	l.Placeholder = ""
	if len(l.Rows) == 0 {
		l.Placeholder = placeholder
	}
	l.clamp()
}

// IndexOf returns the row index for id, or -1.
func (l *List) IndexOf(id string) int {
	for i, row := range l.Rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

// Highlight moves the cursor onto id and reports whether it was found.
// A nil id leaves the cursor where it is.
func (l *List) Highlight(id *string) bool {
	if id == nil {
		return false
	}
	idx := l.IndexOf(*id)
	if idx < 0 {
		return false
	}
	l.Cursor = idx
	return true
}

// Current returns the row under the cursor.
func (l *List) Current() (Row, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Rows) {
		return Row{}, false
	}
	return l.Rows[l.Cursor], true
}

// Empty reports whether the list shows its placeholder.
func (l *List) Empty() bool {
	return len(l.Rows) == 0
}

func (l *List) clamp() {
	if len(l.Rows) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Rows) {
		l.Cursor = len(l.Rows) - 1
	}
	if l.ViewportOffset > len(l.Rows)-1 {
		l.ViewportOffset = 0
	}
}

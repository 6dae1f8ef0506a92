package state

// Move shifts the cursor by delta, clamped to the rows. It reports whether
// the cursor moved.
func (l *List) Move(delta int) bool {
	if len(l.Rows) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor += delta
	l.clamp()
	return l.Cursor != old
}

// Home moves the cursor to the first row.
func (l *List) Home() bool {
	return l.Move(-len(l.Rows))
}

// End moves the cursor to the last row.
func (l *List) End() bool {
	return l.Move(len(l.Rows))
}

// PageUp moves the cursor up by one page of maxVisible rows.
func (l *List) PageUp(maxVisible int) bool {
	return l.Move(-l.pageSize(maxVisible))
}

// PageDown moves the cursor down by one page of maxVisible rows.
func (l *List) PageDown(maxVisible int) bool {
	return l.Move(l.pageSize(maxVisible))
}

func (l *List) pageSize(maxVisible int) int {
	if maxVisible <= 0 || maxVisible > len(l.Rows) {
		return len(l.Rows)
	}
	return maxVisible
}

// EnsureCursorVisible adjusts the viewport offset so the cursor row is
// inside a window of maxVisible rows.
func (l *List) EnsureCursorVisible(maxVisible int) {
	l.clamp()
	if len(l.Rows) == 0 || maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Rows) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if l.Cursor > l.ViewportOffset+maxVisible-1 {
		l.ViewportOffset = l.Cursor - maxVisible + 1
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}

// Visible returns the slice of rows inside the viewport and the index of
// the first one.
func (l *List) Visible(maxVisible int) ([]Row, int) {
	l.EnsureCursorVisible(maxVisible)
	if maxVisible <= 0 || maxVisible >= len(l.Rows) {
		return l.Rows, 0
	}
	end := l.ViewportOffset + maxVisible
	if end > len(l.Rows) {
		end = len(l.Rows)
	}
	return l.Rows[l.ViewportOffset:end], l.ViewportOffset
}

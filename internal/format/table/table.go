// Package table lays out list rows as aligned columns.
package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const gap = "  "

// Format pads rows to the widest cell in each column. Cells may carry ANSI
// styling. When width is positive every line is truncated to it with an
// ellipsis. Rows shorter than the widest row are padded with empty cells.
func Format(rows [][]string, alignments []Alignment, width int) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := lipgloss.Width(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := 0; c < colCount; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString(gap)
			}
			pad := strings.Repeat(" ", widths[c]-lipgloss.Width(cell))
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if c < colCount-1 {
					b.WriteString(pad)
				}
			}
		}
		line := strings.TrimRight(b.String(), " ")
		if width > 0 && lipgloss.Width(line) > width {
			line = truncate.StringWithTail(line, uint(width), "…")
		}
		out[i] = line
	}
	return out
}

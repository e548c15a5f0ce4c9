// Package render draws a hall as a fixed-layout text diagram.
//
// The layout is consumed verbatim by the menu session and by scripts that
// parse its output, so every space is significant:
//
//	        SCREEN
//	--------------------
//	E  .   .   .   .   .
//	...
//	A  .   #   O   .   .
//	   1   2   3   4   5
//
// Each seat cell and each ruler number is followed by padding to four
// columns, including after the last seat.
package render

import (
	"strconv"
	"strings"

	"github.com/danieljhkim/gicseat/internal/seating"
)

const screenTitle = "SCREEN"

// Seat markers.
const (
	MarkEmpty       = '.'
	MarkConfirmed   = '#'
	MarkHighlighted = 'O'
	MarkUnknown     = '?'
)

// SeatMap renders the working plan: '.' for empty, '#' for confirmed and
// 'O' for highlighted seats. It does not modify w.
func SeatMap(w *seating.WorkingPlan) string {
	rows, cols := w.Rows(), w.SeatsPerRow()
	var b strings.Builder

	screenLength := cols * 4
	padding := (screenLength - len(screenTitle)) / 2
	if padding < 0 {
		padding = 0
	}
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(screenTitle)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", screenLength))
	b.WriteByte('\n')

	for i, row := range w.Cells() {
		b.WriteByte(seating.RowLabel(rows, i))
		b.WriteString("  ")
		for _, cell := range row {
			b.WriteRune(Marker(cell))
			b.WriteString("   ")
		}
		b.WriteByte('\n')
	}

	b.WriteString("   ")
	for j := 1; j <= cols; j++ {
		b.WriteString(strconv.Itoa(j))
		if j < 10 {
			b.WriteString("   ")
		} else {
			b.WriteString("  ")
		}
	}
	b.WriteByte('\n')

	return b.String()
}

// Marker returns the character drawn for a cell.
func Marker(c seating.Cell) rune {
	switch c {
	case seating.CellEmpty:
		return MarkEmpty
	case seating.CellConfirmed:
		return MarkConfirmed
	case seating.CellHighlighted:
		return MarkHighlighted
	default:
		return MarkUnknown
	}
}

package seating

import "fmt"

// Cell is the state of a seat in a WorkingPlan.
type Cell uint8

const (
	// CellEmpty is an available seat.
	CellEmpty Cell = iota

	// CellConfirmed is a seat held by a confirmed booking.
	CellConfirmed

	// CellHighlighted is a seat under consideration: part of a pending
	// plan or of a booking being inspected.
	CellHighlighted
)

// String returns the cell state name.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellConfirmed:
		return "confirmed"
	case CellHighlighted:
		return "highlighted"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// WorkingPlan is a scratch copy of a Grid used to preview selections.
// It is never the source of truth for availability.
type WorkingPlan struct {
	rows        int
	seatsPerRow int
	cells       [][]Cell
}

// NewWorkingPlan creates a working copy seeded from g.
func NewWorkingPlan(g *Grid) *WorkingPlan {
	cells := make([][]Cell, g.rows)
	for i := range cells {
		cells[i] = make([]Cell, g.seatsPerRow)
	}
	w := &WorkingPlan{
		rows:        g.rows,
		seatsPerRow: g.seatsPerRow,
		cells:       cells,
	}
	w.Reset(g)
	return w
}

// Reset discards every highlight and copies the committed state of g.
func (w *WorkingPlan) Reset(g *Grid) {
	for i := 0; i < w.rows; i++ {
		for j := 0; j < w.seatsPerRow; j++ {
			if g.cells[i][j] == Occupied {
				w.cells[i][j] = CellConfirmed
			} else {
				w.cells[i][j] = CellEmpty
			}
		}
	}
}

// Rows returns the number of rows.
func (w *WorkingPlan) Rows() int { return w.rows }

// SeatsPerRow returns the number of seats in each row.
func (w *WorkingPlan) SeatsPerRow() int { return w.seatsPerRow }

// At returns the cell at c. The coordinate must lie inside the hall.
func (w *WorkingPlan) At(c Coord) Cell {
	return w.cells[c.Row][c.Col]
}

// Set overwrites the cell at c. The coordinate must lie inside the hall.
func (w *WorkingPlan) Set(c Coord, cell Cell) {
	w.cells[c.Row][c.Col] = cell
}

// Mark sets every coordinate to cell.
func (w *WorkingPlan) Mark(coords []Coord, cell Cell) {
	for _, c := range coords {
		w.cells[c.Row][c.Col] = cell
	}
}

// EmptyInRow counts the CellEmpty seats in a row.
func (w *WorkingPlan) EmptyInRow(row int) int {
	n := 0
	for _, c := range w.cells[row] {
		if c == CellEmpty {
			n++
		}
	}
	return n
}

// Cells returns a copy of the cell matrix.
func (w *WorkingPlan) Cells() [][]Cell {
	out := make([][]Cell, w.rows)
	for i := range w.cells {
		out[i] = append([]Cell(nil), w.cells[i]...)
	}
	return out
}

package planner

import (
	"fmt"

	"github.com/danieljhkim/gicseat/internal/seating"
)

// Place chooses req.Count seats and marks them Highlighted in work.
//
// work must be a fresh reset of committed. The default starting column is
// centered using committed, the fill itself reads work. committed is never
// modified.
func Place(work *seating.WorkingPlan, committed *seating.Grid, req Request) (*Placement, error) {
	if req.Count <= 0 {
		return nil, fmt.Errorf("%w: seats to book must be positive, got %d", seating.ErrInvalidRequest, req.Count)
	}
	if req.Count > committed.Available() || req.Count > emptyCells(work) {
		return nil, fmt.Errorf("%w: requested %d, available %d",
			seating.ErrInsufficientAvailability, req.Count, committed.Available())
	}

	var placement *Placement
	if req.Anchor == "" {
		placement = NewPlacement(DefaultStart(committed, req.Count), false)
	} else {
		start, err := seating.ParseLabel(req.Anchor, committed.Rows(), committed.SeatsPerRow())
		if err != nil {
			return nil, err
		}
		placement = NewPlacement(start, true)
	}

	fill(work, placement, req.Count)
	return placement, nil
}

// DefaultStart returns where an unanchored request for count seats begins:
// the row nearest the screen, centered over its empty seats.
func DefaultStart(g *seating.Grid, count int) seating.Coord {
	row := g.Rows() - 1
	return seating.Coord{Row: row, Col: centerCol(g.EmptyInRow(row), count)}
}

// centerCol returns the column that centers remaining seats over a row with
// empty free seats, or 0 when the row cannot hold them all.
func centerCol(empty, remaining int) int {
	if remaining < empty {
		return empty/2 - remaining/2
	}
	return 0
}

// fill walks the hall from p.Start, taking empty seats until count are chosen.
// The caller guarantees work holds at least count empty cells.
func fill(work *seating.WorkingPlan, p *Placement, count int) {
	cursor := p.Start
	remaining := count
	for remaining > 0 {
		if work.At(cursor) == seating.CellEmpty {
			work.Set(cursor, seating.CellHighlighted)
			p.AddSeat(cursor)
			remaining--
			if remaining == 0 {
				break
			}
		}
		cursor = advance(work, cursor, remaining)
	}
}

// advance moves the cursor one seat right, or to the next row back from the
// screen when the current row is exhausted. Past row 0 it wraps to the
// front row.
func advance(work *seating.WorkingPlan, c seating.Coord, remaining int) seating.Coord {
	if c.Col < work.SeatsPerRow()-1 {
		return seating.Coord{Row: c.Row, Col: c.Col + 1}
	}

	row := c.Row - 1
	if row < 0 {
		row = work.Rows() - 1
	}
	return seating.Coord{Row: row, Col: centerCol(work.EmptyInRow(row), remaining)}
}

func emptyCells(work *seating.WorkingPlan) int {
	n := 0
	for row := 0; row < work.Rows(); row++ {
		n += work.EmptyInRow(row)
	}
	return n
}

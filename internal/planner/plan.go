package planner

import "github.com/danieljhkim/gicseat/internal/seating"

// Request describes the seats to place.
type Request struct {
	// Count is the number of seats wanted
	Count int

	// Anchor is an optional seat label to start from (empty for default placement)
	Anchor string
}

// Placement is the outcome of planning a request.
type Placement struct {
	// Start is the seat the fill began at
	Start seating.Coord

	// Anchored is true when Start came from the request's anchor label
	Anchored bool

	// Seats is the ordered list of chosen seats
	Seats []seating.Coord
}

// NewPlacement creates an empty Placement starting at start.
func NewPlacement(start seating.Coord, anchored bool) *Placement {
	return &Placement{
		Start:    start,
		Anchored: anchored,
		Seats:    []seating.Coord{},
	}
}

// Len returns the number of chosen seats.
func (p *Placement) Len() int {
	return len(p.Seats)
}

// AddSeat appends a chosen seat.
func (p *Placement) AddSeat(c seating.Coord) {
	p.Seats = append(p.Seats, c)
}

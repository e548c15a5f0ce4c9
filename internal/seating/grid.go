package seating

import "fmt"

// Hall dimension limits.
const (
	MinRows        = 1
	MaxRows        = 26
	MinSeatsPerRow = 1
	MaxSeatsPerRow = 50
)

// SeatState is the committed state of a seat.
type SeatState uint8

const (
	// Empty means the seat is available.
	Empty SeatState = iota

	// Occupied means the seat belongs to a confirmed booking.
	Occupied
)

// String returns the state name.
func (s SeatState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Occupied:
		return "occupied"
	default:
		return fmt.Sprintf("SeatState(%d)", uint8(s))
	}
}

// Coord addresses a seat by row and column index.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats the coordinate as (row,col).
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is the committed seating state of a hall.
type Grid struct {
	rows        int
	seatsPerRow int
	cells       [][]SeatState
	available   int
}

// NewGrid creates an empty hall with the given dimensions.
// Returns ErrConfiguration if rows is outside [1,26] or seatsPerRow is
// outside [1,50].
func NewGrid(rows, seatsPerRow int) (*Grid, error) {
	if err := ValidateDimensions(rows, seatsPerRow); err != nil {
		return nil, err
	}

	cells := make([][]SeatState, rows)
	for i := range cells {
		cells[i] = make([]SeatState, seatsPerRow)
	}

	return &Grid{
		rows:        rows,
		seatsPerRow: seatsPerRow,
		cells:       cells,
		available:   rows * seatsPerRow,
	}, nil
}

// ValidateDimensions checks rows and seatsPerRow against the hall limits.
func ValidateDimensions(rows, seatsPerRow int) error {
	if rows < MinRows || rows > MaxRows {
		return fmt.Errorf("%w: rows must be between %d and %d, got %d", ErrConfiguration, MinRows, MaxRows, rows)
	}
	if seatsPerRow < MinSeatsPerRow || seatsPerRow > MaxSeatsPerRow {
		return fmt.Errorf("%w: seats per row must be between %d and %d, got %d",
			ErrConfiguration, MinSeatsPerRow, MaxSeatsPerRow, seatsPerRow)
	}
	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// SeatsPerRow returns the number of seats in each row.
func (g *Grid) SeatsPerRow() int { return g.seatsPerRow }

// Capacity returns the total number of seats.
func (g *Grid) Capacity() int { return g.rows * g.seatsPerRow }

// Available returns the number of empty seats.
func (g *Grid) Available() int { return g.available }

// Contains reports whether c lies inside the hall.
func (g *Grid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.seatsPerRow
}

// State returns the committed state of the seat at c.
// The coordinate must lie inside the hall.
func (g *Grid) State(c Coord) SeatState {
	return g.cells[c.Row][c.Col]
}

// EmptyInRow counts the empty seats in a row.
func (g *Grid) EmptyInRow(row int) int {
	n := 0
	for _, s := range g.cells[row] {
		if s == Empty {
			n++
		}
	}
	return n
}

// Occupy marks every coordinate as occupied.
// All coordinates are bounds-checked before any cell changes; the first
// coordinate outside the hall aborts the call with ErrOutOfBounds.
func (g *Grid) Occupy(coords []Coord) error {
	if err := g.checkBounds(coords); err != nil {
		return err
	}
	for _, c := range coords {
		g.cells[c.Row][c.Col] = Occupied
	}
	g.available -= len(coords)
	return nil
}

// Free marks every coordinate as empty again.
func (g *Grid) Free(coords []Coord) error {
	if err := g.checkBounds(coords); err != nil {
		return err
	}
	for _, c := range coords {
		g.cells[c.Row][c.Col] = Empty
	}
	g.available += len(coords)
	return nil
}

func (g *Grid) checkBounds(coords []Coord) error {
	for _, c := range coords {
		if !g.Contains(c) {
			return fmt.Errorf("%w: invalid coordinate %s for %dx%d hall", ErrOutOfBounds, c, g.rows, g.seatsPerRow)
		}
	}
	return nil
}

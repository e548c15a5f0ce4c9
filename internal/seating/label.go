package seating

import (
	"fmt"
	"regexp"
	"strconv"
)

// labelPattern accepts a row letter followed by a seat number 1-50,
// written either bare (B3, B12) or zero-padded below ten (B03).
var labelPattern = regexp.MustCompile(`^[A-Z]0[1-9]$|^[A-Z][1-9]$|^[A-Z][1-4]\d$|^[A-Z]50$`)

// ValidLabel reports whether label matches the seat label grammar.
// It does not check the label against any particular hall.
func ValidLabel(label string) bool {
	return labelPattern.MatchString(label)
}

// ParseLabel decodes a seat label such as "B03" into a coordinate for a
// hall of the given size.
//
// Returns ErrInvalidSeatLabel if label does not match the grammar, and
// ErrOutOfBounds if the row letter or seat number lies beyond the hall.
func ParseLabel(label string, rows, seatsPerRow int) (Coord, error) {
	if !ValidLabel(label) {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidSeatLabel, label)
	}

	num, err := strconv.Atoi(label[1:])
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidSeatLabel, label)
	}

	c := Coord{
		Row: rows - 1 - int(label[0]-'A'),
		Col: num - 1,
	}
	if c.Row < 0 || c.Col >= seatsPerRow {
		return Coord{}, fmt.Errorf("%w: designated seat exceeded boundaries: %s", ErrOutOfBounds, label)
	}
	return c, nil
}

// RowLabel returns the display letter of a row index.
func RowLabel(rows, row int) byte {
	return byte('A' + (rows - 1 - row))
}

// Label formats c as a seat label, e.g. "B03".
func (c Coord) Label(rows int) string {
	return fmt.Sprintf("%c%02d", RowLabel(rows, c.Row), c.Col+1)
}

// Labels formats every coordinate with Label.
func Labels(coords []Coord, rows int) []string {
	out := make([]string, len(coords))
	for i, c := range coords {
		out[i] = c.Label(rows)
	}
	return out
}

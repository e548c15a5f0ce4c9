package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/gicseat/internal/seating"
)

// newHall returns a 5x5 hall with the given seats already occupied.
func newHall(t *testing.T, occupied ...seating.Coord) (*seating.Grid, *seating.WorkingPlan) {
	t.Helper()
	g, err := seating.NewGrid(5, 5)
	require.NoError(t, err)
	require.NoError(t, g.Occupy(occupied))
	return g, seating.NewWorkingPlan(g)
}

// cellMatrix renders work as 0 (empty), 1 (confirmed), 2 (highlighted).
func cellMatrix(work *seating.WorkingPlan) [][]int {
	out := make([][]int, work.Rows())
	for i, row := range work.Cells() {
		out[i] = make([]int, len(row))
		for j, c := range row {
			out[i][j] = int(c)
		}
	}
	return out
}

func TestPlace_DefaultCentersInFrontRow(t *testing.T) {
	g, work := newHall(t)

	p, err := Place(work, g, Request{Count: 3})
	require.NoError(t, err)

	assert.False(t, p.Anchored)
	assert.Equal(t, []seating.Coord{{Row: 4, Col: 1}, {Row: 4, Col: 2}, {Row: 4, Col: 3}}, p.Seats)
	assert.Equal(t, [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 2, 2, 2, 0},
	}, cellMatrix(work))
	assert.Equal(t, 25, g.Available(), "planning must not touch the committed grid")
}

func TestPlace_DefaultOverflowsToNextRow(t *testing.T) {
	g, work := newHall(t)

	p, err := Place(work, g, Request{Count: 10})
	require.NoError(t, err)

	assert.Equal(t, 10, p.Len())
	assert.Equal(t, [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{2, 2, 2, 2, 2},
		{2, 2, 2, 2, 2},
	}, cellMatrix(work))
}

func TestPlace_DefaultOverflowSkipsOccupied(t *testing.T) {
	g, work := newHall(t, seating.Coord{Row: 4, Col: 1}, seating.Coord{Row: 4, Col: 2}, seating.Coord{Row: 4, Col: 3})

	_, err := Place(work, g, Request{Count: 10})
	require.NoError(t, err)

	assert.Equal(t, [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 2, 2, 2, 0},
		{2, 2, 2, 2, 2},
		{2, 1, 1, 1, 2},
	}, cellMatrix(work))
}

func TestPlace_Anchored(t *testing.T) {
	g, work := newHall(t)

	p, err := Place(work, g, Request{Count: 3, Anchor: "B03"})
	require.NoError(t, err)

	assert.True(t, p.Anchored)
	assert.Equal(t, seating.Coord{Row: 3, Col: 2}, p.Start)
	assert.Equal(t, []seating.Coord{{Row: 3, Col: 2}, {Row: 3, Col: 3}, {Row: 3, Col: 4}}, p.Seats)
}

func TestPlace_AnchoredSpillsBackAndRecenters(t *testing.T) {
	g, work := newHall(t, seating.Coord{Row: 3, Col: 1}, seating.Coord{Row: 3, Col: 2}, seating.Coord{Row: 3, Col: 3})

	p, err := Place(work, g, Request{Count: 4, Anchor: "B03"})
	require.NoError(t, err)

	assert.Equal(t, []seating.Coord{{Row: 3, Col: 4}, {Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}}, p.Seats)
}

func TestPlace_AnchoredWrapsToFrontRow(t *testing.T) {
	g, work := newHall(t)

	p, err := Place(work, g, Request{Count: 25, Anchor: "B03"})
	require.NoError(t, err)

	assert.Equal(t, 25, p.Len())
	assert.Equal(t, seating.Coord{Row: 3, Col: 2}, p.Seats[0])
	assert.Equal(t, []seating.Coord{{Row: 3, Col: 0}, {Row: 3, Col: 1}}, p.Seats[23:])
	for _, row := range cellMatrix(work) {
		assert.Equal(t, []int{2, 2, 2, 2, 2}, row)
	}
}

func TestPlace_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"zero seats", Request{Count: 0}, seating.ErrInvalidRequest},
		{"negative seats", Request{Count: -1}, seating.ErrInvalidRequest},
		{"too many seats", Request{Count: 30}, seating.ErrInsufficientAvailability},
		{"bad label", Request{Count: 3, Anchor: "B-1"}, seating.ErrInvalidSeatLabel},
		{"long label", Request{Count: 3, Anchor: "A100"}, seating.ErrInvalidSeatLabel},
		{"row outside hall", Request{Count: 3, Anchor: "F04"}, seating.ErrOutOfBounds},
		{"seat outside hall", Request{Count: 3, Anchor: "B06"}, seating.ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, work := newHall(t)
			p, err := Place(work, g, tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, p)
			assert.Equal(t, 25, g.Available())
		})
	}
}

func TestDefaultStart(t *testing.T) {
	g, _ := newHall(t, seating.Coord{Row: 4, Col: 0})

	tests := []struct {
		count int
		want  seating.Coord
	}{
		{1, seating.Coord{Row: 4, Col: 2}},
		{2, seating.Coord{Row: 4, Col: 1}},
		{3, seating.Coord{Row: 4, Col: 1}},
		{4, seating.Coord{Row: 4, Col: 0}},
		{7, seating.Coord{Row: 4, Col: 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultStart(g, tt.count), "count=%d", tt.count)
	}
}

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/gicseat/internal/seating"
)

func screen(seatsPerRow int) string {
	length := seatsPerRow * 4
	return strings.Repeat(" ", (length-6)/2) + "SCREEN\n" + strings.Repeat("-", length) + "\n"
}

func TestSeatMap_Empty(t *testing.T) {
	g, err := seating.NewGrid(5, 5)
	require.NoError(t, err)

	want := "       SCREEN\n" +
		"--------------------\n" +
		"E  .   .   .   .   .   \n" +
		"D  .   .   .   .   .   \n" +
		"C  .   .   .   .   .   \n" +
		"B  .   .   .   .   .   \n" +
		"A  .   .   .   .   .   \n" +
		"   1   2   3   4   5   \n"

	assert.Equal(t, want, SeatMap(seating.NewWorkingPlan(g)))
}

func TestSeatMap_Markers(t *testing.T) {
	g, err := seating.NewGrid(5, 5)
	require.NoError(t, err)
	require.NoError(t, g.Occupy([]seating.Coord{{Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3}}))

	w := seating.NewWorkingPlan(g)
	w.Mark([]seating.Coord{{Row: 3, Col: 4}, {Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}}, seating.CellHighlighted)

	want := screen(5) +
		"E  .   .   .   .   .   \n" +
		"D  .   .   .   .   .   \n" +
		"C  .   O   O   O   .   \n" +
		"B  .   #   #   #   O   \n" +
		"A  .   .   .   .   .   \n" +
		"   1   2   3   4   5   \n"

	assert.Equal(t, want, SeatMap(w))
}

func TestSeatMap_WideHallRuler(t *testing.T) {
	g, err := seating.NewGrid(5, 12)
	require.NoError(t, err)

	out := SeatMap(seating.NewWorkingPlan(g))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 9)
	assert.Equal(t, strings.Repeat(" ", 21)+"SCREEN", lines[0])
	assert.Equal(t, strings.Repeat("-", 48), lines[1])
	assert.Equal(t, "E  "+strings.Repeat(".   ", 12), lines[2])
	assert.Equal(t, "   1   2   3   4   5   6   7   8   9   10  11  12  ", lines[7])
	assert.Equal(t, "", lines[8])
}

func TestSeatMap_SingleSeatHall(t *testing.T) {
	g, err := seating.NewGrid(1, 1)
	require.NoError(t, err)

	assert.Equal(t, "SCREEN\n----\nA  .   \n   1   \n", SeatMap(seating.NewWorkingPlan(g)))
}

func TestSeatMap_DoesNotModify(t *testing.T) {
	g, err := seating.NewGrid(2, 3)
	require.NoError(t, err)
	w := seating.NewWorkingPlan(g)
	w.Set(seating.Coord{Row: 0, Col: 1}, seating.CellHighlighted)

	before := w.Cells()
	_ = SeatMap(w)
	assert.Equal(t, before, w.Cells())
}

func TestMarker(t *testing.T) {
	assert.Equal(t, '.', Marker(seating.CellEmpty))
	assert.Equal(t, '#', Marker(seating.CellConfirmed))
	assert.Equal(t, 'O', Marker(seating.CellHighlighted))
	assert.Equal(t, '?', Marker(seating.Cell(9)))
}

package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidLabel(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"A1", true},
		{"A01", true},
		{"B09", true},
		{"Z10", true},
		{"C49", true},
		{"C50", true},
		{"C51", false},
		{"A00", false},
		{"A0", false},
		{"A100", false},
		{"B-1", false},
		{"b02", false},
		{"", false},
		{"AA1", false},
		{"1A", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidLabel(tt.label))
		})
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		want    Coord
		wantErr error
	}{
		{"front row first seat", "A01", Coord{Row: 4, Col: 0}, nil},
		{"second row padded", "B02", Coord{Row: 3, Col: 1}, nil},
		{"back row bare", "E5", Coord{Row: 0, Col: 4}, nil},
		{"row beyond hall", "F04", Coord{}, ErrOutOfBounds},
		{"seat beyond hall", "B06", Coord{}, ErrOutOfBounds},
		{"bad grammar", "B-1", Coord{}, ErrInvalidSeatLabel},
		{"too long", "A100", Coord{}, ErrInvalidSeatLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLabel(tt.label, 5, 5)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoord_Label(t *testing.T) {
	assert.Equal(t, "A01", Coord{Row: 4, Col: 0}.Label(5))
	assert.Equal(t, "B02", Coord{Row: 3, Col: 1}.Label(5))
	assert.Equal(t, "E12", Coord{Row: 0, Col: 11}.Label(5))
	assert.Equal(t, []string{"B02", "B03"}, Labels([]Coord{{Row: 3, Col: 1}, {Row: 3, Col: 2}}, 5))
}

func TestLabelRoundTrip(t *testing.T) {
	for row := 0; row < 26; row++ {
		for col := 0; col < 50; col += 7 {
			c := Coord{Row: row, Col: col}
			got, err := ParseLabel(c.Label(26), 26, 50)
			require.NoError(t, err)
			assert.Equal(t, c, got)
		}
	}
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/danieljhkim/gicseat/internal/engine"
	"github.com/danieljhkim/gicseat/internal/seating"
)

// newEngine creates a booking engine over an empty hall.
func newEngine(rows, seatsPerRow int, log *zap.Logger) (*engine.Engine, error) {
	grid, err := seating.NewGrid(rows, seatsPerRow)
	if err != nil {
		return nil, fmt.Errorf("failed to create seat map: %w", err)
	}
	return engine.New(grid, log), nil
}

// outputJSON writes a value as indented JSON to w.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/gicseat/internal/render"
	"github.com/danieljhkim/gicseat/internal/seating"
)

// CheckBooking renders the seat map with a booking's seats highlighted.
// The working copy is reset before and after rendering, so the highlight
// does not outlive the call and any pending plan is discarded.
func (e *Engine) CheckBooking(code string) (*CheckResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if code == "" {
		e.log.Error("booking id is empty")
		return nil, fmt.Errorf("%w: booking id should not be empty", seating.ErrInvalidRequest)
	}

	b, ok := e.bookings[code]
	if !ok {
		e.log.Warn("booking id not found", zap.String("code", code))
		return nil, fmt.Errorf("%w: %s", seating.ErrUnknownBooking, code)
	}

	e.log.Debug("highlighting booking", zap.String("code", code))
	e.pending = nil
	e.resetWorkingCopy()
	e.work.Mark(b.Seats, seating.CellHighlighted)
	preview := render.SeatMap(e.work)
	e.resetWorkingCopy()

	return &CheckResult{
		BookingID: code,
		Seats:     copyCoords(b.Seats),
		Preview:   preview,
	}, nil
}

package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/gicseat/internal/seating"
)

// CancelBooking removes a booking and returns its seats to the hall.
// The code is retired: the sequence never hands it out again.
func (e *Engine) CancelBooking(code string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.bookings[code]
	if !ok {
		e.log.Warn("cannot cancel unknown booking", zap.String("code", code))
		return fmt.Errorf("%w: %s", seating.ErrUnknownBooking, code)
	}

	if err := e.grid.Free(b.Seats); err != nil {
		return fmt.Errorf("failed to release seats for %s: %w", code, err)
	}
	delete(e.bookings, code)

	e.pending = nil
	e.resetWorkingCopy()

	e.log.Info("booking cancelled",
		zap.String("code", code),
		zap.Int("released", len(b.Seats)),
		zap.Int("available", e.grid.Available()))
	return nil
}

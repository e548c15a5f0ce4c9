package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/gicseat/internal/seating"
)

// ConfirmBooking commits seats under the next booking code.
//
// Returns ErrInvalidRequest if seats is empty, lists a seat twice, or
// includes a seat that is already taken, and ErrOutOfBounds if a seat lies
// outside the hall. Nothing changes unless every check passes.
func (e *Engine) ConfirmBooking(seats []seating.Coord) (*ConfirmResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.confirm(seats)
}

// ConfirmPending confirms the plan produced by the latest PlanSeats call.
func (e *Engine) ConfirmPending() (*ConfirmResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pending == nil {
		return nil, fmt.Errorf("%w: no pending plan to confirm", seating.ErrInvalidRequest)
	}
	return e.confirm(e.pending.Seats)
}

func (e *Engine) confirm(seats []seating.Coord) (*ConfirmResult, error) {
	e.log.Debug("confirming booking", zap.Int("seats", len(seats)))

	if err := e.validateSeats(seats); err != nil {
		e.log.Error("booking rejected", zap.Error(err))
		return nil, err
	}

	seats = copyCoords(seats)
	if err := e.grid.Occupy(seats); err != nil {
		return nil, err
	}
	e.work.Mark(seats, seating.CellConfirmed)

	code := bookingCode(e.nextSeq)
	e.bookings[code] = &Booking{
		Code:        code,
		Seq:         e.nextSeq,
		Seats:       seats,
		ConfirmedAt: e.clock.Now(),
	}
	e.nextSeq++
	e.pending = nil

	e.log.Info("booking confirmed",
		zap.String("code", code),
		zap.Int("seats", len(seats)),
		zap.Int("available", e.grid.Available()))

	return &ConfirmResult{
		BookingID: code,
		Seats:     copyCoords(seats),
		Message:   fmt.Sprintf("Booking id: %s confirmed.", code),
	}, nil
}

// validateSeats checks seats against the committed grid without mutating it.
func (e *Engine) validateSeats(seats []seating.Coord) error {
	if len(seats) == 0 {
		return fmt.Errorf("%w: planned coordinates cannot be empty", seating.ErrInvalidRequest)
	}

	seen := make(map[seating.Coord]struct{}, len(seats))
	for _, c := range seats {
		if !e.grid.Contains(c) {
			return fmt.Errorf("%w: invalid planned coordinate %s", seating.ErrOutOfBounds, c)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: seat %s listed more than once", seating.ErrInvalidRequest, c)
		}
		seen[c] = struct{}{}
		if e.grid.State(c) == seating.Occupied {
			return fmt.Errorf("%w: seat %s is already taken", seating.ErrInvalidRequest, c.Label(e.grid.Rows()))
		}
	}
	return nil
}

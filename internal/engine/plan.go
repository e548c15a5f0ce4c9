package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/gicseat/internal/planner"
	"github.com/danieljhkim/gicseat/internal/render"
	"github.com/danieljhkim/gicseat/internal/seating"
)

// PlanSeats chooses seats for req and renders them highlighted.
// The plan is kept as the pending plan for ConfirmPending. Planning never
// changes the committed grid, and any earlier pending plan is discarded.
func (e *Engine) PlanSeats(req *PlanRequest) (*PlanResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.log.Debug("planning seats", zap.Int("count", req.Count), zap.String("anchor", req.Anchor))

	if req.Count <= 0 {
		e.log.Warn("invalid seat count", zap.Int("count", req.Count))
		return nil, fmt.Errorf("%w: seats to book must be positive, got %d", seating.ErrInvalidRequest, req.Count)
	}
	if req.Count > e.grid.Available() {
		e.log.Warn("not enough seats available",
			zap.Int("count", req.Count),
			zap.Int("available", e.grid.Available()))
		return nil, fmt.Errorf("%w: requested %d, only %d available",
			seating.ErrInsufficientAvailability, req.Count, e.grid.Available())
	}

	e.pending = nil
	e.resetWorkingCopy()

	placement, err := planner.Place(e.work, e.grid, planner.Request{
		Count:  req.Count,
		Anchor: req.Anchor,
	})
	if err != nil {
		e.log.Warn("planning failed", zap.String("anchor", req.Anchor), zap.Error(err))
		return nil, err
	}
	e.pending = placement

	e.log.Debug("planned seats",
		zap.Stringer("start", placement.Start),
		zap.Int("count", placement.Len()),
		zap.Strings("seats", seating.Labels(placement.Seats, e.grid.Rows())))

	return &PlanResult{
		BookingID: bookingCode(e.nextSeq),
		Seats:     copyCoords(placement.Seats),
		Labels:    seating.Labels(placement.Seats, e.grid.Rows()),
		Anchored:  placement.Anchored,
		Preview:   render.SeatMap(e.work),
	}, nil
}

func copyCoords(coords []seating.Coord) []seating.Coord {
	return append([]seating.Coord(nil), coords...)
}

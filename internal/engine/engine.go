// Package engine provides the booking ledger for a single screening.
//
// The engine sits between the menu session and the seating packages. It owns
// the working copy used for previews, the booking code sequence, and the
// index from booking code to reserved seats. It is the only component that
// mutates the committed grid.
//
// Key operations:
//   - PlanSeats: choose seats for a request and render a preview
//   - ConfirmBooking / ConfirmPending: commit seats under a new booking code
//   - CheckBooking: render a confirmed booking's seats highlighted
//   - CancelBooking: release a booking's seats; its code is never reused
package engine

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/danieljhkim/gicseat/internal/clock"
	"github.com/danieljhkim/gicseat/internal/planner"
	"github.com/danieljhkim/gicseat/internal/render"
	"github.com/danieljhkim/gicseat/internal/seating"
)

// BookingPrefix is prepended to every booking sequence number.
const BookingPrefix = "GIC"

// Engine is the reservation ledger for one seat map.
// All public methods are serialised; a plan followed by a confirm is still
// two separate calls, so callers sharing an Engine must coordinate between
// them.
type Engine struct {
	mu sync.Mutex

	grid     *seating.Grid
	work     *seating.WorkingPlan
	bookings map[string]*Booking
	nextSeq  int
	pending  *planner.Placement
	clock    clock.Clock
	log      *zap.Logger
}

// New creates an Engine over grid that stamps bookings with the system time.
// A nil logger disables logging.
func New(grid *seating.Grid, log *zap.Logger) *Engine {
	return NewWithClock(grid, log, &clock.RealClock{})
}

// NewWithClock creates an Engine that stamps bookings using clk.
func NewWithClock(grid *seating.Grid, log *zap.Logger, clk clock.Clock) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		grid:     grid,
		work:     seating.NewWorkingPlan(grid),
		bookings: make(map[string]*Booking),
		nextSeq:  1,
		clock:    clk,
		log:      log,
	}
	e.log.Info("booking engine initialised",
		zap.Int("rows", grid.Rows()),
		zap.Int("seats_per_row", grid.SeatsPerRow()))
	return e
}

// Rows returns the number of rows in the hall.
func (e *Engine) Rows() int { return e.grid.Rows() }

// SeatsPerRow returns the number of seats in each row.
func (e *Engine) SeatsPerRow() int { return e.grid.SeatsPerRow() }

// Capacity returns the total number of seats in the hall.
func (e *Engine) Capacity() int { return e.grid.Capacity() }

// Available returns the number of seats not held by a confirmed booking.
func (e *Engine) Available() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Available()
}

// CanBook reports whether n seats could be planned right now.
func (e *Engine) CanBook(n int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return n > 0 && n <= e.grid.Available()
}

// NextBookingCode returns the code the next confirmed booking will receive.
func (e *Engine) NextBookingCode() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return bookingCode(e.nextSeq)
}

// SeatMap renders the working copy: confirmed seats plus any highlights
// left by the latest plan.
func (e *Engine) SeatMap() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return render.SeatMap(e.work)
}

// bookingCode formats a sequence number as a booking code, e.g. GIC0001.
func bookingCode(seq int) string {
	return fmt.Sprintf("%s%04d", BookingPrefix, seq)
}

// resetWorkingCopy discards highlights so the working copy matches the grid.
func (e *Engine) resetWorkingCopy() {
	e.log.Debug("resetting working copy from committed grid")
	e.work.Reset(e.grid)
}

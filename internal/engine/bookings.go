package engine

import (
	"sort"

	"github.com/danieljhkim/gicseat/internal/seating"
)

// Bookings returns the confirmed bookings in the order they were made.
func (e *Engine) Bookings() []BookingInfo {
	e.mu.Lock()
	defer e.mu.Unlock()

	list := make([]*Booking, 0, len(e.bookings))
	for _, b := range e.bookings {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Seq < list[j].Seq })

	out := make([]BookingInfo, len(list))
	for i, b := range list {
		out[i] = BookingInfo{
			Code:        b.Code,
			Seats:       seating.Labels(b.Seats, e.grid.Rows()),
			ConfirmedAt: b.ConfirmedAt,
		}
	}
	return out
}

// HasBooking reports whether code belongs to a confirmed booking.
func (e *Engine) HasBooking(code string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.bookings[code]
	return ok
}

package engine

import (
	"time"

	"github.com/danieljhkim/gicseat/internal/seating"
)

// Booking is a confirmed reservation. Bookings are immutable once created.
type Booking struct {
	// Code is the booking code, e.g. GIC0001
	Code string

	// Seq is the sequence number encoded in Code
	Seq int

	// Seats is the ordered list of reserved seats
	Seats []seating.Coord

	// ConfirmedAt is when the booking was confirmed
	ConfirmedAt time.Time
}

// BookingInfo summarises a booking for listing.
type BookingInfo struct {
	// Code is the booking code
	Code string `json:"code"`

	// Seats is the list of reserved seat labels
	Seats []string `json:"seats"`

	// ConfirmedAt is when the booking was confirmed
	ConfirmedAt time.Time `json:"confirmed_at"`
}

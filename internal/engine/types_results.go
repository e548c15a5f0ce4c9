package engine

import "github.com/danieljhkim/gicseat/internal/seating"

// PlanResult represents the outcome of planning seats.
type PlanResult struct {
	// BookingID is the code the booking will receive if confirmed
	BookingID string `json:"booking_id"`

	// Seats is the ordered list of planned seats
	Seats []seating.Coord `json:"seats"`

	// Labels is Seats formatted as seat labels
	Labels []string `json:"labels"`

	// Anchored is true when planning started from a requested seat
	Anchored bool `json:"anchored"`

	// Preview is the rendered seat map with planned seats highlighted
	Preview string `json:"preview"`
}

// ConfirmResult represents a confirmed booking.
type ConfirmResult struct {
	// BookingID is the newly assigned booking code
	BookingID string `json:"booking_id"`

	// Seats is the list of reserved seats
	Seats []seating.Coord `json:"seats"`

	// Message is the confirmation text shown to the user
	Message string `json:"message"`
}

// CheckResult represents an inspected booking.
type CheckResult struct {
	// BookingID is the inspected booking code
	BookingID string `json:"booking_id"`

	// Seats is the list of reserved seats
	Seats []seating.Coord `json:"seats"`

	// Preview is the rendered seat map with the booking's seats highlighted
	Preview string `json:"preview"`
}

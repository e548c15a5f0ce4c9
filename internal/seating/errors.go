package seating

import "errors"

var (
	// ErrConfiguration indicates hall dimensions outside the supported range.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInvalidRequest indicates a malformed request: a non-positive seat
	// count, an empty coordinate list, or an empty booking code.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInsufficientAvailability indicates more seats were requested than
	// the hall has available.
	ErrInsufficientAvailability = errors.New("not enough seats available")

	// ErrInvalidSeatLabel indicates a seat label that does not match the
	// label grammar.
	ErrInvalidSeatLabel = errors.New("invalid seat label")

	// ErrOutOfBounds indicates a coordinate or seat label outside the hall.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrUnknownBooking indicates a booking code that is not on record.
	ErrUnknownBooking = errors.New("booking not found")
)

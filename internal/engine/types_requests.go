package engine

// PlanRequest represents a request to plan seats for a booking.
type PlanRequest struct {
	// Count is the number of seats to book
	Count int

	// Anchor is an optional starting seat label such as "B03"
	Anchor string
}

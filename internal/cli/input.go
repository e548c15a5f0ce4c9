package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/danieljhkim/gicseat/internal/seating"
)

var (
	// errHallFormat indicates a hall definition that is not "[Title] [Row] [SeatsPerRow]".
	errHallFormat = errors.New("invalid hall definition format")

	// errBookingSpec indicates a --book value that is not "N" or "N@SEAT".
	errBookingSpec = errors.New("invalid booking spec")

	titleWord = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// hallDefinition is the parsed answer to the opening prompt.
type hallDefinition struct {
	Title       string
	Rows        int
	SeatsPerRow int
}

// isNumeric reports whether s parses as a base-10 integer.
func isNumeric(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// parseHallDefinition parses "[Title] [Row] [SeatsPerRow]". The title may be
// several alphanumeric words. Dimensions are range-checked and fail with
// seating.ErrConfiguration.
func parseHallDefinition(line string) (*hallDefinition, error) {
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return nil, fmt.Errorf("%w: %q", errHallFormat, line)
	}

	words := parts[:len(parts)-2]
	for _, w := range words {
		if !titleWord.MatchString(w) {
			return nil, fmt.Errorf("%w: title word %q is not alphanumeric", errHallFormat, w)
		}
	}

	rows, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return nil, fmt.Errorf("%w: rows %q is not a number", errHallFormat, parts[len(parts)-2])
	}
	seats, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return nil, fmt.Errorf("%w: seats per row %q is not a number", errHallFormat, parts[len(parts)-1])
	}

	if err := seating.ValidateDimensions(rows, seats); err != nil {
		return nil, err
	}

	return &hallDefinition{
		Title:       strings.Join(words, " "),
		Rows:        rows,
		SeatsPerRow: seats,
	}, nil
}

// bookingSpec is one --book request for the simulate command.
type bookingSpec struct {
	Count  int
	Anchor string
}

// parseBookingSpec parses "N" or "N@SEAT", e.g. "3@B02".
func parseBookingSpec(s string) (bookingSpec, error) {
	countPart, anchor, _ := strings.Cut(s, "@")
	count, err := strconv.Atoi(countPart)
	if err != nil {
		return bookingSpec{}, fmt.Errorf("%w: %q: seat count is not a number", errBookingSpec, s)
	}
	if strings.Contains(s, "@") && anchor == "" {
		return bookingSpec{}, fmt.Errorf("%w: %q: missing seat after @", errBookingSpec, s)
	}
	return bookingSpec{Count: count, Anchor: anchor}, nil
}

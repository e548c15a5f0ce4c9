package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/danieljhkim/gicseat/internal/engine"
	"github.com/danieljhkim/gicseat/internal/seating"
)

// Session runs the interactive booking menu for one screening.
type Session struct {
	in  *bufio.Scanner
	out io.Writer
	log *zap.Logger

	title string
	eng   *engine.Engine
}

// NewSession creates a session reading answers from in and writing prompts
// to out. A nil logger disables logging.
func NewSession(in io.Reader, out io.Writer, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
}

// Run asks for the hall definition and then serves the main menu until the
// user exits or input ends. End of input is not an error.
func (s *Session) Run() error {
	err := s.run()
	if errors.Is(err, io.EOF) {
		s.log.Info("input closed, ending session")
		return nil
	}
	return err
}

func (s *Session) run() error {
	if err := s.setup(); err != nil {
		return err
	}
	for {
		done, err := s.menu()
		if err != nil || done {
			return err
		}
	}
}

// readLine returns the next input line with surrounding space removed, or
// io.EOF when input is exhausted.
func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// setup prompts until a valid hall definition is entered.
func (s *Session) setup() error {
	for {
		printLine(s.out, "Please define movie title and seating map in [Title] [Row] [SeatsPerRow] format:")
		line, err := s.readLine()
		if err != nil {
			return err
		}

		def, err := parseHallDefinition(line)
		switch {
		case errors.Is(err, seating.ErrConfiguration):
			s.log.Warn("hall dimensions out of range", zap.String("input", line))
			printWarning(s.out, fmt.Sprintf("Invalid input. Rows should be > 0 and <= %d while seats per row should be > 0 and <= %d",
				seating.MaxRows, seating.MaxSeatsPerRow))
			continue
		case err != nil:
			s.log.Warn("invalid hall definition", zap.String("input", line), zap.Error(err))
			printWarning(s.out, "Invalid input. Please provide a valid format: [Title] [Row] [SeatsPerRow].")
			continue
		}

		eng, err := newEngine(def.Rows, def.SeatsPerRow, s.log)
		if err != nil {
			return err
		}
		s.title = def.Title
		s.eng = eng
		s.log.Info("session started",
			zap.String("title", def.Title),
			zap.Int("rows", def.Rows),
			zap.Int("seats_per_row", def.SeatsPerRow))
		return nil
	}
}

// menu shows the main menu once and runs the selected action.
// It returns true when the user chose to exit.
func (s *Session) menu() (bool, error) {
	printLine(s.out, "Welcome to GIC Cinemas")
	printLine(s.out, fmt.Sprintf("[1] Book tickets for %s (%d seats available)", s.title, s.eng.Available()))
	printLine(s.out, "[2] Check bookings")
	printLine(s.out, "[3] Exit")
	printLine(s.out, "Please enter your selection:")

	choice, err := s.readLine()
	if err != nil {
		return false, err
	}
	s.log.Debug("menu selection", zap.String("input", choice))

	switch choice {
	case "1":
		return false, s.book()
	case "2":
		return false, s.check()
	case "3":
		printLine(s.out, "Thank you for using GIC Cinemas system. Bye!")
		return true, nil
	default:
		printWarning(s.out, "Invalid selection. Please enter a number between 1 and 3.")
		return false, nil
	}
}

// book asks for a ticket count and walks the user through seat selection.
func (s *Session) book() error {
	for {
		printLine(s.out, "Enter number of tickets to book, or enter blank to go back to main menu:")
		line, err := s.readLine()
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}
		if !isNumeric(line) {
			s.log.Warn("invalid ticket count", zap.String("input", line))
			printWarning(s.out, "Please enter a valid number of tickets.")
			continue
		}

		count, _ := strconv.Atoi(line)
		if !s.eng.CanBook(count) {
			if available := s.eng.Available(); count > available {
				s.log.Warn("not enough seats", zap.Int("count", count), zap.Int("available", available))
				printWarning(s.out, fmt.Sprintf("Sorry, there are only %d seats available.", available))
			} else {
				s.log.Warn("non-positive ticket count", zap.Int("count", count))
				printWarning(s.out, "Cannot enter 0 tickets")
			}
			continue
		}

		printLine(s.out, fmt.Sprintf("Successfully reserved %d %s tickets.", count, s.title))
		return s.selectSeats(count)
	}
}

// selectSeats previews a plan and lets the user move it until they accept.
// A seat that cannot be planned from falls back to default placement.
func (s *Session) selectSeats(count int) error {
	code := s.eng.NextBookingCode()
	anchor := ""
	for {
		plan, err := s.eng.PlanSeats(&engine.PlanRequest{Count: count, Anchor: anchor})
		if err != nil {
			s.log.Error("unexpected planning error", zap.String("anchor", anchor), zap.Error(err))
			if anchor == "" {
				return err
			}
			printWarning(s.out, "Unexpected error ocurred. Please try again")
			anchor = ""
			continue
		}

		printLine(s.out, "Booking id:"+code)
		printLine(s.out, "Selected seats:")
		printLine(s.out, plan.Preview)
		printLine(s.out, "Enter blank to accept seat selection, or enter new seating position:")

		line, err := s.readLine()
		if err != nil {
			return err
		}
		if line == "" {
			res, err := s.eng.ConfirmPending()
			if err != nil {
				return err
			}
			printSuccess(s.out, res.Message)
			printLine(s.out, "")
			return nil
		}

		for !seating.ValidLabel(line) {
			s.log.Warn("invalid seat selection", zap.String("input", line))
			printWarning(s.out, "Invalid seat selection. Please try again.")
			if line, err = s.readLine(); err != nil {
				return err
			}
		}
		anchor = line
	}
}

// check shows a booking and offers to cancel it.
func (s *Session) check() error {
	printLine(s.out, "Enter booking id, or enter to go back to main menu:")
	for {
		code, err := s.readLine()
		if err != nil {
			return err
		}
		if code == "" {
			return nil
		}

		if !s.eng.HasBooking(code) {
			s.log.Warn("invalid booking id", zap.String("code", code))
			printWarning(s.out, "Invalid booking id. Please try again.")
			continue
		}

		res, err := s.eng.CheckBooking(code)
		if err != nil {
			s.log.Error("unexpected check error", zap.String("code", code), zap.Error(err))
			printWarning(s.out, "Unexpected error ocurred. Please try again")
			continue
		}

		printLine(s.out, res.Preview)
		printLine(s.out, "Would you like to cancel this booking? Y to confirm:")

		answer, err := s.readLine()
		if err != nil {
			return err
		}
		if strings.EqualFold(answer, "Y") {
			if err := s.eng.CancelBooking(code); err != nil {
				return err
			}
			printSuccess(s.out, fmt.Sprintf("Booking id: %s cancelled.", code))
		}
		return nil
	}
}

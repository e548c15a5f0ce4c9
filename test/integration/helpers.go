package integration

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/danieljhkim/gicseat/internal/cli"
)

const (
	hallPrompt    = "Please define movie title and seating map in [Title] [Row] [SeatsPerRow] format:\n"
	ticketsPrompt = "Enter number of tickets to book, or enter blank to go back to main menu:\n"
	acceptPrompt  = "Enter blank to accept seat selection, or enter new seating position:\n"
	bookingPrompt = "Enter booking id, or enter to go back to main menu:\n"
	cancelPrompt  = "Would you like to cancel this booking? Y to confirm:\n"
	goodbye       = "Thank you for using GIC Cinemas system. Bye!\n"
)

// runTranscript plays input through an interactive session and returns the
// session output.
func runTranscript(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	session := cli.NewSession(strings.NewReader(input), &out, zaptest.NewLogger(t))
	if err := session.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func menu(title string, available int) string {
	return "Welcome to GIC Cinemas\n" +
		fmt.Sprintf("[1] Book tickets for %s (%d seats available)\n", title, available) +
		"[2] Check bookings\n" +
		"[3] Exit\n" +
		"Please enter your selection:\n"
}

// seatMap5 builds the expected seat map for a 5-wide hall from its rows,
// listed from the back row to the front.
func seatMap5(rows ...string) string {
	var b strings.Builder
	b.WriteString("       SCREEN\n")
	b.WriteString("--------------------\n")
	for _, r := range rows {
		b.WriteString(r)
		b.WriteString("\n")
	}
	b.WriteString("   1   2   3   4   5   \n")
	return b.String()
}

// diffLine reports the first line where got and want differ.
func diffLine(got, want string) string {
	g := strings.Split(got, "\n")
	w := strings.Split(want, "\n")
	for i := 0; i < len(g) && i < len(w); i++ {
		if g[i] != w[i] {
			return fmt.Sprintf("line %d: got %q, want %q", i+1, g[i], w[i])
		}
	}
	return fmt.Sprintf("got %d lines, want %d", len(g), len(w))
}

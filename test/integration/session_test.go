package integration

import (
	"strings"
	"testing"
)

func TestSession_BookCheckAndKeep(t *testing.T) {
	input := "Inception 5 5\n1\n3\nB02\n\n2\nGIC0001\nN\n3\n"

	defaultPlan := seatMap5(
		"E  .   .   .   .   .   ",
		"D  .   .   .   .   .   ",
		"C  .   .   .   .   .   ",
		"B  .   .   .   .   .   ",
		"A  .   O   O   O   .   ",
	)
	movedPlan := seatMap5(
		"E  .   .   .   .   .   ",
		"D  .   .   .   .   .   ",
		"C  .   .   .   .   .   ",
		"B  .   O   O   O   .   ",
		"A  .   .   .   .   .   ",
	)

	want := hallPrompt +
		menu("Inception", 25) +
		ticketsPrompt +
		"Successfully reserved 3 Inception tickets.\n" +
		"Booking id:GIC0001\n" +
		"Selected seats:\n" +
		defaultPlan + "\n" +
		acceptPrompt +
		"Booking id:GIC0001\n" +
		"Selected seats:\n" +
		movedPlan + "\n" +
		acceptPrompt +
		"Booking id: GIC0001 confirmed.\n\n" +
		menu("Inception", 22) +
		bookingPrompt +
		movedPlan + "\n" +
		cancelPrompt +
		menu("Inception", 22) +
		goodbye

	got := runTranscript(t, input)
	if got != want {
		t.Errorf("transcript mismatch: %s", diffLine(got, want))
	}
}

func TestSession_OverflowWrapsToNextRow(t *testing.T) {
	input := "Inception 5 5\n1\n7\n\n3\n"

	plan := seatMap5(
		"E  .   .   .   .   .   ",
		"D  .   .   .   .   .   ",
		"C  .   .   .   .   .   ",
		"B  .   O   O   .   .   ",
		"A  O   O   O   O   O   ",
	)

	got := runTranscript(t, input)
	if !strings.Contains(got, "Selected seats:\n"+plan) {
		t.Errorf("expected overflow plan in output:\n%s", got)
	}
	if !strings.Contains(got, menu("Inception", 18)) {
		t.Error("expected 18 seats available after booking")
	}
}

func TestSession_CodesAreNotReused(t *testing.T) {
	input := "Inception 5 5\n" +
		"1\n2\n\n" +
		"2\nGIC0001\nY\n" +
		"1\n2\n\n" +
		"3\n"

	got := runTranscript(t, input)

	if !strings.Contains(got, "Booking id: GIC0001 cancelled.\n") {
		t.Error("expected first booking to be cancelled")
	}
	if !strings.Contains(got, "Booking id: GIC0002 confirmed.\n") {
		t.Error("expected second booking to get the next code")
	}
	if strings.Count(got, "Booking id: GIC0001 confirmed.\n") != 1 {
		t.Error("expected GIC0001 to be confirmed exactly once")
	}
}

func TestSession_FillWholeHall(t *testing.T) {
	input := "Tiny 2 2\n1\n4\n\n1\n1\n\n3\n"

	got := runTranscript(t, input)

	if !strings.Contains(got, "[1] Book tickets for Tiny (0 seats available)\n") {
		t.Error("expected hall to be full after booking 4 seats")
	}
	if !strings.Contains(got, "Sorry, there are only 0 seats available.\n") {
		t.Error("expected booking into a full hall to be refused")
	}
}

func TestSession_EndsOnClosedInput(t *testing.T) {
	got := runTranscript(t, "Inception 5 5\n1\n3\n")

	if !strings.HasSuffix(got, acceptPrompt) {
		t.Errorf("expected session to stop at the accept prompt, got:\n%s", got)
	}
}

package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danieljhkim/gicseat/internal/engine"
	"github.com/danieljhkim/gicseat/internal/fsops"
	"github.com/danieljhkim/gicseat/internal/seating"
)

// simulateOptions holds the simulate command's flags.
type simulateOptions struct {
	Title       string
	Rows        int
	SeatsPerRow int
	Book        []string
	Cancel      []string
	Out         string
}

// SimulationResult is the JSON document printed by simulate --json.
type SimulationResult struct {
	Title       string               `json:"title"`
	Rows        int                  `json:"rows"`
	SeatsPerRow int                  `json:"seats_per_row"`
	Capacity    int                  `json:"capacity"`
	Available   int                  `json:"available"`
	Bookings    []engine.BookingInfo `json:"bookings"`
	SeatMap     string               `json:"seat_map"`
}

var (
	simulateCmd = newSimulateCmd()

	// reportFS saves reports requested with --out
	reportFS fsops.FS = fsops.NewRealFS()
)

func newSimulateCmd() *cobra.Command {
	opts := &simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scripted sequence of bookings",
		Long: `Book and cancel seats without prompts and print the resulting seat map.

Each --book is planned and confirmed in order. Use "N" for default placement
or "N@SEAT" to start from a seat, e.g. --book 3@B02. Each --cancel is applied
after all bookings. With --out the report is saved to a file.`,
		Example: `  cinema simulate --title Inception --rows 5 --seats 5 --book 3@B02 --book 4
  cinema simulate --rows 8 --seats 10 --book 12 --cancel GIC0001 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd.OutOrStdout(), opts, jsonOutput, appLog)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "Movie", "Movie title")
	cmd.Flags().IntVar(&opts.Rows, "rows", 5,
		fmt.Sprintf("Number of rows (%d-%d)", seating.MinRows, seating.MaxRows))
	cmd.Flags().IntVar(&opts.SeatsPerRow, "seats", 5,
		fmt.Sprintf("Seats per row (%d-%d)", seating.MinSeatsPerRow, seating.MaxSeatsPerRow))
	cmd.Flags().StringArrayVar(&opts.Book, "book", nil, "Booking to make: N or N@SEAT (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Cancel, "cancel", nil, "Booking code to cancel (repeatable)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Write the report to a file instead of stdout")
	return cmd
}

// runSimulate executes opts against a fresh hall and reports to w, or to
// opts.Out when set.
func runSimulate(w io.Writer, opts *simulateOptions, asJSON bool, log *zap.Logger) error {
	if opts.Out == "" {
		return simulate(w, opts, asJSON, log)
	}

	var buf bytes.Buffer
	if err := simulate(&buf, opts, asJSON, log); err != nil {
		return err
	}
	if err := reportFS.AtomicWrite(opts.Out, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	log.Info("report saved", zap.String("path", opts.Out))
	printSuccess(w, "Report written to "+opts.Out)
	return nil
}

func simulate(w io.Writer, opts *simulateOptions, asJSON bool, log *zap.Logger) error {
	specs := make([]bookingSpec, 0, len(opts.Book))
	for _, raw := range opts.Book {
		spec, err := parseBookingSpec(raw)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}

	eng, err := newEngine(opts.Rows, opts.SeatsPerRow, log)
	if err != nil {
		return err
	}

	for _, spec := range specs {
		plan, err := eng.PlanSeats(&engine.PlanRequest{Count: spec.Count, Anchor: spec.Anchor})
		if err != nil {
			return fmt.Errorf("booking %d seat(s): %w", spec.Count, err)
		}
		res, err := eng.ConfirmBooking(plan.Seats)
		if err != nil {
			return err
		}
		if !asJSON {
			printSuccess(w, fmt.Sprintf("%s (%s)", res.Message, strings.Join(plan.Labels, " ")))
		}
	}

	for _, code := range opts.Cancel {
		if err := eng.CancelBooking(code); err != nil {
			return err
		}
		if !asJSON {
			printSuccess(w, fmt.Sprintf("Booking id: %s cancelled.", code))
		}
	}

	result := &SimulationResult{
		Title:       opts.Title,
		Rows:        eng.Rows(),
		SeatsPerRow: eng.SeatsPerRow(),
		Capacity:    eng.Capacity(),
		Available:   eng.Available(),
		Bookings:    eng.Bookings(),
		SeatMap:     eng.SeatMap(),
	}
	if asJSON {
		return outputJSON(w, result)
	}

	printLine(w, "")
	_, _ = fmt.Fprint(w, result.SeatMap)
	printLine(w, "")
	printLabelValue(w, "Title", result.Title)
	printLabelValue(w, "Available", fmt.Sprintf("%s of %d",
		countLabel(result.Available, "seat", "seats"), result.Capacity))

	if len(result.Bookings) > 0 {
		printLine(w, "")
		rows := make([][]string, len(result.Bookings))
		for i, b := range result.Bookings {
			rows[i] = []string{b.Code, fmt.Sprint(len(b.Seats)), strings.Join(b.Seats, " ")}
		}
		printTable(w, []string{"BOOKING", "SEATS", "LABELS"}, rows)
	}
	return nil
}

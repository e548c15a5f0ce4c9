// Package planner chooses which seats satisfy a booking request.
//
// Planning is deterministic and never touches the committed grid. It runs
// against a WorkingPlan, marking the chosen seats Highlighted so the caller
// can render a preview before confirming.
//
// Placement rules:
//   - Without an anchor, filling starts in the row nearest the screen, with
//     the group centered over that row's empty seats.
//   - With an anchor label (e.g. "B03"), filling starts exactly at that seat.
//   - Filling moves right along a row, skipping taken seats. At the end of a
//     row it steps one row back from the screen (wrapping to the front row
//     after the last) and re-centers on the remaining count.
package planner

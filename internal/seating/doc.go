// Package seating holds the committed seat state of a single screening.
//
// A Grid is the authoritative occupancy of the hall: its dimensions, which
// seats are taken, and how many are still available. A WorkingPlan is a
// scratch copy of a Grid with a third cell state (Highlighted) used to
// preview a selection before it is confirmed.
//
// Row index 0 is the row farthest from the screen. Row labels run the
// other way: the row nearest the screen (index rows-1) is always "A".
package seating

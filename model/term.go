package model

import "time"

// termLength is the fixed allocation window: seven days.
const termLength = 7 * 24 * time.Hour

// anchorMonth is when the academic year starts.
const anchorMonth = time.April

// Anchor returns the academic-year anchor for the supplied timestamp: April 1
// of its year, or of the previous year when the timestamp precedes April 1.
// Term 0 begins at the anchor.
func Anchor(earliest time.Time) time.Time {
	anchor := time.Date(earliest.Year(), anchorMonth, 1, 0, 0, 0, 0, earliest.Location())
	if earliest.Before(anchor) {
		anchor = time.Date(earliest.Year()-1, anchorMonth, 1, 0, 0, 0, 0, earliest.Location())
	}
	return anchor
}

// TermIndex computes the weekly term a timestamp belongs to, relative to the
// anchor. Integer (floor) division is required – a submission exactly on a
// term boundary belongs to the later term.
func TermIndex(ts, anchor time.Time) int {
	return int(ts.Sub(anchor) / termLength)
}

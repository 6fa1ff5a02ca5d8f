package rollz

import (
	"time"
)

// Span describes the window boundaries at one stream position.
// It is the online counterpart of one (start[i], end[i]) pair: the half-open
// index range [Start, End) of arrivals contributing to position Index.
type Span struct {
	// At is the arrival time stamped on the position.
	At time.Time

	// Index is the position this span describes.
	Index int

	// Start is the first index inside the window.
	Start int

	// End is the first index past the window.
	End int
}

// Len returns the number of positions inside the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span covers no positions.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

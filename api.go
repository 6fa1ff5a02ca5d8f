// Package rollz computes window boundaries for rolling aggregations over
// ordered sequences. Given a sequence length and a window specification, it
// produces two parallel index slices start and end where the half-open range
// [start[i], end[i]) identifies the observations contributing to position i.
//
// The package never aggregates: it hands index pairs to a consumer that
// applies its own reduction over each range and enforces its own validity
// rules (minimum observation counts, centering). This keeps the boundary
// arithmetic, which is the hard part, in one place.
//
// Basic usage:
//
//	fixed := rollz.NewFixedBounds()
//	start, end, err := fixed.WindowBounds(len(values), 3, rollz.BoundsOptions{})
//	if err != nil {
//		return err
//	}
//	for i := range start {
//		window := values[start[i]:end[i]]
//		// reduce window...
//	}
//
// Two regimes are provided: count-based windows (FixedBounds) and
// value-indexed windows over a monotonic ordering key such as timestamps
// (VariableBounds). ExpandingBounds and SessionBounds cover the anchored
// and gap-delimited variants of the same contract, and Roller computes
// variable bounds online over a channel of arrivals.
package rollz

// BoundsProvider is the core capability for window boundary computation.
// Implementations are stateless across calls beyond their construction-time
// configuration, deterministic, and safe for concurrent use: each call
// returns freshly allocated slices owned by the caller.
//
// Every implementation guarantees, for a successful call with sequence
// length n: len(start) == len(end) == n, and 0 <= start[i] <= end[i] <= n
// for every i. An empty window (start[i] == end[i]) is a valid result, not
// an error.
type BoundsProvider interface {
	// WindowBounds computes the boundary pair for a sequence of numValues
	// observations. windowSize is a count of elements for count-based
	// strategies and a magnitude in ordering-key units for value-indexed
	// ones. Invalid arguments (negative sizes, an ordering key whose length
	// does not match numValues) are reported before any scan begins.
	WindowBounds(numValues, windowSize int, opts BoundsOptions) (start, end []int, err error)

	// Name returns a descriptive name for the provider, useful for debugging.
	Name() string
}

// Closed selects which endpoints of each window interval are inclusive.
// The left endpoint is the oldest boundary, the right endpoint the current
// point.
type Closed int

const (
	// ClosedDefault defers to the strategy: Right when an ordering key is
	// present, Both otherwise.
	ClosedDefault Closed = iota

	// ClosedRight includes the current point and excludes the oldest
	// boundary value.
	ClosedRight

	// ClosedLeft includes the oldest boundary value and excludes the
	// current point.
	ClosedLeft

	// ClosedBoth includes both endpoints.
	ClosedBoth

	// ClosedNeither excludes both endpoints.
	ClosedNeither
)

// String returns the policy name as used by rolling APIs.
func (c Closed) String() string {
	switch c {
	case ClosedRight:
		return "right"
	case ClosedLeft:
		return "left"
	case ClosedBoth:
		return "both"
	case ClosedNeither:
		return "neither"
	default:
		return "default"
	}
}

// resolve maps the policy to per-endpoint inclusivity. hasKey reports
// whether the strategy carries an ordering key, which determines the
// default.
func (c Closed) resolve(hasKey bool) (leftClosed, rightClosed bool) {
	if c == ClosedDefault {
		if hasKey {
			c = ClosedRight
		} else {
			c = ClosedBoth
		}
	}
	switch c {
	case ClosedBoth:
		return true, true
	case ClosedLeft:
		return true, false
	case ClosedNeither:
		return false, false
	default:
		return false, true
	}
}

// BoundsOptions carries per-call settings for WindowBounds.
//
// MinPeriods, Center, and WinType exist for signature uniformity with
// consumer-side rolling APIs: they travel through the call so a consumer can
// thread its configuration to one place, but boundary computation never
// reads them. The consumer applies them post hoc using the returned index
// pairs.
type BoundsOptions struct {
	// MinPeriods is the consumer's minimum observation count per window.
	// Not consumed by boundary computation.
	MinPeriods int

	// Center indicates the consumer will center the window labels.
	// Not consumed by boundary computation.
	Center bool

	// Closed selects endpoint inclusivity for value-indexed strategies.
	// Count-based strategies ignore it. ClosedDefault resolves per
	// strategy.
	Closed Closed

	// WinType is the consumer's weighting scheme name.
	// Not consumed by boundary computation.
	WinType string
}

// checkArgs validates the shared numeric preconditions of every strategy.
func checkArgs(provider string, numValues, windowSize int) error {
	if numValues < 0 {
		return newBoundsError(provider, ErrNegativeLength)
	}
	if windowSize < 0 {
		return newBoundsError(provider, ErrNegativeWindow)
	}
	return nil
}

package rollz

import "golang.org/x/exp/constraints"

// Key constrains ordering-key element types. The start-bound arithmetic
// subtracts the window magnitude from a key value, so keys must be numeric,
// not merely ordered.
type Key interface {
	constraints.Integer | constraints.Float
}

// VariableBounds computes boundaries for a value-indexed window: each
// position covers the maximal contiguous range whose ordering-key values lie
// within windowSize units of the key at that position, honoring the closed
// policy at each endpoint.
//
// The ordering key must be monotonically non-decreasing. This is an
// unchecked precondition: the forward-only scan is correct only because the
// window's left edge never retreats, and a non-monotonic key silently voids
// that guarantee rather than raising an error. Key length, by contrast, is
// checked against the sequence length before the scan.
type VariableBounds[K Key] struct {
	name   string
	key    []K
	closed Closed
}

// NewVariableBounds creates a provider for value-indexed windows over the
// given ordering key, typically timestamps reduced to a numeric unit.
//
// When to use:
//   - "Last 10 seconds" style windows over irregularly spaced observations
//   - Any window measured in key units rather than element counts
//   - Sequences where gaps in the key should shrink the window
//
// Example:
//
//	key := []int64{1, 2, 3, 10, 11}
//	variable := rollz.NewVariableBounds(key)
//	start, end, _ := variable.WindowBounds(len(key), 2, rollz.BoundsOptions{})
//	// position 3 (key 10) covers only itself: start[3] = 3, end[3] = 4
//
// Parameters:
//   - key: ordering key, one value per observation, non-decreasing
//
// Returns a new VariableBounds provider with fluent configuration.
func NewVariableBounds[K Key](key []K) *VariableBounds[K] {
	return &VariableBounds[K]{
		name: "variable-bounds",
		key:  key,
	}
}

// WithClosed sets the default closed policy for this provider. A non-default
// BoundsOptions.Closed on an individual call still takes precedence.
// If neither is set, defaults to ClosedRight.
func (b *VariableBounds[K]) WithClosed(closed Closed) *VariableBounds[K] {
	b.closed = closed
	return b
}

// WithName sets a custom name for this provider.
// If not set, defaults to "variable-bounds".
func (b *VariableBounds[K]) WithName(name string) *VariableBounds[K] {
	b.name = name
	return b
}

// WindowBounds implements BoundsProvider. windowSize is a magnitude in
// ordering-key units. Both returned slices are non-decreasing across
// positions, which downstream consumers may rely on.
func (b *VariableBounds[K]) WindowBounds(numValues, windowSize int, opts BoundsOptions) ([]int, []int, error) {
	if err := checkArgs(b.name, numValues, windowSize); err != nil {
		return nil, nil, err
	}
	if len(b.key) != numValues {
		return nil, nil, newBoundsError(b.name, ErrKeyLength)
	}

	closed := opts.Closed
	if closed == ClosedDefault {
		closed = b.closed
	}
	leftClosed, rightClosed := closed.resolve(true)

	start, end, _ := variableWindowBounds(b.key, windowSize, leftClosed, rightClosed)
	return start, end, nil
}

func (b *VariableBounds[K]) Name() string {
	return b.name
}

// variableWindowBounds runs the two-pointer scan. The start cursor persists
// across outer iterations instead of rescanning from zero, which keeps the
// total inner-loop work linear; steps counts inner-loop comparisons so tests
// can hold that invariant.
//
// With a left-closed policy the start bound is pushed one unit further down
// so the exact boundary value is included. Integer keys sitting at the
// minimum representable value would wrap on that decrement when windowSize
// is zero; callers combining a zero window with a left-closed policy must
// leave one unit of headroom below the smallest key.
func variableWindowBounds[K Key](key []K, windowSize int, leftClosed, rightClosed bool) (start, end []int, steps int) {
	numValues := len(key)
	start = make([]int, numValues)
	end = make([]int, numValues)
	if numValues == 0 {
		return start, end, 0
	}

	start[0] = 0
	if rightClosed {
		end[0] = 1
	}

	// start is the first index inside the interval, end the first index
	// past it.
	for i := 1; i < numValues; i++ {
		endBound := key[i]
		startBound := key[i] - K(windowSize)
		if leftClosed {
			startBound--
		}

		// Advance the start cursor until the key clears the bound. If
		// nothing before i qualifies the window degenerates to the
		// current point.
		start[i] = i
		for j := start[i-1]; j < i; j++ {
			steps++
			if key[j] > startBound {
				start[i] = j
				break
			}
		}

		// The end either extends to include the current point or holds
		// at the previous end.
		if key[end[i-1]] <= endBound {
			end[i] = i + 1
		} else {
			end[i] = end[i-1]
		}
		if !rightClosed {
			end[i]--
		}
	}
	return start, end, steps
}

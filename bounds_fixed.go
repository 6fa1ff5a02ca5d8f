package rollz

// FixedBounds computes boundaries for a constant-count trailing window:
// each position covers the last windowSize observations, with partial
// windows growing from one element at the head of the sequence.
//
// The strategy is count-based only. It needs no ordering key and ignores
// the closed policy: a trailing count window always includes the current
// point and the windowSize-1 points before it.
type FixedBounds struct {
	name string
}

// NewFixedBounds creates a provider for constant-count trailing windows.
//
// When to use:
//   - Moving averages over the last N rows
//   - Rolling statistics where every observation counts equally
//   - Sequences with no meaningful ordering key (row position is the order)
//
// Example:
//
//	fixed := rollz.NewFixedBounds()
//	start, end, _ := fixed.WindowBounds(5, 3, rollz.BoundsOptions{})
//	// start = [0 0 0 1 2], end = [1 2 3 4 5]
//
// Returns a new FixedBounds provider.
func NewFixedBounds() *FixedBounds {
	return &FixedBounds{
		name: "fixed-bounds",
	}
}

// WithName sets a custom name for this provider.
// If not set, defaults to "fixed-bounds".
func (b *FixedBounds) WithName(name string) *FixedBounds {
	b.name = name
	return b
}

// WindowBounds implements BoundsProvider. A windowSize of zero yields empty
// windows at every position; a zero numValues yields empty slices. Neither
// is an error.
func (b *FixedBounds) WindowBounds(numValues, windowSize int, _ BoundsOptions) ([]int, []int, error) {
	if err := checkArgs(b.name, numValues, windowSize); err != nil {
		return nil, nil, err
	}

	start := make([]int, numValues)
	end := make([]int, numValues)

	for i := 0; i < numValues; i++ {
		if i >= windowSize {
			start[i] = i - windowSize + 1
		}
		end[i] = i + 1
	}
	return start, end, nil
}

func (b *FixedBounds) Name() string {
	return b.name
}

package rollz

// ExpandingBounds computes boundaries for an anchored growing window: every
// position covers the entire sequence up to and including itself. This is
// the head regime of FixedBounds promoted to a strategy of its own, for
// consumers computing cumulative statistics through the same contract.
//
// windowSize, the closed policy, and any ordering key are irrelevant to an
// anchored window and are ignored (windowSize is still validated for
// signature uniformity).
type ExpandingBounds struct {
	name string
}

// NewExpandingBounds creates a provider for anchored growing windows.
//
// Example:
//
//	expanding := rollz.NewExpandingBounds()
//	start, end, _ := expanding.WindowBounds(4, 0, rollz.BoundsOptions{})
//	// start = [0 0 0 0], end = [1 2 3 4]
func NewExpandingBounds() *ExpandingBounds {
	return &ExpandingBounds{
		name: "expanding-bounds",
	}
}

// WithName sets a custom name for this provider.
// If not set, defaults to "expanding-bounds".
func (b *ExpandingBounds) WithName(name string) *ExpandingBounds {
	b.name = name
	return b
}

// WindowBounds implements BoundsProvider.
func (b *ExpandingBounds) WindowBounds(numValues, windowSize int, _ BoundsOptions) ([]int, []int, error) {
	if err := checkArgs(b.name, numValues, windowSize); err != nil {
		return nil, nil, err
	}

	start := make([]int, numValues)
	end := make([]int, numValues)
	for i := 0; i < numValues; i++ {
		end[i] = i + 1
	}
	return start, end, nil
}

func (b *ExpandingBounds) Name() string {
	return b.name
}

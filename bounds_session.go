package rollz

// SessionBounds computes trailing boundaries for gap-delimited sessions
// over the ordering key: consecutive positions belong to the same session
// while the gap between their key values is at most the configured gap, and
// each position's window runs from the first index of its session through
// itself.
//
// This expresses session windowing in the same start/end contract as the
// other strategies, so a consumer can aggregate bursts of activity without
// a separate session code path. The key must be monotonically non-decreasing,
// the same unchecked precondition as VariableBounds.
//
// windowSize and the closed policy do not apply to gap-delimited sessions
// and are ignored (the gap is construction-time configuration, and a session
// always includes both of its edges).
type SessionBounds[K Key] struct {
	name string
	key  []K
	gap  K
}

// NewSessionBounds creates a provider for gap-delimited session windows
// over the given ordering key.
//
// When to use:
//   - Grouping bursts of events separated by quiet periods
//   - Cumulative statistics that reset when activity pauses
//
// Example:
//
//	key := []int64{1, 2, 3, 10, 11}
//	sessions := rollz.NewSessionBounds(key, 2)
//	start, end, _ := sessions.WindowBounds(len(key), 0, rollz.BoundsOptions{})
//	// start = [0 0 0 3 3], end = [1 2 3 4 5]: the jump from 3 to 10
//	// exceeds the gap and opens a new session.
//
// Parameters:
//   - key: ordering key, one value per observation, non-decreasing
//   - gap: maximum key distance between neighbors in one session
func NewSessionBounds[K Key](key []K, gap K) *SessionBounds[K] {
	return &SessionBounds[K]{
		name: "session-bounds",
		key:  key,
		gap:  gap,
	}
}

// WithName sets a custom name for this provider.
// If not set, defaults to "session-bounds".
func (b *SessionBounds[K]) WithName(name string) *SessionBounds[K] {
	b.name = name
	return b
}

// WindowBounds implements BoundsProvider. Both returned slices are
// non-decreasing across positions.
func (b *SessionBounds[K]) WindowBounds(numValues, windowSize int, _ BoundsOptions) ([]int, []int, error) {
	if err := checkArgs(b.name, numValues, windowSize); err != nil {
		return nil, nil, err
	}
	if len(b.key) != numValues {
		return nil, nil, newBoundsError(b.name, ErrKeyLength)
	}

	start := make([]int, numValues)
	end := make([]int, numValues)

	sessionStart := 0
	for i := 0; i < numValues; i++ {
		if i > 0 && b.key[i]-b.key[i-1] > b.gap {
			sessionStart = i
		}
		start[i] = sessionStart
		end[i] = i + 1
	}
	return start, end, nil
}

func (b *SessionBounds[K]) Name() string {
	return b.name
}

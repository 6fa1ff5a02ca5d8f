package rollz

import (
	"context"
	"time"
)

// Roller computes variable window boundaries online over a stream of
// arrivals. Each item is stamped with the clock on arrival and one Span is
// emitted per item, describing the trailing window of arrivals whose
// timestamps lie within the configured duration. It is the streaming form
// of VariableBounds with arrival time as the ordering key: the sequence of
// emitted (Start, End) pairs matches the batch computation over the same
// timestamps.
//
// The Roller emits boundaries only. Consumers keep their own buffer of
// items and apply reductions over the indicated index ranges.
type Roller[T any] struct {
	name   string
	clock  Clock
	window time.Duration
	closed Closed
}

// NewRoller creates a processor that emits trailing-window boundaries for
// each arrival on a stream.
//
// When to use:
//   - Rolling calculations over live feeds ("mean of the last 5 seconds")
//   - Driving window validity decisions without buffering inside the core
//   - Reusing the batch boundary semantics in a channel pipeline
//
// Example:
//
//	roller := rollz.NewRoller[Reading](5*time.Second, rollz.RealClock)
//	spans := roller.Process(ctx, readings)
//	for span := range spans {
//		window := buffered[span.Start:span.End]
//		// reduce window...
//	}
//
// Parameters:
//   - window: trailing duration each span covers (negative is treated as zero)
//   - clock: Clock interface for time operations
//
// Returns a new Roller processor with fluent configuration.
func NewRoller[T any](window time.Duration, clock Clock) *Roller[T] {
	if window < 0 {
		window = 0
	}
	return &Roller[T]{
		name:   "roller",
		clock:  clock,
		window: window,
	}
}

// WithClosed sets the closed policy for the trailing windows.
// If not set, defaults to ClosedRight, matching VariableBounds.
func (r *Roller[T]) WithClosed(closed Closed) *Roller[T] {
	r.closed = closed
	return r
}

// WithName sets a custom name for this processor.
// If not set, defaults to "roller".
func (r *Roller[T]) WithName(name string) *Roller[T] {
	r.name = name
	return r
}

// Process consumes items and emits one Span per item. The output channel is
// closed when the input closes or the context is canceled. Boundary state
// (one timestamp per arrival plus two cursors) is retained for the life of
// the stream.
func (r *Roller[T]) Process(ctx context.Context, in <-chan T) <-chan Span {
	out := make(chan Span)

	go func() {
		defer close(out)

		leftClosed, rightClosed := r.closed.resolve(true)
		windowSize := r.window.Nanoseconds()

		var key []int64
		prevStart, prevEnd := 0, 0

		for {
			select {
			case <-ctx.Done():
				return

			case _, ok := <-in:
				if !ok {
					return
				}

				now := r.clock.Now()
				i := len(key)
				key = append(key, now.UnixNano())

				var start, end int
				if i == 0 {
					if rightClosed {
						end = 1
					}
				} else {
					endBound := key[i]
					startBound := key[i] - windowSize
					if leftClosed {
						startBound--
					}

					start = i
					for j := prevStart; j < i; j++ {
						if key[j] > startBound {
							start = j
							break
						}
					}

					if key[prevEnd] <= endBound {
						end = i + 1
					} else {
						end = prevEnd
					}
					if !rightClosed {
						end--
					}
				}
				prevStart, prevEnd = start, end

				span := Span{
					At:    now,
					Index: i,
					Start: start,
					End:   end,
				}
				select {
				case out <- span:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

func (r *Roller[T]) Name() string {
	return r.name
}

// Package testing provides test utilities for rollz.
package testing

import (
	"testing"
	"time"

	rollz "github.com/zoobzio/rollz"
)

// CollectSpans collects all spans from a channel with a timeout.
// This is a shared utility function for integration tests to avoid duplication.
func CollectSpans(t *testing.T, ch <-chan rollz.Span, timeout time.Duration) []rollz.Span {
	t.Helper()

	var spans []rollz.Span
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case span, ok := <-ch:
			if !ok {
				return spans
			}
			spans = append(spans, span)
		case <-timer.C:
			return spans
		}
	}
}

// AssertBounds checks the boundary contract shared by every provider:
// matching lengths and 0 <= start[i] <= end[i] <= numValues.
func AssertBounds(t *testing.T, start, end []int, numValues int) {
	t.Helper()

	if len(start) != numValues || len(end) != numValues {
		t.Fatalf("expected %d boundary pairs, got %d starts and %d ends", numValues, len(start), len(end))
	}
	for i := range start {
		if start[i] < 0 || start[i] > end[i] || end[i] > numValues {
			t.Errorf("boundary %d out of contract: [%d, %d) not within [0, %d]", i, start[i], end[i], numValues)
		}
	}
}

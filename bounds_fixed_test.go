package rollz

import (
	"errors"
	"reflect"
	"testing"
)

func TestFixedBounds_TrailingWindow(t *testing.T) {
	fixed := NewFixedBounds()

	start, end, err := fixed.WindowBounds(5, 3, BoundsOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := []int{0, 0, 0, 1, 2}
	wantEnd := []int{1, 2, 3, 4, 5}
	if !reflect.DeepEqual(start, wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, start)
	}
	if !reflect.DeepEqual(end, wantEnd) {
		t.Errorf("expected end %v, got %v", wantEnd, end)
	}
}

func TestFixedBounds_ZeroWindow(t *testing.T) {
	fixed := NewFixedBounds()

	start, end, err := fixed.WindowBounds(4, 0, BoundsOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range start {
		if start[i] != end[i] {
			t.Errorf("expected empty window at %d, got [%d, %d)", i, start[i], end[i])
		}
	}
}

func TestFixedBounds_ZeroLength(t *testing.T) {
	fixed := NewFixedBounds()

	start, end, err := fixed.WindowBounds(0, 3, BoundsOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(start) != 0 || len(end) != 0 {
		t.Errorf("expected empty slices, got start=%v end=%v", start, end)
	}
}

func TestFixedBounds_WindowLargerThanSequence(t *testing.T) {
	fixed := NewFixedBounds()

	start, end, err := fixed.WindowBounds(3, 10, BoundsOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every window grows from the anchor; none reaches full width.
	wantStart := []int{0, 0, 0}
	wantEnd := []int{1, 2, 3}
	if !reflect.DeepEqual(start, wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, start)
	}
	if !reflect.DeepEqual(end, wantEnd) {
		t.Errorf("expected end %v, got %v", wantEnd, end)
	}
}

func TestFixedBounds_Invariants(t *testing.T) {
	fixed := NewFixedBounds()

	for _, tc := range []struct {
		name       string
		numValues  int
		windowSize int
	}{
		{"single element", 1, 1},
		{"typical", 10, 4},
		{"window of one", 7, 1},
		{"zero window", 6, 0},
		{"oversized window", 3, 100},
	} {
		t.Run(tc.name, func(t *testing.T) {
			start, end, err := fixed.WindowBounds(tc.numValues, tc.windowSize, BoundsOptions{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertBoundsInvariants(t, start, end, tc.numValues)
		})
	}
}

func TestFixedBounds_InvalidArguments(t *testing.T) {
	fixed := NewFixedBounds()

	_, _, err := fixed.WindowBounds(-1, 3, BoundsOptions{})
	if !errors.Is(err, ErrNegativeLength) {
		t.Errorf("expected ErrNegativeLength, got %v", err)
	}

	_, _, err = fixed.WindowBounds(5, -1, BoundsOptions{})
	if !errors.Is(err, ErrNegativeWindow) {
		t.Errorf("expected ErrNegativeWindow, got %v", err)
	}
}

func TestFixedBounds_Idempotent(t *testing.T) {
	fixed := NewFixedBounds()

	start1, end1, err := fixed.WindowBounds(8, 3, BoundsOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	start2, end2, err := fixed.WindowBounds(8, 3, BoundsOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(start1, start2) || !reflect.DeepEqual(end1, end2) {
		t.Errorf("expected identical outputs, got (%v,%v) then (%v,%v)", start1, end1, start2, end2)
	}

	// Outputs are fresh allocations, not shared.
	if len(start1) > 0 {
		start1[0] = -99
		if start2[0] == -99 {
			t.Error("expected outputs to be independently owned")
		}
	}
}

func TestFixedBounds_Name(t *testing.T) {
	fixed := NewFixedBounds()
	if fixed.Name() != "fixed-bounds" {
		t.Errorf("expected default name, got %q", fixed.Name())
	}

	named := NewFixedBounds().WithName("last-n")
	if named.Name() != "last-n" {
		t.Errorf("expected custom name, got %q", named.Name())
	}
}

// assertBoundsInvariants checks the contract every provider guarantees:
// matching lengths and 0 <= start[i] <= end[i] <= numValues.
func assertBoundsInvariants(t *testing.T, start, end []int, numValues int) {
	t.Helper()

	if len(start) != numValues || len(end) != numValues {
		t.Fatalf("expected %d boundary pairs, got %d starts and %d ends", numValues, len(start), len(end))
	}
	for i := range start {
		if start[i] < 0 || start[i] > end[i] || end[i] > numValues {
			t.Errorf("invariant violated at %d: [%d, %d) outside [0, %d]", i, start[i], end[i], numValues)
		}
	}
}

package rollz

import (
	"errors"
	"reflect"
	"testing"
)

func TestExpandingBounds_AnchoredGrowth(t *testing.T) {
	expanding := NewExpandingBounds()

	start, end, err := expanding.WindowBounds(4, 0, BoundsOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := []int{0, 0, 0, 0}
	wantEnd := []int{1, 2, 3, 4}
	if !reflect.DeepEqual(start, wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, start)
	}
	if !reflect.DeepEqual(end, wantEnd) {
		t.Errorf("expected end %v, got %v", wantEnd, end)
	}
}

func TestExpandingBounds_WindowSizeIgnored(t *testing.T) {
	expanding := NewExpandingBounds()

	small, smallEnd, err := expanding.WindowBounds(5, 1, BoundsOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	large, largeEnd, err := expanding.WindowBounds(5, 100, BoundsOptions{Closed: ClosedNeither})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(small, large) || !reflect.DeepEqual(smallEnd, largeEnd) {
		t.Errorf("expected identical bounds regardless of window size, got (%v,%v) and (%v,%v)",
			small, smallEnd, large, largeEnd)
	}
}

func TestExpandingBounds_ZeroLength(t *testing.T) {
	expanding := NewExpandingBounds()

	start, end, err := expanding.WindowBounds(0, 0, BoundsOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(start) != 0 || len(end) != 0 {
		t.Errorf("expected empty slices, got start=%v end=%v", start, end)
	}
}

func TestExpandingBounds_InvalidArguments(t *testing.T) {
	expanding := NewExpandingBounds()

	_, _, err := expanding.WindowBounds(-3, 0, BoundsOptions{})
	if !errors.Is(err, ErrNegativeLength) {
		t.Errorf("expected ErrNegativeLength, got %v", err)
	}
	_, _, err = expanding.WindowBounds(3, -1, BoundsOptions{})
	if !errors.Is(err, ErrNegativeWindow) {
		t.Errorf("expected ErrNegativeWindow, got %v", err)
	}
}

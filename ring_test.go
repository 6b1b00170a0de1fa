package curved

import (
	"errors"
	"testing"
)

func TestRingClosure(t *testing.T) {
	if _, err := NewCircularRing(mustCoords(t, 0, 0, 1, 1, 2, 0), 0.01); !errors.Is(err, ErrNotClosed) {
		t.Errorf("open circular ring: got %v, want ErrNotClosed", err)
	}
	if _, err := NewLinearRing(mustCoords(t, 0, 0, 1, 0, 0, 0)); !errors.Is(err, ErrControlPointCount) {
		t.Errorf("short linear ring: got %v, want ErrControlPointCount", err)
	}
	if _, err := NewLinearRing(mustCoords(t, 0, 0, 1, 0, 1, 1, 0, 1)); !errors.Is(err, ErrNotClosed) {
		t.Errorf("open linear ring: got %v, want ErrNotClosed", err)
	}
	_, err := NewCompoundRing([]Curve{
		mustLinearString(t, 0, 0, 4, 0),
		mustLinearString(t, 4, 0, 4, 4),
	}, 0.01)
	if !errors.Is(err, ErrNotClosed) {
		t.Errorf("open compound ring: got %v, want ErrNotClosed", err)
	}

	empty, err := NewLinearRing(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !empty.IsEmpty() {
		t.Error("ring without points isn't empty")
	}
}

func TestRingIsCurved(t *testing.T) {
	circ, err := NewCircularRing(mustCoords(t, 10, 0, -10, 0, 10, 0), 0.01)
	if err != nil {
		t.Fatal(err)
	}
	d, err := NewCompoundRing([]Curve{
		mustLinearString(t, -1, 0, 1, 0),
		mustCircularString(t, 0.01, 1, 0, 0, 1, -1, 0),
	}, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	triangle, err := NewCompoundRing([]Curve{
		mustLinearString(t, 0, 0, 4, 0, 4, 4),
		mustLinearString(t, 4, 4, 0, 0),
	}, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	square, err := NewLinearRing(mustCoords(t, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		ring Ring
		want bool
	}{
		{"circular", circ, true},
		{"compound with arc", d, true},
		{"compound without arc", triangle, false},
		{"linear", square, false},
	}
	for _, tt := range tests {
		if got := tt.ring.IsCurved(); got != tt.want {
			t.Errorf("%s: got %t, want %t", tt.name, got, tt.want)
		}
		ls, err := tt.ring.LinearizeRing(0.01)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if !ls.IsClosed() {
			t.Errorf("%s: linearization isn't closed", tt.name)
		}
	}
}

func TestRingReverse(t *testing.T) {
	square, err := NewLinearRing(mustCoords(t, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	r := square.Reverse()
	diff(t, mustCoords(t, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0), r.ControlPoints(), approx)
	if !r.IsClosed() {
		t.Error("reversed ring isn't closed")
	}
}

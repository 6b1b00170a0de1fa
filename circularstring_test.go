package curved

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustCircularString(t *testing.T, tolerance float64, ordinates ...float64) *CircularString {
	t.Helper()
	s, err := NewCircularStringFromOrdinates(ordinates, tolerance)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestCircularStringPointCount(t *testing.T) {
	for n := range 10 {
		_, err := NewCircularString(make([]Coord, n), 0.01)
		valid := n == 0 || n == 3 || n == 5 || n == 7 || n == 9
		if valid && err != nil {
			t.Errorf("%d points: unexpected error %v", n, err)
		}
		if !valid && !errors.Is(err, ErrControlPointCount) {
			t.Errorf("%d points: got %v, want ErrControlPointCount", n, err)
		}
	}

	if _, err := NewCircularStringFromOrdinates([]float64{0, 0, 1, 1, 2}, 0.01); !errors.Is(err, ErrOrdinateCount) {
		t.Errorf("got %v, want ErrOrdinateCount", err)
	}
	if _, err := NewCircularStringFromOrdinates([]float64{0, 0, 1, 1, 2, 0}, -1); !errors.Is(err, ErrNegativeTolerance) {
		t.Errorf("got %v, want ErrNegativeTolerance", err)
	}
}

func TestCircularStringArcs(t *testing.T) {
	s := mustCircularString(t, 0.01, 0, 0, 1, 1, 2, 0, 3, -1, 4, 0)
	diff(t, 2, s.NumArcs())
	diff(t, 5, s.NumPoints())

	var got [][3]Point
	for i, a := range s.Arcs() {
		diff(t, a.ControlPoints(), s.ArcN(i).ControlPoints())
		got = append(got, a.ControlPoints())
	}
	want := [][3]Point{
		{Pt(0, 0), Pt(1, 1), Pt(2, 0)},
		{Pt(2, 0), Pt(3, -1), Pt(4, 0)},
	}
	diff(t, want, got)

	// Arcs are copies.
	s.ArcN(0).Start = Pt(100, 100)
	diff(t, Pt(0, 0), s.ArcN(0).Start)

	defer func() {
		if recover() == nil {
			t.Error("ArcN out of range didn't panic")
		}
	}()
	s.ArcN(2)
}

func TestCircularStringJunction(t *testing.T) {
	s := mustCircularString(t, 0.01, 0, 0, 1, 1, 2, 0, 3, -1, 4, 0)
	coords, err := s.LinearizedCoords(0.01)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for i, c := range coords {
		if c.Equals2D(XY(2, 0)) {
			n++
		}
		if i > 0 && c.Equals2D(coords[i-1]) {
			t.Errorf("duplicate point %v at %d", c, i)
		}
	}
	diff(t, 1, n)

	first, err := s.ArcN(0).Linearize(0.01)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.ArcN(1).Linearize(0.01)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, len(slices.Collect(first))+len(slices.Collect(second))-1, len(coords))
}

func TestCircularStringCache(t *testing.T) {
	s := mustCircularString(t, 0.01, 0, 0, 1, 1, 2, 0)
	if s.cache.load() != nil {
		t.Fatal("cache filled before linearization")
	}
	if _, err := s.LinearizeTolerance(0.5); err != nil {
		t.Fatal(err)
	}
	if s.cache.load() != nil {
		t.Fatal("linearization at a foreign tolerance filled the cache")
	}
	ls, err := s.Linearize()
	if err != nil {
		t.Fatal(err)
	}
	cached := s.cache.load()
	if cached == nil {
		t.Fatal("cache not filled")
	}
	again, err := s.Linearize()
	if err != nil {
		t.Fatal(err)
	}
	if s.cache.load() != cached {
		t.Error("second linearization replaced the cache")
	}
	diff(t, ls.AsText(), again.AsText())

	// Callers can't modify the cached coordinates.
	coords, err := s.LinearizedCoords(0.01)
	if err != nil {
		t.Fatal(err)
	}
	coords[0] = XY(-1, -1)
	diff(t, XY(0, 0), cached.coords[0], cmpopts.EquateNaNs())
}

func TestCircularStringEmpty(t *testing.T) {
	s, err := NewCircularString(nil, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsEmpty() || s.IsClosed() {
		t.Errorf("got empty=%t closed=%t, want empty and open", s.IsEmpty(), s.IsClosed())
	}
	if _, ok := s.StartPoint(); ok {
		t.Error("empty string has a start point")
	}
	diff(t, 0, s.NumArcs())
	ls, err := s.Linearize()
	if err != nil {
		t.Fatal(err)
	}
	if !ls.IsEmpty() {
		t.Errorf("got %s, want empty", ls.AsText())
	}
	if !s.BoundingBox().IsEmpty() {
		t.Errorf("got box %v, want empty", s.BoundingBox())
	}
	diff(t, "CIRCULARSTRING EMPTY", s.CurvedText())
}

func TestCircularStringClosed(t *testing.T) {
	s := mustCircularString(t, 0.01, 1, 0, -1, 0, 1, 0)
	if !s.IsClosed() {
		t.Error("full circle isn't closed")
	}
	diff(t, Rect{-1, -1, 1, 1}, s.BoundingBox(), cmpopts.EquateApprox(0, 1e-12))

	ls, err := s.Linearize()
	if err != nil {
		t.Fatal(err)
	}
	if !ls.IsClosed() {
		t.Error("linearization of a full circle isn't closed")
	}
}

func TestCircularStringBoundingBox(t *testing.T) {
	s := mustCircularString(t, 0.01, 0, 0, 1, 1, 2, 0, 3, -1, 4, 0)
	diff(t, Rect{0, -1, 4, 1}, s.BoundingBox(), cmpopts.EquateApprox(0, 1e-12))
}

func TestCircularStringLength(t *testing.T) {
	s := mustCircularString(t, 1e-6, 0, 0, 1, 1, 2, 0)
	l, err := Length(s, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, math.Pi, l, cmpopts.EquateApprox(1e-5, 0))
}

func TestCircularStringReverse(t *testing.T) {
	s := mustCircularString(t, 0.01, 0, 0, 1, 1, 2, 0, 3, -1, 4, 0)
	r := s.Reverse()
	want := s.ControlPoints()
	slices.Reverse(want)
	diff(t, want, r.ControlPoints(), cmpopts.EquateNaNs())

	fwd, err := s.LinearizedCoords(0.01)
	if err != nil {
		t.Fatal(err)
	}
	bwd, err := r.LinearizedCoords(0.01)
	if err != nil {
		t.Fatal(err)
	}
	slices.Reverse(bwd)
	diff(t, fwd, bwd, approx)
}

func TestCircularStringEquality(t *testing.T) {
	s := mustCircularString(t, 0.01, 0, 0, 1, 1, 2, 0)
	same := mustCircularString(t, 0.5, 0, 0, 1, 1, 2, 0)
	other := mustCircularString(t, 0.01, 0, 0, 1, 2, 2, 0)

	if !s.EqualsExact(same, 0) {
		t.Error("identical strings aren't equal")
	}
	if s.EqualsExact(other, 1e-9) {
		t.Error("different strings are equal")
	}
	if !s.EqualsTopologically(s.Reverse()) {
		t.Error("string isn't topologically equal to its reverse")
	}
	if s.EqualsTopologically(other) {
		t.Error("different strings are topologically equal")
	}

	ls, err := s.Linearize()
	if err != nil {
		t.Fatal(err)
	}
	if !s.EqualsLinear(ls, 0) {
		t.Error("string isn't equal to its own linearization")
	}
	ls2, err := other.Linearize()
	if err != nil {
		t.Fatal(err)
	}
	if s.EqualsLinear(ls2, 1e-9) {
		t.Error("string is equal to a different linearization")
	}
}

func TestCircularStringWithTolerance(t *testing.T) {
	s := mustCircularString(t, 1e-4, 0, 0, 1, 1, 2, 0)
	coarse, err := s.WithTolerance(CoarsestTolerance)
	if err != nil {
		t.Fatal(err)
	}
	fine, err := s.LinearizedCoords(s.Tolerance())
	if err != nil {
		t.Fatal(err)
	}
	rough, err := coarse.LinearizedCoords(coarse.Tolerance())
	if err != nil {
		t.Fatal(err)
	}
	if len(rough) >= len(fine) {
		t.Errorf("coarse linearization has %d points, fine one %d", len(rough), len(fine))
	}
	if _, err := s.WithTolerance(-1); !errors.Is(err, ErrNegativeTolerance) {
		t.Errorf("got %v, want ErrNegativeTolerance", err)
	}
}

func TestCircularStringInteriorPoint(t *testing.T) {
	s := mustCircularString(t, 0.01, 0, 0, 1, 1, 2, 0, 3, -1, 4, 0)
	p, ok := s.InteriorPoint()
	if !ok {
		t.Fatal("no interior point")
	}
	diff(t, Pt(2, 0), p)
}

func TestCircularStringConfig(t *testing.T) {
	f, err := NewFactory(Config{MinSegmentsPerQuadrant: 2, MaxSegmentsPerQuadrant: 4})
	if err != nil {
		t.Fatal(err)
	}
	s, err := f.NewCircularString(mustCoords(t, 1, 0, 0, 1, -1, 0), 0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, f.Config(), s.Config())
	coords, err := s.LinearizedCoords(0)
	if err != nil {
		t.Fatal(err)
	}
	// Tolerance 0 picks the maximum of 4 segments per quadrant.
	diff(t, 9, len(coords))
}

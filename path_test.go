package curved

import (
	"errors"
	"slices"
	"testing"
)

func TestPathOf(t *testing.T) {
	tests := []struct {
		name   string
		coords []Coord
		want   []PathElement
	}{
		{"empty", nil, nil},
		{
			"open",
			[]Coord{XY(0, 0), XY(1, 0), XY(1, 1)},
			[]PathElement{MoveTo(Pt(0, 0)), LineTo(Pt(1, 0)), LineTo(Pt(1, 1))},
		},
		{
			"closed",
			[]Coord{XY(0, 0), XY(1, 0), XY(1, 1), XY(0, 0)},
			[]PathElement{MoveTo(Pt(0, 0)), LineTo(Pt(1, 0)), LineTo(Pt(1, 1)), ClosePath()},
		},
		{
			// Two points that coincide aren't a closed ring.
			"back and forth",
			[]Coord{XY(0, 0), XY(0, 0)},
			[]PathElement{MoveTo(Pt(0, 0)), LineTo(Pt(0, 0))},
		},
	}
	for _, tt := range tests {
		diff(t, tt.want, slices.Collect(pathOf(tt.coords)))
	}
}

func TestConcatPathsStops(t *testing.T) {
	a := pathOf([]Coord{XY(0, 0), XY(1, 0)})
	b := pathOf([]Coord{XY(5, 5), XY(6, 5)})
	var got []PathElement
	for el := range concatPaths(a, b) {
		got = append(got, el)
		if len(got) == 3 {
			break
		}
	}
	diff(t, []PathElement{MoveTo(Pt(0, 0)), LineTo(Pt(1, 0)), MoveTo(Pt(5, 5))}, got)
}

func TestSVG(t *testing.T) {
	path := pathOf([]Coord{XY(0, 0), XY(1.26, 0), XY(2, 0.5), XY(0, 0)})
	diff(t, "M0,0 L1.26,0 L2,0.5 Z", SVG(path, SVGOptions{}))
	diff(t, "M0,0 L1.3,0 L2,0.5 Z", SVG(path, SVGOptions{MaxPrecision: 1}))
	diff(t, "M0,0 L1,0 L2,1 Z", SVG(pathOf([]Coord{XY(0, 0), XY(1, 0), XY(2, 1), XY(0, 0)}), SVGOptions{MaxPrecision: 3}))
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteSVGError(t *testing.T) {
	path := pathOf([]Coord{XY(0, 0), XY(1, 0)})
	if err := WriteSVG(failingWriter{}, path, SVGOptions{}); !errors.Is(err, errWrite) {
		t.Errorf("got %v, want %v", err, errWrite)
	}
}

func TestPathElementString(t *testing.T) {
	diff(t, "ClosePath()", ClosePath().String())
	if _, ok := ClosePath().EndPoint(); ok {
		t.Error("ClosePath has an end point")
	}
	p, ok := LineTo(Pt(3, 4)).EndPoint()
	if !ok {
		t.Fatal("LineTo has no end point")
	}
	diff(t, Pt(3, 4), p)
}

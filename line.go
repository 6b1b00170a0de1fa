package curved

import (
	"math"
)

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance between pt and the closest point of
// the segment, and that point's parameter t in [0, 1].
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// Distance returns the distance between pt and the segment.
func (l Line) Distance(pt Point) float64 {
	d, _ := l.Nearest(pt)
	return math.Sqrt(d)
}

// Crosses reports whether the two segments intersect in a single point that
// is interior to both of them. Segments that merely touch at an endpoint, or
// that overlap collinearly, do not cross.
func (l Line) Crosses(o Line) bool {
	o1 := OrientationOf(l.P0, l.P1, o.P0)
	o2 := OrientationOf(l.P0, l.P1, o.P1)
	o3 := OrientationOf(o.P0, o.P1, l.P0)
	o4 := OrientationOf(o.P0, o.P1, l.P1)
	if o1 == Collinear || o2 == Collinear || o3 == Collinear || o4 == Collinear {
		return false
	}
	return o1 != o2 && o3 != o4
}

package curved

import (
	"fmt"
	"math"
)

// Point is a location in the plane. Arc control points, centers and
// linearized samples are all Points; [Coord] adds the Z and M channels.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (pt Point) String() string { return fmt.Sprintf("(%g, %g)", pt.X, pt.Y) }

// Coord returns pt as a coordinate without Z or M values.
func (pt Point) Coord() Coord { return XY(pt.X, pt.Y) }

func (pt Point) Translate(v Vec2) Point { return Point{pt.X + v.X, pt.Y + v.Y} }

// Sub returns the displacement from o to pt.
func (pt Point) Sub(o Point) Vec2 { return Vec2{pt.X - o.X, pt.Y - o.Y} }

func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

func (pt Point) Midpoint(o Point) Point {
	return Point{(pt.X + o.X) / 2, (pt.Y + o.Y) / 2}
}

func (pt Point) Distance(o Point) float64 { return pt.Sub(o).Hypot() }

func (pt Point) DistanceSquared(o Point) float64 { return pt.Sub(o).Hypot2() }

// IsInf reports whether either ordinate is infinite.
func (pt Point) IsInf() bool { return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) }

// IsNaN reports whether either ordinate is NaN.
func (pt Point) IsNaN() bool { return math.IsNaN(pt.X) || math.IsNaN(pt.Y) }

// Orientation describes the turn made by three consecutive points.
type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "Clockwise"
	case Collinear:
		return "Collinear"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// OrientationOf returns the orientation of the turn p0 → p1 → p2 in a y-up
// coordinate system.
func OrientationOf(p0, p1, p2 Point) Orientation {
	c := p1.Sub(p0).Cross(p2.Sub(p1))
	switch {
	case c > 0:
		return CounterClockwise
	case c < 0:
		return Clockwise
	default:
		return Collinear
	}
}

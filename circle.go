package curved

import (
	"fmt"
	"iter"
	"math"

	"github.com/peterstace/simplefeatures/geom"
)

type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return c.Winding(pt) != 0
}

func (c Circle) Winding(pt Point) int {
	if pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius {
		return 1
	} else {
		return 0
	}
}

// PointAt returns the point on the circle at the given angle.
func (c Circle) PointAt(angle float64) Point {
	return c.Center.Translate(VecFromAngle(angle).Mul(c.Radius))
}

// SamplePoints returns the points on the circle at the given angles.
func (c Circle) SamplePoints(angles ...float64) []Point {
	out := make([]Point, len(angles))
	for i, th := range angles {
		out[i] = c.PointAt(th)
	}
	return out
}

// Arc returns the arc of c that starts at startAngle, passes through
// midAngle and ends at endAngle.
func (c Circle) Arc(startAngle, midAngle, endAngle float64) *Arc {
	return NewArc(c.PointAt(startAngle), c.PointAt(midAngle), c.PointAt(endAngle))
}

// FullArc returns the closed arc that starts and ends at angle 0 and passes
// through angle π.
func (c Circle) FullArc() *Arc {
	p := c.PointAt(0)
	return NewArc(p, c.PointAt(math.Pi), p)
}

// Linearize approximates the whole circle by a closed polyline with the
// given maximum deviation, using [DefaultConfig].
func (c Circle) Linearize(tolerance float64) (geom.LineString, error) {
	return c.LinearizeWith(DefaultConfig(), tolerance)
}

func (c Circle) LinearizeWith(cfg Config, tolerance float64) (geom.LineString, error) {
	seq, err := c.FullArc().LinearizeWith(cfg, tolerance)
	if err != nil {
		return geom.LineString{}, err
	}
	var buf OrdinateBuffer
	buf.AddSeq(seq)
	return geom.NewLineString(buf.Sequence())
}

// PathElements returns the outline of the circle as a closed path.
func (c Circle) PathElements(tolerance float64) iter.Seq[PathElement] {
	seq, err := c.FullArc().Linearize(tolerance)
	if err != nil {
		return func(func(PathElement) bool) {}
	}
	var buf OrdinateBuffer
	buf.AddSeq(seq)
	return pathOf(buf.coords)
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle(%v, %g)", c.Center, c.Radius)
}

package curved

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the plane, such as the offset of a point from
// an arc's center.
type Vec2 struct {
	X, Y float64
}

func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) String() string { return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y) }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(f float64) Vec2   { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 { return math.Hypot(v.X, v.Y) }

// Hypot2 returns the squared length of v without taking a square root.
func (v Vec2) Hypot2() float64 { return v.Dot(v) }

// Angle returns atan2(y, x), the counter-clockwise angle from the positive
// x axis in (-π, π].
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Lerp moves the fraction t of the way from v to o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return v.Add(o.Sub(v).Mul(t))
}

// VecFromAngle returns the unit vector at angle th, measured in radians
// counter-clockwise from the positive x axis. Arc samples are the center
// translated by this vector scaled to the radius.
func VecFromAngle(th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{X: cos, Y: sin}
}

package curved

import (
	"math"
	"strconv"
	"strings"
)

// Coord is the storage unit for control points and linearized output: a
// planar position plus two auxiliary channels, Z and M. Channels that carry
// no value are NaN.
type Coord struct {
	X, Y, Z, M float64
}

// XY returns a coordinate with the given planar position and no Z or M value.
func XY(x, y float64) Coord {
	return Coord{X: x, Y: y, Z: math.NaN(), M: math.NaN()}
}

// XYM returns a coordinate carrying a measure value.
func XYM(x, y, m float64) Coord {
	return Coord{X: x, Y: y, Z: math.NaN(), M: m}
}

// XYZ returns a coordinate carrying an elevation.
func XYZ(x, y, z float64) Coord {
	return Coord{X: x, Y: y, Z: z, M: math.NaN()}
}

func (c Coord) Point() Point { return Point{X: c.X, Y: c.Y} }

func (c Coord) HasZ() bool { return !math.IsNaN(c.Z) }
func (c Coord) HasM() bool { return !math.IsNaN(c.M) }

// Equals2D reports whether c and o have the same planar position.
func (c Coord) Equals2D(o Coord) bool {
	return c.X == o.X && c.Y == o.Y
}

// Equals reports whether all four channels of c and o are equal. Unlike ==,
// two NaN channels compare equal.
func (c Coord) Equals(o Coord) bool {
	return c.X == o.X && c.Y == o.Y && sameOrdinate(c.Z, o.Z) && sameOrdinate(c.M, o.M)
}

func sameOrdinate(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func (c Coord) String() string {
	var sb strings.Builder
	c.appendText(&sb)
	return sb.String()
}

// appendText writes the coordinate in well-known-text order: x y [z] [m].
func (c Coord) appendText(sb *strings.Builder) {
	sb.WriteString(formatOrdinate(c.X))
	sb.WriteByte(' ')
	sb.WriteString(formatOrdinate(c.Y))
	if c.HasZ() {
		sb.WriteByte(' ')
		sb.WriteString(formatOrdinate(c.Z))
	}
	if c.HasM() {
		sb.WriteByte(' ')
		sb.WriteString(formatOrdinate(c.M))
	}
}

func formatOrdinate(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func coordsEqual(a, b []Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

// coordsEqualTolerance compares the planar positions of a and b, allowing
// each ordinate to differ by at most tolerance.
func coordsEqualTolerance(a, b []Coord, tolerance float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i].X-b[i].X) > tolerance || math.Abs(a[i].Y-b[i].Y) > tolerance {
			return false
		}
	}
	return true
}

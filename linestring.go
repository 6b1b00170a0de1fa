package curved

import (
	"fmt"
	"iter"
	"math"

	"github.com/peterstace/simplefeatures/geom"
)

// LinearString is a chain of straight segments. It appears as a segment of
// a [CompoundCurve] and as the boundary of a [LinearRing].
type LinearString struct {
	coords []Coord
}

// NewLinearString returns the chain through coords. A non-empty chain needs
// at least two points.
func NewLinearString(coords []Coord) (*LinearString, error) {
	if len(coords) == 1 {
		return nil, fmt.Errorf("%w: a linear string needs 0 or at least 2 points, got 1", ErrControlPointCount)
	}
	return &LinearString{coords: cloneCoords(coords)}, nil
}

// FromLineString converts a linear geometry into a chain, keeping Z and M
// values.
func FromLineString(ls geom.LineString) (*LinearString, error) {
	seq := ls.Coordinates()
	coords := make([]Coord, seq.Length())
	for i := range coords {
		c := seq.Get(i)
		coords[i] = XY(c.X, c.Y)
		if c.Type.Is3D() {
			coords[i].Z = c.Z
		}
		if c.Type.IsMeasured() {
			coords[i].M = c.M
		}
	}
	return NewLinearString(coords)
}

func (s *LinearString) ControlPoints() []Coord    { return cloneCoords(s.coords) }
func (s *LinearString) NumPoints() int            { return len(s.coords) }
func (s *LinearString) StartPoint() (Coord, bool) { return firstCoord(s.coords) }
func (s *LinearString) EndPoint() (Coord, bool)   { return lastCoord(s.coords) }
func (s *LinearString) IsEmpty() bool             { return len(s.coords) == 0 }
func (s *LinearString) BoundingBox() Rect         { return controlBoundingBox(s.coords) }
func (s *LinearString) Reverse() *LinearString    { return &LinearString{coords: reversedCoords(s.coords)} }
func (s *LinearString) reverseCurve() Curve       { return s.Reverse() }
func (s *LinearString) All() iter.Seq[Coord]      { return (&OrdinateBuffer{coords: s.coords}).All() }
func (s *LinearString) Tolerance() float64        { return math.Inf(1) }

func (s *LinearString) PathElements(float64) iter.Seq[PathElement] {
	return pathOf(s.coords)
}

func (s *LinearString) IsClosed() bool {
	return len(s.coords) > 0 && s.coords[0].Equals2D(s.coords[len(s.coords)-1])
}

// Linearize returns the chain unchanged as a linear geometry.
func (s *LinearString) Linearize() (geom.LineString, error) {
	return lineStringOf(s.coords)
}

// LinearizeTolerance is like Linearize; the tolerance is only validated.
func (s *LinearString) LinearizeTolerance(tolerance float64) (geom.LineString, error) {
	if err := checkTolerance(tolerance); err != nil {
		return geom.LineString{}, err
	}
	return lineStringOf(s.coords)
}

func (s *LinearString) LinearizedCoords(tolerance float64) ([]Coord, error) {
	if err := checkTolerance(tolerance); err != nil {
		return nil, err
	}
	return cloneCoords(s.coords), nil
}

func (s *LinearString) appendLinearized(buf *OrdinateBuffer, _ float64) error {
	buf.AddRange(s.coords...)
	return nil
}

// EqualsExact reports whether both chains have the same number of points and
// corresponding points are within tolerance of each other.
func (s *LinearString) EqualsExact(o *LinearString, tolerance float64) bool {
	return coordsEqualTolerance(s.coords, o.coords, tolerance)
}

func (s *LinearString) CurvedText() string { return curvedText(s) }
func (s *LinearString) String() string     { return s.CurvedText() }

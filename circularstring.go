package curved

import (
	"fmt"
	"iter"
	"slices"

	"github.com/peterstace/simplefeatures/geom"
)

// CircularString is a chain of circular arcs. Consecutive arcs share an
// endpoint, so n arcs are described by 2n+1 control points: arc i runs
// through control points 2i, 2i+1 and 2i+2.
//
// The linearization at the string's own tolerance is computed once and
// cached. A CircularString must not be copied after first use.
type CircularString struct {
	cfg       Config
	coords    []Coord
	tolerance float64
	cache     linearCache
}

func validateCircularCount(n int) error {
	if n == 0 || n == 3 || (n > 3 && n%2 == 1) {
		return nil
	}
	return fmt.Errorf("%w: a circular string is made of an odd number of points, "+
		"with a minimum of 3 and 2 more for each additional arc; found %d", ErrControlPointCount, n)
}

// newCircularString expects validated arguments.
func newCircularString(cfg Config, points []Coord, tolerance float64) *CircularString {
	return &CircularString{
		cfg:       cfg,
		coords:    points,
		tolerance: tolerance,
	}
}

func (s *CircularString) ControlPoints() []Coord    { return cloneCoords(s.coords) }
func (s *CircularString) NumPoints() int            { return len(s.coords) }
func (s *CircularString) StartPoint() (Coord, bool) { return firstCoord(s.coords) }
func (s *CircularString) EndPoint() (Coord, bool)   { return lastCoord(s.coords) }
func (s *CircularString) IsEmpty() bool             { return len(s.coords) == 0 }
func (s *CircularString) Tolerance() float64        { return s.tolerance }
func (s *CircularString) Config() Config            { return s.cfg }

// IsClosed reports whether the first and last control points share a planar
// position.
func (s *CircularString) IsClosed() bool {
	return len(s.coords) > 0 && s.coords[0].Equals2D(s.coords[len(s.coords)-1])
}

// NumArcs returns the number of arcs in the chain.
func (s *CircularString) NumArcs() int {
	if len(s.coords) == 0 {
		return 0
	}
	return (len(s.coords)-3)/2 + 1
}

// ArcN returns a copy of the i-th arc. It panics if i is out of range.
func (s *CircularString) ArcN(i int) *Arc {
	if i < 0 || i >= s.NumArcs() {
		panic(fmt.Sprintf("arc index %d out of range [0, %d)", i, s.NumArcs()))
	}
	base := 2 * i
	return NewArc(s.coords[base].Point(), s.coords[base+1].Point(), s.coords[base+2].Point())
}

// Arcs iterates over copies of the arcs in order.
func (s *CircularString) Arcs() iter.Seq2[int, *Arc] {
	return func(yield func(int, *Arc) bool) {
		for i := range s.NumArcs() {
			if !yield(i, s.ArcN(i)) {
				return
			}
		}
	}
}

func (s *CircularString) appendLinearized(buf *OrdinateBuffer, tolerance float64) error {
	first := true
	for _, arc := range s.Arcs() {
		if !first {
			// The previous arc ended on this arc's start point.
			if err := buf.Truncate(buf.Len() - 1); err != nil {
				return err
			}
		}
		first = false
		arc.appendLinearized(buf, s.cfg, tolerance)
	}
	return nil
}

// Linearize approximates the chain at its own tolerance. The result is
// cached.
func (s *CircularString) Linearize() (geom.LineString, error) {
	return s.LinearizeTolerance(s.tolerance)
}

// LinearizeTolerance approximates the chain so that no chord deviates from
// its arc by more than tolerance.
func (s *CircularString) LinearizeTolerance(tolerance float64) (geom.LineString, error) {
	l, err := linearize(s, &s.cache, tolerance)
	if err != nil {
		return geom.LineString{}, err
	}
	return l.line, nil
}

func (s *CircularString) LinearizedCoords(tolerance float64) ([]Coord, error) {
	l, err := linearize(s, &s.cache, tolerance)
	if err != nil {
		return nil, err
	}
	return cloneCoords(l.coords), nil
}

func (s *CircularString) PathElements(tolerance float64) iter.Seq[PathElement] {
	coords, err := s.LinearizedCoords(tolerance)
	if err != nil {
		return pathOf(nil)
	}
	return pathOf(coords)
}

// BoundingBox returns the union of the arcs' extents.
func (s *CircularString) BoundingBox() Rect {
	r := EmptyRect()
	for _, arc := range s.Arcs() {
		r = arc.ExpandEnvelope(r)
	}
	return r
}

// Reverse returns the chain traversed in the opposite direction.
func (s *CircularString) Reverse() *CircularString {
	return newCircularString(s.cfg, reversedCoords(s.coords), s.tolerance)
}

func (s *CircularString) reverseCurve() Curve { return s.Reverse() }

// WithTolerance returns a copy of s that linearizes at tolerance by default.
func (s *CircularString) WithTolerance(tolerance float64) (*CircularString, error) {
	if err := checkTolerance(tolerance); err != nil {
		return nil, err
	}
	return newCircularString(s.cfg, s.coords, tolerance), nil
}

// InteriorPoint returns the middle control point, which always lies on the
// curve.
func (s *CircularString) InteriorPoint() (Point, bool) {
	if len(s.coords) == 0 {
		return Point{}, false
	}
	return s.coords[len(s.coords)/2].Point(), true
}

// EqualsExact reports whether s and o describe the same chain. Identical
// control points are equal without linearizing; otherwise the
// linearizations at s's tolerance must match point by point within
// tolerance.
func (s *CircularString) EqualsExact(o *CircularString, tolerance float64) bool {
	if coordsEqual(s.coords, o.coords) {
		return true
	}
	a, err := s.LinearizedCoords(s.tolerance)
	if err != nil {
		return false
	}
	b, err := o.LinearizedCoords(s.tolerance)
	if err != nil {
		return false
	}
	return coordsEqualTolerance(a, b, tolerance)
}

// EqualsLinear compares the linearization of s with a linear geometry.
func (s *CircularString) EqualsLinear(ls geom.LineString, tolerance float64) bool {
	a, err := s.LinearizedCoords(s.tolerance)
	if err != nil {
		return false
	}
	o, err := FromLineString(ls)
	if err != nil {
		return false
	}
	return coordsEqualTolerance(a, o.coords, tolerance)
}

// EqualsTopologically reports whether s and o cover the same points,
// regardless of direction.
func (s *CircularString) EqualsTopologically(o *CircularString) bool {
	if coordsEqual(s.coords, o.coords) || coordsEqual(s.coords, reversedCoords(o.coords)) {
		return true
	}
	a, err := s.LinearizedCoords(s.tolerance)
	if err != nil {
		return false
	}
	b, err := o.LinearizedCoords(s.tolerance)
	if err != nil {
		return false
	}
	if coordsEqualTolerance(a, b, 0) {
		return true
	}
	slices.Reverse(b)
	return coordsEqualTolerance(a, b, 0)
}

func (s *CircularString) CurvedText() string { return curvedText(s) }
func (s *CircularString) String() string     { return s.CurvedText() }

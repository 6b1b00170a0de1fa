package curved

import (
	"fmt"
	"iter"
	"slices"

	"github.com/peterstace/simplefeatures/geom"
)

// CompoundCurve is a chain of straight and circular segments in which every
// segment starts where the previous one ends.
type CompoundCurve struct {
	segments  []Curve
	tolerance float64
	cache     linearCache
}

// flattenSegments replaces nested compound curves by their segments.
func flattenSegments(segments []Curve) []Curve {
	out := make([]Curve, 0, len(segments))
	for _, seg := range segments {
		switch seg := seg.(type) {
		case *CompoundCurve:
			out = append(out, seg.segments...)
		case *CompoundRing:
			out = append(out, seg.segments...)
		default:
			out = append(out, seg)
		}
	}
	return out
}

// checkConnected verifies that segments are non-empty and that each one
// starts exactly where its predecessor ends.
func checkConnected(segments []Curve) error {
	for i, seg := range segments {
		if seg == nil || seg.IsEmpty() {
			return fmt.Errorf("%w: segment %d of compound curve", ErrEmpty, i)
		}
		if i == 0 {
			continue
		}
		end, _ := segments[i-1].EndPoint()
		start, _ := seg.StartPoint()
		if !end.Equals2D(start) {
			return fmt.Errorf("%w: segment %d ends at (%v) but segment %d starts at (%v)",
				ErrNotConnected, i-1, end, i, start)
		}
	}
	return nil
}

func newCompoundCurve(segments []Curve, tolerance float64) *CompoundCurve {
	return &CompoundCurve{segments: segments, tolerance: tolerance}
}

// Segments iterates over the segments in order.
func (c *CompoundCurve) Segments() iter.Seq2[int, Curve] {
	return func(yield func(int, Curve) bool) {
		for i, seg := range c.segments {
			if !yield(i, seg) {
				return
			}
		}
	}
}

func (c *CompoundCurve) NumSegments() int     { return len(c.segments) }
func (c *CompoundCurve) SegmentN(i int) Curve { return c.segments[i] }
func (c *CompoundCurve) IsEmpty() bool        { return len(c.segments) == 0 }
func (c *CompoundCurve) Tolerance() float64   { return c.tolerance }
func (c *CompoundCurve) reverseCurve() Curve  { return c.Reverse() }
func (c *CompoundCurve) CurvedText() string   { return curvedText(c) }
func (c *CompoundCurve) String() string       { return c.CurvedText() }

// ControlPoints returns the control points of all segments, with each
// junction point listed once.
func (c *CompoundCurve) ControlPoints() []Coord {
	var out []Coord
	for i, seg := range c.segments {
		pts := seg.ControlPoints()
		if i > 0 {
			pts = pts[1:]
		}
		out = append(out, pts...)
	}
	return out
}

func (c *CompoundCurve) StartPoint() (Coord, bool) {
	if len(c.segments) == 0 {
		return Coord{}, false
	}
	return c.segments[0].StartPoint()
}

func (c *CompoundCurve) EndPoint() (Coord, bool) {
	if len(c.segments) == 0 {
		return Coord{}, false
	}
	return c.segments[len(c.segments)-1].EndPoint()
}

// IsClosed reports whether the first segment starts where the last segment
// ends.
func (c *CompoundCurve) IsClosed() bool {
	start, ok := c.StartPoint()
	if !ok {
		return false
	}
	end, _ := c.EndPoint()
	return start.Equals2D(end)
}

// appendLinearized linearizes circular segments and copies straight ones
// verbatim, dropping the duplicated junction point between segments.
func (c *CompoundCurve) appendLinearized(buf *OrdinateBuffer, tolerance float64) error {
	for _, seg := range c.segments {
		if err := appendCurve(buf, seg, tolerance); err != nil {
			return err
		}
	}
	return nil
}

func (c *CompoundCurve) Linearize() (geom.LineString, error) {
	return c.LinearizeTolerance(c.tolerance)
}

func (c *CompoundCurve) LinearizeTolerance(tolerance float64) (geom.LineString, error) {
	l, err := linearize(c, &c.cache, tolerance)
	if err != nil {
		return geom.LineString{}, err
	}
	return l.line, nil
}

func (c *CompoundCurve) LinearizedCoords(tolerance float64) ([]Coord, error) {
	l, err := linearize(c, &c.cache, tolerance)
	if err != nil {
		return nil, err
	}
	return cloneCoords(l.coords), nil
}

func (c *CompoundCurve) PathElements(tolerance float64) iter.Seq[PathElement] {
	coords, err := c.LinearizedCoords(tolerance)
	if err != nil {
		return pathOf(nil)
	}
	return pathOf(coords)
}

func (c *CompoundCurve) BoundingBox() Rect {
	r := EmptyRect()
	for _, seg := range c.segments {
		r = r.Union(seg.BoundingBox())
	}
	return r
}

// Reverse returns the chain traversed in the opposite direction: the
// segment order is reversed and so is each segment.
func (c *CompoundCurve) Reverse() *CompoundCurve {
	segs := make([]Curve, len(c.segments))
	for i, seg := range c.segments {
		segs[len(segs)-1-i] = seg.reverseCurve()
	}
	return newCompoundCurve(segs, c.tolerance)
}

// WithTolerance returns a copy of c that linearizes at tolerance by default.
func (c *CompoundCurve) WithTolerance(tolerance float64) (*CompoundCurve, error) {
	if err := checkTolerance(tolerance); err != nil {
		return nil, err
	}
	return newCompoundCurve(c.segments, tolerance), nil
}

// InteriorPoint returns a control point of the middle segment that lies on
// the curve.
func (c *CompoundCurve) InteriorPoint() (Point, bool) {
	if len(c.segments) == 0 {
		return Point{}, false
	}
	switch seg := c.segments[len(c.segments)/2].(type) {
	case *CircularString:
		return seg.InteriorPoint()
	case *CircularRing:
		return seg.InteriorPoint()
	default:
		pts := seg.ControlPoints()
		return pts[len(pts)/2].Point(), true
	}
}

// EqualsExact reports whether c and o have the same number of segments and
// corresponding segments are equal within tolerance.
func (c *CompoundCurve) EqualsExact(o *CompoundCurve, tolerance float64) bool {
	if len(c.segments) != len(o.segments) {
		return false
	}
	for i := range c.segments {
		if !segmentsEqualExact(c.segments[i], o.segments[i], c.tolerance, tolerance) {
			return false
		}
	}
	return true
}

func segmentsEqualExact(a, b Curve, linTolerance, tolerance float64) bool {
	switch a := a.(type) {
	case *CircularString:
		if b, ok := b.(*CircularString); ok {
			return a.EqualsExact(b, tolerance)
		}
	case *LinearString:
		if b, ok := b.(*LinearString); ok {
			return a.EqualsExact(b, tolerance)
		}
	}
	ac, err := a.LinearizedCoords(linTolerance)
	if err != nil {
		return false
	}
	bc, err := b.LinearizedCoords(linTolerance)
	if err != nil {
		return false
	}
	return coordsEqualTolerance(ac, bc, tolerance)
}

// EqualsTopologically reports whether c and o cover the same points,
// regardless of direction. Curves with identical control points are equal
// without linearizing.
func (c *CompoundCurve) EqualsTopologically(o *CompoundCurve) bool {
	if coordsEqual(c.ControlPoints(), o.ControlPoints()) {
		return true
	}
	a, err := c.LinearizedCoords(c.tolerance)
	if err != nil {
		return false
	}
	b, err := o.LinearizedCoords(c.tolerance)
	if err != nil {
		return false
	}
	if coordsEqualTolerance(a, b, 0) {
		return true
	}
	slices.Reverse(b)
	return coordsEqualTolerance(a, b, 0)
}

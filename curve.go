package curved

import (
	"iter"
	"slices"
	"sync/atomic"

	"github.com/peterstace/simplefeatures/geom"
)

// Curve is a one-dimensional geometry that may contain circular arcs. Its
// linear approximation is computed on demand; consumers that need generic
// geometry operations convert it with one of the Linearize methods.
//
// The set of implementations is closed: [LinearString], [CircularString] and
// [CompoundCurve].
type Curve interface {
	// ControlPoints returns a copy of the points defining the curve.
	ControlPoints() []Coord
	// StartPoint returns the first control point. The boolean is false for
	// empty curves.
	StartPoint() (Coord, bool)
	// EndPoint returns the last control point.
	EndPoint() (Coord, bool)
	IsEmpty() bool
	// IsClosed reports whether the first and last points share a planar
	// position.
	IsClosed() bool
	// Tolerance returns the tolerance used by Linearize.
	Tolerance() float64
	// BoundingBox returns the exact extent of the curve, including arc
	// extremes that the linearization may cut off.
	BoundingBox() Rect
	// Linearize approximates the curve at its own tolerance. The result may
	// be cached.
	Linearize() (geom.LineString, error)
	LinearizeTolerance(tolerance float64) (geom.LineString, error)
	// LinearizedCoords returns the vertices of the approximation at the
	// given tolerance.
	LinearizedCoords(tolerance float64) ([]Coord, error)
	// PathElements returns the approximation at the given tolerance as
	// drawing commands. Errors yield an empty path.
	PathElements(tolerance float64) iter.Seq[PathElement]
	// CurvedText returns the extended well-known text of the curve.
	CurvedText() string

	appendLinearized(buf *OrdinateBuffer, tolerance float64) error
	reverseCurve() Curve
}

var (
	_ Curve = (*LinearString)(nil)
	_ Curve = (*CircularString)(nil)
	_ Curve = (*CompoundCurve)(nil)
)

// isDefaultTolerance reports whether a requested tolerance matches the
// curve's own closely enough to use the cached linearization.
func isDefaultTolerance(requested, own float64) bool {
	return eqAngle(requested, own)
}

// linearCache holds the linearization of a curve at its own tolerance. It
// is filled at most once per value stored; concurrent fills compute the same
// result, and the last store wins.
type linearCache struct {
	p atomic.Pointer[linearization]
}

type linearization struct {
	coords []Coord
	line   geom.LineString
}

func (c *linearCache) load() *linearization { return c.p.Load() }

func (c *linearCache) store(coords []Coord, line geom.LineString) *linearization {
	l := &linearization{coords: coords, line: line}
	c.p.Store(l)
	return l
}

// linearize runs the shared linearization path of all curves: validate the
// tolerance, consult the cache for the curve's own tolerance, and fill it.
func linearize(c Curve, cache *linearCache, tolerance float64) (*linearization, error) {
	if err := checkTolerance(tolerance); err != nil {
		return nil, err
	}
	cacheable := isDefaultTolerance(tolerance, c.Tolerance())
	if cacheable {
		if l := cache.load(); l != nil {
			return l, nil
		}
	}
	var buf OrdinateBuffer
	if err := c.appendLinearized(&buf, tolerance); err != nil {
		return nil, err
	}
	line, err := lineStringOf(buf.coords)
	if err != nil {
		return nil, err
	}
	if !cacheable {
		return &linearization{coords: buf.coords, line: line}, nil
	}
	if debugEnabled() {
		Logger().Debug("cached linearization", "points", buf.Len(), "tolerance", tolerance)
	}
	return cache.store(buf.coords, line), nil
}

// lineStringOf builds the linear geometry for a finished coordinate chain.
func lineStringOf(coords []Coord) (geom.LineString, error) {
	if len(coords) == 0 {
		return geom.LineString{}, nil
	}
	return geom.NewLineString(sequenceOf(coords))
}

// appendCurve appends the linearization of c to buf, dropping the first
// point of c when it repeats the point already at the end of buf.
func appendCurve(buf *OrdinateBuffer, c Curve, tolerance float64) error {
	if buf.Len() == 0 {
		return c.appendLinearized(buf, tolerance)
	}
	junction := buf.Len() - 1
	last := buf.At(junction)
	if err := buf.Truncate(junction); err != nil {
		return err
	}
	if err := c.appendLinearized(buf, tolerance); err != nil {
		return err
	}
	if buf.Len() == junction {
		buf.Add(last)
	}
	return nil
}

func cloneCoords(cs []Coord) []Coord {
	return slices.Clone(cs)
}

func reversedCoords(cs []Coord) []Coord {
	out := slices.Clone(cs)
	slices.Reverse(out)
	return out
}

func firstCoord(cs []Coord) (Coord, bool) {
	if len(cs) == 0 {
		return Coord{}, false
	}
	return cs[0], true
}

func lastCoord(cs []Coord) (Coord, bool) {
	if len(cs) == 0 {
		return Coord{}, false
	}
	return cs[len(cs)-1], true
}

// controlBoundingBox returns the box around the control points of a
// straight chain.
func controlBoundingBox(cs []Coord) Rect {
	r := EmptyRect()
	for _, c := range cs {
		r = r.UnionPoint(c.Point())
	}
	return r
}

// ToLineString returns the linearization of c at its own tolerance.
func ToLineString(c Curve) (geom.LineString, error) {
	return c.Linearize()
}

// Length returns the length of the linearization of c at the given
// tolerance.
func Length(c Curve, tolerance float64) (float64, error) {
	ls, err := c.LinearizeTolerance(tolerance)
	if err != nil {
		return 0, err
	}
	return ls.Length(), nil
}

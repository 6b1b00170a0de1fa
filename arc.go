package curved

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// DefaultCollinears is the radius reported by arcs whose control points are
// collinear. No circle passes through such points.
var DefaultCollinears = math.Inf(1)

// angleEpsilon is the tolerance used when comparing angles and the
// circumcenter determinant.
const angleEpsilon = 1e-12

// CircleState describes what is known about the circle through an arc's
// control points.
type CircleState int

const (
	// CircleUninitialized means the circle hasn't been computed yet.
	CircleUninitialized CircleState = iota
	// CircleCollinear means the control points lie on a line.
	CircleCollinear
	// CircleCoincident means all control points are the same point.
	CircleCoincident
	CircleValid
)

func (s CircleState) String() string {
	switch s {
	case CircleUninitialized:
		return "uninitialized"
	case CircleCollinear:
		return "collinear"
	case CircleCoincident:
		return "coincident"
	case CircleValid:
		return "valid"
	default:
		return fmt.Sprintf("CircleState(%d)", int(s))
	}
}

// Arc is a circular arc defined by three control points. The arc starts at
// Start, passes through Mid and ends at End. When Start and End are equal,
// the arc is a full circle whose diameter is the segment from Start to Mid.
//
// The circle through the control points is computed on first use and
// cached. Code that modifies the control points of an existing Arc must
// call [Arc.Reset] afterwards.
type Arc struct {
	Start Point
	Mid   Point
	End   Point

	state  CircleState
	center Point
	radius float64
}

// NewArc returns the arc through start, mid and end.
func NewArc(start, mid, end Point) *Arc {
	return &Arc{Start: start, Mid: mid, End: end}
}

// NewArcFromOrdinates returns the arc with control points (sx, sy), (mx, my)
// and (ex, ey).
func NewArcFromOrdinates(sx, sy, mx, my, ex, ey float64) *Arc {
	return NewArc(Pt(sx, sy), Pt(mx, my), Pt(ex, ey))
}

// NewArcFromSlice returns the arc described by six ordinates in the order
// start x, start y, mid x, mid y, end x, end y.
func NewArcFromSlice(ordinates []float64) (*Arc, error) {
	if len(ordinates) != 6 {
		return nil, fmt.Errorf("%w: an arc needs 6 ordinates, got %d", ErrOrdinateCount, len(ordinates))
	}
	o := ordinates
	return NewArcFromOrdinates(o[0], o[1], o[2], o[3], o[4], o[5]), nil
}

// Reset discards the cached circle.
func (a *Arc) Reset() {
	a.state = CircleUninitialized
	a.center = Point{}
	a.radius = 0
}

// SetControlPoints replaces all three control points.
func (a *Arc) SetControlPoints(start, mid, end Point) {
	a.Start, a.Mid, a.End = start, mid, end
	a.Reset()
}

// ControlPoints returns the start, mid and end points in order.
func (a *Arc) ControlPoints() [3]Point {
	return [3]Point{a.Start, a.Mid, a.End}
}

func (a *Arc) controlPoint(i int) Point {
	switch i {
	case 0:
		return a.Start
	case 1:
		return a.Mid
	default:
		return a.End
	}
}

func (a *Arc) initCircle() {
	if a.state != CircleUninitialized {
		return
	}
	s, m, e := a.Start, a.Mid, a.End

	if s == e {
		a.center = s.Midpoint(m)
		a.radius = a.center.Distance(s)
		a.state = CircleValid
		if a.radius == 0 {
			a.state = CircleCoincident
		}
		return
	}

	temp := m.X*m.X + m.Y*m.Y
	bc := (s.X*s.X + s.Y*s.Y - temp) / 2
	cd := (temp - e.X*e.X - e.Y*e.Y) / 2
	det := (s.X-m.X)*(m.Y-e.Y) - (m.X-e.X)*(s.Y-m.Y)
	if math.Abs(det) < angleEpsilon {
		a.center = Point{}
		a.radius = DefaultCollinears
		a.state = CircleCollinear
		return
	}

	a.center = Point{
		X: (bc*(m.Y-e.Y) - cd*(s.Y-m.Y)) / det,
		Y: ((s.X-m.X)*cd - (m.X-e.X)*bc) / det,
	}
	a.radius = a.center.Distance(s)
	a.state = CircleValid
}

// State computes the circle if necessary and reports its kind.
func (a *Arc) State() CircleState {
	a.initCircle()
	return a.state
}

// Radius returns the radius of the circle through the control points. It
// returns [DefaultCollinears] for collinear control points and 0 for
// coincident ones.
func (a *Arc) Radius() float64 {
	a.initCircle()
	return a.radius
}

// Center returns the center of the circle through the control points. The
// boolean is false if the points are collinear.
func (a *Arc) Center() (Point, bool) {
	a.initCircle()
	if a.state == CircleCollinear {
		return Point{}, false
	}
	return a.center, true
}

// Circle returns the circle the arc lies on.
func (a *Arc) Circle() (Circle, bool) {
	a.initCircle()
	if a.state != CircleValid {
		return Circle{}, false
	}
	return Circle{Center: a.center, Radius: a.radius}, true
}

func (a *Arc) isDegenerate() bool {
	a.initCircle()
	return a.state == CircleCollinear || a.state == CircleCoincident
}

// Angle returns the angle of p around the arc's center, in [0, 2π).
func (a *Arc) Angle(p Point) float64 {
	a.initCircle()
	th := p.Sub(a.center).Angle()
	if th < 0 {
		th += 2 * math.Pi
	}
	return th
}

// isClockwise reports whether the walk from sa over ma to ea, taking the
// short way between consecutive angles, turns clockwise.
func isClockwise(sa, ma, ea float64) bool {
	return (sa > ma && ma > ea) || (sa > ma && sa < ea) || (ma > ea && sa < ea)
}

// walk returns the control points and their angles rearranged for a
// counter-clockwise traversal, with ma and ea unwrapped so that
// sa ≤ ma ≤ ea. swapped reports whether start and end were exchanged.
func (a *Arc) walk() (s, e Point, sa, ma, ea float64, swapped bool) {
	c := a.center
	s, e = a.Start, a.End
	sa = s.Sub(c).Angle()
	ma = a.Mid.Sub(c).Angle()
	ea = e.Sub(c).Angle()
	if isClockwise(sa, ma, ea) {
		s, e = e, s
		sa, ea = ea, sa
		swapped = true
	}
	if ma < sa {
		ma += 2 * math.Pi
	}
	if ea < ma {
		ea += 2 * math.Pi
	}
	return s, e, sa, ma, ea, swapped
}

// IsClockwise reports whether the arc runs clockwise from start to end.
// Degenerate arcs are never clockwise.
func (a *Arc) IsClockwise() bool {
	if a.isDegenerate() {
		return false
	}
	c := a.center
	return isClockwise(a.Start.Sub(c).Angle(), a.Mid.Sub(c).Angle(), a.End.Sub(c).Angle())
}

// Sweep returns the unsigned angle covered by the arc. A full circle sweeps
// 2π; degenerate arcs sweep 0.
func (a *Arc) Sweep() float64 {
	if a.isDegenerate() {
		return 0
	}
	_, _, sa, _, ea, _ := a.walk()
	return ea - sa
}

// PointAt returns the point on the arc's circle at the given angle, with
// both ordinates passed through pm. A nil pm keeps full precision.
func (a *Arc) PointAt(angle float64, pm PrecisionModel) Point {
	if pm == nil {
		pm = FloatingPrecision{}
	}
	a.initCircle()
	return makePrecise(a.pointAt(angle), pm)
}

// ChordCenter returns the midpoint between the start and end points.
func (a *Arc) ChordCenter() Point {
	return a.Start.Midpoint(a.End)
}

// DistanceFromCenter returns the distance between p and the arc's center.
func (a *Arc) DistanceFromCenter(p Point) float64 {
	a.initCircle()
	return a.center.Distance(p)
}

// Linearize approximates the arc with a polyline whose vertices lie on the
// circle and whose chords deviate from it by at most tolerance, using
// [DefaultConfig]. The control points are part of the output, in their
// original order. Collinear and coincident arcs produce just the start and
// end points.
//
// A tolerance of 0 selects the finest resolution the configuration allows;
// [CoarsestTolerance] selects the coarsest.
func (a *Arc) Linearize(tolerance float64) (iter.Seq[Coord], error) {
	return a.LinearizeWith(DefaultConfig(), tolerance)
}

// LinearizeWith is like [Arc.Linearize] but uses cfg to choose the number
// of segments.
func (a *Arc) LinearizeWith(cfg Config, tolerance float64) (iter.Seq[Coord], error) {
	if err := checkTolerance(tolerance); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var buf OrdinateBuffer
	a.appendLinearized(&buf, cfg, tolerance)
	return slices.Values(buf.coords), nil
}

func checkTolerance(tolerance float64) error {
	if tolerance < 0 || math.IsNaN(tolerance) {
		return fmt.Errorf("%w: got %g", ErrNegativeTolerance, tolerance)
	}
	return nil
}

// appendLinearized appends the arc's linearization to buf. Regular points
// sit at multiples of the angular step measured from the positive x axis,
// so concentric arcs are sampled at the same angles regardless of where
// they start.
func (a *Arc) appendLinearized(buf *OrdinateBuffer, cfg Config, tolerance float64) {
	if a.isDegenerate() {
		buf.Add(a.Start.Coord())
		buf.Add(a.End.Coord())
		return
	}

	n := cfg.segmentsPerQuadrant(a.radius, tolerance)
	step := math.Pi / 2 / float64(n)
	s, e, sa, ma, ea, swapped := a.walk()

	k := math.Floor(sa/step) + 1
	angle := k * step
	if eqAngle(angle, sa) {
		k++
		angle = k * step
	}
	if angle > ea {
		buf.Add(a.Start.Coord())
		buf.Add(a.Mid.Coord())
		buf.Add(a.End.Coord())
		return
	}

	first := buf.Len()
	buf.Grow(3 + int(math.Ceil((ea-angle)/step)))
	buf.Add(s.Coord())

	midDone := false
	if angle > ma {
		buf.Add(a.Mid.Coord())
		midDone = true
	}
	end := ea - angleEpsilon
	for angle < end {
		if !midDone && eqAngle(angle, ma) {
			buf.Add(a.Mid.Coord())
			midDone = true
		} else if !eqAngle(angle, ma) {
			buf.Add(a.pointAt(angle).Coord())
			next := (k + 1) * step
			if !midDone && angle < ma && next > ma && !eqAngle(next, ma) {
				buf.Add(a.Mid.Coord())
				midDone = true
			}
		}
		k++
		angle = k * step
	}
	if !midDone {
		buf.Add(a.Mid.Coord())
	}
	buf.Add(e.Coord())

	if swapped {
		buf.Reverse(first, buf.Len()-1)
	}
}

func (a *Arc) pointAt(angle float64) Point {
	return a.center.Translate(VecFromAngle(angle).Mul(a.radius))
}

func eqAngle(a, b float64) bool {
	return math.Abs(a-b) < angleEpsilon
}

// ExpandEnvelope returns r grown to include the arc. Besides the endpoints,
// this includes every axis-aligned extreme of the circle that the arc passes
// through.
func (a *Arc) ExpandEnvelope(r Rect) Rect {
	r = r.UnionPoint(a.Start).UnionPoint(a.End)
	if a.isDegenerate() {
		return r
	}

	_, _, sa, _, ea, _ := a.walk()
	const quarter = math.Pi / 2
	for k := math.Floor(sa/quarter) + 1; k*quarter < ea; k++ {
		if eqAngle(k*quarter, sa) || eqAngle(k*quarter, ea) {
			continue
		}
		r = r.UnionPoint(a.quadrantPoint(int(k)))
	}
	return r
}

// quadrantPoint returns the circle point at angle k·π/2, computed without
// trigonometry so that the extremes are exact.
func (a *Arc) quadrantPoint(k int) Point {
	c, rad := a.center, a.radius
	switch ((k % 4) + 4) % 4 {
	case 0:
		return Pt(c.X+rad, c.Y)
	case 1:
		return Pt(c.X, c.Y+rad)
	case 2:
		return Pt(c.X-rad, c.Y)
	default:
		return Pt(c.X, c.Y-rad)
	}
}

// BoundingBox returns the smallest rectangle containing the arc.
func (a *Arc) BoundingBox() Rect {
	return a.ExpandEnvelope(EmptyRect())
}

// Split bisects the part of the arc between control points offset and end
// (indices 0 to 2, offset < end) at its angular midpoint. The direction of
// travel from the offset point is given by clockwise. The new boundary point
// and both new mid points lie on the arc's circle and are rounded through
// pm; a nil pm keeps full precision.
//
// For collinear and coincident arcs the split happens at the midpoint of
// the chord.
func (a *Arc) Split(clockwise bool, pm PrecisionModel, offset, end int) ([2]*Arc, error) {
	if offset < 0 || end > 2 || offset >= end {
		return [2]*Arc{}, fmt.Errorf("%w: cannot split between control points %d and %d",
			ErrIndexRange, offset, end)
	}
	if pm == nil {
		pm = FloatingPrecision{}
	}
	p0, p1 := a.controlPoint(offset), a.controlPoint(end)

	if a.isDegenerate() {
		m := makePrecise(p0.Midpoint(p1), pm)
		return [2]*Arc{
			NewArc(p0, makePrecise(p0.Midpoint(m), pm), m),
			NewArc(m, makePrecise(m.Midpoint(p1), pm), p1),
		}, nil
	}

	a0 := a.Angle(p0)
	var sweep float64
	if clockwise {
		sweep = -positiveAngle(a0 - a.Angle(p1))
	} else {
		sweep = positiveAngle(a.Angle(p1) - a0)
	}
	m := a.PointAt(a0+sweep/2, pm)
	return [2]*Arc{
		NewArc(p0, a.PointAt(a0+sweep/4, pm), m),
		NewArc(m, a.PointAt(a0+3*sweep/4, pm), p1),
	}, nil
}

// positiveAngle maps th to (0, 2π]. Zero maps to a full turn, which is the
// sweep between two equal points.
func positiveAngle(th float64) float64 {
	th = math.Mod(th, 2*math.Pi)
	if th <= 0 {
		th += 2 * math.Pi
	}
	return th
}

func makePrecise(p Point, pm PrecisionModel) Point {
	return Point{X: pm.MakePrecise(p.X), Y: pm.MakePrecise(p.Y)}
}

func (a *Arc) String() string {
	return fmt.Sprintf("Arc(%v, %v, %v)", a.Start, a.Mid, a.End)
}

package curved

import (
	"fmt"
	"log/slog"

	"github.com/peterstace/simplefeatures/geom"
)

// Factory builds curved geometries that share one linearization [Config].
// A Factory is immutable and safe for concurrent use.
type Factory struct {
	cfg Config
}

var defaultFactory = &Factory{cfg: DefaultConfig()}

// NewFactory validates cfg and returns a factory bound to it. The zero
// Config selects [DefaultConfig].
func NewFactory(cfg Config) (*Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Factory{cfg: cfg.orDefault()}, nil
}

// DefaultFactory returns the factory used by the package-level
// constructors.
func DefaultFactory() *Factory { return defaultFactory }

func (f *Factory) Config() Config { return f.cfg }

func rejected(kind string, err error) error {
	if debugEnabled() {
		Logger().Debug("rejected construction", slog.String("kind", kind), slog.Any("err", err))
	}
	return err
}

// NewCircularString returns a chain of arcs through points. The number of
// points must be 0, 3, or an odd number greater than 3. tolerance is the
// default tolerance of [CircularString.Linearize].
func (f *Factory) NewCircularString(points []Coord, tolerance float64) (*CircularString, error) {
	if err := checkTolerance(tolerance); err != nil {
		return nil, rejected("circularstring", err)
	}
	if err := validateCircularCount(len(points)); err != nil {
		return nil, rejected("circularstring", err)
	}
	return newCircularString(f.cfg, cloneCoords(points), tolerance), nil
}

// NewCircularStringFromOrdinates is like NewCircularString, with points
// given as consecutive x, y pairs.
func (f *Factory) NewCircularStringFromOrdinates(ordinates []float64, tolerance float64) (*CircularString, error) {
	points, err := pairsToCoords(ordinates)
	if err != nil {
		return nil, rejected("circularstring", err)
	}
	return f.NewCircularString(points, tolerance)
}

func pairsToCoords(ordinates []float64) ([]Coord, error) {
	if len(ordinates)%2 != 0 {
		return nil, fmt.Errorf("%w: must be even, but it is %d", ErrOrdinateCount, len(ordinates))
	}
	points := make([]Coord, len(ordinates)/2)
	for i := range points {
		points[i] = XY(ordinates[2*i], ordinates[2*i+1])
	}
	return points, nil
}

// NewLinearString returns a straight chain. Straight chains don't depend on
// the configuration.
func (f *Factory) NewLinearString(coords []Coord) (*LinearString, error) {
	s, err := NewLinearString(coords)
	if err != nil {
		return nil, rejected("linestring", err)
	}
	return s, nil
}

// NewCompoundCurve returns the chain of segments. Nested compound curves are
// replaced by their segments. Every segment must be non-empty and start
// exactly where the previous one ends.
func (f *Factory) NewCompoundCurve(segments []Curve, tolerance float64) (*CompoundCurve, error) {
	if err := checkTolerance(tolerance); err != nil {
		return nil, rejected("compoundcurve", err)
	}
	segs := flattenSegments(segments)
	if err := checkConnected(segs); err != nil {
		return nil, rejected("compoundcurve", err)
	}
	return newCompoundCurve(segs, tolerance), nil
}

// NewCircularRing is like NewCircularString but requires the first and
// last points to be equal.
func (f *Factory) NewCircularRing(points []Coord, tolerance float64) (*CircularRing, error) {
	s, err := f.NewCircularString(points, tolerance)
	if err != nil {
		return nil, err
	}
	if err := checkClosed("circular ring", s); err != nil {
		return nil, rejected("circularring", err)
	}
	return &CircularRing{s}, nil
}

// NewCompoundRing is like NewCompoundCurve but requires the chain to be
// closed.
func (f *Factory) NewCompoundRing(segments []Curve, tolerance float64) (*CompoundRing, error) {
	c, err := f.NewCompoundCurve(segments, tolerance)
	if err != nil {
		return nil, err
	}
	if err := checkClosed("compound ring", c); err != nil {
		return nil, rejected("compoundring", err)
	}
	return &CompoundRing{c}, nil
}

// NewLinearRing returns a closed straight chain of at least four points.
func (f *Factory) NewLinearRing(coords []Coord) (*LinearRing, error) {
	if len(coords) != 0 && len(coords) < 4 {
		return nil, rejected("linearring", fmt.Errorf(
			"%w: a linear ring needs 0 or at least 4 points, got %d", ErrControlPointCount, len(coords)))
	}
	s, err := f.NewLinearString(coords)
	if err != nil {
		return nil, err
	}
	if err := checkClosed("linear ring", s); err != nil {
		return nil, rejected("linearring", err)
	}
	return &LinearRing{s}, nil
}

// NewCurvePolygon returns the polygon bounded by shell with the given holes.
func (f *Factory) NewCurvePolygon(shell Ring, holes []Ring, tolerance float64) (*CurvePolygon, error) {
	if err := checkTolerance(tolerance); err != nil {
		return nil, rejected("curvepolygon", err)
	}
	if shell == nil {
		return nil, rejected("curvepolygon", fmt.Errorf("%w: polygon has no shell", ErrEmpty))
	}
	for i, h := range holes {
		if h == nil || h.IsEmpty() {
			return nil, rejected("curvepolygon", fmt.Errorf("%w: hole %d", ErrEmpty, i))
		}
	}
	if shell.IsEmpty() && len(holes) > 0 {
		return nil, rejected("curvepolygon", fmt.Errorf("%w: polygon with holes has an empty shell", ErrEmpty))
	}
	return newCurvePolygon(shell, append([]Ring(nil), holes...), tolerance), nil
}

// LineString builds the linear geometry for a finished coordinate sequence.
func (f *Factory) LineString(coords []Coord) (geom.LineString, error) {
	return lineStringOf(coords)
}

// NewCircularString calls [Factory.NewCircularString] on [DefaultFactory].
func NewCircularString(points []Coord, tolerance float64) (*CircularString, error) {
	return defaultFactory.NewCircularString(points, tolerance)
}

// NewCircularStringFromOrdinates calls
// [Factory.NewCircularStringFromOrdinates] on [DefaultFactory].
func NewCircularStringFromOrdinates(ordinates []float64, tolerance float64) (*CircularString, error) {
	return defaultFactory.NewCircularStringFromOrdinates(ordinates, tolerance)
}

// NewCompoundCurve calls [Factory.NewCompoundCurve] on [DefaultFactory].
func NewCompoundCurve(segments []Curve, tolerance float64) (*CompoundCurve, error) {
	return defaultFactory.NewCompoundCurve(segments, tolerance)
}

// NewCircularRing calls [Factory.NewCircularRing] on [DefaultFactory].
func NewCircularRing(points []Coord, tolerance float64) (*CircularRing, error) {
	return defaultFactory.NewCircularRing(points, tolerance)
}

// NewCompoundRing calls [Factory.NewCompoundRing] on [DefaultFactory].
func NewCompoundRing(segments []Curve, tolerance float64) (*CompoundRing, error) {
	return defaultFactory.NewCompoundRing(segments, tolerance)
}

// NewLinearRing calls [Factory.NewLinearRing] on [DefaultFactory].
func NewLinearRing(coords []Coord) (*LinearRing, error) {
	return defaultFactory.NewLinearRing(coords)
}

// NewCurvePolygon calls [Factory.NewCurvePolygon] on [DefaultFactory].
func NewCurvePolygon(shell Ring, holes []Ring, tolerance float64) (*CurvePolygon, error) {
	return defaultFactory.NewCurvePolygon(shell, holes, tolerance)
}

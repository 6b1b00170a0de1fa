package geodesy

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/tidwall/geodesic"
)

var ErrInvalidEllipsoid = errors.New("invalid ellipsoid")

// Ellipsoid is a reference ellipsoid of revolution. Geodesic problems on it
// are solved with the algorithms of C. F. F. Karney, which converge for all
// pairs of points, including nearly antipodal ones.
type Ellipsoid struct {
	name string
	a, f float64
	g    *geodesic.Ellipsoid
}

var (
	WGS84      = mustEllipsoid("WGS84", 6378137.0, 1/298.257223563)
	GRS80      = mustEllipsoid("GRS80", 6378137.0, 1/298.257222101)
	GRS67      = mustEllipsoid("GRS67", 6378160.0, 1/298.247167427)
	ANS        = mustEllipsoid("ANS", 6378160.0, 1/298.25)
	WGS72      = mustEllipsoid("WGS72", 6378135.0, 1/298.26)
	Clarke1858 = mustEllipsoid("Clarke1858", 6378293.645, 1/294.26)
	Clarke1880 = mustEllipsoid("Clarke1880", 6378249.145, 1/293.465)
	Sphere     = mustEllipsoid("Sphere", 6371000, 0)
)

func mustEllipsoid(name string, a, f float64) *Ellipsoid {
	e, err := NewEllipsoid(a, f)
	if err != nil {
		panic(err)
	}
	e.name = name
	return e
}

// NewEllipsoid returns the ellipsoid with the given semi-major axis in
// meters and flattening. The flattening must be in [0, 1).
func NewEllipsoid(semiMajorAxis, flattening float64) (*Ellipsoid, error) {
	if !(semiMajorAxis > 0) || math.IsInf(semiMajorAxis, 0) {
		return nil, fmt.Errorf("%w: semi-major axis must be positive and finite, got %g", ErrInvalidEllipsoid, semiMajorAxis)
	}
	if !(flattening >= 0 && flattening < 1) {
		return nil, fmt.Errorf("%w: flattening must be in [0, 1), got %g", ErrInvalidEllipsoid, flattening)
	}
	return &Ellipsoid{
		a: semiMajorAxis,
		f: flattening,
		g: geodesic.NewEllipsoid(semiMajorAxis, flattening),
	}, nil
}

// FromInverseFlattening is like NewEllipsoid with the flattening given as
// its reciprocal.
func FromInverseFlattening(semiMajorAxis, inverseFlattening float64) (*Ellipsoid, error) {
	if !(inverseFlattening > 1) {
		return nil, fmt.Errorf("%w: inverse flattening must be greater than 1, got %g", ErrInvalidEllipsoid, inverseFlattening)
	}
	return NewEllipsoid(semiMajorAxis, 1/inverseFlattening)
}

func (e *Ellipsoid) SemiMajorAxis() float64 { return e.a }
func (e *Ellipsoid) SemiMinorAxis() float64 { return e.a * (1 - e.f) }
func (e *Ellipsoid) Flattening() float64    { return e.f }

// InverseFlattening returns 1/f, which is +Inf for a sphere.
func (e *Ellipsoid) InverseFlattening() float64 {
	if e.f == 0 {
		return math.Inf(1)
	}
	return 1 / e.f
}

// EccentricitySquared returns e² = f(2-f).
func (e *Ellipsoid) EccentricitySquared() float64 { return e.f * (2 - e.f) }

func (e *Ellipsoid) String() string {
	if e.name != "" {
		return e.name
	}
	return fmt.Sprintf("Ellipsoid(a=%g, 1/f=%g)", e.a, e.InverseFlattening())
}

// Curve is the solution of the inverse geodesic problem.
type Curve struct {
	// Distance along the ellipsoid, in meters.
	Distance float64
	// Azimuth at the start point, clockwise from north in [0°, 360°).
	Azimuth s1.Angle
	// ReverseAzimuth is the azimuth at the end point pointing back towards
	// the start point, in [0°, 360°).
	ReverseAzimuth s1.Angle
}

func (c Curve) String() string {
	return fmt.Sprintf("Curve[Distance=%gm, Azimuth=%.8f°, ReverseAzimuth=%.8f°]",
		c.Distance, c.Azimuth.Degrees(), c.ReverseAzimuth.Degrees())
}

// Inverse computes the geodesic between start and end. Altitudes are
// ignored.
func (e *Ellipsoid) Inverse(start, end Location) (Curve, error) {
	if err := start.Validate(); err != nil {
		return Curve{}, err
	}
	if err := end.Validate(); err != nil {
		return Curve{}, err
	}
	if start.Lat == end.Lat && start.Lon == end.Lon {
		return Curve{}, nil
	}
	var s12, azi1, azi2 float64
	e.g.Inverse(start.Lat.Degrees(), start.Lon.Degrees(), end.Lat.Degrees(), end.Lon.Degrees(), &s12, &azi1, &azi2)
	return Curve{
		Distance:       s12,
		Azimuth:        positive(s1.Angle(azi1) * s1.Degree),
		ReverseAzimuth: positive(s1.Angle(azi2+180) * s1.Degree),
	}, nil
}

// Direct returns the location reached by traveling distance meters from
// start along the geodesic with the given initial azimuth, and the forward
// azimuth at that location. The altitude of start is carried over.
func (e *Ellipsoid) Direct(start Location, azimuth s1.Angle, distance float64) (Location, s1.Angle, error) {
	if err := start.Validate(); err != nil {
		return Location{}, 0, err
	}
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return Location{}, 0, fmt.Errorf("%w: distance must be finite, got %g", ErrInvalidLocation, distance)
	}
	var lat2, lon2, azi2 float64
	e.g.Direct(start.Lat.Degrees(), start.Lon.Degrees(), azimuth.Degrees(), distance, &lat2, &lon2, &azi2)
	end := Location{
		Lat:      s1.Angle(lat2) * s1.Degree,
		Lon:      (s1.Angle(lon2) * s1.Degree).Normalized(),
		Altitude: start.Altitude,
	}
	return end, positive(s1.Angle(azi2) * s1.Degree), nil
}

// Measurement is a [Curve] between two locations that have altitudes.
type Measurement struct {
	Curve
	// ElevationChange is the end altitude minus the start altitude.
	ElevationChange float64
	// PointToPointDistance combines the surface distance with the
	// elevation change.
	PointToPointDistance float64
}

func (m Measurement) String() string {
	return fmt.Sprintf("Measurement[%v, ElevationChange=%gm, PointToPointDistance=%gm]",
		m.Curve, m.ElevationChange, m.PointToPointDistance)
}

// Measure computes the geodesic between start and end at their mean
// altitude, on an ellipsoid whose semi-major axis is grown by that altitude.
// Missing altitudes count as 0.
func (e *Ellipsoid) Measure(start, end Location) (Measurement, error) {
	h1, h2 := altitudeOrZero(start), altitudeOrZero(end)
	mean := (h1 + h2) / 2

	surface := e
	if mean != 0 {
		var err error
		surface, err = NewEllipsoid(e.a+mean, e.f)
		if err != nil {
			return Measurement{}, err
		}
	}
	c, err := surface.Inverse(start, end)
	if err != nil {
		return Measurement{}, err
	}
	dh := h2 - h1
	return Measurement{
		Curve:                c,
		ElevationChange:      dh,
		PointToPointDistance: math.Hypot(c.Distance, dh),
	}, nil
}

func altitudeOrZero(l Location) float64 {
	if l.HasAltitude() {
		return l.Altitude
	}
	return 0
}

// Package geodesy computes distances and bearings between locations on the
// Earth, both on a sphere and on a reference ellipsoid.
package geodesy

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// EarthRadius is the mean radius of the Earth in meters, used by the
// spherical computations on [Location].
const EarthRadius = 6371008.8

var ErrInvalidLocation = errors.New("invalid location")

// Location is a position on the Earth. Altitude is in meters above the
// reference surface and is NaN when unknown.
type Location struct {
	Lat      s1.Angle
	Lon      s1.Angle
	Altitude float64
}

// LatLon returns the location at the given latitude and longitude in
// degrees, without altitude.
func LatLon(lat, lon float64) Location {
	return Location{
		Lat:      s1.Angle(lat) * s1.Degree,
		Lon:      s1.Angle(lon) * s1.Degree,
		Altitude: math.NaN(),
	}
}

func (l Location) WithAltitude(meters float64) Location {
	l.Altitude = meters
	return l
}

func (l Location) HasAltitude() bool { return !math.IsNaN(l.Altitude) }

func (l Location) LatLng() s2.LatLng {
	return s2.LatLng{Lat: l.Lat, Lng: l.Lon}
}

// Validate checks that the latitude lies within ±90° and that both angles
// are finite.
func (l Location) Validate() error {
	if math.IsNaN(l.Lat.Radians()) || math.IsInf(l.Lat.Radians(), 0) ||
		math.IsNaN(l.Lon.Radians()) || math.IsInf(l.Lon.Radians(), 0) {
		return fmt.Errorf("%w: %v has a non-finite angle", ErrInvalidLocation, l)
	}
	if math.Abs(l.Lat.Radians()) > math.Pi/2 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidLocation, l.Lat)
	}
	return nil
}

func (l Location) String() string {
	if l.HasAltitude() {
		return fmt.Sprintf("(%.7f, %.7f, %gm)", l.Lat.Degrees(), l.Lon.Degrees(), l.Altitude)
	}
	return fmt.Sprintf("(%.7f, %.7f)", l.Lat.Degrees(), l.Lon.Degrees())
}

// Course returns the initial great-circle bearing from l to o, measured
// clockwise from north, in [0°, 360°).
func (l Location) Course(o Location) s1.Angle {
	lat1, lat2 := l.Lat.Radians(), o.Lat.Radians()
	dLon := o.Lon.Radians() - l.Lon.Radians()
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	y := math.Sin(dLon) * math.Cos(lat2)
	return positive(s1.Angle(math.Atan2(y, x)))
}

// Distance returns the great-circle distance between l and o in meters on
// a sphere of radius [EarthRadius]. If both locations have an altitude, the
// difference in altitude is included.
func (l Location) Distance(o Location) float64 {
	d := l.LatLng().Distance(o.LatLng()).Radians() * EarthRadius
	if l.HasAltitude() && o.HasAltitude() {
		return math.Hypot(d, o.Altitude-l.Altitude)
	}
	return d
}

// Destination returns the location reached by traveling distance meters
// from l along the great circle with the given initial bearing.
func (l Location) Destination(distance float64, bearing s1.Angle) Location {
	lat := l.Lat.Radians()
	delta := distance / EarthRadius
	sinLat, cosLat := math.Sincos(lat)
	sinD, cosD := math.Sincos(delta)

	lat2 := math.Asin(sinLat*cosD + cosLat*sinD*math.Cos(bearing.Radians()))
	y := math.Sin(bearing.Radians()) * sinD * cosLat
	x := cosD - sinLat*math.Sin(lat2)
	lon2 := l.Lon.Radians() + math.Atan2(y, x)

	return Location{
		Lat:      s1.Angle(lat2),
		Lon:      s1.Angle(lon2).Normalized(),
		Altitude: l.Altitude,
	}
}

// positive maps a to [0, 2π).
func positive(a s1.Angle) s1.Angle {
	r := math.Mod(a.Radians(), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return s1.Angle(r)
}

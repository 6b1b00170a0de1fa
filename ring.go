package curved

import (
	"fmt"

	"github.com/peterstace/simplefeatures/geom"
)

// Ring is a closed curve that bounds a [CurvePolygon].
type Ring interface {
	Curve
	// IsCurved reports whether the ring contains circular arcs.
	IsCurved() bool
	// LinearizeRing approximates the ring by a closed linear ring.
	LinearizeRing(tolerance float64) (geom.LineString, error)
}

var (
	_ Ring = (*CircularRing)(nil)
	_ Ring = (*CompoundRing)(nil)
	_ Ring = (*LinearRing)(nil)
)

func checkClosed(kind string, c Curve) error {
	if c.IsEmpty() || c.IsClosed() {
		return nil
	}
	start, _ := c.StartPoint()
	end, _ := c.EndPoint()
	return fmt.Errorf("%w: %s starts at (%v) and ends at (%v)", ErrNotClosed, kind, start, end)
}

// closeLinearization makes sure a linearized ring ends where it starts.
// Closure is decided in 2D, so a closing point with different Z or M values
// is kept as it is.
func closeLinearization(c Curve, tolerance float64) (geom.LineString, error) {
	coords, err := c.LinearizedCoords(tolerance)
	if err != nil {
		return geom.LineString{}, err
	}
	buf := OrdinateBuffer{coords: coords}
	buf.Close()
	return lineStringOf(buf.coords)
}

// CircularRing is a closed [CircularString].
type CircularRing struct {
	*CircularString
}

func (r *CircularRing) IsCurved() bool { return true }

func (r *CircularRing) LinearizeRing(tolerance float64) (geom.LineString, error) {
	return closeLinearization(r, tolerance)
}

func (r *CircularRing) Reverse() *CircularRing {
	return &CircularRing{r.CircularString.Reverse()}
}

// CompoundRing is a closed [CompoundCurve].
type CompoundRing struct {
	*CompoundCurve
}

// IsCurved reports whether any segment is circular.
func (r *CompoundRing) IsCurved() bool {
	for _, seg := range r.segments {
		switch seg.(type) {
		case *CircularString, *CircularRing:
			return true
		}
	}
	return false
}

func (r *CompoundRing) LinearizeRing(tolerance float64) (geom.LineString, error) {
	return closeLinearization(r, tolerance)
}

func (r *CompoundRing) Reverse() *CompoundRing {
	return &CompoundRing{r.CompoundCurve.Reverse()}
}

// LinearRing is a closed chain of straight segments.
type LinearRing struct {
	*LinearString
}

func (r *LinearRing) IsCurved() bool { return false }

func (r *LinearRing) LinearizeRing(tolerance float64) (geom.LineString, error) {
	return r.LinearizeTolerance(tolerance)
}

func (r *LinearRing) Reverse() *LinearRing {
	return &LinearRing{r.LinearString.Reverse()}
}

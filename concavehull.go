package curved

import (
	"fmt"
	"slices"

	"github.com/peterstace/simplefeatures/geom"
)

// ConvexHull returns the vertices of the convex hull of points in
// counter-clockwise order, starting at the leftmost point (the lowest one on
// ties) and without repeating it. Collinear boundary points are omitted, as
// are points with non-finite ordinates.
func ConvexHull(points []Point) []Point {
	pts := make([]geom.Point, 0, len(points))
	for _, p := range points {
		gp, err := geom.XY{X: p.X, Y: p.Y}.AsPoint()
		if err != nil {
			continue
		}
		pts = append(pts, gp)
	}
	if len(pts) == 0 {
		return nil
	}

	var seq geom.Sequence
	n := 0
	hull := geom.NewMultiPoint(pts).ConvexHull()
	switch hull.Type() {
	case geom.TypePolygon:
		// The ring repeats its first point.
		seq = hull.MustAsPolygon().ExteriorRing().Coordinates()
		n = seq.Length() - 1
	case geom.TypeLineString:
		seq = hull.MustAsLineString().Coordinates()
		n = seq.Length()
	case geom.TypePoint:
		xy, ok := hull.MustAsPoint().XY()
		if !ok {
			return nil
		}
		return []Point{Pt(xy.X, xy.Y)}
	default:
		return nil
	}
	out := make([]Point, n)
	for i := range out {
		xy := seq.GetXY(i)
		out[i] = Pt(xy.X, xy.Y)
	}
	return out
}

// ConcaveHull computes a polygon enclosing all points that hugs them more
// tightly than their convex hull. Starting from the convex hull, every edge
// longer than maxLength is split by the inner point closest to its midpoint,
// as long as the ratio of the edge's length to that distance exceeds
// concavity and the new edges don't cross the hull. Smaller concavity values
// produce more concave results.
func ConcaveHull(points []Point, concavity, maxLength float64) (geom.Polygon, error) {
	if len(points) == 0 {
		return geom.Polygon{}, nil
	}
	hull := ConvexHull(points)
	if len(hull) < 3 {
		return geom.Polygon{}, fmt.Errorf("%w: a hull needs at least 3 points that are not collinear", ErrEmpty)
	}

	inner := slices.DeleteFunc(slices.Clone(points), func(p Point) bool {
		return slices.Contains(hull, p)
	})

	for i := 0; i < len(hull); i++ {
		edge := Line{at(hull, i), at(hull, i+1)}
		if edge.Length() <= maxLength {
			continue
		}
		left := Line{at(hull, i-1), at(hull, i)}
		right := Line{at(hull, i+1), at(hull, i+2)}
		p, d, ok := nearestInner(inner, edge, left, right)
		if !ok {
			continue
		}
		if edge.Length()/d > concavity && !crossesHull(edge, p, hull) {
			hull = slices.Insert(hull, (i+1)%len(hull), p)
			inner = slices.DeleteFunc(inner, func(q Point) bool { return q == p })
			i = -1
		}
	}

	ring := make([]Coord, 0, len(hull)+1)
	for _, p := range hull {
		ring = append(ring, p.Coord())
	}
	ring = append(ring, ring[0])
	ls, err := lineStringOf(ring)
	if err != nil {
		return geom.Polygon{}, err
	}
	return geom.NewPolygon([]geom.LineString{ls})
}

// at indexes a closed ring of points, wrapping around in both directions.
func at(ring []Point, i int) Point {
	n := len(ring)
	return ring[((i%n)+n)%n]
}

// nearestInner returns the point closest to the midpoint of edge that is
// closer to that midpoint than to either neighboring edge.
func nearestInner(points []Point, edge, left, right Line) (Point, float64, bool) {
	mid := edge.Midpoint()
	best, bestDist, found := Point{}, 0.0, false
	for _, p := range points {
		d := mid.Distance(p)
		if d == 0 || (found && d >= bestDist) {
			continue
		}
		if left.Distance(p) > d && right.Distance(p) > d {
			best, bestDist, found = p, d, true
		}
	}
	return best, bestDist, found
}

// crossesHull reports whether connecting p to both ends of edge would cross
// an edge of the hull.
func crossesHull(edge Line, p Point, hull []Point) bool {
	first := Line{edge.P0, p}
	second := Line{edge.P1, p}
	for i := range hull {
		l := Line{at(hull, i), at(hull, i+1)}
		if first.Crosses(l) || second.Crosses(l) {
			return true
		}
	}
	return false
}

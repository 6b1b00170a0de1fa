package curved

import (
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/peterstace/simplefeatures/geom"
)

// CurvePolygon is a polygon whose boundary rings may contain circular arcs.
// Each ring is linearized independently.
type CurvePolygon struct {
	shell     Ring
	holes     []Ring
	tolerance float64
	cache     atomic.Pointer[geom.Polygon]
}

func newCurvePolygon(shell Ring, holes []Ring, tolerance float64) *CurvePolygon {
	return &CurvePolygon{shell: shell, holes: holes, tolerance: tolerance}
}

func (p *CurvePolygon) Shell() Ring        { return p.shell }
func (p *CurvePolygon) NumHoles() int      { return len(p.holes) }
func (p *CurvePolygon) HoleN(i int) Ring   { return p.holes[i] }
func (p *CurvePolygon) Tolerance() float64 { return p.tolerance }
func (p *CurvePolygon) BoundingBox() Rect  { return p.shell.BoundingBox() }
func (p *CurvePolygon) CurvedText() string { return curvedText(p) }
func (p *CurvePolygon) String() string     { return p.CurvedText() }

func (p *CurvePolygon) IsEmpty() bool {
	return p.shell == nil || p.shell.IsEmpty()
}

// IsCurved reports whether any ring contains circular arcs.
func (p *CurvePolygon) IsCurved() bool {
	if p.IsEmpty() {
		return false
	}
	if p.shell.IsCurved() {
		return true
	}
	for _, h := range p.holes {
		if h.IsCurved() {
			return true
		}
	}
	return false
}

// Linearize approximates the polygon at its own tolerance. The result is
// cached.
func (p *CurvePolygon) Linearize() (geom.Polygon, error) {
	if poly := p.cache.Load(); poly != nil {
		return *poly, nil
	}
	poly, err := p.LinearizeTolerance(p.tolerance)
	if err != nil {
		return geom.Polygon{}, err
	}
	p.cache.Store(&poly)
	return poly, nil
}

// LinearizeTolerance approximates every ring with the given tolerance and
// assembles the result into a polygon.
func (p *CurvePolygon) LinearizeTolerance(tolerance float64) (geom.Polygon, error) {
	if err := checkTolerance(tolerance); err != nil {
		return geom.Polygon{}, err
	}
	if p.IsEmpty() {
		return geom.Polygon{}, nil
	}
	rings := make([]geom.LineString, 0, 1+len(p.holes))
	for i, r := range p.rings() {
		ls, err := r.LinearizeRing(tolerance)
		if err != nil {
			return geom.Polygon{}, fmt.Errorf("linearizing ring %d: %w", i, err)
		}
		rings = append(rings, ls)
	}
	return geom.NewPolygon(rings)
}

func (p *CurvePolygon) rings() []Ring {
	out := make([]Ring, 0, 1+len(p.holes))
	out = append(out, p.shell)
	return append(out, p.holes...)
}

// WithTolerance returns a copy of p that linearizes at tolerance by default.
func (p *CurvePolygon) WithTolerance(tolerance float64) (*CurvePolygon, error) {
	if err := checkTolerance(tolerance); err != nil {
		return nil, err
	}
	return newCurvePolygon(p.shell, p.holes, tolerance), nil
}

// Area returns the area of the linearization at p's tolerance.
func (p *CurvePolygon) Area() (float64, error) {
	poly, err := p.Linearize()
	if err != nil {
		return 0, err
	}
	return poly.Area(), nil
}

// PathElements returns the outlines of all rings as one path with a
// subpath per ring, suitable for the even-odd fill rule.
func (p *CurvePolygon) PathElements(tolerance float64) iter.Seq[PathElement] {
	if p.IsEmpty() {
		return func(func(PathElement) bool) {}
	}
	rings := p.rings()
	paths := make([]iter.Seq[PathElement], len(rings))
	for i, r := range rings {
		paths[i] = r.PathElements(tolerance)
	}
	return concatPaths(paths...)
}

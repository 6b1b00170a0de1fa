package main

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"gopkg.in/yaml.v3"

	"honnef.co/go/curved"
)

// document is the input of curvelin, for example
//
//	tolerance: 0.01
//	geometries:
//	  - name: bend
//	    compound:
//	      - linestring: [[0, 0], [10, 0]]
//	      - circularstring: [[10, 0], [15, 5], [20, 0]]
//	  - polygon:
//	      shell:
//	        circularstring: [[0, 0], [10, 0], [0, 0]]
type document struct {
	Tolerance  *float64       `yaml:"tolerance"`
	Geometries []geometrySpec `yaml:"geometries"`
}

// curveSpec describes a curve. Exactly one field must be set. Coordinates
// have 2, 3 or 4 ordinates: x y, x y z, or x y z m.
type curveSpec struct {
	LineString     [][]float64 `yaml:"linestring"`
	CircularString [][]float64 `yaml:"circularstring"`
	Compound       []curveSpec `yaml:"compound"`
}

type polygonSpec struct {
	Shell curveSpec   `yaml:"shell"`
	Holes []curveSpec `yaml:"holes"`
}

type geometrySpec struct {
	Name      string       `yaml:"name"`
	curveSpec `yaml:",inline"`
	Polygon   *polygonSpec `yaml:"polygon"`
}

// geometry is a built curve or polygon.
type geometry interface {
	CurvedText() string
	PathElements(tolerance float64) iter.Seq[curved.PathElement]
}

func (g geometrySpec) build(f *curved.Factory, tolerance float64) (geometry, error) {
	if g.Polygon != nil {
		if g.kinds() != 0 {
			return nil, errors.New("a polygon cannot also be a curve")
		}
		return g.Polygon.build(f, tolerance)
	}
	return g.curveSpec.build(f, tolerance)
}

func decodeDocument(r io.Reader) (document, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return document{}, nil
		}
		return document{}, fmt.Errorf("decoding document: %w", err)
	}
	return doc, nil
}

func toCoords(points [][]float64) ([]curved.Coord, error) {
	out := make([]curved.Coord, len(points))
	for i, p := range points {
		switch len(p) {
		case 2:
			out[i] = curved.XY(p[0], p[1])
		case 3:
			out[i] = curved.XYZ(p[0], p[1], p[2])
		case 4:
			out[i] = curved.Coord{X: p[0], Y: p[1], Z: p[2], M: p[3]}
		default:
			return nil, fmt.Errorf("%w: coordinate %d has %d ordinates", curved.ErrOrdinateCount, i, len(p))
		}
	}
	return out, nil
}

func (s curveSpec) kinds() int {
	n := 0
	if s.LineString != nil {
		n++
	}
	if s.CircularString != nil {
		n++
	}
	if s.Compound != nil {
		n++
	}
	return n
}

func (s curveSpec) build(f *curved.Factory, tolerance float64) (curved.Curve, error) {
	if n := s.kinds(); n != 1 {
		return nil, fmt.Errorf("a curve needs exactly one of linestring, circularstring or compound, got %d", n)
	}
	switch {
	case s.LineString != nil:
		coords, err := toCoords(s.LineString)
		if err != nil {
			return nil, err
		}
		return f.NewLinearString(coords)
	case s.CircularString != nil:
		coords, err := toCoords(s.CircularString)
		if err != nil {
			return nil, err
		}
		return f.NewCircularString(coords, tolerance)
	default:
		segs, err := s.segments(f, tolerance)
		if err != nil {
			return nil, err
		}
		return f.NewCompoundCurve(segs, tolerance)
	}
}

func (s curveSpec) segments(f *curved.Factory, tolerance float64) ([]curved.Curve, error) {
	segs := make([]curved.Curve, len(s.Compound))
	for i, child := range s.Compound {
		c, err := child.build(f, tolerance)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		segs[i] = c
	}
	return segs, nil
}

func (s curveSpec) buildRing(f *curved.Factory, tolerance float64) (curved.Ring, error) {
	if n := s.kinds(); n != 1 {
		return nil, fmt.Errorf("a ring needs exactly one of linestring, circularstring or compound, got %d", n)
	}
	switch {
	case s.LineString != nil:
		coords, err := toCoords(s.LineString)
		if err != nil {
			return nil, err
		}
		return f.NewLinearRing(coords)
	case s.CircularString != nil:
		coords, err := toCoords(s.CircularString)
		if err != nil {
			return nil, err
		}
		return f.NewCircularRing(coords, tolerance)
	default:
		segs, err := s.segments(f, tolerance)
		if err != nil {
			return nil, err
		}
		return f.NewCompoundRing(segs, tolerance)
	}
}

func (p polygonSpec) build(f *curved.Factory, tolerance float64) (*curved.CurvePolygon, error) {
	shell, err := p.Shell.buildRing(f, tolerance)
	if err != nil {
		return nil, fmt.Errorf("shell: %w", err)
	}
	holes := make([]curved.Ring, len(p.Holes))
	for i, h := range p.Holes {
		r, err := h.buildRing(f, tolerance)
		if err != nil {
			return nil, fmt.Errorf("hole %d: %w", i, err)
		}
		holes[i] = r
	}
	return f.NewCurvePolygon(shell, holes, tolerance)
}

package curved

import (
	"testing"
)

func TestCurvedText(t *testing.T) {
	withZ := func(t *testing.T) *CompoundCurve {
		line, err := NewLinearString([]Coord{XYZ(0, 0, 1), XYZ(1, 0, 2)})
		if err != nil {
			t.Fatal(err)
		}
		arc, err := NewCircularString([]Coord{XYZ(1, 0, 2), XYZ(2, 1, 3), XYZ(3, 0, 4)}, 0.01)
		if err != nil {
			t.Fatal(err)
		}
		c, err := NewCompoundCurve([]Curve{line, arc}, 0.01)
		if err != nil {
			t.Fatal(err)
		}
		return c
	}

	tests := []struct {
		name  string
		build func(t *testing.T) interface{ CurvedText() string }
		want  string
	}{
		{
			"linestring",
			func(t *testing.T) interface{ CurvedText() string } { return mustLinearString(t, 0, 0, 1.5, -2) },
			"LINESTRING (0 0, 1.5 -2)",
		},
		{
			"linestring m",
			func(t *testing.T) interface{ CurvedText() string } {
				s, err := NewLinearString([]Coord{XYM(0, 0, 5), XYM(1, 1, 6)})
				if err != nil {
					t.Fatal(err)
				}
				return s
			},
			"LINESTRING M (0 0 5, 1 1 6)",
		},
		{
			"mixed dimensions",
			func(t *testing.T) interface{ CurvedText() string } {
				s, err := NewLinearString([]Coord{XYZ(0, 0, 5), XY(1, 1)})
				if err != nil {
					t.Fatal(err)
				}
				return s
			},
			"LINESTRING (0 0, 1 1)",
		},
		{
			"circularstring zm",
			func(t *testing.T) interface{ CurvedText() string } {
				pts := []Coord{XYZ(0, 0, 1), XYZ(1, 1, 2), XYZ(2, 0, 3)}
				for i := range pts {
					pts[i].M = float64(10 * i)
				}
				s, err := NewCircularString(pts, 0.01)
				if err != nil {
					t.Fatal(err)
				}
				return s
			},
			"CIRCULARSTRING ZM (0 0 1 0, 1 1 2 10, 2 0 3 20)",
		},
		{
			"empty circularstring",
			func(t *testing.T) interface{ CurvedText() string } { return mustCircularString(t, 0.01) },
			"CIRCULARSTRING EMPTY",
		},
		{
			"compoundcurve z",
			func(t *testing.T) interface{ CurvedText() string } { return withZ(t) },
			"COMPOUNDCURVE Z ((0 0 1, 1 0 2), CIRCULARSTRING (1 0 2, 2 1 3, 3 0 4))",
		},
		{
			"curvepolygon with compound shell",
			func(t *testing.T) interface{ CurvedText() string } {
				shell, err := NewCompoundRing([]Curve{
					mustLinearString(t, -1, 0, 1, 0),
					mustCircularString(t, 0.01, 1, 0, 0, 1, -1, 0),
				}, 0.01)
				if err != nil {
					t.Fatal(err)
				}
				p, err := NewCurvePolygon(shell, nil, 0.01)
				if err != nil {
					t.Fatal(err)
				}
				return p
			},
			"CURVEPOLYGON (COMPOUNDCURVE ((-1 0, 1 0), CIRCULARSTRING (1 0, 0 1, -1 0)))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, tt.build(t).CurvedText())
		})
	}
}

func TestCoordString(t *testing.T) {
	diff(t, "1 2", XY(1, 2).String())
	diff(t, "1 2 3", XYZ(1, 2, 3).String())
	diff(t, "1 2 4", XYM(1, 2, 4).String())
}

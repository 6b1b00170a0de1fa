package curved

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Midpoint(Pt(4, -2)), Pt(2, -1))
	diff(t, Pt(0, 0).Lerp(Pt(10, 20), 0.25), Pt(2.5, 5))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointCoord(t *testing.T) {
	c := Pt(1, 2).Coord()
	if c.X != 1 || c.Y != 2 || c.HasZ() || c.HasM() {
		t.Errorf("got %v, want 2D coordinate (1, 2)", c)
	}
	diff(t, Pt(1, 2), c.Point())
}

func TestOrientation(t *testing.T) {
	tests := []struct {
		p0, p1, p2 Point
		want       Orientation
	}{
		{Pt(0, 0), Pt(1, 0), Pt(1, 1), CounterClockwise},
		{Pt(0, 0), Pt(1, 0), Pt(1, -1), Clockwise},
		{Pt(0, 0), Pt(1, 1), Pt(2, 2), Collinear},
		{Pt(0, 0), Pt(0, 0), Pt(5, 3), Collinear},
	}
	for _, tt := range tests {
		if got := OrientationOf(tt.p0, tt.p1, tt.p2); got != tt.want {
			t.Errorf("OrientationOf(%v, %v, %v) = %v, want %v", tt.p0, tt.p1, tt.p2, got, tt.want)
		}
	}
}

func TestVecFromAngle(t *testing.T) {
	diff(t, Vec(0, 1), VecFromAngle(math.Pi/2), approx)
	if a := Vec(-1, 0).Angle(); a != math.Pi {
		t.Errorf("got angle %v, want π", a)
	}
	if c := Vec(1, 0).Cross(Vec(0, 1)); c != 1 {
		t.Errorf("got cross product %v, want 1", c)
	}
}

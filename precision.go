package curved

import "math"

// PrecisionModel snaps ordinates to a grid. It is used when new points are
// computed from existing geometry, such as by [Arc.Split].
type PrecisionModel interface {
	MakePrecise(v float64) float64
}

// FloatingPrecision keeps the full float64 precision.
type FloatingPrecision struct{}

func (FloatingPrecision) MakePrecise(v float64) float64 { return v }

// FixedPrecision rounds ordinates to multiples of 1/Scale. A Scale of 1000
// keeps three decimal places. Halfway cases round away from zero. A zero
// Scale leaves values unchanged.
type FixedPrecision struct {
	Scale float64
}

func (p FixedPrecision) MakePrecise(v float64) float64 {
	if p.Scale == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*p.Scale) / p.Scale
}

// GridSize returns the distance between adjacent grid lines.
func (p FixedPrecision) GridSize() float64 {
	if p.Scale == 0 {
		return 0
	}
	return 1 / p.Scale
}

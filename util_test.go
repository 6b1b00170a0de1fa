package curved

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats within 1e-9 and treats NaNs as equal, which is
// what linearized coordinates without Z and M need.
var approx = cmp.Options{cmpopts.EquateApprox(0, 1e-9), cmpopts.EquateNaNs()}

func mustCoords(t *testing.T, ordinates ...float64) []Coord {
	t.Helper()
	coords, err := pairsToCoords(ordinates)
	if err != nil {
		t.Fatal(err)
	}
	return coords
}

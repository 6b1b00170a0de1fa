package curved

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/peterstace/simplefeatures/geom"
)

func TestOrdinateBufferAddOrdinate(t *testing.T) {
	var b OrdinateBuffer
	b.AddOrdinates(1, 2, 3, 4, 5, 6)
	if n := b.Len(); n != 2 {
		t.Fatalf("got %d coordinates, want 2", n)
	}
	want := []Coord{{1, 2, 3, 4}, {5, 6, math.NaN(), math.NaN()}}
	diff(t, want, b.Coords(), cmpopts.EquateNaNs())

	// Add completes the partial slot.
	b.Add(XY(7, 8))
	b.AddOrdinate(9)
	diff(t, 4, b.Len())
	diff(t, 9.0, b.At(3).X)
	if !math.IsNaN(b.At(3).Y) {
		t.Errorf("got Y %v, want NaN", b.At(3).Y)
	}
}

func TestOrdinateBufferTruncate(t *testing.T) {
	b := NewOrdinateBuffer(4)
	b.AddRange(XY(0, 0), XY(1, 1), XY(2, 2))
	if err := b.Truncate(4); !errors.Is(err, ErrIndexRange) {
		t.Errorf("growing: got %v, want ErrIndexRange", err)
	}
	if err := b.Truncate(-1); !errors.Is(err, ErrIndexRange) {
		t.Errorf("negative: got %v, want ErrIndexRange", err)
	}
	if err := b.Truncate(2); err != nil {
		t.Fatal(err)
	}
	diff(t, []Coord{XY(0, 0), XY(1, 1)}, b.Coords(), cmpopts.EquateNaNs())

	b.Pop()
	b.Pop()
	b.Pop()
	diff(t, 0, b.Len())
}

func TestOrdinateBufferReverse(t *testing.T) {
	var b OrdinateBuffer
	for i := range 5 {
		b.Add(XY(float64(i), 0))
	}
	b.Reverse(3, 1)
	xs := func() []float64 {
		var out []float64
		for c := range b.All() {
			out = append(out, c.X)
		}
		return out
	}
	diff(t, []float64{0, 3, 2, 1, 4}, xs())

	b.Reverse(-10, 10)
	diff(t, []float64{4, 1, 2, 3, 0}, xs())
}

func TestOrdinateBufferClose(t *testing.T) {
	var b OrdinateBuffer
	b.Close()
	diff(t, 0, b.Len())

	b.AddRange(XY(0, 0), XY(1, 0), XY(1, 1))
	if b.IsClosed() {
		t.Fatal("open buffer reports closed")
	}
	b.Close()
	if !b.IsClosed() {
		t.Fatal("closed buffer reports open")
	}
	b.Close()
	diff(t, 4, b.Len())
}

func TestOrdinateBufferSequence(t *testing.T) {
	tests := []struct {
		coords []Coord
		want   geom.CoordinatesType
	}{
		{[]Coord{XY(0, 0), XY(1, 1)}, geom.DimXY},
		{[]Coord{XYZ(0, 0, 1), XYZ(1, 1, 2)}, geom.DimXYZ},
		{[]Coord{XYM(0, 0, 1), XYM(1, 1, 2)}, geom.DimXYM},
		{[]Coord{{0, 0, 1, 2}, {1, 1, 3, 4}}, geom.DimXYZM},
		{[]Coord{XYZ(0, 0, 1), XY(1, 1)}, geom.DimXY},
	}
	for _, tt := range tests {
		var b OrdinateBuffer
		b.AddRange(tt.coords...)
		seq := b.Sequence()
		if got := seq.CoordinatesType(); got != tt.want {
			t.Errorf("%v: got %v, want %v", b.String(), got, tt.want)
		}
		diff(t, len(tt.coords), seq.Length())
	}
}

func TestOrdinateBufferAllStops(t *testing.T) {
	var b OrdinateBuffer
	b.AddSeq(slices.Values([]Coord{XY(0, 0), XY(1, 1), XY(2, 2)}))
	n := 0
	for range b.All() {
		n++
		if n == 2 {
			break
		}
	}
	diff(t, 2, n)
}

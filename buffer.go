package curved

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/peterstace/simplefeatures/geom"
)

// OrdinateBuffer is an append-only buffer of coordinates that collects
// linearization output before it is turned into a final sequence. Its
// logical length can be shortened with [OrdinateBuffer.Truncate], which is
// how the shared endpoint of two consecutive curve pieces is dropped.
//
// The zero value is an empty buffer ready to use.
type OrdinateBuffer struct {
	coords []Coord
	// channel is the next channel of the last slot written by AddOrdinate,
	// or 0 if the last slot is complete.
	channel int
}

// NewOrdinateBuffer returns a buffer with room for size coordinates.
func NewOrdinateBuffer(size int) *OrdinateBuffer {
	return &OrdinateBuffer{coords: make([]Coord, 0, max(size, 0))}
}

// Len returns the number of coordinates in the buffer, including a slot that
// is only partially filled by AddOrdinate.
func (b *OrdinateBuffer) Len() int { return len(b.coords) }

// Grow ensures room for another n coordinates.
func (b *OrdinateBuffer) Grow(n int) {
	if n <= 0 {
		return
	}
	if cap(b.coords)-len(b.coords) < n {
		grown := make([]Coord, len(b.coords), len(b.coords)+n)
		copy(grown, b.coords)
		b.coords = grown
	}
}

// AddOrdinate appends a single scalar. Four consecutive scalars fill the X,
// Y, Z and M channels of one coordinate; channels not yet written are NaN.
func (b *OrdinateBuffer) AddOrdinate(d float64) {
	if b.channel == 0 {
		b.coords = append(b.coords, Coord{X: math.NaN(), Y: math.NaN(), Z: math.NaN(), M: math.NaN()})
	}
	last := &b.coords[len(b.coords)-1]
	switch b.channel {
	case 0:
		last.X = d
	case 1:
		last.Y = d
	case 2:
		last.Z = d
	case 3:
		last.M = d
	}
	b.channel = (b.channel + 1) % 4
}

// AddOrdinates calls AddOrdinate for each value.
func (b *OrdinateBuffer) AddOrdinates(ds ...float64) {
	for _, d := range ds {
		b.AddOrdinate(d)
	}
}

// Add appends one coordinate.
func (b *OrdinateBuffer) Add(c Coord) {
	b.coords = append(b.coords, c)
	b.channel = 0
}

// AddRange appends coordinates in order.
func (b *OrdinateBuffer) AddRange(cs ...Coord) {
	b.coords = append(b.coords, cs...)
	b.channel = 0
}

// AddSeq appends every coordinate produced by seq.
func (b *OrdinateBuffer) AddSeq(seq iter.Seq[Coord]) {
	for c := range seq {
		b.coords = append(b.coords, c)
	}
	b.channel = 0
}

// Truncate shortens the buffer to n coordinates. It cannot grow the buffer.
func (b *OrdinateBuffer) Truncate(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: size must be zero or positive, got %d", ErrIndexRange, n)
	}
	if n > len(b.coords) {
		return fmt.Errorf("%w: cannot truncate %d coordinates to %d", ErrIndexRange, len(b.coords), n)
	}
	b.coords = b.coords[:n]
	b.channel = 0
	return nil
}

// Pop removes the last coordinate, if any.
func (b *OrdinateBuffer) Pop() {
	if len(b.coords) > 0 {
		b.coords = b.coords[:len(b.coords)-1]
	}
	b.channel = 0
}

// Reverse reverses the coordinates between start and end, both inclusive.
// Indices are clamped to the buffer and may be given in either order.
func (b *OrdinateBuffer) Reverse(start, end int) {
	if start > end {
		start, end = end, start
	}
	start = max(start, 0)
	end = min(end, len(b.coords)-1)
	for near, far := start, end; near < far; near, far = near+1, far-1 {
		b.coords[near], b.coords[far] = b.coords[far], b.coords[near]
	}
}

// At returns the i-th coordinate.
func (b *OrdinateBuffer) At(i int) Coord { return b.coords[i] }

// IsClosed reports whether the buffer is non-empty and its first and last
// coordinates share a planar position.
func (b *OrdinateBuffer) IsClosed() bool {
	return len(b.coords) > 0 && b.coords[0].Equals2D(b.coords[len(b.coords)-1])
}

// Close appends the first coordinate if the buffer isn't already closed.
func (b *OrdinateBuffer) Close() {
	if len(b.coords) == 0 || b.IsClosed() {
		return
	}
	b.Add(b.coords[0])
}

// Coords returns a copy of the buffered coordinates.
func (b *OrdinateBuffer) Coords() []Coord {
	out := make([]Coord, len(b.coords))
	copy(out, b.coords)
	return out
}

// All returns an iterator over the buffered coordinates.
func (b *OrdinateBuffer) All() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, c := range b.coords {
			if !yield(c) {
				return
			}
		}
	}
}

// Sequence converts the buffer into a sequence of the linear geometry
// model. Z and M are kept only if every coordinate has them.
func (b *OrdinateBuffer) Sequence() geom.Sequence {
	return sequenceOf(b.coords)
}

func sequenceOf(coords []Coord) geom.Sequence {
	hasZ, hasM := len(coords) > 0, len(coords) > 0
	for _, c := range coords {
		hasZ = hasZ && c.HasZ()
		hasM = hasM && c.HasM()
	}
	ct := geom.DimXY
	switch {
	case hasZ && hasM:
		ct = geom.DimXYZM
	case hasZ:
		ct = geom.DimXYZ
	case hasM:
		ct = geom.DimXYM
	}
	floats := make([]float64, 0, len(coords)*ct.Dimension())
	for _, c := range coords {
		floats = append(floats, c.X, c.Y)
		if hasZ {
			floats = append(floats, c.Z)
		}
		if hasM {
			floats = append(floats, c.M)
		}
	}
	return geom.NewSequence(floats, ct)
}

func (b *OrdinateBuffer) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "OrdinateBuffer(%d)[", len(b.coords))
	for i, c := range b.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		c.appendText(&sb)
	}
	sb.WriteByte(']')
	return sb.String()
}

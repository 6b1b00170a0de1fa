package curved

import (
	"fmt"
	"strings"
)

// textDims describes which auxiliary channels a text representation
// carries. A channel is written only if every coordinate has it.
type textDims struct {
	z, m bool
}

func dimsOf(coords []Coord) textDims {
	d := textDims{z: len(coords) > 0, m: len(coords) > 0}
	for _, c := range coords {
		d.z = d.z && c.HasZ()
		d.m = d.m && c.HasM()
	}
	return d
}

func (d textDims) tag() string {
	switch {
	case d.z && d.m:
		return " ZM"
	case d.z:
		return " Z"
	case d.m:
		return " M"
	default:
		return ""
	}
}

func writeCoordList(sb *strings.Builder, coords []Coord, d textDims) {
	sb.WriteByte('(')
	for i, c := range coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatOrdinate(c.X))
		sb.WriteByte(' ')
		sb.WriteString(formatOrdinate(c.Y))
		if d.z {
			sb.WriteByte(' ')
			sb.WriteString(formatOrdinate(c.Z))
		}
		if d.m {
			sb.WriteByte(' ')
			sb.WriteString(formatOrdinate(c.M))
		}
	}
	sb.WriteByte(')')
}

// writeMember writes a curve as a member of a compound curve or curve
// polygon. Straight chains are written as a bare coordinate list.
func writeMember(sb *strings.Builder, c Curve, d textDims) {
	switch c := c.(type) {
	case *LinearString:
		writeCoordList(sb, c.coords, d)
	case *LinearRing:
		writeCoordList(sb, c.coords, d)
	case *CircularString:
		sb.WriteString("CIRCULARSTRING ")
		writeCoordList(sb, c.coords, d)
	case *CircularRing:
		sb.WriteString("CIRCULARSTRING ")
		writeCoordList(sb, c.coords, d)
	case *CompoundCurve:
		sb.WriteString("COMPOUNDCURVE ")
		writeSegments(sb, c.segments, d)
	case *CompoundRing:
		sb.WriteString("COMPOUNDCURVE ")
		writeSegments(sb, c.segments, d)
	default:
		panic(fmt.Sprintf("unhandled curve type %T", c))
	}
}

func writeSegments(sb *strings.Builder, segments []Curve, d textDims) {
	sb.WriteByte('(')
	for i, seg := range segments {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeMember(sb, seg, d)
	}
	sb.WriteByte(')')
}

// curvedText returns the extended well-known text of a curved geometry,
// such as
//
//	COMPOUNDCURVE ((0 0, 1 0), CIRCULARSTRING (1 0, 2 1, 3 0))
func curvedText(g any) string {
	var sb strings.Builder
	switch g := g.(type) {
	case *LinearString:
		d := dimsOf(g.coords)
		sb.WriteString("LINESTRING" + d.tag())
		if g.IsEmpty() {
			sb.WriteString(" EMPTY")
			break
		}
		sb.WriteByte(' ')
		writeCoordList(&sb, g.coords, d)
	case *CircularString:
		d := dimsOf(g.coords)
		sb.WriteString("CIRCULARSTRING" + d.tag())
		if g.IsEmpty() {
			sb.WriteString(" EMPTY")
			break
		}
		sb.WriteByte(' ')
		writeCoordList(&sb, g.coords, d)
	case *CompoundCurve:
		d := dimsOf(g.ControlPoints())
		sb.WriteString("COMPOUNDCURVE" + d.tag())
		if g.IsEmpty() {
			sb.WriteString(" EMPTY")
			break
		}
		sb.WriteByte(' ')
		writeSegments(&sb, g.segments, d)
	case *CurvePolygon:
		if g.IsEmpty() {
			sb.WriteString("CURVEPOLYGON EMPTY")
			break
		}
		var all []Coord
		for _, r := range g.rings() {
			all = append(all, r.ControlPoints()...)
		}
		d := dimsOf(all)
		sb.WriteString("CURVEPOLYGON" + d.tag() + " (")
		for i, r := range g.rings() {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeMember(&sb, r, d)
		}
		sb.WriteByte(')')
	default:
		panic(fmt.Sprintf("unhandled geometry type %T", g))
	}
	return sb.String()
}

// Package curved provides planar geometries whose boundaries may contain
// circular arcs, and routines for approximating them by straight line
// segments. Linear approximations are expressed as geometries of the
// [simplefeatures] package, so that they can be used with any code that
// works on ordinary line strings and polygons.
//
// # Arcs
//
// An [Arc] is defined by three control points: it starts at the first, passes
// through the second and ends at the third. The circle through the control
// points is computed lazily. Three collinear points don't define a circle;
// such arcs report a radius of [DefaultCollinears] and are approximated by the
// straight segment from start to end. An arc whose start and end coincide is
// a full circle.
//
// # Curves
//
// The package provides the following curves:
//   - [CircularString], a chain of arcs where each arc starts where the
//     previous one ends
//   - [LinearString], a chain of straight segments
//   - [CompoundCurve], a chain of circular and linear strings
//
// The closed variants [CircularRing], [CompoundRing] and [LinearRing] bound
// a [CurvePolygon].
//
// All curves implement [Curve]. Curves are immutable once constructed and
// are safe for concurrent use. Constructors validate their input and return
// errors that wrap the sentinel errors of this package, such as
// [ErrControlPointCount] and [ErrNotConnected].
//
// # Linearization
//
// Linearization samples arcs at fixed multiples of an angular step that is
// derived from the arc's radius and the requested tolerance, the maximum
// distance between the arc and its approximation. Because samples are
// aligned to the step rather than to the arc's start, concentric arcs are
// sampled at the same angles, and the control points of every arc appear
// exactly in the output.
//
// The resolution is bounded by [Config], which sets the minimum and maximum
// number of segments per quarter circle. A [Factory] binds curves to a
// configuration; the package-level constructors use [DefaultFactory]. A
// tolerance of 0 requests the finest resolution the configuration allows and
// [CoarsestTolerance] the coarsest.
//
// Every curve has a default tolerance, set when it is constructed. The
// linearization at that tolerance is computed once and cached.
//
// # Output
//
// Besides linearization, curves can be written as extended well-known text
// with [Curve.CurvedText] and as SVG path data with [SVG] and
// [Curve.PathElements].
//
// # Logging
//
// The package logs rejected constructions and clamped resolutions at debug
// level to the logger installed with [SetLogger]. By default, nothing is
// logged.
//
// [simplefeatures]: https://pkg.go.dev/github.com/peterstace/simplefeatures/geom
package curved

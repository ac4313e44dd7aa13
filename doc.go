// Package morph computes families of curves that transition smoothly from
// one 3D curve to another. It was designed to lay out reinforcement bars
// between two edges of a building element, but it is general enough to be
// useful for any kind of lofting between two boundary curves.
//
// # Morphing
//
// [Morph] and [MorphOpt] take two curves, a precision and a number of bars.
// Both curves are sampled at the same, evenly spaced parameters; for every
// bar, the corresponding samples are interpolated linearly, and a new curve
// is fitted through the interpolated points. Because the input curves are
// reduced to samples first, they can be of unrelated kinds: an [Arc] can be
// morphed into a [Line] or into a curve owned by a different geometry system
// (see [FuncCurve]).
//
// The precision controls the number of samples per curve. For straight
// curves, a precision of 2 is exact. For strongly curved geometry, it must be
// high enough that the fitted bars are not visibly faceted.
//
// By default, the first bar equals the first curve and the last bar equals
// the second curve. [ExcludeEndpoints] places all bars strictly between the
// two.
//
// # Curves
//
// [ParametricCurve] describes curves that can be evaluated at t ∈ [0, 1] and
// return points in 3D space. This package includes the following curves:
//   - [Arc]
//   - [CubicBez]
//   - [FuncCurve]
//   - [Line]
//   - [Polyline]
//   - [QuadBez]
//   - [Reversed]
//   - [Spline]
//
// [Arclener] is an optional interface implemented by curves that can compute
// their length. [Domainer] is an optional interface implemented by curves
// adapted from a different parametric domain, and lets [MorphOpt] reject
// curves whose domain is empty.
//
// # Fitting
//
// Every bar is a [Spline]: a sequence of cubic Béziers passing through the
// bar's interpolated samples. [FitSpline] uses centripetal Catmull-Rom
// tangents, [FitPolyline] joins the samples with straight segments.
//
// # Errors
//
// Errors returned by [MorphOpt] wrap [ErrInvalidArgument],
// [ErrDegenerateGeometry] or [ErrGeometryConstruction] and can be tested
// with [errors.Is]. A morph either produces all of its bars or fails as a
// whole.
//
// # Output
//
// [WriteSVG] projects curves onto one of the coordinate planes and writes
// them as an SVG document, for inspection of a morph's result.
package morph

package morph

import (
	"iter"
	"math"
	"slices"
)

// Spline is a curve made of cubic Bézier segments joined end to end, passing
// through a sequence of knots.
//
// A spline with n knots has n-1 segments, and knot j sits at parameter
// j / (n-1). Splines are produced by [FitSpline] and [FitPolyline].
type Spline struct {
	knots []Point
	segs  []CubicBez
}

var _ ParametricCurve = Spline{}
var _ Arclener = Spline{}

// Knots returns the points the spline passes through.
func (s Spline) Knots() []Point {
	return slices.Clone(s.knots)
}

// NumSegments returns the number of cubic segments.
func (s Spline) NumSegments() int {
	return len(s.segs)
}

// Segment returns the i-th segment. Segment i spans from knot i to knot i+1.
func (s Spline) Segment(i int) CubicBez {
	return s.segs[i]
}

// Segments returns an iterator over the spline's segments.
func (s Spline) Segments() iter.Seq[CubicBez] {
	return slices.Values(s.segs)
}

// locate maps t to a segment index and a parameter within that segment.
// Parameters outside [0, 1] extrapolate the first and last segments.
func (s Spline) locate(t float64) (int, float64) {
	n := len(s.segs)
	u := t * float64(n)
	i := int(math.Floor(u))
	i = min(max(i, 0), n-1)
	return i, u - float64(i)
}

func (s Spline) Eval(t float64) Point {
	if len(s.segs) == 0 {
		if len(s.knots) > 0 {
			return s.knots[0]
		}
		return Point{}
	}
	i, u := s.locate(t)
	return s.segs[i].Eval(u)
}

// Deriv evaluates the first derivative with respect to the spline's
// parameter t.
func (s Spline) Deriv(t float64) Vec3 {
	if len(s.segs) == 0 {
		return Vec3{}
	}
	i, u := s.locate(t)
	return s.segs[i].Deriv(u).Mul(float64(len(s.segs)))
}

func (s Spline) Start() Point { return s.Eval(0) }
func (s Spline) End() Point   { return s.Eval(1) }

func (s Spline) Arclen(accuracy float64) float64 {
	if len(s.segs) == 0 {
		return 0
	}
	acc := accuracy / float64(len(s.segs))
	var l float64
	for _, seg := range s.segs {
		l += seg.Arclen(acc)
	}
	return l
}

func (s Spline) BoundingBox() Box {
	b := EmptyBox
	for _, seg := range s.segs {
		b = b.Union(seg.BoundingBox())
	}
	return b
}

func (s Spline) Reverse() Spline {
	out := Spline{
		knots: slices.Clone(s.knots),
		segs:  make([]CubicBez, len(s.segs)),
	}
	slices.Reverse(out.knots)
	for i, seg := range s.segs {
		out.segs[len(s.segs)-1-i] = seg.Reverse()
	}
	return out
}

// Flatten approximates the spline with a polyline whose distance from the
// spline is at most tolerance.
func (s Spline) Flatten(tolerance float64) []Point {
	if len(s.segs) == 0 {
		return s.Knots()
	}
	out := []Point{s.segs[0].P0}
	for _, seg := range s.segs {
		out = seg.flatten(tolerance, out)
	}
	return out
}

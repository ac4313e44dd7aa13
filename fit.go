package morph

import (
	"fmt"
	"math"
	"slices"
)

// centripetalAlpha is the knot exponent of the Catmull-Rom parametrization.
// 0.5 (centripetal) is the only value that guarantees no cusps or
// self-intersections within a segment.
const centripetalAlpha = 0.5

// FitKind selects how a curve is constructed through a sequence of points.
type FitKind int

const (
	// SplineFit constructs a smooth, G1-continuous spline through the points,
	// using centripetal Catmull-Rom tangents.
	SplineFit FitKind = iota
	// PolylineFit connects the points with straight segments.
	PolylineFit
)

func (k FitKind) String() string {
	switch k {
	case SplineFit:
		return "spline"
	case PolylineFit:
		return "polyline"
	default:
		return fmt.Sprintf("FitKind(%d)", int(k))
	}
}

func (k FitKind) fit(pts []Point, tolerance float64) (Spline, error) {
	switch k {
	case SplineFit:
		return FitSpline(pts, tolerance)
	case PolylineFit:
		return FitPolyline(pts, tolerance)
	default:
		panic(fmt.Sprintf("unhandled case %v", k))
	}
}

// checkFitPoints verifies that pts can be fitted: there must be at least two
// points, and no two consecutive points may lie within tolerance of each
// other.
func checkFitPoints(pts []Point, tolerance float64) error {
	if len(pts) < 2 {
		return fmt.Errorf("%w: need at least 2 points, got %d", ErrGeometryConstruction, len(pts))
	}
	for i, pt := range pts {
		if !pt.IsFinite() {
			return fmt.Errorf("%w: sample %d is not finite: %v", ErrGeometryConstruction, i, pt)
		}
		// Negated so that NaN distances count as coincident.
		if i > 0 && !(pt.Distance(pts[i-1]) > tolerance) {
			return &FitError{Index: i, Point: pt}
		}
	}
	return nil
}

// FitPolyline returns a spline of straight segments through pts. Each
// segment is parametrized uniformly.
//
// It fails with an error wrapping [ErrGeometryConstruction] if there are
// fewer than two points or consecutive points coincide within tolerance.
func FitPolyline(pts []Point, tolerance float64) (Spline, error) {
	if err := checkFitPoints(pts, tolerance); err != nil {
		return Spline{}, err
	}
	s := Spline{
		knots: slices.Clone(pts),
		segs:  make([]CubicBez, len(pts)-1),
	}
	for i := range s.segs {
		s.segs[i] = Line{pts[i], pts[i+1]}.Cubic()
	}
	return s, nil
}

// FitSpline returns a smooth spline that passes through every point in pts.
//
// The tangent at each interior point follows the centripetal Catmull-Rom
// construction. At open ends, a phantom neighbour is extrapolated from the
// quadratic through the first (or last) three points, so that evenly spaced
// collinear points produce an exactly straight, uniformly parametrized
// spline. If the first and last points coincide and there are at least four
// points, the spline is treated as closed and gets a smooth tangent at the
// seam.
//
// It fails with an error wrapping [ErrGeometryConstruction] if there are
// fewer than two points or consecutive points coincide within tolerance.
func FitSpline(pts []Point, tolerance float64) (Spline, error) {
	if err := checkFitPoints(pts, tolerance); err != nil {
		return Spline{}, err
	}
	n := len(pts)
	if n == 2 {
		return FitPolyline(pts, tolerance)
	}
	closed := n >= 4 && pts[0].Distance(pts[n-1]) <= tolerance

	neighbour := func(i int) Point {
		switch {
		case i >= 0 && i < n:
			return pts[i]
		case closed && i < 0:
			return pts[n-2]
		case closed:
			return pts[1]
		case i < 0:
			return phantom(pts[0], pts[1], pts[2], tolerance)
		default:
			return phantom(pts[n-1], pts[n-2], pts[n-3], tolerance)
		}
	}

	s := Spline{
		knots: slices.Clone(pts),
		segs:  make([]CubicBez, n-1),
	}
	for i := range s.segs {
		s.segs[i] = catmullRomSegment(neighbour(i-1), pts[i], pts[i+1], neighbour(i+2))
	}
	return s, nil
}

// phantom extrapolates a point before p0, on the quadratic through p0, p1 and
// p2. If that point coincides with p0, p1 is reflected through p0 instead.
func phantom(p0, p1, p2 Point, tolerance float64) Point {
	// p0 - (p1 - p0) - ((p1 - p0) - (p2 - p1)) = 3 p0 - 3 p1 + p2
	q := p0.Translate(p0.Sub(p1).Mul(2)).Translate(p2.Sub(p1))
	if q.Distance(p0) > tolerance {
		return q
	}
	return p0.Translate(p0.Sub(p1))
}

// catmullRomSegment returns the cubic Bézier between p1 and p2 of a
// centripetal Catmull-Rom spline with neighbours p0 and p3.
func catmullRomSegment(p0, p1, p2, p3 Point) CubicBez {
	d1 := math.Pow(p1.Distance(p0), centripetalAlpha)
	d2 := math.Pow(p2.Distance(p1), centripetalAlpha)
	d3 := math.Pow(p3.Distance(p2), centripetalAlpha)

	var b1, b2 Point
	if d1 > 0 {
		v := p2.Sub(p1).Mul(d1 * d1).Sub(p0.Sub(p1).Mul(d2 * d2))
		b1 = p1.Translate(v.Div(3 * d1 * (d1 + d2)))
	} else {
		b1 = p1.Lerp(p2, 1.0/3.0)
	}
	if d3 > 0 {
		v := p1.Sub(p2).Mul(d3 * d3).Sub(p3.Sub(p2).Mul(d2 * d2))
		b2 = p2.Translate(v.Div(3 * d3 * (d3 + d2)))
	} else {
		b2 = p2.Lerp(p1, 1.0/3.0)
	}
	return CubicBez{p1, b1, b2, p2}
}

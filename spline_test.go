package morph

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFitSplineInterpolates(t *testing.T) {
	pts := Sample(quarterArc(10), 7)
	s, err := FitSpline(pts, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	if n := s.NumSegments(); n != 6 {
		t.Fatalf("got %d segments, want 6", n)
	}
	diff(t, pts, s.Knots())
	for j, p := range pts {
		got := s.Eval(float64(j) / 6)
		if d := got.Distance(p); d > 1e-9 {
			t.Errorf("knot %d: spline is %g away", j, d)
		}
	}
	// Consecutive segments share their end points.
	for i := 1; i < s.NumSegments(); i++ {
		diff(t, s.Segment(i-1).P3, s.Segment(i).P0)
	}
}

func TestFitSplineSmooth(t *testing.T) {
	pts := Sample(quarterArc(10), 5)
	s, err := FitSpline(pts, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	// Tangents agree in direction at every interior knot.
	for i := 1; i < s.NumSegments(); i++ {
		_, d0 := s.Segment(i - 1).Tangents()
		d1, _ := s.Segment(i).Tangents()
		if c := d0.Normalize().Cross(d1.Normalize()).Hypot(); c > 1e-9 {
			t.Errorf("knot %d: tangents differ, sine of angle is %g", i, c)
		}
		if d0.Dot(d1) <= 0 {
			t.Errorf("knot %d: tangents point in opposite directions", i)
		}
	}
}

func TestFitSplineStraight(t *testing.T) {
	l := Line{Pt(0, 0, 0), Pt(10, 5, -5)}
	for _, n := range []int{2, 3, 4, 9} {
		s, err := FitSpline(Sample(l, n), DefaultTolerance)
		if err != nil {
			t.Fatal(err)
		}
		if d := maxDeviation(l, s, 200); d > 1e-12 {
			t.Errorf("%d knots: spline deviates from line by %g", n, d)
		}
	}
}

func TestFitSplineClosed(t *testing.T) {
	pts := Sample(circle(5), 9)
	s, err := FitSpline(pts, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	d0 := s.Deriv(0).Normalize()
	d1 := s.Deriv(1).Normalize()
	diff(t, d0, d1, cmpopts.EquateApprox(0, 1e-9))
}

func TestFitSplineCoincident(t *testing.T) {
	pts := []Point{Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 0, 0), Pt(2, 0, 0)}
	for _, fit := range []func([]Point, float64) (Spline, error){FitSpline, FitPolyline} {
		_, err := fit(pts, DefaultTolerance)
		if !errors.Is(err, ErrGeometryConstruction) {
			t.Fatalf("got error %v, want %v", err, ErrGeometryConstruction)
		}
		var ferr *FitError
		if !errors.As(err, &ferr) {
			t.Fatalf("got error of type %T, want *FitError", err)
		}
		diff(t, 2, ferr.Index)
	}
}

func TestFitSplineTooFewPoints(t *testing.T) {
	for _, pts := range [][]Point{nil, {Pt(1, 2, 3)}} {
		if _, err := FitSpline(pts, DefaultTolerance); !errors.Is(err, ErrGeometryConstruction) {
			t.Errorf("%d points: got error %v, want %v", len(pts), err, ErrGeometryConstruction)
		}
	}
}

func TestFitSplineNaN(t *testing.T) {
	pts := []Point{Pt(0, 0, 0), Pt(math.NaN(), 0, 0), Pt(2, 0, 0)}
	if _, err := FitSpline(pts, DefaultTolerance); !errors.Is(err, ErrGeometryConstruction) {
		t.Errorf("got error %v, want %v", err, ErrGeometryConstruction)
	}
}

func TestFitPolyline(t *testing.T) {
	pts := []Point{Pt(0, 0, 0), Pt(10, 0, 0), Pt(10, 30, 0)}
	s, err := FitPolyline(pts, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	// Unlike Polyline, each segment gets an equal share of the parameter.
	diff(t, Pt(5, 0, 0), s.Eval(0.25), approx)
	diff(t, Pt(10, 0, 0), s.Eval(0.5), approx)
	diff(t, Pt(10, 15, 0), s.Eval(0.75), approx)
	diff(t, 40.0, s.Arclen(1e-9), approx)
}

func TestSplineReverse(t *testing.T) {
	s, err := FitSpline(Sample(quarterArc(10), 6), DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	r := s.Reverse()
	if d := maxDeviation(Reversed{s}, r, 200); d > 1e-9 {
		t.Errorf("reversed spline deviates by %g", d)
	}
	diff(t, s.Knots()[0], r.Knots()[5])
}

func TestSplineFlatten(t *testing.T) {
	a := quarterArc(10)
	s, err := FitSpline(Sample(a, 16), DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	pts := Flatten(s, 1e-3)
	diff(t, s.Start(), pts[0])
	diff(t, s.End(), pts[len(pts)-1])
	for i, p := range pts {
		if d := math.Abs(p.Distance(a.Center) - a.Radius); d > 1e-2 {
			t.Errorf("vertex %d is %g off the arc", i, d)
		}
	}
}

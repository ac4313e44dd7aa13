package morph

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPolylineEval(t *testing.T) {
	pl := NewPolyline(Pt(0, 0, 0), Pt(10, 0, 0), Pt(10, 30, 0))
	approx := cmpopts.EquateApprox(0, 1e-12)

	diff(t, 40.0, pl.Arclen(DefaultAccuracy))
	diff(t, Pt(0, 0, 0), pl.Start())
	diff(t, Pt(10, 30, 0), pl.End())
	// Chord length parametrization: the corner is at a quarter of the length.
	diff(t, Pt(10, 0, 0), pl.Eval(0.25), approx)
	diff(t, Pt(5, 0, 0), pl.Eval(0.125), approx)
	diff(t, Pt(10, 15, 0), pl.Eval(0.625), approx)
	// Out of range parameters clamp.
	diff(t, Pt(0, 0, 0), pl.Eval(-1))
	diff(t, Pt(10, 30, 0), pl.Eval(2))
}

func TestPolylineDegenerate(t *testing.T) {
	var zero Polyline
	diff(t, Point{}, zero.Eval(0.5))

	pl := NewPolyline(Pt(1, 1, 1), Pt(1, 1, 1))
	diff(t, 0.0, pl.Arclen(DefaultAccuracy))
	diff(t, Pt(1, 1, 1), pl.Eval(0.5))
}

func TestPolylineReverse(t *testing.T) {
	pl := NewPolyline(Pt(0, 0, 0), Pt(10, 0, 0), Pt(10, 30, 0))
	if d := maxDeviation(Reversed{pl}, pl.Reverse(), 200); d > 1e-12 {
		t.Errorf("reversed polyline deviates by %g", d)
	}
}

func TestPolylineCopies(t *testing.T) {
	pts := []Point{Pt(0, 0, 0), Pt(1, 0, 0)}
	pl := NewPolyline(pts...)
	pts[1] = Pt(5, 5, 5)
	diff(t, Pt(1, 0, 0), pl.End())
}

func TestPolylineFlatten(t *testing.T) {
	pts := []Point{Pt(0, 0, 0), Pt(10, 0, 0), Pt(10, 30, 0)}
	diff(t, pts, Flatten(NewPolyline(pts...), 1))
}

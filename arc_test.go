package morph

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestArcThrough(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)

	a, ok := ArcThrough(Pt(10, 0, 0), Pt(0, 10, 0), Pt(-10, 0, 0))
	if !ok {
		t.Fatal("no arc through three points on a circle")
	}
	diff(t, Pt(0, 0, 0), a.Center, approx)
	diff(t, 10.0, a.Radius, approx)
	diff(t, math.Pi, a.SweepAngle, approx)
	diff(t, Pt(0, 10, 0), a.Eval(0.5), approx)
	diff(t, Pt(10, 0, 0), a.Start(), approx)
	diff(t, Pt(-10, 0, 0), a.End(), approx)
	diff(t, 10*math.Pi, a.Arclen(DefaultAccuracy), approx)
}

func TestArcThroughMajor(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)

	// Clockwise, through three quarters of the circle.
	a, ok := ArcThrough(Pt(10, 0, 0), Pt(0, -10, 0), Pt(0, 10, 0))
	if !ok {
		t.Fatal("no arc through three points on a circle")
	}
	diff(t, 3*math.Pi/2, a.SweepAngle, approx)
	diff(t, Pt(0, -10, 0), a.Eval(1.0/3.0), approx)
	diff(t, Pt(-10, 0, 0), a.Eval(2.0/3.0), approx)
}

func TestArcThroughTilted(t *testing.T) {
	p0, p1, p2 := Pt(0, 0, 0), Pt(1, 1, 1), Pt(2, 0, 2)
	a, ok := ArcThrough(p0, p1, p2)
	if !ok {
		t.Fatal("no arc through three points")
	}
	for _, p := range []Point{p0, p1, p2} {
		if d := math.Abs(p.Distance(a.Center) - a.Radius); d > 1e-9 {
			t.Errorf("%v is %g off the circle", p, d)
		}
	}
	for i := range 11 {
		p := a.Eval(float64(i) / 10)
		if d := math.Abs(p.Distance(a.Center) - a.Radius); d > 1e-9 {
			t.Errorf("%v is %g off the circle", p, d)
		}
		// All points lie in the plane x = z.
		if d := math.Abs(p.X - p.Z); d > 1e-9 {
			t.Errorf("%v is %g off the plane", p, d)
		}
	}
	diff(t, p2, a.End(), cmpopts.EquateApprox(0, 1e-9))
}

func TestArcThroughCollinear(t *testing.T) {
	if _, ok := ArcThrough(Pt(0, 0, 0), Pt(1, 1, 1), Pt(2, 2, 2)); ok {
		t.Error("got an arc through collinear points")
	}
	if _, ok := ArcThrough(Pt(0, 0, 0), Pt(0, 0, 0), Pt(2, 2, 2)); ok {
		t.Error("got an arc through coincident points")
	}
}

func TestArcReverse(t *testing.T) {
	a := quarterArc(10)
	r := a.Reverse()
	if d := maxDeviation(Reversed{a}, r, 100); d > 1e-12 {
		t.Errorf("reversed arc deviates by %g", d)
	}
	sub := a.Subsegment(0.5, 1)
	diff(t, a.Eval(0.75), sub.Eval(0.5), cmpopts.EquateApprox(0, 1e-12))
}

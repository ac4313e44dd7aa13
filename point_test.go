package morph

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0, 0).Translate(Vec(-10, 0, 2)), Pt(-10, 0, 2))
	diff(t, Pt(1, 2, 3).Sub(Pt(1, 1, 1)), Vec(0, 1, 2))
	diff(t, Pt(0, 0, 0).Lerp(Pt(10, 20, 30), 0.5), Pt(5, 10, 15))
	diff(t, Pt(0, 0, 0).Midpoint(Pt(10, 20, 30)), Pt(5, 10, 15))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10, 0)
	p2 := Pt(0, 5, 0)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(0, 0, 0)
	p4 := Pt(3, 4, 12)
	if d := p3.Distance(p4); d != 13 {
		t.Errorf("got distance %v, want 13", d)
	}
	if d := p3.DistanceSquared(p4); d != 169 {
		t.Errorf("got squared distance %v, want 169", d)
	}
}

func TestPointIsFinite(t *testing.T) {
	if !Pt(1, 2, 3).IsFinite() {
		t.Error("point is not finite but should be")
	}
	if Pt(1, math.NaN(), 3).IsFinite() {
		t.Error("point is finite but shouldn't be")
	}
	if Pt(1, 2, math.Inf(-1)).IsFinite() {
		t.Error("point is finite but shouldn't be")
	}
}

func TestVecCross(t *testing.T) {
	diff(t, Vec(1, 0, 0).Cross(Vec(0, 1, 0)), Vec(0, 0, 1))
	diff(t, Vec(0, 1, 0).Cross(Vec(1, 0, 0)), Vec(0, 0, -1))
	if d := Vec(1, 2, 3).Cross(Vec(4, 5, 6)).Dot(Vec(1, 2, 3)); d != 0 {
		t.Errorf("cross product isn't orthogonal to its operand: dot is %v", d)
	}
	if n := Vec(3, 0, 4).Normalize().Hypot(); math.Abs(n-1) > 1e-15 {
		t.Errorf("normalized vector has magnitude %v", n)
	}
}

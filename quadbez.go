package morph

import (
	"math"
)

var _ ParametricCurve = QuadBez{}
var _ Arclener = QuadBez{}

// QuadBez is a quadratic Bézier curve. Quadratics are how some CAD systems
// describe conic fillets; they are accepted as input curves like any other.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// BoundingBox returns the bounding box of the control points, which
// contains the curve.
func (q QuadBez) BoundingBox() Box {
	return NewBoxFromPoints(q.P0, q.P2).UnionPoint(q.P1)
}

// Raise the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// Arclen returns the arclength of the quadratic Bézier segment.
//
// This computation is based on an analytical formula. Since that formula suffers
// from numerical instability when the curve is very close to a straight line, we
// detect that case and fall back to Legendre-Gauss quadrature.
//
// Overall accuracy should be better than 1e-13 over the entire range.
func (q QuadBez) Arclen(accuracy float64) float64 {
	d2 := Vec3(q.P0).Sub(Vec3(q.P1).Mul(2)).Add(Vec3(q.P2))
	a := d2.Hypot2()
	d1 := q.P1.Sub(q.P0)
	c := d1.Hypot2()
	if a < 5e-4*c {
		// Nearly straight. Three-point quadrature, from Behdad in
		// https://github.com/Pomax/BezierInfo-2/issues/77
		v0 := Vec3(q.P0).Mul(-0.492943519233745).
			Add(Vec3(q.P1).Mul(0.430331482911935)).
			Add(Vec3(q.P2).Mul(0.0626120363218102)).
			Hypot()
		v1 := q.P2.Sub(q.P0).Mul(0.4444444444444444).Hypot()
		v2 := Vec3(q.P0).Mul(-0.0626120363218102).
			Sub(Vec3(q.P1).Mul(0.430331482911935)).
			Add(Vec3(q.P2).Mul(0.492943519233745)).
			Hypot()
		return v0 + v1 + v2
	}
	b := 2.0 * d2.Dot(d1)

	sabc := math.Sqrt(a + b + c)
	a2 := math.Pow(a, -0.5)
	a32 := a2 * a2 * a2
	c2 := 2.0 * math.Sqrt(c)
	baC2 := b*a2 + c2

	v0 := 0.25*a2*a2*b*(2.0*sabc-c2) + sabc
	if baC2 < 1e-13 {
		// Sharp kink.
		return v0
	}
	return v0 + 0.25*a32*(4.0*c*a-b*b)*math.Log(((2.0*a+b)*a2+2.0*sabc)/baC2)
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec3(q.P0).Mul(mt * mt)
	b := Vec3(q.P1).Mul(mt * 2.0)
	c := Vec3(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Deriv evaluates the first derivative of the curve at t.
func (q QuadBez) Deriv(t float64) Vec3 {
	return q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t).Mul(2)
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) Reverse() QuadBez {
	return QuadBez{q.P2, q.P1, q.P0}
}

// Flatten approximates the quadratic with a polyline whose distance from the
// curve is at most tolerance.
func (q QuadBez) Flatten(tolerance float64) []Point {
	return q.Raise().flatten(tolerance, []Point{q.P0})
}

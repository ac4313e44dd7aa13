package morph

import (
	"math"
)

// Arc is a circular arc in an arbitrary plane.
//
// XAxis and YAxis span the arc's plane and must be orthogonal unit vectors.
// Angles are measured from XAxis towards YAxis.
type Arc struct {
	Center     Point
	XAxis      Vec3
	YAxis      Vec3
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

var _ ParametricCurve = Arc{}
var _ Arclener = Arc{}

// ArcThrough returns the arc that starts at p0, passes through p1 and ends at
// p2. It returns false if the points are collinear or coincident.
func ArcThrough(p0, p1, p2 Point) (Arc, bool) {
	a := p0.Sub(p2)
	b := p1.Sub(p2)
	axb := a.Cross(b)
	den := 2 * axb.Hypot2()
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return Arc{}, false
	}
	// Circumcenter of the triangle, relative to p2.
	num := b.Mul(a.Hypot2()).Sub(a.Mul(b.Hypot2())).Cross(axb)
	center := p2.Translate(num.Div(den))

	normal := p1.Sub(p0).Cross(p2.Sub(p1)).Normalize()
	x := p0.Sub(center)
	radius := x.Hypot()
	x = x.Div(radius)
	y := normal.Cross(x)

	arc := Arc{
		Center: center,
		XAxis:  x,
		YAxis:  y,
		Radius: radius,
	}
	sweep := arc.angleOf(p2)
	if sweep <= 0 {
		sweep += 2 * math.Pi
	}
	arc.SweepAngle = sweep
	if arc.IsNaN() {
		return Arc{}, false
	}
	return arc, true
}

// angleOf returns the angle of pt's projection into the arc's plane, in the
// range (-π, π].
func (a Arc) angleOf(pt Point) float64 {
	d := pt.Sub(a.Center)
	return math.Atan2(d.Dot(a.YAxis), d.Dot(a.XAxis))
}

func (a Arc) IsInf() bool {
	return a.Center.IsInf() || a.XAxis.IsInf() || a.YAxis.IsInf() ||
		math.IsInf(a.Radius, 0) || math.IsInf(a.StartAngle, 0) || math.IsInf(a.SweepAngle, 0)
}

func (a Arc) IsNaN() bool {
	return a.Center.IsNaN() || a.XAxis.IsNaN() || a.YAxis.IsNaN() ||
		math.IsNaN(a.Radius) || math.IsNaN(a.StartAngle) || math.IsNaN(a.SweepAngle)
}

func (a Arc) Eval(t float64) Point {
	sin, cos := math.Sincos(a.StartAngle + t*a.SweepAngle)
	return a.Center.Translate(a.XAxis.Mul(a.Radius * cos).Add(a.YAxis.Mul(a.Radius * sin)))
}

func (a Arc) Start() Point { return a.Eval(0) }
func (a Arc) End() Point   { return a.Eval(1) }

// Arclen returns the exact length of the arc.
func (a Arc) Arclen(accuracy float64) float64 {
	return math.Abs(a.SweepAngle) * a.Radius
}

func (a Arc) Subsegment(t0, t1 float64) Arc {
	a.StartAngle, a.SweepAngle = a.StartAngle+t0*a.SweepAngle, (t1-t0)*a.SweepAngle
	return a
}

func (a Arc) Reverse() Arc {
	a.StartAngle, a.SweepAngle = a.StartAngle+a.SweepAngle, -a.SweepAngle
	return a
}

func (a Arc) Translate(v Vec3) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

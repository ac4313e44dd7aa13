package morph

import (
	"math"
)

// DefaultAccuracy is a default value for methods that take an accuracy
// argument. It is suitable for model-space geometry measured in millimetres
// or feet alike.
const DefaultAccuracy = 1e-6

// ParametricCurve describes a curve in 3D space parametrized by a scalar.
//
// Curves are immutable values. Functions in this package never modify the
// curves they are given.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float64) Point
	Start() Point
	End() Point
}

// Arclener describes a parametrized curve that can have its arc length
// measured.
type Arclener interface {
	// Arclen returns the length of the curve.
	//
	// The result is accurate to the given accuracy (subject to roundoff errors
	// for ridiculously low values). Compute time may vary with accuracy, if the
	// curve needs to be subdivided.
	Arclen(accuracy float64) float64
}

// Domainer describes curves that are adapted from a curve with its own
// parametric domain. The domain is reported in the units of the underlying
// curve; [ParametricCurve.Eval] still takes t ∈ [0, 1].
type Domainer interface {
	Domain() (start, end float64)
}

// Length returns the arc length of c.
//
// If c implements [Arclener], Length defers to it. Otherwise the curve is
// flattened into successively finer polylines until the length estimate
// settles to within accuracy.
func Length(c ParametricCurve, accuracy float64) float64 {
	if c, ok := c.(Arclener); ok {
		return c.Arclen(accuracy)
	}
	const (
		minSegments = 64
		maxSegments = 1 << 14
	)
	prev := chordLength(c, minSegments)
	for n := minSegments * 2; n <= maxSegments; n *= 2 {
		l := chordLength(c, n)
		if math.Abs(l-prev) <= accuracy || math.IsNaN(l) {
			return l
		}
		prev = l
	}
	return prev
}

func chordLength(c ParametricCurve, n int) float64 {
	var l float64
	p0 := c.Eval(0)
	for i := 1; i <= n; i++ {
		p1 := c.Eval(float64(i) / float64(n))
		l += p1.Distance(p0)
		p0 = p1
	}
	return l
}

// Sample evaluates c at n evenly spaced parameters t_j = j / (n-1).
//
// n must be at least 2.
func Sample(c ParametricCurve, n int) []Point {
	if n < 2 {
		panic("Sample needs at least two samples")
	}
	out := make([]Point, n)
	for j := range out {
		out[j] = c.Eval(float64(j) / float64(n-1))
	}
	// Pin the ends so that they match Start and End exactly, independent of
	// roundoff in Eval.
	out[0] = c.Start()
	out[n-1] = c.End()
	return out
}

// Reversed traverses a curve from its end to its start.
type Reversed struct {
	C ParametricCurve
}

var _ ParametricCurve = Reversed{}
var _ Arclener = Reversed{}

func (r Reversed) Eval(t float64) Point { return r.C.Eval(1 - t) }
func (r Reversed) Start() Point         { return r.C.End() }
func (r Reversed) End() Point           { return r.C.Start() }

func (r Reversed) Arclen(accuracy float64) float64 {
	return Length(r.C, accuracy)
}

// FuncCurve adapts an evaluator with an arbitrary parametric domain [U0, U1]
// to a [ParametricCurve] over [0, 1].
//
// This is the usual way of handing curves owned by another geometry system to
// this package: the evaluator is called with u = U0 + t (U1 - U0).
type FuncCurve struct {
	F  func(u float64) Point
	U0 float64
	U1 float64
}

var _ ParametricCurve = FuncCurve{}
var _ Domainer = FuncCurve{}

func (fc FuncCurve) Eval(t float64) Point {
	return fc.F(fc.U0 + t*(fc.U1-fc.U0))
}

func (fc FuncCurve) Start() Point { return fc.F(fc.U0) }
func (fc FuncCurve) End() Point   { return fc.F(fc.U1) }

func (fc FuncCurve) Domain() (float64, float64) {
	return fc.U0, fc.U1
}

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs8 = [...][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs8Half = [...][2]float64{
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs16Half = [...][2]float64{
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, 0.9894009349916499},
}

var gaussLegendreCoeffs24Half = [...][2]float64{
	{0.1279381953467522, 0.0640568928626056},
	{0.1258374563468283, 0.1911188674736163},
	{0.1216704729278034, 0.3150426796961634},
	{0.1155056680537256, 0.4337935076260451},
	{0.1074442701159656, 0.5454214713888396},
	{0.0976186521041139, 0.6480936519369755},
	{0.0861901615319533, 0.7401241915785544},
	{0.0733464814110803, 0.8200019859739029},
	{0.0592985849154368, 0.8864155270044011},
	{0.0442774388174198, 0.9382745520027328},
	{0.0285313886289337, 0.9747285559713095},
	{0.0123412297999872, 0.9951872199970213},
}

type flattener interface {
	Flatten(tolerance float64) []Point
}

// Flatten approximates c with a polyline whose vertices lie on c and whose
// segments deviate from c by roughly at most tolerance.
//
// If c has a Flatten method of its own, Flatten defers to it. Otherwise c is
// bisected recursively until the midpoint of each piece lies within tolerance
// of its chord.
func Flatten(c ParametricCurve, tolerance float64) []Point {
	if c, ok := c.(flattener); ok {
		return c.Flatten(tolerance)
	}
	p0 := c.Start()
	out := []Point{p0}
	return flattenRec(c, 0, 1, p0, c.End(), tolerance, 0, out)
}

func flattenRec(c ParametricCurve, t0, t1 float64, p0, p1 Point, tolerance float64, depth int, out []Point) []Point {
	// Always split a few times, so that curves that return to their chord
	// at the midpoint aren't mistaken for straight lines.
	const minDepth = 3
	tm := 0.5 * (t0 + t1)
	pm := c.Eval(tm)
	if depth >= maxFlattenDepth {
		return append(out, p1)
	}
	if depth >= minDepth {
		d, _ := Line{p0, p1}.Nearest(pm)
		if !(d > tolerance*tolerance) {
			return append(out, p1)
		}
	}
	out = flattenRec(c, t0, tm, p0, pm, tolerance, depth+1, out)
	return flattenRec(c, tm, t1, pm, p1, tolerance, depth+1, out)
}

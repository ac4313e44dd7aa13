package morph

import (
	"fmt"
	"math"
)

// DefaultTolerance is the distance below which two points are considered
// coincident, and the length below which a curve is considered degenerate.
const DefaultTolerance = 1e-9

// EndpointMode selects whether the two input curves themselves are part of a
// morph's result.
type EndpointMode int

const (
	// IncludeEndpoints makes the first bar equal to the first curve and the
	// last bar equal to the second curve. Bar i has weight i / (n-1). A single
	// bar has weight 0.
	IncludeEndpoints EndpointMode = iota
	// ExcludeEndpoints places all bars strictly between the two curves. Bar i
	// has weight (i+1) / (n+1). A single bar is the midpoint curve.
	ExcludeEndpoints
)

func (m EndpointMode) String() string {
	switch m {
	case IncludeEndpoints:
		return "include"
	case ExcludeEndpoints:
		return "exclude"
	default:
		return fmt.Sprintf("EndpointMode(%d)", int(m))
	}
}

// Weight returns the interpolation weight of bar i out of n.
func (m EndpointMode) Weight(i, n int) float64 {
	switch m {
	case IncludeEndpoints:
		if n == 1 {
			return 0
		}
		return float64(i) / float64(n-1)
	case ExcludeEndpoints:
		return float64(i+1) / float64(n+1)
	default:
		panic(fmt.Sprintf("unhandled case %v", m))
	}
}

// Options specifies optional settings for [MorphOpt]. The zero value is
// valid and equivalent to [DefaultOptions].
type Options struct {
	// Fit selects how each bar is constructed through its samples.
	Fit FitKind
	// Endpoints selects whether the input curves are the first and last
	// bars.
	Endpoints EndpointMode
	// AlignDirection traverses the second curve backwards if it runs
	// opposite to the first one. Without it, morphing between two curves of
	// opposite direction produces bars that cross over each other.
	AlignDirection bool
	// Tolerance is the distance below which points are coincident. Zero
	// means DefaultTolerance.
	Tolerance float64
	// Accuracy is the accuracy of arc length measurements. Zero means
	// DefaultAccuracy.
	Accuracy float64
}

// DefaultOptions are the options used by [Morph].
var DefaultOptions = Options{
	Fit:       SplineFit,
	Endpoints: IncludeEndpoints,
	Tolerance: DefaultTolerance,
	Accuracy:  DefaultAccuracy,
}

func (opts Options) normalize() (Options, error) {
	switch opts.Fit {
	case SplineFit, PolylineFit:
	default:
		return opts, fmt.Errorf("%w: unknown fit kind %v", ErrInvalidArgument, opts.Fit)
	}
	switch opts.Endpoints {
	case IncludeEndpoints, ExcludeEndpoints:
	default:
		return opts, fmt.Errorf("%w: unknown endpoint mode %v", ErrInvalidArgument, opts.Endpoints)
	}
	if opts.Tolerance == 0 {
		opts.Tolerance = DefaultTolerance
	}
	if !(opts.Tolerance > 0) || math.IsInf(opts.Tolerance, 0) {
		return opts, fmt.Errorf("%w: tolerance must be positive and finite, got %g", ErrInvalidArgument, opts.Tolerance)
	}
	if opts.Accuracy == 0 {
		opts.Accuracy = DefaultAccuracy
	}
	if !(opts.Accuracy > 0) || math.IsInf(opts.Accuracy, 0) {
		return opts, fmt.Errorf("%w: accuracy must be positive and finite, got %g", ErrInvalidArgument, opts.Accuracy)
	}
	return opts, nil
}

// Bar is one curve of a morph.
type Bar struct {
	// Index is the bar's position in the result.
	Index int
	// Weight is the interpolation weight: 0 is the first curve, 1 the second.
	Weight float64
	// Curve is the fitted bar. It passes through the bar's interpolated
	// samples.
	Curve  Spline
}

// Morph computes numberOfBars curves that transition from the shape of a to
// the shape of b, using [DefaultOptions]. See [MorphOpt].
func Morph(a, b ParametricCurve, precision, numberOfBars int) ([]Bar, error) {
	return MorphOpt(a, b, precision, numberOfBars, DefaultOptions)
}

// MorphOpt computes numberOfBars curves that transition from the shape of a
// to the shape of b.
//
// Both curves are sampled at precision evenly spaced parameters t_j = j /
// (precision-1). A precision of 1 samples only the endpoints, the same as a
// precision of 2. For bar i with weight w_i (see [EndpointMode.Weight]), the
// samples are interpolated pointwise as (1-w_i) a(t_j) + w_i b(t_j), and a
// curve is fitted through the interpolated points as selected by opts.Fit.
// The fitted curve passes through every interpolated point, with point j at
// parameter t_j.
//
// Because the curves are reduced to samples before interpolating, a and b may
// be of entirely different kinds.
//
// The result always has exactly numberOfBars elements, in order of increasing
// weight. On error, no bars are returned. Errors wrap one of
// [ErrInvalidArgument], [ErrDegenerateGeometry] and [ErrGeometryConstruction];
// construction failures are reported as a [*BarError].
//
// MorphOpt has no side effects and is safe for concurrent use, as long as
// the curves' Eval methods are.
func MorphOpt(a, b ParametricCurve, precision, numberOfBars int, opts Options) ([]Bar, error) {
	if precision < 1 {
		return nil, fmt.Errorf("%w: precision must be at least 1, got %d", ErrInvalidArgument, precision)
	}
	if numberOfBars < 1 {
		return nil, fmt.Errorf("%w: number of bars must be at least 1, got %d", ErrInvalidArgument, numberOfBars)
	}
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	if err := checkCurve(a, "first", opts); err != nil {
		return nil, err
	}
	if err := checkCurve(b, "second", opts); err != nil {
		return nil, err
	}
	if opts.AlignDirection && runsOpposite(a, b) {
		b = Reversed{b}
	}

	m := max(precision, 2)
	sa, err := sampleCurve(a, m, "first")
	if err != nil {
		return nil, err
	}
	sb, err := sampleCurve(b, m, "second")
	if err != nil {
		return nil, err
	}

	bars := make([]Bar, numberOfBars)
	pts := make([]Point, m)
	for i := range bars {
		w := opts.Endpoints.Weight(i, numberOfBars)
		for j := range pts {
			pts[j] = interpolate(sa[j], sb[j], w)
		}
		s, err := opts.Fit.fit(pts, opts.Tolerance)
		if err != nil {
			return nil, &BarError{Bar: i, Weight: w, Wrapped: err}
		}
		bars[i] = Bar{Index: i, Weight: w, Curve: s}
	}
	return bars, nil
}

// interpolate computes (1-w) a + w b. Unlike [Point.Lerp], it returns a and b
// exactly for weights of 0 and 1.
func interpolate(a, b Point, w float64) Point {
	return Point(Vec3(a).Mul(1 - w).Add(Vec3(b).Mul(w)))
}

func checkCurve(c ParametricCurve, which string, opts Options) error {
	if c == nil {
		return fmt.Errorf("%w: %s curve is nil", ErrInvalidArgument, which)
	}
	if c, ok := c.(interface{ IsNaN() bool }); ok && c.IsNaN() {
		return fmt.Errorf("%w: %s curve has NaN coordinates", ErrDegenerateGeometry, which)
	}
	if c, ok := c.(interface{ IsInf() bool }); ok && c.IsInf() {
		return fmt.Errorf("%w: %s curve has infinite coordinates", ErrDegenerateGeometry, which)
	}
	if d, ok := c.(Domainer); ok {
		start, end := d.Domain()
		if span := math.Abs(end - start); !(span > 0) || math.IsInf(span, 0) {
			return fmt.Errorf("%w: %s curve has domain [%g, %g]", ErrDegenerateGeometry, which, start, end)
		}
	}
	l := Length(c, opts.Accuracy)
	if !(l > opts.Tolerance) || math.IsInf(l, 0) {
		return fmt.Errorf("%w: %s curve has length %g", ErrDegenerateGeometry, which, l)
	}
	return nil
}

func sampleCurve(c ParametricCurve, n int, which string) ([]Point, error) {
	pts := Sample(c, n)
	for j, pt := range pts {
		if !pt.IsFinite() {
			return nil, fmt.Errorf("%w: %s curve evaluates to %v at sample %d", ErrDegenerateGeometry, which, pt, j)
		}
	}
	return pts, nil
}

// runsOpposite reports whether pairing a's start with b's end is a closer
// match than pairing start with start.
func runsOpposite(a, b ParametricCurve) bool {
	as, ae := a.Start(), a.End()
	bs, be := b.Start(), b.End()
	return as.Distance(be)+ae.Distance(bs) < as.Distance(bs)+ae.Distance(be)
}

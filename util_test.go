package morph

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// maxDeviation returns the largest distance between a and b over n+1 evenly
// spaced parameters.
func maxDeviation(a, b ParametricCurve, n int) float64 {
	var worst float64
	for i := range n + 1 {
		t := float64(i) / float64(n)
		worst = max(worst, a.Eval(t).Distance(b.Eval(t)))
	}
	return worst
}

func quarterArc(radius float64) Arc {
	return Arc{
		XAxis:      Vec(1, 0, 0),
		YAxis:      Vec(0, 1, 0),
		Radius:     radius,
		SweepAngle: math.Pi / 2,
	}
}

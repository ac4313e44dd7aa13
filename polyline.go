package morph

import (
	"slices"
	"sort"
)

// Polyline is a sequence of straight segments, parametrized by chord length:
// Eval(0.5) is halfway along the polyline's length, not halfway through its
// vertices.
//
// The zero value is an empty polyline that evaluates to the origin.
type Polyline struct {
	pts []Point
	// cum[i] is the normalized length from pts[0] to pts[i].
	cum    []float64
	length float64
}

var _ ParametricCurve = Polyline{}
var _ Arclener = Polyline{}

// NewPolyline returns a polyline through pts. The slice is copied.
func NewPolyline(pts ...Point) Polyline {
	pl := Polyline{
		pts: slices.Clone(pts),
		cum: make([]float64, len(pts)),
	}
	for i := 1; i < len(pts); i++ {
		pl.length += pts[i].Distance(pts[i-1])
		pl.cum[i] = pl.length
	}
	if pl.length > 0 {
		for i := range pl.cum {
			pl.cum[i] /= pl.length
		}
	}
	return pl
}

// Points returns the polyline's vertices.
func (pl Polyline) Points() []Point {
	return slices.Clone(pl.pts)
}

func (pl Polyline) Len() int { return len(pl.pts) }

func (pl Polyline) Eval(t float64) Point {
	switch len(pl.pts) {
	case 0:
		return Point{}
	case 1:
		return pl.pts[0]
	}
	if pl.length == 0 || t <= 0 {
		return pl.pts[0]
	}
	if t >= 1 {
		return pl.pts[len(pl.pts)-1]
	}
	// First vertex at or beyond t.
	i := sort.SearchFloat64s(pl.cum, t)
	i = max(i, 1)
	t0, t1 := pl.cum[i-1], pl.cum[i]
	if t1 == t0 {
		return pl.pts[i]
	}
	return pl.pts[i-1].Lerp(pl.pts[i], (t-t0)/(t1-t0))
}

func (pl Polyline) Start() Point { return pl.Eval(0) }
func (pl Polyline) End() Point   { return pl.Eval(1) }

func (pl Polyline) Arclen(accuracy float64) float64 {
	return pl.length
}

func (pl Polyline) Reverse() Polyline {
	pts := slices.Clone(pl.pts)
	slices.Reverse(pts)
	return NewPolyline(pts...)
}

// Flatten returns the polyline's vertices. They represent the polyline
// exactly, regardless of tolerance.
func (pl Polyline) Flatten(tolerance float64) []Point {
	return pl.Points()
}

package morph

import (
	"errors"
	"strings"
	"testing"
)

func TestSVG(t *testing.T) {
	l := Line{Pt(0, 0, 0), Pt(10, 0, 0)}
	got := SVG([]ParametricCurve{l}, SVGOptions{MaxPrecision: 6, StrokeWidth: 0.1})
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-0.5 -0.5 11 1">
<g fill="none" stroke="black" stroke-width="0.1" transform="scale(1,-1)">
<path d="M0,0 L10,0" />
</g>
</svg>
`
	diff(t, want, got)
}

func TestSVGPathKinds(t *testing.T) {
	opts := SVGOptions{MaxPrecision: 3, Tolerance: 1e-2}
	s, err := FitSpline(Sample(quarterArc(10), 5), DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name     string
		c        ParametricCurve
		commands string
	}{
		{"line", Line{Pt(1, 2, 3), Pt(4, 5, 6)}, "L"},
		{"quad", QuadBez{Pt(0, 0, 0), Pt(1, 2, 3), Pt(4, 5, 6)}, "Q"},
		{"cubic", Line{Pt(1, 2, 3), Pt(4, 5, 6)}.Cubic(), "C"},
		{"polyline", NewPolyline(Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 1, 0)), "LL"},
		{"empty polyline", Polyline{}, ""},
		{"spline", s, "CCCC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := WriteSVGPath(&sb, tt.c, opts); err != nil {
				t.Fatal(err)
			}
			diff(t, "M"+tt.commands, pathCommands(sb.String()))
		})
	}

	// Arcs have no exact representation and get flattened.
	var sb strings.Builder
	if err := WriteSVGPath(&sb, quarterArc(10), opts); err != nil {
		t.Fatal(err)
	}
	cmds := pathCommands(sb.String())
	if len(cmds) < 8 || strings.Trim(cmds[1:], "L") != "" {
		t.Errorf("unexpected commands for flattened arc: %q", cmds)
	}
}

func pathCommands(d string) string {
	var out []rune
	for _, r := range d {
		if r >= 'A' && r <= 'Z' {
			out = append(out, r)
		}
	}
	return string(out)
}

func TestPlaneProject(t *testing.T) {
	pt := Pt(1, 2, 3)
	type xy struct{ X, Y float64 }
	project := func(p Plane) xy {
		x, y := p.Project(pt)
		return xy{x, y}
	}
	diff(t, xy{1, 2}, project(PlaneXY))
	diff(t, xy{1, 3}, project(PlaneXZ))
	diff(t, xy{2, 3}, project(PlaneYZ))

	var sb strings.Builder
	if err := WriteSVGPath(&sb, Line{Pt(1, 2, 3), Pt(4, 5, 6)}, SVGOptions{Plane: PlaneYZ}); err != nil {
		t.Fatal(err)
	}
	diff(t, "M2,3 L5,6", sb.String())
}

func TestFormatter(t *testing.T) {
	tests := []struct {
		prec int
		in   float64
		want string
	}{
		{0, 1.5, "1.5"},
		{0, -0.0, "0"},
		{3, 1.23456, "1.235"},
		{3, 2.5, "2.5"},
		{3, 7, "7"},
		{3, -0.0001, "0"},
	}
	for _, tt := range tests {
		diff(t, tt.want, formatter(tt.prec)(tt.in))
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteSVGError(t *testing.T) {
	err := WriteSVG(failingWriter{}, []ParametricCurve{Line{Pt(0, 0, 0), Pt(1, 1, 1)}}, SVGOptions{})
	if !errors.Is(err, errWrite) {
		t.Errorf("got error %v, want %v", err, errWrite)
	}
}

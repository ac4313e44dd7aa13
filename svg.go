package morph

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Plane selects the coordinate plane that 3D curves are projected onto for
// 2D output.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	default:
		return fmt.Sprintf("Plane(%d)", int(p))
	}
}

// Project returns the coordinates of pt in the plane.
func (p Plane) Project(pt Point) (float64, float64) {
	switch p {
	case PlaneXY:
		return pt.X, pt.Y
	case PlaneXZ:
		return pt.X, pt.Z
	case PlaneYZ:
		return pt.Y, pt.Z
	default:
		panic(fmt.Sprintf("unhandled case %v", p))
	}
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The plane to project onto.
	Plane Plane
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// The accuracy with which curves that have no exact Bézier representation
	// are flattened to lines. A value of 0 chooses a thousandth of the
	// drawing's extent.
	Tolerance float64
	// The stroke width, in model units. A value of 0 chooses a two-hundredth
	// of the drawing's extent.
	StrokeWidth float64
}

// SVG renders curves as an SVG document.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(curves []ParametricCurve, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, curves, opts)
	return sb.String()
}

// WriteSVG renders curves as an SVG document and writes it to w. Each curve
// becomes one path element. The document's y axis points up, like the
// model's.
//
// Splines, lines, and quadratic and cubic Béziers are written exactly, as
// projection preserves them. Other curves are flattened.
func WriteSVG(w io.Writer, curves []ParametricCurve, opts SVGOptions) error {
	bbox := EmptyBox
	for _, c := range curves {
		bbox = bbox.Union(BoundingBox(c, 64))
	}
	if bbox.IsEmpty() {
		bbox = NewBoxFromPoints(Point{}, Point{})
	}
	x0, y0 := opts.Plane.Project(bbox.Min)
	x1, y1 := opts.Plane.Project(bbox.Max)
	extent := max(x1-x0, y1-y0)
	if !(extent > 0) {
		extent = 1
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = extent * 1e-3
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = extent * 5e-3
	}
	margin := extent * 0.05
	format := formatter(opts.MaxPrecision)

	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	// Flipping y means the view box starts at -y1.
	writef(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		format(x0-margin), format(-y1-margin),
		format(x1-x0+2*margin), format(y1-y0+2*margin))
	writef(`<g fill="none" stroke="black" stroke-width="%s" transform="scale(1,-1)">`+"\n",
		format(opts.StrokeWidth))
	for _, c := range curves {
		if err != nil {
			return err
		}
		writef(`<path d="`)
		if err == nil {
			err = WriteSVGPath(w, c, opts)
		}
		writef(`" />` + "\n")
	}
	writef("</g>\n</svg>\n")
	return err
}

// WriteSVGPath writes the SVG path data of a single projected curve to w.
func WriteSVGPath(w io.Writer, c ParametricCurve, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := formatter(opts.MaxPrecision)
	pt := func(p Point) string {
		x, y := opts.Plane.Project(p)
		return format(x) + "," + format(y)
	}

	writef("M%s", pt(c.Start()))
	switch c := c.(type) {
	case Line:
		writef(" L%s", pt(c.P1))
	case QuadBez:
		writef(" Q%s %s", pt(c.P1), pt(c.P2))
	case CubicBez:
		writef(" C%s %s %s", pt(c.P1), pt(c.P2), pt(c.P3))
	case Spline:
		for seg := range c.Segments() {
			writef(" C%s %s %s", pt(seg.P1), pt(seg.P2), pt(seg.P3))
		}
	default:
		tolerance := opts.Tolerance
		if tolerance <= 0 {
			tolerance = DefaultAccuracy
		}
		pts := Flatten(c, tolerance)
		for i := 1; i < len(pts); i++ {
			writef(" L%s", pt(pts[i]))
		}
	}
	return err
}

func formatter(maxPrec int) func(float64) string {
	return func(n float64) string {
		if n == 0 || math.IsNaN(n) {
			// Avoid writing -0 and NaN.
			n = 0
		}
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	}
}

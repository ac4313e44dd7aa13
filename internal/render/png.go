// Package render rasterizes morph results for quick visual inspection.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"honnef.co/go/morph"
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	Width   int
	Height  int
	Padding int
	// The plane that curves are projected onto.
	Plane morph.Plane
	// Stroke width in pixels.
	LineWidth float64
	// Flattening tolerance in pixels.
	Tolerance  float64
	Background color.Color
	Stroke     color.Color
}

// DefaultPNGOptions returns sensible defaults for PNG rendering.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Width:      800,
		Height:     600,
		Padding:    40,
		Plane:      morph.PlaneXY,
		LineWidth:  2,
		Tolerance:  0.25,
		Background: color.White,
		Stroke:     color.RGBA{51, 51, 51, 255},
	}
}

var errEmptyCanvas = errors.New("render: canvas has no drawable area")

// transform maps projected model coordinates to pixels. The y axis is
// flipped so that it points up.
type transform struct {
	scale  float64
	x0, y0 float64
	height float64
}

func (tr transform) apply(x, y float64) (float32, float32) {
	px := (x - tr.x0) * tr.scale
	py := tr.height - (y-tr.y0)*tr.scale
	return float32(px), float32(py)
}

func fit(curves []morph.ParametricCurve, opts PNGOptions) transform {
	bbox := morph.EmptyBox
	for _, c := range curves {
		bbox = bbox.Union(morph.BoundingBox(c, 64))
	}
	if bbox.IsEmpty() {
		bbox = morph.NewBoxFromPoints(morph.Point{}, morph.Point{})
	}
	x0, y0 := opts.Plane.Project(bbox.Min)
	x1, y1 := opts.Plane.Project(bbox.Max)
	w := float64(opts.Width - 2*opts.Padding)
	h := float64(opts.Height - 2*opts.Padding)

	scale := math.Inf(1)
	if x1 > x0 {
		scale = min(scale, w/(x1-x0))
	}
	if y1 > y0 {
		scale = min(scale, h/(y1-y0))
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}
	// Center the drawing on the canvas.
	cx, cy := (x0+x1)/2, (y0+y1)/2
	return transform{
		scale:  scale,
		x0:     cx - float64(opts.Width)/2/scale,
		y0:     cy - float64(opts.Height)/2/scale,
		height: float64(opts.Height),
	}
}

// Render draws curves onto a new image. The drawing is scaled to fit the
// canvas, less padding, and centered.
func Render(curves []morph.ParametricCurve, opts PNGOptions) (*image.RGBA, error) {
	if opts.Width-2*opts.Padding <= 0 || opts.Height-2*opts.Padding <= 0 {
		return nil, fmt.Errorf("%w: %dx%d with padding %d", errEmptyCanvas, opts.Width, opts.Height, opts.Padding)
	}
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	tr := fit(curves, opts)
	ras := vector.NewRasterizer(opts.Width, opts.Height)
	half := opts.LineWidth / 2
	for _, c := range curves {
		pts := morph.Flatten(c, opts.Tolerance/tr.scale)
		for i := 1; i < len(pts); i++ {
			strokeSegment(ras, tr, opts.Plane, pts[i-1], pts[i], half)
		}
	}
	ras.Draw(img, img.Bounds(), image.NewUniform(opts.Stroke), image.Point{})
	return img, nil
}

// strokeSegment adds a rectangle of half-width half around the projected
// segment from p0 to p1. All rectangles share the same winding, so that
// overlaps at joints don't cancel out.
func strokeSegment(ras *vector.Rasterizer, tr transform, plane morph.Plane, p0, p1 morph.Point, half float64) {
	x0, y0 := tr.apply(plane.Project(p0))
	x1, y1 := tr.apply(plane.Project(p1))
	dx, dy := float64(x1-x0), float64(y1-y0)
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	// Extend the segment by half a stroke width at both ends to cover joints.
	ux, uy := float32(dx/l*half), float32(dy/l*half)
	nx, ny := -uy, ux
	ras.MoveTo(x0-ux+nx, y0-uy+ny)
	ras.LineTo(x1+ux+nx, y1+uy+ny)
	ras.LineTo(x1+ux-nx, y1+uy-ny)
	ras.LineTo(x0-ux-nx, y0-uy-ny)
	ras.ClosePath()
}

// WritePNG renders curves and encodes the result as PNG.
func WritePNG(w io.Writer, curves []morph.ParametricCurve, opts PNGOptions) error {
	img, err := Render(curves, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

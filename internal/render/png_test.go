package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/morph"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func smallOptions() PNGOptions {
	opts := DefaultPNGOptions()
	opts.Width = 100
	opts.Height = 100
	opts.Padding = 10
	return opts
}

func isDark(c color.RGBA) bool { return c.R < 128 && c.G < 128 && c.B < 128 }

func TestRenderLine(t *testing.T) {
	l := morph.Line{P0: morph.Pt(0, 0, 0), P1: morph.Pt(10, 0, 0)}
	img, err := Render([]morph.ParametricCurve{l}, smallOptions())
	if err != nil {
		t.Fatal(err)
	}
	white := color.RGBA{255, 255, 255, 255}
	for _, x := range []int{12, 50, 88} {
		if c := img.RGBAAt(x, 49); !isDark(c) {
			t.Errorf("pixel (%d, 49) isn't stroked: %v", x, c)
		}
	}
	diff(t, white, img.RGBAAt(50, 5))
	diff(t, white, img.RGBAAt(5, 50))
	diff(t, white, img.RGBAAt(50, 60))
}

func TestRenderPlane(t *testing.T) {
	// An upside-down L standing in the XZ plane.
	pl := morph.NewPolyline(morph.Pt(0, 0, 0), morph.Pt(0, 0, 10), morph.Pt(5, 0, 10))
	opts := smallOptions()
	opts.Plane = morph.PlaneXZ
	img, err := Render([]morph.ParametricCurve{pl}, opts)
	if err != nil {
		t.Fatal(err)
	}
	// The vertical stroke is at x = 30, the horizontal one at the top.
	for _, pt := range [][2]int{{29, 50}, {30, 80}, {60, 9}} {
		if c := img.RGBAAt(pt[0], pt[1]); !isDark(c) {
			t.Errorf("pixel %v isn't stroked: %v", pt, c)
		}
	}
	if c := img.RGBAAt(60, 89); isDark(c) {
		t.Errorf("bottom of the image is stroked: %v", c)
	}

	// Projected onto XY, the same curve is a single horizontal stroke.
	opts.Plane = morph.PlaneXY
	img, err = Render([]morph.ParametricCurve{pl}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if c := img.RGBAAt(50, 49); !isDark(c) {
		t.Errorf("pixel (50, 49) isn't stroked: %v", c)
	}
}

func TestRenderEmptyCanvas(t *testing.T) {
	opts := smallOptions()
	opts.Padding = 50
	if _, err := Render(nil, opts); !errors.Is(err, errEmptyCanvas) {
		t.Errorf("got error %v, want %v", err, errEmptyCanvas)
	}
}

func TestWritePNG(t *testing.T) {
	a := morph.Line{P0: morph.Pt(0, 0, 0), P1: morph.Pt(10, 0, 0)}
	b := morph.Line{P0: morph.Pt(0, 10, 0), P1: morph.Pt(10, 10, 0)}
	bars, err := morph.Morph(a, b, 2, 5)
	if err != nil {
		t.Fatal(err)
	}
	var curves []morph.ParametricCurve
	for _, bar := range bars {
		curves = append(curves, bar.Curve)
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, curves, smallOptions()); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 100, img.Bounds().Dx())
	diff(t, 100, img.Bounds().Dy())
}

package job

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"honnef.co/go/morph"
)

// Format is an output format for [Encode].
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

type encodedFile struct {
	Jobs []encodedJob `json:"jobs" yaml:"jobs"`
}

type encodedJob struct {
	Name string       `json:"name" yaml:"name"`
	Bars []encodedBar `json:"bars" yaml:"bars"`
}

type encodedBar struct {
	Index    int             `json:"index" yaml:"index"`
	Weight   float64         `json:"weight" yaml:"weight"`
	Knots    [][3]float64    `json:"knots" yaml:"knots,flow"`
	Segments [][4][3]float64 `json:"segments" yaml:"segments,flow"`
}

func triple(pt morph.Point) [3]float64 {
	return [3]float64{pt.X, pt.Y, pt.Z}
}

func encodeResult(r Result) encodedJob {
	ej := encodedJob{
		Name: r.Job.Name,
		Bars: make([]encodedBar, len(r.Bars)),
	}
	for i, bar := range r.Bars {
		eb := encodedBar{
			Index:  bar.Index,
			Weight: bar.Weight,
		}
		for _, k := range bar.Curve.Knots() {
			eb.Knots = append(eb.Knots, triple(k))
		}
		for seg := range bar.Curve.Segments() {
			eb.Segments = append(eb.Segments, [4][3]float64{
				triple(seg.P0), triple(seg.P1), triple(seg.P2), triple(seg.P3),
			})
		}
		ej.Bars[i] = eb
	}
	return ej
}

// Encode writes results to w in the given format. Each bar is written with
// its index, weight, knots, and the control points of its cubic segments.
func Encode(w io.Writer, results []Result, format Format) error {
	ef := encodedFile{Jobs: make([]encodedJob, len(results))}
	for i, r := range results {
		ef.Jobs[i] = encodeResult(r)
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ef)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ef); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

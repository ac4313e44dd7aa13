// Package job describes batches of morphs in YAML files and runs them.
package job

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/morph"
)

const (
	DefaultPrecision = 16
	DefaultBars      = 1
)

// ErrInvalidJob is wrapped by all validation errors.
var ErrInvalidJob = errors.New("job: invalid job")

// File is the top level of a job file.
type File struct {
	Jobs []Job `yaml:"jobs"`
}

// Job describes a single morph between two curves.
type Job struct {
	Name      string    `yaml:"name"`
	Precision int       `yaml:"precision"`
	Bars      int       `yaml:"bars"`
	Fit       string    `yaml:"fit"`
	Endpoints string    `yaml:"endpoints"`
	Align     bool      `yaml:"align"`
	A         CurveSpec `yaml:"a"`
	B         CurveSpec `yaml:"b"`
}

// Curve types understood by [CurveSpec.Build].
const (
	TypeLine     = "line"
	TypeArc      = "arc"
	TypeQuad     = "quad"
	TypeCubic    = "cubic"
	TypePolyline = "polyline"
)

// CurveSpec describes an input curve by its type and defining points.
//
// A line has two points, an arc has three points it passes through, a
// quadratic Bézier has three control points, a cubic Bézier has four, and a
// polyline has two or more vertices.
type CurveSpec struct {
	Type   string       `yaml:"type"`
	Points [][3]float64 `yaml:"points,flow"`
}

// DefaultJob returns a job with all optional fields set to their defaults.
func DefaultJob() Job {
	return Job{
		Precision: DefaultPrecision,
		Bars:      DefaultBars,
		Fit:       morph.SplineFit.String(),
		Endpoints: morph.IncludeEndpoints.String(),
	}
}

// UnmarshalYAML applies the defaults of [DefaultJob] to fields that are
// absent from the document.
func (j *Job) UnmarshalYAML(value *yaml.Node) error {
	type plain Job
	p := plain(DefaultJob())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*j = Job(p)
	return nil
}

// Load reads and parses the job file at path. It does not validate the jobs.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses a job file. It does not validate the jobs.
func Parse(data []byte) (*File, error) {
	f := &File{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks every job in the file and returns all problems it finds,
// joined with [errors.Join].
func (f *File) Validate() error {
	if len(f.Jobs) == 0 {
		return fmt.Errorf("%w: file contains no jobs", ErrInvalidJob)
	}
	var errs []error
	seen := make(map[string]int)
	for i, j := range f.Jobs {
		if j.Name == "" {
			errs = append(errs, fmt.Errorf("%w: job %d has no name", ErrInvalidJob, i))
		} else if prev, ok := seen[j.Name]; ok {
			errs = append(errs, fmt.Errorf("%w: jobs %d and %d are both named %q", ErrInvalidJob, prev, i, j.Name))
		} else {
			seen[j.Name] = i
		}
		if err := j.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("job %d (%s): %w", i, j.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks the job's counts, options, and curves.
func (j Job) Validate() error {
	var errs []error
	if j.Precision < 1 {
		errs = append(errs, fmt.Errorf("%w: precision must be at least 1, got %d", ErrInvalidJob, j.Precision))
	}
	if j.Bars < 1 {
		errs = append(errs, fmt.Errorf("%w: bars must be at least 1, got %d", ErrInvalidJob, j.Bars))
	}
	if _, err := j.Options(); err != nil {
		errs = append(errs, err)
	}
	if _, err := j.A.Build(); err != nil {
		errs = append(errs, fmt.Errorf("curve a: %w", err))
	}
	if _, err := j.B.Build(); err != nil {
		errs = append(errs, fmt.Errorf("curve b: %w", err))
	}
	return errors.Join(errs...)
}

// Options returns the morph options selected by the job.
func (j Job) Options() (morph.Options, error) {
	fit, err := ParseFit(j.Fit)
	if err != nil {
		return morph.Options{}, err
	}
	endpoints, err := ParseEndpoints(j.Endpoints)
	if err != nil {
		return morph.Options{}, err
	}
	opts := morph.DefaultOptions
	opts.Fit = fit
	opts.Endpoints = endpoints
	opts.AlignDirection = j.Align
	return opts, nil
}

// ParseFit parses the name of a fit kind. The empty string selects
// [morph.SplineFit].
func ParseFit(s string) (morph.FitKind, error) {
	for _, k := range []morph.FitKind{morph.SplineFit, morph.PolylineFit} {
		if s == k.String() {
			return k, nil
		}
	}
	if s == "" {
		return morph.SplineFit, nil
	}
	return 0, fmt.Errorf("%w: unknown fit %q", ErrInvalidJob, s)
}

// ParseEndpoints parses the name of an endpoint mode. The empty string
// selects [morph.IncludeEndpoints].
func ParseEndpoints(s string) (morph.EndpointMode, error) {
	for _, m := range []morph.EndpointMode{morph.IncludeEndpoints, morph.ExcludeEndpoints} {
		if s == m.String() {
			return m, nil
		}
	}
	if s == "" {
		return morph.IncludeEndpoints, nil
	}
	return 0, fmt.Errorf("%w: unknown endpoint mode %q", ErrInvalidJob, s)
}

// Build constructs the curve described by c.
func (c CurveSpec) Build() (morph.ParametricCurve, error) {
	want := map[string]int{
		TypeLine:     2,
		TypeArc:      3,
		TypeQuad:     3,
		TypeCubic:    4,
		TypePolyline: 2,
	}
	n, ok := want[c.Type]
	if !ok {
		return nil, fmt.Errorf("%w: unknown curve type %q", ErrInvalidJob, c.Type)
	}
	if c.Type == TypePolyline {
		if len(c.Points) < n {
			return nil, fmt.Errorf("%w: %s needs at least %d points, got %d", ErrInvalidJob, c.Type, n, len(c.Points))
		}
	} else if len(c.Points) != n {
		return nil, fmt.Errorf("%w: %s needs %d points, got %d", ErrInvalidJob, c.Type, n, len(c.Points))
	}

	pts := make([]morph.Point, len(c.Points))
	for i, p := range c.Points {
		pts[i] = morph.Pt(p[0], p[1], p[2])
	}
	switch c.Type {
	case TypeLine:
		return morph.Line{P0: pts[0], P1: pts[1]}, nil
	case TypeArc:
		a, ok := morph.ArcThrough(pts[0], pts[1], pts[2])
		if !ok {
			return nil, fmt.Errorf("%w: arc points %v are collinear", ErrInvalidJob, pts)
		}
		return a, nil
	case TypeQuad:
		return morph.QuadBez{P0: pts[0], P1: pts[1], P2: pts[2]}, nil
	case TypeCubic:
		return morph.CubicBez{P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3]}, nil
	case TypePolyline:
		return morph.NewPolyline(pts...), nil
	default:
		panic(fmt.Sprintf("unhandled case %q", c.Type))
	}
}

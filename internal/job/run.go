package job

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"honnef.co/go/morph"
)

// Result is the outcome of a single job.
type Result struct {
	Job  Job
	Bars []morph.Bar
}

// Curves returns the bars' curves, in order.
func (r Result) Curves() []morph.ParametricCurve {
	out := make([]morph.ParametricCurve, len(r.Bars))
	for i, bar := range r.Bars {
		out[i] = bar.Curve
	}
	return out
}

// Run builds the job's curves and morphs between them.
func Run(ctx context.Context, j Job) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	log := Logger().With("job", j.Name)

	a, err := j.A.Build()
	if err != nil {
		return Result{}, fmt.Errorf("job %q: curve a: %w", j.Name, err)
	}
	b, err := j.B.Build()
	if err != nil {
		return Result{}, fmt.Errorf("job %q: curve b: %w", j.Name, err)
	}
	opts, err := j.Options()
	if err != nil {
		return Result{}, fmt.Errorf("job %q: %w", j.Name, err)
	}

	log.Debug("morphing",
		"a", j.A.Type,
		"b", j.B.Type,
		"precision", j.Precision,
		"bars", j.Bars,
		"fit", opts.Fit,
		"endpoints", opts.Endpoints)
	start := time.Now()
	bars, err := morph.MorphOpt(a, b, j.Precision, j.Bars, opts)
	if err != nil {
		log.Warn("morph failed", "err", err)
		return Result{}, fmt.Errorf("job %q: %w", j.Name, err)
	}
	log.Debug("morphed", "bars", len(bars), "elapsed", time.Since(start))
	return Result{Job: j, Bars: bars}, nil
}

// RunAll runs jobs concurrently, using at most workers goroutines. A value
// of zero or less means no limit. Results are in the same order as jobs.
//
// The first failing job cancels the jobs that haven't started yet, and its
// error is returned.
func RunAll(ctx context.Context, jobs []Job, workers int) ([]Result, error) {
	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, j := range jobs {
		g.Go(func() error {
			r, err := Run(ctx, j)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	Logger().Debug("ran jobs", "jobs", len(jobs), "workers", workers)
	return results, nil
}

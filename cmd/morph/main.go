package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"honnef.co/go/morph"
	"honnef.co/go/morph/internal/job"
	"honnef.co/go/morph/internal/render"
)

var (
	verbose bool
	// run
	output  string
	format  string
	workers int
	plane   string
	// between
	edgeA     string
	edgeB     string
	bars      int
	precision int
	endpoints string
	align     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "morph:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "morph",
		Short:         "lay out bars that morph between two curves",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			job.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every job")

	runCmd := &cobra.Command{
		Use:   "run [jobfile]",
		Short: "run all jobs in a job file",
		Args:  cobra.ExactArgs(1),
		RunE:  runJobs,
	}
	runCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	runCmd.Flags().StringVar(&format, "format", "json", "output format: json, yaml, svg, or png")
	runCmd.Flags().IntVar(&workers, "workers", 0, "maximum number of concurrent jobs (0 means unlimited)")
	runCmd.Flags().StringVar(&plane, "plane", "xy", "projection plane for svg and png: xy, xz, or yz")

	validateCmd := &cobra.Command{
		Use:   "validate [jobfile]",
		Short: "check a job file without running it",
		Args:  cobra.ExactArgs(1),
		RunE:  validateJobs,
	}

	betweenCmd := &cobra.Command{
		Use:   "between",
		Short: "morph between two straight edges",
		Args:  cobra.NoArgs,
		RunE:  between,
	}
	betweenCmd.Flags().StringVar(&edgeA, "a", "", "first edge as x,y,z:x,y,z")
	betweenCmd.Flags().StringVar(&edgeB, "b", "", "second edge as x,y,z:x,y,z")
	betweenCmd.Flags().IntVar(&bars, "bars", 3, "number of bars")
	betweenCmd.Flags().IntVar(&precision, "precision", 2, "samples per edge")
	betweenCmd.Flags().StringVar(&endpoints, "endpoints", "include", "include or exclude the edges themselves")
	betweenCmd.Flags().BoolVar(&align, "align", false, "reverse the second edge if it runs opposite to the first")
	for _, name := range []string{"a", "b"} {
		if err := betweenCmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(runCmd, validateCmd, betweenCmd)
	return rootCmd
}

func loadJobs(path string) (*job.File, error) {
	f, err := job.Load(path)
	if err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func validateJobs(cmd *cobra.Command, args []string) error {
	f, err := loadJobs(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d jobs ok\n", args[0], len(f.Jobs))
	return nil
}

func runJobs(cmd *cobra.Command, args []string) error {
	switch format {
	case "json", "yaml", "svg", "png":
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	p, err := parsePlane(plane)
	if err != nil {
		return err
	}
	f, err := loadJobs(args[0])
	if err != nil {
		return err
	}
	results, err := job.RunAll(cmd.Context(), f.Jobs, workers)
	if err != nil {
		return err
	}

	if output == "" {
		return writeResults(cmd.OutOrStdout(), results, format, p)
	}
	out, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := writeResults(out, results, format, p); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeResults(w io.Writer, results []job.Result, format string, p morph.Plane) error {
	var curves []morph.ParametricCurve
	for _, r := range results {
		curves = append(curves, r.Curves()...)
	}
	switch format {
	case "json", "yaml":
		return job.Encode(w, results, job.Format(format))
	case "svg":
		return morph.WriteSVG(w, curves, morph.SVGOptions{Plane: p, MaxPrecision: 6})
	case "png":
		opts := render.DefaultPNGOptions()
		opts.Plane = p
		return render.WritePNG(w, curves, opts)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func parsePlane(s string) (morph.Plane, error) {
	for _, p := range []morph.Plane{morph.PlaneXY, morph.PlaneXZ, morph.PlaneYZ} {
		if s == p.String() {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown plane %q", s)
}

// parseEdge parses a straight edge written as x,y,z:x,y,z.
func parseEdge(s string) ([][3]float64, error) {
	ends := strings.Split(s, ":")
	if len(ends) != 2 {
		return nil, fmt.Errorf("edge %q: want two points separated by ':'", s)
	}
	out := make([][3]float64, 2)
	for i, end := range ends {
		coords := strings.Split(end, ",")
		if len(coords) != 3 {
			return nil, fmt.Errorf("edge %q: point %q doesn't have three coordinates", s, end)
		}
		for j, c := range coords {
			v, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
			if err != nil {
				return nil, fmt.Errorf("edge %q: %w", s, err)
			}
			out[i][j] = v
		}
	}
	return out, nil
}

func between(cmd *cobra.Command, args []string) error {
	a, err := parseEdge(edgeA)
	if err != nil {
		return err
	}
	b, err := parseEdge(edgeB)
	if err != nil {
		return err
	}
	j := job.DefaultJob()
	j.Name = "between"
	j.Bars = bars
	j.Precision = precision
	j.Endpoints = endpoints
	j.Align = align
	j.A = job.CurveSpec{Type: job.TypeLine, Points: a}
	j.B = job.CurveSpec{Type: job.TypeLine, Points: b}
	if err := j.Validate(); err != nil {
		return err
	}
	r, err := job.Run(cmd.Context(), j)
	if err != nil {
		return err
	}
	return job.Encode(cmd.OutOrStdout(), []job.Result{r}, job.FormatJSON)
}

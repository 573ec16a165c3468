// Package compareapp implements kmarker-compare: merge resilience stats with
// availability and roll them up per k-mer length.
package compareapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/aggregate"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/cmdutil"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/comparecli"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/report"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/summary"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/version"
)

func comparisonPath(prefix string) string { return prefix + "_comparison.csv" }
func reportPath(prefix string) string     { return prefix + "_comparison_report.txt" }

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := comparecli.NewFlagSet("kmarker-compare")
	fs.SetOutput(io.Discard)

	opts, err := comparecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "kmarker-compare version %s\n", version.Version)
		return 0
	}

	var resRows []summary.ResilienceRow
	for _, path := range opts.StatsFiles {
		if ctx.Err() != nil {
			return 130
		}
		rows, err := summary.ReadResilience(path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		resRows = append(resRows, rows...)
	}
	availRows, err := summary.ReadAvailability(opts.Availability)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	perSet, ks := aggregate.ByK(resRows)
	comps := make([]summary.ComparisonRow, 0, len(ks))
	for _, k := range ks {
		c, err := aggregate.Rollup(k, perSet[k], availRows)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		comps = append(comps, c)
		cmdutil.Infof(stderr, opts.Quiet, "k=%d: %d sets, %.2f%% retention, %.4f%% absolute FDR",
			k, c.Databases, c.MeanRetentionPct, c.MeanAbsFDRPct)
	}

	if err := cmdutil.WriteOutput(stdout, comparisonPath(opts.OutPrefix), func(w io.Writer) error {
		return summary.WriteComparison(w, comps, opts.Header)
	}); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	if err := cmdutil.WriteOutput(stdout, reportPath(opts.OutPrefix), func(w io.Writer) error {
		return report.Comparison(w, comps, perSet)
	}); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

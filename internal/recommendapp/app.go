// Package recommendapp implements kmarker-recommend: score the comparison
// table with explicit weights and emit a ranked recommendation.
package recommendapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/cmdutil"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/recommendcli"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/report"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/scoring"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/summary"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/version"
)

func scoresPath(prefix string) string { return prefix + "_recommendation.csv" }
func reportPath(prefix string) string { return prefix + "_recommendation_report.txt" }

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := recommendcli.NewFlagSet("kmarker-recommend")
	fs.SetOutput(io.Discard)

	opts, err := recommendcli.ParseArgs(fs, argv)
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
		fmt.Fprintf(stdout, "kmarker-recommend version %s\n", version.Version)
		return 0
	}
	if ctx.Err() != nil {
		return 130
	}

	comps, err := summary.ReadComparison(opts.Comparison)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	scores, err := scoring.Rank(comps, opts.Weights)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	cmdutil.Infof(stderr, opts.Quiet, "best k-mer size: k=%d (score %.1f/100)",
		scores[0].K, scores[0].OverallScore)

	if err := cmdutil.WriteOutput(stdout, scoresPath(opts.OutPrefix), func(w io.Writer) error {
		return summary.WriteScores(w, scores, opts.Header)
	}); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	if err := cmdutil.WriteOutput(stdout, reportPath(opts.OutPrefix), func(w io.Writer) error {
		return report.Recommendation(w, scores, comps)
	}); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

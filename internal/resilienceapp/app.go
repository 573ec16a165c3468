// Package resilienceapp implements kmarker-resilience, the core simulation:
// sample markers, mutate them with per-base noise, classify against every
// set, and write the aggregate stats.
package resilienceapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/cmdutil"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/markerset"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/report"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/resiliencecli"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/simulate"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/summary"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/version"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/writers"
)

// Output naming keeps the convention downstream consumers glob for.
func statsPath(prefix string) string  { return prefix + "_error_resilience_stats.csv" }
func reportPath(prefix string) string { return prefix + "_error_resilience_report.txt" }
func eventsPath(prefix string) string { return prefix + "_events.csv.gz" }

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := resiliencecli.NewFlagSet("kmarker-resilience")
	fs.SetOutput(io.Discard)

	opts, err := resiliencecli.ParseArgs(fs, argv)
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
		fmt.Fprintf(stdout, "kmarker-resilience version %s\n", version.Version)
		return 0
	}

	metas, err := markerset.Discover(opts.MarkerDirs...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	k, err := markerset.SingleK(metas)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	cmdutil.Infof(stderr, opts.Quiet, "loading %d marker sets (k=%d)", len(metas), k)
	sets, err := markerset.LoadAll(metas)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	for _, s := range sets {
		cmdutil.Infof(stderr, opts.Quiet, "  %s: %d markers", s.Meta.Label(), s.Len())
	}

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	cfg := simulate.Config{
		SampleSize: opts.SampleSize,
		ErrorRate:  opts.ErrorRate,
		Seed:       opts.Seed,
		Threads:    threads,
		Events:     opts.Events,
	}

	cmdutil.Infof(stderr, opts.Quiet, "simulating %d draws per set at %.2f%% per-base error rate",
		cfg.SampleSize, cfg.ErrorRate*100)
	results, err := simulate.Run(ctx, cfg, sets)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 3
	}

	rows := make([]summary.ResilienceRow, 0, len(results))
	for _, res := range results {
		row := summary.ResilienceRowFrom(res)
		rows = append(rows, row)
		cmdutil.Infof(stderr, opts.Quiet, "  %s: %.2f%% with errors, %.2f%% retention",
			row.Database, row.PctWithErrors, row.RetentionPct)
	}

	if err := cmdutil.WriteOutput(stdout, statsPath(opts.OutPrefix), func(w io.Writer) error {
		return summary.WriteResilience(w, rows, opts.Header)
	}); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	if err := cmdutil.WriteOutput(stdout, reportPath(opts.OutPrefix), func(w io.Writer) error {
		return report.Resilience(w, opts.ErrorRate, rows)
	}); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	if opts.Events {
		var events []simulate.Event
		for _, res := range results {
			events = append(events, res.Events...)
		}
		if err := writers.WriteEventsFile(eventsPath(opts.OutPrefix), events); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		cmdutil.Infof(stderr, opts.Quiet, "wrote %d events to %s", len(events), eventsPath(opts.OutPrefix))
	}

	cmdutil.Infof(stderr, opts.Quiet, "wrote %s and %s", statsPath(opts.OutPrefix), reportPath(opts.OutPrefix))
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

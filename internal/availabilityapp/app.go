// Package availabilityapp implements kmarker-availability: count every
// marker set and derive its density per megabase.
package availabilityapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/availabilitycli"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/cmdutil"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/genome"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/markerset"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/summary"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/version"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/writers"
)

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := availabilitycli.NewFlagSet("kmarker-availability")
	fs.SetOutput(io.Discard)

	opts, err := availabilitycli.ParseArgs(fs, argv)
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
		fmt.Fprintf(stdout, "kmarker-availability version %s\n", version.Version)
		return 0
	}

	metas, err := markerset.Discover(opts.MarkerDirs...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if len(metas) == 0 {
		fmt.Fprintln(stderr, "error: no marker sets found")
		return 2
	}

	rows := make([]summary.AvailabilityRow, 0, len(metas))
	for _, m := range metas {
		if ctx.Err() != nil {
			return 130
		}
		n, err := markerset.Count(m)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		regionBP, err := genome.RegionLength(m.Region, m.Chromosome)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", m.Path, err)
			return 2
		}
		rows = append(rows, summary.AvailabilityRow{
			K:            m.K,
			Database:     m.Label(),
			Genotype:     m.Genotype,
			Region:       m.Region,
			Chromosome:   m.Chromosome,
			TotalKmers:   n,
			RegionSizeBP: regionBP,
			DensityPerMb: genome.DensityPerMb(n, regionBP),
		})
		cmdutil.Infof(stderr, opts.Quiet, "counted %s: %d k-mers (k=%d)", m.Label(), n, m.K)
	}

	err = cmdutil.WriteOutput(stdout, opts.Out, func(w io.Writer) error {
		return summary.WriteAvailability(w, rows, opts.Header)
	})
	if writers.IsBrokenPipe(err) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

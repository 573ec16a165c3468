// Package resiliencecli parses flags for kmarker-resilience.
package resiliencecli

import (
	"errors"
	"flag"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/clibase"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/cliutil"
)

// Options holds all CLI flags and arguments.
type Options struct {
	clibase.Common

	MarkerDirs []string // directories holding one k's marker dump files
	OutPrefix  string   // output file prefix

	SampleSize int
	ErrorRate  float64
	Seed       int64
	Threads    int
	Events     bool
}

func NewFlagSet(name string) *flag.FlagSet {
	return clibase.NewFlagSet(name, "simulate per-base sequencing errors over sampled markers")
}

// ParseArgs registers and parses all flags; positional args are extra marker
// directories.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	clibase.SliceVar(fs, &opt.MarkerDirs, "markers", "marker dump directory, single k (repeatable) [*]")
	fs.StringVar(&opt.OutPrefix, "out", "", "output prefix for stats/report/events files [*]")
	fs.StringVar(&opt.OutPrefix, "o", "", "alias of --out")

	fs.IntVar(&opt.SampleSize, "sample", 100000, "k-mers sampled per set [100000]")
	fs.Float64Var(&opt.ErrorRate, "error-rate", 0.01, "per-base substitution probability [0.01]")
	fs.Int64Var(&opt.Seed, "seed", 42, "random seed [42]")
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads across sets (0 = all CPUs) [0]")
	fs.BoolVar(&opt.Events, "events", false, "write gzipped per-event audit log [false]")

	noHeader := clibase.Register(fs, &opt.Common)
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	opt.Header = !*noHeader
	if opt.Version {
		return opt, nil
	}
	opt.MarkerDirs = append(opt.MarkerDirs, posArgs...)

	switch {
	case len(opt.MarkerDirs) == 0:
		return opt, errors.New("provide at least one --markers directory")
	case opt.OutPrefix == "":
		return opt, errors.New("--out prefix is required")
	case opt.SampleSize <= 0:
		return opt, errors.New("--sample must be > 0")
	case opt.ErrorRate < 0 || opt.ErrorRate > 1:
		return opt, errors.New("--error-rate must be within [0, 1]")
	case opt.Threads < 0:
		return opt, errors.New("--threads must be ≥ 0")
	}
	return opt, nil
}

// Package comparecli parses flags for kmarker-compare.
package comparecli

import (
	"errors"
	"flag"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/clibase"
)

// Options holds all CLI flags.
type Options struct {
	clibase.Common

	StatsFiles   []string // resilience stats CSVs, typically one per k
	Availability string   // availability CSV
	OutPrefix    string
}

func NewFlagSet(name string) *flag.FlagSet {
	return clibase.NewFlagSet(name, "roll per-set resilience stats up into a per-k comparison")
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	clibase.SliceVar(fs, &opt.StatsFiles, "stats", "resilience stats CSV (repeatable) [*]")
	fs.StringVar(&opt.Availability, "availability", "", "marker availability CSV [*]")
	fs.StringVar(&opt.OutPrefix, "out", "", "output prefix for comparison files [*]")
	fs.StringVar(&opt.OutPrefix, "o", "", "alias of --out")
	noHeader := clibase.Register(fs, &opt.Common)
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	opt.Header = !*noHeader
	if opt.Version {
		return opt, nil
	}

	switch {
	case len(opt.StatsFiles) == 0:
		return opt, errors.New("provide at least one --stats file")
	case opt.Availability == "":
		return opt, errors.New("--availability is required")
	case opt.OutPrefix == "":
		return opt, errors.New("--out prefix is required")
	}
	return opt, nil
}

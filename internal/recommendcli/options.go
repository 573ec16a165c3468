// Package recommendcli parses flags for kmarker-recommend.
package recommendcli

import (
	"errors"
	"flag"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/clibase"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/scoring"
)

// Options holds all CLI flags.
type Options struct {
	clibase.Common

	Comparison string // comparison CSV from kmarker-compare
	OutPrefix  string
	Weights    scoring.Weights
}

func NewFlagSet(name string) *flag.FlagSet {
	return clibase.NewFlagSet(name, "rank k-mer sizes with an explicit weighted score")
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	opt.Weights = scoring.Default

	fs.StringVar(&opt.Comparison, "comparison", "", "comparison CSV [*]")
	fs.StringVar(&opt.OutPrefix, "out", "", "output prefix for recommendation files [*]")
	fs.StringVar(&opt.OutPrefix, "o", "", "alias of --out")

	fs.Float64Var(&opt.Weights.Availability, "weight-availability", scoring.Default.Availability, "weight of total marker count [0.25]")
	fs.Float64Var(&opt.Weights.Uniformity, "weight-uniformity", scoring.Default.Uniformity, "weight of density uniformity [0.15]")
	fs.Float64Var(&opt.Weights.Specificity, "weight-specificity", scoring.Default.Specificity, "weight of low false positives [0.20]")
	fs.Float64Var(&opt.Weights.Retention, "weight-retention", scoring.Default.Retention, "weight of read retention [0.40]")

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
	case opt.Comparison == "":
		return opt, errors.New("--comparison is required")
	case opt.OutPrefix == "":
		return opt, errors.New("--out prefix is required")
	}
	if err := opt.Weights.Validate(); err != nil {
		return opt, err
	}
	return opt, nil
}

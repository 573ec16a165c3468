// Package runall implements kmarker-all, the driver that runs the analysis
// steps in their fixed order and stops at the first failure.
package runall

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/clibase"
)

// Options holds all CLI flags.
type Options struct {
	clibase.Common

	MarkerBase string // directory containing one k<K> subdirectory per k
	KSizes     []int
	OutDir     string

	SampleSize int
	ErrorRate  float64
	Seed       int64
	Threads    int
	Events     bool
}

const defaultKSizes = "21,25,31,35,41"

func NewFlagSet(name string) *flag.FlagSet {
	return clibase.NewFlagSet(name, "run the full evaluation: availability, resilience per k, comparison, recommendation")
}

func parseKSizes(s string) ([]int, error) {
	var ks []int
	seen := map[int]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, err := strconv.Atoi(part)
		if err != nil || k <= 0 {
			return nil, fmt.Errorf("invalid k-mer size %q", part)
		}
		if seen[k] {
			return nil, fmt.Errorf("duplicate k-mer size %d", k)
		}
		seen[k] = true
		ks = append(ks, k)
	}
	if len(ks) == 0 {
		return nil, errors.New("--k lists no sizes")
	}
	return ks, nil
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var kList string

	fs.StringVar(&opt.MarkerBase, "markers", "", "base directory with one k<K> subdirectory per k-mer size [*]")
	fs.StringVar(&kList, "k", defaultKSizes, "comma-separated k-mer sizes ["+defaultKSizes+"]")
	fs.StringVar(&opt.OutDir, "out-dir", ".", "directory for all output files [.]")

	fs.IntVar(&opt.SampleSize, "sample", 100000, "k-mers sampled per set [100000]")
	fs.Float64Var(&opt.ErrorRate, "error-rate", 0.01, "per-base substitution probability [0.01]")
	fs.Int64Var(&opt.Seed, "seed", 42, "random seed [42]")
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads across sets (0 = all CPUs) [0]")
	fs.BoolVar(&opt.Events, "events", false, "write gzipped per-event audit logs [false]")

	clibase.RegisterBare(fs, &opt.Common)
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	opt.Header = true
	if opt.Version {
		return opt, nil
	}

	if opt.MarkerBase == "" {
		return opt, errors.New("--markers base directory is required")
	}
	ks, err := parseKSizes(kList)
	if err != nil {
		return opt, err
	}
	opt.KSizes = ks

	switch {
	case opt.SampleSize <= 0:
		return opt, errors.New("--sample must be > 0")
	case opt.ErrorRate < 0 || opt.ErrorRate > 1:
		return opt, errors.New("--error-rate must be within [0, 1]")
	case opt.Threads < 0:
		return opt, errors.New("--threads must be ≥ 0")
	}
	return opt, nil
}

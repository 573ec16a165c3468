// Package availabilitycli parses flags for kmarker-availability.
package availabilitycli

import (
	"errors"
	"flag"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/clibase"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/cliutil"
)

// Options holds all CLI flags and arguments.
type Options struct {
	clibase.Common

	MarkerDirs []string // directories holding marker dump files (any k)
	Out        string   // CSV destination; "-" = stdout
}

func NewFlagSet(name string) *flag.FlagSet {
	return clibase.NewFlagSet(name, "marker availability and density per set")
}

// ParseArgs registers and parses all flags; positional args are extra marker
// directories.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	clibase.SliceVar(fs, &opt.MarkerDirs, "markers", "marker dump directory (repeatable) [*]")
	fs.StringVar(&opt.Out, "out", "-", "output CSV path ('-' = stdout) [-]")
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

	if len(opt.MarkerDirs) == 0 {
		return opt, errors.New("provide at least one --markers directory")
	}
	return opt, nil
}

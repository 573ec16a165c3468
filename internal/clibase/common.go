// Package clibase carries the CLI fields and flag plumbing shared by every
// kmarker tool.
package clibase

import (
	"flag"
	"fmt"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/version"
)

// Common holds the flags every tool understands.
type Common struct {
	Header  bool // true unless --no-header
	Quiet   bool
	Version bool
}

// sliceValue appends each occurrence to a *[]string (for repeatable flags).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// SliceVar registers a repeatable string flag bound to dst.
func SliceVar(fs *flag.FlagSet, dst *[]string, name, usage string) {
	fs.Var(&sliceValue{dst: dst}, name, usage)
}

// Register wires the shared flags onto fs and returns the "no-header" bool;
// the caller sets Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in CSV output [false]")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress progress and warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "v", false, "print version and exit (shorthand) [false]")
	return &noHeader
}

// RegisterBare wires only quiet/version, for tools whose CSV outputs feed
// other tools and must keep their headers.
func RegisterBare(fs *flag.FlagSet, c *Common) {
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress progress and warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "v", false, "print version and exit (shorthand) [false]")
}

// NewFlagSet returns a FlagSet with the toolkit's usage banner.
func NewFlagSet(name, oneLiner string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: %s

Part of the kmarker toolkit: k-mer marker evaluation for Arabidopsis
crossover detection under simulated ONT sequencing errors.
Version: %s

Usage of %s:
`, name, oneLiner, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

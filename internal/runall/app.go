package runall

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/availabilityapp"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/cmdutil"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/compareapp"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/recommendapp"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/resilienceapp"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/version"
)

type step struct {
	name string
	argv []string
	run  func(context.Context, []string, io.Writer, io.Writer) int
}

func sampleTag(n int) string {
	if n%1000 == 0 {
		return strconv.Itoa(n/1000) + "k"
	}
	return strconv.Itoa(n)
}

// plan expands the options into the fixed step sequence.
func plan(opt Options) []step {
	availabilityCSV := filepath.Join(opt.OutDir, "marker_availability.csv")

	availArgs := []string{"--out", availabilityCSV}
	for _, k := range opt.KSizes {
		availArgs = append(availArgs, "--markers", filepath.Join(opt.MarkerBase, "k"+strconv.Itoa(k)))
	}

	steps := []step{{
		name: "availability",
		argv: withCommon(opt, availArgs),
		run:  availabilityapp.RunContext,
	}}

	var statsFiles []string
	for _, k := range opt.KSizes {
		prefix := filepath.Join(opt.OutDir,
			fmt.Sprintf("realistic_k%d_%s", k, sampleTag(opt.SampleSize)))
		statsFiles = append(statsFiles, prefix+"_error_resilience_stats.csv")

		args := []string{
			"--markers", filepath.Join(opt.MarkerBase, "k"+strconv.Itoa(k)),
			"--out", prefix,
			"--sample", strconv.Itoa(opt.SampleSize),
			"--error-rate", strconv.FormatFloat(opt.ErrorRate, 'f', -1, 64),
			"--seed", strconv.FormatInt(opt.Seed, 10),
			"--threads", strconv.Itoa(opt.Threads),
		}
		if opt.Events {
			args = append(args, "--events")
		}
		steps = append(steps, step{
			name: fmt.Sprintf("resilience k=%d", k),
			argv: withCommon(opt, args),
			run:  resilienceapp.RunContext,
		})
	}

	comparePrefix := filepath.Join(opt.OutDir, "kmarker")
	compareArgs := []string{
		"--availability", availabilityCSV,
		"--out", comparePrefix,
	}
	for _, f := range statsFiles {
		compareArgs = append(compareArgs, "--stats", f)
	}
	steps = append(steps, step{
		name: "compare",
		argv: withCommon(opt, compareArgs),
		run:  compareapp.RunContext,
	})

	steps = append(steps, step{
		name: "recommend",
		argv: withCommon(opt, []string{
			"--comparison", comparePrefix + "_comparison.csv",
			"--out", comparePrefix,
		}),
		run: recommendapp.RunContext,
	})
	return steps
}

// withCommon forwards the driver-level flags each step understands. The
// header flag is never forwarded: later steps parse the earlier steps' CSVs
// and require their headers.
func withCommon(opt Options, argv []string) []string {
	if opt.Quiet {
		argv = append(argv, "--quiet")
	}
	return argv
}

// RunContext executes the steps in order; the first nonzero exit code aborts
// the sequence and is propagated.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := NewFlagSet("kmarker-all")
	fs.SetOutput(io.Discard)

	opts, err := ParseArgs(fs, argv)
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
		fmt.Fprintf(stdout, "kmarker-all version %s\n", version.Version)
		return 0
	}

	steps := plan(opts)
	for i, st := range steps {
		if ctx.Err() != nil {
			return 130
		}
		cmdutil.Infof(stderr, opts.Quiet, "[%d/%d] %s", i+1, len(steps), st.name)
		if code := st.run(ctx, st.argv, stdout, stderr); code != 0 {
			fmt.Fprintf(stderr, "step %q failed with exit code %d; aborting\n", st.name, code)
			return code
		}
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

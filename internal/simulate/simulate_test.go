package simulate

import (
	"context"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/markerset"
)

func newSet(t *testing.T, genotype string, kmers ...string) *markerset.Set {
	t.Helper()
	return markerset.New(markerset.Meta{
		Genotype: genotype, Region: "ARMS", Chromosome: "Chr1", K: len(kmers[0]),
	}, kmers)
}

func TestOneCountsSumToSampleSize(t *testing.T) {
	origin := newSet(t, "Col", "ACGTACGTACGTACGTACGTA", "TTTTCCCCGGGGAAAATTTTC")
	cfg := Config{SampleSize: 5000, ErrorRate: 0.01, Seed: 42}

	res, err := One(context.Background(), cfg, origin, []*markerset.Set{origin})
	if err != nil {
		t.Fatalf("One: %v", err)
	}
	if res.Counts.Tested != cfg.SampleSize {
		t.Fatalf("Tested = %d, want %d", res.Counts.Tested, cfg.SampleSize)
	}
	if res.Counts.Sum() != res.Counts.Tested {
		t.Fatalf("buckets sum to %d, want %d", res.Counts.Sum(), res.Counts.Tested)
	}
	histTotal := 0
	for _, n := range res.ErrorHist {
		histTotal += n
	}
	if histTotal != cfg.SampleSize {
		t.Fatalf("error histogram covers %d draws, want %d", histTotal, cfg.SampleSize)
	}
}

func TestOneDeterministicForSeed(t *testing.T) {
	origin := newSet(t, "Col", "ACGTACGTACGTACGTACGTA", "GATTACAGATTACAGATTACA")
	cfg := Config{SampleSize: 2000, ErrorRate: 0.02, Seed: 7}

	a, err := One(context.Background(), cfg, origin, []*markerset.Set{origin})
	if err != nil {
		t.Fatal(err)
	}
	b, err := One(context.Background(), cfg, origin, []*markerset.Set{origin})
	if err != nil {
		t.Fatal(err)
	}
	if a.Counts != b.Counts {
		t.Fatalf("counts differ between identical runs: %+v vs %+v", a.Counts, b.Counts)
	}
	if !reflect.DeepEqual(a.ErrorHist, b.ErrorHist) {
		t.Fatalf("error histograms differ: %v vs %v", a.ErrorHist, b.ErrorHist)
	}
}

// Two single-marker sets, 21 A's vs 21 T's: an erroneous draw from the A set
// can never match either set (all 21 bases would have to flip), so every
// error goes novel and cross-contamination is exactly zero.
func TestTwoSetScenarioNoCrossContamination(t *testing.T) {
	a := newSet(t, "Col", strings.Repeat("A", 21))
	b := newSet(t, "Ler", strings.Repeat("T", 21))
	sets := []*markerset.Set{a, b}

	cfg := Config{SampleSize: 10000, ErrorRate: 0.01, Seed: 42}
	res, err := One(context.Background(), cfg, a, sets)
	if err != nil {
		t.Fatal(err)
	}
	c := res.Counts

	if c.WrongDB != 0 {
		t.Errorf("cross-contaminated = %d, want 0", c.WrongDB)
	}
	if c.Ambiguous != 0 {
		t.Errorf("ambiguous = %d, want 0", c.Ambiguous)
	}
	if c.ErrorTolerant != 0 {
		t.Errorf("error-tolerant = %d, want 0 (single-marker origin)", c.ErrorTolerant)
	}
	if c.Novel != c.HadErrors() {
		t.Errorf("novel = %d, want every erroneous draw (%d)", c.Novel, c.HadErrors())
	}

	rate := float64(c.HadErrors()) / float64(c.Tested)
	want := 1 - math.Pow(0.99, 21) // ~0.19
	if math.Abs(rate-want) > 0.02 {
		t.Errorf("error fraction %.4f, want %.4f ± 0.02", rate, want)
	}
}

func TestRunResultsIndependentOfThreads(t *testing.T) {
	var sets []*markerset.Set
	for _, g := range []string{"Col", "Ler", "Cvi", "Ws"} {
		sets = append(sets, newSet(t, g,
			strings.Repeat("ACGT", 5)+"A",
			strings.Repeat("GATTACA", 3),
			strings.Repeat("T", 21),
		))
	}

	run := func(threads int) []Result {
		cfg := Config{SampleSize: 1000, ErrorRate: 0.05, Seed: 11, Threads: threads}
		res, err := Run(context.Background(), cfg, sets)
		if err != nil {
			t.Fatalf("Run(threads=%d): %v", threads, err)
		}
		return res
	}

	serial, parallel := run(1), run(4)
	if len(serial) != len(parallel) {
		t.Fatalf("result lengths differ: %d vs %d", len(serial), len(parallel))
	}
	for i := range serial {
		if serial[i].Meta.Label() != parallel[i].Meta.Label() {
			t.Fatalf("order differs at %d: %s vs %s", i, serial[i].Meta.Label(), parallel[i].Meta.Label())
		}
		if serial[i].Counts != parallel[i].Counts {
			t.Fatalf("%s: counts differ serial %+v parallel %+v",
				serial[i].Meta.Label(), serial[i].Counts, parallel[i].Counts)
		}
	}
}

func TestRunCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sets := []*markerset.Set{newSet(t, "Col", strings.Repeat("A", 21))}
	cfg := Config{SampleSize: 1 << 20, ErrorRate: 0.01, Seed: 1, Threads: 2}
	if _, err := Run(ctx, cfg, sets); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestEventsOnlyForErroneousDraws(t *testing.T) {
	origin := newSet(t, "Col", strings.Repeat("C", 21))
	cfg := Config{SampleSize: 3000, ErrorRate: 0.05, Seed: 3, Events: true}

	res, err := One(context.Background(), cfg, origin, []*markerset.Set{origin})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Events) != res.Counts.HadErrors() {
		t.Fatalf("%d events for %d erroneous draws", len(res.Events), res.Counts.HadErrors())
	}
	for _, e := range res.Events {
		if e.NErrors == 0 {
			t.Fatal("event recorded for an error-free draw")
		}
		if e.Mutated == e.Original {
			t.Fatal("event with errors but unchanged sequence")
		}
	}
}

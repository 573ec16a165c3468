package classify

import (
	"testing"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/markerset"
)

func set(t *testing.T, genotype, region, chrom string, kmers ...string) *markerset.Set {
	t.Helper()
	return markerset.New(markerset.Meta{
		Genotype: genotype, Region: region, Chromosome: chrom, K: len(kmers[0]),
	}, kmers)
}

func TestClassifyOutcomes(t *testing.T) {
	a := set(t, "Col", "ARMS", "Chr1", "AAAA", "CCCC")
	b := set(t, "Ler", "ARMS", "Chr1", "GGGG", "CCCC")
	sets := []*markerset.Set{a, b}
	origin := a.Meta.Label()

	cases := []struct {
		name    string
		nErrors int
		mutated string
		want    Outcome
	}{
		{"zero errors short-circuits", 0, "AAAA", NoError},
		{"still matches only origin", 1, "AAAA", ErrorTolerant},
		{"matches only the other set", 1, "GGGG", WrongDB},
		{"matches nothing", 1, "TTTT", Novel},
		{"matches origin plus another", 1, "CCCC", Ambiguous},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := Classify(tc.nErrors, tc.mutated, origin, sets)
			if got != tc.want {
				t.Fatalf("Classify(%d, %q) = %v, want %v", tc.nErrors, tc.mutated, got, tc.want)
			}
		})
	}
}

func TestMatchesPreservesCollectionOrder(t *testing.T) {
	a := set(t, "Col", "ARMS", "Chr1", "CCCC")
	b := set(t, "Ler", "CEN", "Chr2", "CCCC")
	hits := Matches("CCCC", []*markerset.Set{a, b})
	if len(hits) != 2 || hits[0] != "Col_ARMS_Chr1" || hits[1] != "Ler_CEN_Chr2" {
		t.Fatalf("unexpected hits %v", hits)
	}
}

func TestCountsSumMatchesTested(t *testing.T) {
	var c Counts
	for _, o := range []Outcome{NoError, NoError, ErrorTolerant, WrongDB, Novel, Novel, Ambiguous} {
		c.Add(o)
	}
	if c.Tested != 7 || c.Sum() != c.Tested {
		t.Fatalf("Sum()=%d Tested=%d", c.Sum(), c.Tested)
	}
	if c.HadErrors() != 5 {
		t.Fatalf("HadErrors()=%d, want 5", c.HadErrors())
	}
}

func TestOutcomeStrings(t *testing.T) {
	want := map[Outcome]string{
		NoError:       "no_error",
		ErrorTolerant: "error_tolerant",
		WrongDB:       "wrong_db",
		Novel:         "novel",
		Ambiguous:     "ambiguous",
	}
	for o, s := range want {
		if o.String() != s {
			t.Errorf("%d.String()=%q, want %q", o, o.String(), s)
		}
	}
}

package recommendcli

import (
	"flag"
	"testing"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/scoring"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func TestRecommendFlagsOK(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--comparison", "cmp.csv", "--out", "run"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if o.Comparison != "cmp.csv" || o.OutPrefix != "run" {
		t.Fatalf("bad parse: %+v", o)
	}
	if o.Weights != scoring.Default {
		t.Fatalf("want default weights, got %+v", o.Weights)
	}
}

func TestCustomWeights(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{
		"--comparison", "cmp.csv", "--out", "run",
		"--weight-availability", "0.1",
		"--weight-uniformity", "0.1",
		"--weight-specificity", "0.2",
		"--weight-retention", "0.6",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := scoring.Weights{Availability: 0.1, Uniformity: 0.1, Specificity: 0.2, Retention: 0.6}
	if o.Weights != want {
		t.Fatalf("weights = %+v, want %+v", o.Weights, want)
	}
}

func TestWeightsMustSumToOne(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--comparison", "cmp.csv", "--out", "run",
		"--weight-retention", "0.9",
	})
	if err == nil {
		t.Fatal("expected error when weights do not sum to 1")
	}
}

func TestMissingComparisonErrors(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--out", "run"}); err == nil {
		t.Fatal("expected error when --comparison missing")
	}
}

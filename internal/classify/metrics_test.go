package classify

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-12 }

func TestMetricsOnKnownTallies(t *testing.T) {
	// 1000 draws: 810 untouched, 120 tolerant, 4 wrong, 64 novel, 2 ambiguous.
	c := Counts{Tested: 1000, NoError: 810, ErrorTolerant: 120, WrongDB: 4, Novel: 64, Ambiguous: 2}

	if got := ErrorRate(c); !approx(got, 0.190) {
		t.Errorf("ErrorRate = %v, want 0.190", got)
	}
	if got := Retention(c); !approx(got, 0.930) {
		t.Errorf("Retention = %v, want 0.930", got)
	}
	if got := AbsoluteFDR(c); !approx(got, 0.004) {
		t.Errorf("AbsoluteFDR = %v, want 0.004", got)
	}
	cond, ok := ConditionalFDR(c)
	if !ok || !approx(cond, 4.0/124.0) {
		t.Errorf("ConditionalFDR = %v (ok=%v), want %v", cond, ok, 4.0/124.0)
	}
}

// Guard against the historical defect: the absolute FDR must be computed
// over ALL samples, never with the conditional denominator. The conflation
// inflated reported rates by roughly two orders of magnitude.
func TestAbsoluteFDRNotConflatedWithConditional(t *testing.T) {
	c := Counts{Tested: 100000, NoError: 81000, ErrorTolerant: 120, WrongDB: 40, Novel: 18800, Ambiguous: 40}

	abs := AbsoluteFDR(c)
	cond, ok := ConditionalFDR(c)
	if !ok {
		t.Fatal("conditional FDR should be defined")
	}
	if approx(abs, cond) {
		t.Fatalf("absolute FDR (%v) equals conditional FDR (%v): conflated denominators", abs, cond)
	}
	if want := 40.0 / 100000.0; !approx(abs, want) {
		t.Fatalf("AbsoluteFDR = %v, want %v", abs, want)
	}
	// abs ~ 4e-4, cond = 0.25: the two-orders-of-magnitude gap.
	if abs >= cond {
		t.Fatalf("absolute FDR %v should be far below conditional %v here", abs, cond)
	}
}

func TestAbsoluteNeverExceedsConditional(t *testing.T) {
	tallies := []Counts{
		{Tested: 10, NoError: 5, ErrorTolerant: 3, WrongDB: 2},
		{Tested: 100, NoError: 80, ErrorTolerant: 1, WrongDB: 19},
		{Tested: 1000, NoError: 0, ErrorTolerant: 500, WrongDB: 500},
		{Tested: 50, NoError: 40, WrongDB: 10},
	}
	for _, c := range tallies {
		cond, ok := ConditionalFDR(c)
		if !ok {
			continue
		}
		if abs := AbsoluteFDR(c); abs > cond+1e-12 {
			t.Errorf("tally %+v: absolute %v > conditional %v", c, abs, cond)
		}
	}
}

// absolute_FDR factors as error_rate x (wrong / had_errors).
func TestAbsoluteFDRFactorization(t *testing.T) {
	c := Counts{Tested: 2000, NoError: 1620, ErrorTolerant: 100, WrongDB: 30, Novel: 240, Ambiguous: 10}
	want := ErrorRate(c) * float64(c.WrongDB) / float64(c.HadErrors())
	if got := AbsoluteFDR(c); !approx(got, want) {
		t.Fatalf("AbsoluteFDR = %v, want factorization %v", got, want)
	}
}

func TestConditionalFDRUndefinedNotZero(t *testing.T) {
	// Every erroneous draw went novel: no surviving matches at all.
	c := Counts{Tested: 100, NoError: 80, Novel: 20}
	if _, ok := ConditionalFDR(c); ok {
		t.Fatal("conditional FDR should be undefined when wrong+tolerant == 0")
	}
}

func TestMetricsEmptyTally(t *testing.T) {
	var c Counts
	if ErrorRate(c) != 0 || Retention(c) != 0 || AbsoluteFDR(c) != 0 {
		t.Fatal("zero tally should yield zero rates, not NaN")
	}
}

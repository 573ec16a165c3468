package genome

import (
	"math"
	"testing"
)

func TestRegionLength(t *testing.T) {
	cases := []struct {
		region, chromosome string
		want               int
	}{
		{"CEN", "Chr1", 3_500_000},
		{"CEN", "Chr5", 4_500_000},
		{"ARMS", "Chr1", 30427671 - 3_500_000},
		{"ARMS", "Chr4", 18585056 - 3_500_000},
	}
	for _, tc := range cases {
		got, err := RegionLength(tc.region, tc.chromosome)
		if err != nil {
			t.Errorf("RegionLength(%s, %s): %v", tc.region, tc.chromosome, err)
			continue
		}
		if got != tc.want {
			t.Errorf("RegionLength(%s, %s) = %d, want %d", tc.region, tc.chromosome, got, tc.want)
		}
	}
}

func TestRegionLengthErrors(t *testing.T) {
	if _, err := RegionLength("ARMS", "Chr9"); err == nil {
		t.Error("unknown chromosome should be fatal")
	}
	if _, err := RegionLength("PERICEN", "Chr1"); err == nil {
		t.Error("unknown region should be fatal")
	}
}

func TestChromosomeTablesAgree(t *testing.T) {
	if len(ChromosomeSizes) != 5 || len(CentromereSizes) != 5 {
		t.Fatalf("expected 5 chromosomes, got %d and %d", len(ChromosomeSizes), len(CentromereSizes))
	}
	for chr, total := range ChromosomeSizes {
		cen, ok := CentromereSizes[chr]
		if !ok {
			t.Errorf("%s has no centromere entry", chr)
			continue
		}
		if cen <= 0 || cen >= total {
			t.Errorf("%s centromere %d out of range for total %d", chr, cen, total)
		}
	}
}

func TestDensityPerMb(t *testing.T) {
	if got := DensityPerMb(500, 1_000_000); got != 500 {
		t.Errorf("DensityPerMb(500, 1e6) = %v, want 500", got)
	}
	if got := DensityPerMb(1, 2_000_000); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("DensityPerMb(1, 2e6) = %v, want 0.5", got)
	}
	if got := DensityPerMb(100, 0); got != 0 {
		t.Errorf("zero region length should yield 0, got %v", got)
	}
}

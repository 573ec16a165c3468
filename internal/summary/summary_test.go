package summary

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/classify"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/markerset"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/simulate"
)

func TestResilienceRowFrom(t *testing.T) {
	res := simulate.Result{
		Meta: markerset.Meta{Genotype: "Col", Region: "ARMS", Chromosome: "Chr1", K: 21},
		Counts: classify.Counts{
			Tested: 1000, NoError: 810, ErrorTolerant: 120, WrongDB: 4, Novel: 64, Ambiguous: 2,
		},
		TotalErrors: 200,
	}
	row := ResilienceRowFrom(res)

	if row.Database != "Col_ARMS_Chr1" || row.K != 21 {
		t.Fatalf("identity fields wrong: %+v", row)
	}
	approx := func(got, want float64) bool { return math.Abs(got-want) < 1e-9 }
	if row.HadErrors != 190 || !approx(row.PctWithErrors, 19.0) {
		t.Errorf("error impact: had=%d pct=%v", row.HadErrors, row.PctWithErrors)
	}
	if !approx(row.RetentionPct, 93.0) {
		t.Errorf("RetentionPct = %v, want 93", row.RetentionPct)
	}
	if !approx(row.AbsoluteFDRPct, 0.4) {
		t.Errorf("AbsoluteFDRPct = %v, want 0.4", row.AbsoluteFDRPct)
	}
	if !row.CondFDRDefined {
		t.Error("conditional FDR should be defined")
	}
	if !approx(row.MeanErrors, 0.2) {
		t.Errorf("MeanErrors = %v, want 0.2", row.MeanErrors)
	}
	// Percentages of erroneous draws.
	if !approx(row.PctErrorTolerant, 120.0/190.0*100) {
		t.Errorf("PctErrorTolerant = %v", row.PctErrorTolerant)
	}
}

func TestResilienceRoundTripPreservesNA(t *testing.T) {
	rows := []ResilienceRow{
		{
			K: 21, Database: "Col_ARMS_Chr1", Genotype: "Col", Region: "ARMS", Chromosome: "Chr1",
			Tested: 100, NoError: 80, HadErrors: 20, Novel: 20,
			PctWithErrors: 20, PctNovel: 100, RetentionPct: 80,
			// conditional FDR undefined: all errors went novel
		},
		{
			K: 21, Database: "Ler_CEN_Chr2", Genotype: "Ler", Region: "CEN", Chromosome: "Chr2",
			Tested: 100, NoError: 80, HadErrors: 20, ErrorTolerant: 15, WrongDB: 5,
			PctWithErrors: 20, PctErrorTolerant: 75, PctWrongDB: 25,
			RetentionPct:  95, AbsoluteFDRPct: 5,
			CondFDRPct: 25, CondFDRDefined: true,
		},
	}

	var buf bytes.Buffer
	if err := WriteResilience(&buf, rows, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), ",NA") {
		t.Fatalf("undefined conditional FDR should serialize as NA:\n%s", buf.String())
	}

	path := filepath.Join(t.TempDir(), "stats.csv")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadResilience(path)
	if err != nil {
		t.Fatalf("ReadResilience: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("read %d rows", len(got))
	}
	if got[0].CondFDRDefined {
		t.Error("row 0 conditional FDR should stay undefined")
	}
	if !got[1].CondFDRDefined || got[1].CondFDRPct != 25 {
		t.Errorf("row 1 conditional FDR = %v defined=%v", got[1].CondFDRPct, got[1].CondFDRDefined)
	}
}

func TestReadResilienceRejectsMalformedRow(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResilience(&buf, []ResilienceRow{{K: 21, Database: "Col_ARMS_Chr1"}}, true); err != nil {
		t.Fatal(err)
	}
	// Corrupt the n_tested column.
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	fields := strings.Split(lines[1], ",")
	fields[5] = "oops"
	lines[1] = strings.Join(fields, ",")
	text := strings.Join(lines, "\n") + "\n"

	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadResilience(path); err == nil {
		t.Fatal("malformed numeric column should be fatal")
	}
}

func TestReadRejectsWrongHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrong.csv")
	if err := os.WriteFile(path, []byte("a,b,c\n1,2,3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadAvailability(path); err == nil {
		t.Fatal("wrong header should be fatal")
	}
}

func TestReadAvailabilityMissingFile(t *testing.T) {
	if _, err := ReadAvailability(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("missing file should be fatal")
	}
}

func TestAvailabilityRoundTrip(t *testing.T) {
	rows := []AvailabilityRow{{
		K: 21, Database: "Col_ARMS_Chr1", Genotype: "Col", Region: "ARMS", Chromosome: "Chr1",
		TotalKmers: 1_200_000, RegionSizeBP: 26_927_671, DensityPerMb: 44564.14,
	}}
	var buf bytes.Buffer
	if err := WriteAvailability(&buf, rows, true); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "avail.csv")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadAvailability(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].TotalKmers != 1_200_000 || got[0].DensityPerMb != 44564.14 {
		t.Fatalf("round trip lost data: %+v", got)
	}
}

// Package summary defines the tabular contracts between the analysis steps:
// typed rows plus strict CSV readers and writers. Downstream plotting
// consumes these files; column names are stable.
package summary

import (
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/classify"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/simulate"
)

// AvailabilityRow is one marker set's size and density.
type AvailabilityRow struct {
	K            int
	Database     string
	Genotype     string
	Region       string
	Chromosome   string
	TotalKmers   int
	RegionSizeBP int
	DensityPerMb float64
}

// ResilienceRow is one marker set's simulation tally and derived rates.
// Percentages of the outcome buckets are over the draws that had errors;
// PctWithErrors, RetentionPct and AbsoluteFDRPct are over all draws.
type ResilienceRow struct {
	K          int
	Database   string
	Genotype   string
	Region     string
	Chromosome string

	Tested        int
	NoError       int
	HadErrors     int
	ErrorTolerant int
	WrongDB       int
	Novel         int
	Ambiguous     int
	MeanErrors    float64

	PctWithErrors    float64
	PctErrorTolerant float64
	PctNovel         float64
	PctWrongDB       float64
	PctAmbiguous     float64

	RetentionPct   float64
	AbsoluteFDRPct float64
	CondFDRPct     float64
	CondFDRDefined bool
}

// Counts rebuilds the classification tally from a row's count columns.
func (r ResilienceRow) Counts() classify.Counts {
	return classify.Counts{
		Tested:        r.Tested,
		NoError:       r.NoError,
		ErrorTolerant: r.ErrorTolerant,
		WrongDB:       r.WrongDB,
		Novel:         r.Novel,
		Ambiguous:     r.Ambiguous,
	}
}

// ResilienceRowFrom derives the full row for one simulation result.
func ResilienceRowFrom(res simulate.Result) ResilienceRow {
	c := res.Counts
	row := ResilienceRow{
		K:          res.Meta.K,
		Database:   res.Meta.Label(),
		Genotype:   res.Meta.Genotype,
		Region:     res.Meta.Region,
		Chromosome: res.Meta.Chromosome,

		Tested:        c.Tested,
		NoError:       c.NoError,
		HadErrors:     c.HadErrors(),
		ErrorTolerant: c.ErrorTolerant,
		WrongDB:       c.WrongDB,
		Novel:         c.Novel,
		Ambiguous:     c.Ambiguous,
		MeanErrors:    res.MeanErrors(),

		PctWithErrors:  classify.ErrorRate(c) * 100,
		RetentionPct:   classify.Retention(c) * 100,
		AbsoluteFDRPct: classify.AbsoluteFDR(c) * 100,
	}
	if had := c.HadErrors(); had > 0 {
		row.PctErrorTolerant = float64(c.ErrorTolerant) / float64(had) * 100
		row.PctNovel = float64(c.Novel) / float64(had) * 100
		row.PctWrongDB = float64(c.WrongDB) / float64(had) * 100
		row.PctAmbiguous = float64(c.Ambiguous) / float64(had) * 100
	}
	if fdr, ok := classify.ConditionalFDR(c); ok {
		row.CondFDRPct = fdr * 100
		row.CondFDRDefined = true
	}
	return row
}

// ComparisonRow is the per-k rollup consumed by the recommendation step.
type ComparisonRow struct {
	K         int
	Databases int

	MeanPctWithErrors float64
	MeanRetentionPct  float64
	MeanAbsFDRPct     float64
	MeanCondFDRPct    float64
	CondFDRDefined    bool

	TotalMarkers     int
	MeanDensityPerMb float64
	DensityCVPct     float64
	UsablePerMb      float64
}

// ScoreRow is one k-mer length's normalized scores and rank.
type ScoreRow struct {
	K                 int
	AvailabilityScore float64
	UniformityScore   float64
	SpecificityScore  float64
	RetentionScore    float64
	OverallScore      float64
	Rank              int
}

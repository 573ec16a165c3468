package summary

import (
	"encoding/csv"
	"io"
	"strconv"
)

// NA marks an undefined metric (a zero denominator), which is distinct from
// a measured zero.
const NA = "NA"

var AvailabilityHeader = []string{
	"kmer_size", "database", "genotype", "region", "chromosome",
	"total_kmers", "region_size_bp", "density_per_mb",
}

var ResilienceHeader = []string{
	"kmer_size", "database", "genotype", "region", "chromosome",
	"n_tested", "n_no_error", "n_had_errors",
	"n_error_tolerant", "n_wrong_db", "n_novel", "n_ambiguous",
	"mean_errors_per_kmer", "pct_kmers_with_errors",
	"pct_error_tolerant", "pct_becomes_novel", "pct_wrong_db", "pct_ambiguous",
	"retention_pct", "absolute_fdr_pct", "conditional_fdr_pct",
}

var ComparisonHeader = []string{
	"kmer_size", "n_databases",
	"mean_pct_with_errors", "mean_retention_pct",
	"mean_absolute_fdr_pct", "mean_conditional_fdr_pct",
	"total_markers", "mean_density_per_mb", "density_cv_pct", "usable_per_mb",
}

var ScoreHeader = []string{
	"kmer_size", "availability_score", "uniformity_score",
	"specificity_score", "retention_score", "overall_score", "rank",
}

func itoa(v int) string      { return strconv.Itoa(v) }
func ftoa(v float64) string  { return strconv.FormatFloat(v, 'f', 6, 64) }
func ftoa2(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func (r AvailabilityRow) record() []string {
	return []string{
		itoa(r.K), r.Database, r.Genotype, r.Region, r.Chromosome,
		itoa(r.TotalKmers), itoa(r.RegionSizeBP), ftoa2(r.DensityPerMb),
	}
}

func (r ResilienceRow) record() []string {
	cond := NA
	if r.CondFDRDefined {
		cond = ftoa(r.CondFDRPct)
	}
	return []string{
		itoa(r.K), r.Database, r.Genotype, r.Region, r.Chromosome,
		itoa(r.Tested), itoa(r.NoError), itoa(r.HadErrors),
		itoa(r.ErrorTolerant), itoa(r.WrongDB), itoa(r.Novel), itoa(r.Ambiguous),
		ftoa(r.MeanErrors), ftoa(r.PctWithErrors),
		ftoa(r.PctErrorTolerant), ftoa(r.PctNovel), ftoa(r.PctWrongDB), ftoa(r.PctAmbiguous),
		ftoa(r.RetentionPct), ftoa(r.AbsoluteFDRPct), cond,
	}
}

func (r ComparisonRow) record() []string {
	cond := NA
	if r.CondFDRDefined {
		cond = ftoa(r.MeanCondFDRPct)
	}
	return []string{
		itoa(r.K), itoa(r.Databases),
		ftoa(r.MeanPctWithErrors), ftoa(r.MeanRetentionPct),
		ftoa(r.MeanAbsFDRPct), cond,
		itoa(r.TotalMarkers), ftoa2(r.MeanDensityPerMb), ftoa(r.DensityCVPct), ftoa2(r.UsablePerMb),
	}
}

func (r ScoreRow) record() []string {
	return []string{
		itoa(r.K), ftoa2(r.AvailabilityScore), ftoa2(r.UniformityScore),
		ftoa2(r.SpecificityScore), ftoa2(r.RetentionScore), ftoa2(r.OverallScore),
		itoa(r.Rank),
	}
}

func writeCSV(w io.Writer, header []string, withHeader bool, records [][]string) error {
	cw := csv.NewWriter(w)
	if withHeader {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteAvailability(w io.Writer, rows []AvailabilityRow, header bool) error {
	recs := make([][]string, len(rows))
	for i, r := range rows {
		recs[i] = r.record()
	}
	return writeCSV(w, AvailabilityHeader, header, recs)
}

func WriteResilience(w io.Writer, rows []ResilienceRow, header bool) error {
	recs := make([][]string, len(rows))
	for i, r := range rows {
		recs[i] = r.record()
	}
	return writeCSV(w, ResilienceHeader, header, recs)
}

func WriteComparison(w io.Writer, rows []ComparisonRow, header bool) error {
	recs := make([][]string, len(rows))
	for i, r := range rows {
		recs[i] = r.record()
	}
	return writeCSV(w, ComparisonHeader, header, recs)
}

func WriteScores(w io.Writer, rows []ScoreRow, header bool) error {
	recs := make([][]string, len(rows))
	for i, r := range rows {
		recs[i] = r.record()
	}
	return writeCSV(w, ScoreHeader, header, recs)
}

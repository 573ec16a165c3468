// Package aggregate rolls per-set resilience and availability rows up into
// the per-k comparison table.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/stats"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/summary"
)

// Rollup merges one k's resilience rows with their availability rows. Every
// resilience row must have a matching availability row (same database, same
// k); a missing match is fatal, not skipped.
func Rollup(k int, res []summary.ResilienceRow, avail []summary.AvailabilityRow) (summary.ComparisonRow, error) {
	if len(res) == 0 {
		return summary.ComparisonRow{}, fmt.Errorf("no resilience rows for k=%d", k)
	}

	densityByDB := make(map[string]summary.AvailabilityRow, len(avail))
	for _, a := range avail {
		if a.K == k {
			densityByDB[a.Database] = a
		}
	}

	var (
		pctErr, retention, absFDR, condFDR []float64
		densities                          []float64
		totalMarkers                       int
	)
	for _, r := range res {
		if r.K != k {
			return summary.ComparisonRow{}, fmt.Errorf("resilience row %s has k=%d, want %d", r.Database, r.K, k)
		}
		a, ok := densityByDB[r.Database]
		if !ok {
			return summary.ComparisonRow{}, fmt.Errorf("no availability row for %s at k=%d", r.Database, k)
		}
		pctErr = append(pctErr, r.PctWithErrors)
		retention = append(retention, r.RetentionPct)
		absFDR = append(absFDR, r.AbsoluteFDRPct)
		if r.CondFDRDefined {
			condFDR = append(condFDR, r.CondFDRPct)
		}
		densities = append(densities, a.DensityPerMb)
		totalMarkers += a.TotalKmers
	}

	row := summary.ComparisonRow{
		K:         k,
		Databases: len(res),

		MeanPctWithErrors: stats.Mean(pctErr),
		MeanRetentionPct:  stats.Mean(retention),
		MeanAbsFDRPct:     stats.Mean(absFDR),

		TotalMarkers:     totalMarkers,
		MeanDensityPerMb: stats.Mean(densities),
		DensityCVPct:     stats.CV(densities),
	}
	if len(condFDR) > 0 {
		row.MeanCondFDRPct = stats.Mean(condFDR)
		row.CondFDRDefined = true
	}
	row.UsablePerMb = row.MeanDensityPerMb * row.MeanRetentionPct / 100
	return row, nil
}

// ByK splits resilience rows by k-mer length and returns the lengths sorted.
func ByK(rows []summary.ResilienceRow) (map[int][]summary.ResilienceRow, []int) {
	grouped := make(map[int][]summary.ResilienceRow)
	for _, r := range rows {
		grouped[r.K] = append(grouped[r.K], r)
	}
	ks := make([]int, 0, len(grouped))
	for k := range grouped {
		ks = append(ks, k)
	}
	sort.Ints(ks)
	return grouped, ks
}

// RegionMeans averages one metric per region, for the report tables.
func RegionMeans(rows []summary.ResilienceRow, metric func(summary.ResilienceRow) float64) map[string]float64 {
	byRegion := make(map[string][]float64)
	for _, r := range rows {
		byRegion[r.Region] = append(byRegion[r.Region], metric(r))
	}
	out := make(map[string]float64, len(byRegion))
	for region, vals := range byRegion {
		out[region] = stats.Mean(vals)
	}
	return out
}

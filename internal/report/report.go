// Package report renders the human-readable text reports that accompany the
// CSV tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/aggregate"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/summary"
)

func rule(w io.Writer, n int) {
	fmt.Fprintln(w, strings.Repeat("=", n))
}

func thinRule(w io.Writer, n int) {
	fmt.Fprintln(w, strings.Repeat("-", n))
}

// Resilience writes the ranked per-set resilience report.
func Resilience(w io.Writer, errorRate float64, rows []summary.ResilienceRow) error {
	sorted := make([]summary.ResilienceRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PctErrorTolerant > sorted[j].PctErrorTolerant
	})

	rule(w, 70)
	fmt.Fprintln(w, "ERROR RESILIENCE ANALYSIS")
	fmt.Fprintf(w, "Per-base sequencing error rate: %.1f%% (ONT-like)\n", errorRate*100)
	rule(w, 70)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ERROR RESILIENCE RANKING (best first)")
	thinRule(w, 40)
	for i, r := range sorted {
		fmt.Fprintf(w, "%d. %s: %.2f%% error-tolerant\n", i+1, r.Database, r.PctErrorTolerant)
	}

	fmt.Fprintln(w)
	rule(w, 70)
	fmt.Fprintln(w, "DETAILED STATISTICS")
	rule(w, 70)
	fmt.Fprintln(w)

	for _, r := range sorted {
		fmt.Fprintf(w, "%s\n", r.Database)
		fmt.Fprintf(w, "  Tested: %d k-mers\n", r.Tested)
		fmt.Fprintf(w, "  Had sequencing errors: %d (%.2f%%)\n", r.HadErrors, r.PctWithErrors)
		fmt.Fprintf(w, "  Mean errors per k-mer: %.3f\n", r.MeanErrors)
		fmt.Fprintf(w, "  Retention: %.2f%%\n", r.RetentionPct)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Of k-mers WITH errors:")
		fmt.Fprintf(w, "    Error-tolerant:    %.2f%%\n", r.PctErrorTolerant)
		fmt.Fprintf(w, "    Becomes novel:     %.2f%%\n", r.PctNovel)
		fmt.Fprintf(w, "    Matches wrong DB:  %.2f%%\n", r.PctWrongDB)
		fmt.Fprintf(w, "    Becomes ambiguous: %.2f%%\n", r.PctAmbiguous)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  False discovery:")
		fmt.Fprintf(w, "    Absolute FDR:    %.4f%%\n", r.AbsoluteFDRPct)
		if r.CondFDRDefined {
			fmt.Fprintf(w, "    Conditional FDR: %.4f%%\n", r.CondFDRPct)
		} else {
			fmt.Fprintln(w, "    Conditional FDR: NA (no surviving matches)")
		}
		fmt.Fprintln(w)
	}
	return nil
}

// Comparison writes the per-k rollup table plus a region breakdown.
func Comparison(w io.Writer, comps []summary.ComparisonRow, perSet map[int][]summary.ResilienceRow) error {
	rule(w, 100)
	fmt.Fprintln(w, "K-MER SIZE COMPARISON")
	rule(w, 100)
	fmt.Fprintf(w, "%-8s %-6s %-12s %-12s %-14s %-14s %-14s %-10s\n",
		"K-mer", "Sets", "Error %", "Retention", "Abs FDR %", "Cond FDR %", "Density/Mb", "CV %")
	thinRule(w, 100)
	for _, c := range comps {
		cond := "NA"
		if c.CondFDRDefined {
			cond = fmt.Sprintf("%.4f", c.MeanCondFDRPct)
		}
		fmt.Fprintf(w, "k=%-6d %-6d %-12.2f %-12.2f %-14.4f %-14s %-14.0f %-10.1f\n",
			c.K, c.Databases, c.MeanPctWithErrors, c.MeanRetentionPct,
			c.MeanAbsFDRPct, cond, c.MeanDensityPerMb, c.DensityCVPct)
	}
	rule(w, 100)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "ERROR TOLERANCE BY REGION (mean % of erroneous k-mers)")
	thinRule(w, 60)
	for _, c := range comps {
		means := aggregate.RegionMeans(perSet[c.K], func(r summary.ResilienceRow) float64 {
			return r.PctErrorTolerant
		})
		regions := make([]string, 0, len(means))
		for region := range means {
			regions = append(regions, region)
		}
		sort.Strings(regions)
		for _, region := range regions {
			fmt.Fprintf(w, "k=%-4d %-6s %.2f%%\n", c.K, region, means[region])
		}
	}
	return nil
}

// Recommendation writes the ranked scores and the final pick.
func Recommendation(w io.Writer, scores []summary.ScoreRow, comps []summary.ComparisonRow) error {
	byK := make(map[int]summary.ComparisonRow, len(comps))
	for _, c := range comps {
		byK[c.K] = c
	}

	rule(w, 80)
	fmt.Fprintln(w, "K-MER SIZE RECOMMENDATION")
	rule(w, 80)
	fmt.Fprintf(w, "%-8s %-14s %-12s %-12s %-12s %-10s\n",
		"K-mer", "Availability", "Uniformity", "Specificity", "Retention", "Overall")
	thinRule(w, 80)
	for _, s := range scores {
		mark := ""
		if s.Rank == 1 {
			mark = "  <- best"
		}
		fmt.Fprintf(w, "k=%-6d %-14.1f %-12.1f %-12.1f %-12.1f %-10.1f%s\n",
			s.K, s.AvailabilityScore, s.UniformityScore, s.SpecificityScore,
			s.RetentionScore, s.OverallScore, mark)
	}
	rule(w, 80)

	best := scores[0]
	fmt.Fprintln(w)
	fmt.Fprintf(w, "RECOMMENDATION: use k=%d\n", best.K)
	if c, ok := byK[best.K]; ok {
		fmt.Fprintf(w, "  Overall quality score: %.1f/100\n", best.OverallScore)
		fmt.Fprintf(w, "  Read retention:        %.2f%%\n", c.MeanRetentionPct)
		fmt.Fprintf(w, "  Absolute FDR:          %.4f%%\n", c.MeanAbsFDRPct)
		fmt.Fprintf(w, "  Markers available:     %d\n", c.TotalMarkers)
	}
	return nil
}

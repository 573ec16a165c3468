// Package scoring turns the comparison table into a ranked recommendation
// using an explicit, static weight table. Nothing here is learned or tuned
// at runtime.
package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/summary"
)

// Weights combine the four normalized component scores into one 0-100
// figure. They must sum to 1.
type Weights struct {
	Availability float64 // total marker count
	Uniformity   float64 // density CV, lower is better
	Specificity  float64 // absolute FDR, lower is better
	Retention    float64 // read retention, the dominant practical factor
}

// Default mirrors the published evaluation: retention dominates because it
// is the only factor with double-digit differences between k-mer lengths.
var Default = Weights{
	Availability: 0.25,
	Uniformity:   0.15,
	Specificity:  0.20,
	Retention:    0.40,
}

const sumTolerance = 1e-9

func (w Weights) Validate() error {
	for _, v := range []float64{w.Availability, w.Uniformity, w.Specificity, w.Retention} {
		if v < 0 {
			return fmt.Errorf("weights must be non-negative, got %+v", w)
		}
	}
	sum := w.Availability + w.Uniformity + w.Specificity + w.Retention
	if math.Abs(sum-1.0) > sumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %.6f", sum)
	}
	return nil
}

// Rank scores every comparison row and returns the rows ordered best first.
// Higher-is-better metrics are scaled against the maximum; lower-is-better
// ones against their distance from it. A degenerate all-equal column scores
// 100 everywhere rather than dividing by zero.
func Rank(rows []summary.ComparisonRow, w Weights) ([]summary.ScoreRow, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no comparison rows to score")
	}

	var maxMarkers, maxCV, maxFDR, maxRetention float64
	for _, r := range rows {
		maxMarkers = math.Max(maxMarkers, float64(r.TotalMarkers))
		maxCV = math.Max(maxCV, r.DensityCVPct)
		maxFDR = math.Max(maxFDR, r.MeanAbsFDRPct)
		maxRetention = math.Max(maxRetention, r.MeanRetentionPct)
	}

	higherIsBetter := func(v, max float64) float64 {
		if max == 0 {
			return 100
		}
		return v / max * 100
	}
	lowerIsBetter := func(v, max float64) float64 {
		if max == 0 {
			return 100
		}
		return (1 - v/max) * 100
	}

	scores := make([]summary.ScoreRow, 0, len(rows))
	for _, r := range rows {
		s := summary.ScoreRow{
			K:                 r.K,
			AvailabilityScore: higherIsBetter(float64(r.TotalMarkers), maxMarkers),
			UniformityScore:   lowerIsBetter(r.DensityCVPct, maxCV),
			SpecificityScore:  lowerIsBetter(r.MeanAbsFDRPct, maxFDR),
			RetentionScore:    higherIsBetter(r.MeanRetentionPct, maxRetention),
		}
		s.OverallScore = s.AvailabilityScore*w.Availability +
			s.UniformityScore*w.Uniformity +
			s.SpecificityScore*w.Specificity +
			s.RetentionScore*w.Retention
		scores = append(scores, s)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].OverallScore != scores[j].OverallScore {
			return scores[i].OverallScore > scores[j].OverallScore
		}
		return scores[i].K < scores[j].K
	})
	for i := range scores {
		scores[i].Rank = i + 1
	}
	return scores, nil
}

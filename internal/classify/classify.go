package classify

import (
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/markerset"
)

// Matches returns the labels of every set containing kmer, in collection
// order.
func Matches(kmer string, sets []*markerset.Set) []string {
	var hits []string
	for _, s := range sets {
		if s.Contains(kmer) {
			hits = append(hits, s.Meta.Label())
		}
	}
	return hits
}

// Classify labels one sampled marker. nErrors is the substitution count the
// simulator applied; zero short-circuits to NoError without any lookup. The
// origin label is only consulted after matching, never used to steer it.
func Classify(nErrors int, mutated, origin string, sets []*markerset.Set) (Outcome, []string) {
	if nErrors == 0 {
		return NoError, nil
	}
	hits := Matches(mutated, sets)
	switch {
	case len(hits) == 0:
		return Novel, hits
	case len(hits) > 1:
		return Ambiguous, hits
	case hits[0] == origin:
		return ErrorTolerant, hits
	default:
		return WrongDB, hits
	}
}

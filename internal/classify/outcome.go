// Package classify labels mutated markers against the full collection of
// reference sets and derives the headline rates from the tallies.
package classify

// Outcome is the fate of one sampled marker after simulated sequencing.
type Outcome int

const (
	// NoError: no substitution landed; the marker is untouched.
	NoError Outcome = iota
	// ErrorTolerant: mutated, but still matches only its originating set.
	ErrorTolerant
	// WrongDB: matches exactly one set that is not the origin (the false
	// positive the whole analysis is about).
	WrongDB
	// Novel: matches no set at all; the marker is lost, not misassigned.
	Novel
	// Ambiguous: matches two or more sets. A match list that includes the
	// origin plus another set still counts as ambiguous.
	Ambiguous
)

var outcomeNames = [...]string{"no_error", "error_tolerant", "wrong_db", "novel", "ambiguous"}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

package classify

// ErrorRate is the fraction of samples that carried >= 1 substitution.
func ErrorRate(c Counts) float64 {
	if c.Tested == 0 {
		return 0
	}
	return float64(c.HadErrors()) / float64(c.Tested)
}

// Retention is the fraction of samples that remain correctly classifiable:
// untouched markers plus mutated ones that still match only their origin.
func Retention(c Counts) float64 {
	if c.Tested == 0 {
		return 0
	}
	return float64(c.NoError+c.ErrorTolerant) / float64(c.Tested)
}

// AbsoluteFDR is the fraction of ALL samples that match a wrong set.
// It is wrong_db over the total sample count. Do not substitute the
// conditional formula here: that conflation once inflated reported false
// positive rates by two orders of magnitude.
func AbsoluteFDR(c Counts) float64 {
	if c.Tested == 0 {
		return 0
	}
	return float64(c.WrongDB) / float64(c.Tested)
}

// ConditionalFDR is wrong_db over the samples that still match some single
// set (wrong_db + error_tolerant). It is undefined, not zero, when that
// denominator is empty; ok reports definedness.
func ConditionalFDR(c Counts) (fdr float64, ok bool) {
	denom := c.WrongDB + c.ErrorTolerant
	if denom == 0 {
		return 0, false
	}
	return float64(c.WrongDB) / float64(denom), true
}

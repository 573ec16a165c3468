// Package errormodel simulates per-base substitution noise, the error mode
// that matters for exact-match marker lookups on ONT reads.
package errormodel

import "math/rand"

// alternatives[b] holds the three bases a substitution may replace b with.
// A substituted base never equals the original, so any substitution changes
// the sequence.
var alternatives = map[byte]string{
	'A': "CGT",
	'C': "AGT",
	'G': "ACT",
	'T': "ACG",
}

// Substitution applies independent per-base substitutions at a fixed rate.
type Substitution struct {
	Rate float64 // per-base error probability, 0..1
}

// Mutate returns the noisy copy of kmer and the number of substitutions
// applied. The rng is injected so runs are reproducible. When no base is
// hit the original string is returned unchanged (and unallocated).
func (m Substitution) Mutate(kmer string, rng *rand.Rand) (string, int) {
	var buf []byte
	n := 0
	for i := 0; i < len(kmer); i++ {
		if rng.Float64() >= m.Rate {
			continue
		}
		alts, ok := alternatives[kmer[i]]
		if !ok {
			continue
		}
		if buf == nil {
			buf = []byte(kmer)
		}
		buf[i] = alts[rng.Intn(3)]
		n++
	}
	if n == 0 {
		return kmer, 0
	}
	return string(buf), n
}

package markerset

// Set is an immutable collection of fixed-length markers. It supports both
// membership lookup (classification) and indexed access (sampling).
type Set struct {
	Meta  Meta
	kmers []string
	index map[string]struct{}
}

// New builds a set over the given markers. The slice is retained.
func New(meta Meta, kmers []string) *Set {
	idx := make(map[string]struct{}, len(kmers))
	for _, km := range kmers {
		idx[km] = struct{}{}
	}
	return &Set{Meta: meta, kmers: kmers, index: idx}
}

func (s *Set) Len() int { return len(s.kmers) }

// At returns the i-th marker in load order.
func (s *Set) At(i int) string { return s.kmers[i] }

func (s *Set) Contains(kmer string) bool {
	_, ok := s.index[kmer]
	return ok
}

// Package markerset loads the pre-built reference marker sets produced by an
// external k-mer counter and exposes membership lookup over them.
package markerset

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Meta identifies one marker set: which genotype, region and chromosome it
// fingerprints, and at which k-mer length.
type Meta struct {
	Path       string // dump file on disk
	Genotype   string
	Region     string // ARMS | CEN
	Chromosome string // Chr1..Chr5
	K          int
}

// Label is the stable identifier used in reports and CSV rows.
func (m Meta) Label() string {
	return m.Genotype + "_" + m.Region + "_" + m.Chromosome
}

var nameRe = regexp.MustCompile(`^unique_([^_]+)_([^_]+)_(Chr\d+)_k(\d+)$`)

// ParseName extracts set metadata from a dump filename of the form
// unique_<genotype>_<region>_<chromosome>_k<K>.txt[.gz].
func ParseName(path string) (Meta, bool) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	base = strings.TrimSuffix(base, ".txt")

	sub := nameRe.FindStringSubmatch(base)
	if sub == nil {
		return Meta{}, false
	}
	k, err := strconv.Atoi(sub[4])
	if err != nil || k <= 0 {
		return Meta{}, false
	}
	return Meta{
		Path:       path,
		Genotype:   sub[1],
		Region:     sub[2],
		Chromosome: sub[3],
		K:          k,
	}, true
}

func (m Meta) String() string {
	return fmt.Sprintf("%s (k=%d)", m.Label(), m.K)
}

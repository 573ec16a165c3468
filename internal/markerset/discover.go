package markerset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover scans directories for marker dump files and returns their
// metadata sorted by (K, Genotype, Region, Chromosome). Files whose names do
// not follow the unique_<genotype>_<region>_<chr>_k<K> convention are
// ignored; unreadable directories are fatal.
func Discover(dirs ...string) ([]Meta, error) {
	var metas []Meta
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("scan marker directory: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			if !strings.HasSuffix(name, ".txt") && !strings.HasSuffix(name, ".txt.gz") {
				continue
			}
			if m, ok := ParseName(filepath.Join(dir, name)); ok {
				metas = append(metas, m)
			}
		}
	}
	sort.Slice(metas, func(i, j int) bool {
		a, b := metas[i], metas[j]
		if a.K != b.K {
			return a.K < b.K
		}
		if a.Genotype != b.Genotype {
			return a.Genotype < b.Genotype
		}
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		return a.Chromosome < b.Chromosome
	})
	return metas, nil
}

// SingleK verifies that every meta shares one k-mer length and returns it.
func SingleK(metas []Meta) (int, error) {
	if len(metas) == 0 {
		return 0, fmt.Errorf("no marker sets found")
	}
	k := metas[0].K
	for _, m := range metas[1:] {
		if m.K != k {
			return 0, fmt.Errorf("mixed k-mer lengths: %d and %d (one run compares sets of a single k)", k, m.K)
		}
	}
	return k, nil
}

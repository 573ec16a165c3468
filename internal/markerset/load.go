package markerset

import (
	"bufio"
	"fmt"
	"strings"
)

func validKmer(s string, k int) bool {
	if len(s) != k {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}

// scanDump streams a dump file line by line. Each line is "<kmer>\t<count>"
// (count optional); blank lines are skipped. Malformed markers are fatal.
func scanDump(meta Meta, fn func(kmer string) error) error {
	rc, err := openDump(meta.Path)
	if err != nil {
		return fmt.Errorf("open marker set %s: %w", meta.Label(), err)
	}
	defer func() { _ = rc.Close() }()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		kmer := line
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			kmer = line[:i]
		}
		if !validKmer(kmer, meta.K) {
			return fmt.Errorf("%s:%d: malformed %d-mer %q", meta.Path, lineNo, meta.K, kmer)
		}
		if err := fn(kmer); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", meta.Path, err)
	}
	return nil
}

// Load reads a whole marker set into memory.
func Load(meta Meta) (*Set, error) {
	var kmers []string
	if err := scanDump(meta, func(km string) error {
		kmers = append(kmers, km)
		return nil
	}); err != nil {
		return nil, err
	}
	if len(kmers) == 0 {
		return nil, fmt.Errorf("marker set %s is empty (%s)", meta.Label(), meta.Path)
	}
	return New(meta, kmers), nil
}

// LoadAll loads every set, preserving the order of metas.
func LoadAll(metas []Meta) ([]*Set, error) {
	sets := make([]*Set, 0, len(metas))
	for _, m := range metas {
		s, err := Load(m)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, nil
}

// Count streams a dump and returns its marker count without retaining it.
func Count(meta Meta) (int, error) {
	n := 0
	if err := scanDump(meta, func(string) error {
		n++
		return nil
	}); err != nil {
		return 0, err
	}
	return n, nil
}

package summary

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// rowScanner wraps one CSV record with positional typed accessors. The first
// parse failure sticks; partial-data tolerance is deliberately absent.
type rowScanner struct {
	file   string
	line   int
	header []string
	fields []string
	err    error
}

func (s *rowScanner) fail(col int, err error) {
	if s.err == nil {
		name := "?"
		if col < len(s.header) {
			name = s.header[col]
		}
		s.err = fmt.Errorf("%s:%d: column %s: %v", s.file, s.line, name, err)
	}
}

func (s *rowScanner) str(col int) string { return s.fields[col] }

func (s *rowScanner) int(col int) int {
	v, err := strconv.Atoi(s.fields[col])
	if err != nil {
		s.fail(col, err)
	}
	return v
}

func (s *rowScanner) float(col int) float64 {
	v, err := strconv.ParseFloat(s.fields[col], 64)
	if err != nil {
		s.fail(col, err)
	}
	return v
}

// floatNA is like float but treats the NA sentinel as (0, false).
func (s *rowScanner) floatNA(col int) (float64, bool) {
	if s.fields[col] == NA {
		return 0, false
	}
	return s.float(col), true
}

// readTable reads and validates a whole CSV with the expected header.
func readTable(path string, header []string, row func(*rowScanner)) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = fh.Close() }()

	cr := csv.NewReader(fh)
	cr.FieldsPerRecord = len(header)

	got, err := cr.Read()
	if err == io.EOF {
		return fmt.Errorf("%s: empty file", path)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for i, name := range header {
		if got[i] != name {
			return fmt.Errorf("%s: unexpected header column %d: got %q, want %q", path, i+1, got[i], name)
		}
	}

	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		line++
		sc := &rowScanner{file: path, line: line, header: header, fields: rec}
		row(sc)
		if sc.err != nil {
			return sc.err
		}
	}
}

// ReadAvailability loads an availability table; any malformed row is fatal.
func ReadAvailability(path string) ([]AvailabilityRow, error) {
	var rows []AvailabilityRow
	err := readTable(path, AvailabilityHeader, func(s *rowScanner) {
		rows = append(rows, AvailabilityRow{
			K:            s.int(0),
			Database:     s.str(1),
			Genotype:     s.str(2),
			Region:       s.str(3),
			Chromosome:   s.str(4),
			TotalKmers:   s.int(5),
			RegionSizeBP: s.int(6),
			DensityPerMb: s.float(7),
		})
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadResilience loads a resilience stats table; any malformed row is fatal.
func ReadResilience(path string) ([]ResilienceRow, error) {
	var rows []ResilienceRow
	err := readTable(path, ResilienceHeader, func(s *rowScanner) {
		r := ResilienceRow{
			K:          s.int(0),
			Database:   s.str(1),
			Genotype:   s.str(2),
			Region:     s.str(3),
			Chromosome: s.str(4),

			Tested:        s.int(5),
			NoError:       s.int(6),
			HadErrors:     s.int(7),
			ErrorTolerant: s.int(8),
			WrongDB:       s.int(9),
			Novel:         s.int(10),
			Ambiguous:     s.int(11),
			MeanErrors:    s.float(12),

			PctWithErrors:    s.float(13),
			PctErrorTolerant: s.float(14),
			PctNovel:         s.float(15),
			PctWrongDB:       s.float(16),
			PctAmbiguous:     s.float(17),

			RetentionPct:   s.float(18),
			AbsoluteFDRPct: s.float(19),
		}
		r.CondFDRPct, r.CondFDRDefined = s.floatNA(20)
		rows = append(rows, r)
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadComparison loads a comparison table; any malformed row is fatal.
func ReadComparison(path string) ([]ComparisonRow, error) {
	var rows []ComparisonRow
	err := readTable(path, ComparisonHeader, func(s *rowScanner) {
		r := ComparisonRow{
			K:                 s.int(0),
			Databases:         s.int(1),
			MeanPctWithErrors: s.float(2),
			MeanRetentionPct:  s.float(3),
			MeanAbsFDRPct:     s.float(4),
			TotalMarkers:      s.int(6),
			MeanDensityPerMb:  s.float(7),
			DensityCVPct:      s.float(8),
			UsablePerMb:       s.float(9),
		}
		r.MeanCondFDRPct, r.CondFDRDefined = s.floatNA(5)
		rows = append(rows, r)
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

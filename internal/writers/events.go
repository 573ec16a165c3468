// Package writers holds output-side plumbing: the background CSV writer used
// for the large per-event audit log, and broken-pipe detection.
package writers

import (
	"compress/gzip"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/simulate"
)

var eventHeader = []string{"database", "original_kmer", "mutated_kmer", "n_errors", "outcome", "matches"}

func eventRecord(e simulate.Event) []string {
	matches := "none"
	if len(e.Matches) > 0 {
		matches = strings.Join(e.Matches, ",")
	}
	return []string{
		e.Database, e.Original, e.Mutated,
		strconv.Itoa(e.NErrors), e.Outcome.String(), matches,
	}
}

// StartEventWriter spins up a goroutine that drains events into w as CSV.
// Close the returned channel, then receive the final error.
func StartEventWriter(w io.Writer, bufSize int) (chan<- simulate.Event, <-chan error) {
	if bufSize <= 0 {
		bufSize = 256
	}
	in := make(chan simulate.Event, bufSize)
	errCh := make(chan error, 1)

	go func() {
		cw := csv.NewWriter(w)
		err := cw.Write(eventHeader)
		for e := range in {
			if err != nil {
				continue // drain; first error wins
			}
			err = cw.Write(eventRecord(e))
		}
		if err == nil {
			cw.Flush()
			err = cw.Error()
		}
		errCh <- err
	}()

	return in, errCh
}

// WriteEventsFile writes the audit log gzip-compressed to path.
func WriteEventsFile(path string, events []simulate.Event) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	gz := gzip.NewWriter(fh)

	defer func() {
		if cerr := gz.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	in, werr := StartEventWriter(gz, 256)
	for _, e := range events {
		in <- e
	}
	close(in)
	return <-werr
}

package cmdutil

import (
	"bufio"
	"io"
	"os"
)

// WriteOutput renders via fn either to stdout (path "-") or to a freshly
// created file. Writes are buffered and flush errors surface.
func WriteOutput(stdout io.Writer, path string, fn func(io.Writer) error) error {
	if path == "-" {
		bw := bufio.NewWriter(stdout)
		if err := fn(bw); err != nil {
			return err
		}
		return bw.Flush()
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fh)
	werr := fn(bw)
	if werr == nil {
		werr = bw.Flush()
	}
	if cerr := fh.Close(); cerr != nil && werr == nil {
		werr = cerr
	}
	return werr
}

package cmdutil

import (
	"fmt"
	"io"
)

// Warnf writes a warning line unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Infof writes a progress line unless quiet is set.
func Infof(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, format+"\n", a...)
}

// cmd/kmarker-all/main.go
package main

import (
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/appshell"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/runall"
)

func main() {
	appshell.Main(runall.RunContext)
}

// cmd/kmarker-compare/main.go
package main

import (
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/appshell"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/compareapp"
)

func main() {
	appshell.Main(compareapp.RunContext)
}

// cmd/kmarker-availability/main.go
package main

import (
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/appshell"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/availabilityapp"
)

func main() {
	appshell.Main(availabilityapp.RunContext)
}

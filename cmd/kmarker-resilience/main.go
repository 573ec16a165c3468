// cmd/kmarker-resilience/main.go
package main

import (
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/appshell"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/resilienceapp"
)

func main() {
	appshell.Main(resilienceapp.RunContext)
}

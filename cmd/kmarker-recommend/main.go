// cmd/kmarker-recommend/main.go
package main

import (
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/appshell"
	"github.com/jacgonisa/kmer-marker-error-resilience/internal/recommendapp"
)

func main() {
	appshell.Main(recommendapp.RunContext)
}

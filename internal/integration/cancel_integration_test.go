package integration

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/resilienceapp"
)

func TestCtrlC_MidSimulation_Exit130(t *testing.T) {
	base := markerBase(t, 21)
	outDir := t.TempDir()

	argv := []string{
		"--markers", filepath.Join(base, "k21"),
		"--out", filepath.Join(outDir, "cancelled"),
		// Big enough that the simulation cannot finish before the cancel
		// checks kick in.
		"--sample", "50000000",
		"--threads", "1",
		"--quiet",
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := resilienceapp.RunContext(ctx, argv, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}

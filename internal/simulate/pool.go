package simulate

import (
	"context"
	"sort"
	"sync"

	"github.com/jacgonisa/kmer-marker-error-resilience/internal/markerset"
)

// Run simulates every set with cfg.Threads workers. Each set is independent,
// so the only coordination is collecting result rows; the returned slice is
// sorted by set identity so output never depends on scheduling.
func Run(ctx context.Context, cfg Config, sets []*markerset.Set) ([]Result, error) {
	threads := cfg.Threads
	if threads < 1 {
		threads = 1
	}
	if threads > len(sets) {
		threads = len(sets)
	}

	jobs := make(chan *markerset.Set, threads)
	out := make(chan Result, threads)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case s, ok := <-jobs:
					if !ok {
						return
					}
					res, err := One(ctx, cfg, s, sets)
					if err != nil {
						errOnce.Do(func() { firstErr = err })
						cancel()
						return
					}
					select {
					case out <- res:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	var (
		results []Result
		cwg     sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range out {
			results = append(results, r)
		}
	}()

feed:
	for _, s := range sets {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- s:
		}
	}
	close(jobs)
	wg.Wait()
	close(out)
	cwg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i].Meta, results[j].Meta
		if a.Genotype != b.Genotype {
			return a.Genotype < b.Genotype
		}
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		return a.Chromosome < b.Chromosome
	})
	return results, nil
}

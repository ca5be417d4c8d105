package app

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/primeify/internal/domain"
	"github.com/bft-labs/primeify/internal/ports"
	"github.com/bft-labs/primeify/pkg/log"
)

// Stats aggregates the per-range results of one Execute call.
type Stats struct {
	Ranges    []RangeStats
	Prime     int
	Rewritten int
	Elapsed   time.Duration
}

// Pixels returns the number of pixels processed.
func (s Stats) Pixels() int {
	return s.Prime + s.Rewritten
}

// Executor runs one worker per range and joins them.
type Executor struct {
	primes ports.Primes
	logger log.Logger
}

// NewExecutor creates an Executor using primes for every worker.
func NewExecutor(primes ports.Primes, logger log.Logger) *Executor {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Executor{primes: primes, logger: logger}
}

// Execute transforms pixels in place, one goroutine per range, and returns
// once every worker has finished. The ranges must tile pixels exactly.
// A worker that panics is reported as a *domain.WorkerError after all other
// workers have completed.
func (e *Executor) Execute(pixels []domain.Pixel, ranges []domain.Range, pair StrategyPair) (Stats, error) {
	if err := ValidatePartition(ranges, len(pixels)); err != nil {
		return Stats{}, err
	}

	started := time.Now()
	// Each worker writes only its own slot.
	results := make([]RangeStats, len(ranges))

	var g errgroup.Group
	for i, r := range ranges {
		i, r := i, r
		if r.Empty() {
			e.logger.Warn("worker has no pixels to transform",
				log.Int("worker", i),
				log.Int("pixels", len(pixels)),
				log.Int("workers", len(ranges)),
			)
		}
		g.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = &domain.WorkerError{Worker: i, Range: r, Cause: rec}
				}
			}()

			results[i] = transformRange(pixels, r, pair, e.primes)
			e.logger.Debug("range done",
				log.Int("worker", i),
				log.Stringer("range", r),
				log.Int("rewritten", results[i].Rewritten),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	stats := Stats{Ranges: results, Elapsed: time.Since(started)}
	for _, rs := range results {
		stats.Prime += rs.Prime
		stats.Rewritten += rs.Rewritten
	}
	return stats, nil
}

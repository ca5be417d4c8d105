package app

import (
	"math/big"

	"github.com/bft-labs/primeify/internal/domain"
	"github.com/bft-labs/primeify/internal/ports"
)

// RangeStats summarizes one worker's pass over its range.
type RangeStats struct {
	Range     domain.Range
	Prime     int // pixels left untouched
	Rewritten int // pixels replaced by the action
}

// transformRange applies pair to every pixel of r in ascending index order.
// It only touches pixels[r.Start:r.End].
func transformRange(pixels []domain.Pixel, r domain.Range, pair StrategyPair, primes ports.Primes) RangeStats {
	view := pixels[r.Start:r.End:r.End]
	stats := RangeStats{Range: r}

	var v big.Int
	for i := range view {
		pair.Extraction.extract(view[i], &v)
		if pair.Action.apply(primes, &v, &view[i]) {
			stats.Rewritten++
		} else {
			stats.Prime++
		}
	}
	return stats
}

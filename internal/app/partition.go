package app

import (
	"fmt"

	"github.com/bft-labs/primeify/internal/domain"
)

// Partition splits [0, length) into workers contiguous ranges of
// length/workers indices each. The final range also takes the remainder.
func Partition(length, workers int) ([]domain.Range, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidWorkerCount, workers)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidLength, length)
	}

	slice := length / workers
	ranges := make([]domain.Range, workers)
	for i := range ranges {
		start := i * slice
		ranges[i] = domain.Range{Start: start, End: start + slice}
	}
	ranges[workers-1].End += length % workers

	return ranges, nil
}

// ValidatePartition checks that ranges tile [0, length) in ascending order
// with no gaps and no overlaps. Workers rely on this for lock-free writes.
func ValidatePartition(ranges []domain.Range, length int) error {
	next := 0
	for i, r := range ranges {
		if r.Start != next || r.End < r.Start {
			return fmt.Errorf("%w: range %d is %s, expected start %d", domain.ErrInvalidPartition, i, r, next)
		}
		next = r.End
	}
	if next != length {
		return fmt.Errorf("%w: ranges cover [0,%d), buffer holds %d", domain.ErrInvalidPartition, next, length)
	}
	return nil
}

package domain

import "fmt"

// Range is a half-open interval [Start, End) of pixel buffer indices
// assigned to exactly one worker.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty returns true if the range covers no indices.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// String returns the range in interval notation.
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

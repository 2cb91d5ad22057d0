// SPDX-License-Identifier: Apache-2.0

package window

import (
	"fmt"
)

type Number interface {
	~int
}

// Range represents a half-open interval [Start, End) of positions in a
// sequence.
//
// See [Range.Check] for constraints on how this type should be used.
type Range[T Number] struct {
	Start, End T
}

// Of returns the range covering count positions beginning at start.
func Of[T Number](start, count T) Range[T] {
	return Range[T]{Start: start, End: start + count}
}

// Check asserts that the range starts at a non-negative position and
// that start does not follow end. Empty ranges are allowed.
func (r Range[T]) Check() error {
	if r.Start < 0 {
		return fmt.Errorf("bad range: start must not be negative [%d,%d)", r.Start, r.End)
	}
	if r.Start > r.End {
		return fmt.Errorf("bad range: start must not follow end [%d,%d)", r.Start, r.End)
	}
	return nil
}

func (r Range[T]) Len() T {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Has returns true if position i falls inside the range.
func (r Range[T]) Has(i T) bool {
	return i >= r.Start && i < r.End
}

// Within reports whether start and count describe a valid range inside a
// sequence of the given size. The end is never computed, so large inputs
// cannot overflow.
func Within[T Number](start, count, size T) bool {
	if start < 0 || count < 0 || start > size {
		return false
	}
	return count <= size-start
}

// Overlaps returns true if the two ranges share any common position. An
// empty range overlaps nothing.
func (r Range[T]) Overlaps(other Range[T]) bool {
	if r.Len() == 0 || other.Len() == 0 {
		return false
	}
	return r.Start < other.End && other.Start < r.End
}

// Split cuts a valid range into consecutive pieces of at most size
// positions. The final piece holds the remainder. Pieces are sized from
// the remaining length, so a size larger than the range yields a single
// piece.
func (r Range[T]) Split(size T) ([]Range[T], error) {
	if err := r.Check(); err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, fmt.Errorf("bad split size %d", size)
	}
	n := r.Len()
	parts := make([]Range[T], 0, n/size)
	start := r.Start
	for rest := n; rest > 0; {
		c := size
		if rest < c {
			c = rest
		}
		parts = append(parts, Of(start, c))
		start += c
		rest -= c
	}
	return parts, nil
}

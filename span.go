// SPDX-License-Identifier: Apache-2.0

// Package span provides Span, a bounds-checked window onto part of a
// slice. A Span never copies or owns its backing slice: writes through a
// Span are visible to every other Span and slice sharing the same
// backing array, and the caller must keep the backing slice alive for as
// long as its spans are in use.
//
// Spans carry no synchronization. Concurrent writers must either
// coordinate externally or operate on disjoint spans, such as the parts
// returned by [Span.Split].
package span

import (
	"fmt"

	"github.com/digitalocean/go-span/internal/window"
)

var errNilBacking = fmt.Errorf("nil backing slice: %w", ErrInvalidArgument)

// Span is a view of length elements of backing starting at offset.
// Copying a Span copies the view, not the elements.
//
// The zero value is an empty span.
type Span[T any] struct {
	backing []T
	offset  int
	length  int
}

// Of returns a span covering all of backing. A nil backing slice is
// rejected with [ErrInvalidArgument]; an empty, non-nil one is not.
func Of[T any](backing []T) (Span[T], error) {
	if backing == nil {
		return Span[T]{}, errNilBacking
	}
	return Span[T]{backing: backing, length: len(backing)}, nil
}

// New returns a span covering count elements of backing starting at
// index. It fails with [ErrInvalidArgument] for a nil backing slice and
// with a [*RangeError] if [index, index+count) does not fit in backing.
func New[T any](backing []T, index, count int) (Span[T], error) {
	if backing == nil {
		return Span[T]{}, errNilBacking
	}
	if !window.Within(index, count, len(backing)) {
		return Span[T]{}, &RangeError{Index: index, Count: count, Size: len(backing)}
	}
	return Span[T]{backing: backing, offset: index, length: count}, nil
}

func MustOf[T any](backing []T) Span[T] {
	s, err := Of(backing)
	if err != nil {
		panic(err)
	}
	return s
}

func MustNew[T any](backing []T, index, count int) Span[T] {
	s, err := New(backing, index, count)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Span[T]) Len() int { return s.length }

// Offset returns the position of the first element of the span within
// its backing slice.
func (s Span[T]) Offset() int { return s.offset }

// Get returns the element at position i of the span.
func (s Span[T]) Get(i int) (T, error) {
	if !s.bounds().Has(i) {
		var zero T
		return zero, &IndexError{Index: i, Length: s.length}
	}
	return s.backing[s.offset+i], nil
}

// Set stores v at position i of the span, writing through to the
// backing slice.
func (s Span[T]) Set(i int, v T) error {
	if !s.bounds().Has(i) {
		return &IndexError{Index: i, Length: s.length}
	}
	s.backing[s.offset+i] = v
	return nil
}

// Slice returns a span over count elements of s starting at index. The
// result shares the backing slice of s.
func (s Span[T]) Slice(index, count int) (Span[T], error) {
	if !window.Within(index, count, s.length) {
		return Span[T]{}, &RangeError{Index: index, Count: count, Size: s.length}
	}
	return Span[T]{backing: s.backing, offset: s.offset + index, length: count}, nil
}

// Split cuts s into consecutive, disjoint spans of size elements. The
// last span holds whatever remains and may be shorter. An empty span
// splits into no parts.
func (s Span[T]) Split(size int) ([]Span[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("split size %d: %w", size, ErrInvalidArgument)
	}
	ranges, err := window.Of(s.offset, s.length).Split(size)
	if err != nil {
		return nil, fmt.Errorf("split span: %w", err)
	}
	parts := make([]Span[T], 0, len(ranges))
	for _, r := range ranges {
		parts = append(parts, Span[T]{backing: s.backing, offset: r.Start, length: r.Len()})
	}
	return parts, nil
}

// Overlaps reports whether s and other share any element. Spans are only
// compared when their backing slices begin at the same element, as with
// b and b[:n]; spans over slices starting elsewhere in one array are
// treated as disjoint.
func (s Span[T]) Overlaps(other Span[T]) bool {
	if !s.sameBacking(other) {
		return false
	}
	return window.Of(s.offset, s.length).Overlaps(window.Of(other.offset, other.length))
}

func (s Span[T]) sameBacking(other Span[T]) bool {
	if len(s.backing) == 0 || len(other.backing) == 0 {
		return false
	}
	return &s.backing[0] == &other.backing[0]
}

// bounds is the range of valid logical indexes.
func (s Span[T]) bounds() window.Range[int] {
	return window.Of(0, s.length)
}

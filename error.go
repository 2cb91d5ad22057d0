// SPDX-License-Identifier: Apache-2.0

package span

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("out of range")
)

// IndexError reports an element access outside of a span.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d %s [0,%d)", e.Index, ErrOutOfRange.Error(), e.Length)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// RangeError reports a sub-range that does not fit inside the sequence it
// was taken from.
type RangeError struct {
	Index int
	Count int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range (index %d, count %d) %s for length %d",
		e.Index, e.Count, ErrOutOfRange.Error(), e.Size)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

func IsInvalidArgumentErr(err error) bool { return errors.Is(err, ErrInvalidArgument) }
func IsOutOfRangeErr(err error) bool      { return errors.Is(err, ErrOutOfRange) }

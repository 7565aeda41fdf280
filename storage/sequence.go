package storage

import (
	"cmp"
)

// Sequence is an append-only, 0-indexed run of fixed-width values backing
// one column.
//
// Columns hold a *Sequence for their whole lifetime and never write to it.
// The owner (the table's storage) may Append between queries, never while a
// query is in flight; Sequence does no locking of its own.
//
// Sortedness is tracked incrementally on Append so that a column declared
// naturally ordered can be checked against its data.
type Sequence[T cmp.Ordered] struct {
	values []T

	// sorted is true while values is non-decreasing.
	sorted bool
}

// NewSequence creates a sequence holding the given values.
func NewSequence[T cmp.Ordered](values ...T) *Sequence[T] {
	s := &Sequence[T]{
		values: make([]T, 0, max(len(values), 64)),
		sorted: true,
	}
	for _, v := range values {
		s.Append(v)
	}
	return s
}

// Append adds v at the end of the sequence.
func (s *Sequence[T]) Append(v T) {
	if s.sorted && len(s.values) > 0 && cmp.Less(v, s.values[len(s.values)-1]) {
		s.sorted = false
	}
	s.values = append(s.values, v)
}

// At returns the value at row. row must be < Len().
func (s *Sequence[T]) At(row uint32) T {
	return s.values[row]
}

// Len returns the number of values.
func (s *Sequence[T]) Len() uint32 {
	return uint32(len(s.values))
}

// Values returns a read-only view of the backing slice.
// The slice is invalidated by the next Append.
func (s *Sequence[T]) Values() []T {
	return s.values
}

// IsSorted reports whether the values are non-decreasing by row offset.
func (s *Sequence[T]) IsSorted() bool {
	return s.sorted
}

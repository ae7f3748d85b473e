package sequence

import (
	"fmt"
	"strings"
)

// Sequence is a generic, mutable container over a slice-backed store.
//
// All operations modify the receiver in place; none returns a new
// Sequence. The backing slice's length is the logical length of the
// container and its capacity is the physical store — growth happens on
// demand through append, and removal truncates rather than leaving holes.
//
// # Creating a sequence
//
//	s := sequence.New(1, 2, 3)
//	s := sequence.From([]string{"a", "b", "c"})
//	s := sequence.Empty[int]()
//
// A Sequence is not safe for concurrent use; see the package documentation
// for the mutability and equality contracts.
type Sequence[T comparable] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Sequence from a variadic list of items (copied).
func New[T comparable](items ...T) *Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Sequence[T]{items: dst}
}

// From creates a Sequence from a slice (the slice is copied, so later
// mutations of either side do not alias the other).
func From[T comparable](items []T) *Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Sequence[T]{items: dst}
}

// Empty creates an empty Sequence of type T.
func Empty[T comparable]() *Sequence[T] {
	return &Sequence[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements in the sequence.
func (s *Sequence[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the sequence contains no elements.
func (s *Sequence[T]) IsEmpty() bool { return len(s.items) == 0 }

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (s *Sequence[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(s.items) {
		return zero, false
	}
	return s.items[index], true
}

// All returns a copy of the elements in index order.
func (s *Sequence[T]) All() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove
// ─────────────────────────────────────────────────────────────────────────────

// Push appends items in the order given and returns the new length.
// Pushing zero items is a no-op that returns the current length.
func (s *Sequence[T]) Push(items ...T) int {
	s.items = append(s.items, items...)
	return len(s.items)
}

// Pop removes and returns the last element.
// Returns the zero value and false if the sequence is empty.
func (s *Sequence[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	item := s.items[n-1]
	s.items[n-1] = zero // release the slot so the backing array does not retain it
	s.items = s.items[:n-1]
	return item, true
}

// Shift removes and returns the first element, moving every remaining
// element down one index. Returns the zero value and false if the sequence
// is empty. Cost is linear in Len.
func (s *Sequence[T]) Shift() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	item := s.items[0]
	copy(s.items, s.items[1:])
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return item, true
}

// Unshift inserts items at the front in the order given, moving every
// existing element up by len(items) indices, and returns the new length.
// Cost is linear in Len plus the number of inserted items.
func (s *Sequence[T]) Unshift(items ...T) int {
	k := len(items)
	if k == 0 {
		return len(s.items)
	}
	n := len(s.items)
	s.items = append(s.items, make([]T, k)...)
	// copy is memmove-like, so the overlapping upward shift is lossless.
	copy(s.items[k:], s.items[:n])
	copy(s.items, items)
	return len(s.items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether the sequence holds an element equal to value
// under ==. The scan is linear and stops at the first match.
func (s *Sequence[T]) Contains(value T) bool {
	return s.IndexOf(value) >= 0
}

// IndexOf returns the index of the first element equal to value under ==,
// or -1 when no element matches.
func (s *Sequence[T]) IndexOf(value T) int {
	for i, item := range s.items {
		if item == value {
			return i
		}
	}
	return -1
}

// First returns the first element, optionally matching fns[0].
// The predicate is evaluated once per visited element in index order and
// the scan stops at the first match. Returns the zero value and false when
// the sequence is empty or no element satisfies the predicate.
func (s *Sequence[T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range s.items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[0], true
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index, s) for every element in ascending index
// order. The sequence reference is passed for read access; mutating the
// sequence from inside fn is unsupported (see the package documentation).
func (s *Sequence[T]) Each(fn func(T, int, *Sequence[T])) {
	// Re-check the live length every step so a misbehaving callback can
	// never drive the index out of range.
	for i := 0; i < len(s.items); i++ {
		fn(s.items[i], i, s)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// Sort reorders the elements in place using an adjacent-exchange (bubble)
// sort: up to Len-1 passes over a shrinking prefix, swapping neighbours
// for which cmp(a, b) > 0, stopping early once a pass makes no swap.
//
// For a well-formed comparator the final order satisfies
// cmp(items[i], items[i+1]) <= 0 for every adjacent pair. The sort is
// quadratic and not guaranteed stable; equal elements may be reordered.
func (s *Sequence[T]) Sort(cmp func(a, b T) int) {
	n := len(s.items)
	for pass := 0; pass < n-1; pass++ {
		swapped := false
		for i := 0; i < n-1-pass; i++ {
			if cmp(s.items[i], s.items[i+1]) > 0 {
				s.items[i], s.items[i+1] = s.items[i+1], s.items[i]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// Implode joins all elements into a string using sep, converting each
// element with fn.
func (s *Sequence[T]) Implode(sep string, fn func(T) string) string {
	parts := make([]string, len(s.items))
	for i, item := range s.items {
		parts[i] = fn(item)
	}
	return strings.Join(parts, sep)
}

// String returns the elements' default textual representations joined by
// ", ", with no leading or trailing separator; an empty sequence renders
// as the empty string. It implements [fmt.Stringer].
func (s *Sequence[T]) String() string {
	return s.Implode(", ", func(item T) string { return fmt.Sprintf("%v", item) })
}

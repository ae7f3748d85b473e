package sequence

// This file contains package-level comparator constructors for use with
// [Sequence.Sort]. They need the cmp.Ordered constraint, which is stricter
// than the comparable constraint Sequence carries, and Go generics do not
// allow methods to introduce their own type parameters — so they must be
// stand-alone functions:
//
//	s := sequence.New(5, 3, 1, 4, 2)
//	s.Sort(sequence.Ascending[int]())

import "cmp"

// Ascending returns a comparator that orders values from smallest to
// largest under <.
func Ascending[T cmp.Ordered]() func(a, b T) int {
	return cmp.Compare[T]
}

// Descending returns a comparator that orders values from largest to
// smallest under <.
func Descending[T cmp.Ordered]() func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(b, a) }
}

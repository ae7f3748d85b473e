// Package sequence provides a generic, mutable sequence container that
// reimplements the familiar dynamic-array operations (push, pop, shift,
// unshift, contains, find, each, sort, join) over a slice-backed store.
//
// # Overview
//
// The central type is [Sequence][T], a growable container mutated in place:
//
//	s := sequence.New(1, 2, 3)
//	s.Unshift(0)                      // → [0 1 2 3]
//	last, _ := s.Pop()                // → 3
//	first, _ := s.Shift()             // → 0
//	s.Sort(sequence.Ascending[int]()) // → [1 2]
//	fmt.Println(s)                    // → "1, 2"
//
// # Mutability
//
// Unlike an immutable pipeline collection, every operation on a Sequence
// modifies the receiver. A Sequence is therefore NOT safe for concurrent
// use: callers sharing one across goroutines must serialize access
// themselves. In exchange, Push/Pop are amortised O(1) and no operation
// allocates a new container.
//
// # Equality semantics
//
// The element type is constrained to comparable, and [Sequence.Contains]
// and [Sequence.IndexOf] use Go's == operator: shallow value equality for
// structs and arrays, identity for pointers and channels. Elements of an
// interface type panic at runtime if their dynamic type is not comparable,
// which is the standard Go contract for ==. For predicate-based lookup
// that sidesteps == entirely, use [Sequence.First] with a match function.
//
// # Callbacks and iteration
//
// [Sequence.Each], [Sequence.First] and [Sequence.Sort] invoke caller
// callbacks synchronously. Mutating the sequence from inside one of those
// callbacks is unsupported: the result is unspecified (elements may be
// skipped or visited after they moved), though index bounds stay
// consistent and no access ever reaches outside the live elements.
package sequence

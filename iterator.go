package randq

import (
	"github.com/randomizedcoder/go-randomized-queue/internal/buffer"
)

// permutation maps logical iteration position to physical slot. One
// instance is shared by every iterator derived from a single Iterate
// call and is never mutated after construction.
type permutation struct {
	idx []int
}

// Iter is a random-access iterator over one random permutation of a
// RandomizedQueue's elements.
//
// The zero value is a singular iterator: it compares equal only to other
// singular iterators and supports no other operation. Valid iterators
// come from RandomizedQueue.Iterate or Clone and cover logical positions
// [0, n]; position n is the end position and is not dereferenceable.
//
// Iterators are invalidated by any structural mutation of the queue.
// Writing an element through Ref or At is not structural: it is visible
// to every other view of the queue and invalidates nothing.
type Iter[T any] struct {
	buf  *buffer.Buffer[T]
	perm *permutation // nil for a singular iterator
	pos  int
}

// Clone returns an independent iterator at the same position sharing the
// same permutation.
func (it *Iter[T]) Clone() *Iter[T] {
	return &Iter[T]{buf: it.buf, perm: it.perm, pos: it.pos}
}

// Next moves one position forward.
func (it *Iter[T]) Next() {
	it.pos++
}

// Prev moves one position backward.
func (it *Iter[T]) Prev() {
	it.pos--
}

// Advance moves n positions forward, backward for negative n. O(1).
func (it *Iter[T]) Advance(n int) {
	it.pos += n
}

// Ref returns a pointer to the element at the current position. The
// iterator must not be singular or at the end position.
func (it *Iter[T]) Ref() *T {
	return it.buf.At(it.perm.idx[it.pos])
}

// At returns a pointer to the element n positions after the current one.
// The resulting position must be dereferenceable.
func (it *Iter[T]) At(n int) *T {
	return it.buf.At(it.perm.idx[it.pos+n])
}

// Equal reports whether both iterators denote the same logical position
// in the same permutation. Two singular iterators compare equal;
// iterators from separate Iterate calls never do.
func (it *Iter[T]) Equal(other *Iter[T]) bool {
	return it.perm == other.perm && it.pos == other.pos
}

// Less reports whether it precedes other. Both iterators must share a
// permutation.
func (it *Iter[T]) Less(other *Iter[T]) bool {
	return it.pos < other.pos
}

// Distance returns the signed number of positions from other to it, so
// end.Distance(begin) equals the element count at the time Iterate was
// called. Both iterators must share a permutation.
func (it *Iter[T]) Distance(other *Iter[T]) int {
	return it.pos - other.pos
}

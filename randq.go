// Package randq implements a randomized queue: a container with amortized
// O(1) insertion, uniformly random removal, uniformly random sampling, and
// full traversal in a freshly shuffled order on every iteration request.
//
// This package offers three views of the stored elements:
//   - Dequeue / Sample: uniform draws, with and without removal
//   - Iterate: an explicit random-access iterator pair (see Iter)
//   - All: a range-over-func sequence for ordinary for-range loops
//
// # Concurrency (IMPORTANT)
//
// A single RandomizedQueue is NOT safe for concurrent mutation without
// external synchronization. Distinct instances share no state (each owns
// its random source), so different goroutines may use different instances
// without coordination.
package randq

import (
	"errors"
	"iter"
	"math/rand/v2"

	"github.com/randomizedcoder/go-randomized-queue/internal/buffer"
)

// ErrEmptyQueue is returned by Dequeue and Sample on an empty queue.
// It is the only reportable error in this package; every other misuse is
// a documented precondition violation.
var ErrEmptyQueue = errors.New("randq: empty queue")

// RandomizedQueue stores elements of type T in a contiguous resizable
// buffer. The physical arrangement of elements is incidental: the only
// observable orders are the random ones produced by Dequeue, Sample, and
// iteration.
type RandomizedQueue[T any] struct {
	buf *buffer.Buffer[T]
	rng *rand.Rand
}

// New creates an empty RandomizedQueue seeded from the process-wide
// random source.
func New[T any]() *RandomizedQueue[T] {
	return NewWithRand[T](rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewWithRand creates an empty RandomizedQueue drawing all randomness
// (dequeue and sample indices, iteration permutations) from rng.
//
// Passing a fixed-seed source makes every draw reproducible, which the
// uniformity tests rely on.
func NewWithRand[T any](rng *rand.Rand) *RandomizedQueue[T] {
	return &RandomizedQueue[T]{
		buf: buffer.New[T](),
		rng: rng,
	}
}

// Enqueue adds v to the queue. Amortized O(1); always succeeds.
//
// Enqueue invalidates all outstanding iterators over this queue.
func (q *RandomizedQueue[T]) Enqueue(v T) {
	q.buf.Push(v)
}

// Dequeue removes and returns a uniformly random element. Every live
// element is selected with probability exactly 1/Len(), independent of
// insertion history. Returns ErrEmptyQueue on an empty queue.
//
// Dequeue invalidates all outstanding iterators over this queue.
func (q *RandomizedQueue[T]) Dequeue() (T, error) {
	if q.buf.Len() == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.buf.RemoveAt(q.rng.IntN(q.buf.Len())), nil
}

// Sample returns a copy of a uniformly random element without removing
// it. Consecutive calls are independent draws with replacement. Returns
// ErrEmptyQueue on an empty queue.
func (q *RandomizedQueue[T]) Sample() (T, error) {
	if q.buf.Len() == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return *q.buf.At(q.rng.IntN(q.buf.Len())), nil
}

// Len returns the number of stored elements.
func (q *RandomizedQueue[T]) Len() int {
	return q.buf.Len()
}

// Empty reports whether the queue holds no elements.
func (q *RandomizedQueue[T]) Empty() bool {
	return q.buf.Len() == 0
}

// Iterate returns a begin/end iterator pair over a freshly shuffled
// permutation of the current elements. The pair and every clone derived
// from it share that one permutation, so repeated traversals between
// them observe the identical order. A separate Iterate call produces an
// independent permutation.
//
// Any Enqueue or Dequeue invalidates the returned iterators.
func (q *RandomizedQueue[T]) Iterate() (begin, end *Iter[T]) {
	p := q.permute()
	begin = &Iter[T]{buf: q.buf, perm: p}
	end = &Iter[T]{buf: q.buf, perm: p, pos: len(p.idx)}
	return begin, end
}

// All returns a single-use sequence visiting every element exactly once
// in a fresh random order. It yields pointers into the queue's storage,
// so elements can be updated in place:
//
//	for x := range q.All() {
//		*x *= *x
//	}
//
// The queue must not be structurally mutated while ranging.
func (q *RandomizedQueue[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		p := q.permute()
		for _, slot := range p.idx {
			if !yield(q.buf.At(slot)) {
				return
			}
		}
	}
}

// permute materializes one shuffled logical-to-physical index mapping
// sized to the current element count.
func (q *RandomizedQueue[T]) permute() *permutation {
	idx := make([]int, q.buf.Len())
	for i := range idx {
		idx[i] = i
	}
	q.rng.Shuffle(len(idx), func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})
	return &permutation{idx: idx}
}

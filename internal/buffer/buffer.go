// Package buffer provides the contiguous resizable store backing the
// randomized queue.
//
// Live elements always occupy slots [0, Len()). Capacity doubles when an
// insert finds the store full and shrinks to twice the live count once
// occupancy drops to a quarter, so both Push and RemoveAt are amortized
// O(1) and alternating insert/remove near a capacity boundary cannot
// thrash between grow and shrink.
package buffer

// Buffer is a contiguous store with swap-and-pop removal.
//
// Physical slot order is not part of any contract: RemoveAt moves the
// last live element into the vacated slot. Callers that need a stable
// traversal order must impose one externally.
type Buffer[T any] struct {
	slots []T
	size  int
}

// New creates an empty Buffer with zero capacity.
func New[T any]() *Buffer[T] {
	return &Buffer[T]{}
}

// Push stores v after the last live element, growing the store if full.
// Amortized O(1).
func (b *Buffer[T]) Push(v T) {
	if b.size == len(b.slots) {
		b.realloc(max(2*len(b.slots), 1))
	}
	b.slots[b.size] = v
	b.size++
}

// RemoveAt removes and returns the element at physical slot i by moving
// the last live element into its place.
//
// A shrink pass costs O(Len()) but runs at most once per Θ(Len())
// removals, keeping the amortized cost O(1). The shrink target of twice
// the live count guarantees the next Push never triggers an immediate
// grow.
func (b *Buffer[T]) RemoveAt(i int) T {
	out := b.slots[i]
	b.size--
	b.slots[i] = b.slots[b.size]

	// Zero the vacated slot so released elements do not pin memory.
	var zero T
	b.slots[b.size] = zero

	if b.size <= len(b.slots)/4 && len(b.slots) > 1 {
		b.realloc(max(2*b.size, 1))
	}
	return out
}

// At returns a pointer to the live element at physical slot i.
//
// i must be in [0, Len()). This is the hot path shared by sampling and
// iteration; no bounds check beyond the runtime's is performed.
func (b *Buffer[T]) At(i int) *T {
	return &b.slots[i]
}

// Len returns the live element count.
func (b *Buffer[T]) Len() int {
	return b.size
}

// Cap returns the current slot capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

func (b *Buffer[T]) realloc(n int) {
	next := make([]T, n)
	copy(next, b.slots[:b.size])
	b.slots = next
}

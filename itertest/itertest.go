// Package itertest validates iterator implementations against the
// forward, bidirectional, and random-access iterator contracts.
//
// The checks consume only the Iterator interface, so any iterator type
// whose pointer methods match can be validated unmodified:
//
//	begin, end := q.Iterate()
//	itertest.Basic[int](t, begin, end)
//
// Forward covers the weakest tier (copying, equality axioms, multipass
// stability), Bidirectional adds reverse traversal, and RandomAccess adds
// position arithmetic. Basic runs all three.
package itertest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Iterator is the contract checked by this package. I is the concrete
// iterator type itself (in pointer form), which keeps every operation
// fully typed instead of erased behind an interface value.
type Iterator[T any, I any] interface {
	// Clone returns an independent iterator at the same position.
	Clone() I

	// Next and Prev move one position forward / backward.
	Next()
	Prev()

	// Advance moves n positions forward, backward for negative n.
	Advance(n int)

	// Distance returns the signed position delta from other to the
	// receiver.
	Distance(other I) int

	// Ref returns a pointer to the current element.
	Ref() *T

	// At returns a pointer to the element n positions ahead.
	At(n int) *T

	// Equal reports the same position in the same traversal.
	Equal(other I) bool

	// Less reports strict position ordering within one traversal.
	Less(other I) bool
}

// Multipass checks that repeated traversals of the same begin/end pair
// observe the identical element sequence. The range must be non-empty.
func Multipass[T comparable, I Iterator[T, I]](tb testing.TB, begin, end I) {
	tb.Helper()

	var expected []T
	for it := begin.Clone(); !it.Equal(end); it.Next() {
		expected = append(expected, *it.Ref())
	}
	require.NotEmpty(tb, expected, "multipass check needs a non-empty range")

	const passes = 10
	for pass := 0; pass < passes; pass++ {
		i := 0
		for it := begin.Clone(); !it.Equal(end); it.Next() {
			require.Less(tb, i, len(expected), "pass %d ran past the recorded length", pass)
			require.Equal(tb, expected[i], *it.Ref(), "pass %d diverged at position %d", pass, i)
			i++
		}
		require.Equal(tb, len(expected), i, "pass %d visited the wrong number of elements", pass)
	}
}

// Forward checks copyability, the equality axioms, single-step advance,
// and multipass stability over [begin, end).
func Forward[T comparable, I Iterator[T, I]](tb testing.TB, begin, end I) {
	tb.Helper()
	require.False(tb, begin.Equal(end), "forward contract needs a non-empty range")

	// Equality is reflexive, symmetric, and transitive.
	a, b, c := begin.Clone(), begin.Clone(), begin.Clone()
	require.True(tb, a.Equal(a))
	require.True(tb, a.Equal(b) && b.Equal(a))
	require.True(tb, b.Equal(c) && a.Equal(c))
	require.Zero(tb, b.Distance(a))

	// Advancing a clone does not move the iterator it came from.
	d := begin.Clone()
	d.Next()
	require.False(tb, d.Equal(begin))
	require.True(tb, begin.Equal(a))

	// Two independently advanced clones stay in lockstep.
	e := begin.Clone()
	e.Next()
	require.True(tb, d.Equal(e))
	if !d.Equal(end) {
		require.Equal(tb, *d.Ref(), *e.Ref())
	}

	Multipass[T](tb, begin, end)
}

// Bidirectional checks that Prev inverts Next and that a reverse walk
// from end visits the recorded forward positions in reverse order.
func Bidirectional[T comparable, I Iterator[T, I]](tb testing.TB, begin, end I) {
	tb.Helper()
	require.False(tb, begin.Equal(end), "bidirectional contract needs a non-empty range")

	a := begin.Clone()
	a.Next()
	a.Prev()
	require.True(tb, a.Equal(begin), "Prev must invert Next")

	var reference []I
	for it := begin.Clone(); !it.Equal(end); it.Next() {
		reference = append(reference, it.Clone())
	}

	back := end.Clone()
	for i := len(reference) - 1; i >= 0; i-- {
		back.Prev()
		require.True(tb, back.Equal(reference[i]), "reverse walk missed position %d", i)
		require.Equal(tb, *reference[i].Ref(), *back.Ref())
	}
	require.True(tb, back.Equal(begin))
}

// RandomAccess checks iterator arithmetic: Advance against repeated
// Next, Distance in both directions, subscripting, and the ordering
// relation. The range must hold at least two elements.
func RandomAccess[T comparable, I Iterator[T, I]](tb testing.TB, begin, end I) {
	tb.Helper()

	l := end.Distance(begin)
	require.GreaterOrEqual(tb, l, 2, "random-access contract needs at least two elements")
	n := l - 1

	// Advance(n) lands where n single steps land.
	f := begin.Clone()
	f.Advance(n)
	step := begin.Clone()
	for j := 0; j < n; j++ {
		step.Next()
	}
	require.True(tb, step.Equal(f))

	// Distance is signed and consistent from both ends.
	require.Equal(tb, n, f.Distance(begin))
	require.Equal(tb, -n, begin.Distance(f))

	// Advance(-n) returns to the origin.
	r := f.Clone()
	r.Advance(-n)
	require.True(tb, r.Equal(begin))

	// Subscript agrees with dereference after offsetting.
	require.Equal(tb, *f.Ref(), *begin.At(n))

	// Ordering relation.
	require.True(tb, begin.Less(f))
	require.True(tb, begin.Less(end))
	require.False(tb, f.Less(begin))
	require.False(tb, end.Less(begin))
	require.False(tb, begin.Less(begin.Clone()))
}

// Basic runs all three contract tiers over [begin, end).
func Basic[T comparable, I Iterator[T, I]](tb testing.TB, begin, end I) {
	tb.Helper()
	Forward[T](tb, begin, end)
	Bidirectional[T](tb, begin, end)
	RandomAccess[T](tb, begin, end)
}

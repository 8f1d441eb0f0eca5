package randq_test

import (
	"testing"

	ring "github.com/randomizedcoder/go-lock-free-ring"

	randq "github.com/randomizedcoder/go-randomized-queue"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var (
	sinkInt  int
	sinkErr  error
	sinkBool bool
)

// ============================================================================
// Core operations
// ============================================================================

func BenchmarkEnqueueDequeue(b *testing.B) {
	q := randq.New[int]()
	for i := 0; i < 1024; i++ {
		q.Enqueue(i)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var v int
	var err error
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		v, err = q.Dequeue()
	}
	sinkInt = v
	sinkErr = err
}

func BenchmarkSample(b *testing.B) {
	q := randq.New[int]()
	for i := 0; i < 1024; i++ {
		q.Enqueue(i)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var v int
	var err error
	for i := 0; i < b.N; i++ {
		v, err = q.Sample()
	}
	sinkInt = v
	sinkErr = err
}

func BenchmarkEnqueue(b *testing.B) {
	q := randq.New[int]()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
	}
	sinkInt = q.Len()
}

// ============================================================================
// Iteration: permutation generation dominates small traversals
// ============================================================================

func benchmarkIterate(b *testing.B, size int) {
	q := randq.New[int]()
	for i := 0; i < size; i++ {
		q.Enqueue(i)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var sum int
	for i := 0; i < b.N; i++ {
		sum = 0
		for x := range q.All() {
			sum += *x
		}
	}
	sinkInt = sum
}

func BenchmarkIterate_Size16(b *testing.B)   { benchmarkIterate(b, 16) }
func BenchmarkIterate_Size1024(b *testing.B) { benchmarkIterate(b, 1024) }

func BenchmarkIteratorStep(b *testing.B) {
	q := randq.New[int]()
	for i := 0; i < 1024; i++ {
		q.Enqueue(i)
	}
	begin, end := q.Iterate()
	b.ReportAllocs()
	b.ResetTimer()

	var sum int
	it := begin.Clone()
	for i := 0; i < b.N; i++ {
		if it.Equal(end) {
			it = begin.Clone()
		}
		sum += *it.Ref()
		it.Next()
	}
	sinkInt = sum
}

// ============================================================================
// Baseline: randomized churn vs FIFO churn (go-lock-free-ring, 1 shard)
// ============================================================================
//
// The ring gives the cost floor for a queue that pops in arrival order;
// the delta against BenchmarkEnqueueDequeue is the price of the uniform
// random draw plus swap-and-pop.

func BenchmarkBaseline_FIFORing(b *testing.B) {
	r, err := ring.NewShardedRing(2048, 1)
	if err != nil {
		b.Fatalf("NewShardedRing failed: %v", err)
	}
	for i := 0; i < 1024; i++ {
		r.Write(0, i)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var ok bool
	for i := 0; i < b.N; i++ {
		ok = r.Write(0, i)
		r.TryRead()
	}
	sinkBool = ok
}

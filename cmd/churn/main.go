// Command churn compares randomized-queue churn against a FIFO ring
// baseline.
//
// Usage:
//
//	go run ./cmd/churn -n 1000000 -size 1024
package main

import (
	"flag"
	"fmt"
	"time"

	ring "github.com/randomizedcoder/go-lock-free-ring"

	randq "github.com/randomizedcoder/go-randomized-queue"
)

func main() {
	iterations := flag.Int("n", 1_000_000, "number of enqueue+dequeue iterations")
	size := flag.Int("size", 1024, "working-set size")
	flag.Parse()

	fmt.Printf("Benchmarking churn (%d iterations, working set=%d)\n", *iterations, *size)
	fmt.Println("─────────────────────────────────────────────────")

	// Randomized queue: enqueue + uniformly random dequeue
	q := randq.New[int]()
	for i := 0; i < *size; i++ {
		q.Enqueue(i)
	}
	start := time.Now()
	for i := 0; i < *iterations; i++ {
		q.Enqueue(i)
		if _, err := q.Dequeue(); err != nil {
			panic(err)
		}
	}
	randDur := time.Since(start)

	// FIFO baseline: lock-free ring, single shard
	r, err := ring.NewShardedRing(uint64(*size*2), 1)
	if err != nil {
		panic(err)
	}
	for i := 0; i < *size; i++ {
		r.Write(0, i)
	}
	start = time.Now()
	for i := 0; i < *iterations; i++ {
		for !r.Write(0, i) {
		}
		r.TryRead()
	}
	fifoDur := time.Since(start)

	// Results
	randPerOp := float64(randDur.Nanoseconds()) / float64(*iterations)
	fifoPerOp := float64(fifoDur.Nanoseconds()) / float64(*iterations)

	fmt.Printf("\nResults (enqueue + dequeue per iteration):\n")
	fmt.Printf("  RandomizedQueue:  %v (%.2f ns/op)\n", randDur, randPerOp)
	fmt.Printf("  FIFO ring:        %v (%.2f ns/op)\n", fifoDur, fifoPerOp)

	if fifoPerOp < randPerOp {
		fmt.Printf("\n  Random-removal cost:  %.2fx vs FIFO\n", randPerOp/fifoPerOp)
	} else {
		fmt.Printf("\n  Speedup:  %.2fx (RandomizedQueue faster)\n", fifoPerOp/randPerOp)
	}

	// Extrapolate to ops/second
	fmt.Printf("\nThroughput (theoretical max):\n")
	fmt.Printf("  RandomizedQueue:  %.2f M ops/sec\n", 1000/randPerOp)
	fmt.Printf("  FIFO ring:        %.2f M ops/sec\n", 1000/fifoPerOp)
}

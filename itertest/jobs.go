package itertest

import (
	"sync"
	"testing"
)

// Job pairs a range producer with the conformance check to run over it.
//
// Range is called on the job's own goroutine, so each job should build
// its range from an independently constructed container; ranges over a
// container shared between jobs would need external synchronization the
// checks do not provide.
type Job[T any, I Iterator[T, I]] struct {
	Range func() (begin, end I)
	Test  func(tb testing.TB, begin, end I)
}

// RunJobs runs every job on its own goroutine and waits for all of them
// to finish. Failures are reported through tb, which is safe for
// concurrent use.
func RunJobs[T any, I Iterator[T, I]](tb testing.TB, jobs []Job[T, I]) {
	tb.Helper()
	tb.Logf("starting %d iterator jobs", len(jobs))

	var wg sync.WaitGroup
	for _, j := range jobs {
		wg.Add(1)
		go func(j Job[T, I]) {
			defer wg.Done()
			begin, end := j.Range()
			j.Test(tb, begin, end)
		}(j)
	}
	wg.Wait()
}

// Package batch runs many (A, B, k) alignment problems concurrently,
// comparing the fast sparse engine against the slow oracle on each one. A
// pool of worker goroutines pulls jobs off a channel and writes each
// result directly into its own index of a pre-sized slice, which gives
// O(1) in-order placement without needing a priority queue or broadcast
// condition to handle out-of-order completion.
package batch

import (
	"context"
	"runtime"
	"sync"

	"github.com/pbnjay/memory"

	"github.com/fpavetic/lcskpp/engine"
	"github.com/fpavetic/lcskpp/oracle"
)

// Problem is one alignment to run: A and B over k-mer size K, for both the
// LCSk and LCSk++ flavors.
type Problem struct {
	A, B string
	K    int
}

// Result pairs a Problem's fast-engine outcome with the oracle's, so a
// caller can check the optimality property (len(Fast) == Oracle) across a
// batch without re-running anything serially.
type Result struct {
	Index int

	FastLcsk      [][2]int
	FastLcskErr   error
	OracleLcskLen int

	FastLcskpp      [][2]int
	FastLcskppErr   error
	OracleLcskppLen int
}

// Options controls how Run sizes its worker pool.
type Options struct {
	// Workers is the number of worker goroutines. 0 picks a count from
	// runtime.GOMAXPROCS and available memory (see defaultWorkers).
	Workers int
}

// defaultWorkers mirrors parallel.DefaultNumWorkers's "0 means
// GOMAXPROCS" rule, but also caps the pool so a batch of very large
// problems (the oracle is O(|A|*|B|)) can't outgrow available RAM: each
// worker budgets roughly 64MB of scratch space for the oracle's O(n*m)
// tables.
func defaultWorkers() int {
	n := runtime.GOMAXPROCS(0)
	const perWorker = 64 << 20
	if avail := memory.FreeMemory(); avail > 0 {
		if byMem := int(avail / perWorker); byMem < n {
			n = byMem
		}
	}
	if n < 1 {
		n = 1
	}
	return n
}

type job struct {
	index   int
	problem Problem
}

// Run solves every problem in problems, splitting work across a pool of
// worker goroutines, and returns one Result per problem in input order.
// It stops launching new work (but lets in-flight jobs finish) if ctx is
// canceled; unfinished problems are omitted from the returned slice's
// later positions only in the sense that their Result remains the zero
// value.
func Run(ctx context.Context, problems []Problem, opts Options) []Result {
	if len(problems) == 0 {
		return nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers()
	}
	if workers > len(problems) {
		workers = len(problems)
	}

	jobs := make(chan job, workers)
	results := make([]Result, len(problems))

	done := make(chan struct{})
	go func() {
		defer close(jobs)
		for i, p := range problems {
			select {
			case jobs <- job{index: i, problem: p}:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = solve(j.index, j.problem)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		<-done // workers drain jobs (already closed) and exit promptly
	}

	return results
}

func solve(index int, p Problem) Result {
	r := Result{Index: index}

	r.FastLcsk, r.FastLcskErr = engine.Run(p.A, p.B, p.K, false)
	r.OracleLcskLen, _ = oracle.LcskSlow(p.A, p.B, p.K)

	r.FastLcskpp, r.FastLcskppErr = engine.Run(p.A, p.B, p.K, true)
	r.OracleLcskppLen, _ = oracle.LcskppSlow(p.A, p.B, p.K)

	return r
}

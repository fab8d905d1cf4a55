// Command lcskpp-stats is the Go analogue of the original source's
// test_lcsk.cc simulation driver: it generates many random (A, B) pairs
// (optionally B as a point-mutated copy of A, via randdna.Mutate) and runs
// them through batch.Run, reporting the mean LCSk++ length (not its full
// distribution), timing, and memory use. It also doubles as experiment/stats_fasta.cc's
// equivalent when given -fasta: a single real sequence aligned against
// itself.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/pbnjay/memory"

	"github.com/fpavetic/lcskpp/batch"
	"github.com/fpavetic/lcskpp/fastaio"
	"github.com/fpavetic/lcskpp/randdna"
)

func main() {
	stringLen := flag.Int("len", 100, "length of each random sequence")
	k := flag.Int("k", 3, "k-mer block size")
	runs := flag.Int("runs", 10000, "number of simulated pairs")
	pErr := flag.Float64("perr", 0.1, "per-base mutation probability; negative means independent random B")
	workers := flag.Int("workers", 0, "worker goroutines (0 = auto, sized from available memory)")
	fastaPath := flag.String("fasta", "", "instead of random pairs, self-align the first record of this FASTA(.gz) file")
	seed := flag.Int64("seed", 1603, "random seed")
	flag.Parse()

	if *fastaPath != "" {
		runFastaMode(*fastaPath, *k)
		return
	}

	rng := rand.New(rand.NewSource(*seed))
	problems := make([]batch.Problem, *runs)
	for i := range problems {
		a := randdna.Random(*stringLen, rng)
		b := a
		if *pErr < 0 {
			b = randdna.Random(*stringLen, rng)
		} else {
			b = randdna.Mutate(a, *pErr, rng)
		}
		problems[i] = batch.Problem{A: a, B: b, K: *k}
	}

	bold := color.New(color.Bold)
	bold.Printf("running %d simulations (len=%d k=%d pErr=%.2f)\n", *runs, *stringLen, *k, *pErr)

	start := time.Now()
	results := batch.Run(context.Background(), problems, batch.Options{Workers: *workers})
	elapsed := time.Since(start)

	report(results, elapsed)
}

func runFastaMode(path string, k int) {
	rc, err := fastaio.Open(path)
	if err != nil {
		log.Fatalf("lcskpp-stats: %v", err)
	}
	defer rc.Close()

	records, err := fastaio.ReadSequences(rc)
	if err != nil {
		log.Fatalf("lcskpp-stats: %v", err)
	}
	if len(records) == 0 {
		log.Fatalf("lcskpp-stats: %s contains no usable ACGT sequence", path)
	}
	seq := records[0].Sequence

	start := time.Now()
	results := batch.Run(context.Background(), []batch.Problem{{A: seq, B: seq, K: k}}, batch.Options{})
	elapsed := time.Since(start)

	fmt.Printf("n=%d lcskpp_len=%d\n", len(seq), len(results[0].FastLcskpp))
	report(results, elapsed)
}

func report(results []batch.Result, elapsed time.Duration) {
	var mismatches int
	lengths := make([]int, 0, len(results))
	for _, r := range results {
		if r.FastLcskErr != nil || r.FastLcskppErr != nil {
			mismatches++
			continue
		}
		if len(r.FastLcsk) != r.OracleLcskLen || len(r.FastLcskpp) != r.OracleLcskppLen {
			mismatches++
			continue
		}
		lengths = append(lengths, len(r.FastLcskpp))
	}

	sort.Ints(lengths)

	var sum float64
	for _, l := range lengths {
		sum += float64(l)
	}
	mean := 0.0
	if len(lengths) > 0 {
		mean = sum / float64(len(lengths))
	}

	errColor := color.New(color.FgRed)
	okColor := color.New(color.FgGreen)

	fmt.Printf("elapsed=%s throughput=%.0f pairs/s\n", elapsed, float64(len(results))/elapsed.Seconds())
	fmt.Printf("expected_lcskpp_len=%.3f\n", mean)
	if mismatches > 0 {
		errColor.Printf("mismatches_vs_oracle=%d\n", mismatches)
	} else {
		okColor.Printf("mismatches_vs_oracle=0\n")
	}
	fmt.Printf("peak_free_memory=%dMB\n", memory.FreeMemory()/(1<<20))
}

package bisect

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/spf13/cobra"
)

const BenchShortDesc = "Measure search cost on a generated sorted sequence"

const BenchLongDesc = `Bench generates a strictly increasing random int64 sequence, runs a batch
of searches against it (alternating guaranteed hits and random probes into
the key space), and reports elapsed time, comparator calls per search and
process resource usage. The generator is seeded, so a given --seed always
produces the same sequence and query set.`

// RunBench is the command logic behind "bisect bench".
func RunBench(cmd *cobra.Command, args []string) error {
	n, err := cmd.Flags().GetInt("n")
	if err != nil {
		return err
	}
	queries, err := cmd.Flags().GetInt("queries")
	if err != nil {
		return err
	}
	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		return err
	}
	if n <= 0 {
		return fmt.Errorf("invalid --n %d, need a positive sequence length", n)
	}
	if queries <= 0 {
		return fmt.Errorf("invalid --queries %d, need a positive query count", queries)
	}

	rng := rand.New(rand.NewSource(seed))
	seq := benchSequence(rng, n)

	comparisons := 0
	cmp := func(a, b int64) Ordering {
		comparisons++
		return Compare(a, b)
	}

	hits := 0
	start := time.Now()
	for i := 0; i < queries; i++ {
		var target int64
		if i%2 == 0 {
			target = seq[rng.Intn(len(seq))]
		} else {
			target = rng.Int63n(seq[len(seq)-1] + 1)
		}
		if Search(seq, target, cmp) != NotFound {
			hits++
		}
	}
	elapsed := time.Since(start)

	cmd.Printf("sequence: %d elements, queries: %d (%d hits)\n", n, queries, hits)
	cmd.Printf("elapsed: %s, %.1f comparisons/search\n", elapsed, float64(comparisons)/float64(queries))
	printProcessStats(cmd)
	return nil
}

// benchSequence builds a strictly increasing sequence with random gaps, so
// random probes into the key space mostly miss.
func benchSequence(rng *rand.Rand, n int) []int64 {
	seq := make([]int64, n)
	var key int64
	for i := range seq {
		key += 1 + rng.Int63n(7)
		seq[i] = key
	}
	return seq
}

// printProcessStats reports RSS and CPU time of the current process.
// Stats are best effort; platforms where gopsutil cannot read them just
// skip the lines.
func printProcessStats(cmd *cobra.Command) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}
	if mem, err := p.MemoryInfo(); err == nil {
		cmd.Printf("process rss: %d KiB\n", mem.RSS/1024)
	}
	if times, err := p.Times(); err == nil {
		cmd.Printf("process cpu: %.2fs user, %.2fs system\n", times.User, times.System)
	}
}

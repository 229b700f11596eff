package bisect

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newBenchTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bench",
		RunE:          RunBench,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().Int("n", 1000, "")
	cmd.Flags().Int("queries", 100, "")
	cmd.Flags().Int64("seed", 1, "")
	return cmd
}

func TestBenchSequence(t *testing.T) {
	a := benchSequence(rand.New(rand.NewSource(7)), 5000)
	b := benchSequence(rand.New(rand.NewSource(7)), 5000)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different sequences at %d: %d vs %d", i, a[i], b[i])
		}
	}
	for i := 1; i < len(a); i++ {
		if a[i] <= a[i-1] {
			t.Fatalf("sequence not strictly increasing at %d: %d then %d", i, a[i-1], a[i])
		}
	}
}

func TestRunBench_SmallRun(t *testing.T) {
	cmd := newBenchTestCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--n=100", "--queries=10", "--seed=3"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "sequence: 100 elements, queries: 10") {
		t.Fatalf("unexpected report: %q", out.String())
	}
}

func TestRunBench_InvalidFlags(t *testing.T) {
	for _, args := range [][]string{
		{"--n=0"},
		{"--n=-5"},
		{"--queries=0"},
	} {
		cmd := newBenchTestCmd()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs(args)
		if err := cmd.Execute(); err == nil {
			t.Fatalf("bench %v should fail", args)
		}
	}
}

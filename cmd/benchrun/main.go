package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

// perftRuns are the macro throughput measurements printed after the
// benchmarks.
var perftRuns = []struct {
	label string
	args  []string
}{
	{"Initial", []string{"-depth", "4"}},
	{"Initial", []string{"-depth", "5"}},
	{"Initial+hash", []string{"-depth", "5", "-hash", "1048576"}},
	{"Kiwipete", []string{"-fen", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", "-depth", "3"}},
	{"Shogi", []string{"-variant", "shogi", "-depth", "3"}},
	{"Minishogi", []string{"-variant", "minishogi", "-depth", "4"}},
	{"Chushogi", []string{"-variant", "chushogi", "-depth", "2"}},
}

func main() {
	// Run all benchmarks in bench/ with benchmem.
	// Usage: go run ./cmd/benchrun
	// Format: BenchmarkName  Iterations  ns/op  B/op  allocs/op
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	// Also run perft performance tests (macro throughput) with one-line outputs
	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	for _, r := range perftRuns {
		args := append([]string{"run", "./cmd/perft", "-label", r.label}, r.args...)
		if code := run("go", args...); code != 0 {
			fmt.Fprintf(os.Stderr, "%s failed with exit code %d\n", r.label, code)
		}
	}

	// Suite check at a shallow depth
	fmt.Println("\nSuite:")
	os.Exit(run("go", "run", "./cmd/perft", "-suite", "suite/testdata/standard.suite", "-depth", "3"))
}

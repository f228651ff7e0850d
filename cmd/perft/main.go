package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"variant-engine/suite"
	"variant-engine/variantmg"
)

func main() {
	variant := flag.String("variant", "chess", "Variant: chess, shogi, minishogi or chushogi")
	fen := flag.String("fen", "", "FEN or SFEN string (defaults to the variant's initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required unless -suite is given)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	verify := flag.Bool("verify", false, "Cross-check the root divide against dragontoothmg (chess only)")
	suitePath := flag.String("suite", "", "Run every position of a perft suite file, up to -depth if set")
	hash := flag.Int("hash", 0, "Perft cache entries (0 disables the cache)")
	flag.Parse()

	if *suitePath != "" {
		os.Exit(runSuite(*suitePath, *depth))
	}
	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	rules, err := variantmg.ParseRules(*variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if *fen == "" {
		*fen = variantmg.StartingPosition(rules)
	}
	pos, err := variantmg.Setup(rules, *fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Setup error: %v\n", err)
		os.Exit(2)
	}

	if *verify {
		if rules != variantmg.Chess {
			fmt.Fprintln(os.Stderr, "-verify is only available for chess")
			os.Exit(2)
		}
		os.Exit(verifyDivide(pos.(*variantmg.ChessPosition), *fen, *depth))
	}

	// Optional divide output
	if *divide {
		div := variantmg.PerftDivide(pos, *depth)
		names := make(map[string]uint64, len(div))
		var sum uint64
		for m, n := range div {
			names[notation(pos, m)] = n
			sum += n
		}
		keys := maps.Keys(names)
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Printf("%s: %d\n", k, names[k])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var cache *variantmg.PerftCache
	if *hash > 0 {
		cache = variantmg.NewPerftCache(*hash)
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		if cache != nil {
			totalNodes += variantmg.PerftCached(pos, *depth, cache)
		} else {
			totalNodes += variantmg.Perft(pos, *depth)
		}
	}
	elapsed := time.Since(start)
	secs := elapsed.Seconds()
	nps := float64(totalNodes) / secs

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
	if cache != nil {
		fmt.Printf("cache hits: %d\n", cache.Hits())
	}

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

// notation writes chess castling in the e1g1 form so divide output lines up
// with other engines.
func notation(pos variantmg.Position, m variantmg.Move) string {
	if c, ok := pos.(*variantmg.ChessPosition); ok {
		return c.StandardUci(m)
	}
	return m.Notation(pos.Rules())
}

func runSuite(path string, maxDepth int) int {
	cases, err := suite.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}
	failed := 0
	start := time.Now()
	for _, c := range cases {
		if err := c.Verify(maxDepth); err != nil {
			fmt.Printf("FAIL %v %s: %v\n", c.Rules, c.Position, err)
			failed++
			continue
		}
		fmt.Printf("ok   %v %s\n", c.Rules, c.Position)
	}
	fmt.Printf("%d/%d passed in %s\n", len(cases)-failed, len(cases), time.Since(start))
	if failed > 0 {
		return 1
	}
	return 0
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		undo()
	}
	return nodes
}

// verifyDivide prints every root move whose subtree count differs from
// dragontoothmg's, including moves only one side generates.
func verifyDivide(pos *variantmg.ChessPosition, fen string, depth int) int {
	ref := dragontoothmg.ParseFen(fen)
	theirs := make(map[string]uint64)
	for _, m := range ref.GenerateLegalMoves() {
		undo := ref.Apply(m)
		n := uint64(1)
		if depth > 1 {
			n = dragontoothPerft(&ref, depth-1)
		}
		undo()
		theirs[strings.ToLower(m.String())] = n
	}
	ours := make(map[string]uint64)
	for m, n := range variantmg.PerftDivide(pos, depth) {
		ours[pos.StandardUci(m)] = n
	}

	all := maps.Keys(ours)
	for k := range theirs {
		if _, ok := ours[k]; !ok {
			all = append(all, k)
		}
	}
	slices.Sort(all)
	bad := 0
	for _, k := range all {
		if ours[k] != theirs[k] {
			fmt.Printf("%s: ours %d dragontoothmg %d\n", k, ours[k], theirs[k])
			bad++
		}
	}
	if bad > 0 {
		fmt.Printf("%d root moves differ\n", bad)
		return 1
	}
	fmt.Printf("divide matches dragontoothmg at depth %d (%d moves)\n", depth, len(all))
	return 0
}

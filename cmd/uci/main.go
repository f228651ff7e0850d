// Command uci speaks a small UCI/USI-style line protocol for inspecting
// positions of every supported variant: set a position, list legal
// destinations, run perft.
package main

import (
	"bufio"
	"os"
)

func main() {
	s := newSession()
	scanner := bufio.NewScanner(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for scanner.Scan() {
		if !s.exec(scanner.Text(), out) {
			return
		}
		out.Flush()
	}
}

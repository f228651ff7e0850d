// Command render writes an SVG picture of a position, optionally with the
// legal destinations of one piece.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"variant-engine/render"
	"variant-engine/variantmg"
)

func main() {
	variant := flag.String("variant", "chess", "Variant: chess, shogi, minishogi or chushogi")
	fen := flag.String("fen", "", "FEN or SFEN string (defaults to the variant's initial position)")
	from := flag.String("from", "", "Square whose legal destinations are marked, e.g. g1 or 7g")
	size := flag.Int("size", 48, "Square size in pixels")
	flip := flag.Bool("flip", false, "Draw from the second player's side")
	output := flag.String("o", "", "Output file (defaults to stdout)")
	flag.Parse()

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

	opt := render.Options{SquareSize: *size, Flip: *flip}
	if *from != "" {
		sq, err := rules.ParseSquare(*from)
		if err != nil {
			fmt.Fprintf(os.Stderr, "-from: %v\n", err)
			os.Exit(2)
		}
		opt.From, opt.HasFrom = sq, true
		opt.Dests = pos.Dests(sq, pos.Ctx())
	}

	var w io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating output: %v\n", err)
			os.Exit(2)
		}
		defer f.Close()
		w = f
	}
	b := pos.Board()
	render.Board(w, rules, &b, opt)
}

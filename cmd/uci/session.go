package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"variant-engine/variantmg"
)

type session struct {
	pos variantmg.Position
}

func newSession() *session {
	return &session{pos: variantmg.DefaultChess()}
}

// notation writes chess castling as e1g1 so GUIs understand it.
func notation(pos variantmg.Position, m variantmg.Move) string {
	if c, ok := pos.(*variantmg.ChessPosition); ok {
		return c.StandardUci(m)
	}
	return m.Notation(pos.Rules())
}

// findMove matches a move string against the legal moves of pos. Chess
// castling is accepted both as e1g1 and as king takes rook.
func findMove(pos variantmg.Position, str string) (variantmg.Move, bool) {
	for _, m := range pos.LegalMoves() {
		if notation(pos, m) == str || m.Notation(pos.Rules()) == str {
			return m, true
		}
	}
	return variantmg.NoMove, false
}

// exec runs one command line and reports whether the session continues.
func (s *session) exec(line string, w io.Writer) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 { // ignore blank lines
		return true
	}
	switch strings.ToLower(tokens[0]) {
	case "uci":
		fmt.Fprintln(w, "id name variant-engine")
		fmt.Fprintln(w, "uciok")
	case "usi":
		fmt.Fprintln(w, "id name variant-engine")
		fmt.Fprintln(w, "usiok")
	case "isready":
		fmt.Fprintln(w, "readyok")
	case "ucinewgame", "usinewgame":
		s.pos = variantmg.DefaultPosition(s.pos.Rules())
	case "quit":
		return false
	case "position":
		s.position(line, w)
	case "go":
		s.goCommand(tokens[1:], w)
	case "dests":
		s.dests(w)
	case "d":
		s.display(w)
	default:
		fmt.Fprintln(w, "info string Unknown command:", line)
	}
	return true
}

func (s *session) position(line string, w io.Writer) {
	posScanner := bufio.NewScanner(strings.NewReader(line))
	posScanner.Split(bufio.ScanWords)
	posScanner.Scan() // skip the first token
	if !posScanner.Scan() {
		fmt.Fprintln(w, "info string Malformed position command")
		return
	}
	rules := s.pos.Rules()
	if strings.ToLower(posScanner.Text()) == "variant" {
		if !posScanner.Scan() {
			fmt.Fprintln(w, "info string Missing variant name")
			return
		}
		r, err := variantmg.ParseRules(strings.ToLower(posScanner.Text()))
		if err != nil {
			fmt.Fprintln(w, "info string", err)
			return
		}
		rules = r
		posScanner.Scan()
	}

	var pos variantmg.Position
	switch strings.ToLower(posScanner.Text()) {
	case "startpos":
		pos = variantmg.DefaultPosition(rules)
		posScanner.Scan() // advance the scanner to leave it in a consistent state
	case "fen", "sfen":
		fenstr := ""
		for posScanner.Scan() && strings.ToLower(posScanner.Text()) != "moves" {
			fenstr += posScanner.Text() + " "
		}
		p, err := variantmg.Setup(rules, strings.TrimSpace(fenstr))
		if err != nil {
			fmt.Fprintln(w, "info string Invalid position:", err)
			return
		}
		pos = p
	default:
		fmt.Fprintln(w, "info string Invalid position subcommand")
		return
	}
	if strings.ToLower(posScanner.Text()) == "moves" {
		for posScanner.Scan() { // for each move
			moveStr := posScanner.Text()
			m, ok := findMove(pos, moveStr)
			if !ok {
				fmt.Fprintln(w, "info string Move", moveStr, "not found for position", fenOf(pos))
				return
			}
			pos.Play(m)
		}
	}
	// the session only changes once the whole move list applied
	s.pos = pos
}

func (s *session) goCommand(args []string, w io.Writer) {
	if len(args) != 2 || (args[0] != "perft" && args[0] != "depth") {
		fmt.Fprintln(w, "info string Usage: go perft <depth>")
		return
	}
	depth, err := strconv.Atoi(args[1])
	if err != nil || depth <= 0 {
		fmt.Fprintln(w, "info string Malformed go command option; could not convert depth")
		return
	}
	start := time.Now()
	div := variantmg.PerftDivide(s.pos, depth)
	lines := make(map[string]uint64, len(div))
	var total uint64
	for m, n := range div {
		lines[notation(s.pos, m)] = n
		total += n
	}
	keys := maps.Keys(lines)
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %d\n", k, lines[k])
	}
	fmt.Fprintf(w, "\nNodes searched: %d\n", total)
	fmt.Fprintf(w, "info string time %s\n", time.Since(start))
}

func (s *session) dests(w io.Writer) {
	rules := s.pos.Rules()
	all := s.pos.AllDests(s.pos.Ctx())
	from := maps.Keys(all)
	slices.Sort(from)
	for _, sq := range from {
		names := make([]string, 0, all[sq].Size())
		all[sq].ForEach(func(to variantmg.Square) {
			names = append(names, rules.SquareName(to))
		})
		fmt.Fprintf(w, "%s: %s\n", rules.SquareName(sq), strings.Join(names, " "))
	}
}

func (s *session) display(w io.Writer) {
	rules := s.pos.Rules()
	b := s.pos.Board()
	d := rules.Dimensions()
	for row := 0; row < d.Ranks; row++ {
		var sb strings.Builder
		for col := 0; col < d.Files; col++ {
			// chess draws rank 8 first; the shogi family draws file 9 first
			sq := variantmg.SquareAt(col, d.Ranks-1-row)
			if rules.IsShogiFamily() {
				sq = variantmg.SquareAt(d.Files-1-col, row)
			}
			token := "."
			if p, ok := b.Get(sq); ok {
				token = rules.PieceString(p)
			}
			fmt.Fprintf(&sb, "%3s", token)
		}
		fmt.Fprintln(w, sb.String())
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Variant: %v\n", rules)
	fmt.Fprintf(w, "Fen: %s\n", fenOf(s.pos))
	fmt.Fprintf(w, "Key: %016x\n", s.pos.Hash())
	checkers := s.pos.Ctx().Checkers
	names := make([]string, 0, checkers.Size())
	checkers.ForEach(func(sq variantmg.Square) { names = append(names, rules.SquareName(sq)) })
	fmt.Fprintf(w, "Checkers: %s\n", strings.Join(names, " "))
}

func fenOf(pos variantmg.Position) string {
	switch p := pos.(type) {
	case *variantmg.ChessPosition:
		return p.Fen()
	case *variantmg.ShogiPosition:
		return p.Sfen()
	}
	return ""
}

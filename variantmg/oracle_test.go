package variantmg_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	goose "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"

	"variant-engine/variantmg"
)

// Positions exercising castling, en passant, promotion and pins.
var oracleFens = []string{
	variantmg.StartingFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
}

func ourMoves(pos *variantmg.ChessPosition) []string {
	moves := pos.LegalMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, pos.StandardUci(m))
	}
	sort.Strings(out)
	return out
}

func dragontoothMoves(b *dragontoothmg.Board) []string {
	moves := b.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, strings.ToLower(m.String()))
	}
	sort.Strings(out)
	return out
}

func notnilMoves(g *chess.Game) []string {
	moves := g.ValidMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, strings.ToLower(m.String()))
	}
	sort.Strings(out)
	return out
}

func sameMoves(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func findStandard(pos *variantmg.ChessPosition, uci string) variantmg.Move {
	for _, m := range pos.LegalMoves() {
		if pos.StandardUci(m) == uci {
			return m
		}
	}
	return variantmg.NoMove
}

func TestMovesMatchDragontooth(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for _, fen := range oracleFens {
		for game := 0; game < 8; game++ {
			pos, err := variantmg.ParseFen(fen)
			if err != nil {
				t.Fatalf("ParseFen(%q): %v", fen, err)
			}
			ref := dragontoothmg.ParseFen(fen)
			for ply := 0; ply < 60; ply++ {
				ours, theirs := ourMoves(pos), dragontoothMoves(&ref)
				if !sameMoves(ours, theirs) {
					t.Logf("fen: %s", pos.Fen())
					t.Logf("ours:   %v", ours)
					t.Logf("theirs: %v", theirs)
					t.Fatalf("move sets differ after %d plies from %q", ply, fen)
				}
				if len(ours) == 0 {
					break
				}
				pick := ours[rnd.Intn(len(ours))]
				for _, m := range ref.GenerateLegalMoves() {
					if strings.ToLower(m.String()) == pick {
						ref.Apply(m)
						break
					}
				}
				pos.Play(findStandard(pos, pick))
			}
		}
	}
}

func TestMovesMatchNotnil(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for _, fen := range oracleFens {
		opt, err := chess.FEN(fen)
		if err != nil {
			t.Fatalf("chess.FEN(%q): %v", fen, err)
		}
		for game := 0; game < 4; game++ {
			pos, err := variantmg.ParseFen(fen)
			if err != nil {
				t.Fatalf("ParseFen(%q): %v", fen, err)
			}
			ref := chess.NewGame(opt)
			for ply := 0; ply < 40; ply++ {
				ours, theirs := ourMoves(pos), notnilMoves(ref)
				if !sameMoves(ours, theirs) {
					t.Logf("fen: %s", pos.Fen())
					t.Logf("ours:   %v", ours)
					t.Logf("theirs: %v", theirs)
					t.Fatalf("move sets differ after %d plies from %q", ply, fen)
				}
				if len(ours) == 0 {
					break
				}
				pick := ours[rnd.Intn(len(ours))]
				for _, m := range ref.ValidMoves() {
					if strings.ToLower(m.String()) == pick {
						if err := ref.Move(m); err != nil {
							t.Fatalf("notnil rejected %s: %v", pick, err)
						}
						break
					}
				}
				pos.Play(findStandard(pos, pick))
			}
		}
	}
}

func TestPerftMatchesGoose(t *testing.T) {
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, fen := range oracleFens {
		ref, err := goose.ParseFEN(fen)
		if err != nil {
			t.Fatalf("goose.ParseFEN(%q): %v", fen, err)
		}
		pos, err := variantmg.ParseFen(fen)
		if err != nil {
			t.Fatalf("ParseFen(%q): %v", fen, err)
		}
		want := goose.Perft(ref, depth)
		if got := variantmg.Perft(pos, depth); got != want {
			theirs := make(map[string]uint64)
			for m, n := range goose.PerftDivide(ref, depth) {
				theirs[m.String()] = n
			}
			for m, n := range variantmg.PerftDivide(pos, depth) {
				if u := pos.StandardUci(m); theirs[u] != n {
					t.Logf("  %s: ours %d theirs %d", u, n, theirs[u])
				}
			}
			t.Fatalf("%q d%d: got %d want %d", fen, depth, got, want)
		}
	}
}

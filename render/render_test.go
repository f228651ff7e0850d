package render

import (
	"bytes"
	"strings"
	"testing"

	"variant-engine/variantmg"
)

func TestBoardDrawsEverySquareAndPiece(t *testing.T) {
	for _, rules := range variantmg.AllRules() {
		var buf bytes.Buffer
		b := variantmg.StandardBoard(rules)
		Board(&buf, rules, &b, Options{})
		out := buf.String()
		d := rules.Dimensions()
		if !strings.HasPrefix(strings.TrimSpace(out), "<?xml") || !strings.Contains(out, "</svg>") {
			t.Fatalf("%v: not an svg document", rules)
		}
		if got, want := strings.Count(out, "<rect "), d.Files*d.Ranks; got != want {
			t.Fatalf("%v: got %d squares want %d", rules, got, want)
		}
		if got, want := strings.Count(out, "<text "), b.Occupied().Size(); got != want {
			t.Fatalf("%v: got %d pieces want %d", rules, got, want)
		}
		if strings.Contains(out, "<circle ") {
			t.Fatalf("%v: no destinations were requested", rules)
		}
		if strings.Contains(out, fromSquare) {
			t.Fatalf("%v: zero options should not highlight a square", rules)
		}
	}
}

func TestPositionMarksDests(t *testing.T) {
	pos := variantmg.DefaultChess()
	from, err := variantmg.Chess.ParseSquare("g1")
	if err != nil {
		t.Fatalf("ParseSquare: %v", err)
	}
	var buf bytes.Buffer
	Position(&buf, pos, from, 32)
	out := buf.String()
	if got := strings.Count(out, "<circle "); got != 2 {
		t.Fatalf("knight g1: got %d marks want 2", got)
	}
	if !strings.Contains(out, fromSquare) {
		t.Fatalf("origin square not highlighted")
	}
	if !strings.Contains(out, `width="256"`) {
		t.Fatalf("canvas should be 8 squares of 32 pixels wide")
	}
}

func TestSquareGeometry(t *testing.T) {
	a1, h8 := variantmg.A1, variantmg.H8
	if x, y := squareAt(variantmg.Chess, a1, 10, false); x != 0 || y != 70 {
		t.Fatalf("a1: got %d,%d", x, y)
	}
	if x, y := squareAt(variantmg.Chess, h8, 10, false); x != 70 || y != 0 {
		t.Fatalf("h8: got %d,%d", x, y)
	}
	if x, y := squareAt(variantmg.Chess, a1, 10, true); x != 70 || y != 0 {
		t.Fatalf("flipped a1: got %d,%d", x, y)
	}
	// shogi 1a is the top-right corner
	sq, err := variantmg.Shogi.ParseSquare("1a")
	if err != nil {
		t.Fatalf("ParseSquare: %v", err)
	}
	if x, y := squareAt(variantmg.Shogi, sq, 10, false); x != 80 || y != 0 {
		t.Fatalf("1a: got %d,%d", x, y)
	}
}

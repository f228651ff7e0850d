package suite

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"variant-engine/variantmg"
)

func TestParse(t *testing.T) {
	text := `# header
rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 ;D1 20 ;D2 400

variant: minishogi
rbsgk/4p/5/P4/KGSBR b - 1 ;D1 14
`
	cases, err := Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("cases: got %d want 2", len(cases))
	}
	if c := cases[0]; c.Rules != variantmg.Chess || c.Line != 2 || len(c.Expects) != 2 || c.Expects[1] != (Expect{2, 400}) {
		t.Fatalf("first case: %+v", c)
	}
	if c := cases[1]; c.Rules != variantmg.Minishogi || c.Position != variantmg.MinishogiStartingSfen || c.Line != 5 {
		t.Fatalf("second case: %+v", c)
	}
	for _, c := range cases {
		if err := c.Verify(0); err != nil {
			t.Fatalf("Verify: %v", err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{
		"variant: xiangqi\n",
		"8/8/8/8/8/8/8/8 w - - 0 1 ;X1 3\n",
		"8/8/8/8/8/8/8/8 w - - 0 1 ;D1 many\n",
		"8/8/8/8/8/8/8/8 w - - 0 1 ;D-1 3\n",
		" ;D1 3\n",
	} {
		if _, err := Parse(strings.NewReader(text)); !errors.Is(err, ErrSyntax) {
			t.Fatalf("Parse(%q): got %v want ErrSyntax", text, err)
		}
	}
}

func TestVerifyMismatch(t *testing.T) {
	c := Case{Rules: variantmg.Chess, Position: variantmg.StartingFen, Expects: []Expect{{1, 20}, {2, 401}}}
	if err := c.Verify(1); err != nil {
		t.Fatalf("depth 2 should be skipped: %v", err)
	}
	if err := c.Verify(0); !errors.Is(err, ErrMismatch) {
		t.Fatalf("got %v want ErrMismatch", err)
	}
	c.Position = "bogus"
	if err := c.Verify(0); err == nil || errors.Is(err, ErrMismatch) {
		t.Fatalf("bad position should fail setup, got %v", err)
	}
}

func TestDecodeShiftJIS(t *testing.T) {
	text := "# 平手 初期局面\nvariant: shogi\n" + variantmg.ShogiStartingSfen + " ;D1 30\n"
	encoded, _, err := transform.String(japanese.ShiftJIS.NewEncoder(), text)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if encoded == text {
		t.Fatalf("encoding should change the comment bytes")
	}
	decoded, err := Decode([]byte(encoded))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded != text {
		t.Fatalf("Decode: got %q want %q", decoded, text)
	}
	bom, err := Decode(append([]byte{0xEF, 0xBB, 0xBF}, text...))
	if err != nil || bom != text {
		t.Fatalf("BOM should be stripped: %q, %v", bom, err)
	}
}

func TestLoadStandardSuite(t *testing.T) {
	cases, err := Load("testdata/standard.suite")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cases) != 8 {
		t.Fatalf("cases: got %d want 8", len(cases))
	}
	maxDepth := 2
	if !testing.Short() {
		maxDepth = 3
	}
	for _, c := range cases {
		if err := c.Verify(maxDepth); err != nil {
			t.Fatalf("%v %q: %v", c.Rules, c.Position, err)
		}
	}
}

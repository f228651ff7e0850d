package variantmg

import "testing"

func TestPinDetection(t *testing.T) {
	pos := mustFen(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	ctx := pos.Ctx()
	e2 := sq(t, Chess, "e2")
	if ctx.Blockers != SquareSetOf(e2) {
		t.Fatalf("blockers: got %v want {e2}", ctx.Blockers)
	}
	if got := pos.Dests(e2, ctx); got.NonEmpty() {
		t.Fatalf("pinned bishop should not move: %v", got)
	}

	// a second piece on the line shields the first
	pos = mustFen(t, "4k3/4r3/8/8/4P3/8/4B3/4K3 w - - 0 1")
	ctx = pos.Ctx()
	if ctx.Blockers.NonEmpty() {
		t.Fatalf("no pin expected with two pieces on the line, got %v", ctx.Blockers)
	}
	if pos.Dests(e2, ctx).IsEmpty() {
		t.Fatalf("unpinned bishop should move")
	}

	// a pinned rook may slide along the pin line and capture the pinner
	pos = mustFen(t, "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1")
	want := squares(t, Chess, "e3", "e4", "e5", "e6", "e7")
	if got := pos.Dests(e2, pos.Ctx()); got != want {
		t.Fatalf("pinned rook: got %v want %v", got, want)
	}
}

func TestCheckRestriction(t *testing.T) {
	pos := mustFen(t, "4k3/8/8/8/8/8/3N4/r3K3 w - - 0 1")
	ctx := pos.Ctx()
	a1 := sq(t, Chess, "a1")
	if ctx.Checkers != SquareSetOf(a1) {
		t.Fatalf("checkers: got %v want {a1}", ctx.Checkers)
	}
	if got, want := pos.Dests(sq(t, Chess, "d2"), ctx), squares(t, Chess, "b1"); got != want {
		t.Fatalf("knight must block: got %v want %v", got, want)
	}
	line := Between(a1, ctx.King).With(a1)
	for from, dests := range pos.AllDests(ctx) {
		if from != ctx.King && dests.Diff(line).NonEmpty() {
			t.Fatalf("piece on %d escapes the check line: %v", from, dests)
		}
	}
	// the king may not retreat along the checking rank
	if got, want := pos.Dests(ctx.King, ctx), squares(t, Chess, "e2", "f2"); got != want {
		t.Fatalf("king dests: got %v want %v", got, want)
	}
}

func TestPinnedPieceCannotCaptureChecker(t *testing.T) {
	// the d2 rook is pinned by a5 and could otherwise take the checking knight
	pos := mustFen(t, "4k3/8/8/b7/8/3n4/3R4/4K3 w - - 0 1")
	ctx := pos.Ctx()
	if ctx.Blockers != squares(t, Chess, "d2") || ctx.Checkers != squares(t, Chess, "d3") {
		t.Fatalf("ctx: blockers %v checkers %v", ctx.Blockers, ctx.Checkers)
	}
	if got := pos.Dests(sq(t, Chess, "d2"), ctx); got.NonEmpty() {
		t.Fatalf("pinned rook should have no moves in check, got %v", got)
	}
}

func TestDoubleCheck(t *testing.T) {
	pos := mustFen(t, "4k3/8/8/8/8/5n2/3N4/4K2r w - - 0 1")
	ctx := pos.Ctx()
	if ctx.Checkers.Size() != 2 {
		t.Fatalf("checkers: got %v want two", ctx.Checkers)
	}
	if got := pos.Dests(sq(t, Chess, "d2"), ctx); got.NonEmpty() {
		t.Fatalf("double check leaves no move for the knight, got %v", got)
	}
	for from := range pos.AllDests(ctx) {
		if from != ctx.King {
			t.Fatalf("only the king may move, got a move from %d", from)
		}
	}
}

func TestDestsOfForeignSquares(t *testing.T) {
	pos := DefaultChess()
	ctx := pos.Ctx()
	for _, s := range []Square{sq(t, Chess, "e4"), sq(t, Chess, "e7"), NoSquare, SquareAt(12, 12)} {
		if got := pos.Dests(s, ctx); got.NonEmpty() {
			t.Fatalf("dests of %d: got %v want empty", s, got)
		}
	}
}

func TestNoKingMeansEmptyContext(t *testing.T) {
	var b Board
	b.Set(sq(t, Chess, "a1"), Piece{White, Rook})
	b.Set(sq(t, Chess, "a8"), Piece{Black, Rook})
	pos := NewChess(b, White, EmptySet, NoSquare, 0, 1)
	ctx := pos.Ctx()
	if ctx.HasKing || ctx.Checkers.NonEmpty() || ctx.Blockers.NonEmpty() {
		t.Fatalf("kingless context: %+v", ctx)
	}
	if got := pos.Dests(sq(t, Chess, "a1"), ctx).Size(); got != 14 {
		t.Fatalf("rook dests without king: got %d want 14", got)
	}
}

func TestEnPassant(t *testing.T) {
	pos := mustFen(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	e5 := sq(t, Chess, "e5")
	if got, want := pos.Dests(e5, pos.Ctx()), squares(t, Chess, "d6", "e6"); got != want {
		t.Fatalf("pawn dests: got %v want %v", got, want)
	}
	pos.Play(NewMove(e5, sq(t, Chess, "d6")))
	if got, want := pos.Fen(), "k7/8/3P4/8/8/8/8/7K b - - 0 2"; got != want {
		t.Fatalf("after exd6: got %q want %q", got, want)
	}

	// both pawns leave the fifth rank and expose the king to the rook
	pos = mustFen(t, "8/8/8/r2pP2K/8/8/8/k7 w - d6 0 2")
	if got := pos.Dests(e5, pos.Ctx()); got.Has(sq(t, Chess, "d6")) {
		t.Fatalf("en passant exposing the king must be illegal: %v", got)
	}
}

func TestChessPlay(t *testing.T) {
	pos := DefaultChess()
	pos.Play(NewMove(sq(t, Chess, "e2"), sq(t, Chess, "e4")))
	if got, want := pos.Fen(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"; got != want {
		t.Fatalf("after e4: got %q want %q", got, want)
	}

	pos = mustFen(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	pos.Play(NewMove(sq(t, Chess, "e1"), sq(t, Chess, "h1")))
	if got, want := pos.Fen(), "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1"; got != want {
		t.Fatalf("after O-O: got %q want %q", got, want)
	}
	pos.Play(NewMove(sq(t, Chess, "a8"), sq(t, Chess, "a1")))
	if got, want := pos.Fen(), "4k2r/8/8/8/8/8/8/r4RK1 w k - 0 2"; got != want {
		t.Fatalf("after Rxa1: got %q want %q", got, want)
	}

	pos = mustFen(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	pos.Play(NewMove(sq(t, Chess, "a7"), sq(t, Chess, "b8")).WithPromotion(Knight))
	if got, want := pos.Fen(), "1N5k/8/8/8/8/8/8/7K b - - 0 1"; got != want {
		t.Fatalf("after axb8=N: got %q want %q", got, want)
	}
}

func TestIsLegal(t *testing.T) {
	pos := DefaultChess()
	ctx := pos.Ctx()
	cases := []struct {
		uci  string
		want bool
	}{
		{"e2e4", true},
		{"g1f3", true},
		{"e2e5", false},
		{"e1g1", false},
		{"e7e5", false},
	}
	for _, c := range cases {
		m, err := ParseUci(c.uci)
		if err != nil {
			t.Fatalf("ParseUci(%q): %v", c.uci, err)
		}
		if got := pos.IsLegal(m, ctx); got != c.want {
			t.Fatalf("IsLegal(%s): got %v want %v", c.uci, got, c.want)
		}
	}
	promo := mustFen(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	if promo.IsLegal(NewMove(sq(t, Chess, "a7"), sq(t, Chess, "a8")), promo.Ctx()) {
		t.Fatalf("pawn reaching the last rank must promote")
	}
	if !promo.IsLegal(NewMove(sq(t, Chess, "a7"), sq(t, Chess, "a8")).WithPromotion(Queen), promo.Ctx()) {
		t.Fatalf("a8=Q should be legal")
	}
}

func TestCloneRoundTrip(t *testing.T) {
	for _, rules := range AllRules() {
		pos := DefaultPosition(rules)
		board := pos.Board()
		ctx := pos.Ctx()
		hash := pos.Hash()
		for _, m := range pos.LegalMoves() {
			child := pos.Clone()
			child.Play(m)
			after := pos.Board()
			if !after.Equals(&board) || pos.Ctx() != ctx || pos.Hash() != hash || pos.Turn() != Sente {
				t.Fatalf("%v: playing %s on a clone changed the original", rules, m.Notation(rules))
			}
		}
	}
	pos := mustFen(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	castles := pos.Castles()
	child := pos.CloneChess()
	child.Play(NewMove(sq(t, Chess, "e1"), sq(t, Chess, "a1")))
	if pos.Castles() != castles {
		t.Fatalf("castling on a clone changed the original castling state")
	}
}

func TestHashTransposition(t *testing.T) {
	pos := DefaultChess()
	start := pos.Hash()
	for _, uci := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		m, err := ParseUci(uci)
		if err != nil {
			t.Fatalf("ParseUci(%q): %v", uci, err)
		}
		pos.Play(m)
		if uci == "g1f3" && pos.Hash() == start {
			t.Fatalf("hash unchanged after a move")
		}
	}
	if pos.Hash() != start {
		t.Fatalf("knight shuffle should transpose to the start position")
	}
	if DefaultShogi(Shogi).Hash() == DefaultShogi(Minishogi).Hash() {
		t.Fatalf("different variants should hash differently")
	}
}

func TestShogiPromotionChoices(t *testing.T) {
	// sente pawn on 5d moves into the zone; sente pawn on 1b reaches the last rank
	pos, err := ParseSfen(Shogi, "4k4/P8/9/4P4/9/9/9/9/4K4 b - 1")
	if err != nil {
		t.Fatalf("ParseSfen: %v", err)
	}
	var fiveD, nineB []string
	for _, m := range pos.LegalMoves() {
		switch m.From() {
		case sq(t, Shogi, "5d"):
			fiveD = append(fiveD, m.Usi(Shogi))
		case sq(t, Shogi, "9b"):
			nineB = append(nineB, m.Usi(Shogi))
		}
	}
	if len(fiveD) != 2 || fiveD[0] != "5d5c" || fiveD[1] != "5d5c+" {
		t.Fatalf("5d pawn: got %v want [5d5c 5d5c+]", fiveD)
	}
	if len(nineB) != 1 || nineB[0] != "9b9a+" {
		t.Fatalf("9b pawn: got %v want [9b9a+]", nineB)
	}
	m, err := ParseUsi(Shogi, "9b9a+")
	if err != nil {
		t.Fatalf("ParseUsi: %v", err)
	}
	pos.Play(m)
	b := pos.Board()
	if p, ok := b.Get(sq(t, Shogi, "9a")); !ok || p != (Piece{Sente, Tokin}) {
		t.Fatalf("expected a sente tokin on 9a, got %v,%v", p, ok)
	}
}

func TestRulesPromotionPredicates(t *testing.T) {
	pawn := Piece{Sente, Pawn}
	if !Shogi.PieceCanPromote(pawn, sq(t, Shogi, "5d"), sq(t, Shogi, "5c"), false) {
		t.Fatalf("entering the zone promotes")
	}
	if Shogi.PieceCanPromote(pawn, sq(t, Shogi, "5e"), sq(t, Shogi, "5d"), false) {
		t.Fatalf("outside the zone no promotion")
	}
	if Shogi.PieceCanPromote(Piece{Sente, Gold}, sq(t, Shogi, "5d"), sq(t, Shogi, "5c"), false) {
		t.Fatalf("gold never promotes")
	}
	if !Shogi.PieceInDeadZone(Piece{Sente, Knight}, sq(t, Shogi, "5b")) || Shogi.PieceInDeadZone(Piece{Sente, Knight}, sq(t, Shogi, "5c")) {
		t.Fatalf("knight dead zone is the last two ranks")
	}
	if !Shogi.PieceInDeadZone(Piece{Gote, Lance}, sq(t, Shogi, "5i")) {
		t.Fatalf("gote lance is dead on rank i")
	}
	if !Minishogi.PieceInDeadZone(pawn, sq(t, Minishogi, "3a")) || Minishogi.PromotionZone(Sente).Size() != 5 {
		t.Fatalf("minishogi zone is one rank")
	}
	if Chushogi.PromotionZone(Gote).Size() != 48 {
		t.Fatalf("chushogi zone is four ranks")
	}
	// chushogi: moving inside the zone promotes only with a capture
	gold := Piece{Sente, Gold}
	if Chushogi.PieceCanPromote(gold, sq(t, Chushogi, "6c"), sq(t, Chushogi, "6b"), false) {
		t.Fatalf("non-capturing move inside the zone must not promote")
	}
	if !Chushogi.PieceCanPromote(gold, sq(t, Chushogi, "6c"), sq(t, Chushogi, "6b"), true) {
		t.Fatalf("capture inside the zone may promote")
	}
	if !Chushogi.PieceCanPromote(gold, sq(t, Chushogi, "6e"), sq(t, Chushogi, "6d"), false) {
		t.Fatalf("entering the zone may promote")
	}
	if r, ok := Chushogi.Promote(Kirin); !ok || r != LionPromoted || Chushogi.Unpromote(LionPromoted) != Kirin {
		t.Fatalf("kirin promotes to lion")
	}
	if _, ok := Chushogi.Promote(Lion); ok {
		t.Fatalf("lion does not promote")
	}
}

func TestJumpingCheckerCannotBeBlocked(t *testing.T) {
	var b Board
	king := SquareAt(5, 8)
	b.Set(king, Piece{Sente, King})
	b.Set(SquareAt(0, 0), Piece{Gote, King})
	gold := SquareAt(4, 7)
	b.Set(gold, Piece{Sente, Gold})

	lion := b.Clone()
	lion.Set(SquareAt(5, 6), Piece{Gote, Lion})
	pos := NewShogi(Chushogi, *lion, Sente, "-", 1)
	ctx := pos.Ctx()
	if ctx.Checkers != SquareSetOf(SquareAt(5, 6)) {
		t.Fatalf("lion should give check, checkers %v", ctx.Checkers)
	}
	if got, want := pos.Dests(gold, ctx), SquareSetOf(SquareAt(5, 6)); got != want {
		t.Fatalf("gold vs lion: got %v want %v (only the capture)", got, want)
	}

	rook := b.Clone()
	rook.Set(SquareAt(5, 5), Piece{Gote, Rook})
	pos = NewShogi(Chushogi, *rook, Sente, "-", 1)
	ctx = pos.Ctx()
	if got, want := pos.Dests(gold, ctx), SquareSetOf(SquareAt(5, 6), SquareAt(5, 7)); got != want {
		t.Fatalf("gold vs rook: got %v want %v (interpositions)", got, want)
	}
}

package variantmg

// Context caches what every destination query of one position needs: the
// side to move's king, the pieces pinned to it, the enemy sliders lined up
// with it and the pieces giving check.
type Context struct {
	King     Square
	HasKing  bool
	Blockers SquareSet
	Checkers SquareSet
	Snipers  SquareSet
}

// Position is the common surface of chess and shogi-family positions.
type Position interface {
	Rules() Rules
	Board() Board
	Turn() Color
	Fullmoves() int

	// Ctx computes the legality context of the side to move.
	Ctx() Context
	// Dests returns the legal destinations of the piece on sq. Squares that
	// are empty or hold an opponent piece have none.
	Dests(sq Square, ctx Context) SquareSet
	AllDests(ctx Context) map[Square]SquareSet
	LegalMoves() []Move
	IsLegal(m Move, ctx Context) bool
	IsCheck() bool

	// Play applies a legal move. Playing an illegal move leaves the position
	// in an unspecified state.
	Play(m Move)
	Clone() Position
	Hash() uint64
}

var (
	_ Position = (*ChessPosition)(nil)
	_ Position = (*ShogiPosition)(nil)
)

// position holds the state shared by all variants and the legality rules
// that do not depend on the variant.
type position struct {
	rules     Rules
	board     Board
	turn      Color
	fullmoves int
}

func (p *position) Rules() Rules { return p.rules }
func (p *position) Board() Board { return p.board }
func (p *position) Turn() Color { return p.turn }
func (p *position) Fullmoves() int { return p.fullmoves }

func (p *position) kingAttackers(sq Square, attacker Color, occupied SquareSet) SquareSet {
	return AttacksTo(p.rules, &p.board, sq, attacker, occupied)
}

// ctx computes the Context of the side to move.
func (p *position) ctx() Context {
	king, ok := p.board.KingOf(p.turn)
	if !ok {
		return Context{King: NoSquare}
	}
	them := p.turn.Other()
	var snipers SquareSet
	for _, role := range p.rules.Roles() {
		pieces := p.board.Pieces(them, role)
		if pieces.IsEmpty() || !IsRanged(p.rules, role) {
			continue
		}
		snipers = snipers.Union(RangedAttacks(p.rules, Piece{p.turn, role}, king, EmptySet).Intersect(pieces))
	}
	var blockers SquareSet
	snipers.ForEach(func(sniper Square) {
		b := Between(king, sniper).Intersect(p.board.occupied)
		if sq, single := b.SingleSquare(); single {
			blockers = blockers.With(sq)
		}
	})
	return Context{
		King:     king,
		HasKing:  true,
		Blockers: blockers,
		Checkers: p.kingAttackers(king, them, p.board.occupied),
		Snipers:  snipers,
	}
}

// kingDests returns the squares the king on sq may step to.
func (p *position) kingDests(sq Square, piece Piece) SquareSet {
	dests := Attacks(p.rules, piece, sq, p.board.occupied).Diff(p.board.colors[piece.Color])
	occupied := p.board.occupied.Without(sq)
	them := piece.Color.Other()
	dests.ForEach(func(to Square) {
		if p.kingAttackers(to, them, occupied).NonEmpty() {
			dests = dests.Without(to)
		}
	})
	return dests
}

// restrict applies check and pin constraints to the pseudo-legal
// destinations of a non-king piece on sq.
func (p *position) restrict(sq Square, pseudo SquareSet, ctx Context) SquareSet {
	if ctx.HasKing {
		if ctx.Checkers.NonEmpty() {
			checker, single := ctx.Checkers.SingleSquare()
			if !single {
				return EmptySet
			}
			target := SquareSetOf(checker)
			if ctx.Snipers.Has(checker) {
				target = target.Union(Between(checker, ctx.King))
			}
			pseudo = pseudo.Intersect(target)
		}
		if ctx.Blockers.Has(sq) {
			pseudo = pseudo.Intersect(Ray(p.rules, sq, ctx.King))
		}
	}
	return pseudo.Diff(p.board.colors[p.turn])
}

// ownPiece returns the piece on sq if it belongs to the side to move.
func (p *position) ownPiece(sq Square) (Piece, bool) {
	if !p.board.colors[p.turn].Has(sq) {
		return Piece{}, false
	}
	return p.board.Get(sq)
}

func allDests(pos Position, ctx Context) map[Square]SquareSet {
	b := pos.Board()
	out := make(map[Square]SquareSet)
	b.ByColor(pos.Turn()).ForEach(func(sq Square) {
		if d := pos.Dests(sq, ctx); d.NonEmpty() {
			out[sq] = d
		}
	})
	return out
}

package variantmg

import "fmt"

// ShogiPosition is a position of shogi, minishogi or chushogi. Pieces in hand are
// not modelled: captured pieces leave the game, and the hands field of an
// SFEN is kept verbatim.
type ShogiPosition struct {
	position
	hands string
}

// NewShogi builds a position from its parts. fullmoves is the SFEN move
// number, which counts plies starting at 1.
func NewShogi(rules Rules, board Board, turn Color, hands string, fullmoves int) *ShogiPosition {
	if !rules.IsShogiFamily() {
		panic(fmt.Sprintf("variantmg: %v is not a shogi variant", rules))
	}
	if hands == "" {
		hands = "-"
	}
	return &ShogiPosition{
		position: position{rules: rules, board: board, turn: turn, fullmoves: fullmoves},
		hands:    hands,
	}
}

// DefaultShogi returns the starting position of a shogi-family variant.
func DefaultShogi(rules Rules) *ShogiPosition {
	return NewShogi(rules, StandardBoard(rules), Sente, "-", 1)
}

func (pos *ShogiPosition) Hands() string { return pos.hands }
func (pos *ShogiPosition) Ctx() Context { return pos.ctx() }
func (pos *ShogiPosition) IsCheck() bool { return pos.ctx().Checkers.NonEmpty() }
func (pos *ShogiPosition) Clone() Position { return pos.CloneShogi() }

// CloneShogi is Clone with the concrete type.
func (pos *ShogiPosition) CloneShogi() *ShogiPosition {
	c := *pos
	return &c
}

func (pos *ShogiPosition) AllDests(ctx Context) map[Square]SquareSet { return allDests(pos, ctx) }

func (pos *ShogiPosition) PieceCanPromote(piece Piece, from, to Square, capture bool) bool {
	return pos.rules.PieceCanPromote(piece, from, to, capture)
}

func (pos *ShogiPosition) PieceInDeadZone(piece Piece, to Square) bool {
	return pos.rules.PieceInDeadZone(piece, to)
}

func (pos *ShogiPosition) Dests(sq Square, ctx Context) SquareSet {
	piece, ok := pos.ownPiece(sq)
	if !ok {
		return EmptySet
	}
	if piece.Role == King {
		return pos.kingDests(sq, piece)
	}
	return pos.restrict(sq, Attacks(pos.rules, piece, sq, pos.board.occupied), ctx)
}

// LegalMoves lists board moves in ascending (from, to) order. A move that
// may promote is listed unpromoted first, unless the piece would be left
// without moves, and then promoted.
func (pos *ShogiPosition) LegalMoves() []Move {
	ctx := pos.ctx()
	moves := make([]Move, 0, 64)
	pos.board.colors[pos.turn].ForEach(func(from Square) {
		piece, _ := pos.board.Get(from)
		pos.Dests(from, ctx).ForEach(func(to Square) {
			m := NewMove(from, to)
			if !pos.rules.PieceCanPromote(piece, from, to, pos.board.Has(to)) {
				moves = append(moves, m)
				return
			}
			if !pos.rules.PieceInDeadZone(piece, to) {
				moves = append(moves, m)
			}
			moves = append(moves, m.WithPromote())
		})
	})
	return moves
}

func (pos *ShogiPosition) IsLegal(m Move, ctx Context) bool {
	piece, ok := pos.ownPiece(m.From())
	if !ok || m.Promotion() != NoRole || !pos.Dests(m.From(), ctx).Has(m.To()) {
		return false
	}
	if m.Promotes() {
		return pos.rules.PieceCanPromote(piece, m.From(), m.To(), pos.board.Has(m.To()))
	}
	return !pos.rules.PieceInDeadZone(piece, m.To())
}

// Play applies a legal move. Captured pieces are removed from the game.
func (pos *ShogiPosition) Play(m Move) {
	piece, ok := pos.board.Take(m.From())
	if !ok {
		panic(fmt.Sprintf("variantmg: no piece to move on %d", m.From()))
	}
	if m.Promotes() {
		if promoted, ok := pos.rules.Promote(piece.Role); ok {
			piece.Role = promoted
		}
	}
	pos.board.Set(m.To(), piece)
	pos.turn = pos.turn.Other()
	pos.fullmoves++
}

package variantmg

import "fmt"

// ChessPosition is an orthodox chess position, including Chess960 castling.
type ChessPosition struct {
	position
	castles   Castles
	epSquare  Square
	halfmoves int
}

// NewChess builds a position from its parts. The castling state is derived
// from the board and the rooks that have not moved.
func NewChess(board Board, turn Color, unmovedRooks SquareSet, epSquare Square, halfmoves, fullmoves int) *ChessPosition {
	pos := &ChessPosition{
		position:  position{rules: Chess, board: board, turn: turn, fullmoves: fullmoves},
		epSquare:  NoSquare,
		halfmoves: halfmoves,
	}
	pos.castles = CastlesFromSetup(&pos.board, unmovedRooks)
	if pos.validEpSquare(epSquare) {
		pos.epSquare = epSquare
	}
	return pos
}

// DefaultChess returns the standard starting position.
func DefaultChess() *ChessPosition {
	return &ChessPosition{
		position: position{rules: Chess, board: StandardBoard(Chess), turn: White, fullmoves: 1},
		castles:  DefaultCastles(),
		epSquare: NoSquare,
	}
}

func (pos *ChessPosition) Castles() Castles { return pos.castles }
func (pos *ChessPosition) EpSquare() Square { return pos.epSquare }
func (pos *ChessPosition) Halfmoves() int { return pos.halfmoves }
func (pos *ChessPosition) Ctx() Context { return pos.ctx() }
func (pos *ChessPosition) IsCheck() bool { return pos.ctx().Checkers.NonEmpty() }
func (pos *ChessPosition) Clone() Position { return pos.CloneChess() }

// CloneChess is Clone with the concrete type.
func (pos *ChessPosition) CloneChess() *ChessPosition {
	c := *pos
	return &c
}

func (pos *ChessPosition) AllDests(ctx Context) map[Square]SquareSet { return allDests(pos, ctx) }

// validEpSquare accepts an en passant square only if a pawn that just
// double-stepped stands in front of it.
func (pos *ChessPosition) validEpSquare(ep Square) bool {
	if !chessSquare(ep) || pos.board.Has(ep) {
		return false
	}
	them := pos.turn.Other()
	want := 5
	if pos.turn == Black {
		want = 2
	}
	if ep.Rank() != want {
		return false
	}
	pawn := ep - Square(gridSize*pos.rules.Forward(pos.turn))
	return pos.board.Pieces(them, Pawn).Has(pawn)
}

func (pos *ChessPosition) Dests(sq Square, ctx Context) SquareSet {
	piece, ok := pos.ownPiece(sq)
	if !ok {
		return EmptySet
	}
	if piece.Role == King {
		dests := pos.kingDests(sq, piece)
		if ctx.HasKing && ctx.King == sq {
			dests = dests.Union(pos.castlingDest(CastleA, ctx)).Union(pos.castlingDest(CastleH, ctx))
		}
		return dests
	}
	var pseudo SquareSet
	if piece.Role == Pawn {
		pseudo = pos.pawnDests(sq)
	} else {
		pseudo = Attacks(Chess, piece, sq, pos.board.occupied)
	}
	legal := pos.restrict(sq, pseudo, ctx)
	if piece.Role == Pawn && pos.epSquare != NoSquare && pos.canCaptureEp(sq, ctx) {
		legal = legal.With(pos.epSquare)
	}
	return legal
}

func (pos *ChessPosition) pawnDests(sq Square) SquareSet {
	them := pos.turn.Other()
	pseudo := PawnAttacks(pos.turn, sq).Intersect(pos.board.colors[them])
	delta := Square(gridSize * pos.rules.Forward(pos.turn))
	step := sq + delta
	if !chessSquare(step) || pos.board.Has(step) {
		return pseudo
	}
	pseudo = pseudo.With(step)
	home := 1
	if pos.turn == Black {
		home = 6
	}
	if sq.Rank() == home && !pos.board.Has(step+delta) {
		pseudo = pseudo.With(step + delta)
	}
	return pseudo
}

// canCaptureEp simulates the capture on the full board, which catches the
// rare case of both pawns leaving a rank the king shares with an enemy
// slider.
func (pos *ChessPosition) canCaptureEp(pawn Square, ctx Context) bool {
	ep := pos.epSquare
	if !PawnAttacks(pos.turn, pawn).Has(ep) {
		return false
	}
	if !ctx.HasKing {
		return true
	}
	captured := ep - Square(gridSize*pos.rules.Forward(pos.turn))
	occupied := pos.board.occupied.Toggle(pawn).Toggle(captured).With(ep)
	return pos.kingAttackers(ctx.King, pos.turn.Other(), occupied).Intersect(occupied).IsEmpty()
}

// castlingDest returns the rook square of side if castling there is legal.
func (pos *ChessPosition) castlingDest(side CastlingSide, ctx Context) SquareSet {
	if !ctx.HasKing || ctx.Checkers.NonEmpty() {
		return EmptySet
	}
	rook, ok := pos.castles.Rook(pos.turn, side)
	if !ok {
		return EmptySet
	}
	if pos.castles.Path(pos.turn, side).Intersects(pos.board.occupied) {
		return EmptySet
	}
	them := pos.turn.Other()
	kingTo := kingCastlesTo(pos.turn, side)
	occupied := pos.board.occupied.Without(ctx.King)
	transit := Between(ctx.King, kingTo)
	for rest := transit; rest.NonEmpty(); {
		var sq Square
		sq, rest = rest.PopFirst()
		if pos.kingAttackers(sq, them, occupied).NonEmpty() {
			return EmptySet
		}
	}
	after := occupied.Without(rook).With(rookCastlesTo(pos.turn, side)).With(kingTo)
	if pos.kingAttackers(kingTo, them, after).NonEmpty() {
		return EmptySet
	}
	return SquareSetOf(rook)
}

// IsCastling reports whether m moves the king onto its own rook.
func (pos *ChessPosition) IsCastling(m Move) bool {
	piece, ok := pos.board.Get(m.From())
	if !ok || piece.Role != King {
		return false
	}
	target, ok := pos.board.Get(m.To())
	return ok && target.Color == piece.Color && target.Role == Rook
}

func (pos *ChessPosition) LegalMoves() []Move {
	ctx := pos.ctx()
	moves := make([]Move, 0, 48)
	pos.board.colors[pos.turn].ForEach(func(from Square) {
		piece, _ := pos.board.Get(from)
		pos.Dests(from, ctx).ForEach(func(to Square) {
			if piece.Role == Pawn && pos.rules.PieceInDeadZone(piece, to) {
				for _, role := range []Role{Knight, Bishop, Rook, Queen} {
					moves = append(moves, NewMove(from, to).WithPromotion(role))
				}
				return
			}
			moves = append(moves, NewMove(from, to))
		})
	})
	return moves
}

func (pos *ChessPosition) IsLegal(m Move, ctx Context) bool {
	piece, ok := pos.ownPiece(m.From())
	if !ok || !pos.Dests(m.From(), ctx).Has(m.To()) {
		return false
	}
	if piece.Role == Pawn && pos.rules.PieceInDeadZone(piece, m.To()) {
		switch m.Promotion() {
		case Knight, Bishop, Rook, Queen:
			return true
		}
		return false
	}
	return m.Promotion() == NoRole && !m.Promotes()
}

// Play applies a legal move.
func (pos *ChessPosition) Play(m Move) {
	from, to := m.From(), m.To()
	turn := pos.turn
	piece, ok := pos.board.Take(from)
	if !ok {
		panic(fmt.Sprintf("variantmg: no piece to move on %d", from))
	}
	epSquare := pos.epSquare
	pos.epSquare = NoSquare
	pos.halfmoves++
	if turn == Black {
		pos.fullmoves++
	}
	pos.turn = turn.Other()

	if piece.Role == King {
		pos.castles.DiscardColor(turn)
		if target, ok := pos.board.Get(to); ok && target.Color == turn && target.Role == Rook {
			side := CastleA
			if to.File() > from.File() {
				side = CastleH
			}
			pos.board.Take(to)
			pos.board.Set(kingCastlesTo(turn, side), piece)
			pos.board.Set(rookCastlesTo(turn, side), target)
			return
		}
	}
	pos.castles.DiscardRook(from)

	if piece.Role == Pawn {
		pos.halfmoves = 0
		delta := Square(gridSize * pos.rules.Forward(turn))
		if to == epSquare && !pos.board.Has(to) {
			pos.board.Take(to - delta)
		}
		if to-from == 2*delta {
			ep := from + delta
			if PawnAttacks(turn, ep).Intersects(pos.board.Pieces(turn.Other(), Pawn)) {
				pos.epSquare = ep
			}
		}
		if promo := m.Promotion(); promo != NoRole {
			piece.Role = promo
		}
	}
	if captured, had := pos.board.Set(to, piece); had {
		pos.halfmoves = 0
		if captured.Role == Rook {
			pos.castles.DiscardRook(to)
		}
	}
}

// StandardUci writes castling as the king's two-square step (e1g1) instead
// of the king-takes-rook form, for tools that only understand standard
// chess.
func (pos *ChessPosition) StandardUci(m Move) string {
	if pos.IsCastling(m) {
		side := CastleA
		if m.To().File() > m.From().File() {
			side = CastleH
		}
		return NewMove(m.From(), kingCastlesTo(pos.turn, side)).Notation(Chess)
	}
	return m.Notation(Chess)
}

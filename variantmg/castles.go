package variantmg

// Castles tracks which rooks may still castle. A castling move is written as
// the king moving onto its own rook, which works for any rook file.
type Castles struct {
	unmovedRooks SquareSet
	rook         [2][2]Square
	path         [2][2]SquareSet
}

// EmptyCastles has no castling rights.
func EmptyCastles() Castles {
	return Castles{rook: [2][2]Square{{NoSquare, NoSquare}, {NoSquare, NoSquare}}}
}

// DefaultCastles is the castling state of the standard starting position.
func DefaultCastles() Castles {
	return Castles{
		unmovedRooks: SquareSetOf(A1, H1, A8, H8),
		rook:         [2][2]Square{{A1, H1}, {A8, H8}},
		path: [2][2]SquareSet{
			{SquareSetOf(B1, C1, D1), SquareSetOf(F1, G1)},
			{SquareSetOf(A8+1, C8, D8), SquareSetOf(F8, G8)},
		},
	}
}

func backRank(c Color) SquareSet {
	if c == White {
		return FromRank(0)
	}
	return FromRank(7)
}

// kingCastlesTo returns the king's square after castling (c or g file).
func kingCastlesTo(c Color, side CastlingSide) Square {
	sq := C1
	if side == CastleH {
		sq = G1
	}
	if c == Black {
		sq += A8
	}
	return sq
}

// rookCastlesTo returns the rook's square after castling (d or f file).
func rookCastlesTo(c Color, side CastlingSide) Square {
	sq := D1
	if side == CastleH {
		sq = F1
	}
	if c == Black {
		sq += A8
	}
	return sq
}

// CastlesFromSetup derives castling rights from a placement and the set of
// rooks that have not moved. The outermost unmoved rook on each side of a
// king standing on its back rank gets the right.
func CastlesFromSetup(board *Board, unmovedRooks SquareSet) Castles {
	castles := EmptyCastles()
	rooks := unmovedRooks.Intersect(board.ByRole(Rook))
	for _, color := range []Color{White, Black} {
		rank := backRank(color)
		king, ok := board.KingOf(color)
		if !ok || !rank.Has(king) {
			continue
		}
		side := rooks.Intersect(board.ByColor(color)).Intersect(rank)
		if a := side.First(); a != NoSquare && a.File() < king.File() {
			castles.add(color, CastleA, king, a)
		}
		if h := side.Last(); h != NoSquare && h.File() > king.File() {
			castles.add(color, CastleH, king, h)
		}
	}
	return castles
}

func (c *Castles) add(color Color, side CastlingSide, king, rook Square) {
	kingTo := kingCastlesTo(color, side)
	rookTo := rookCastlesTo(color, side)
	c.unmovedRooks = c.unmovedRooks.With(rook)
	c.rook[color][side] = rook
	c.path[color][side] = Between(rook, rookTo).With(rookTo).
		Union(Between(king, kingTo).With(kingTo)).
		Without(king).Without(rook)
}

// Rook returns the castling rook of color on side.
func (c *Castles) Rook(color Color, side CastlingSide) (Square, bool) {
	sq := c.rook[color][side]
	return sq, sq != NoSquare
}

// Path returns the squares that must be empty to castle.
func (c *Castles) Path(color Color, side CastlingSide) SquareSet { return c.path[color][side] }

func (c *Castles) UnmovedRooks() SquareSet { return c.unmovedRooks }

// DiscardRook forgets the castling right of the rook on sq, after it moved
// or was captured.
func (c *Castles) DiscardRook(sq Square) {
	if !c.unmovedRooks.Has(sq) {
		return
	}
	c.unmovedRooks = c.unmovedRooks.Without(sq)
	for color := range c.rook {
		for side := range c.rook[color] {
			if c.rook[color][side] == sq {
				c.rook[color][side] = NoSquare
				c.path[color][side] = EmptySet
			}
		}
	}
}

// DiscardColor forgets both castling rights of color, after its king moved.
func (c *Castles) DiscardColor(color Color) {
	c.unmovedRooks = c.unmovedRooks.Diff(backRank(color))
	c.rook[color] = [2]Square{NoSquare, NoSquare}
	c.path[color] = [2]SquareSet{}
}

// Clone returns an independent copy.
func (c *Castles) Clone() Castles { return *c }

package variantmg

import (
	"errors"
	"fmt"
)

// Board is a piece placement: one set per color and one per role, plus their
// union. Board is a plain value; assigning it copies everything.
type Board struct {
	occupied SquareSet
	colors   [2]SquareSet
	roles    [NumRoles]SquareSet
}

// ErrBoardInvariant is returned by Validate.
var ErrBoardInvariant = errors.New("board invariant violated")

// Get returns the piece on sq.
func (b *Board) Get(sq Square) (Piece, bool) {
	if !b.occupied.Has(sq) {
		return Piece{}, false
	}
	c := White
	if b.colors[Black].Has(sq) {
		c = Black
	}
	for r := Pawn; r < NumRoles; r++ {
		if b.roles[r].Has(sq) {
			return Piece{Color: c, Role: r}, true
		}
	}
	return Piece{}, false
}

// Has reports whether sq is occupied.
func (b *Board) Has(sq Square) bool { return b.occupied.Has(sq) }

// Take removes and returns the piece on sq.
func (b *Board) Take(sq Square) (Piece, bool) {
	p, ok := b.Get(sq)
	if !ok {
		return Piece{}, false
	}
	b.occupied = b.occupied.Without(sq)
	b.colors[p.Color] = b.colors[p.Color].Without(sq)
	b.roles[p.Role] = b.roles[p.Role].Without(sq)
	return p, true
}

// Set puts piece on sq and returns whatever stood there before.
func (b *Board) Set(sq Square, piece Piece) (Piece, bool) {
	if !inRange(sq) || piece.Role == NoRole || piece.Role >= NumRoles || piece.Color > Black {
		panic(fmt.Sprintf("variantmg: invalid placement of %v on %d", piece, sq))
	}
	old, had := b.Take(sq)
	b.occupied = b.occupied.With(sq)
	b.colors[piece.Color] = b.colors[piece.Color].With(sq)
	b.roles[piece.Role] = b.roles[piece.Role].With(sq)
	return old, had
}

func (b *Board) Occupied() SquareSet { return b.occupied }
func (b *Board) ByColor(c Color) SquareSet { return b.colors[c] }
func (b *Board) ByRole(r Role) SquareSet { return b.roles[r] }

// Pieces returns the squares holding role pieces of color c.
func (b *Board) Pieces(c Color, r Role) SquareSet {
	return b.colors[c].Intersect(b.roles[r])
}

// KingOf returns the lowest square holding a king of color c.
func (b *Board) KingOf(c Color) (Square, bool) {
	kings := b.Pieces(c, King)
	if kings.IsEmpty() {
		return NoSquare, false
	}
	return kings.First(), true
}

// PresentRoles lists the roles with at least one piece on the board.
func (b *Board) PresentRoles() []Role {
	var out []Role
	for r := Pawn; r < NumRoles; r++ {
		if b.roles[r].NonEmpty() {
			out = append(out, r)
		}
	}
	return out
}

// Equals compares placements. The first player's set follows from the
// occupancy and the second player's set, so it is not compared.
func (b *Board) Equals(o *Board) bool {
	return b.occupied == o.occupied && b.colors[Black] == o.colors[Black] && b.roles == o.roles
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// ForEach calls fn for every piece in ascending square order.
func (b *Board) ForEach(fn func(sq Square, p Piece)) {
	b.occupied.ForEach(func(sq Square) {
		p, _ := b.Get(sq)
		fn(sq, p)
	})
}

// Validate checks that occupancy, colors and roles describe the same
// placement.
func (b *Board) Validate() error {
	if b.colors[White].Intersects(b.colors[Black]) {
		return fmt.Errorf("%w: color sets overlap", ErrBoardInvariant)
	}
	if b.colors[White].Union(b.colors[Black]) != b.occupied {
		return fmt.Errorf("%w: colors do not cover occupancy", ErrBoardInvariant)
	}
	var seen SquareSet
	for r := Pawn; r < NumRoles; r++ {
		if seen.Intersects(b.roles[r]) {
			return fmt.Errorf("%w: square in more than one role (%v)", ErrBoardInvariant, r)
		}
		seen = seen.Union(b.roles[r])
	}
	if b.roles[NoRole].NonEmpty() {
		return fmt.Errorf("%w: squares without role", ErrBoardInvariant)
	}
	if seen != b.occupied {
		return fmt.Errorf("%w: roles do not cover occupancy", ErrBoardInvariant)
	}
	return nil
}

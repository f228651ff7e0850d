package variantmg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Move packs a board move into 32 bits:
//
//	bits 0-7   from square
//	bits 8-15  to square
//	bits 16-23 chess promotion role
//	bit  24    shogi promotion flag
type Move uint32

const (
	moveToShift    = 8
	movePromoShift = 16
	movePromoteBit = 1 << 24

	NoMove Move = 0xffffffff
)

var ErrMove = errors.New("invalid move")

func NewMove(from, to Square) Move {
	return Move(uint32(from)&0xff | (uint32(to)&0xff)<<moveToShift)
}

// WithPromotion sets the role a chess pawn promotes to.
func (m Move) WithPromotion(role Role) Move {
	return m&^(0xff<<movePromoShift) | Move(role)<<movePromoShift
}

// WithPromote marks a shogi-family move as promoting.
func (m Move) WithPromote() Move { return m | movePromoteBit }

func (m Move) From() Square { return Square(m & 0xff) }
func (m Move) To() Square { return Square((m >> moveToShift) & 0xff) }
func (m Move) Promotion() Role { return Role((m >> movePromoShift) & 0xff) }
func (m Move) Promotes() bool { return m&movePromoteBit != 0 || m.Promotion() != NoRole }

var chessPromotionLetters = map[Role]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}

// SquareName writes sq in the variant's coordinates: "e4" in chess, "7g" in
// the shogi family (file counted from the right, rank lettered from the top).
func (r Rules) SquareName(sq Square) string {
	if !r.FullSquareSet().Has(sq) {
		return "-"
	}
	if r == Chess {
		return string(rune('a'+sq.File())) + strconv.Itoa(sq.Rank()+1)
	}
	return strconv.Itoa(sq.File()+1) + string(rune('a'+sq.Rank()))
}

// ParseSquare is the inverse of SquareName.
func (r Rules) ParseSquare(s string) (Square, error) {
	if len(s) < 2 {
		return NoSquare, fmt.Errorf("%w: square %q", ErrMove, s)
	}
	var file, rank int
	var err error
	if r == Chess {
		file = int(s[0]) - 'a'
		rank, err = strconv.Atoi(s[1:])
		rank--
	} else {
		file, err = strconv.Atoi(s[:len(s)-1])
		file--
		rank = int(s[len(s)-1]) - 'a'
	}
	if err != nil {
		return NoSquare, fmt.Errorf("%w: square %q", ErrMove, s)
	}
	sq := SquareAt(file, rank)
	if !r.FullSquareSet().Has(sq) {
		return NoSquare, fmt.Errorf("%w: square %q off the board", ErrMove, s)
	}
	return sq, nil
}

// Notation writes m as UCI (chess) or USI (shogi family).
func (m Move) Notation(r Rules) string {
	if m == NoMove {
		return "0000"
	}
	s := r.SquareName(m.From()) + r.SquareName(m.To())
	if r == Chess {
		if l, ok := chessPromotionLetters[m.Promotion()]; ok {
			s += string(l)
		}
	} else if m.Promotes() {
		s += "+"
	}
	return s
}

// Uci is Notation for chess.
func (m Move) Uci() string { return m.Notation(Chess) }

// Usi is Notation for a shogi-family variant.
func (m Move) Usi(r Rules) string { return m.Notation(r) }

func (m Move) String() string { return m.Uci() }

// ParseMove reads UCI or USI notation. Castling is expected in the
// king-takes-rook form.
func ParseMove(r Rules, s string) (Move, error) {
	if r != Chess {
		return ParseUsi(r, s)
	}
	return ParseUci(s)
}

// ParseUci reads a chess move such as "e2e4" or "e7e8q".
func ParseUci(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("%w: %q", ErrMove, s)
	}
	from, err := Chess.ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := Chess.ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}
	m := NewMove(from, to)
	if len(s) == 5 {
		for role, l := range chessPromotionLetters {
			if l == s[4] {
				return m.WithPromotion(role), nil
			}
		}
		return NoMove, fmt.Errorf("%w: promotion in %q", ErrMove, s)
	}
	return m, nil
}

// ParseUsi reads a shogi-family board move such as "7g7f" or "8h2b+". On
// 12x12 boards files have two digits.
func ParseUsi(r Rules, s string) (Move, error) {
	promote := strings.HasSuffix(s, "+")
	body := strings.TrimSuffix(s, "+")
	split := -1
	for i := 1; i < len(body); i++ {
		if body[i] >= 'a' && body[i] <= 'z' {
			split = i + 1
			break
		}
	}
	if split < 0 || split >= len(body) {
		return NoMove, fmt.Errorf("%w: %q", ErrMove, s)
	}
	from, err := r.ParseSquare(body[:split])
	if err != nil {
		return NoMove, err
	}
	to, err := r.ParseSquare(body[split:])
	if err != nil {
		return NoMove, err
	}
	m := NewMove(from, to)
	if promote {
		m = m.WithPromote()
	}
	return m, nil
}

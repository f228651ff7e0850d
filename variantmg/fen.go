package variantmg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartingFen is the standard chess starting position.
const StartingFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	ErrFen        = errors.New("invalid fen")
	ErrBoard      = errors.New("invalid board")
	ErrTurn       = errors.New("invalid turn")
	ErrCastling   = errors.New("invalid castling")
	ErrEpSquare   = errors.New("invalid en passant square")
	ErrHalfmoves  = errors.New("invalid halfmoves")
	ErrFullmoves  = errors.New("invalid fullmoves")
	ErrHands      = errors.New("invalid hands")
	ErrSfen       = errors.New("invalid sfen")
	ErrBadVariant = errors.New("wrong variant")
)

var (
	chessLetters = map[Role]byte{Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k'}
	shogiLetters = map[Role]byte{
		Pawn: 'p', Lance: 'l', Knight: 'n', Silver: 's', Gold: 'g', Bishop: 'b', Rook: 'r', King: 'k',
	}
	chushogiLetters = map[Role]byte{
		Lance: 'l', Leopard: 'f', Copper: 'c', Silver: 's', Gold: 'g', Elephant: 'e', King: 'k',
		Chariot: 'a', Bishop: 'b', Tiger: 't', Phoenix: 'x', Kirin: 'o', Sidemover: 'm',
		Verticalmover: 'v', Rook: 'r', Horse: 'h', Dragon: 'd', Queen: 'q', Lion: 'n', Pawn: 'p',
		Gobetween: 'i',
	}
)

func lettersOf(r Rules) map[Role]byte {
	switch r {
	case Chess:
		return chessLetters
	case Chushogi:
		return chushogiLetters
	default:
		return shogiLetters
	}
}

// PieceString writes piece as a FEN/SFEN token: upper case for the first
// player, with a '+' prefix for promoted shogi pieces.
func (r Rules) PieceString(piece Piece) string {
	base := r.Unpromote(piece.Role)
	l, ok := lettersOf(r)[base]
	if !ok {
		return "?"
	}
	if piece.Color == Sente {
		l -= 'a' - 'A'
	}
	if r.IsPromoted(piece.Role) {
		return "+" + string(l)
	}
	return string(l)
}

// ParsePiece reads a token written by PieceString.
func (r Rules) ParsePiece(s string) (Piece, bool) {
	promoted := strings.HasPrefix(s, "+")
	s = strings.TrimPrefix(s, "+")
	if len(s) != 1 {
		return Piece{}, false
	}
	c := s[0]
	color := Gote
	if c >= 'A' && c <= 'Z' {
		color = Sente
		c += 'a' - 'A'
	}
	for role, l := range lettersOf(r) {
		if l != c || !r.HasRole(role) {
			continue
		}
		if promoted {
			p, ok := r.Promote(role)
			if !ok {
				return Piece{}, false
			}
			role = p
		}
		return Piece{Color: color, Role: role}, true
	}
	return Piece{}, false
}

// ParseBoardFen reads the placement field of a chess FEN.
func ParseBoardFen(s string) (Board, error) {
	var b Board
	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return b, fmt.Errorf("%w: %d ranks", ErrBoard, len(ranks))
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := Chess.ParsePiece(string(c))
			if !ok || file > 7 {
				return b, fmt.Errorf("%w: %q in rank %d", ErrBoard, c, rank+1)
			}
			b.Set(SquareAt(file, rank), piece)
			file++
		}
		if file != 8 {
			return b, fmt.Errorf("%w: rank %d has %d files", ErrBoard, rank+1, file)
		}
	}
	return b, nil
}

// MakeBoardFen writes the placement field of a chess FEN.
func MakeBoardFen(b *Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece, ok := b.Get(SquareAt(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(Chess.PieceString(piece))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func parseCastling(b *Board, s string) (SquareSet, error) {
	var unmoved SquareSet
	if s == "-" {
		return unmoved, nil
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		color := Black
		if c >= 'A' && c <= 'Z' {
			color = White
			c += 'a' - 'A'
		}
		candidates := b.Pieces(color, Rook).Intersect(backRank(color))
		var rook Square
		switch {
		case c == 'k':
			rook = candidates.Last()
		case c == 'q':
			rook = candidates.First()
		case c >= 'a' && c <= 'h':
			rook = candidates.Intersect(FromFile(int(c - 'a'))).First()
		default:
			return unmoved, fmt.Errorf("%w: %q", ErrCastling, s)
		}
		if rook == NoSquare {
			return unmoved, fmt.Errorf("%w: no rook for %q", ErrCastling, s[i])
		}
		unmoved = unmoved.With(rook)
	}
	return unmoved, nil
}

// ParseFen reads a chess position. Missing trailing fields take their
// defaults (white to move, no castling, no en passant, 0, 1).
func ParseFen(fen string) (*ChessPosition, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 || len(parts) > 6 {
		return nil, fmt.Errorf("%w: %q", ErrFen, fen)
	}
	board, err := ParseBoardFen(parts[0])
	if err != nil {
		return nil, err
	}
	field := func(i int, def string) string {
		if i < len(parts) {
			return parts[i]
		}
		return def
	}

	var turn Color
	switch field(1, "w") {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return nil, fmt.Errorf("%w: %q", ErrTurn, parts[1])
	}

	unmoved, err := parseCastling(&board, field(2, "-"))
	if err != nil {
		return nil, err
	}

	ep := NoSquare
	if s := field(3, "-"); s != "-" {
		if ep, err = Chess.ParseSquare(s); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrEpSquare, s)
		}
	}

	halfmoves, err := strconv.Atoi(field(4, "0"))
	if err != nil || halfmoves < 0 {
		return nil, fmt.Errorf("%w: %q", ErrHalfmoves, field(4, "0"))
	}
	fullmoves, err := strconv.Atoi(field(5, "1"))
	if err != nil || fullmoves < 0 {
		return nil, fmt.Errorf("%w: %q", ErrFullmoves, field(5, "1"))
	}
	return NewChess(board, turn, unmoved, ep, halfmoves, max(fullmoves, 1)), nil
}

func (pos *ChessPosition) castlingFen() string {
	var sb strings.Builder
	for _, color := range []Color{White, Black} {
		candidates := pos.board.Pieces(color, Rook).Intersect(backRank(color))
		for _, side := range []CastlingSide{CastleH, CastleA} {
			rook, ok := pos.castles.Rook(color, side)
			if !ok {
				continue
			}
			var c byte
			switch {
			case side == CastleH && rook == candidates.Last():
				c = 'k'
			case side == CastleA && rook == candidates.First():
				c = 'q'
			default:
				c = byte('a' + rook.File())
			}
			if color == White {
				c -= 'a' - 'A'
			}
			sb.WriteByte(c)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// Fen writes the position in FEN, using Shredder letters for castling rooks
// that are not the outermost ones.
func (pos *ChessPosition) Fen() string {
	turn := "w"
	if pos.turn == Black {
		turn = "b"
	}
	ep := "-"
	if pos.epSquare != NoSquare {
		ep = Chess.SquareName(pos.epSquare)
	}
	return strings.Join([]string{
		MakeBoardFen(&pos.board),
		turn,
		pos.castlingFen(),
		ep,
		strconv.Itoa(pos.halfmoves),
		strconv.Itoa(pos.fullmoves),
	}, " ")
}

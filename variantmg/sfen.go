package variantmg

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBoardSfen reads the placement field of an SFEN. Ranks are listed from
// rank a, files from the highest number down to 1.
func ParseBoardSfen(rules Rules, s string) (Board, error) {
	var b Board
	if !rules.IsShogiFamily() {
		return b, fmt.Errorf("%w: %v", ErrBadVariant, rules)
	}
	dims := rules.Dimensions()
	rows := strings.Split(s, "/")
	if len(rows) != dims.Ranks {
		return b, fmt.Errorf("%w: %d ranks", ErrBoard, len(rows))
	}
	for rank, row := range rows {
		file := dims.Files - 1
		for i := 0; i < len(row); {
			c := row[i]
			if c >= '0' && c <= '9' {
				j := i
				for j < len(row) && row[j] >= '0' && row[j] <= '9' {
					j++
				}
				n, _ := strconv.Atoi(row[i:j])
				if n == 0 {
					return b, fmt.Errorf("%w: empty run %q", ErrBoard, row[i:j])
				}
				file -= n
				i = j
				continue
			}
			token := string(c)
			if c == '+' && i+1 < len(row) {
				token = row[i : i+2]
			}
			piece, ok := rules.ParsePiece(token)
			if !ok || file < 0 {
				return b, fmt.Errorf("%w: %q in rank %d", ErrBoard, token, rank+1)
			}
			b.Set(SquareAt(file, rank), piece)
			file--
			i += len(token)
		}
		if file != -1 {
			return b, fmt.Errorf("%w: rank %d has the wrong width", ErrBoard, rank+1)
		}
	}
	return b, nil
}

// MakeBoardSfen writes the placement field of an SFEN.
func MakeBoardSfen(rules Rules, b *Board) string {
	dims := rules.Dimensions()
	var sb strings.Builder
	for rank := 0; rank < dims.Ranks; rank++ {
		empty := 0
		for file := dims.Files - 1; file >= 0; file-- {
			piece, ok := b.Get(SquareAt(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(rules.PieceString(piece))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank < dims.Ranks-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// validHands checks the syntax of an SFEN hands field: "-" or a list of
// optionally counted unpromoted pieces such as "2Pb".
func validHands(rules Rules, s string) bool {
	if s == "-" {
		return true
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		digits := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
		if digits > 2 || i >= len(s) {
			return false
		}
		piece, ok := rules.ParsePiece(s[i : i+1])
		if !ok || piece.Role == King {
			return false
		}
	}
	return true
}

// ParseSfen reads a shogi-family position. Missing trailing fields default
// to sente to move, empty hands and move number 1.
func ParseSfen(rules Rules, sfen string) (*ShogiPosition, error) {
	if !rules.IsShogiFamily() {
		return nil, fmt.Errorf("%w: %v", ErrBadVariant, rules)
	}
	parts := strings.Fields(sfen)
	if len(parts) == 0 || len(parts) > 4 {
		return nil, fmt.Errorf("%w: %q", ErrSfen, sfen)
	}
	board, err := ParseBoardSfen(rules, parts[0])
	if err != nil {
		return nil, err
	}
	turn := Sente
	if len(parts) > 1 {
		switch parts[1] {
		case "b":
		case "w":
			turn = Gote
		default:
			return nil, fmt.Errorf("%w: %q", ErrTurn, parts[1])
		}
	}
	hands := "-"
	if len(parts) > 2 {
		hands = parts[2]
		if !validHands(rules, hands) {
			return nil, fmt.Errorf("%w: %q", ErrHands, hands)
		}
	}
	moveNumber := 1
	if len(parts) > 3 {
		n, err := strconv.Atoi(parts[3])
		if err != nil || n < 0 || len(parts[3]) > 4 {
			return nil, fmt.Errorf("%w: %q", ErrFullmoves, parts[3])
		}
		moveNumber = max(n, 1)
	}
	return NewShogi(rules, board, turn, hands, moveNumber), nil
}

// Sfen writes the position in SFEN. The move number is clamped to the four
// digits ParseSfen accepts.
func (pos *ShogiPosition) Sfen() string {
	turn := "b"
	if pos.turn == Gote {
		turn = "w"
	}
	return strings.Join([]string{
		MakeBoardSfen(pos.rules, &pos.board),
		turn,
		pos.hands,
		strconv.Itoa(min(max(pos.fullmoves, 1), 9999)),
	}, " ")
}

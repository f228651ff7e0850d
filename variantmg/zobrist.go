package variantmg

import "math/rand"

// Zobrist keys for pieces, castling rooks, en passant file and side to move.
var (
	zobristPiece     [2][NumRoles][NumSquares]uint64
	zobristCastle    [NumSquares]uint64 // keyed by castling rook square
	zobristEnPassant [gridSize]uint64
	zobristSide      uint64
	zobristRules     [numRules]uint64
)

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so hashes are reproducible across runs
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := range zobristPiece {
		for r := range zobristPiece[c] {
			for sq := range zobristPiece[c][r] {
				zobristPiece[c][r][sq] = rnd.Uint64()
			}
		}
	}
	for sq := range zobristCastle {
		zobristCastle[sq] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
	for r := range zobristRules {
		zobristRules[r] = rnd.Uint64()
	}
}

func (p *position) hash() uint64 {
	key := zobristRules[p.rules]
	p.board.ForEach(func(sq Square, piece Piece) {
		key ^= zobristPiece[piece.Color][piece.Role][sq]
	})
	if p.turn == Gote {
		key ^= zobristSide
	}
	return key
}

// Hash returns the Zobrist key of the position. Castling rooks and the en
// passant file are part of the key.
func (pos *ChessPosition) Hash() uint64 {
	key := pos.position.hash()
	for _, c := range []Color{White, Black} {
		for _, side := range []CastlingSide{CastleA, CastleH} {
			if rook, ok := pos.castles.Rook(c, side); ok {
				key ^= zobristCastle[rook]
			}
		}
	}
	if pos.epSquare != NoSquare {
		key ^= zobristEnPassant[pos.epSquare.File()]
	}
	return key
}

// Hash returns the Zobrist key of the board and side to move. Hands do not
// take part since they never affect move generation here.
func (pos *ShogiPosition) Hash() uint64 {
	return pos.position.hash()
}

package variantmg

// Square indexes the 16x16 grid: square = rank*16 + file. Only the lower-left
// files x ranks of a variant's board are on the board.
type Square int

const (
	gridSize   = 16
	NumSquares = gridSize * gridSize

	NoSquare Square = -1
)

// SquareAt returns the square at file and rank, or NoSquare when either
// coordinate is off the grid.
func SquareAt(file, rank int) Square {
	if file < 0 || file >= gridSize || rank < 0 || rank >= gridSize {
		return NoSquare
	}
	return Square(rank*gridSize + file)
}

func (sq Square) File() int { return int(sq) & (gridSize - 1) }
func (sq Square) Rank() int { return int(sq) >> 4 }

// Chess squares used by castling and tests.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 7 * gridSize
	C8 Square = A8 + 2
	D8 Square = A8 + 3
	E8 Square = A8 + 4
	F8 Square = A8 + 5
	G8 Square = A8 + 6
	H8 Square = A8 + 7
)

// Color is the side a piece belongs to. Shogi names the first player sente,
// chess calls it white.
type Color uint8

const (
	Sente Color = iota
	Gote

	White = Sente
	Black = Gote
)

func (c Color) Other() Color { return c ^ 1 }

// Role is the kind of a piece. The enumeration is closed and shared by all
// variants; each variant uses a subset (see Rules.Roles).
type Role uint8

const (
	NoRole Role = iota

	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	Lance
	Silver
	Gold
	Tokin
	PromotedLance
	PromotedKnight
	PromotedSilver
	Horse
	Dragon

	Leopard
	Copper
	Elephant
	Chariot
	Tiger
	Kirin
	Phoenix
	Sidemover
	Verticalmover
	Lion
	Gobetween
	Prince
	Whale
	WhiteHorse
	Stag
	Boar
	Ox
	Falcon
	Eagle
	ElephantPromoted
	BishopPromoted
	SidemoverPromoted
	VerticalmoverPromoted
	RookPromoted
	HorsePromoted
	DragonPromoted
	QueenPromoted
	LionPromoted

	NumRoles
)

var roleNames = [NumRoles]string{
	"none",
	"pawn", "knight", "bishop", "rook", "queen", "king",
	"lance", "silver", "gold", "tokin", "promotedlance", "promotedknight", "promotedsilver", "horse", "dragon",
	"leopard", "copper", "elephant", "chariot", "tiger", "kirin", "phoenix", "sidemover", "verticalmover",
	"lion", "gobetween", "prince", "whale", "whitehorse", "stag", "boar", "ox", "falcon", "eagle",
	"elephantpromoted", "bishoppromoted", "sidemoverpromoted", "verticalmoverpromoted", "rookpromoted",
	"horsepromoted", "dragonpromoted", "queenpromoted", "lionpromoted",
}

func (r Role) String() string {
	if r >= NumRoles {
		return "invalid"
	}
	return roleNames[r]
}

// Piece is a role owned by a color.
type Piece struct {
	Color Color
	Role  Role
}

// CastlingSide names the rook a king castles with by the board edge it
// starts nearest to.
type CastlingSide uint8

const (
	CastleA CastlingSide = iota // towards the a-file (queenside)
	CastleH                     // towards the h-file (kingside)
)

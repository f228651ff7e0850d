package variantmg

// Directions in grid space. Indices 0, 2, 4, 5 increase the square index;
// their opposites decrease it.
const (
	dirN = iota
	dirS
	dirE
	dirW
	dirNE
	dirNW
	dirSE
	dirSW
	numDirs
)

var (
	dirSteps = [numDirs]offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	oppDir   = [numDirs]int{dirS, dirN, dirW, dirE, dirSW, dirSE, dirNW, dirNE}
)

func increasing(dir int) bool {
	return dir == dirN || dir == dirE || dir == dirNE || dir == dirNW
}

func directionOf(df, dr int) int {
	for d, s := range dirSteps {
		if s.file == df && s.rank == dr {
			return d
		}
	}
	return -1
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// alignment returns the direction from a to b, or -1 if the squares do not
// share a rank, file or diagonal.
func alignment(a, b Square) int {
	if !inRange(a) || !inRange(b) || a == b {
		return -1
	}
	df, dr := b.File()-a.File(), b.Rank()-a.Rank()
	if df != 0 && dr != 0 && abs(df) != abs(dr) {
		return -1
	}
	return directionOf(sign(df), sign(dr))
}

type rayTable [numDirs][NumSquares]SquareSet

// attackTable holds the precomputed geometry of one variant.
type attackTable struct {
	rays   rayTable
	leaps  [NumRoles]*[2][NumSquares]SquareSet
	slides [NumRoles][2][]int
}

var (
	// gridRays are rays on the whole 16x16 grid. Between does not depend on
	// the variant, so it uses these.
	gridRays = buildRays(Dimensions{gridSize, gridSize})

	tables = buildTables()
)

func buildRays(d Dimensions) *rayTable {
	var t rayTable
	for rank := 0; rank < d.Ranks; rank++ {
		for file := 0; file < d.Files; file++ {
			sq := SquareAt(file, rank)
			for dir, step := range dirSteps {
				f, r := file+step.file, rank+step.rank
				var ray SquareSet
				for f >= 0 && f < d.Files && r >= 0 && r < d.Ranks {
					ray = ray.With(SquareAt(f, r))
					f += step.file
					r += step.rank
				}
				t[dir][sq] = ray
			}
		}
	}
	return &t
}

func buildTables() [numRules]*attackTable {
	var out [numRules]*attackTable
	for _, r := range AllRules() {
		d := r.Dimensions()
		t := &attackTable{rays: *buildRays(d)}
		for role, m := range movementsOf(r) {
			if !r.HasRole(role) {
				continue
			}
			for _, c := range []Color{Sente, Gote} {
				fwd := r.Forward(c)
				for _, s := range m.slides {
					t.slides[role][c] = append(t.slides[role][c], directionOf(s.file, s.rank*fwd))
				}
				if len(m.leaps) == 0 {
					continue
				}
				if t.leaps[role] == nil {
					t.leaps[role] = new([2][NumSquares]SquareSet)
				}
				for rank := 0; rank < d.Ranks; rank++ {
					for file := 0; file < d.Files; file++ {
						var mask SquareSet
						for _, l := range m.leaps {
							f, rk := file+l.file, rank+l.rank*fwd
							if f >= 0 && f < d.Files && rk >= 0 && rk < d.Ranks {
								mask = mask.With(SquareAt(f, rk))
							}
						}
						t.leaps[role][c][SquareAt(file, rank)] = mask
					}
				}
			}
		}
		out[r] = t
	}
	return out
}

// slide returns the squares reached from sq in one direction, stopping at and
// including the first occupied square.
func (t *rayTable) slide(dir int, sq Square, occupied SquareSet) SquareSet {
	ray := t[dir][sq]
	blockers := ray.Intersect(occupied)
	if blockers.IsEmpty() {
		return ray
	}
	var first Square
	if increasing(dir) {
		first = blockers.First()
	} else {
		first = blockers.Last()
	}
	return ray.Diff(t[dir][first])
}

// Attacks returns the squares attacked by piece standing on sq under the
// given occupancy. Off-board squares and roles foreign to the variant attack
// nothing.
func Attacks(rules Rules, piece Piece, sq Square, occupied SquareSet) SquareSet {
	if piece.Role >= NumRoles || piece.Color > Gote || !rules.FullSquareSet().Has(sq) {
		return EmptySet
	}
	t := tables[rules]
	var att SquareSet
	if l := t.leaps[piece.Role]; l != nil {
		att = l[piece.Color][sq]
	}
	for _, dir := range t.slides[piece.Role][piece.Color] {
		att = att.Union(t.rays.slide(dir, sq, occupied))
	}
	return att
}

// RangedAttacks returns only the sliding part of Attacks.
func RangedAttacks(rules Rules, piece Piece, sq Square, occupied SquareSet) SquareSet {
	if piece.Role >= NumRoles || piece.Color > Gote || !rules.FullSquareSet().Has(sq) {
		return EmptySet
	}
	t := tables[rules]
	var att SquareSet
	for _, dir := range t.slides[piece.Role][piece.Color] {
		att = att.Union(t.rays.slide(dir, sq, occupied))
	}
	return att
}

// IsRanged reports whether role slides in the variant.
func IsRanged(rules Rules, role Role) bool {
	return role < NumRoles && len(tables[rules].slides[role][Sente]) > 0
}

func chessSquare(sq Square) bool { return boardMasks[Chess].Has(sq) }

func KnightAttacks(sq Square) SquareSet {
	if !chessSquare(sq) {
		return EmptySet
	}
	return tables[Chess].leaps[Knight][White][sq]
}

func KingAttacks(sq Square) SquareSet {
	if !chessSquare(sq) {
		return EmptySet
	}
	return tables[Chess].leaps[King][White][sq]
}

// PawnAttacks returns the two forward diagonals of a chess pawn of color c.
func PawnAttacks(c Color, sq Square) SquareSet {
	if !chessSquare(sq) || c > Black {
		return EmptySet
	}
	return tables[Chess].leaps[Pawn][c][sq]
}

func RookAttacks(sq Square, occupied SquareSet) SquareSet {
	return RangedAttacks(Chess, Piece{White, Rook}, sq, occupied)
}

func BishopAttacks(sq Square, occupied SquareSet) SquareSet {
	return RangedAttacks(Chess, Piece{White, Bishop}, sq, occupied)
}

func QueenAttacks(sq Square, occupied SquareSet) SquareSet {
	return RookAttacks(sq, occupied).Union(BishopAttacks(sq, occupied))
}

// Ray returns the full line through a and b, both included, clipped to the
// variant's board. It is empty when the squares are not aligned or not both
// on the board.
func Ray(rules Rules, a, b Square) SquareSet {
	mask := rules.FullSquareSet()
	if !mask.Has(a) || !mask.Has(b) {
		return EmptySet
	}
	dir := alignment(a, b)
	if dir < 0 {
		return EmptySet
	}
	rays := &tables[rules].rays
	return rays[dir][a].Union(rays[oppDir[dir]][a]).With(a)
}

// Between returns the squares strictly between a and b on a shared line.
func Between(a, b Square) SquareSet {
	dir := alignment(a, b)
	if dir < 0 {
		return EmptySet
	}
	return gridRays[dir][a].Diff(gridRays[dir][b]).Without(b)
}

// AttacksTo returns the attacker pieces that reach sq under occupied. Each
// role is asked from sq for the opposite color, which traces the same lines
// backwards.
func AttacksTo(rules Rules, board *Board, sq Square, attacker Color, occupied SquareSet) SquareSet {
	var out SquareSet
	defender := attacker.Other()
	for _, role := range rules.Roles() {
		pieces := board.Pieces(attacker, role)
		if pieces.IsEmpty() {
			continue
		}
		out = out.Union(Attacks(rules, Piece{defender, role}, sq, occupied).Intersect(pieces))
	}
	return out
}

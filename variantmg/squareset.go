package variantmg

import (
	"math/bits"
	"strconv"
	"strings"
)

// SquareSet is a set of squares backed by 256 bits. Squares are laid out with
// a stride of 16 per rank, which covers every supported board up to 12x12.
//
// SquareSet is a value type: every method returns a new set and leaves the
// receiver untouched.
type SquareSet struct {
	w [4]uint64
}

// EmptySet is the set without any square.
var EmptySet = SquareSet{}

// FullSet contains every representable square, on or off a given board.
var FullSet = SquareSet{w: [4]uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}}

// SquareSetOf returns the set containing exactly the given squares. Squares
// outside the representable range are ignored.
func SquareSetOf(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.With(sq)
	}
	return s
}

// FromRank returns the 16 squares of a rank on the full grid.
func FromRank(rank int) SquareSet {
	if rank < 0 || rank >= gridSize {
		return EmptySet
	}
	var s SquareSet
	s.w[rank>>2] = uint64(0xffff) << (uint(rank&3) * 16)
	return s
}

// FromFile returns the 16 squares of a file on the full grid.
func FromFile(file int) SquareSet {
	if file < 0 || file >= gridSize {
		return EmptySet
	}
	col := uint64(0x0001000100010001) << uint(file)
	return SquareSet{w: [4]uint64{col, col, col, col}}
}

func inRange(sq Square) bool { return sq >= 0 && sq < NumSquares }

// Has reports whether sq is in the set. Squares outside the representable
// range are never members.
func (s SquareSet) Has(sq Square) bool {
	if !inRange(sq) {
		return false
	}
	return s.w[sq>>6]&(1<<(uint(sq)&63)) != 0
}

// With returns the set with sq added.
func (s SquareSet) With(sq Square) SquareSet {
	if inRange(sq) {
		s.w[sq>>6] |= 1 << (uint(sq) & 63)
	}
	return s
}

// Without returns the set with sq removed.
func (s SquareSet) Without(sq Square) SquareSet {
	if inRange(sq) {
		s.w[sq>>6] &^= 1 << (uint(sq) & 63)
	}
	return s
}

// Toggle flips the membership of sq.
func (s SquareSet) Toggle(sq Square) SquareSet {
	if inRange(sq) {
		s.w[sq>>6] ^= 1 << (uint(sq) & 63)
	}
	return s
}

func (s SquareSet) Union(o SquareSet) SquareSet {
	return SquareSet{w: [4]uint64{s.w[0] | o.w[0], s.w[1] | o.w[1], s.w[2] | o.w[2], s.w[3] | o.w[3]}}
}

func (s SquareSet) Intersect(o SquareSet) SquareSet {
	return SquareSet{w: [4]uint64{s.w[0] & o.w[0], s.w[1] & o.w[1], s.w[2] & o.w[2], s.w[3] & o.w[3]}}
}

// Diff returns the squares of s that are not in o.
func (s SquareSet) Diff(o SquareSet) SquareSet {
	return SquareSet{w: [4]uint64{s.w[0] &^ o.w[0], s.w[1] &^ o.w[1], s.w[2] &^ o.w[2], s.w[3] &^ o.w[3]}}
}

func (s SquareSet) Xor(o SquareSet) SquareSet {
	return SquareSet{w: [4]uint64{s.w[0] ^ o.w[0], s.w[1] ^ o.w[1], s.w[2] ^ o.w[2], s.w[3] ^ o.w[3]}}
}

// Complement returns every representable square not in s. Callers usually
// intersect the result with a board mask.
func (s SquareSet) Complement() SquareSet {
	return SquareSet{w: [4]uint64{^s.w[0], ^s.w[1], ^s.w[2], ^s.w[3]}}
}

func (s SquareSet) Intersects(o SquareSet) bool {
	return s.w[0]&o.w[0] != 0 || s.w[1]&o.w[1] != 0 || s.w[2]&o.w[2] != 0 || s.w[3]&o.w[3] != 0
}

func (s SquareSet) IsDisjoint(o SquareSet) bool { return !s.Intersects(o) }

func (s SquareSet) IsEmpty() bool { return s.w[0]|s.w[1]|s.w[2]|s.w[3] == 0 }

func (s SquareSet) NonEmpty() bool { return !s.IsEmpty() }

func (s SquareSet) Equals(o SquareSet) bool { return s == o }

// MoreThanOne reports whether the set holds at least two squares. It does not
// count bits: two non-zero words, or one word that survives clearing its
// lowest bit, is enough.
func (s SquareSet) MoreThanOne() bool {
	nonZero := 0
	var last uint64
	for _, w := range s.w {
		if w != 0 {
			nonZero++
			last = w
		}
	}
	if nonZero > 1 {
		return true
	}
	return last&(last-1) != 0
}

// SingleSquare returns the only square of the set, or ok=false if the set is
// empty or holds more than one square.
func (s SquareSet) SingleSquare() (sq Square, ok bool) {
	if s.IsEmpty() || s.MoreThanOne() {
		return NoSquare, false
	}
	return s.First(), true
}

// Size returns the number of squares in the set.
func (s SquareSet) Size() int {
	return bits.OnesCount64(s.w[0]) + bits.OnesCount64(s.w[1]) + bits.OnesCount64(s.w[2]) + bits.OnesCount64(s.w[3])
}

// First returns the lowest square, or NoSquare if the set is empty.
func (s SquareSet) First() Square {
	for i, w := range s.w {
		if w != 0 {
			return Square(i*64 + bits.TrailingZeros64(w))
		}
	}
	return NoSquare
}

// Last returns the highest square, or NoSquare if the set is empty.
func (s SquareSet) Last() Square {
	for i := 3; i >= 0; i-- {
		if w := s.w[i]; w != 0 {
			return Square(i*64 + 63 - bits.LeadingZeros64(w))
		}
	}
	return NoSquare
}

// PopFirst splits the set into its lowest square and the remainder. It is
// the loop primitive for ascending iteration:
//
//	for rest := set; rest.NonEmpty(); {
//		var sq Square
//		sq, rest = rest.PopFirst()
//	}
func (s SquareSet) PopFirst() (Square, SquareSet) {
	for i, w := range s.w {
		if w != 0 {
			sq := Square(i*64 + bits.TrailingZeros64(w))
			s.w[i] = w & (w - 1)
			return sq, s
		}
	}
	return NoSquare, s
}

// ForEach calls fn for each square in ascending order.
func (s SquareSet) ForEach(fn func(sq Square)) {
	for i, w := range s.w {
		for w != 0 {
			fn(Square(i*64 + bits.TrailingZeros64(w)))
			w &= w - 1
		}
	}
}

// Squares returns the members in ascending order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Size())
	s.ForEach(func(sq Square) { out = append(out, sq) })
	return out
}

// String lists the squares as grid indices, e.g. "{0 16 17}".
func (s SquareSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.ForEach(func(sq Square) {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(strconv.Itoa(int(sq)))
	})
	sb.WriteByte('}')
	return sb.String()
}

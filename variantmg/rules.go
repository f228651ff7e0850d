package variantmg

import "fmt"

// Rules selects a variant.
type Rules uint8

const (
	Chess Rules = iota
	Shogi
	Minishogi
	Chushogi

	numRules
)

var rulesNames = [numRules]string{"chess", "shogi", "minishogi", "chushogi"}

func (r Rules) String() string {
	if r >= numRules {
		return "unknown"
	}
	return rulesNames[r]
}

// AllRules lists every supported variant.
func AllRules() []Rules { return []Rules{Chess, Shogi, Minishogi, Chushogi} }

// ParseRules maps a variant name to its Rules.
func ParseRules(name string) (Rules, error) {
	for i, n := range rulesNames {
		if n == name {
			return Rules(i), nil
		}
	}
	if name == "standard" {
		return Shogi, nil
	}
	return 0, fmt.Errorf("unknown variant %q", name)
}

// Dimensions is the playable area of a board.
type Dimensions struct {
	Files, Ranks int
}

var rulesDims = [numRules]Dimensions{{8, 8}, {9, 9}, {5, 5}, {12, 12}}

func (r Rules) Dimensions() Dimensions { return rulesDims[r] }

// IsShogiFamily is true for every variant played with shogi conventions.
func (r Rules) IsShogiFamily() bool { return r != Chess }

var rulesRoles = [numRules][]Role{
	Chess: {Pawn, Knight, Bishop, Rook, Queen, King},
	Shogi: {Pawn, Lance, Knight, Silver, Gold, Bishop, Rook, King,
		Tokin, PromotedLance, PromotedKnight, PromotedSilver, Horse, Dragon},
	Minishogi: {Pawn, Silver, Gold, Bishop, Rook, King, Tokin, PromotedSilver, Horse, Dragon},
	Chushogi: {Pawn, Lance, Leopard, Copper, Silver, Gold, Elephant, King, Chariot, Bishop, Tiger,
		Phoenix, Kirin, Sidemover, Verticalmover, Rook, Horse, Dragon, Queen, Lion, Gobetween,
		Tokin, Prince, Whale, WhiteHorse, Stag, Boar, Ox, Falcon, Eagle,
		ElephantPromoted, BishopPromoted, SidemoverPromoted, VerticalmoverPromoted, RookPromoted,
		HorsePromoted, DragonPromoted, QueenPromoted, LionPromoted},
}

// Roles returns the roles that can appear on a board of this variant. The
// returned slice must not be modified.
func (r Rules) Roles() []Role { return rulesRoles[r] }

// HasRole reports whether role belongs to the variant.
func (r Rules) HasRole(role Role) bool {
	for _, x := range rulesRoles[r] {
		if x == role {
			return true
		}
	}
	return false
}

// FullSquareSet returns the on-board squares of the variant.
func (r Rules) FullSquareSet() SquareSet { return boardMasks[r] }

var boardMasks = buildBoardMasks()

// Forward returns the rank step of c's pawns: +1 or -1. In chess the first
// player moves towards higher ranks; in the shogi family towards rank 0.
func (r Rules) Forward(c Color) int {
	if (r == Chess) == (c == White) {
		return 1
	}
	return -1
}

var promotionDepth = [numRules]int{Chess: 1, Shogi: 3, Minishogi: 1, Chushogi: 4}

// PromotionZone returns the ranks in which c's pieces may promote. For chess
// this is the last rank.
func (r Rules) PromotionZone(c Color) SquareSet {
	return promotionZones[r][c]
}

var promotionZones = buildPromotionZones()

// lastRanks returns the n ranks furthest from c's side.
func (r Rules) lastRanks(c Color, n int) SquareSet {
	ranks := r.Dimensions().Ranks
	var s SquareSet
	for i := 0; i < n; i++ {
		rank := ranks - 1 - i
		if r.Forward(c) < 0 {
			rank = i
		}
		s = s.Union(FromRank(rank))
	}
	return s.Intersect(r.FullSquareSet())
}

var (
	shogiPromotions = map[Role]Role{
		Pawn:   Tokin,
		Lance:  PromotedLance,
		Knight: PromotedKnight,
		Silver: PromotedSilver,
		Bishop: Horse,
		Rook:   Dragon,
	}
	chushogiPromotions = map[Role]Role{
		Pawn:          Tokin,
		Gobetween:     ElephantPromoted,
		Lance:         WhiteHorse,
		Leopard:       BishopPromoted,
		Copper:        SidemoverPromoted,
		Silver:        VerticalmoverPromoted,
		Gold:          RookPromoted,
		Elephant:      Prince,
		Chariot:       Whale,
		Bishop:        HorsePromoted,
		Tiger:         Stag,
		Phoenix:       QueenPromoted,
		Kirin:         LionPromoted,
		Sidemover:     Boar,
		Verticalmover: Ox,
		Rook:          DragonPromoted,
		Horse:         Falcon,
		Dragon:        Eagle,
	}

	promotions, unpromotions = buildPromotions()
)

// Promote returns the promoted form of role, if the variant has one. Chess
// pawns choose their promotion and report false here.
func (r Rules) Promote(role Role) (Role, bool) {
	if role >= NumRoles {
		return NoRole, false
	}
	p := promotions[r][role]
	return p, p != NoRole
}

// Unpromote maps a promoted role back to its base role. Unpromoted roles map
// to themselves.
func (r Rules) Unpromote(role Role) Role {
	if role >= NumRoles {
		return role
	}
	if u := unpromotions[r][role]; u != NoRole {
		return u
	}
	return role
}

// IsPromoted reports whether role is the promoted side of a promotion pair.
func (r Rules) IsPromoted(role Role) bool {
	return role < NumRoles && unpromotions[r][role] != NoRole
}

// PieceCanPromote reports whether a move of piece from -> to may promote.
//
// Shogi and minishogi allow promotion whenever the move starts or ends in the
// promotion zone. Chushogi allows it when entering the zone, on a capture
// that starts or ends in the zone, and for pawns and lances reaching the last
// rank.
func (r Rules) PieceCanPromote(piece Piece, from, to Square, capture bool) bool {
	zone := r.PromotionZone(piece.Color)
	switch r {
	case Chess:
		return piece.Role == Pawn && zone.Has(to)
	case Chushogi:
		if _, ok := r.Promote(piece.Role); !ok {
			return false
		}
		inFrom, inTo := zone.Has(from), zone.Has(to)
		if inTo && !inFrom {
			return true
		}
		if capture && (inFrom || inTo) {
			return true
		}
		return (piece.Role == Pawn || piece.Role == Lance) && r.lastRanks(piece.Color, 1).Has(to)
	default:
		if _, ok := r.Promote(piece.Role); !ok {
			return false
		}
		return zone.Has(from) || zone.Has(to)
	}
}

// PieceInDeadZone reports whether piece standing on to could never move
// again, so the move there must promote. Chess pawns are dead on the last
// rank in the same sense.
func (r Rules) PieceInDeadZone(piece Piece, to Square) bool {
	switch r {
	case Chess, Minishogi:
		return piece.Role == Pawn && r.lastRanks(piece.Color, 1).Has(to)
	case Shogi:
		switch piece.Role {
		case Pawn, Lance:
			return r.lastRanks(piece.Color, 1).Has(to)
		case Knight:
			return r.lastRanks(piece.Color, 2).Has(to)
		}
	}
	return false
}

func buildBoardMasks() [numRules]SquareSet {
	var masks [numRules]SquareSet
	for _, r := range AllRules() {
		d := r.Dimensions()
		for rank := 0; rank < d.Ranks; rank++ {
			for file := 0; file < d.Files; file++ {
				masks[r] = masks[r].With(SquareAt(file, rank))
			}
		}
	}
	return masks
}

func buildPromotionZones() [numRules][2]SquareSet {
	var zones [numRules][2]SquareSet
	for _, r := range AllRules() {
		zones[r][Sente] = r.lastRanks(Sente, promotionDepth[r])
		zones[r][Gote] = r.lastRanks(Gote, promotionDepth[r])
	}
	return zones
}

func buildPromotions() (up, down [numRules][NumRoles]Role) {
	fill := func(r Rules, m map[Role]Role) {
		for base, promoted := range m {
			if !r.HasRole(base) {
				continue
			}
			up[r][base] = promoted
			down[r][promoted] = base
		}
	}
	fill(Shogi, shogiPromotions)
	fill(Minishogi, shogiPromotions)
	fill(Chushogi, chushogiPromotions)
	return up, down
}

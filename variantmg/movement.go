package variantmg

// offset is a displacement relative to the moving side: rank > 0 is forward.
type offset struct {
	file, rank int
}

// movement describes a role as single jumps plus sliding directions. Every
// movement is symmetric under a left-right mirror, which lets attack tables
// derive the opponent's moves by flipping ranks only.
type movement struct {
	leaps  []offset
	slides []offset
}

var (
	orthogonal = []offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonal   = []offset{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	allAround  = join(orthogonal, diagonal)

	knightLeaps = []offset{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}

	forward       = offset{0, 1}
	backward      = offset{0, -1}
	sideways      = []offset{{1, 0}, {-1, 0}}
	vertical      = []offset{forward, backward}
	forwardDiags  = []offset{{1, 1}, {-1, 1}}
	backwardDiags = []offset{{1, -1}, {-1, -1}}

	goldSteps   = join([]offset{forward}, forwardDiags, sideways, []offset{backward})
	silverSteps = join([]offset{forward}, forwardDiags, backwardDiags)
	copperSteps = join([]offset{forward}, forwardDiags, []offset{backward})
)

func join(sets ...[]offset) []offset {
	var out []offset
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

func except(set []offset, drop ...offset) []offset {
	var out []offset
outer:
	for _, o := range set {
		for _, d := range drop {
			if o == d {
				continue outer
			}
		}
		out = append(out, o)
	}
	return out
}

func within(dist int) []offset {
	var out []offset
	for dr := -dist; dr <= dist; dr++ {
		for df := -dist; df <= dist; df++ {
			if df != 0 || dr != 0 {
				out = append(out, offset{df, dr})
			}
		}
	}
	return out
}

func leaper(leaps ...[]offset) movement { return movement{leaps: join(leaps...)} }
func slider(slides ...[]offset) movement { return movement{slides: join(slides...)} }

var (
	chessMovements = map[Role]movement{
		Pawn:   leaper(forwardDiags),
		Knight: leaper(knightLeaps),
		Bishop: slider(diagonal),
		Rook:   slider(orthogonal),
		Queen:  slider(allAround),
		King:   leaper(allAround),
	}

	shogiMovements = map[Role]movement{
		Pawn:           leaper([]offset{forward}),
		Lance:          slider([]offset{forward}),
		Knight:         leaper([]offset{{-1, 2}, {1, 2}}),
		Silver:         leaper(silverSteps),
		Gold:           leaper(goldSteps),
		King:           leaper(allAround),
		Bishop:         slider(diagonal),
		Rook:           slider(orthogonal),
		Tokin:          leaper(goldSteps),
		PromotedLance:  leaper(goldSteps),
		PromotedKnight: leaper(goldSteps),
		PromotedSilver: leaper(goldSteps),
		Horse:          {leaps: orthogonal, slides: diagonal},
		Dragon:         {leaps: diagonal, slides: orthogonal},
	}

	chushogiMovements = map[Role]movement{
		Pawn:                  leaper([]offset{forward}),
		Gobetween:             leaper(vertical),
		Lance:                 slider([]offset{forward}),
		Chariot:               slider(vertical),
		Copper:                leaper(copperSteps),
		Silver:                leaper(silverSteps),
		Gold:                  leaper(goldSteps),
		Tokin:                 leaper(goldSteps),
		Leopard:               leaper(except(allAround, sideways...)),
		Elephant:              leaper(except(allAround, backward)),
		ElephantPromoted:      leaper(except(allAround, backward)),
		Tiger:                 leaper(except(allAround, forward)),
		King:                  leaper(allAround),
		Prince:                leaper(allAround),
		Kirin:                 leaper(diagonal, []offset{{0, 2}, {0, -2}, {2, 0}, {-2, 0}}),
		Phoenix:               leaper(orthogonal, []offset{{2, 2}, {-2, 2}, {2, -2}, {-2, -2}}),
		Lion:                  leaper(within(2)),
		LionPromoted:          leaper(within(2)),
		Bishop:                slider(diagonal),
		BishopPromoted:        slider(diagonal),
		Rook:                  slider(orthogonal),
		RookPromoted:          slider(orthogonal),
		Queen:                 slider(allAround),
		QueenPromoted:         slider(allAround),
		Horse:                 {leaps: orthogonal, slides: diagonal},
		HorsePromoted:         {leaps: orthogonal, slides: diagonal},
		Dragon:                {leaps: diagonal, slides: orthogonal},
		DragonPromoted:        {leaps: diagonal, slides: orthogonal},
		Sidemover:             {leaps: vertical, slides: sideways},
		SidemoverPromoted:     {leaps: vertical, slides: sideways},
		Verticalmover:         {leaps: sideways, slides: vertical},
		VerticalmoverPromoted: {leaps: sideways, slides: vertical},
		Whale:                 slider(vertical, backwardDiags),
		WhiteHorse:            slider(vertical, forwardDiags),
		Stag:                  {leaps: join(sideways, diagonal), slides: vertical},
		Boar:                  slider(sideways, diagonal),
		Ox:                    slider(vertical, diagonal),
		Falcon: {
			leaps:  []offset{{0, 1}, {0, 2}},
			slides: join(sideways, []offset{backward}, diagonal),
		},
		Eagle: {
			leaps:  []offset{{1, 1}, {-1, 1}, {2, 2}, {-2, 2}},
			slides: join(orthogonal, backwardDiags),
		},
	}
)

func movementsOf(r Rules) map[Role]movement {
	switch r {
	case Chess:
		return chessMovements
	case Chushogi:
		return chushogiMovements
	default:
		return shogiMovements
	}
}

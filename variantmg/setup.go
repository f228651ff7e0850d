package variantmg

import "fmt"

// Starting positions in FEN (chess) and SFEN (shogi family).
const (
	ShogiStartingSfen     = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"
	MinishogiStartingSfen = "rbsgk/4p/5/P4/KGSBR b - 1"
	ChushogiStartingSfen  = "lfcsgekgscfl/a1b1txot1b1a/mvrhdqndhrvm/pppppppppppp/3i4i3/12/12/3I4I3/PPPPPPPPPPPP/MVRHDNQDHRVM/A1B1TOXT1B1A/LFCSGKEGSCFL b - 1"
)

// StartingPosition returns the FEN or SFEN of a variant's initial position.
func StartingPosition(rules Rules) string {
	switch rules {
	case Chess:
		return StartingFen
	case Shogi:
		return ShogiStartingSfen
	case Minishogi:
		return MinishogiStartingSfen
	default:
		return ChushogiStartingSfen
	}
}

var standardBoards = buildStandardBoards()

func buildStandardBoards() [numRules]Board {
	var boards [numRules]Board
	for _, r := range AllRules() {
		var (
			b   Board
			err error
		)
		placement := StartingPosition(r)
		for i := range placement {
			if placement[i] == ' ' {
				placement = placement[:i]
				break
			}
		}
		if r == Chess {
			b, err = ParseBoardFen(placement)
		} else {
			b, err = ParseBoardSfen(r, placement)
		}
		if err != nil {
			panic(fmt.Sprintf("variantmg: bad starting position for %v: %v", r, err))
		}
		boards[r] = b
	}
	return boards
}

// StandardBoard returns the initial placement of a variant.
func StandardBoard(rules Rules) Board { return standardBoards[rules] }

// Setup parses a FEN for chess or an SFEN for the shogi family.
func Setup(rules Rules, s string) (Position, error) {
	if rules == Chess {
		pos, err := ParseFen(s)
		if err != nil {
			return nil, err
		}
		return pos, nil
	}
	pos, err := ParseSfen(rules, s)
	if err != nil {
		return nil, err
	}
	return pos, nil
}

// DefaultPosition returns the starting position of a variant.
func DefaultPosition(rules Rules) Position {
	if rules == Chess {
		return DefaultChess()
	}
	return DefaultShogi(rules)
}

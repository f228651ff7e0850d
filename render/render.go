// Package render draws positions as SVG.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"variant-engine/variantmg"
)

// Options controls the drawing. SquareSize defaults to 48 pixels.
type Options struct {
	SquareSize int
	// Dests marks destination squares, for instance the result of Dests.
	Dests variantmg.SquareSet
	// From highlights the origin square of Dests when HasFrom is set.
	From    variantmg.Square
	HasFrom bool
	Flip    bool
}

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
	shogiSquare = "fill:#f2c46f;stroke:#000;stroke-width:1"
	fromSquare  = "fill:#cdd26a"
	destMark    = "fill:#000;fill-opacity:0.25"
)

// squareAt returns the top-left corner of sq in board coordinates.
func squareAt(rules variantmg.Rules, sq variantmg.Square, size int, flip bool) (int, int) {
	d := rules.Dimensions()
	col, row := sq.File(), d.Ranks-1-sq.Rank()
	if rules.IsShogiFamily() {
		// files are numbered from the right, rank a is at the top
		col, row = d.Files-1-sq.File(), sq.Rank()
	}
	if flip {
		col, row = d.Files-1-col, d.Ranks-1-row
	}
	return col * size, row * size
}

// Board writes an SVG image of b to w.
func Board(w io.Writer, rules variantmg.Rules, b *variantmg.Board, opt Options) {
	size := opt.SquareSize
	if size <= 0 {
		size = 48
	}
	d := rules.Dimensions()
	canvas := svg.New(w)
	canvas.Start(d.Files*size, d.Ranks*size)
	canvas.Title(fmt.Sprintf("%v board", rules))

	canvas.Gid("squares")
	rules.FullSquareSet().ForEach(func(sq variantmg.Square) {
		x, y := squareAt(rules, sq, size, opt.Flip)
		style := shogiSquare
		if !rules.IsShogiFamily() {
			style = darkSquare
			if (sq.File()+sq.Rank())%2 == 1 {
				style = lightSquare
			}
		}
		if opt.HasFrom && sq == opt.From {
			style = fromSquare
		}
		canvas.Rect(x, y, size, size, style)
	})
	canvas.Gend()

	canvas.Gid("pieces")
	b.ForEach(func(sq variantmg.Square, p variantmg.Piece) {
		if !rules.FullSquareSet().Has(sq) {
			return
		}
		x, y := squareAt(rules, sq, size, opt.Flip)
		fill := "#fff;stroke:#000"
		if p.Color == variantmg.Gote {
			fill = "#000"
		}
		style := fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:%dpx;fill:%s", size/2, fill)
		canvas.Text(x+size/2, y+size*2/3, rules.PieceString(p), style)
	})
	canvas.Gend()

	canvas.Gid("dests")
	opt.Dests.Intersect(rules.FullSquareSet()).ForEach(func(sq variantmg.Square) {
		x, y := squareAt(rules, sq, size, opt.Flip)
		canvas.Circle(x+size/2, y+size/2, size/6, destMark)
	})
	canvas.Gend()
	canvas.End()
}

// Position draws pos with the legal destinations of the piece on from. Pass
// NoSquare to draw the board alone.
func Position(w io.Writer, pos variantmg.Position, from variantmg.Square, size int) {
	opt := Options{SquareSize: size}
	if from != variantmg.NoSquare {
		opt.From, opt.HasFrom = from, true
		opt.Dests = pos.Dests(from, pos.Ctx())
	}
	b := pos.Board()
	Board(w, pos.Rules(), &b, opt)
}

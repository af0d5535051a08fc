package gui

import (
	"github.com/hmidgg/chess/pkg"
)

type BaseStyle int

const (
	BaseLight BaseStyle = iota
	BaseDark
)

const CheckBanner = "Check!"

// Cell is how a single square is drawn
type Cell struct {
	Square    pkg.Square
	Base      BaseStyle
	Highlight bool // destination of the selected piece
	Selected  bool // the selected piece itself
	HasPiece  bool
	Piece     pkg.Piece
	Sprite    Sprite
	Check     bool // king of the side to move, in check
}

// DrawPlan describes one frame. It is rebuilt for every frame and owns
// nothing.
type DrawPlan struct {
	Cells      [64]Cell
	SideToMove pkg.Side
	// Banner is drawn centered over the board when not empty
	Banner string
	// Result is the end of game text, empty while the game is running
	Result string
}

// Highlighted returns the squares drawn with the highlight style
func (p DrawPlan) Highlighted() []pkg.Square {
	var sqs []pkg.Square
	for _, c := range p.Cells {
		if c.Highlight {
			sqs = append(sqs, c.Square)
		}
	}
	return sqs
}

// BuildDrawPlan derives the frame from the board, the selection and the
// game status. A piece without a sprite is a configuration error.
func BuildDrawPlan(view pkg.BoardView, sel pkg.Selection, status pkg.GameStatus, sprites SpriteSet) (DrawPlan, error) {
	plan := DrawPlan{
		SideToMove: view.SideToMove(),
		Result:     status.Result(),
	}
	inCheck := view.InCheck()
	if inCheck {
		plan.Banner = CheckBanner
	}

	for i := range plan.Cells {
		sq := pkg.Square(i)
		cell := Cell{Square: sq, Base: squareBase(sq)}
		if sel.Active {
			cell.Highlight = sel.Dests.Has(sq)
			cell.Selected = sel.Origin == sq
		}
		if p, ok := view.PieceAt(sq); ok {
			sp, err := sprites.Lookup(p)
			if err != nil {
				return DrawPlan{}, err
			}
			cell.HasPiece, cell.Piece, cell.Sprite = true, p, sp
			cell.Check = inCheck && p.Kind == pkg.King && p.Side == plan.SideToMove
		}
		plan.Cells[i] = cell
	}
	return plan, nil
}

func squareBase(sq pkg.Square) BaseStyle {
	if (sq.Row()+sq.Col())%2 == 0 {
		return BaseLight
	}
	return BaseDark
}

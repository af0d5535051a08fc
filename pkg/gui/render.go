package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/hmidgg/chess/pkg"
)

const (
	// room for the rank labels on the left of the board
	leftMargin = 3
	topMargin  = 1
)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// squareBg returns the theme's color corresponding to the cell
func squareBg(c Cell, t Theme) tcell.Color {
	switch {
	case c.Check:
		return t.SquareCheck
	case c.Selected:
		return t.SquareSelected
	case c.Highlight:
		return t.SquareHigh
	case c.Base == BaseDark:
		return t.SquareDark
	default:
		return t.SquareLight
	}
}

// stylePiece applies the theme's style to a piece based upon its side
func stylePiece(p pkg.Piece, sqBg tcell.Color, t Theme) tcell.Style {
	pieceStyle := tcell.StyleDefault.Background(sqBg)
	if p.Side == pkg.White {
		return pieceStyle.Foreground(t.White)
	}
	return pieceStyle.Foreground(t.Black)
}

// drawSquare fills a board square and draws its piece in the middle
func drawSquare(s tcell.Screen, g pkg.Geometry, c Cell, t Theme) {
	sqBg := squareBg(c, t)
	x, y := g.Origin(c.Square)
	bgStyle := tcell.StyleDefault.Background(sqBg)
	for dy := 0; dy < g.CellH; dy++ {
		for dx := 0; dx < g.CellW; dx++ {
			s.SetContent(x+dx, y+dy, ' ', nil, bgStyle)
		}
	}
	if c.HasPiece {
		drawRune(s, x+(g.CellW-1)/2, y+(g.CellH-1)/2, stylePiece(c.Piece, sqBg, t), c.Sprite.Glyph)
	}
}

// drawLabels draws the ranks to the left and the files below the board
func drawLabels(s tcell.Screen, g pkg.Geometry, t Theme) {
	rankStyle := tcell.StyleDefault.Foreground(t.Rank)
	fileStyle := tcell.StyleDefault.Foreground(t.File)
	for i := 0; i < 8; i++ {
		_, y := g.Origin(pkg.NewSquare(i, 0))
		drawRune(s, g.Left-2, y+(g.CellH-1)/2, rankStyle, rune('8'-i))
		x, _ := g.Origin(pkg.NewSquare(0, i))
		drawRune(s, x+(g.CellW-1)/2, g.Top+g.Height(), fileStyle, rune('a'+i))
	}
}

// drawCentered writes text centered on the board's middle row
func drawCentered(s tcell.Screen, g pkg.Geometry, y int, style tcell.Style, text string) {
	x := g.Left + (g.Width()-len([]rune(text)))/2
	if x < g.Left {
		x = g.Left
	}
	drawText(s, x, y, style, text)
}

// drawPlan renders a whole frame
func drawPlan(s tcell.Screen, g pkg.Geometry, plan DrawPlan, t Theme) {
	for _, c := range plan.Cells {
		drawSquare(s, g, c, t)
	}
	drawLabels(s, g, t)

	mid := g.Top + g.Height()/2
	if plan.Banner != "" {
		bannerStyle := tcell.StyleDefault.Foreground(t.Banner).Bold(true)
		drawCentered(s, g, mid-1, bannerStyle, " "+plan.Banner+" ")
	}
	if plan.Result != "" {
		resultStyle := tcell.StyleDefault.Foreground(t.Result).Bold(true).Reverse(true)
		drawCentered(s, g, mid, resultStyle, " "+plan.Result+" ")
	}
}

// boardGeometry picks the largest square size that fits the area. Squares
// are twice as wide as tall so they look square in a terminal.
func boardGeometry(x, y, width, height int) pkg.Geometry {
	cellH := (height - topMargin - 1) / 8
	if w := (width - leftMargin) / 16; w < cellH {
		cellH = w
	}
	if cellH < 1 {
		cellH = 1
	}
	return pkg.NewGeometry(x+leftMargin, y+topMargin, 8*2*cellH, 8*cellH)
}

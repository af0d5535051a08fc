package pkg

// Geometry places the board on a drawing surface. The top-left corner of
// the a8 square is at (Left, Top) and every square is CellW x CellH units,
// whatever the unit of the surface is (pixels, terminal cells).
type Geometry struct {
	Left  int
	Top   int
	CellW int
	CellH int
}

// NewGeometry derives the square size from the board width, the way a
// pixel surface divides its width by eight.
func NewGeometry(left, top, boardWidth, boardHeight int) Geometry {
	return Geometry{
		Left:  left,
		Top:   top,
		CellW: boardWidth / numcols,
		CellH: boardHeight / numrows,
	}
}

func (g Geometry) Width() int  { return g.CellW * numcols }
func (g Geometry) Height() int { return g.CellH * numrows }

// SquareAt maps a surface coordinate to a square. Coordinates outside the
// playing area (margins, labels) report false.
func (g Geometry) SquareAt(x, y int) (Square, bool) {
	if g.CellW <= 0 || g.CellH <= 0 {
		return NoSquare, false
	}
	dx, dy := x-g.Left, y-g.Top
	if dx < 0 || dy < 0 || dx >= g.Width() || dy >= g.Height() {
		return NoSquare, false
	}
	return NewSquare(dy/g.CellH, dx/g.CellW), true
}

// Origin returns the top-left corner of sq on the surface
func (g Geometry) Origin(sq Square) (x, y int) {
	return g.Left + sq.Col()*g.CellW, g.Top + sq.Row()*g.CellH
}

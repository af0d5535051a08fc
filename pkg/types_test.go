package pkg

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareNames(t *testing.T) {
	assert.Equal(t, "a8", NewSquare(0, 0).String())
	assert.Equal(t, "e2", NewSquare(6, 4).String())
	assert.Equal(t, "h1", NewSquare(7, 7).String())
	assert.Equal(t, NoSquare, NewSquare(8, 0))
	assert.Equal(t, NoSquare, NewSquare(0, -1))

	sq, err := ParseSquare("e2")
	require.NoError(t, err)
	assert.Equal(t, NewSquare(6, 4), sq)
	_, err = ParseSquare("i9")
	assert.Error(t, err)
}

func TestChessSquareConversion(t *testing.T) {
	assert.Equal(t, chess.A1, toChessSquare(NewSquare(7, 0)))
	assert.Equal(t, chess.E2, toChessSquare(NewSquare(6, 4)))
	assert.Equal(t, chess.H8, toChessSquare(NewSquare(0, 7)))
	for i := 0; i < numOfSquaresInBoard; i++ {
		assert.Equal(t, Square(i), fromChessSquare(toChessSquare(Square(i))))
	}
}

func TestParsePieces(t *testing.T) {
	for _, p := range Pieces {
		got, err := ParsePieceKey(p.Key())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePieceKey("xK")
	assert.Error(t, err)

	k, err := ParseKind("n")
	require.NoError(t, err)
	assert.Equal(t, Knight, k)
	k, err = ParseKind("Queen")
	require.NoError(t, err)
	assert.Equal(t, Queen, k)
	_, err = ParseKind("z")
	assert.Error(t, err)
}

func TestSquareSet(t *testing.T) {
	s := SquareSetOf(NewSquare(5, 4), NewSquare(4, 4))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(NewSquare(4, 4)))
	assert.False(t, s.Has(NewSquare(3, 4)))
	assert.False(t, s.Has(NoSquare))
	assert.Equal(t, []Square{NewSquare(4, 4), NewSquare(5, 4)}, s.Squares())
	assert.Equal(t, "{e4 e3}", s.String())

	s = s.Remove(NewSquare(4, 4))
	assert.Equal(t, []Square{NewSquare(5, 4)}, s.Squares())
	assert.True(t, SquareSet(0).Empty())
	assert.Equal(t, SquareSet(0), SquareSet(0).Add(NoSquare))
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "e2e4", Move{From: NewSquare(6, 4), To: NewSquare(4, 4)}.String())
	assert.Equal(t, "a7a8q", Move{From: NewSquare(1, 0), To: NewSquare(0, 0), Promo: Queen, IsPromotion: true}.String())
}

func TestGeometry(t *testing.T) {
	// 400 pixel board with a 50 pixel margin on the left
	g := NewGeometry(50, 0, 400, 400)
	assert.Equal(t, 50, g.CellW)
	assert.Equal(t, 50, g.CellH)

	cases := []struct {
		x, y int
		sq   Square
		ok   bool
	}{
		{0, 0, NoSquare, false},
		{49, 10, NoSquare, false},
		{50, 0, NewSquare(0, 0), true},
		{99, 49, NewSquare(0, 0), true},
		{100, 50, NewSquare(1, 1), true},
		{449, 399, NewSquare(7, 7), true},
		{450, 0, NoSquare, false},
		{60, 400, NoSquare, false},
		{60, -1, NoSquare, false},
	}
	for _, c := range cases {
		sq, ok := g.SquareAt(c.x, c.y)
		assert.Equal(t, c.ok, ok, "(%d,%d)", c.x, c.y)
		assert.Equal(t, c.sq, sq, "(%d,%d)", c.x, c.y)
	}

	x, y := g.Origin(NewSquare(6, 4))
	assert.Equal(t, 250, x)
	assert.Equal(t, 300, y)
	_, ok := Geometry{}.SquareAt(0, 0)
	assert.False(t, ok)
}

func TestStatusResult(t *testing.T) {
	assert.Equal(t, "", GameStatus{}.Result())
	assert.Equal(t, "White wins", CheckmateStatus(White).Result())
	assert.Equal(t, "Draw", DrawStatus(DrawFivefoldRepetition).Result())
	assert.Equal(t, "Draw(InsufficientMaterial)", DrawStatus(DrawInsufficientMaterial).String())
}

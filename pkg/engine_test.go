package pkg

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineInitialPosition(t *testing.T) {
	e := NewEngine()
	assert.Len(t, e.LegalMoves(), 20)
	assert.Equal(t, White, e.SideToMove())
	assert.False(t, e.InCheck())
	assert.False(t, e.Checkmate())
	assert.False(t, e.Stalemate())
	_, draw := e.Draw()
	assert.False(t, draw)

	p, ok := e.PieceAt(NewSquare(0, 4))
	require.True(t, ok)
	assert.Equal(t, Piece{Black, King}, p)
	p, ok = e.PieceAt(NewSquare(7, 3))
	require.True(t, ok)
	assert.Equal(t, Piece{White, Queen}, p)
	_, ok = e.PieceAt(NewSquare(4, 4))
	assert.False(t, ok)
	_, ok = e.PieceAt(NoSquare)
	assert.False(t, ok)
}

func TestEngineApply(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.Apply(Move{From: NewSquare(6, 4), To: NewSquare(4, 4)}))
	assert.Equal(t, Black, e.SideToMove())
	assert.True(t, strings.HasPrefix(e.Position(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq "))

	err := e.Apply(Move{From: NewSquare(6, 3), To: NewSquare(4, 3)})
	require.Error(t, err)
	assert.Equal(t, ErrIllegalMove, errors.Cause(err))
}

func TestEngineFromFEN(t *testing.T) {
	_, err := NewEngineFromFEN("not a position")
	require.Error(t, err)
	assert.Equal(t, ErrInvalidFEN, errors.Cause(err))
}

func TestEngineCheckWithoutMoves(t *testing.T) {
	e, err := NewEngineFromFEN("4k3/8/8/8/8/8/8/4R1K1 b - - 0 1")
	require.NoError(t, err)
	assert.True(t, e.InCheck())

	e, err = NewEngineFromFEN("4k3/8/8/8/8/8/8/3R2K1 b - - 0 1")
	require.NoError(t, err)
	assert.False(t, e.InCheck())
}

func TestEngineCheckByPinnedPiece(t *testing.T) {
	// the rook on e5 is pinned to its own king by the queen on b5
	e, err := NewEngineFromFEN("8/8/8/1Q2r2k/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, e.InCheck())
}

func TestEngineCheckFromSetup(t *testing.T) {
	for fen, want := range map[string]bool{
		"4k3/8/8/8/8/8/3p4/4K3 w - - 0 1":  true,
		"4k3/8/8/8/8/8/4p3/4K3 w - - 0 1":  false,
		"4k3/8/8/8/8/5n2/8/4K3 w - - 0 1":  true,
		"4k3/8/8/8/8/8/8/1b2K3 w - - 0 1":  false,
		"4k3/8/8/b7/8/8/8/4K3 w - - 0 1":   true,
		"4k3/8/8/b7/8/8/3P4/4K3 w - - 0 1": false,
		"4k3/5P2/8/8/8/8/8/4K3 b - - 0 1":  true,
	} {
		e, err := NewEngineFromFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, want, e.InCheck(), fen)
	}
}

func TestEngineCheckAfterMove(t *testing.T) {
	e := NewEngine()
	for _, m := range []string{"e2e4", "f7f6", "d1h5"} {
		from, _ := ParseSquare(m[:2])
		to, _ := ParseSquare(m[2:])
		require.NoError(t, e.Apply(Move{From: from, To: to}))
	}
	assert.True(t, e.InCheck())
	assert.False(t, e.Checkmate())
}

func TestEnginePromotionMoves(t *testing.T) {
	e, err := NewEngineFromFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	require.NoError(t, err)

	a7, a8 := NewSquare(1, 0), NewSquare(0, 0)
	var promos []Kind
	for _, m := range e.LegalMoves() {
		if m.From == a7 && m.To == a8 {
			require.True(t, m.IsPromotion)
			promos = append(promos, m.Promo)
		}
	}
	assert.ElementsMatch(t, []Kind{Queen, Rook, Bishop, Knight}, promos)
}

package gui

import (
	"testing"

	"github.com/hmidgg/chess/pkg"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, name string) pkg.Square {
	t.Helper()
	sq, err := pkg.ParseSquare(name)
	require.NoError(t, err)
	return sq
}

func play(t *testing.T, c *pkg.Controller, moves ...string) {
	t.Helper()
	for _, m := range moves {
		c.HandleClick(at(t, m[:2]))
		c.HandleClick(at(t, m[2:4]))
	}
}

func planOf(t *testing.T, c *pkg.Controller) DrawPlan {
	t.Helper()
	plan, err := BuildDrawPlan(c.Rules(), c.Selection(), c.Status(), DefaultSprites())
	require.NoError(t, err)
	return plan
}

func TestPlanInitialBoard(t *testing.T) {
	c := pkg.NewController(pkg.NewEngine())
	plan := planOf(t, c)

	pieces := 0
	for i, cell := range plan.Cells {
		sq := pkg.Square(i)
		assert.Equal(t, sq, cell.Square)
		if (sq.Row()+sq.Col())%2 == 0 {
			assert.Equal(t, BaseLight, cell.Base, "square %s", sq)
		} else {
			assert.Equal(t, BaseDark, cell.Base, "square %s", sq)
		}
		assert.False(t, cell.Highlight)
		assert.False(t, cell.Check)
		if cell.HasPiece {
			pieces++
		}
	}
	assert.Equal(t, 32, pieces)
	assert.Empty(t, plan.Banner)
	assert.Empty(t, plan.Result)
	assert.Equal(t, pkg.White, plan.SideToMove)

	e1 := plan.Cells[at(t, "e1")]
	assert.Equal(t, pkg.Piece{Side: pkg.White, Kind: pkg.King}, e1.Piece)
	assert.Equal(t, '♔', e1.Sprite.Glyph)
	assert.Equal(t, "K", e1.Sprite.Label)
	assert.Equal(t, "n", plan.Cells[at(t, "b8")].Sprite.Label)
}

func TestPlanHighlightsDestinations(t *testing.T) {
	c := pkg.NewController(pkg.NewEngine())
	c.HandleClick(at(t, "e2"))
	plan := planOf(t, c)

	assert.Equal(t, []pkg.Square{at(t, "e4"), at(t, "e3")}, plan.Highlighted())
	assert.True(t, plan.Cells[at(t, "e2")].Selected)
	// the base colors stay underneath the highlight
	assert.Equal(t, BaseLight, plan.Cells[at(t, "e4")].Base)
	assert.Equal(t, BaseDark, plan.Cells[at(t, "e3")].Base)
}

func TestPlanEmptySquareClickHasNoHighlight(t *testing.T) {
	c := pkg.NewController(pkg.NewEngine())
	c.HandleClick(at(t, "e4"))
	plan := planOf(t, c)
	assert.Empty(t, plan.Highlighted())
}

func TestPlanCheck(t *testing.T) {
	c := pkg.NewController(pkg.NewEngine())
	play(t, c, "e2e4", "f7f6", "d1h5")
	plan := planOf(t, c)

	assert.Equal(t, CheckBanner, plan.Banner)
	assert.True(t, plan.Cells[at(t, "e8")].Check)
	assert.False(t, plan.Cells[at(t, "e1")].Check)
	assert.Empty(t, plan.Result)

	// the banner stays while a piece is selected
	c.HandleClick(at(t, "g7"))
	plan = planOf(t, c)
	assert.Equal(t, CheckBanner, plan.Banner)
	assert.Equal(t, []pkg.Square{at(t, "g6")}, plan.Highlighted())
}

func TestPlanResult(t *testing.T) {
	c := pkg.NewController(pkg.NewEngine())
	play(t, c, "f2f3", "e7e5", "g2g4", "d8h4")
	plan := planOf(t, c)

	assert.Equal(t, "Black wins", plan.Result)
	assert.True(t, plan.Cells[at(t, "e1")].Check)
}

func TestPlanMissingSprite(t *testing.T) {
	sprites := DefaultSprites()
	delete(sprites, pkg.Piece{Side: pkg.Black, Kind: pkg.Queen})

	c := pkg.NewController(pkg.NewEngine())
	_, err := BuildDrawPlan(c.Rules(), c.Selection(), c.Status(), sprites)
	require.Error(t, err)
	assert.Equal(t, ErrMissingSprite, errors.Cause(err))
	assert.Contains(t, err.Error(), "bQ")
}

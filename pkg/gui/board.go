package gui

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/hmidgg/chess/pkg"
	"github.com/rivo/tview"
)

// BoardView is a tview primitive drawing the board and turning mouse
// clicks into square clicks for the controller
type BoardView struct {
	*tview.Box
	ctrl     *pkg.Controller
	sprites  SpriteSet
	theme    Theme
	geometry pkg.Geometry
	err      error
	onError  func(error)
	onClick  func(pkg.Square)
}

func NewBoardView(ctrl *pkg.Controller, sprites SpriteSet, theme Theme) *BoardView {
	return &BoardView{
		Box:      tview.NewBox(),
		ctrl:     ctrl,
		sprites:  sprites,
		theme:    theme,
		geometry: boardGeometry(0, 0, 0, 0),
	}
}

// SetErrorFunc is called once when a frame cannot be drawn
func (b *BoardView) SetErrorFunc(fn func(error)) *BoardView {
	b.onError = fn
	return b
}

// SetClickFunc is called after every click that landed on a square
func (b *BoardView) SetClickFunc(fn func(pkg.Square)) *BoardView {
	b.onClick = fn
	return b
}

// Plan builds the draw plan of the current state
func (b *BoardView) Plan() (DrawPlan, error) {
	return BuildDrawPlan(b.ctrl.Rules(), b.ctrl.Selection(), b.ctrl.Status(), b.sprites)
}

func (b *BoardView) Err() error {
	return b.err
}

func (b *BoardView) Draw(screen tcell.Screen) {
	b.Box.Draw(screen)
	x, y, width, height := b.GetInnerRect()
	b.geometry = boardGeometry(x, y, width, height)

	plan, err := b.Plan()
	if err != nil {
		if b.err == nil {
			b.err = err
			log.Printf("cannot draw board: %v", err)
			if b.onError != nil {
				b.onError(err)
			}
		}
		return
	}
	drawPlan(screen, b.geometry, plan, b.theme)
}

// Click feeds the cell at (x, y) to the controller. Clicks outside the
// squares are ignored.
func (b *BoardView) Click(x, y int) bool {
	sq, ok := b.geometry.SquareAt(x, y)
	if !ok {
		return false
	}
	b.ctrl.HandleClick(sq)
	if b.onClick != nil {
		b.onClick(sq)
	}
	return true
}

func (b *BoardView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return b.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()
		if action != tview.MouseLeftClick || !b.InRect(x, y) {
			return false, nil
		}
		setFocus(b)
		return b.Click(x, y), nil
	})
}

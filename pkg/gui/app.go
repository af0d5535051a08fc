package gui

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hmidgg/chess/pkg"
	"github.com/pkg/errors"
	"github.com/rivo/tview"
)

// App is the running board: one tview application, one controller and the
// widgets showing it. Nothing in it is global.
type App struct {
	App       *tview.Application
	Board     *BoardView
	Info      *tview.TextView
	Layout    *tview.Grid
	ctrl      *pkg.Controller
	players   [2]pkg.Player
	exitAfter time.Duration
	over      bool
}

func NewApp(ctrl *pkg.Controller, players [2]pkg.Player, sprites SpriteSet, theme Theme, exitAfter time.Duration) *App {
	app := tview.NewApplication()
	info := tview.NewTextView().
		SetDynamicColors(true).
		SetTextColor(theme.Label)
	board := NewBoardView(ctrl, sprites, theme)

	layout := tview.NewGrid().
		SetRows(-1).
		SetColumns(40, -1).
		AddItem(board, 0, 0, 1, 1, 0, 0, true).
		AddItem(info, 0, 1, 1, 1, 0, 0, false)

	a := &App{
		App:       app,
		Board:     board,
		Info:      info,
		Layout:    layout,
		ctrl:      ctrl,
		players:   players,
		exitAfter: exitAfter,
	}
	board.SetClickFunc(func(pkg.Square) { a.refresh() })
	board.SetErrorFunc(func(error) {
		// Stop takes the application lock held while drawing
		go app.Stop()
	})

	app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return ev
	})
	a.refresh()
	return a
}

// SetScreen replaces the terminal, used for tests and remote sessions
func (a *App) SetScreen(s tcell.Screen) *App {
	a.App.SetScreen(s)
	return a
}

func (a *App) Status() pkg.GameStatus {
	return a.ctrl.Status()
}

// Plan is the draw plan of the current state
func (a *App) Plan() (DrawPlan, error) {
	return a.Board.Plan()
}

func (a *App) Run() error {
	if err := a.App.SetRoot(a.Layout, true).EnableMouse(true).Run(); err != nil {
		return errors.Wrap(err, "run")
	}
	return a.Board.Err()
}

// refresh updates the side panel and arms the exit timer once the game ends
func (a *App) refresh() {
	status := a.ctrl.Status()
	var turn string
	if status.Terminal() {
		turn = fmt.Sprintf("[::b]%s[::-] (%s)", status.Result(), status)
	} else {
		turn = fmt.Sprintf("%s to Move", a.ctrl.SideToMove())
	}
	white, black := a.players[pkg.White], a.players[pkg.Black]
	a.Info.SetText(fmt.Sprintf("\n %s\n\n ♔ %s\n ♚ %s\n\n pawns promote to %s\n click a piece, then a square\n q · quit",
		turn, white, black, a.ctrl.PromotionKind()))

	if !status.Terminal() || a.over {
		return
	}
	a.over = true
	log.Printf("game over: %s", status)
	if a.exitAfter > 0 {
		time.AfterFunc(a.exitAfter, a.App.Stop)
	}
}

package pkg

import (
	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

// Engine implements Rules on top of notnil/chess
type Engine struct {
	game *chess.Game
}

// NewEngine returns an engine set up with the standard initial position
func NewEngine() *Engine {
	return &Engine{game: chess.NewGame(chess.UseNotation(chess.UCINotation{}))}
}

// NewEngineFromFEN returns an engine starting from the given position
func NewEngineFromFEN(fen string) (*Engine, error) {
	game, err := GameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Engine{game: game}, nil
}

func (e *Engine) PieceAt(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	p := e.game.Position().Board().Piece(toChessSquare(sq))
	if p == chess.NoPiece {
		return Piece{}, false
	}
	kind, ok := fromChessPieceType(p.Type())
	if !ok {
		return Piece{}, false
	}
	return Piece{Side: fromChessColor(p.Color()), Kind: kind}, true
}

func (e *Engine) SideToMove() Side {
	return fromChessColor(e.game.Position().Turn())
}

func (e *Engine) LegalMoves() []Move {
	valid := e.game.ValidMoves()
	moves := make([]Move, 0, len(valid))
	for _, m := range valid {
		moves = append(moves, fromChessMove(m))
	}
	return moves
}

func (e *Engine) Apply(m Move) error {
	for _, valid := range e.game.ValidMoves() {
		if fromChessMove(valid) != m {
			continue
		}
		return errors.Wrapf(e.game.Move(valid), "apply %s", m)
	}
	return errors.Wrapf(ErrIllegalMove, "%s in %s", m, e.Position())
}

// InCheck reports whether the side to move is in check
func (e *Engine) InCheck() bool {
	moves := e.game.Moves()
	if len(moves) > 0 {
		return moves[len(moves)-1].HasTag(chess.Check)
	}
	// nothing played since setup, so there is no check tag to read
	return e.kingAttacked()
}

// kingAttacked looks for an enemy piece attacking the king of the side to
// move. Pins do not matter here: a pinned piece still gives check.
func (e *Engine) kingAttacked() bool {
	turn := e.SideToMove()
	king := NoSquare
	for i := 0; i < numOfSquaresInBoard; i++ {
		if p, ok := e.PieceAt(Square(i)); ok && p == (Piece{turn, King}) {
			king = Square(i)
		}
	}
	if !king.Valid() {
		return false
	}
	for i := 0; i < numOfSquaresInBoard; i++ {
		p, ok := e.PieceAt(Square(i))
		if ok && p.Side != turn && e.attacks(p, Square(i), king) {
			return true
		}
	}
	return false
}

func (e *Engine) attacks(p Piece, from, to Square) bool {
	dr, dc := to.Row()-from.Row(), to.Col()-from.Col()
	adr, adc := abs(dr), abs(dc)
	switch p.Kind {
	case Pawn:
		// row 0 is the eighth rank
		forward := 1
		if p.Side == White {
			forward = -1
		}
		return dr == forward && adc == 1
	case Knight:
		return adr*adc == 2
	case King:
		return adr <= 1 && adc <= 1
	case Bishop:
		return adr == adc && e.clearPath(from, to)
	case Rook:
		return (dr == 0 || dc == 0) && e.clearPath(from, to)
	case Queen:
		return (adr == adc || dr == 0 || dc == 0) && e.clearPath(from, to)
	}
	return false
}

// clearPath reports whether every square strictly between from and to on a
// rank, file or diagonal is empty
func (e *Engine) clearPath(from, to Square) bool {
	stepR, stepC := sign(to.Row()-from.Row()), sign(to.Col()-from.Col())
	r, c := from.Row()+stepR, from.Col()+stepC
	for r != to.Row() || c != to.Col() {
		if _, ok := e.PieceAt(NewSquare(r, c)); ok {
			return false
		}
		r, c = r+stepR, c+stepC
	}
	return true
}

func (e *Engine) Checkmate() bool {
	return e.game.Position().Status() == chess.Checkmate
}

func (e *Engine) Stalemate() bool {
	return e.game.Position().Status() == chess.Stalemate
}

// Draw reports the automatic draws the engine detects
func (e *Engine) Draw() (DrawReason, bool) {
	if e.Stalemate() {
		return DrawStalemate, true
	}
	if e.game.Outcome() != chess.Draw {
		return DrawNone, false
	}
	switch e.game.Method() {
	case chess.Stalemate:
		return DrawStalemate, true
	case chess.InsufficientMaterial:
		return DrawInsufficientMaterial, true
	case chess.SeventyFiveMoveRule:
		return DrawSeventyFiveMoveRule, true
	case chess.FivefoldRepetition:
		return DrawFivefoldRepetition, true
	case chess.ThreefoldRepetition:
		return DrawThreefoldRepetition, true
	case chess.FiftyMoveRule:
		return DrawFiftyMoveRule, true
	}
	return DrawNone, false
}

func (e *Engine) Position() string {
	return e.game.Position().String()
}

func fromChessMove(m *chess.Move) Move {
	mv := Move{From: fromChessSquare(m.S1()), To: fromChessSquare(m.S2())}
	if k, ok := fromChessPieceType(m.Promo()); ok {
		mv.Promo = k
		mv.IsPromotion = true
	}
	return mv
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

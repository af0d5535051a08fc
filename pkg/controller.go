package pkg

import (
	"log"
)

// Controller is the click driven state machine of a two-player game. It owns
// the selection and the game status; the position is owned by the rules
// engine and only changes through Controller.HandleClick committing a move.
type Controller struct {
	rules     Rules
	selection Selection
	status    GameStatus
	promotion Kind
	onEvent   func(Event)
}

type Option func(*Controller)

// WithPromotion sets the piece a pawn promotes to. Defaults to queen.
func WithPromotion(k Kind) Option {
	return func(c *Controller) {
		c.promotion = k
	}
}

// WithEventHandler registers a callback fired after every state change
func WithEventHandler(fn func(Event)) Option {
	return func(c *Controller) {
		c.onEvent = fn
	}
}

func NewController(rules Rules, opts ...Option) *Controller {
	c := &Controller{
		rules:     rules,
		selection: Idle(),
		promotion: Queen,
	}
	for _, opt := range opts {
		opt(c)
	}
	// a position set up from FEN may already be over
	c.status = statusOf(rules)
	return c
}

func (c *Controller) Rules() Rules { return c.rules }
func (c *Controller) Selection() Selection { return c.selection }
func (c *Controller) Status() GameStatus { return c.status }
func (c *Controller) SideToMove() Side { return c.rules.SideToMove() }
func (c *Controller) PromotionKind() Kind { return c.promotion }

// HandleClick advances the state machine by one click on sq. Clicks that
// do not make sense (empty squares, enemy pieces, unreachable squares) never
// fail; they are ignored or drop the current selection.
func (c *Controller) HandleClick(sq Square) {
	if c.status.Terminal() || !sq.Valid() {
		return
	}

	if !c.selection.Active {
		if c.isFriendly(sq) {
			c.selectSquare(sq)
		}
		return
	}

	origin := c.selection.Origin
	switch {
	case sq == origin:
		c.deselect()
	case c.isFriendly(sq):
		c.selectSquare(sq)
	case c.selection.Dests.Has(sq):
		c.commit(origin, sq)
	default:
		c.deselect()
	}
}

func (c *Controller) isFriendly(sq Square) bool {
	p, ok := c.rules.PieceAt(sq)
	return ok && p.Side == c.rules.SideToMove()
}

func (c *Controller) selectSquare(sq Square) {
	var dests SquareSet
	for _, m := range c.rules.LegalMoves() {
		if m.From == sq {
			dests = dests.Add(m.To)
		}
	}
	c.selection = Selected(sq, dests)

	names := make([]string, 0, dests.Len())
	for _, d := range dests.Squares() {
		names = append(names, d.String())
	}
	c.emit(EventSelect{Square: sq.String(), Dests: names})
}

func (c *Controller) deselect() {
	origin := c.selection.Origin
	c.selection = Idle()
	c.emit(EventDeselect{Square: origin.String()})
}

func (c *Controller) commit(from, to Square) {
	move, ok := c.pickMove(from, to)
	if !ok {
		// The destination came from the engine's own move list
		log.Printf("no legal move %s%s although it was highlighted", from, to)
		return
	}
	if _, occupied := c.rules.PieceAt(move.From); !occupied {
		log.Panicf("legal move %s starts on an empty square", move)
	}

	mover := c.rules.SideToMove()
	if err := c.rules.Apply(move); err != nil {
		log.Panicf("engine refused its own legal move: %+v", err)
	}
	c.selection = Idle()
	c.emit(EventMove{Move: move.String(), Side: mover.String(), Fen: c.rules.Position()})

	c.status = statusOf(c.rules)
	if c.status.Terminal() {
		c.emit(EventGameOver{Status: c.status.String(), Result: c.status.Result()})
	}
}

// pickMove finds the legal move from -> to. When several exist they are
// promotions and the configured promotion kind wins.
func (c *Controller) pickMove(from, to Square) (Move, bool) {
	var (
		found bool
		pick  Move
	)
	for _, m := range c.rules.LegalMoves() {
		if m.From != from || m.To != to {
			continue
		}
		if !found || (m.IsPromotion && m.Promo == c.promotion) {
			pick, found = m, true
		}
	}
	return pick, found
}

func (c *Controller) emit(e Event) {
	if c.onEvent != nil {
		c.onEvent(e)
	}
}

package pkg

// BoardView is the read-only part of the rules engine needed to draw a board
type BoardView interface {
	PieceAt(sq Square) (Piece, bool)
	SideToMove() Side
	InCheck() bool
}

// Rules is the chess rules engine the controller drives. It owns the
// position; callers only ever ask it to apply a legal move.
type Rules interface {
	BoardView
	LegalMoves() []Move
	Apply(m Move) error
	Checkmate() bool
	Stalemate() bool
	Draw() (DrawReason, bool)
	// Position returns the FEN of the current position
	Position() string
}

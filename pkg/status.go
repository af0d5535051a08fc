package pkg

type StatusKind int

const (
	StatusInProgress StatusKind = iota
	StatusCheckmate
	StatusDraw
)

type DrawReason int

const (
	DrawNone DrawReason = iota
	DrawStalemate
	DrawInsufficientMaterial
	DrawSeventyFiveMoveRule
	DrawFivefoldRepetition
	DrawThreefoldRepetition
	DrawFiftyMoveRule
)

func (r DrawReason) String() string {
	switch r {
	case DrawStalemate:
		return "Stalemate"
	case DrawInsufficientMaterial:
		return "InsufficientMaterial"
	case DrawSeventyFiveMoveRule:
		return "SeventyFiveMoveRule"
	case DrawFivefoldRepetition:
		return "FivefoldRepetition"
	case DrawThreefoldRepetition:
		return "ThreefoldRepetition"
	case DrawFiftyMoveRule:
		return "FiftyMoveRule"
	default:
		return "None"
	}
}

// GameStatus is InProgress (the zero value), Checkmate(Winner) or
// Draw(Reason). Once terminal it never changes.
type GameStatus struct {
	Kind   StatusKind
	Winner Side
	Reason DrawReason
}

func CheckmateStatus(winner Side) GameStatus {
	return GameStatus{Kind: StatusCheckmate, Winner: winner}
}

func DrawStatus(reason DrawReason) GameStatus {
	return GameStatus{Kind: StatusDraw, Reason: reason}
}

func (gs GameStatus) Terminal() bool {
	return gs.Kind != StatusInProgress
}

// Result is the end of game text: "White wins", "Black wins" or "Draw".
// It is empty while the game is in progress.
func (gs GameStatus) Result() string {
	switch gs.Kind {
	case StatusCheckmate:
		return gs.Winner.String() + " wins"
	case StatusDraw:
		return "Draw"
	default:
		return ""
	}
}

func (gs GameStatus) String() string {
	switch gs.Kind {
	case StatusCheckmate:
		return "Checkmate(" + gs.Winner.String() + ")"
	case StatusDraw:
		return "Draw(" + gs.Reason.String() + ")"
	default:
		return "InProgress"
	}
}

// statusOf asks the rules engine whether the game has ended
func statusOf(r Rules) GameStatus {
	if r.Checkmate() {
		// the side to move is the one that got mated
		return CheckmateStatus(r.SideToMove().Other())
	}
	if reason, ok := r.Draw(); ok {
		return DrawStatus(reason)
	}
	return GameStatus{}
}

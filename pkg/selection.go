package pkg

// Selection is either Idle (the zero value) or a selected origin square
// together with the destinations of its legal moves.
type Selection struct {
	Active bool
	Origin Square
	Dests  SquareSet
}

func Idle() Selection {
	return Selection{Origin: NoSquare}
}

func Selected(origin Square, dests SquareSet) Selection {
	return Selection{Active: true, Origin: origin, Dests: dests}
}

func (s Selection) String() string {
	if !s.Active {
		return "Idle"
	}
	return "Selected(" + s.Origin.String() + ", " + s.Dests.String() + ")"
}

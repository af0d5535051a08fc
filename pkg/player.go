package pkg

import (
	petname "github.com/dustinkirkland/golang-petname"
)

type Player struct {
	Side Side
	Name string
}

func (p Player) String() string {
	return p.Name + " (" + p.Side.String() + ")"
}

// NewPlayers seats both players. Empty names are replaced by a generated
// pet name so the two sides are always told apart.
func NewPlayers(white, black string) [2]Player {
	if white == "" {
		white = petname.Generate(2, "-")
	}
	if black == "" {
		black = petname.Generate(2, "-")
	}
	return [2]Player{
		{Side: White, Name: white},
		{Side: Black, Name: black},
	}
}

package pkg

import (
	"math/bits"
	"strings"
)

// SquareSet is a 64-bit set of squares, one bit per Square
type SquareSet uint64

func SquareSetOf(sqs ...Square) SquareSet {
	var s SquareSet
	for _, sq := range sqs {
		s = s.Add(sq)
	}
	return s
}

func (s SquareSet) Empty() bool { return s == 0 }

func (s SquareSet) Len() int { return bits.OnesCount64(uint64(s)) }

func (s SquareSet) Has(sq Square) bool {
	return sq.Valid() && s&(1<<uint(sq)) != 0
}

func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s | (1 << uint(sq))
}

func (s SquareSet) Remove(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s &^ (1 << uint(sq))
}

// Squares returns the members in ascending order
func (s SquareSet) Squares() []Square {
	sqs := make([]Square, 0, s.Len())
	for bb := uint64(s); bb != 0; bb &= bb - 1 {
		sqs = append(sqs, Square(bits.TrailingZeros64(bb)))
	}
	return sqs
}

func (s SquareSet) String() string {
	names := make([]string, 0, s.Len())
	for _, sq := range s.Squares() {
		names = append(names, sq.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}

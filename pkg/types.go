package pkg

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

const (
	numrows             = 8
	numcols             = 8
	numOfSquaresInBoard = numrows * numcols
)

type Side int

const (
	White Side = iota
	Black
)

func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

// Other returns the opposing side
func (s Side) Other() Side {
	if s == White {
		return Black
	}
	return White
}

type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Kinds lists every piece kind, pawn first
var Kinds = []Kind{Pawn, Knight, Bishop, Rook, Queen, King}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "Unknown"
	}
}

// Letter is the upper case letter used for the kind in algebraic notation
func (k Kind) Letter() string {
	return [...]string{"P", "N", "B", "R", "Q", "K"}[k]
}

// ParseKind accepts a kind letter in either case ("q", "N") or its full name
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.ToUpper(s) == k.Letter() || strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownPiece, "kind %q", s)
}

type Piece struct {
	Side Side
	Kind Kind
}

// Pieces lists the twelve distinct pieces, white first
var Pieces = func() []Piece {
	ps := make([]Piece, 0, 12)
	for _, s := range []Side{White, Black} {
		for _, k := range Kinds {
			ps = append(ps, Piece{s, k})
		}
	}
	return ps
}()

// Key returns the short name of the piece, e.g. "wK" or "bN"
func (p Piece) Key() string {
	side := "w"
	if p.Side == Black {
		side = "b"
	}
	return side + p.Kind.Letter()
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Side, p.Kind)
}

// ParsePieceKey is the inverse of Piece.Key
func ParsePieceKey(key string) (Piece, error) {
	if len(key) != 2 {
		return Piece{}, errors.Wrapf(ErrUnknownPiece, "key %q", key)
	}
	for _, p := range Pieces {
		if p.Key() == key {
			return p, nil
		}
	}
	return Piece{}, errors.Wrapf(ErrUnknownPiece, "key %q", key)
}

// Square addresses a board cell as row*8+col. Row 0 is the top of the
// board as seen by white (rank 8), col 0 is the a-file.
type Square int

const NoSquare Square = -1

func NewSquare(row, col int) Square {
	if row < 0 || row >= numrows || col < 0 || col >= numcols {
		return NoSquare
	}
	return Square(row*numcols + col)
}

func (sq Square) Row() int { return int(sq) / numcols }
func (sq Square) Col() int { return int(sq) % numcols }

func (sq Square) Valid() bool {
	return sq >= 0 && sq < numOfSquaresInBoard
}

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.Col(), numrows-sq.Row())
}

// ParseSquare reads algebraic notation such as "e2"
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, errors.Errorf("invalid square %q", s)
	}
	return NewSquare(numrows-int(s[1]-'0'), int(s[0]-'a')), nil
}

// Move is an origin/destination pair. Promo is only meaningful when
// IsPromotion is set.
type Move struct {
	From        Square
	To          Square
	Promo       Kind
	IsPromotion bool
}

func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion {
		s += strings.ToLower(m.Promo.Letter())
	}
	return s
}

// toChessSquare converts to the engine's a1=0 indexing
func toChessSquare(sq Square) chess.Square {
	return chess.Square((numrows-1-sq.Row())*numcols + sq.Col())
}

func fromChessSquare(sq chess.Square) Square {
	return NewSquare(numrows-1-int(sq.Rank()), int(sq.File()))
}

func fromChessColor(c chess.Color) Side {
	if c == chess.Black {
		return Black
	}
	return White
}

func fromChessPieceType(t chess.PieceType) (Kind, bool) {
	switch t {
	case chess.Pawn:
		return Pawn, true
	case chess.Knight:
		return Knight, true
	case chess.Bishop:
		return Bishop, true
	case chess.Rook:
		return Rook, true
	case chess.Queen:
		return Queen, true
	case chess.King:
		return King, true
	}
	return 0, false
}

package pkg

import "github.com/pkg/errors"

var (
	ErrUnknownPiece = errors.New("unknown piece")
	ErrInvalidFEN   = errors.New("invalid FEN")
	ErrIllegalMove  = errors.New("illegal move")
)

package gui

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hmidgg/chess/pkg"
	"github.com/pkg/errors"
)

var ErrMissingSprite = errors.New("missing sprite")

// Sprite is how a piece shows up on a surface: a glyph for the terminal
// and a short label for the raster surface
type Sprite struct {
	Glyph rune
	Label string
}

// SpriteSet maps every piece to its sprite
type SpriteSet map[pkg.Piece]Sprite

var defaultGlyphs = map[string]rune{
	"wK": '♔', "wQ": '♕', "wR": '♖', "wB": '♗', "wN": '♘', "wP": '♙',
	"bK": '♚', "bQ": '♛', "bR": '♜', "bB": '♝', "bN": '♞', "bP": '♟',
}

// DefaultSprites uses the unicode chess glyphs, and FEN letters as labels
// (upper case for white, lower case for black)
func DefaultSprites() SpriteSet {
	s := make(SpriteSet, len(pkg.Pieces))
	for _, p := range pkg.Pieces {
		label := p.Kind.Letter()
		if p.Side == pkg.Black {
			label = strings.ToLower(label)
		}
		s[p] = Sprite{Glyph: defaultGlyphs[p.Key()], Label: label}
	}
	return s
}

// NewSpriteSet checks that every piece has a sprite. All missing pieces are
// reported at once.
func NewSpriteSet(sprites map[pkg.Piece]Sprite) (SpriteSet, error) {
	var errs error
	for _, p := range pkg.Pieces {
		sp, ok := sprites[p]
		if !ok || sp.Glyph == 0 {
			errs = multierror.Append(errs, errors.Wrapf(ErrMissingSprite, "%s (%s)", p.Key(), p))
		}
	}
	if errs != nil {
		return nil, errs
	}
	s := make(SpriteSet, len(sprites))
	for p, sp := range sprites {
		s[p] = sp
	}
	return s, nil
}

// SpritesFromGlyphs overrides the default glyphs with the ones keyed by
// piece key ("wK", "bN", ...). An empty glyph removes the sprite, which is
// then reported as missing.
func SpritesFromGlyphs(glyphs map[string]string) (SpriteSet, error) {
	sprites := DefaultSprites()
	var errs error
	for key, glyph := range glyphs {
		p, err := pkg.ParsePieceKey(key)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if glyph == "" {
			delete(sprites, p)
			continue
		}
		sp := sprites[p]
		sp.Glyph = []rune(glyph)[0]
		sprites[p] = sp
	}
	if errs != nil {
		return nil, errs
	}
	return NewSpriteSet(sprites)
}

// Lookup returns the sprite of p or ErrMissingSprite
func (s SpriteSet) Lookup(p pkg.Piece) (Sprite, error) {
	sp, ok := s[p]
	if !ok {
		return Sprite{}, errors.Wrapf(ErrMissingSprite, "%s (%s)", p.Key(), p)
	}
	return sp, nil
}

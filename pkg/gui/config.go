package gui

import (
	"encoding/json"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/hmidgg/chess/pkg"
	"github.com/pkg/errors"
)

// Config is read from a JSON file. Every field is optional.
type Config struct {
	Theme     string            `json:"theme"`
	Themes    []ThemeHex        `json:"themes"`
	WhiteName string            `json:"whiteName"`
	BlackName string            `json:"blackName"`
	Sprites   map[string]string `json:"sprites"`
	Promotion string            `json:"promotion"`
	FEN       string            `json:"fen"`
	CellSize  int               `json:"cellSize"`
	ExitAfter string            `json:"exitAfter"`
}

func DefaultConfig() Config {
	return Config{
		Theme:     ThemeBasic.Name,
		Promotion: "q",
		CellSize:  50,
		ExitAfter: "3s",
	}
}

// LoadConfig reads path over the defaults. An empty path gives the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "config")
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: decode %s", path)
	}
	return cfg, nil
}

func (c Config) LoadTheme() (Theme, error) {
	return ImportThemes(c.Theme, c.Themes)
}

func (c Config) LoadSprites() (SpriteSet, error) {
	return SpritesFromGlyphs(c.Sprites)
}

// PromotionKind is the piece pawns promote to
func (c Config) PromotionKind() (pkg.Kind, error) {
	if c.Promotion == "" {
		return pkg.Queen, nil
	}
	k, err := pkg.ParseKind(c.Promotion)
	if err != nil {
		return 0, errors.Wrap(err, "config: promotion")
	}
	if k == pkg.Pawn || k == pkg.King {
		return 0, errors.Errorf("config: cannot promote to %s", k)
	}
	return k, nil
}

// ExitDelay is how long the final board stays on screen. Zero keeps it
// until the user quits.
func (c Config) ExitDelay() (time.Duration, error) {
	if c.ExitAfter == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.ExitAfter)
	if err != nil {
		return 0, errors.Wrap(err, "config: exitAfter")
	}
	if d < 0 {
		return 0, errors.Errorf("config: negative exitAfter %s", d)
	}
	return d, nil
}

// Validate reports every problem of the config at once
func (c Config) Validate() error {
	var errs error
	if _, err := c.LoadTheme(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if _, err := c.LoadSprites(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if _, err := c.PromotionKind(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if _, err := c.ExitDelay(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if c.CellSize < 8 {
		errs = multierror.Append(errs, errors.Errorf("config: cellSize %d is too small", c.CellSize))
	}
	if c.FEN != "" {
		if _, err := pkg.GameFromFEN(c.FEN); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

var ErrUnknownTheme = errors.New("theme: no theme found")

// Theme is used for dynamically coloring the board
type Theme struct {
	Name           string      `json:"name"`
	SquareDark     tcell.Color `json:"squareDark"`
	SquareLight    tcell.Color `json:"squareLight"`
	SquareHigh     tcell.Color `json:"squareHigh"`
	SquareSelected tcell.Color `json:"squareSelected"`
	SquareCheck    tcell.Color `json:"squareCheck"`
	White          tcell.Color `json:"white"`
	Black          tcell.Color `json:"black"`
	Banner         tcell.Color `json:"banner"`
	Result         tcell.Color `json:"result"`
	Rank           tcell.Color `json:"rank"`
	File           tcell.Color `json:"file"`
	Margin         tcell.Color `json:"margin"`
	Label          tcell.Color `json:"label"`
}

// ThemeHex is the serializable form of a Theme
type ThemeHex struct {
	Name           string `json:"name"`
	SquareDark     string `json:"squareDark"`
	SquareLight    string `json:"squareLight"`
	SquareHigh     string `json:"squareHigh"`
	SquareSelected string `json:"squareSelected"`
	SquareCheck    string `json:"squareCheck"`
	White          string `json:"white"`
	Black          string `json:"black"`
	Banner         string `json:"banner"`
	Result         string `json:"result"`
	Rank           string `json:"rank"`
	File           string `json:"file"`
	Margin         string `json:"margin"`
	Label          string `json:"label"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.SquareDark.Hex()),
		fmtHex(t.SquareLight.Hex()),
		fmtHex(t.SquareHigh.Hex()),
		fmtHex(t.SquareSelected.Hex()),
		fmtHex(t.SquareCheck.Hex()),
		fmtHex(t.White.Hex()),
		fmtHex(t.Black.Hex()),
		fmtHex(t.Banner.Hex()),
		fmtHex(t.Result.Hex()),
		fmtHex(t.Rank.Hex()),
		fmtHex(t.File.Hex()),
		fmtHex(t.Margin.Hex()),
		fmtHex(t.Label.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.SquareDark),
		tcell.GetColor(t.SquareLight),
		tcell.GetColor(t.SquareHigh),
		tcell.GetColor(t.SquareSelected),
		tcell.GetColor(t.SquareCheck),
		tcell.GetColor(t.White),
		tcell.GetColor(t.Black),
		tcell.GetColor(t.Banner),
		tcell.GetColor(t.Result),
		tcell.GetColor(t.Rank),
		tcell.GetColor(t.File),
		tcell.GetColor(t.Margin),
		tcell.GetColor(t.Label),
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument, falling back to the
// built in themes
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}
	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, errors.Wrapf(ErrUnknownTheme, "%q", want)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",        // Name
	tcell.Color188, // SquareDark
	tcell.Color230, // SquareLight
	tcell.Color226, // SquareHigh
	tcell.Color223, // SquareSelected
	tcell.Color218, // SquareCheck
	tcell.Color232, // White
	tcell.Color232, // Black
	tcell.Color160, // Banner
	tcell.Color160, // Result
	tcell.Color247, // Rank
	tcell.Color247, // File
	tcell.Color255, // Margin
	tcell.Color247, // Label
}

// ThemeClassic mirrors the plain black and white board
var ThemeClassic = Theme{
	"classic",         // Name
	tcell.ColorBlack,  // SquareDark
	tcell.ColorWhite,  // SquareLight
	tcell.ColorLime,   // SquareHigh
	tcell.ColorGreen,  // SquareSelected
	tcell.ColorRed,    // SquareCheck
	tcell.ColorSilver, // White
	tcell.ColorGray,   // Black
	tcell.ColorRed,    // Banner
	tcell.ColorYellow, // Result
	tcell.ColorWhite,  // Rank
	tcell.ColorWhite,  // File
	tcell.ColorWhite,  // Margin
	tcell.ColorWhite,  // Label
}

// Themes are the built in themes
var Themes = []Theme{ThemeBasic, ThemeClassic}

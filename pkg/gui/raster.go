package gui

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/freetype/truetype"
	"github.com/hmidgg/chess/pkg"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/math/fixed"
)

// highlightWidth is the width in pixels of the outline around legal
// destinations
const highlightWidth = 3

// RasterSurface draws a plan into an image: the board is CellSize pixels
// per square with a margin of half a square on the left and right.
type RasterSurface struct {
	CellSize int
	Theme    Theme
	pieces   font.Face
	banner   font.Face
}

func NewRasterSurface(cellSize int, theme Theme) (*RasterSurface, error) {
	if cellSize < 8 {
		return nil, errors.Errorf("raster: cell size %d is too small", cellSize)
	}
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "raster: parse font")
	}
	return &RasterSurface{
		CellSize: cellSize,
		Theme:    theme,
		pieces:   truetype.NewFace(f, &truetype.Options{Size: float64(cellSize) * 0.6, DPI: 72}),
		banner:   truetype.NewFace(f, &truetype.Options{Size: float64(cellSize) * 0.9, DPI: 72}),
	}, nil
}

// Geometry places the board inside the image
func (r *RasterSurface) Geometry() pkg.Geometry {
	margin := r.CellSize / 2
	return pkg.NewGeometry(margin, 0, 8*r.CellSize, 8*r.CellSize)
}

func (r *RasterSurface) Bounds() image.Rectangle {
	g := r.Geometry()
	return image.Rect(0, 0, g.Width()+2*g.Left, g.Height())
}

func (r *RasterSurface) Render(plan DrawPlan) *image.RGBA {
	g := r.Geometry()
	img := image.NewRGBA(r.Bounds())
	fill(img, img.Bounds(), rgba(r.Theme.Margin, color.RGBA{255, 255, 255, 255}))

	for _, c := range plan.Cells {
		x, y := g.Origin(c.Square)
		rect := image.Rect(x, y, x+g.CellW, y+g.CellH)
		base := r.Theme.SquareLight
		if c.Base == BaseDark {
			base = r.Theme.SquareDark
		}
		fill(img, rect, rgba(base, color.RGBA{255, 255, 255, 255}))
		if c.Check {
			fill(img, rect.Inset(highlightWidth), rgba(r.Theme.SquareCheck, color.RGBA{255, 0, 0, 255}))
		}
		if c.Highlight || c.Selected {
			outline(img, rect, highlightWidth, rgba(r.Theme.SquareHigh, color.RGBA{0, 255, 0, 255}))
		}
		if c.HasPiece {
			pieceColor := r.Theme.White
			if c.Piece.Side == pkg.Black {
				pieceColor = r.Theme.Black
			}
			drawString(img, r.pieces, rect, rgba(pieceColor, color.RGBA{128, 128, 128, 255}), c.Sprite.Label)
		}
	}

	board := image.Rect(g.Left, g.Top, g.Left+g.Width(), g.Top+g.Height())
	mid := board.Min.Y + board.Dy()/2
	if plan.Banner != "" {
		row := image.Rect(board.Min.X, mid-g.CellH, board.Max.X, mid)
		drawString(img, r.banner, row, rgba(r.Theme.Banner, color.RGBA{255, 0, 0, 255}), plan.Banner)
	}
	if plan.Result != "" {
		row := image.Rect(board.Min.X, mid, board.Max.X, mid+g.CellH)
		drawString(img, r.banner, row, rgba(r.Theme.Result, color.RGBA{255, 0, 0, 255}), plan.Result)
	}
	return img
}

func (r *RasterSurface) WritePNG(w io.Writer, plan DrawPlan) error {
	return errors.Wrap(png.Encode(w, r.Render(plan)), "raster: encode png")
}

// rgba converts a theme color, using def for colors without an RGB value
func rgba(c tcell.Color, def color.RGBA) color.RGBA {
	red, green, blue := c.RGB()
	if red < 0 {
		return def
	}
	return color.RGBA{uint8(red), uint8(green), uint8(blue), 255}
}

func fill(img draw.Image, rect image.Rectangle, c color.Color) {
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

func outline(img draw.Image, rect image.Rectangle, width int, c color.Color) {
	fill(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+width), c)
	fill(img, image.Rect(rect.Min.X, rect.Max.Y-width, rect.Max.X, rect.Max.Y), c)
	fill(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+width, rect.Max.Y), c)
	fill(img, image.Rect(rect.Max.X-width, rect.Min.Y, rect.Max.X, rect.Max.Y), c)
}

// drawString centers text inside rect
func drawString(img draw.Image, face font.Face, rect image.Rectangle, c color.Color, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
	}
	width := d.MeasureString(text).Ceil()
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	x := rect.Min.X + (rect.Dx()-width)/2
	y := rect.Min.Y + (rect.Dy()-height)/2 + metrics.Ascent.Ceil()
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

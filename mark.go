package assetgen

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/paintcanvas/assetgen/utils"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// CapStyle selects how the open ends of a stroke are finished.
type CapStyle int

const (
	ButtCap CapStyle = iota
	RoundCap
)

// The wrong mark geometry, in canvas units.
const (
	WrongMarkSize    = 128
	WrongMarkPadding = 20
	WrongMarkWidth   = 20
	WrongMarkColor   = "#FF0000"
)

// Point is a canvas position expressed in pixels.
type Point struct {
	X, Y float64
}

// Stroke is a single line segment drawn with a solid color.
type Stroke struct {
	From, To Point
	Color    color.NRGBA
	Width    float64
	Cap      CapStyle
}

// Mark is a square icon made of strokes painted over a transparent canvas.
type Mark struct {
	Size    int
	Strokes []Stroke
}

// WrongMark returns the red "X" drawn on wrong cells: the two diagonals of the
// canvas inset by WrongMarkPadding on every edge.
func WrongMark() *Mark {
	return crossMark(WrongMarkSize, WrongMarkPadding, WrongMarkWidth, ButtCap)
}

// RoundWrongMark is WrongMark with rounded stroke ends.
func RoundWrongMark() *Mark {
	return crossMark(WrongMarkSize, WrongMarkPadding, WrongMarkWidth, RoundCap)
}

func crossMark(size, padding int, width float64, capStyle CapStyle) *Mark {
	c := color.NRGBAModel.Convert(utils.MustHexToRGBA(WrongMarkColor)).(color.NRGBA)
	lo, hi := float64(padding), float64(size-padding)

	return &Mark{
		Size: size,
		Strokes: []Stroke{
			// top-left to bottom-right
			{From: Point{lo, lo}, To: Point{hi, hi}, Color: c, Width: width, Cap: capStyle},
			// top-right to bottom-left
			{From: Point{hi, lo}, To: Point{lo, hi}, Color: c, Width: width, Cap: capStyle},
		},
	}
}

// Draw allocates a fully transparent canvas and paints the strokes onto it in order.
func (m *Mark) Draw() *image.NRGBA {
	img := imaging.New(m.Size, m.Size, color.Transparent)

	scanner := rasterx.NewScannerGV(m.Size, m.Size, img, img.Bounds())
	dasher := rasterx.NewDasher(m.Size, m.Size, scanner)

	for _, s := range m.Strokes {
		drawStroke(dasher, scanner, s)
	}
	return img
}

// drawStroke rasterizes a single stroke. The dasher is cleared afterwards,
// so it can be reused for the next one.
func drawStroke(d *rasterx.Dasher, sc rasterx.Scanner, s Stroke) {
	capFn := rasterx.ButtCap
	if s.Cap == RoundCap {
		capFn = rasterx.RoundCap
	}
	d.SetStroke(
		fixed.Int26_6(s.Width*64), fixed.Int26_6(4*64),
		capFn, capFn, rasterx.FlatGap, rasterx.Miter, nil, 0,
	)
	sc.SetColor(s.Color)

	d.Start(rasterx.ToFixedP(s.From.X, s.From.Y))
	d.Line(rasterx.ToFixedP(s.To.X, s.To.Y))
	d.Stop(false)
	d.Draw()
	d.Clear()
}

package pptx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// EMU is an English Metric Unit, the length unit used by DrawingML.
type EMU int64

const (
	EMUPerInch  EMU = 914400
	EMUPerPoint EMU = 12700
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Inches converts a length in inches to EMU.
func Inches[T Number](v T) EMU {
	return EMU(math.Round(float64(v) * float64(EMUPerInch)))
}

// Points converts a length in typographic points to EMU.
func Points[T Number](v T) EMU {
	return EMU(math.Round(float64(v) * float64(EMUPerPoint)))
}

// Inches returns the length expressed in inches.
func (e EMU) Inches() float64 {
	return float64(e) / float64(EMUPerInch)
}

// Points returns the length expressed in points.
func (e EMU) Points() float64 {
	return float64(e) / float64(EMUPerPoint)
}

// Rect is the position and size of a shape on the slide.
type Rect struct {
	X, Y, W, H EMU
}

// InchRect builds a Rect from inch based coordinates.
func InchRect[T Number](x, y, w, h T) Rect {
	return Rect{X: Inches(x), Y: Inches(y), W: Inches(w), H: Inches(h)}
}

// centipoints converts points to the hundredths of a point used for
// font sizes and paragraph spacing.
func centipoints[T Number](v T) int {
	return int(math.Round(float64(v) * 100))
}

package assetgen

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

var red = color.NRGBA{R: 0xff, A: 0xff}

func TestMark_WrongMarkGeometry(t *testing.T) {
	assert := assert.New(t)

	m := WrongMark()
	assert.Equal(WrongMarkSize, m.Size)
	assert.Len(m.Strokes, 2)

	for _, s := range m.Strokes {
		assert.Equal(red, s.Color)
		assert.Equal(float64(WrongMarkWidth), s.Width)
		assert.Equal(ButtCap, s.Cap)
	}
	assert.Equal(Point{20, 20}, m.Strokes[0].From)
	assert.Equal(Point{108, 108}, m.Strokes[0].To)
	assert.Equal(Point{108, 20}, m.Strokes[1].From)
	assert.Equal(Point{20, 108}, m.Strokes[1].To)
}

func TestMark_DrawDimensions(t *testing.T) {
	img := WrongMark().Draw()
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestMark_TransparentCorners(t *testing.T) {
	img := WrongMark().Draw()
	for _, p := range [][2]int{{0, 0}, {127, 0}, {0, 127}, {127, 127}} {
		assert.Equal(t, uint8(0), img.NRGBAAt(p[0], p[1]).A, "corner %v", p)
	}
}

func TestMark_DiagonalsCrossAtCenter(t *testing.T) {
	img := WrongMark().Draw()
	assert.Equal(t, red, img.NRGBAAt(64, 64))
	assert.Equal(t, red, img.NRGBAAt(63, 63))

	// Both diagonals are painted away from the center too.
	assert.Equal(t, red, img.NRGBAAt(40, 40))
	assert.Equal(t, red, img.NRGBAAt(87, 40))

	// The middle of each edge lies between the two strokes.
	assert.Equal(t, uint8(0), img.NRGBAAt(64, 2).A)
	assert.Equal(t, uint8(0), img.NRGBAAt(2, 64).A)
}

func TestMark_CapStyles(t *testing.T) {
	butt := WrongMark().Draw()
	round := RoundWrongMark().Draw()

	// Behind the starting point of the first diagonal only a round cap paints.
	assert.Equal(t, uint8(0), butt.NRGBAAt(14, 14).A)
	assert.Greater(t, round.NRGBAAt(14, 14).A, uint8(0))
}

func TestMark_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	assert.NoError(t, Encode(&first, WrongMark().Draw(), imaging.PNG))
	assert.NoError(t, Encode(&second, WrongMark().Draw(), imaging.PNG))
	assert.True(t, bytes.Equal(first.Bytes(), second.Bytes()))
}

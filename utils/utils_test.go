package utils

import (
	"bytes"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_HexToRGBA(t *testing.T) {
	testCases := []struct {
		name string
		hex  string
		want color.RGBA
	}{
		{"red", "#FF0000", color.RGBA{R: 0xff, A: 0xff}},
		{"no hash", "1A1A1A", color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}},
		{"lower case", "#ffe135", color.RGBA{R: 0xff, G: 0xe1, B: 0x35, A: 0xff}},
		{"with alpha", "#33333380", color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0x80}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HexToRGBA(tc.hex)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUtils_HexToRGBAInvalid(t *testing.T) {
	for _, hex := range []string{"", "#FFF", "#GG0000", "#FF00000"} {
		_, err := HexToRGBA(hex)
		assert.Error(t, err, hex)
	}
	assert.Panics(t, func() { MustHexToRGBA("nope") })
}

func TestUtils_RGBAToHex(t *testing.T) {
	assert.Equal(t, "FFE135", RGBAToHex(MustHexToRGBA("#FFE135")))
	assert.Equal(t, "000000", RGBAToHex(color.RGBA{}))
}

func TestUtils_DecorateText(t *testing.T) {
	assert.Equal(t, SuccessColor+"done"+DefaultColor, DecorateText("done", SuccessMessage))
	assert.Equal(t, "plain", DecorateText("plain", MessageType(42)))

	var buf bytes.Buffer
	d := NewDecorator(&buf)
	assert.False(t, d.Enabled)
	assert.Equal(t, "done", d.Text("done", SuccessMessage))

	d.Enabled = true
	assert.Equal(t, ErrorColor+"failed"+DefaultColor, d.Text("failed", ErrorMessage))
}

func TestUtils_FormatTime(t *testing.T) {
	assert.Equal(t, "1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal(t, "2m 5.00s", FormatTime(2*time.Minute+5*time.Second))
	assert.Equal(t, "1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

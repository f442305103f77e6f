package utils

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// HexToRGBA converts a "#RRGGBB" or "#RRGGBBAA" color string to color.RGBA.
// The leading hash is optional. A missing alpha component means fully opaque.
func HexToRGBA(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// MustHexToRGBA is like HexToRGBA but panics on malformed input.
// It is meant for color literals known at compile time.
func MustHexToRGBA(hex string) color.RGBA {
	c, err := HexToRGBA(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBAToHex returns the upper case "RRGGBB" form of c, ignoring alpha.
func RGBAToHex(c color.RGBA) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

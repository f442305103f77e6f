package assetgen

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// WarningMarkSize is the edge length of the warning icon viewBox.
const WarningMarkSize = 64

// WarningMarkSVG is a yellow warning triangle with a dark exclamation mark.
const WarningMarkSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64" viewBox="0 0 64 64">
  <path d="M32 6 L60 58 H4 Z" fill="#FFD700" stroke="#E6A500" stroke-width="2" stroke-linejoin="round"/>
  <rect x="28" y="20" width="8" height="20" rx="2" fill="#333333"/>
  <circle cx="32" cy="49" r="4" fill="#333333"/>
</svg>`

// RasterSVG parses the SVG icon read from r and renders it, scaled to fit,
// onto a transparent canvas of the given size.
func RasterSVG(r io.Reader, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", width, height)
	}
	icon, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("could not parse the svg icon: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := imaging.New(width, height, color.Transparent)
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	return img, nil
}

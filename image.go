package assetgen

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// ErrUnsupportedFormat is returned when the destination extension
// does not map to a known raster format.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Encode writes img to w in the requested format.
func Encode(w io.Writer, img image.Image, format imaging.Format) error {
	switch format {
	case imaging.PNG, imaging.JPEG, imaging.GIF, imaging.TIFF, imaging.BMP:
	default:
		return ErrUnsupportedFormat
	}
	if format == imaging.JPEG {
		return imaging.Encode(w, img, format, imaging.JPEGQuality(100))
	}
	return imaging.Encode(w, img, format)
}

// Save writes img to path, choosing the format from the file extension.
// The image is fully encoded before the destination is touched, and any
// existing file at path is overwritten.
func Save(img image.Image, path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, format); err != nil {
		return fmt.Errorf("unable to encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	return nil
}

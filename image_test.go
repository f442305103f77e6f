package assetgen

import (
	"errors"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func TestImage_SaveByExtension(t *testing.T) {
	img := WrongMark().Draw()
	dir := t.TempDir()

	for _, name := range []string{"mark.png", "mark.jpg", "mark.gif", "mark.bmp", "mark.tif"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			assert.NoError(t, Save(img, path))

			f, err := os.Open(path)
			assert.NoError(t, err)
			defer f.Close()

			cfg, _, err := image.DecodeConfig(f)
			assert.NoError(t, err)
			assert.Equal(t, 128, cfg.Width)
			assert.Equal(t, 128, cfg.Height)
		})
	}
}

func TestImage_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrong_mark.png")
	assert.NoError(t, os.WriteFile(path, []byte("stale content"), 0644))

	assert.NoError(t, Save(WrongMark().Draw(), path))
	first, err := os.ReadFile(path)
	assert.NoError(t, err)

	assert.NoError(t, Save(WrongMark().Draw(), path))
	second, err := os.ReadFile(path)
	assert.NoError(t, err)

	assert.Equal(t, first, second)

	img, err := imaging.Open(path)
	assert.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 128, 128), img.Bounds())
}

func TestImage_SaveMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "res", "drawable", "wrong_mark.png")

	err := Save(WrongMark().Draw(), path)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = os.Stat(path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestImage_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrong_mark.webp")

	err := Save(WrongMark().Draw(), path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	err = Encode(os.Stdout, WrongMark().Draw(), imaging.Format(-1))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

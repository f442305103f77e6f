/*
Package assetgen renders the small raster assets bundled with the paint-canvas
Android module.

The icons are described as plain data (a Mark made of strokes, or an SVG document)
and rasterized with an anti-aliasing scanline renderer onto a transparent canvas.
Rendering is fully deterministic: the same input always produces the same pixels,
and therefore the same encoded file.

	img := assetgen.WrongMark().Draw()
	if err := assetgen.Save(img, "res/drawable/wrong_mark.png"); err != nil {
		log.Fatal(err)
	}

The output format is picked from the destination extension. The presentation deck
tooling lives in the deck and pptx subpackages.
*/
package assetgen

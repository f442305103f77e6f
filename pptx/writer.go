package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// WriteTo serializes the presentation as an Office Open XML package.
// The output only depends on the presentation content: parts are written in a
// fixed order and carry no timestamps.
func (p *Presentation) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := p.writePackage(&buf); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// Save writes the presentation to path, overwriting any existing file.
// The package is assembled in memory first, so a failure while building it
// never leaves a truncated file behind.
func (p *Presentation) Save(path string) error {
	var buf bytes.Buffer
	if err := p.writePackage(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to write presentation: %w", err)
	}
	return nil
}

func (p *Presentation) writePackage(w io.Writer) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name string
		v    any
	}{
		{partContentTypes, contentTypes(len(p.Slides))},
		{partRootRels, relationships(
			rel(1, relOfficeDocument, partPresentation),
			rel(2, relCoreProps, partCore),
			rel(3, relExtendedProps, partApp),
		)},
		{partCore, p.coreProps()},
		{partApp, p.appProps()},
		{partPresentation, p.presentationXML()},
		{partPresRels, p.presentationRels()},
		{partMaster, slideMasterXML},
		{partMasterRels, relationships(
			rel(1, relSlideLayout, "../slideLayouts/slideLayout1.xml"),
			rel(2, relTheme, "../theme/theme1.xml"),
		)},
		{partLayout, slideLayoutXML},
		{partLayoutRels, relationships(
			rel(1, relSlideMaster, "../slideMasters/slideMaster1.xml"),
		)},
		{partTheme, themeXML},
	}
	for _, part := range parts {
		if err := writePart(zw, part.name, part.v); err != nil {
			return err
		}
	}

	for i, s := range p.Slides {
		if err := writePart(zw, slidePart(i+1), s.toXML()); err != nil {
			return err
		}
		slideRels := relationships(rel(1, relSlideLayout, "../slideLayouts/slideLayout1.xml"))
		if err := writePart(zw, slideRelsPart(i+1), slideRels); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("unable to finalize package: %w", err)
	}
	return nil
}

// writePart stores one part. Strings are written verbatim, anything else is
// marshaled as an XML document.
func writePart(zw *zip.Writer, name string, v any) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create part %s: %w", name, err)
	}
	if s, ok := v.(string); ok {
		_, err = io.WriteString(f, s)
		return err
	}

	if _, err := io.WriteString(f, xml.Header); err != nil {
		return err
	}
	if err := xml.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("unable to encode part %s: %w", name, err)
	}
	return nil
}

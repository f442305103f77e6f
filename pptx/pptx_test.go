package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"image/color"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	dark   = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	yellow = color.RGBA{R: 0xff, G: 0xe1, B: 0x35, A: 0xff}
	white  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func samplePresentation() *Presentation {
	p := New()
	p.Title = "Sample"

	s := p.AddSlide()
	s.SetBackground(dark)
	s.AddShape(Rectangle, InchRect(0, 0.5, 0.2, 1)).SetFill(yellow)
	s.AddShape(Ellipse, InchRect(9, 6.5, 2, 2)).SetLine(yellow, Points(1.5))

	title := s.AddTextBox(InchRect(0.5, 0.5, 9, 1))
	para := title.TextFrame().AddParagraph("Nano Banana\n(나노바나나)")
	para.Font = Font{Name: "Arial Black", Size: 36}.WithColor(yellow)

	body := s.AddTextBox(InchRect(0.8, 1.8, 8.5, 4.5))
	body.Text.WordWrap = true
	for _, line := range []string{"first", "second <&>"} {
		bp := body.Text.AddParagraph(line)
		bp.Font = Font{Size: 20}.WithColor(white)
		bp.SpaceAfter = 14
	}

	p.AddSlide()
	return p
}

func TestUnits(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(EMU(914400), Inches(1))
	assert.Equal(EMU(457200), Inches(0.5))
	assert.Equal(EMU(19050), Points(1.5))
	assert.Equal(1.5, Points(1.5).Points())
	assert.Equal(7.5, Inches(7.5).Inches())
	assert.Equal(Rect{X: 0, Y: 457200, W: 182880, H: 914400}, InchRect(0, 0.5, 0.2, 1))
	assert.Equal(3600, centipoints(36))
}

func TestModel_ShapeIDsAndNames(t *testing.T) {
	assert := assert.New(t)

	s := New().AddSlide()
	a := s.AddShape(Rectangle, Rect{})
	b := s.AddShape(Ellipse, Rect{})
	c := s.AddTextBox(Rect{})
	d := s.AddShape(RoundedRectangle, Rect{})

	assert.Equal(2, a.ID)
	assert.Equal("Rectangle 1", a.Name)
	assert.Equal("Oval 2", b.Name)
	assert.Equal("TextBox 3", c.Name)
	assert.True(c.TextBox)
	assert.NotNil(c.Text)
	assert.Equal("Rounded Rectangle 4", d.Name)
}

func TestModel_SetTextSplitsParagraphs(t *testing.T) {
	tf := &TextFrame{}
	paras := tf.SetText("Regular Banana\n\n• 무게: 120g")

	assert.Len(t, paras, 3)
	assert.Equal(t, "Regular Banana", paras[0].Text())
	assert.Equal(t, "", paras[1].Text())
	assert.Equal(t, "• 무게: 120g", paras[2].Text())

	p := tf.AddParagraph("a\nb")
	assert.Equal(t, []string{"a", "b"}, p.Lines)
	assert.Len(t, tf.Paragraphs, 4)
}

func TestWriter_PackageParts(t *testing.T) {
	var buf bytes.Buffer
	_, err := samplePresentation().WriteTo(&buf)
	assert.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	assert.NoError(t, err)

	names := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		assert.NoError(t, err)
		data, err := io.ReadAll(rc)
		assert.NoError(t, err)
		rc.Close()
		names[f.Name] = string(data)
	}
	assert.Equal(t, partContentTypes, zr.File[0].Name)

	for _, part := range []string{
		partContentTypes, partRootRels, partCore, partApp, partPresentation, partPresRels,
		partMaster, partMasterRels, partLayout, partLayoutRels, partTheme,
		slidePart(1), slideRelsPart(1), slidePart(2), slideRelsPart(2),
	} {
		assert.Contains(t, names, part)
	}

	slide := names[slidePart(1)]
	assert.True(t, strings.HasPrefix(slide, "<?xml"))
	assert.Contains(t, slide, `<p:sld xmlns:a="`+nsA+`"`)
	assert.Contains(t, slide, `<a:srgbClr val="1A1A1A">`)
	assert.Contains(t, slide, `<a:prstGeom prst="ellipse">`)
	assert.Contains(t, slide, `<a:ln w="19050">`)
	assert.Contains(t, slide, `<a:latin typeface="Arial Black">`)
	assert.Contains(t, slide, `<a:br>`)
	assert.Contains(t, slide, `second &lt;&amp;&gt;`)
	assert.Contains(t, slide, `<a:spcPts val="1400">`)

	assert.Contains(t, names[partContentTypes], `PartName="/ppt/slides/slide2.xml"`)
	assert.Contains(t, names[partPresentation], `<p:sldId id="257" r:id="rId4">`)
	assert.Contains(t, names[partCore], `<dc:title>Sample</dc:title>`)
}

func TestWriter_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	_, err := samplePresentation().WriteTo(&a)
	assert.NoError(t, err)
	_, err = samplePresentation().WriteTo(&b)
	assert.NoError(t, err)

	assert.True(t, bytes.Equal(a.Bytes(), b.Bytes()))
}

func TestWriter_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	assert.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	assert.NoError(t, samplePresentation().Save(path))
	first, err := os.ReadFile(path)
	assert.NoError(t, err)

	assert.NoError(t, samplePresentation().Save(path))
	second, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriter_SaveMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "deck.pptx")
	err := samplePresentation().Save(path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReader_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "deck.pptx")
	assert.NoError(samplePresentation().Save(path))

	sum, err := Open(path)
	if !assert.NoError(err) {
		return
	}
	assert.Equal("Sample", sum.Title)
	assert.Equal("", sum.Author)
	assert.Equal(Inches(10), sum.Width)
	assert.Equal(Inches(7.5), sum.Height)
	assert.Len(sum.Slides, 2)

	s := sum.Slides[0]
	assert.Equal("1A1A1A", s.Background)
	assert.Len(s.Shapes, 4)

	bar := s.Shapes[0]
	assert.Equal(Rectangle, bar.Geometry)
	assert.Equal("FFE135", bar.Fill)
	assert.Equal("", bar.Line)
	assert.Equal(InchRect(0, 0.5, 0.2, 1), bar.Frame)

	circle := s.Shapes[1]
	assert.Equal(Ellipse, circle.Geometry)
	assert.Equal("", circle.Fill)
	assert.Equal("FFE135", circle.Line)

	boxes := s.TextBoxes()
	assert.Len(boxes, 2)
	assert.Equal([]ParagraphSummary{{
		Text: "Nano Banana\n(나노바나나)", Size: 36, Color: "FFE135",
	}}, boxes[0].Paragraphs)

	body := boxes[1].Paragraphs
	assert.Len(body, 2)
	assert.Equal("second <&>", body[1].Text)
	assert.Equal(14.0, body[1].SpaceAfter)
	assert.Equal(20.0, body[1].Size)

	assert.Equal("", sum.Slides[1].Background)
	assert.Empty(sum.Slides[1].Shapes)
}

func TestReader_NotPresentation(t *testing.T) {
	_, err := Read(strings.NewReader("plain text"), int64(len("plain text")))
	assert.ErrorIs(t, err, ErrNotPresentation)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err = zw.Create("word/document.xml")
	assert.NoError(t, err)
	assert.NoError(t, zw.Close())

	_, err = Read(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	assert.ErrorIs(t, err, ErrNotPresentation)

	_, err = Open(filepath.Join(t.TempDir(), "nope.pptx"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReader_SlideListKeepsRelationshipIDs(t *testing.T) {
	p := samplePresentation()
	data, err := xml.Marshal(p.presentationXML())
	assert.NoError(t, err)

	var pres rdPresentation
	assert.NoError(t, xml.Unmarshal(data, &pres))
	if assert.Len(t, pres.SldIDLst.SldIDs, 2) {
		assert.Equal(t, "rId3", pres.SldIDLst.SldIDs[0].RID)
		assert.Equal(t, "rId4", pres.SldIDLst.SldIDs[1].RID)
	}
	assert.Equal(t, Inches(10), pres.SldSz.Cx)
}

func TestReader_MissingSlideRelationship(t *testing.T) {
	p := samplePresentation()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	assert.NoError(t, writePart(zw, partPresentation, p.presentationXML()))
	assert.NoError(t, writePart(zw, partPresRels, relationships(
		rel(presRelMaster, relSlideMaster, "slideMasters/slideMaster1.xml"),
	)))
	assert.NoError(t, zw.Close())

	_, err := Read(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "slide 1: missing relationship rId3")
	}
}

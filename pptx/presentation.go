// Package pptx builds PowerPoint (PresentationML) documents in memory and
// serializes them as Office Open XML packages.
//
// Only the subset needed for authored decks is modelled: solid slide
// backgrounds, preset auto shapes with solid fills and outlines, and text boxes
// holding styled paragraphs. The package can also read back the text content of
// a document, see Open.
package pptx

import (
	"image/color"
	"strconv"
	"strings"
)

// Geometry is a DrawingML preset shape geometry.
type Geometry string

const (
	Rectangle        Geometry = "rect"
	Ellipse          Geometry = "ellipse"
	RoundedRectangle Geometry = "roundRect"
)

// Align is the horizontal alignment of a paragraph.
type Align string

const (
	AlignLeft   Align = ""
	AlignCenter Align = "ctr"
	AlignRight  Align = "r"
)

// Presentation is an ordered list of slides sharing one slide size.
type Presentation struct {
	Title  string
	Author string
	Width  EMU
	Height EMU
	Slides []*Slide
}

// New returns an empty presentation using the 4:3 (10x7.5in) slide size.
func New() *Presentation {
	return &Presentation{
		Width:  Inches(10),
		Height: Inches(7.5),
	}
}

// AddSlide appends a new blank slide.
func (p *Presentation) AddSlide() *Slide {
	s := &Slide{}
	p.Slides = append(p.Slides, s)
	return s
}

// Slide is a single blank-layout slide.
type Slide struct {
	// Background is the solid background color. Nil inherits the master background.
	Background *color.RGBA
	Shapes     []*Shape
}

// SetBackground fills the slide background with a solid color.
func (s *Slide) SetBackground(c color.RGBA) {
	s.Background = &c
}

// AddShape appends an auto shape with the given preset geometry.
func (s *Slide) AddShape(g Geometry, frame Rect) *Shape {
	sh := &Shape{
		ID:       len(s.Shapes) + 2,
		Geometry: g,
		Frame:    frame,
	}
	sh.Name = shapeName(g, sh.ID)
	s.Shapes = append(s.Shapes, sh)
	return sh
}

// AddTextBox appends a borderless, unfilled text box.
func (s *Slide) AddTextBox(frame Rect) *Shape {
	sh := s.AddShape(Rectangle, frame)
	sh.TextBox = true
	sh.Name = shapeName("TextBox", sh.ID)
	sh.Text = &TextFrame{}
	return sh
}

func shapeName(kind Geometry, id int) string {
	switch kind {
	case Rectangle:
		kind = "Rectangle"
	case Ellipse:
		kind = "Oval"
	case RoundedRectangle:
		kind = "Rounded Rectangle"
	}
	return string(kind) + " " + strconv.Itoa(id-1)
}

// Shape is an auto shape or a text box. The id is unique within its slide;
// id 1 belongs to the slide's shape tree.
type Shape struct {
	ID       int
	Name     string
	Geometry Geometry
	TextBox  bool
	Frame    Rect
	// Fill is the solid fill color. Nil leaves the shape unfilled.
	Fill *color.RGBA
	// Line is the outline. Nil draws no outline.
	Line *Outline
	Text *TextFrame
}

// SetFill gives the shape a solid fill.
func (sh *Shape) SetFill(c color.RGBA) *Shape {
	sh.Fill = &c
	return sh
}

// SetLine gives the shape a solid outline. A zero width keeps the default width.
func (sh *Shape) SetLine(c color.RGBA, width EMU) *Shape {
	sh.Line = &Outline{Color: c, Width: width}
	return sh
}

// TextFrame returns the shape text, creating an empty frame when needed.
func (sh *Shape) TextFrame() *TextFrame {
	if sh.Text == nil {
		sh.Text = &TextFrame{}
	}
	return sh.Text
}

// Outline is a solid shape border.
type Outline struct {
	Color color.RGBA
	Width EMU
}

// TextFrame holds the paragraphs of a shape.
type TextFrame struct {
	// WordWrap wraps lines at the shape width instead of growing the shape.
	WordWrap   bool
	Paragraphs []*Paragraph
}

// AddParagraph appends a paragraph. Newlines in text become line breaks
// inside the paragraph.
func (tf *TextFrame) AddParagraph(text string) *Paragraph {
	p := &Paragraph{Lines: strings.Split(text, "\n")}
	tf.Paragraphs = append(tf.Paragraphs, p)
	return p
}

// SetText replaces the frame content with one paragraph per line of text.
func (tf *TextFrame) SetText(text string) []*Paragraph {
	tf.Paragraphs = nil
	for _, line := range strings.Split(text, "\n") {
		tf.AddParagraph(line)
	}
	return tf.Paragraphs
}

// Paragraph is a run of text sharing one font and alignment. Lines are
// separated by soft line breaks.
type Paragraph struct {
	Lines []string
	Font  Font
	Align Align
	// SpaceAfter is the spacing below the paragraph, in points.
	SpaceAfter float64
}

// Text returns the paragraph text with line breaks as newlines.
func (p *Paragraph) Text() string {
	return strings.Join(p.Lines, "\n")
}

// Font describes the character formatting of a paragraph.
// Zero values inherit the defaults of the slide master.
type Font struct {
	Name string
	// Size is in points.
	Size  float64
	Color *color.RGBA
	Bold  bool
}

// WithColor returns a copy of f using the color c.
func (f Font) WithColor(c color.RGBA) Font {
	f.Color = &c
	return f
}

// Package deck renders slide records into a styled presentation.
//
// Every slide shares the same dressing: a dark background, an accent bar on the
// left edge, an outlined circle in the bottom right corner and a title. The
// body is picked by the record layout.
package deck

import (
	"fmt"
	"image/color"

	"github.com/paintcanvas/assetgen/pptx"
	"github.com/paintcanvas/assetgen/utils"
)

// DefaultOutput is the file written by Generate when no path is given.
const DefaultOutput = "NanoBanana_Presentation_Pro.pptx"

// Author is recorded in the document properties of generated decks.
const Author = "Nano Banana Team"

// Layout selects the body recipe of a slide.
type Layout string

const (
	LayoutTitle      Layout = "Title"
	LayoutContent    Layout = "Content"
	LayoutComparison Layout = "Comparison"
)

// SlideRecord is the content of one slide. Which fields are used depends on
// the layout: Subtitle for Title, ContentLeft and ContentRight for Comparison,
// Content for everything else.
type SlideRecord struct {
	Layout       Layout
	Title        string
	Subtitle     string
	Content      []string
	ContentLeft  string
	ContentRight string
}

// Theme is the color palette of a deck.
type Theme struct {
	Background color.RGBA
	Accent     color.RGBA
	Text       color.RGBA
	Panel      color.RGBA
}

// DefaultTheme is the dark theme with the neon yellow accent.
var DefaultTheme = Theme{
	Background: utils.MustHexToRGBA("#1A1A1A"),
	Accent:     utils.MustHexToRGBA("#FFE135"),
	Text:       utils.MustHexToRGBA("#FFFFFF"),
	Panel:      utils.MustHexToRGBA("#323232"),
}

// Fonts and sizes, in points.
const (
	titleFont     = "Arial Black"
	titleSize     = 36
	subtitleFont  = "Arial"
	subtitleSize  = 24
	bodySize      = 20
	bodySpacing   = 14
	leftColSize   = 18
	rightColSize  = 20
	circleOutline = 1.5
)

// Build renders one slide per record, in order.
func Build(records []SlideRecord, theme Theme) *pptx.Presentation {
	p := pptx.New()
	for _, rec := range records {
		renderSlide(p.AddSlide(), rec, theme)
	}
	return p
}

// Generate builds the Nano Banana deck and saves it to path.
func Generate(path string) error {
	if path == "" {
		path = DefaultOutput
	}
	p := Build(NanoBanana, DefaultTheme)
	p.Title = "Nano Banana"
	p.Author = Author
	if err := p.Save(path); err != nil {
		return fmt.Errorf("could not generate the presentation: %w", err)
	}
	return nil
}

func renderSlide(s *pptx.Slide, rec SlideRecord, theme Theme) {
	s.SetBackground(theme.Background)

	// accent bar
	s.AddShape(pptx.Rectangle, pptx.InchRect(0, 0.5, 0.2, 1)).SetFill(theme.Accent)
	// decorative circle
	s.AddShape(pptx.Ellipse, pptx.InchRect(9, 6.5, 2, 2)).
		SetLine(theme.Accent, pptx.Points(circleOutline))

	title := s.AddTextBox(pptx.InchRect(0.5, 0.5, 9, 1))
	title.TextFrame().AddParagraph(rec.Title).Font = pptx.Font{
		Name: titleFont,
		Size: titleSize,
	}.WithColor(theme.Accent)

	switch rec.Layout {
	case LayoutTitle:
		renderTitle(s, rec, theme)
	case LayoutComparison:
		renderComparison(s, rec, theme)
	default:
		renderContent(s, rec, theme)
	}
}

func renderTitle(s *pptx.Slide, rec SlideRecord, theme Theme) {
	box := s.AddTextBox(pptx.InchRect(1, 2.5, 8, 3))
	box.Text.WordWrap = true

	p := box.Text.AddParagraph(rec.Subtitle)
	p.Font = pptx.Font{Name: subtitleFont, Size: subtitleSize}.WithColor(theme.Text)
	p.Align = pptx.AlignCenter
}

func renderComparison(s *pptx.Slide, rec SlideRecord, theme Theme) {
	left := s.AddTextBox(pptx.InchRect(0.5, 1.8, 4.2, 5))
	for _, p := range left.Text.SetText(rec.ContentLeft) {
		p.Font = pptx.Font{Size: leftColSize}.WithColor(theme.Text)
	}

	s.AddShape(pptx.RoundedRectangle, pptx.InchRect(5.0, 1.8, 4.5, 3.5)).
		SetFill(theme.Panel).
		SetLine(theme.Accent, 0)

	right := s.AddTextBox(pptx.InchRect(5.2, 2, 4.1, 4))
	for _, p := range right.Text.SetText(rec.ContentRight) {
		p.Font = pptx.Font{Size: rightColSize, Bold: true}.WithColor(theme.Accent)
	}
}

func renderContent(s *pptx.Slide, rec SlideRecord, theme Theme) {
	box := s.AddTextBox(pptx.InchRect(0.8, 1.8, 8.5, 4.5))
	box.Text.WordWrap = true

	for _, item := range rec.Content {
		p := box.Text.AddParagraph(item)
		p.Font = pptx.Font{Size: bodySize}.WithColor(theme.Text)
		p.SpaceAfter = bodySpacing
	}
}

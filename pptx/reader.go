package pptx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrNotPresentation is returned when a package has no presentation part.
var ErrNotPresentation = errors.New("not a presentation package")

// Summary is the structure and text content of a presentation package.
type Summary struct {
	Title, Author string
	Width, Height EMU
	Slides        []SlideSummary
}

// SlideSummary lists the shapes of one slide in document order.
type SlideSummary struct {
	// Background is the "RRGGBB" solid background color, empty when inherited.
	Background string
	Shapes     []ShapeSummary
}

// ShapeSummary describes a single shape.
type ShapeSummary struct {
	Name       string
	Geometry   Geometry
	TextBox    bool
	Frame      Rect
	Fill       string
	Line       string
	Paragraphs []ParagraphSummary
}

// ParagraphSummary holds the text of a paragraph and the formatting of its first run.
type ParagraphSummary struct {
	Text       string
	Align      Align
	Size       float64
	Bold       bool
	Color      string
	SpaceAfter float64
}

// TextBoxes returns the text box shapes of the slide.
func (s SlideSummary) TextBoxes() []ShapeSummary {
	var boxes []ShapeSummary
	for _, sh := range s.Shapes {
		if sh.TextBox {
			boxes = append(boxes, sh)
		}
	}
	return boxes
}

// Open reads the presentation package stored at name.
func Open(name string) (*Summary, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return Read(f, fi.Size())
}

// Read parses a presentation package of the given size.
func Read(r io.ReaderAt, size int64) (*Summary, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPresentation, err)
	}
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	var pres rdPresentation
	if err := decodePart(files, partPresentation, &pres); err != nil {
		return nil, err
	}
	var rels xmlRelationships
	if err := decodePart(files, partPresRels, &rels); err != nil {
		return nil, err
	}
	targets := make(map[string]string, len(rels.Rels))
	for _, r := range rels.Rels {
		targets[r.ID] = r.Target
	}

	sum := &Summary{Width: pres.SldSz.Cx, Height: pres.SldSz.Cy}
	if _, ok := files[partCore]; ok {
		var core rdCoreProps
		if err := decodePart(files, partCore, &core); err != nil {
			return nil, err
		}
		sum.Title, sum.Author = core.Title, core.Creator
	}
	for i, id := range pres.SldIDLst.SldIDs {
		target, ok := targets[id.RID]
		if !ok {
			return nil, fmt.Errorf("slide %d: missing relationship %s", i+1, id.RID)
		}
		var sld rdSlide
		if err := decodePart(files, path.Join("ppt", target), &sld); err != nil {
			return nil, err
		}
		sum.Slides = append(sum.Slides, sld.summary())
	}
	return sum, nil
}

func decodePart(files map[string]*zip.File, name string, v any) error {
	f, ok := files[name]
	if !ok {
		if name == partPresentation {
			return ErrNotPresentation
		}
		return fmt.Errorf("missing part %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("unable to open part %s: %w", name, err)
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("unable to decode part %s: %w", name, err)
	}
	return nil
}

// Decoding types match on local names only, whatever prefix the producer used.

type rdPresentation struct {
	SldIDLst struct {
		// Only the relationship id is kept: a bare "id" tag would also
		// match the r:id attribute, since attributes match by local name.
		SldIDs []struct {
			RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
		} `xml:"sldId"`
	} `xml:"sldIdLst"`
	SldSz struct {
		Cx EMU `xml:"cx,attr"`
		Cy EMU `xml:"cy,attr"`
	} `xml:"sldSz"`
}

type rdCoreProps struct {
	Title   string `xml:"title"`
	Creator string `xml:"creator"`
}

type rdSolidFill struct {
	SrgbClr struct {
		Val string `xml:"val,attr"`
	} `xml:"srgbClr"`
}

func (f *rdSolidFill) hex() string {
	if f == nil {
		return ""
	}
	return strings.ToUpper(f.SrgbClr.Val)
}

type rdSlide struct {
	CSld struct {
		Bg *struct {
			BgPr struct {
				SolidFill *rdSolidFill `xml:"solidFill"`
			} `xml:"bgPr"`
		} `xml:"bg"`
		SpTree struct {
			Shapes []rdShape `xml:"sp"`
		} `xml:"spTree"`
	} `xml:"cSld"`
}

type rdShape struct {
	NvSpPr struct {
		CNvPr struct {
			Name string `xml:"name,attr"`
		} `xml:"cNvPr"`
		CNvSpPr struct {
			TxBox string `xml:"txBox,attr"`
		} `xml:"cNvSpPr"`
	} `xml:"nvSpPr"`
	SpPr struct {
		Xfrm struct {
			Off struct {
				X EMU `xml:"x,attr"`
				Y EMU `xml:"y,attr"`
			} `xml:"off"`
			Ext struct {
				Cx EMU `xml:"cx,attr"`
				Cy EMU `xml:"cy,attr"`
			} `xml:"ext"`
		} `xml:"xfrm"`
		PrstGeom struct {
			Prst string `xml:"prst,attr"`
		} `xml:"prstGeom"`
		SolidFill *rdSolidFill `xml:"solidFill"`
		Ln        *struct {
			SolidFill *rdSolidFill `xml:"solidFill"`
		} `xml:"ln"`
	} `xml:"spPr"`
	TxBody *struct {
		P []rdParagraph `xml:"p"`
	} `xml:"txBody"`
}

type rdRPr struct {
	Sz        string       `xml:"sz,attr"`
	B         string       `xml:"b,attr"`
	SolidFill *rdSolidFill `xml:"solidFill"`
}

type rdParagraph struct {
	PPr *struct {
		Algn   string `xml:"algn,attr"`
		SpcAft *struct {
			SpcPts struct {
				Val int `xml:"val,attr"`
			} `xml:"spcPts"`
		} `xml:"spcAft"`
	} `xml:"pPr"`
	Items []rdRun `xml:",any"`
}

type rdRun struct {
	XMLName xml.Name
	RPr     *rdRPr `xml:"rPr"`
	T       string `xml:"t"`
}

func (s rdSlide) summary() SlideSummary {
	var sum SlideSummary
	if bg := s.CSld.Bg; bg != nil {
		sum.Background = bg.BgPr.SolidFill.hex()
	}
	for _, sh := range s.CSld.SpTree.Shapes {
		sum.Shapes = append(sum.Shapes, sh.summary())
	}
	return sum
}

func (sh rdShape) summary() ShapeSummary {
	x := sh.SpPr.Xfrm
	sum := ShapeSummary{
		Name:     sh.NvSpPr.CNvPr.Name,
		Geometry: Geometry(sh.SpPr.PrstGeom.Prst),
		TextBox:  sh.NvSpPr.CNvSpPr.TxBox == "1",
		Frame:    Rect{X: x.Off.X, Y: x.Off.Y, W: x.Ext.Cx, H: x.Ext.Cy},
		Fill:     sh.SpPr.SolidFill.hex(),
	}
	if sh.SpPr.Ln != nil {
		sum.Line = sh.SpPr.Ln.SolidFill.hex()
	}
	if sh.TxBody != nil {
		for _, p := range sh.TxBody.P {
			sum.Paragraphs = append(sum.Paragraphs, p.summary())
		}
	}
	return sum
}

func (p rdParagraph) summary() ParagraphSummary {
	var (
		sum   ParagraphSummary
		text  strings.Builder
		style *rdRPr
	)
	if p.PPr != nil {
		sum.Align = Align(p.PPr.Algn)
		if p.PPr.SpcAft != nil {
			sum.SpaceAfter = float64(p.PPr.SpcAft.SpcPts.Val) / 100
		}
	}
	for _, it := range p.Items {
		switch it.XMLName.Local {
		case "r":
			text.WriteString(it.T)
		case "br":
			text.WriteByte('\n')
		default:
			continue
		}
		if style == nil {
			style = it.RPr
		}
	}
	sum.Text = text.String()

	if style != nil {
		if sz, err := strconv.Atoi(style.Sz); err == nil {
			sum.Size = float64(sz) / 100
		}
		sum.Bold = style.B == "1" || style.B == "true"
		sum.Color = style.SolidFill.hex()
	}
	return sum
}

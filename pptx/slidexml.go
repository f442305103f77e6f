package pptx

import (
	"encoding/xml"
	"image/color"
	"strings"

	"github.com/paintcanvas/assetgen/utils"
)

// XML namespaces used by the package parts.
const (
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP   = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsPkg = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// The element names below carry their namespace prefix literally; the
// prefixes are bound by the xmlns attributes of the root element.

type xmlSlide struct {
	XMLName   xml.Name     `xml:"p:sld"`
	XmlnsA    string       `xml:"xmlns:a,attr"`
	XmlnsR    string       `xml:"xmlns:r,attr"`
	XmlnsP    string       `xml:"xmlns:p,attr"`
	CSld      xmlCSld      `xml:"p:cSld"`
	ClrMapOvr xmlClrMapOvr `xml:"p:clrMapOvr"`
}

type xmlClrMapOvr struct {
	MasterClrMapping struct{} `xml:"a:masterClrMapping"`
}

type xmlCSld struct {
	Bg     *xmlBg    `xml:"p:bg,omitempty"`
	SpTree xmlSpTree `xml:"p:spTree"`
}

type xmlBg struct {
	BgPr xmlBgPr `xml:"p:bgPr"`
}

type xmlBgPr struct {
	SolidFill xmlSolidFill `xml:"a:solidFill"`
	EffectLst struct{}     `xml:"a:effectLst"`
}

type xmlSolidFill struct {
	SrgbClr xmlVal `xml:"a:srgbClr"`
}

type xmlVal struct {
	Val string `xml:"val,attr"`
}

type xmlSpTree struct {
	NvGrpSpPr xmlNvGrpSpPr `xml:"p:nvGrpSpPr"`
	GrpSpPr   struct{}     `xml:"p:grpSpPr"`
	Shapes    []xmlShape   `xml:"p:sp"`
}

type xmlNvGrpSpPr struct {
	CNvPr      xmlCNvPr `xml:"p:cNvPr"`
	CNvGrpSpPr struct{} `xml:"p:cNvGrpSpPr"`
	NvPr       struct{} `xml:"p:nvPr"`
}

type xmlCNvPr struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type xmlShape struct {
	NvSpPr xmlNvSpPr  `xml:"p:nvSpPr"`
	SpPr   xmlSpPr    `xml:"p:spPr"`
	TxBody *xmlTxBody `xml:"p:txBody,omitempty"`
}

type xmlNvSpPr struct {
	CNvPr   xmlCNvPr   `xml:"p:cNvPr"`
	CNvSpPr xmlCNvSpPr `xml:"p:cNvSpPr"`
	NvPr    struct{}   `xml:"p:nvPr"`
}

type xmlCNvSpPr struct {
	TxBox string `xml:"txBox,attr,omitempty"`
}

type xmlSpPr struct {
	Xfrm      xmlXfrm       `xml:"a:xfrm"`
	PrstGeom  xmlPrstGeom   `xml:"a:prstGeom"`
	SolidFill *xmlSolidFill `xml:"a:solidFill,omitempty"`
	NoFill    *struct{}     `xml:"a:noFill,omitempty"`
	Ln        *xmlLn        `xml:"a:ln,omitempty"`
}

type xmlXfrm struct {
	Off xmlPoint `xml:"a:off"`
	Ext xmlSize  `xml:"a:ext"`
}

type xmlPoint struct {
	X EMU `xml:"x,attr"`
	Y EMU `xml:"y,attr"`
}

type xmlSize struct {
	Cx EMU `xml:"cx,attr"`
	Cy EMU `xml:"cy,attr"`
}

type xmlPrstGeom struct {
	Prst  string   `xml:"prst,attr"`
	AvLst struct{} `xml:"a:avLst"`
}

type xmlLn struct {
	W         EMU           `xml:"w,attr,omitempty"`
	SolidFill *xmlSolidFill `xml:"a:solidFill,omitempty"`
	NoFill    *struct{}     `xml:"a:noFill,omitempty"`
}

type xmlTxBody struct {
	BodyPr   xmlBodyPr      `xml:"a:bodyPr"`
	LstStyle struct{}       `xml:"a:lstStyle"`
	P        []xmlParagraph `xml:"a:p"`
}

type xmlBodyPr struct {
	Wrap      string    `xml:"wrap,attr"`
	RtlCol    string    `xml:"rtlCol,attr"`
	SpAutoFit *struct{} `xml:"a:spAutoFit,omitempty"`
}

type xmlParagraph struct {
	PPr        *xmlPPr  `xml:"a:pPr,omitempty"`
	Runs       []xmlRun // a:r and a:br, in document order
	EndParaRPr *xmlRPr  `xml:"a:endParaRPr,omitempty"`
}

type xmlPPr struct {
	Algn   string     `xml:"algn,attr,omitempty"`
	SpcAft *xmlSpcAft `xml:"a:spcAft,omitempty"`
}

type xmlSpcAft struct {
	SpcPts xmlIntVal `xml:"a:spcPts"`
}

type xmlIntVal struct {
	Val int `xml:"val,attr"`
}

// xmlRun is either a text run or a line break, selected by XMLName.
type xmlRun struct {
	XMLName xml.Name
	RPr     *xmlRPr `xml:"a:rPr,omitempty"`
	T       *string `xml:"a:t,omitempty"`
}

type xmlRPr struct {
	Lang      string        `xml:"lang,attr"`
	Sz        int           `xml:"sz,attr,omitempty"`
	B         string        `xml:"b,attr,omitempty"`
	Dirty     string        `xml:"dirty,attr"`
	SolidFill *xmlSolidFill `xml:"a:solidFill,omitempty"`
	Latin     *xmlTypeface  `xml:"a:latin,omitempty"`
	Ea        *xmlTypeface  `xml:"a:ea,omitempty"`
	Cs        *xmlTypeface  `xml:"a:cs,omitempty"`
}

type xmlTypeface struct {
	Typeface string `xml:"typeface,attr"`
}

// textLang tags every run; the authored decks are Korean.
const textLang = "ko-KR"

func solidFill(c color.RGBA) *xmlSolidFill {
	return &xmlSolidFill{SrgbClr: xmlVal{Val: utils.RGBAToHex(c)}}
}

func (s *Slide) toXML() xmlSlide {
	x := xmlSlide{
		XmlnsA: nsA,
		XmlnsR: nsR,
		XmlnsP: nsP,
	}
	if s.Background != nil {
		x.CSld.Bg = &xmlBg{BgPr: xmlBgPr{SolidFill: *solidFill(*s.Background)}}
	}
	x.CSld.SpTree.NvGrpSpPr.CNvPr = xmlCNvPr{ID: 1, Name: ""}
	for _, sh := range s.Shapes {
		x.CSld.SpTree.Shapes = append(x.CSld.SpTree.Shapes, sh.toXML())
	}
	return x
}

func (sh *Shape) toXML() xmlShape {
	x := xmlShape{
		NvSpPr: xmlNvSpPr{CNvPr: xmlCNvPr{ID: sh.ID, Name: sh.Name}},
		SpPr: xmlSpPr{
			Xfrm: xmlXfrm{
				Off: xmlPoint{X: sh.Frame.X, Y: sh.Frame.Y},
				Ext: xmlSize{Cx: sh.Frame.W, Cy: sh.Frame.H},
			},
			PrstGeom: xmlPrstGeom{Prst: string(sh.Geometry)},
		},
	}
	if sh.TextBox {
		x.NvSpPr.CNvSpPr.TxBox = "1"
	}
	if sh.Fill != nil {
		x.SpPr.SolidFill = solidFill(*sh.Fill)
	} else {
		x.SpPr.NoFill = &struct{}{}
	}
	switch {
	case sh.Line != nil:
		x.SpPr.Ln = &xmlLn{W: sh.Line.Width, SolidFill: solidFill(sh.Line.Color)}
	case !sh.TextBox:
		x.SpPr.Ln = &xmlLn{NoFill: &struct{}{}}
	}
	if sh.Text != nil {
		x.TxBody = sh.Text.toXML(sh.TextBox)
	}
	return x
}

func (tf *TextFrame) toXML(autoFit bool) *xmlTxBody {
	x := &xmlTxBody{BodyPr: xmlBodyPr{Wrap: "none", RtlCol: "0"}}
	if tf.WordWrap {
		x.BodyPr.Wrap = "square"
	}
	if autoFit {
		x.BodyPr.SpAutoFit = &struct{}{}
	}
	for _, p := range tf.Paragraphs {
		x.P = append(x.P, p.toXML())
	}
	// A text body needs at least one paragraph.
	if len(x.P) == 0 {
		x.P = append(x.P, xmlParagraph{})
	}
	return x
}

func (p *Paragraph) toXML() xmlParagraph {
	var x xmlParagraph
	if p.Align != AlignLeft || p.SpaceAfter > 0 {
		x.PPr = &xmlPPr{Algn: string(p.Align)}
		if p.SpaceAfter > 0 {
			x.PPr.SpcAft = &xmlSpcAft{SpcPts: xmlIntVal{Val: centipoints(p.SpaceAfter)}}
		}
	}
	for i, line := range p.Lines {
		if i > 0 {
			x.Runs = append(x.Runs, xmlRun{
				XMLName: xml.Name{Local: "a:br"},
				RPr:     p.Font.toXML(),
			})
		}
		if line == "" {
			continue
		}
		text := line
		x.Runs = append(x.Runs, xmlRun{
			XMLName: xml.Name{Local: "a:r"},
			RPr:     p.Font.toXML(),
			T:       &text,
		})
	}
	x.EndParaRPr = p.Font.toXML()
	return x
}

func (f Font) toXML() *xmlRPr {
	x := &xmlRPr{Lang: textLang, Dirty: "0"}
	if f.Size > 0 {
		x.Sz = centipoints(f.Size)
	}
	if f.Bold {
		x.B = "1"
	}
	if f.Color != nil {
		x.SolidFill = solidFill(*f.Color)
	}
	if name := strings.TrimSpace(f.Name); name != "" {
		x.Latin = &xmlTypeface{Typeface: name}
		x.Ea = &xmlTypeface{Typeface: name}
		x.Cs = &xmlTypeface{Typeface: name}
	}
	return x
}

package pptx

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// Relationship and content types of the package parts.
const (
	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"

	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctCoreProps    = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtProps     = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctRelationship = "application/vnd.openxmlformats-package.relationships+xml"
)

// Part names inside the package.
const (
	partContentTypes = "[Content_Types].xml"
	partRootRels     = "_rels/.rels"
	partCore         = "docProps/core.xml"
	partApp          = "docProps/app.xml"
	partPresentation = "ppt/presentation.xml"
	partPresRels     = "ppt/_rels/presentation.xml.rels"
	partMaster       = "ppt/slideMasters/slideMaster1.xml"
	partMasterRels   = "ppt/slideMasters/_rels/slideMaster1.xml.rels"
	partLayout       = "ppt/slideLayouts/slideLayout1.xml"
	partLayoutRels   = "ppt/slideLayouts/_rels/slideLayout1.xml.rels"
	partTheme        = "ppt/theme/theme1.xml"
)

func slidePart(n int) string     { return fmt.Sprintf("ppt/slides/slide%d.xml", n) }
func slideRelsPart(n int) string { return fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n) }

// firstSlideID is the lowest id PowerPoint accepts in the slide id list.
const firstSlideID = 256

type xmlTypes struct {
	XMLName   xml.Name      `xml:"Types"`
	Xmlns     string        `xml:"xmlns,attr"`
	Defaults  []xmlDefault  `xml:"Default"`
	Overrides []xmlOverride `xml:"Override"`
}

type xmlDefault struct {
	Extension   string `xml:",attr"`
	ContentType string `xml:",attr"`
}

type xmlOverride struct {
	PartName    string `xml:",attr"`
	ContentType string `xml:",attr"`
}

func contentTypes(slides int) xmlTypes {
	t := xmlTypes{
		Xmlns: "http://schemas.openxmlformats.org/package/2006/content-types",
		Defaults: []xmlDefault{
			{Extension: "rels", ContentType: ctRelationship},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []xmlOverride{
			{PartName: "/" + partPresentation, ContentType: ctPresentation},
			{PartName: "/" + partMaster, ContentType: ctSlideMaster},
			{PartName: "/" + partLayout, ContentType: ctSlideLayout},
			{PartName: "/" + partTheme, ContentType: ctTheme},
			{PartName: "/" + partCore, ContentType: ctCoreProps},
			{PartName: "/" + partApp, ContentType: ctExtProps},
		},
	}
	for i := 1; i <= slides; i++ {
		t.Overrides = append(t.Overrides, xmlOverride{PartName: "/" + slidePart(i), ContentType: ctSlide})
	}
	return t
}

type xmlRelationships struct {
	XMLName xml.Name          `xml:"Relationships"`
	Xmlns   string            `xml:"xmlns,attr"`
	Rels    []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

func relationships(rels ...xmlRelationship) xmlRelationships {
	return xmlRelationships{Xmlns: nsPkg, Rels: rels}
}

func rel(n int, typ, target string) xmlRelationship {
	return xmlRelationship{ID: fmt.Sprintf("rId%d", n), Type: typ, Target: target}
}

type xmlPresentation struct {
	XMLName         xml.Name `xml:"p:presentation"`
	XmlnsA          string   `xml:"xmlns:a,attr"`
	XmlnsR          string   `xml:"xmlns:r,attr"`
	XmlnsP          string   `xml:"xmlns:p,attr"`
	SaveSubsetFonts string   `xml:"saveSubsetFonts,attr"`
	SldMasterIDLst  struct {
		SldMasterID xmlListID `xml:"p:sldMasterId"`
	} `xml:"p:sldMasterIdLst"`
	SldIDLst *struct {
		SldIDs []xmlListID `xml:"p:sldId"`
	} `xml:"p:sldIdLst,omitempty"`
	SldSz struct {
		Cx EMU `xml:"cx,attr"`
		Cy EMU `xml:"cy,attr"`
	} `xml:"p:sldSz"`
	NotesSz struct {
		Cx EMU `xml:"cx,attr"`
		Cy EMU `xml:"cy,attr"`
	} `xml:"p:notesSz"`
}

type xmlListID struct {
	ID  int64  `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

// Relationship ids of presentation.xml: the master and theme come first,
// slides follow in order.
const (
	presRelMaster     = 1
	presRelTheme      = 2
	presRelFirstSlide = 3
)

func (p *Presentation) presentationXML() xmlPresentation {
	x := xmlPresentation{
		XmlnsA:          nsA,
		XmlnsR:          nsR,
		XmlnsP:          nsP,
		SaveSubsetFonts: "1",
	}
	x.SldMasterIDLst.SldMasterID = xmlListID{ID: masterID, RID: fmt.Sprintf("rId%d", presRelMaster)}
	if len(p.Slides) > 0 {
		x.SldIDLst = &struct {
			SldIDs []xmlListID `xml:"p:sldId"`
		}{}
		for i := range p.Slides {
			x.SldIDLst.SldIDs = append(x.SldIDLst.SldIDs, xmlListID{
				ID:  int64(firstSlideID + i),
				RID: fmt.Sprintf("rId%d", presRelFirstSlide+i),
			})
		}
	}
	x.SldSz.Cx, x.SldSz.Cy = p.Width, p.Height
	x.NotesSz.Cx, x.NotesSz.Cy = p.Height, p.Width
	return x
}

func (p *Presentation) presentationRels() xmlRelationships {
	r := relationships(
		rel(presRelMaster, relSlideMaster, "slideMasters/slideMaster1.xml"),
		rel(presRelTheme, relTheme, "theme/theme1.xml"),
	)
	for i := range p.Slides {
		r.Rels = append(r.Rels, rel(presRelFirstSlide+i, relSlide, fmt.Sprintf("slides/slide%d.xml", i+1)))
	}
	return r
}

type xmlCoreProps struct {
	XMLName xml.Name `xml:"cp:coreProperties"`
	XmlnsCp string   `xml:"xmlns:cp,attr"`
	XmlnsDc string   `xml:"xmlns:dc,attr"`
	Title   string   `xml:"dc:title,omitempty"`
	Creator string   `xml:"dc:creator,omitempty"`
}

func (p *Presentation) coreProps() xmlCoreProps {
	return xmlCoreProps{
		XmlnsCp: "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		XmlnsDc: "http://purl.org/dc/elements/1.1/",
		Title:   p.Title,
		Creator: p.Author,
	}
}

type xmlAppProps struct {
	XMLName     xml.Name `xml:"Properties"`
	Xmlns       string   `xml:"xmlns,attr"`
	Application string   `xml:"Application"`
	Slides      int      `xml:"Slides"`
}

func (p *Presentation) appProps() xmlAppProps {
	return xmlAppProps{
		Xmlns:       "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties",
		Application: "assetgen",
		Slides:      len(p.Slides),
	}
}

// Ids of the single slide master and its blank layout. Both live in the
// range reserved for masters and layouts.
const (
	masterID = 2147483648
	layoutID = 2147483649
)

var slideMasterXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldMaster xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `">` +
	`<p:cSld><p:bg><p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef></p:bg>` +
	`<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/></p:spTree></p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" ` +
	`accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`<p:sldLayoutIdLst><p:sldLayoutId id="` + strconv.FormatInt(layoutID, 10) + `" r:id="rId1"/></p:sldLayoutIdLst>` +
	`</p:sldMaster>`

var slideLayoutXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `" type="blank" preserve="1">` +
	`<p:cSld name="Blank"><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/></p:spTree></p:cSld>` +
	`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
	`</p:sldLayout>`

var themeXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="` + nsA + `" name="Office Theme"><a:themeElements>` +
	`<a:clrScheme name="Office">` +
	`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>` +
	`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
	`<a:dk2><a:srgbClr val="1F497D"/></a:dk2>` +
	`<a:lt2><a:srgbClr val="EEECE1"/></a:lt2>` +
	`<a:accent1><a:srgbClr val="4F81BD"/></a:accent1>` +
	`<a:accent2><a:srgbClr val="C0504D"/></a:accent2>` +
	`<a:accent3><a:srgbClr val="9BBB59"/></a:accent3>` +
	`<a:accent4><a:srgbClr val="8064A2"/></a:accent4>` +
	`<a:accent5><a:srgbClr val="4BACC6"/></a:accent5>` +
	`<a:accent6><a:srgbClr val="F79646"/></a:accent6>` +
	`<a:hlink><a:srgbClr val="0000FF"/></a:hlink>` +
	`<a:folHlink><a:srgbClr val="800080"/></a:folHlink>` +
	`</a:clrScheme>` +
	`<a:fontScheme name="Office">` +
	`<a:majorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>` +
	`<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>` +
	`</a:fontScheme>` +
	`<a:fmtScheme name="Office"><a:fillStyleLst>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"><a:tint val="50000"/></a:schemeClr></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"><a:shade val="50000"/></a:schemeClr></a:solidFill>` +
	`</a:fillStyleLst><a:lnStyleLst>` +
	`<a:ln w="9525"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`<a:ln w="25400"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`<a:ln w="38100"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`</a:lnStyleLst><a:effectStyleLst>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`</a:effectStyleLst><a:bgFillStyleLst>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"><a:tint val="95000"/></a:schemeClr></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"><a:shade val="95000"/></a:schemeClr></a:solidFill>` +
	`</a:bgFillStyleLst></a:fmtScheme>` +
	`</a:themeElements><a:objectDefaults/><a:extraClrSchemeLst/></a:theme>`

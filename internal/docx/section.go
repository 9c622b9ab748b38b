package docx

import (
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/schema/soo/wml"
)

// Page dimensions in twips.
var paperSizes = map[string][2]uint64{
	"letter": {12240, 15840}, // 8.5 x 11 in
	"legal":  {12240, 20160}, // 8.5 x 14 in
	"a4":     {11906, 16838}, // 210 x 297 mm
}

// headerFooterMarginTwips is the distance from the page edge to the
// header and footer (0.5 in).
const headerFooterMarginTwips = 720

// applyGeometry sets the page size and margins on the body section;
// pandoc emits a single section, so that covers the whole document.
// Unknown paper sizes cannot occur here; the configuration is validated
// upstream, but letter is still the fallback.
func (p *PostProcessor) applyGeometry(doc *document.Document) {
	s := p.Settings
	size, ok := paperSizes[s.PaperSize]
	if !ok {
		size = paperSizes["letter"]
	}

	sect := doc.BodySection().X()

	if sect.PgSz == nil {
		sect.PgSz = wml.NewCT_PageSz()
	}
	w := unsignedTwips(size[0])
	h := unsignedTwips(size[1])
	sect.PgSz.WAttr = &w
	sect.PgSz.HAttr = &h

	if sect.PgMar == nil {
		sect.PgMar = wml.NewCT_PageMar()
	}
	sect.PgMar.TopAttr = signedTwips(cmToTwips(s.MarginTopCm))
	sect.PgMar.RightAttr = unsignedTwips(uint64(cmToTwips(s.MarginRightCm)))
	sect.PgMar.BottomAttr = signedTwips(cmToTwips(s.MarginBotCm))
	sect.PgMar.LeftAttr = unsignedTwips(uint64(cmToTwips(s.MarginLeftCm)))
	sect.PgMar.HeaderAttr = unsignedTwips(headerFooterMarginTwips)
	sect.PgMar.FooterAttr = unsignedTwips(headerFooterMarginTwips)
	sect.PgMar.GutterAttr = unsignedTwips(0)
}

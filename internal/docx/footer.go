package docx

import (
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/schema/soo/wml"
)

const (
	footerFontPt   = 10
	footerBeforePt = 12
)

// setupFooters creates distinct odd and even page footers with dynamic
// page numbers. Odd pages carry "text | N" right-aligned, even pages
// "N | text" left-aligned. The first page keeps its own blank footer so
// the title page stays clean. The footers attach to the body section,
// which is the only section in pandoc output.
func (p *PostProcessor) setupFooters(doc *document.Document) {
	sect := doc.BodySection()
	if sect.X().TitlePg == nil {
		sect.X().TitlePg = wml.NewCT_OnOff()
	}
	settings := doc.Settings.X()
	if settings.EvenAndOddHeaders == nil {
		settings.EvenAndOddHeaders = wml.NewCT_OnOff()
	}

	odd := doc.AddFooter()
	oddPara := odd.AddParagraph()
	setAlignment(oddPara.X(), wml.ST_JcRight)
	setSpacing(ensurePPr(oddPara.X()), footerBeforePt, 0, 1.0)
	text := oddPara.AddRun()
	text.AddText(p.Settings.FooterOdd + " | ")
	p.styleFooterRun(text)
	page := oddPara.AddRun()
	page.AddField(document.FieldCurrentPage)
	p.styleFooterRun(page)
	sect.SetFooter(odd, wml.ST_HdrFtrDefault)

	even := doc.AddFooter()
	evenPara := even.AddParagraph()
	setAlignment(evenPara.X(), wml.ST_JcLeft)
	setSpacing(ensurePPr(evenPara.X()), footerBeforePt, 0, 1.0)
	page = evenPara.AddRun()
	page.AddField(document.FieldCurrentPage)
	p.styleFooterRun(page)
	text = evenPara.AddRun()
	text.AddText(" | " + p.Settings.FooterEven)
	p.styleFooterRun(text)
	sect.SetFooter(even, wml.ST_HdrFtrEven)
}

func (p *PostProcessor) styleFooterRun(r document.Run) {
	rpr := ensureRPr(r.X())
	setRunFonts(rpr, p.Settings.FontName)
	setRunSize(rpr, footerFontPt)
	setRunLanguage(rpr, p.Settings.Language)
}

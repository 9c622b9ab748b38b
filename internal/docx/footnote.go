package docx

import (
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/schema/soo/ofc/sharedTypes"
	"baliance.com/gooxml/schema/soo/wml"
)

const footnoteFontPt = 10

// Pandoc footnote style IDs.
const (
	styleFootnoteText = "FootnoteText"
	styleFootnoteRef  = "FootnoteReference"
)

// formatFootnotes normalizes the footnote styles: compact spacing and
// the base font at 10pt for footnote text, superscript for the
// reference marks. Documents without footnotes simply lack the styles,
// in which case there is nothing to do.
func (p *PostProcessor) formatFootnotes(doc *document.Document) {
	s := p.Settings

	if st := findStyle(doc, styleFootnoteText); st != nil {
		rpr := ensureStyleRPr(st)
		setRunFonts(rpr, s.FontName)
		setRunSize(rpr, footnoteFontPt)
		setRunLanguage(rpr, s.Language)
		setStyleSpacing(ensureStylePPr(st), 0, 0, 1.0)
	}

	if st := findStyle(doc, styleFootnoteRef); st != nil {
		rpr := ensureStyleRPr(st)
		setRunFonts(rpr, s.FontName)
		setRunSize(rpr, footnoteFontPt)
		rpr.VertAlign = wml.NewCT_VerticalAlignRun()
		rpr.VertAlign.ValAttr = sharedTypes.ST_VerticalAlignRunSuperscript
	}
}

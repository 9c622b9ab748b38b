package docx

import "baliance.com/gooxml/document"

const bodySpacingPt = 6

// bodyStyles are the pandoc paragraph styles that carry running text.
// An empty ID means the paragraph has no explicit style.
var bodyStyles = map[string]bool{
	"":               true,
	"Normal":         true,
	"BodyText":       true,
	"FirstParagraph": true,
	"Compact":        true,
}

// formatBody applies the base typography to running-text paragraphs:
// spacing around the paragraph and font, size, and language on each
// run. Title and heading paragraphs are styled through the style table
// and skipped here.
func (p *PostProcessor) formatBody(doc *document.Document) {
	s := p.Settings
	for _, para := range doc.Paragraphs() {
		style := paragraphStyle(para.X())
		if !bodyStyles[style] {
			continue
		}

		setSpacing(ensurePPr(para.X()), bodySpacingPt, bodySpacingPt, s.LineSpacing)

		for _, r := range paragraphRuns(para.X()) {
			rpr := ensureRPr(r)
			setRunFonts(rpr, s.FontName)
			setRunSize(rpr, s.FontSize)
			setRunLanguage(rpr, s.Language)
		}
	}
}

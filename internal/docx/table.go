package docx

import (
	"baliance.com/gooxml/color"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"
)

const (
	tableFontPt        = 10
	tableCellSpacingPt = 2
	tableBorderWidth   = 0.5 * measurement.Point
)

// formatTables normalizes every table: a single thin border grid, fixed
// cell typography, a bold header row, and the document language on
// every cell run.
func (p *PostProcessor) formatTables(doc *document.Document) {
	s := p.Settings
	for _, table := range doc.Tables() {
		table.Properties().Borders().SetAll(wml.ST_BorderSingle, color.Auto, tableBorderWidth)

		for i, row := range tableRows(table.X()) {
			headerRow := i == 0
			for _, cell := range rowCells(row) {
				for _, para := range cellParagraphs(cell) {
					setSpacing(ensurePPr(para), tableCellSpacingPt, tableCellSpacingPt, 1.0)

					for _, r := range paragraphRuns(para) {
						rpr := ensureRPr(r)
						setRunFonts(rpr, s.FontName)
						setRunSize(rpr, tableFontPt)
						setRunLanguage(rpr, s.Language)
						if headerRow {
							rpr.B = onOff(true)
						}
					}
				}
			}
		}
	}
}

package docx

import "baliance.com/gooxml/document"

// dedupeTitle keeps the first paragraph whose text matches the document
// title, promotes it to the Title style with a fresh run, and removes
// every later duplicate. Pandoc emits the title both from the metadata
// block and from the (shifted) first heading, so duplicates are the
// normal case.
func (p *PostProcessor) dedupeTitle(doc *document.Document, title string) {
	if title == "" {
		return
	}

	found := false
	var duplicates []document.Paragraph
	for _, para := range doc.Paragraphs() {
		if paragraphText(para.X()) != title {
			continue
		}
		if found {
			duplicates = append(duplicates, para)
			continue
		}
		found = true
		para.SetStyle(styleTitle)
		clearParagraph(para.X())
		run := para.AddRun()
		run.AddText(title)
		rpr := ensureRPr(run.X())
		setRunFonts(rpr, p.Settings.FontName)
		setRunSize(rpr, titleFontPt)
		rpr.B = onOff(true)
	}

	for _, para := range duplicates {
		doc.RemoveParagraph(para)
	}
}

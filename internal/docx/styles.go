package docx

import (
	"baliance.com/gooxml"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/schema/soo/wml"
)

// Pandoc reference style IDs touched by the post-processor.
const (
	styleNormal   = "Normal"
	styleTitle    = "Title"
	styleHeading1 = "Heading1"
	styleHeading2 = "Heading2"
	styleHeading3 = "Heading3"
)

const titleFontPt = 24

// fallbackHeadingColor is used when a heading level has no configured color.
const fallbackHeadingColor = "000000"

// styleSpec describes one paragraph style override.
type styleSpec struct {
	id          string
	sizePt      int
	bold        bool
	italic      bool
	color       string // hex RRGGBB, empty keeps the inherited color
	beforePt    int
	afterPt     int
	lineSpacing float64
	detach      bool // drop basedOn inheritance and numbering
}

// styleTable builds the overrides for the base and heading styles.
// Markdown H2 maps to Heading1 after the pandoc level shift, so three
// heading styles cover the configured colors.
func (p *PostProcessor) styleTable() []styleSpec {
	s := p.Settings
	return []styleSpec{
		{id: styleNormal, sizePt: s.FontSize, beforePt: 0, afterPt: 0, lineSpacing: s.LineSpacing},
		{id: styleTitle, sizePt: titleFontPt, bold: true, beforePt: 12, afterPt: 12, lineSpacing: 1.0},
		{id: styleHeading1, sizePt: 18, bold: true, color: p.headingColor(1), beforePt: 18, afterPt: 12, lineSpacing: 1.0, detach: true},
		{id: styleHeading2, sizePt: 16, bold: true, color: p.headingColor(2), beforePt: 16, afterPt: 10, lineSpacing: 1.0, detach: true},
		{id: styleHeading3, sizePt: 14, bold: true, italic: true, color: p.headingColor(3), beforePt: 14, afterPt: 8, lineSpacing: 1.0, detach: true},
	}
}

func (p *PostProcessor) headingColor(level int) string {
	if hex, ok := p.Settings.HeadingColors[level]; ok {
		return hex
	}
	return fallbackHeadingColor
}

// applyLanguageDefaults sets the document default run language so every
// run without an explicit override proofs in the configured language.
func (p *PostProcessor) applyLanguageDefaults(doc *document.Document) {
	styles := doc.Styles.X()
	if styles.DocDefaults == nil {
		styles.DocDefaults = wml.NewCT_DocDefaults()
	}
	if styles.DocDefaults.RPrDefault == nil {
		styles.DocDefaults.RPrDefault = wml.NewCT_RPrDefault()
	}
	if styles.DocDefaults.RPrDefault.RPr == nil {
		styles.DocDefaults.RPrDefault.RPr = wml.NewCT_RPr()
	}
	setRunLanguage(styles.DocDefaults.RPrDefault.RPr, p.Settings.Language)
}

// applyStyles rewrites the base and heading paragraph styles in the
// pandoc reference stylesheet.
func (p *PostProcessor) applyStyles(doc *document.Document) {
	for _, spec := range p.styleTable() {
		st := ensureStyle(doc, spec.id)

		rpr := ensureStyleRPr(st)
		setRunFonts(rpr, p.Settings.FontName)
		setRunSize(rpr, spec.sizePt)
		rpr.B = onOff(spec.bold)
		rpr.BCs = onOff(spec.bold)
		if spec.italic {
			rpr.I = onOff(true)
			rpr.ICs = onOff(true)
		}
		if spec.color != "" {
			setRunColor(rpr, spec.color)
		}

		ppr := ensureStylePPr(st)
		setStyleSpacing(ppr, spec.beforePt, spec.afterPt, spec.lineSpacing)

		// Headings inherit formatting and outline numbering from the
		// reference template; detach both so the overrides win.
		if spec.detach {
			st.BasedOn = nil
			ppr.NumPr = nil
		}
	}
}

// ensureStyle finds a paragraph style by ID, creating it when the
// reference template lacks it.
func ensureStyle(doc *document.Document, id string) *wml.CT_Style {
	if st := findStyle(doc, id); st != nil {
		return st
	}
	st := wml.NewCT_Style()
	st.TypeAttr = wml.ST_StyleTypeParagraph
	st.StyleIdAttr = gooxml.String(id)
	st.Name = wml.NewCT_String()
	st.Name.ValAttr = id
	styles := doc.Styles.X()
	styles.Style = append(styles.Style, st)
	return st
}

func findStyle(doc *document.Document, id string) *wml.CT_Style {
	for _, st := range doc.Styles.X().Style {
		if st.StyleIdAttr != nil && *st.StyleIdAttr == id {
			return st
		}
	}
	return nil
}

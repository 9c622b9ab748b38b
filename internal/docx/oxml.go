package docx

import (
	"strings"

	"baliance.com/gooxml"
	"baliance.com/gooxml/schema/soo/ofc/sharedTypes"
	"baliance.com/gooxml/schema/soo/wml"
)

// WordprocessingML measures lengths in twentieths of a point (twips).
const (
	twipsPerPoint = 20
	twipsPerCm    = 567
	lineUnitsPer  = 240 // line spacing multiplier unit for lineRule=auto
)

func unsignedTwips(n uint64) sharedTypes.ST_TwipsMeasure {
	return sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: gooxml.Uint64(n)}
}

func unsignedTwipsPtr(n uint64) *sharedTypes.ST_TwipsMeasure {
	v := unsignedTwips(n)
	return &v
}

func signedTwips(n int64) wml.ST_SignedTwipsMeasure {
	return wml.ST_SignedTwipsMeasure{Int64: gooxml.Int64(n)}
}

// halfPoints converts points to the half-point unit used by w:sz.
func halfPoints(pt int) wml.ST_HpsMeasure {
	return wml.ST_HpsMeasure{ST_UnsignedDecimalNumber: gooxml.Uint64(uint64(pt * 2))}
}

// onOff returns an explicit toggle. Presence alone means true in
// WordprocessingML; false needs the val attribute spelled out.
func onOff(b bool) *wml.CT_OnOff {
	v := wml.NewCT_OnOff()
	if !b {
		v.ValAttr = &sharedTypes.ST_OnOff{Bool: gooxml.Bool(false)}
	}
	return v
}

func cmToTwips(cm float64) int64 {
	return int64(cm*twipsPerCm + 0.5)
}

func ensurePPr(p *wml.CT_P) *wml.CT_PPr {
	if p.PPr == nil {
		p.PPr = wml.NewCT_PPr()
	}
	return p.PPr
}

func ensureRPr(r *wml.CT_R) *wml.CT_RPr {
	if r.RPr == nil {
		r.RPr = wml.NewCT_RPr()
	}
	return r.RPr
}

func ensureStyleRPr(st *wml.CT_Style) *wml.CT_RPr {
	if st.RPr == nil {
		st.RPr = wml.NewCT_RPr()
	}
	return st.RPr
}

// Style definitions carry the general paragraph properties type, not
// the full CT_PPr used by document paragraphs.
func ensureStylePPr(st *wml.CT_Style) *wml.CT_PPrGeneral {
	if st.PPr == nil {
		st.PPr = wml.NewCT_PPrGeneral()
	}
	return st.PPr
}

// newSpacing builds paragraph spacing: before/after in points and a
// line spacing multiplier with lineRule=auto.
func newSpacing(beforePt, afterPt int, lineSpacing float64) *wml.CT_Spacing {
	sp := wml.NewCT_Spacing()
	sp.BeforeAttr = unsignedTwipsPtr(uint64(beforePt * twipsPerPoint))
	sp.AfterAttr = unsignedTwipsPtr(uint64(afterPt * twipsPerPoint))
	line := signedTwips(int64(lineSpacing * lineUnitsPer))
	sp.LineAttr = &line
	sp.LineRuleAttr = wml.ST_LineSpacingRuleAuto
	return sp
}

func setSpacing(ppr *wml.CT_PPr, beforePt, afterPt int, lineSpacing float64) {
	ppr.Spacing = newSpacing(beforePt, afterPt, lineSpacing)
}

func setStyleSpacing(ppr *wml.CT_PPrGeneral, beforePt, afterPt int, lineSpacing float64) {
	ppr.Spacing = newSpacing(beforePt, afterPt, lineSpacing)
}

func setAlignment(p *wml.CT_P, jc wml.ST_Jc) {
	ppr := ensurePPr(p)
	ppr.Jc = wml.NewCT_Jc()
	ppr.Jc.ValAttr = jc
}

// setRunFonts pins the run font for all script classes so the base font
// also applies to East Asian and complex script text.
func setRunFonts(rpr *wml.CT_RPr, name string) {
	fonts := wml.NewCT_Fonts()
	fonts.AsciiAttr = gooxml.String(name)
	fonts.HAnsiAttr = gooxml.String(name)
	fonts.EastAsiaAttr = gooxml.String(name)
	fonts.CsAttr = gooxml.String(name)
	rpr.RFonts = fonts
}

func setRunSize(rpr *wml.CT_RPr, pt int) {
	rpr.Sz = wml.NewCT_HpsMeasure()
	rpr.Sz.ValAttr = halfPoints(pt)
	rpr.SzCs = wml.NewCT_HpsMeasure()
	rpr.SzCs.ValAttr = halfPoints(pt)
}

func setRunColor(rpr *wml.CT_RPr, hex string) {
	rpr.Color = wml.NewCT_Color()
	rpr.Color.ValAttr.ST_HexColorRGB = gooxml.String(hex)
}

// setRunLanguage replaces the run language for proofing, covering the
// Latin, East Asian, and bidirectional slots.
func setRunLanguage(rpr *wml.CT_RPr, lang string) {
	l := wml.NewCT_Language()
	l.ValAttr = gooxml.String(lang)
	l.EastAsiaAttr = gooxml.String(lang)
	l.BidiAttr = gooxml.String(lang)
	rpr.Lang = l
}

// paragraphStyle returns the paragraph style ID, or "" when unstyled.
func paragraphStyle(p *wml.CT_P) string {
	if p.PPr == nil || p.PPr.PStyle == nil {
		return ""
	}
	return p.PPr.PStyle.ValAttr
}

// paragraphText concatenates the literal text of all runs.
func paragraphText(p *wml.CT_P) string {
	var sb strings.Builder
	for _, r := range paragraphRuns(p) {
		for _, ic := range r.EG_RunInnerContent {
			if ic.T != nil {
				sb.WriteString(ic.T.Content)
			}
		}
	}
	return sb.String()
}

func paragraphRuns(p *wml.CT_P) []*wml.CT_R {
	var runs []*wml.CT_R
	for _, pc := range p.EG_PContent {
		for _, rc := range pc.EG_ContentRunContent {
			if rc.R != nil {
				runs = append(runs, rc.R)
			}
		}
	}
	return runs
}

// clearParagraph drops all content while keeping paragraph properties.
func clearParagraph(p *wml.CT_P) {
	p.EG_PContent = nil
}

func tableRows(tbl *wml.CT_Tbl) []*wml.CT_Row {
	var rows []*wml.CT_Row
	for _, rc := range tbl.EG_ContentRowContent {
		rows = append(rows, rc.Tr...)
	}
	return rows
}

func rowCells(row *wml.CT_Row) []*wml.CT_Tc {
	var cells []*wml.CT_Tc
	for _, cc := range row.EG_ContentCellContent {
		cells = append(cells, cc.Tc...)
	}
	return cells
}

func cellParagraphs(tc *wml.CT_Tc) []*wml.CT_P {
	var paras []*wml.CT_P
	for _, be := range tc.EG_BlockLevelElts {
		for _, cbc := range be.EG_ContentBlockContent {
			paras = append(paras, cbc.P...)
		}
	}
	return paras
}

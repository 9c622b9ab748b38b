package docx

import (
	"strings"
	"testing"

	"baliance.com/gooxml/document"
	"baliance.com/gooxml/schema/soo/wml"
)

func testSettings() Settings {
	return Settings{
		PaperSize:     "a4",
		FontName:      "Arial",
		FontSize:      12,
		LineSpacing:   1.0,
		MarginTopCm:   2,
		MarginRightCm: 2,
		MarginBotCm:   2,
		MarginLeftCm:  2,
		HeadingColors: map[int]string{1: "2596BE", 2: "2596BE", 3: "2596BE"},
		FooterOdd:     "Report",
		FooterEven:    "Report",
		Language:      "en-US",
	}
}

func newProcessor() *PostProcessor {
	return &PostProcessor{Settings: testSettings()}
}

func addParagraph(doc *document.Document, style, text string) document.Paragraph {
	p := doc.AddParagraph()
	if style != "" {
		p.SetStyle(style)
	}
	p.AddRun().AddText(text)
	return p
}

// ---------------------------------------------------------------------------
// TestDedupeTitle - Duplicate Title Removal
// ---------------------------------------------------------------------------

func TestDedupeTitle(t *testing.T) {
	t.Parallel()

	doc := document.New()
	addParagraph(doc, "", "My Report")
	addParagraph(doc, "", "Body text.")
	addParagraph(doc, "", "My Report")
	addParagraph(doc, "", "My Report")

	newProcessor().dedupeTitle(doc, "My Report")

	var titleCount int
	for _, para := range doc.Paragraphs() {
		if paragraphText(para.X()) != "My Report" {
			continue
		}
		titleCount++
		if got := paragraphStyle(para.X()); got != styleTitle {
			t.Errorf("kept title has style %q, want %q", got, styleTitle)
		}
		runs := paragraphRuns(para.X())
		if len(runs) != 1 {
			t.Fatalf("kept title has %d runs, want 1", len(runs))
		}
		rpr := runs[0].RPr
		if rpr == nil || rpr.B == nil {
			t.Error("kept title run is not bold")
		}
		if rpr == nil || rpr.Sz == nil || *rpr.Sz.ValAttr.ST_UnsignedDecimalNumber != uint64(titleFontPt*2) {
			t.Error("kept title run is not 24pt")
		}
	}
	if titleCount != 1 {
		t.Errorf("found %d title paragraphs, want 1", titleCount)
	}
}

func TestDedupeTitle_EmptyTitle(t *testing.T) {
	t.Parallel()

	doc := document.New()
	addParagraph(doc, "", "")
	before := len(doc.Paragraphs())

	newProcessor().dedupeTitle(doc, "")

	if got := len(doc.Paragraphs()); got != before {
		t.Errorf("paragraph count changed from %d to %d", before, got)
	}
}

// ---------------------------------------------------------------------------
// TestApplyStyles - Style Table
// ---------------------------------------------------------------------------

func TestApplyStyles(t *testing.T) {
	t.Parallel()

	doc := document.New()
	newProcessor().applyStyles(doc)

	tests := []struct {
		id       string
		sizePt   int
		wantHex  string
		beforePt int
	}{
		{id: styleNormal, sizePt: 12, wantHex: "", beforePt: 0},
		{id: styleTitle, sizePt: 24, wantHex: "", beforePt: 12},
		{id: styleHeading1, sizePt: 18, wantHex: "2596BE", beforePt: 18},
		{id: styleHeading2, sizePt: 16, wantHex: "2596BE", beforePt: 16},
		{id: styleHeading3, sizePt: 14, wantHex: "2596BE", beforePt: 14},
	}

	for _, tt := range tests {
		tt := tt
		st := findStyle(doc, tt.id)
		if st == nil {
			t.Errorf("style %s missing after applyStyles", tt.id)
			continue
		}
		if st.RPr == nil || st.RPr.Sz == nil {
			t.Errorf("style %s has no size", tt.id)
			continue
		}
		if got := *st.RPr.Sz.ValAttr.ST_UnsignedDecimalNumber; got != uint64(tt.sizePt*2) {
			t.Errorf("style %s size = %d half-points, want %d", tt.id, got, tt.sizePt*2)
		}
		if st.RPr.RFonts == nil || st.RPr.RFonts.AsciiAttr == nil || *st.RPr.RFonts.AsciiAttr != "Arial" {
			t.Errorf("style %s font not set to Arial", tt.id)
		}
		if tt.wantHex != "" {
			if st.RPr.Color == nil || st.RPr.Color.ValAttr.ST_HexColorRGB == nil {
				t.Errorf("style %s has no color", tt.id)
			} else if got := *st.RPr.Color.ValAttr.ST_HexColorRGB; got != tt.wantHex {
				t.Errorf("style %s color = %s, want %s", tt.id, got, tt.wantHex)
			}
		}
		if st.PPr == nil || st.PPr.Spacing == nil || st.PPr.Spacing.BeforeAttr == nil {
			t.Errorf("style %s has no spacing", tt.id)
			continue
		}
		if got := *st.PPr.Spacing.BeforeAttr.ST_UnsignedDecimalNumber; got != uint64(tt.beforePt*twipsPerPoint) {
			t.Errorf("style %s space before = %d twips, want %d", tt.id, got, tt.beforePt*twipsPerPoint)
		}
	}
}

func TestApplyStyles_DetachesHeadings(t *testing.T) {
	t.Parallel()

	doc := document.New()
	// Simulate a pandoc reference style with inheritance and numbering.
	st := ensureStyle(doc, styleHeading1)
	st.BasedOn = wml.NewCT_String()
	st.BasedOn.ValAttr = "Heading"
	ensureStylePPr(st).NumPr = wml.NewCT_NumPr()

	newProcessor().applyStyles(doc)

	st = findStyle(doc, styleHeading1)
	if st.BasedOn != nil {
		t.Error("Heading1 still based on another style")
	}
	if st.PPr.NumPr != nil {
		t.Error("Heading1 still carries numbering")
	}
}

func TestApplyLanguageDefaults(t *testing.T) {
	t.Parallel()

	doc := document.New()
	newProcessor().applyLanguageDefaults(doc)

	styles := doc.Styles.X()
	if styles.DocDefaults == nil || styles.DocDefaults.RPrDefault == nil || styles.DocDefaults.RPrDefault.RPr == nil {
		t.Fatal("docDefaults run properties missing")
	}
	lang := styles.DocDefaults.RPrDefault.RPr.Lang
	if lang == nil || lang.ValAttr == nil || *lang.ValAttr != "en-US" {
		t.Errorf("default language = %v, want en-US", lang)
	}
	if lang.EastAsiaAttr == nil || lang.BidiAttr == nil {
		t.Error("eastAsia/bidi language slots not set")
	}
}

// ---------------------------------------------------------------------------
// TestFormatBody - Running Text Typography
// ---------------------------------------------------------------------------

func TestFormatBody(t *testing.T) {
	t.Parallel()

	doc := document.New()
	body := addParagraph(doc, "", "plain text")
	styled := addParagraph(doc, "BodyText", "body text style")
	heading := addParagraph(doc, styleHeading1, "a heading")

	newProcessor().formatBody(doc)

	for _, para := range []document.Paragraph{body, styled} {
		runs := paragraphRuns(para.X())
		if len(runs) == 0 {
			t.Fatal("paragraph lost its runs")
		}
		rpr := runs[0].RPr
		if rpr == nil || rpr.Sz == nil || *rpr.Sz.ValAttr.ST_UnsignedDecimalNumber != 24 {
			t.Errorf("body run size not 12pt: %+v", rpr)
		}
		if rpr.Lang == nil || rpr.Lang.ValAttr == nil || *rpr.Lang.ValAttr != "en-US" {
			t.Error("body run language not set")
		}
		sp := para.X().PPr.Spacing
		if sp == nil || sp.BeforeAttr == nil || *sp.BeforeAttr.ST_UnsignedDecimalNumber != bodySpacingPt*twipsPerPoint {
			t.Error("body paragraph spacing not applied")
		}
	}

	// Heading paragraphs are styled via the style table, not per run.
	for _, r := range paragraphRuns(heading.X()) {
		if r.RPr != nil && r.RPr.Sz != nil {
			t.Error("heading run got direct size formatting")
		}
	}
}

// ---------------------------------------------------------------------------
// TestFormatTables - Table Normalization
// ---------------------------------------------------------------------------

func TestFormatTables(t *testing.T) {
	t.Parallel()

	doc := document.New()
	table := doc.AddTable()
	header := table.AddRow().AddCell().AddParagraph()
	header.AddRun().AddText("Header")
	data := table.AddRow().AddCell().AddParagraph()
	data.AddRun().AddText("Value")

	newProcessor().formatTables(doc)

	if table.X().TblPr == nil || table.X().TblPr.TblBorders == nil {
		t.Error("table borders not applied")
	}

	rows := tableRows(table.X())
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	checkCellRun := func(row *wml.CT_Row, wantBold bool) {
		t.Helper()
		for _, cell := range rowCells(row) {
			for _, para := range cellParagraphs(cell) {
				for _, r := range paragraphRuns(para) {
					if r.RPr == nil || r.RPr.Sz == nil || *r.RPr.Sz.ValAttr.ST_UnsignedDecimalNumber != tableFontPt*2 {
						t.Error("cell run size not 10pt")
					}
					if wantBold && r.RPr.B == nil {
						t.Error("header run not bold")
					}
					if !wantBold && r.RPr.B != nil {
						t.Error("data run unexpectedly bold")
					}
				}
			}
		}
	}
	checkCellRun(rows[0], true)
	checkCellRun(rows[1], false)
}

// ---------------------------------------------------------------------------
// TestFormatFootnotes - Footnote Styles
// ---------------------------------------------------------------------------

func TestFormatFootnotes(t *testing.T) {
	t.Parallel()

	doc := document.New()
	ensureStyle(doc, styleFootnoteText)
	ensureStyle(doc, styleFootnoteRef)

	newProcessor().formatFootnotes(doc)

	text := findStyle(doc, styleFootnoteText)
	if text.RPr == nil || text.RPr.Sz == nil || *text.RPr.Sz.ValAttr.ST_UnsignedDecimalNumber != footnoteFontPt*2 {
		t.Error("footnote text style size not 10pt")
	}
	if text.RPr.Lang == nil {
		t.Error("footnote text style language not set")
	}

	ref := findStyle(doc, styleFootnoteRef)
	if ref.RPr == nil || ref.RPr.VertAlign == nil {
		t.Error("footnote reference style not superscript")
	}
}

func TestFormatFootnotes_NoStyles(t *testing.T) {
	t.Parallel()

	doc := document.New()
	// Must not create the styles or panic when they are absent.
	newProcessor().formatFootnotes(doc)

	if findStyle(doc, styleFootnoteText) != nil {
		t.Error("formatFootnotes created FootnoteText from nothing")
	}
}

// ---------------------------------------------------------------------------
// TestSetupFooters - Odd/Even Footers
// ---------------------------------------------------------------------------

func TestSetupFooters(t *testing.T) {
	t.Parallel()

	doc := document.New()
	newProcessor().setupFooters(doc)

	if doc.BodySection().X().TitlePg == nil {
		t.Error("title page flag not set")
	}
	if doc.Settings.X().EvenAndOddHeaders == nil {
		t.Error("evenAndOddHeaders flag not set")
	}

	var refs int
	for _, hf := range doc.BodySection().X().EG_HdrFtrReferences {
		if hf.FooterReference != nil {
			refs++
		}
	}
	if refs < 2 {
		t.Errorf("got %d footer references, want at least 2 (default and even)", refs)
	}
}

// ---------------------------------------------------------------------------
// TestApplyGeometry - Page Size and Margins
// ---------------------------------------------------------------------------

func TestApplyGeometry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		paper string
		wantW uint64
		wantH uint64
	}{
		{paper: "letter", wantW: 12240, wantH: 15840},
		{paper: "legal", wantW: 12240, wantH: 20160},
		{paper: "a4", wantW: 11906, wantH: 16838},
		{paper: "unknown", wantW: 12240, wantH: 15840}, // falls back to letter
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.paper, func(t *testing.T) {
			t.Parallel()
			doc := document.New()
			p := newProcessor()
			p.Settings.PaperSize = tt.paper
			p.applyGeometry(doc)

			sect := doc.BodySection().X()
			if sect.PgSz == nil || sect.PgSz.WAttr == nil || sect.PgSz.HAttr == nil {
				t.Fatal("page size not set")
			}
			if got := *sect.PgSz.WAttr.ST_UnsignedDecimalNumber; got != tt.wantW {
				t.Errorf("width = %d, want %d", got, tt.wantW)
			}
			if got := *sect.PgSz.HAttr.ST_UnsignedDecimalNumber; got != tt.wantH {
				t.Errorf("height = %d, want %d", got, tt.wantH)
			}
			if sect.PgMar == nil || sect.PgMar.TopAttr.Int64 == nil {
				t.Fatal("margins not set")
			}
			if got := *sect.PgMar.TopAttr.Int64; got != cmToTwips(2) {
				t.Errorf("top margin = %d twips, want %d", got, cmToTwips(2))
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestInsertImages - Placeholder Replacement
// ---------------------------------------------------------------------------

func TestInsertImages_MissingImage(t *testing.T) {
	t.Parallel()

	doc := document.New()
	addParagraph(doc, "", placeholderText)

	refs := []ImageRef{{Alt: "Architecture", Path: "missing.png"}}
	newProcessor().insertImages(doc, refs, t.TempDir())

	var found bool
	for _, para := range doc.Paragraphs() {
		text := paragraphText(para.X())
		if text == "[Image not found: Architecture]" {
			found = true
		}
		if strings.Contains(text, placeholderText) {
			t.Error("placeholder survived image pass")
		}
	}
	if !found {
		t.Error("missing image marker not inserted")
	}
}

func TestInsertImages_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	doc := document.New()
	addParagraph(doc, "", placeholderText)

	refs := []ImageRef{{Alt: "Vector", Path: "diagram.svg"}}
	newProcessor().insertImages(doc, refs, t.TempDir())

	var found bool
	for _, para := range doc.Paragraphs() {
		if paragraphText(para.X()) == "[Image not found: Vector]" {
			found = true
		}
	}
	if !found {
		t.Error("unsupported extension did not degrade to marker")
	}
}

func TestInsertImages_NoRefs(t *testing.T) {
	t.Parallel()

	doc := document.New()
	addParagraph(doc, "", placeholderText)

	newProcessor().insertImages(doc, nil, t.TempDir())

	// Without refs the placeholder stays; pandoc never sees images anyway.
	var kept bool
	for _, para := range doc.Paragraphs() {
		if strings.Contains(paragraphText(para.X()), placeholderText) {
			kept = true
		}
	}
	if !kept {
		t.Error("placeholder removed without a matching reference")
	}
}

// ---------------------------------------------------------------------------
// TestOxmlHelpers - Raw Helpers
// ---------------------------------------------------------------------------

func TestSetStyleSpacing(t *testing.T) {
	t.Parallel()

	st := wml.NewCT_Style()
	setStyleSpacing(ensureStylePPr(st), 12, 6, 1.5)

	sp := st.PPr.Spacing
	if sp == nil {
		t.Fatal("style spacing not set")
	}
	if got := *sp.BeforeAttr.ST_UnsignedDecimalNumber; got != 12*twipsPerPoint {
		t.Errorf("space before = %d twips, want %d", got, 12*twipsPerPoint)
	}
	if got := *sp.AfterAttr.ST_UnsignedDecimalNumber; got != 6*twipsPerPoint {
		t.Errorf("space after = %d twips, want %d", got, 6*twipsPerPoint)
	}
	if got := *sp.LineAttr.Int64; got != int64(1.5*lineUnitsPer) {
		t.Errorf("line = %d, want %d", got, int64(1.5*lineUnitsPer))
	}
	if sp.LineRuleAttr != wml.ST_LineSpacingRuleAuto {
		t.Error("line rule not auto")
	}
}

func TestCmToTwips(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cm   float64
		want int64
	}{
		{cm: 0, want: 0},
		{cm: 1, want: 567},
		{cm: 2, want: 1134},
		{cm: 1.5, want: 851}, // rounded from 850.5
	}
	for _, tt := range tests {
		tt := tt
		if got := cmToTwips(tt.cm); got != tt.want {
			t.Errorf("cmToTwips(%v) = %d, want %d", tt.cm, got, tt.want)
		}
	}
}

func TestParagraphText(t *testing.T) {
	t.Parallel()

	doc := document.New()
	p := doc.AddParagraph()
	p.AddRun().AddText("Hello, ")
	p.AddRun().AddText("world")

	if got := paragraphText(p.X()); got != "Hello, world" {
		t.Errorf("paragraphText() = %q", got)
	}

	clearParagraph(p.X())
	if got := paragraphText(p.X()); got != "" {
		t.Errorf("after clear, paragraphText() = %q", got)
	}
}

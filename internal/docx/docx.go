// Package docx post-processes pandoc-generated Word documents: style
// table, language metadata, duplicate-title removal, body and table
// typography, footnote normalization, odd/even footers with page
// numbers, page geometry, and image embedding.
package docx

import (
	"errors"
	"fmt"

	"baliance.com/gooxml/document"
)

// Sentinel errors for document post-processing.
var (
	ErrOpenDocument = errors.New("failed to open document")
	ErrSaveDocument = errors.New("failed to save document")
)

// Settings carries the resolved styling parameters for one document.
// Values are validated by the caller before they reach this package.
type Settings struct {
	PaperSize     string // letter, legal, a4 (lowercase)
	FontName      string
	FontSize      int     // base size in points
	LineSpacing   float64 // multiplier
	MarginTopCm   float64
	MarginRightCm float64
	MarginBotCm   float64
	MarginLeftCm  float64
	HeadingColors map[int]string // level 1-3 to hex RRGGBB
	FooterOdd     string
	FooterEven    string
	Language      string // BCP 47 tag, e.g. "en-US"
}

// ImageRef is one image reference from the source markdown, in document
// order. Path is relative to the source img/ directory.
type ImageRef struct {
	Alt  string
	Path string
}

// PostProcessor rewrites a generated document in place.
type PostProcessor struct {
	Settings Settings
}

// Process opens the document at path, applies all formatting passes,
// embeds the images at their placeholder positions, and saves the
// result back to the same path.
func (p *PostProcessor) Process(path, title string, images []ImageRef, sourceDir string) error {
	doc, err := document.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenDocument, err)
	}

	p.applyLanguageDefaults(doc)
	p.applyStyles(doc)
	p.dedupeTitle(doc, title)
	p.formatBody(doc)
	p.formatTables(doc)
	p.formatFootnotes(doc)
	p.setupFooters(doc)
	p.applyGeometry(doc)
	p.insertImages(doc, images, sourceDir)

	if err := doc.SaveToFile(path); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveDocument, err)
	}
	return nil
}

package docx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	// Decoders for the supported image formats. gooxml decodes through
	// the image registry, so the formats must be linked in here.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"baliance.com/gooxml/common"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"
)

// placeholderText marks the paragraphs where images were stripped from
// the markdown before the pandoc run.
const placeholderText = "[IMAGE_PLACEHOLDER]"

// maxImageWidth caps embedded images; wider images scale down with the
// aspect ratio preserved.
const maxImageWidth = 6 * measurement.Inch

// imageDPI converts pixel dimensions to physical size.
const imageDPI = 96

var supportedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
}

// insertImages replaces placeholder paragraphs with the referenced
// images, in document order. Missing or undecodable images degrade to a
// visible text marker rather than failing the conversion.
func (p *PostProcessor) insertImages(doc *document.Document, images []ImageRef, sourceDir string) {
	remaining := images
	for _, para := range doc.Paragraphs() {
		if len(remaining) == 0 {
			return
		}
		if !strings.Contains(paragraphText(para.X()), placeholderText) {
			continue
		}
		ref := remaining[0]
		remaining = remaining[1:]

		clearParagraph(para.X())
		setAlignment(para.X(), wml.ST_JcCenter)

		imagePath := filepath.Join(sourceDir, "img", ref.Path)
		if !supportedImageExts[strings.ToLower(filepath.Ext(ref.Path))] || !regularFile(imagePath) {
			setMarker(para, fmt.Sprintf("[Image not found: %s]", ref.Alt))
			continue
		}

		if err := embedImage(doc, para, imagePath); err != nil {
			setMarker(para, fmt.Sprintf("[Image: %s]", ref.Alt))
		}
	}
}

// embedImage adds the image to the document package and anchors it
// inline in the paragraph, scaled to at most maxImageWidth.
func embedImage(doc *document.Document, para document.Paragraph, path string) error {
	img, err := common.ImageFromFile(path)
	if err != nil {
		return fmt.Errorf("decoding image: %w", err)
	}

	ref, err := doc.AddImage(img)
	if err != nil {
		return fmt.Errorf("adding image to document: %w", err)
	}

	inline, err := para.AddRun().AddDrawingInline(ref)
	if err != nil {
		return fmt.Errorf("anchoring image: %w", err)
	}

	w := measurement.Distance(img.Size.X) * measurement.Inch / imageDPI
	h := measurement.Distance(img.Size.Y) * measurement.Inch / imageDPI
	if w > maxImageWidth {
		h = h * maxImageWidth / w
		w = maxImageWidth
	}
	inline.SetSize(w, h)
	return nil
}

func setMarker(para document.Paragraph, text string) {
	para.AddRun().AddText(text)
}

func regularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

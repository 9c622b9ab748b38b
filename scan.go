package md2docx

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// DefaultTitle is used when the markdown contains no level-1 heading.
const DefaultTitle = "Untitled Document"

// ImagePlaceholder marks removed image references in the markdown handed
// to pandoc. The post-processing pass replaces it with embedded images.
const ImagePlaceholder = "[IMAGE_PLACEHOLDER]"

// imagePattern matches inline image references: ![alt](path).
var imagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)

// ImageRef is an image reference extracted from markdown. Path is
// relative to the source img/ directory, with any leading "img/" stripped.
type ImageRef struct {
	Alt  string
	Path string
}

// ExtractTitle returns the text of the first level-1 heading. Unlike a
// line scan, the AST walk ignores "# " inside fenced code blocks and
// picks up setext headings.
func ExtractTitle(markdown string) string {
	src := []byte(markdown)
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	title := ""
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			title = string(h.Text(src))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	title = strings.TrimSpace(title)
	if title == "" {
		return DefaultTitle
	}
	return title
}

// ExtractImageRefs returns all image references in document order.
func ExtractImageRefs(markdown string) []ImageRef {
	matches := imagePattern.FindAllStringSubmatch(markdown, -1)
	refs := make([]ImageRef, 0, len(matches))
	for _, m := range matches {
		path := strings.TrimSpace(m[2])
		path = strings.TrimPrefix(path, "img/")
		refs = append(refs, ImageRef{Alt: m[1], Path: path})
	}
	return refs
}

// StripImageRefs replaces every image reference with ImagePlaceholder so
// pandoc emits a plain paragraph the image pass can locate afterwards.
func StripImageRefs(markdown string) string {
	return imagePattern.ReplaceAllString(markdown, ImagePlaceholder)
}

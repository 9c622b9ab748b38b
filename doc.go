// Package md2docx converts Markdown documents to styled Word (DOCX)
// files using pandoc and post-processing of the document object model.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2docx.NewConverter(md2docx.ReportConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown:   "# Hello\n\nWorld",
//	    OutputPath: "hello.docx",
//	})
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown scan (title from the first H1, image reference extraction)
//  2. Image references replaced by placeholders
//  3. DOCX generation via pandoc (heading levels shifted so H1 becomes
//     the document Title)
//  4. Document post-processing via gooxml: style table, language
//     metadata, duplicate-title removal, table borders, footnote
//     normalization, odd/even footers with page numbers, page geometry
//  5. Image embedding at the placeholder positions, scaled to at most
//     six inches wide
//
// # Configuration
//
// Config is validated once at construction and immutable afterwards:
//
//	cfg := md2docx.NoteConfig()
//	cfg.Author = "Jane Doe"
//	cfg.Language = "fr-CA"
//	conv, err := md2docx.NewConverter(cfg, md2docx.WithTimeout(time.Minute))
//
// # Image Convention
//
// Image references are resolved under <source dir>/img/. Both
// ![x](img/a.png) and ![x](a.png) resolve to img/a.png. Missing or
// undecodable images degrade to a visible text marker, never an error.
//
// # Pandoc Requirement
//
// DOCX generation requires the pandoc binary on PATH. NewConverter
// returns ErrPandocNotFound when it is absent; the md2docx CLI offers a
// doctor command for diagnostics.
package md2docx

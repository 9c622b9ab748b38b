package md2docx

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrEmptyOutputPath  = errors.New("output path cannot be empty")
	ErrInvalidOutputExt = errors.New("output file must have .docx extension")

	// Pandoc errors.
	ErrPandocNotFound = errors.New("pandoc is not installed")
	ErrPandocFailed   = errors.New("pandoc conversion failed")

	// Configuration validation errors.
	ErrInvalidStyleTemplate = errors.New("invalid style template")
	ErrInvalidPaperSize     = errors.New("invalid paper size")
	ErrInvalidFontName      = errors.New("invalid font name")
	ErrInvalidFontSize      = errors.New("invalid font size")
	ErrInvalidLineSpacing   = errors.New("invalid line spacing")
	ErrInvalidMargin        = errors.New("invalid margin")
	ErrInvalidHeadingLevel  = errors.New("invalid heading level")
	ErrInvalidLanguage      = errors.New("invalid language code")
	ErrInvalidColor         = errors.New("invalid color")
)

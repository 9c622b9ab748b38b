package main

import (
	"errors"
	"os"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/dateutil"
)

// Exit codes for md2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitPandoc  = 4 // Pandoc missing or failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Pandoc errors (exit 4)
	if errors.Is(err, md2docx.ErrPandocNotFound) ||
		errors.Is(err, md2docx.ErrPandocFailed) {
		return ExitPandoc
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, md2docx.ErrEmptyMarkdown) ||
		errors.Is(err, md2docx.ErrEmptyOutputPath) ||
		errors.Is(err, md2docx.ErrInvalidOutputExt) ||
		errors.Is(err, md2docx.ErrInvalidStyleTemplate) ||
		errors.Is(err, md2docx.ErrInvalidPaperSize) ||
		errors.Is(err, md2docx.ErrInvalidFontName) ||
		errors.Is(err, md2docx.ErrInvalidFontSize) ||
		errors.Is(err, md2docx.ErrInvalidLineSpacing) ||
		errors.Is(err, md2docx.ErrInvalidMargin) ||
		errors.Is(err, md2docx.ErrInvalidHeadingLevel) ||
		errors.Is(err, md2docx.ErrInvalidLanguage) ||
		errors.Is(err, md2docx.ErrInvalidColor) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}

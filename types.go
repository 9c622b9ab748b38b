package md2docx

import (
	"fmt"
	"strings"
)

// Paper size constants.
const (
	PaperLetter = "letter"
	PaperLegal  = "legal"
	PaperA4     = "a4"
)

// Style template constants.
const (
	StyleReport = "report"
	StyleNote   = "note"
	StyleLetter = "letter"
	StyleMemo   = "memo"
)

// Typography defaults.
const (
	DefaultFontName    = "Arial"
	DefaultFontSize    = 12
	DefaultLineSpacing = 1.0
	DefaultLanguage    = "en-US"
	DefaultMarginCm    = 2.0
)

// Validation bounds.
const (
	MaxFontSize    = 96
	MaxLineSpacing = 5.0
	MaxMarginCm    = 10.0
	MaxLanguageLen = 35 // BCP 47 upper bound in practice
)

// MaxHeadingLevel is the deepest heading level that carries a configured color.
const MaxHeadingLevel = 3

// RGB is a 24-bit heading color. Components are bytes, so every value is
// in range by construction; untrusted text enters through ParseHexColor.
type RGB struct {
	R, G, B uint8
}

// Hex returns the six-digit uppercase form used in WordprocessingML,
// e.g. "2596BE".
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB" into an RGB color.
func ParseHexColor(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q (want RRGGBB)", ErrInvalidColor, s)
	}
	var c RGB
	if _, err := fmt.Sscanf(h, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// Margins holds page margins in centimeters.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargins returns margins with the same value on all sides.
func UniformMargins(cm float64) Margins {
	return Margins{Top: cm, Right: cm, Bottom: cm, Left: cm}
}

// FooterText holds the footer text for odd and even pages. Page numbers
// are appended (odd) or prepended (even) automatically.
type FooterText struct {
	Odd  string
	Even string
}

// Config holds all settings for document conversion and styling.
// Validate once at construction; the converter never mutates it.
type Config struct {
	Style         string      // style template: report, note, letter, memo
	PaperSize     string      // letter, legal, a4
	Author        string      // pandoc author metadata
	Date          string      // pandoc date metadata
	Language      string      // e.g. "en-US", "fr-CA"
	FontName      string      // base font family
	FontSize      int         // base font size in points
	LineSpacing   float64     // line spacing multiplier
	Margins       Margins     // page margins in cm
	HeadingColors map[int]RGB // heading levels 1-3
	Footer        FooterText
	TOC           bool // generate table of contents
}

// defaultHeadingColor is applied to all heading levels unless overridden.
var defaultHeadingColor = RGB{R: 37, G: 150, B: 190}

// DefaultConfig returns the neutral report configuration.
func DefaultConfig() *Config {
	return &Config{
		Style:       StyleReport,
		PaperSize:   PaperLetter,
		Language:    DefaultLanguage,
		FontName:    DefaultFontName,
		FontSize:    DefaultFontSize,
		LineSpacing: DefaultLineSpacing,
		Margins:     UniformMargins(DefaultMarginCm),
		HeadingColors: map[int]RGB{
			1: defaultHeadingColor,
			2: defaultHeadingColor,
			3: defaultHeadingColor,
		},
		Footer: FooterText{Odd: "Page", Even: "Page"},
		TOC:    true,
	}
}

// ReportConfig returns a configuration preset for professional reports.
func ReportConfig() *Config {
	cfg := DefaultConfig()
	cfg.Footer = FooterText{Odd: "Right text | Page", Even: "Page | Left text"}
	return cfg
}

// NoteConfig returns a configuration preset for internal notes:
// legal paper, grey-scale headings, tighter margins.
func NoteConfig() *Config {
	cfg := DefaultConfig()
	cfg.Style = StyleNote
	cfg.PaperSize = PaperLegal
	cfg.Margins = UniformMargins(1.5)
	cfg.HeadingColors = map[int]RGB{
		1: {R: 70, G: 70, B: 70},
		2: {R: 100, G: 100, B: 100},
		3: {R: 130, G: 130, B: 130},
	}
	cfg.Footer = FooterText{Odd: "Internal Note | Page", Even: "Page | Internal Note"}
	return cfg
}

// Validate checks that all configuration values are in range.
func (c *Config) Validate() error {
	if !isValidStyle(c.Style) {
		return fmt.Errorf("%w: %q", ErrInvalidStyleTemplate, c.Style)
	}
	if !isValidPaperSize(c.PaperSize) {
		return fmt.Errorf("%w: %q", ErrInvalidPaperSize, c.PaperSize)
	}
	if strings.TrimSpace(c.FontName) == "" {
		return fmt.Errorf("%w: font name cannot be empty", ErrInvalidFontName)
	}
	if c.FontSize <= 0 || c.FontSize > MaxFontSize {
		return fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidFontSize, c.FontSize, MaxFontSize)
	}
	if c.LineSpacing <= 0 || c.LineSpacing > MaxLineSpacing {
		return fmt.Errorf("%w: %.2f (must be between 0 and %.1f)", ErrInvalidLineSpacing, c.LineSpacing, MaxLineSpacing)
	}
	for _, m := range []struct {
		side string
		cm   float64
	}{
		{"top", c.Margins.Top},
		{"right", c.Margins.Right},
		{"bottom", c.Margins.Bottom},
		{"left", c.Margins.Left},
	} {
		if m.cm < 0 || m.cm > MaxMarginCm {
			return fmt.Errorf("%w: %s %.2fcm (must be between 0 and %.0f)", ErrInvalidMargin, m.side, m.cm, MaxMarginCm)
		}
	}
	for level := range c.HeadingColors {
		if level < 1 || level > MaxHeadingLevel {
			return fmt.Errorf("%w: %d (heading colors cover levels 1-%d)", ErrInvalidHeadingLevel, level, MaxHeadingLevel)
		}
	}
	if !isValidLanguage(c.Language) {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, c.Language)
	}
	return nil
}

// isValidStyle checks that name is a known style template (case-insensitive).
func isValidStyle(name string) bool {
	switch strings.ToLower(name) {
	case StyleReport, StyleNote, StyleLetter, StyleMemo:
		return true
	}
	return false
}

// isValidPaperSize checks that size is a known paper size (case-insensitive).
func isValidPaperSize(size string) bool {
	switch strings.ToLower(size) {
	case PaperLetter, PaperLegal, PaperA4:
		return true
	}
	return false
}

// isValidLanguage accepts BCP 47-shaped tags: ASCII letters, digits, and
// hyphens, starting with a letter, e.g. "en", "en-US", "fr-CA".
func isValidLanguage(lang string) bool {
	if lang == "" || len(lang) > MaxLanguageLen {
		return false
	}
	for i, r := range lang {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9', r == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return !strings.HasSuffix(lang, "-")
}

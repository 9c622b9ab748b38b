// Package config loads and validates CLI configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxAuthorLength   = 100 // full name
	MaxDateLength     = 30  // "2025-12-31" or "December 31, 2025"
	MaxLanguageLength = 35  // BCP 47 upper bound in practice
	MaxStyleLength    = 10  // "report", "note", "letter", "memo"
	MaxPaperLength    = 10  // "letter", "legal", "a4"
	MaxFontNameLength = 100 // font family name
	MaxFooterLength   = 200 // footer text per side
	MaxColorLength    = 7   // "#RRGGBB"
)

// Config holds all configuration for document generation.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Document   DocumentConfig   `yaml:"document"`
	Typography TypographyConfig `yaml:"typography"`
	Page       PageConfig       `yaml:"page"`
	Headings   HeadingsConfig   `yaml:"headings"`
	Footer     FooterConfig     `yaml:"footer"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// DocumentConfig defines document metadata and template options.
type DocumentConfig struct {
	Style     string `yaml:"style"`     // "report", "note", "letter", "memo"
	PaperSize string `yaml:"paperSize"` // "letter", "legal", "a4"
	Author    string `yaml:"author"`
	Date      string `yaml:"date"`     // supports "auto" and "auto:FORMAT"
	Language  string `yaml:"language"` // e.g. "en-US"
	TOC       *bool  `yaml:"toc"`      // nil = default (enabled)
}

// TypographyConfig defines base typography options.
type TypographyConfig struct {
	FontName    string  `yaml:"fontName"`
	FontSize    int     `yaml:"fontSize"`    // points, 0 = default
	LineSpacing float64 `yaml:"lineSpacing"` // multiplier, 0 = default
}

// PageConfig defines page geometry options.
type PageConfig struct {
	Margins MarginsConfig `yaml:"margins"`
}

// MarginsConfig holds page margins in centimeters. Zero means default.
type MarginsConfig struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// HeadingsConfig holds hex colors for heading levels 1-3.
type HeadingsConfig struct {
	H1 string `yaml:"h1"`
	H2 string `yaml:"h2"`
	H3 string `yaml:"h3"`
}

// FooterConfig defines footer text for odd and even pages.
type FooterConfig struct {
	Odd  string `yaml:"odd"`
	Even string `yaml:"even"`
}

// DefaultConfig returns an empty configuration: every zero value defers
// to the library defaults at build time.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field lengths. Value-range validation happens in the
// library's Config.Validate; this guards the text fields read from disk.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"document.author", c.Document.Author, MaxAuthorLength},
		{"document.date", c.Document.Date, MaxDateLength},
		{"document.language", c.Document.Language, MaxLanguageLength},
		{"document.style", c.Document.Style, MaxStyleLength},
		{"document.paperSize", c.Document.PaperSize, MaxPaperLength},
		{"typography.fontName", c.Typography.FontName, MaxFontNameLength},
		{"footer.odd", c.Footer.Odd, MaxFooterLength},
		{"footer.even", c.Footer.Even, MaxFooterLength},
		{"headings.h1", c.Headings.H1, MaxColorLength},
		{"headings.h2", c.Headings.H2, MaxColorLength},
		{"headings.h3", c.Headings.H3, MaxColorLength},
	}
	for _, f := range fields {
		if len(f.value) > f.max {
			return fmt.Errorf("%w: %s (%d > %d)", ErrFieldTooLong, f.name, len(f.value), f.max)
		}
	}
	return nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2docx/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2docx", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

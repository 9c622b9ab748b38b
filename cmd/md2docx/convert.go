package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/dateutil"
	"github.com/alnah/go-md2docx/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrInvalidTimeout   = errors.New("invalid timeout")
)

// runConvert orchestrates a single file conversion.
func runConvert(args []string, deps *Dependencies) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}
	if err := validateInputExtension(inputPath); err != nil {
		return err
	}

	markdown, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	outputPath := resolveOutputPath(flags.output, inputPath, cfg)

	libCfg, err := buildConfig(cfg)
	if err != nil {
		return err
	}

	// Resolve "auto" dates against the injected clock
	if libCfg.Date != "" {
		resolved, err := dateutil.Resolve(libCfg.Date, deps.Now())
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		libCfg.Date = resolved
	}

	opts, err := buildOptions(flags.timeout)
	if err != nil {
		return err
	}

	conv, err := md2docx.NewConverter(libCfg, opts...)
	if err != nil {
		return err
	}

	start := deps.Now()
	result, err := conv.Convert(context.Background(), md2docx.Input{
		Markdown:   string(markdown),
		OutputPath: outputPath,
		SourceDir:  filepath.Dir(inputPath),
	})
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Converted %s -> %s\n", inputPath, result.OutputPath)
	}
	if flags.common.verbose {
		fmt.Fprintf(deps.Stdout, "  title:  %s\n", result.Title)
		fmt.Fprintf(deps.Stdout, "  images: %d\n", result.Images)
		fmt.Fprintf(deps.Stdout, "  took:   %s\n", time.Since(start).Round(time.Millisecond))
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	// Document flags
	if flags.document.style != "" {
		cfg.Document.Style = flags.document.style
	}
	if flags.document.paperSize != "" {
		cfg.Document.PaperSize = flags.document.paperSize
	}
	if flags.document.author != "" {
		cfg.Document.Author = flags.document.author
	}
	if flags.document.date != "" {
		cfg.Document.Date = flags.document.date
	}
	if flags.document.language != "" {
		cfg.Document.Language = flags.document.language
	}
	if flags.document.noTOC {
		disabled := false
		cfg.Document.TOC = &disabled
	}

	// Typography flags
	if flags.typography.fontName != "" {
		cfg.Typography.FontName = flags.typography.fontName
	}
	if flags.typography.fontSize != 0 {
		cfg.Typography.FontSize = flags.typography.fontSize
	}
	if flags.typography.lineSpacing != 0 {
		cfg.Typography.LineSpacing = flags.typography.lineSpacing
	}

	// Page flags: uniform margin first, per-side overrides win
	if flags.page.margin != 0 {
		cfg.Page.Margins = config.MarginsConfig{
			Top:    flags.page.margin,
			Right:  flags.page.margin,
			Bottom: flags.page.margin,
			Left:   flags.page.margin,
		}
	}
	if flags.page.marginTop != 0 {
		cfg.Page.Margins.Top = flags.page.marginTop
	}
	if flags.page.marginRight != 0 {
		cfg.Page.Margins.Right = flags.page.marginRight
	}
	if flags.page.marginBottom != 0 {
		cfg.Page.Margins.Bottom = flags.page.marginBottom
	}
	if flags.page.marginLeft != 0 {
		cfg.Page.Margins.Left = flags.page.marginLeft
	}

	// Heading color flags
	if flags.headings.h1 != "" {
		cfg.Headings.H1 = flags.headings.h1
	}
	if flags.headings.h2 != "" {
		cfg.Headings.H2 = flags.headings.h2
	}
	if flags.headings.h3 != "" {
		cfg.Headings.H3 = flags.headings.h3
	}

	// Footer flags
	if flags.footer.odd != "" {
		cfg.Footer.Odd = flags.footer.odd
	}
	if flags.footer.even != "" {
		cfg.Footer.Even = flags.footer.even
	}
}

// baseConfig picks the library preset matching the style template.
func baseConfig(style string) *md2docx.Config {
	switch strings.ToLower(style) {
	case md2docx.StyleNote:
		return md2docx.NoteConfig()
	case md2docx.StyleReport:
		return md2docx.ReportConfig()
	case "":
		return md2docx.DefaultConfig()
	default:
		cfg := md2docx.DefaultConfig()
		cfg.Style = strings.ToLower(style)
		return cfg
	}
}

// buildConfig maps the merged CLI config onto a library config. Empty
// or zero values keep the preset defaults.
func buildConfig(cfg *config.Config) (*md2docx.Config, error) {
	lib := baseConfig(cfg.Document.Style)

	if cfg.Document.PaperSize != "" {
		lib.PaperSize = strings.ToLower(cfg.Document.PaperSize)
	}
	if cfg.Document.Author != "" {
		lib.Author = cfg.Document.Author
	}
	if cfg.Document.Date != "" {
		lib.Date = cfg.Document.Date
	}
	if cfg.Document.Language != "" {
		lib.Language = cfg.Document.Language
	}
	if cfg.Document.TOC != nil {
		lib.TOC = *cfg.Document.TOC
	}

	if cfg.Typography.FontName != "" {
		lib.FontName = cfg.Typography.FontName
	}
	if cfg.Typography.FontSize != 0 {
		lib.FontSize = cfg.Typography.FontSize
	}
	if cfg.Typography.LineSpacing != 0 {
		lib.LineSpacing = cfg.Typography.LineSpacing
	}

	if cfg.Page.Margins.Top != 0 {
		lib.Margins.Top = cfg.Page.Margins.Top
	}
	if cfg.Page.Margins.Right != 0 {
		lib.Margins.Right = cfg.Page.Margins.Right
	}
	if cfg.Page.Margins.Bottom != 0 {
		lib.Margins.Bottom = cfg.Page.Margins.Bottom
	}
	if cfg.Page.Margins.Left != 0 {
		lib.Margins.Left = cfg.Page.Margins.Left
	}

	for level, hex := range map[int]string{1: cfg.Headings.H1, 2: cfg.Headings.H2, 3: cfg.Headings.H3} {
		if hex == "" {
			continue
		}
		color, err := md2docx.ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("heading %d color: %w", level, err)
		}
		lib.HeadingColors[level] = color
	}

	if cfg.Footer.Odd != "" {
		lib.Footer.Odd = cfg.Footer.Odd
	}
	if cfg.Footer.Even != "" {
		lib.Footer.Even = cfg.Footer.Even
	}

	return lib, nil
}

// buildOptions translates CLI flags into converter options.
func buildOptions(timeout string) ([]md2docx.Option, error) {
	if timeout == "" {
		return nil, nil
	}
	d, err := time.ParseDuration(timeout)
	if err != nil || d <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, timeout)
	}
	return []md2docx.Option{md2docx.WithTimeout(d)}, nil
}

// resolveInputPath returns the markdown file to convert. A bare filename
// resolves against the configured default input directory.
func resolveInputPath(positional []string, cfg *config.Config) (string, error) {
	if len(positional) == 0 {
		return "", ErrNoInput
	}
	path := positional[0]
	if cfg.Input.DefaultDir != "" && !fileutil.IsFilePath(path) {
		return filepath.Join(cfg.Input.DefaultDir, path), nil
	}
	return path, nil
}

// validateInputExtension checks for a markdown file extension.
func validateInputExtension(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidExtension, path)
}

// resolveOutputPath picks the output file: the explicit -o flag, then
// the configured output directory, then the input path with a .docx
// extension.
func resolveOutputPath(output, inputPath string, cfg *config.Config) string {
	if output != "" {
		return output
	}
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".docx"
	if cfg.Output.DefaultDir != "" {
		return filepath.Join(cfg.Output.DefaultDir, base)
	}
	return filepath.Join(filepath.Dir(inputPath), base)
}

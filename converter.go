package md2docx

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/fileutil"
)

// defaultTimeout bounds a single pandoc invocation plus post-processing.
const defaultTimeout = 2 * time.Minute

// Input contains the parameters for a single conversion.
type Input struct {
	Markdown   string // markdown content (required)
	OutputPath string // destination .docx path (required)
	SourceDir  string // directory holding the img/ folder (optional)
}

// Result describes a completed conversion.
type Result struct {
	Title      string // title extracted from the first H1
	OutputPath string
	Images     int // image references processed
}

// docxGenerator produces the intermediate document from a markdown file.
type docxGenerator interface {
	Generate(ctx context.Context, inputPath, outputPath string, meta DocumentMeta) error
}

// postProcessor applies styling to a generated document in place.
type postProcessor interface {
	Process(path, title string, refs []ImageRef, sourceDir string) error
}

// Compile-time interface implementation checks.
var (
	_ docxGenerator = (*PandocGenerator)(nil)
	_ postProcessor = (*gooxmlProcessor)(nil)
	_ CommandRunner = (*ExecRunner)(nil)
)

// Option configures a Converter.
type Option func(*Converter)

// WithTimeout sets the per-conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2docx: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.timeout = d
	}
}

// WithRunner injects a custom command runner, bypassing the PATH lookup.
// Intended for tests.
func WithRunner(r CommandRunner) Option {
	return func(c *Converter) {
		c.generator = &PandocGenerator{Runner: r}
	}
}

// Converter orchestrates the markdown-to-DOCX pipeline: scan, strip
// images, invoke pandoc, post-process the document object model.
type Converter struct {
	config    *Config
	timeout   time.Duration
	generator docxGenerator
	post      postProcessor
}

// NewConverter creates a Converter for the given configuration.
// A nil config means DefaultConfig(). Returns a validation error for
// out-of-range settings and ErrPandocNotFound when the converter binary
// is absent.
func NewConverter(cfg *Config, opts ...Option) (*Converter, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Converter{
		config:  cfg,
		timeout: defaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create the pandoc generator if not injected (e.g., by tests).
	if c.generator == nil {
		gen, err := NewPandocGenerator()
		if err != nil {
			return nil, err
		}
		c.generator = gen
	}

	if c.post == nil {
		c.post = &gooxmlProcessor{inner: &docx.PostProcessor{Settings: toSettings(cfg)}}
	}

	return c, nil
}

// Convert runs the full pipeline and returns the conversion result.
// The context is used for cancellation; the converter timeout applies
// on top of it.
func (c *Converter) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	title := ExtractTitle(input.Markdown)
	refs := ExtractImageRefs(input.Markdown)
	stripped := StripImageRefs(input.Markdown)

	mdPath, cleanup, err := fileutil.WriteTempFile(stripped, "md")
	if err != nil {
		return nil, fmt.Errorf("writing temp markdown: %w", err)
	}
	defer cleanup()

	meta := DocumentMeta{
		Title:  title,
		Author: c.config.Author,
		Date:   c.config.Date,
		TOC:    c.config.TOC,
	}
	if err := c.generator.Generate(ctx, mdPath, input.OutputPath, meta); err != nil {
		return nil, fmt.Errorf("generating document: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if err := c.post.Process(input.OutputPath, title, refs, input.SourceDir); err != nil {
		return nil, fmt.Errorf("post-processing document: %w", err)
	}

	return &Result{
		Title:      title,
		OutputPath: input.OutputPath,
		Images:     len(refs),
	}, nil
}

// validateInput checks that required fields are present and well-formed.
func validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if input.OutputPath == "" {
		return ErrEmptyOutputPath
	}
	if !strings.HasSuffix(strings.ToLower(input.OutputPath), ".docx") {
		return fmt.Errorf("%w: %q", ErrInvalidOutputExt, input.OutputPath)
	}
	return nil
}

// gooxmlProcessor adapts the internal post-processor to the public types.
type gooxmlProcessor struct {
	inner *docx.PostProcessor
}

func (g *gooxmlProcessor) Process(path, title string, refs []ImageRef, sourceDir string) error {
	images := make([]docx.ImageRef, len(refs))
	for i, r := range refs {
		images[i] = docx.ImageRef{Alt: r.Alt, Path: r.Path}
	}
	return g.inner.Process(path, title, images, sourceDir)
}

// toSettings converts the public Config to internal docx.Settings.
func toSettings(cfg *Config) docx.Settings {
	colors := make(map[int]string, len(cfg.HeadingColors))
	for level, c := range cfg.HeadingColors {
		colors[level] = c.Hex()
	}
	return docx.Settings{
		PaperSize:     strings.ToLower(cfg.PaperSize),
		FontName:      cfg.FontName,
		FontSize:      cfg.FontSize,
		LineSpacing:   cfg.LineSpacing,
		MarginTopCm:   cfg.Margins.Top,
		MarginRightCm: cfg.Margins.Right,
		MarginBotCm:   cfg.Margins.Bottom,
		MarginLeftCm:  cfg.Margins.Left,
		HeadingColors: colors,
		FooterOdd:     cfg.Footer.Odd,
		FooterEven:    cfg.Footer.Even,
		Language:      cfg.Language,
	}
}

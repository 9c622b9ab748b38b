package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds document metadata flags.
type documentFlags struct {
	style     string
	paperSize string
	author    string
	date      string
	language  string
	noTOC     bool
}

// typographyFlags holds base typography flags.
type typographyFlags struct {
	fontName    string
	fontSize    int
	lineSpacing float64
}

// pageFlags holds page geometry flags.
type pageFlags struct {
	margin       float64 // uniform margin in cm, 0 = keep config
	marginTop    float64
	marginRight  float64
	marginBottom float64
	marginLeft   float64
}

// headingFlags holds heading color flags as hex strings.
type headingFlags struct {
	h1 string
	h2 string
	h3 string
}

// footerFlags holds footer text flags.
type footerFlags struct {
	odd  string
	even string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	timeout    string
	document   documentFlags
	typography typographyFlags
	page       pageFlags
	headings   headingFlags
	footer     footerFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show conversion details")
}

// addDocumentFlags adds document metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.style, "style", "", "style template: report, note, letter, memo")
	fs.StringVarP(&f.paperSize, "paper-size", "p", "", "paper size: letter, legal, a4")
	fs.StringVarP(&f.author, "author", "a", "", "document author")
	fs.StringVarP(&f.date, "date", "d", "", "document date (\"auto\" = today)")
	fs.StringVarP(&f.language, "language", "l", "", "document language, e.g. en-US")
	fs.BoolVar(&f.noTOC, "no-toc", false, "disable table of contents")
}

// addTypographyFlags adds typography flags to a FlagSet.
func addTypographyFlags(fs *flag.FlagSet, f *typographyFlags) {
	fs.StringVar(&f.fontName, "font", "", "base font family")
	fs.IntVar(&f.fontSize, "font-size", 0, "base font size in points (1-96)")
	fs.Float64Var(&f.lineSpacing, "line-spacing", 0, "line spacing multiplier (0-5)")
}

// addPageFlags adds page geometry flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.Float64Var(&f.margin, "margin", 0, "uniform page margin in cm (0-10)")
	fs.Float64Var(&f.marginTop, "margin-top", 0, "top margin in cm")
	fs.Float64Var(&f.marginRight, "margin-right", 0, "right margin in cm")
	fs.Float64Var(&f.marginBottom, "margin-bottom", 0, "bottom margin in cm")
	fs.Float64Var(&f.marginLeft, "margin-left", 0, "left margin in cm")
}

// addHeadingFlags adds heading color flags to a FlagSet.
func addHeadingFlags(fs *flag.FlagSet, f *headingFlags) {
	fs.StringVar(&f.h1, "h1-color", "", "heading 1 color (hex RRGGBB)")
	fs.StringVar(&f.h2, "h2-color", "", "heading 2 color (hex RRGGBB)")
	fs.StringVar(&f.h3, "h3-color", "", "heading 3 color (hex RRGGBB)")
}

// addFooterFlags adds footer flags to a FlagSet.
func addFooterFlags(fs *flag.FlagSet, f *footerFlags) {
	fs.StringVar(&f.odd, "footer-odd", "", "footer text for odd pages")
	fs.StringVar(&f.even, "footer-even", "", "footer text for even pages")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output .docx file path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "conversion timeout (e.g., 30s, 2m)")

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addTypographyFlags(fs, &f.typography)
	addPageFlags(fs, &f.page)
	addHeadingFlags(fs, &f.headings)
	addFooterFlags(fs, &f.footer)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

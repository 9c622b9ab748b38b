package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert a markdown file to DOCX")
	fmt.Fprintln(w, "  doctor     Check pandoc and system requirements")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2docx help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx convert <input.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a markdown file to a styled Word document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file (.md or .markdown)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .docx file path")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Conversion timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --style <s>           Style template: report, note, letter, memo")
	fmt.Fprintln(w, "  -p, --paper-size <s>      Paper size: letter, legal, a4")
	fmt.Fprintln(w, "  -a, --author <s>          Document author")
	fmt.Fprintln(w, "  -d, --date <s>            Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "  -l, --language <s>        Document language, e.g. en-US")
	fmt.Fprintln(w, "      --no-toc              Disable table of contents")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Typography:")
	fmt.Fprintln(w, "      --font <s>            Base font family")
	fmt.Fprintln(w, "      --font-size <n>       Base font size in points (1-96)")
	fmt.Fprintln(w, "      --line-spacing <f>    Line spacing multiplier (0-5)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --margin <f>          Uniform page margin in cm (0-10)")
	fmt.Fprintln(w, "      --margin-top <f>      Top margin in cm")
	fmt.Fprintln(w, "      --margin-right <f>    Right margin in cm")
	fmt.Fprintln(w, "      --margin-bottom <f>   Bottom margin in cm")
	fmt.Fprintln(w, "      --margin-left <f>     Left margin in cm")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Headings:")
	fmt.Fprintln(w, "      --h1-color <hex>      Heading 1 color (RRGGBB)")
	fmt.Fprintln(w, "      --h2-color <hex>      Heading 2 color (RRGGBB)")
	fmt.Fprintln(w, "      --h3-color <hex>      Heading 3 color (RRGGBB)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Footer:")
	fmt.Fprintln(w, "      --footer-odd <s>      Footer text for odd pages")
	fmt.Fprintln(w, "      --footer-even <s>     Footer text for even pages")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show conversion details")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(deps.Stdout)
	case "doctor":
		fmt.Fprintln(deps.Stdout, "Usage: md2docx doctor [--json]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Check pandoc and system requirements.")
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: md2docx version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: md2docx help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}

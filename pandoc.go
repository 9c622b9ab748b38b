package md2docx

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// pandocBinary is the converter executable looked up on PATH.
const pandocBinary = "pandoc"

// headingShiftFilter demotes every heading by one level so the Markdown
// H1 maps to the Word Title paragraph and H2 to Heading 1.
const headingShiftFilter = `function Header(el)
  if el.level > 1 then
    el.level = el.level - 1
  end
  return el
end
`

// DocumentMeta carries the pandoc metadata for a single conversion.
type DocumentMeta struct {
	Title  string
	Author string
	Date   string
	TOC    bool
}

// CommandRunner abstracts command execution to enable testing without
// real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// PandocGenerator produces the intermediate DOCX by invoking the pandoc CLI.
type PandocGenerator struct {
	Runner CommandRunner
}

// NewPandocGenerator creates a PandocGenerator with a real command runner.
// Returns ErrPandocNotFound if the binary is absent from PATH.
func NewPandocGenerator() (*PandocGenerator, error) {
	if _, err := exec.LookPath(pandocBinary); err != nil {
		return nil, fmt.Errorf("%w: install it from https://pandoc.org/installing.html", ErrPandocNotFound)
	}
	return &PandocGenerator{Runner: &ExecRunner{}}, nil
}

// Generate converts the markdown file at inputPath to a DOCX at outputPath.
// A temporary Lua filter applies the heading-level shift for the duration
// of the run.
func (g *PandocGenerator) Generate(ctx context.Context, inputPath, outputPath string, meta DocumentMeta) error {
	luaPath, cleanup, err := fileutil.WriteTempFile(headingShiftFilter, "lua")
	if err != nil {
		return fmt.Errorf("writing lua filter: %w", err)
	}
	defer cleanup()

	args := buildPandocArgs(inputPath, outputPath, luaPath, meta)
	_, stderr, err := g.Runner.Run(ctx, pandocBinary, args...)
	if err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return fmt.Errorf("%w: %s: %v", ErrPandocFailed, msg, err)
		}
		return fmt.Errorf("%w: %v", ErrPandocFailed, err)
	}
	return nil
}

// buildPandocArgs assembles the pandoc command line. --wrap=none and
// --columns=999 keep long table rows on a single line so the DOCX writer
// does not split cells.
func buildPandocArgs(inputPath, outputPath, luaPath string, meta DocumentMeta) []string {
	args := []string{
		inputPath,
		"-o", outputPath,
		"-f", "markdown",
		"-t", "docx",
		"--wrap=none",
		"--columns=999",
		"--lua-filter=" + luaPath,
		"-M", "title=" + meta.Title,
		"-M", "author=" + meta.Author,
		"-M", "date=" + meta.Date,
	}
	if meta.TOC {
		args = append(args, "--toc", "--number-sections")
	}
	return args
}

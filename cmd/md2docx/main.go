package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args[1:], DefaultDeps()))
}

// run dispatches to the requested command and returns an exit code.
// A bare input path is treated as an implicit convert.
func run(args []string, deps *Dependencies) int {
	if len(args) == 0 {
		printUsage(deps.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "convert":
		return convertCmd(args[1:], deps)
	case "doctor":
		return runDoctorCmd(args[1:], deps)
	case "version", "--version":
		fmt.Fprintf(deps.Stdout, "md2docx %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(args[1:], deps)
		return ExitSuccess
	default:
		return convertCmd(args, deps)
	}
}

// convertCmd wraps runConvert with error printing and exit code mapping.
func convertCmd(args []string, deps *Dependencies) int {
	if err := runConvert(args, deps); err != nil {
		fmt.Fprintln(deps.Stderr, "Error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

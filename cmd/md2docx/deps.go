package main

import (
	"io"
	"os"
	"os/exec"
	"time"
)

// Dependencies holds the CLI's injectable collaborators. The clock
// feeds "auto" date resolution and the verbose timing output; LookPath
// lets doctor tests simulate a missing pandoc binary.
type Dependencies struct {
	Now      func() time.Time
	Stdout   io.Writer
	Stderr   io.Writer
	LookPath func(file string) (string, error)
}

// DefaultDeps returns production dependencies.
func DefaultDeps() *Dependencies {
	return &Dependencies{
		Now:      time.Now,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		LookPath: exec.LookPath,
	}
}

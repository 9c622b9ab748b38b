package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPrintDoctorResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *doctorResult
		wants  []string
	}{
		{
			name: "ready",
			result: &doctorResult{
				Status: "ready",
				Pandoc: pandocInfo{Found: true, Path: "/usr/bin/pandoc", Version: "pandoc 3.1"},
				System: systemInfo{TempWritable: true},
			},
			wants: []string{"[OK] Found at /usr/bin/pandoc", "pandoc 3.1", "Ready to convert"},
		},
		{
			name: "pandoc missing",
			result: &doctorResult{
				Status: "errors",
				Errors: []string{"pandoc not found on PATH"},
				System: systemInfo{TempWritable: true},
			},
			wants: []string{"[ERROR] Not found", "Not ready"},
		},
		{
			name: "with warnings",
			result: &doctorResult{
				Status:   "warnings",
				Pandoc:   pandocInfo{Found: true, Path: "/usr/bin/pandoc"},
				System:   systemInfo{TempWritable: true},
				Warnings: []string{"Could not get pandoc version"},
			},
			wants: []string{"[WARN]", "Ready with warnings"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			printDoctorResult(&buf, tt.result)
			out := buf.String()
			for _, want := range tt.wants {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRunDoctorCmd_JSON(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := bufferedDeps()
	runDoctorCmd([]string{"--json"}, deps)

	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("doctor --json emitted invalid JSON: %v\n%s", err, stdout.String())
	}
	if result.Status == "" {
		t.Error("doctor result has no status")
	}
}

func TestRunDoctorCmd_PandocMissing(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := bufferedDeps()
	deps.LookPath = func(string) (string, error) {
		return "", errors.New("executable file not found in $PATH")
	}

	if code := runDoctorCmd(nil, deps); code != ExitGeneral {
		t.Errorf("runDoctorCmd() = %d, want ExitGeneral", code)
	}
	out := stdout.String()
	if !strings.Contains(out, "[ERROR] Not found") || !strings.Contains(out, "Not ready") {
		t.Errorf("output missing pandoc error:\n%s", out)
	}
}

func TestCheckSystem(t *testing.T) {
	t.Parallel()

	result := &doctorResult{}
	checkSystem(result)
	if !result.System.TempWritable {
		t.Error("temp directory reported not writable in test environment")
	}
}

package yamlutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var s sample
	if err := UnmarshalStrict([]byte("name: a\ncount: 2\n"), &s); err != nil {
		t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
	}
	if s.Name != "a" || s.Count != 2 {
		t.Errorf("got %+v", s)
	}
}

func TestUnmarshalStrict_UnknownField(t *testing.T) {
	t.Parallel()

	var s sample
	err := UnmarshalStrict([]byte("name: a\nbogus: 1\n"), &s)
	if err == nil {
		t.Fatal("UnmarshalStrict() accepted unknown field")
	}
}

func TestUnmarshalStrict_InputValidation(t *testing.T) {
	t.Parallel()

	var s sample

	if err := UnmarshalStrict(nil, &s); !errors.Is(err, ErrNilData) {
		t.Errorf("nil data: got %v, want ErrNilData", err)
	}
	if err := UnmarshalStrict([]byte("name: a"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("nil destination: got %v, want ErrNilDestination", err)
	}

	big := bytes.Repeat([]byte("a"), MaxInputSize+1)
	if err := UnmarshalStrict(big, &s); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("oversized input: got %v, want ErrInputTooLarge", err)
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := Marshal(sample{Name: "x", Count: 3})
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "name: x") {
		t.Errorf("Marshal() = %q", out)
	}
}

package md2docx

import (
	"reflect"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestExtractTitle - Title Extraction
// ---------------------------------------------------------------------------

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "simple h1",
			markdown: "# Quarterly Report\n\nBody text.",
			want:     "Quarterly Report",
		},
		{
			name:     "h1 after body text",
			markdown: "Intro paragraph.\n\n# Late Title\n",
			want:     "Late Title",
		},
		{
			name:     "first of several h1",
			markdown: "# First\n\n# Second\n",
			want:     "First",
		},
		{
			name:     "setext heading",
			markdown: "Setext Title\n============\n\nBody.",
			want:     "Setext Title",
		},
		{
			name:     "hash inside code fence is ignored",
			markdown: "```\n# not a title\n```\n\n# Real Title\n",
			want:     "Real Title",
		},
		{
			name:     "only h2 headings",
			markdown: "## Section\n\nBody.",
			want:     DefaultTitle,
		},
		{
			name:     "no headings at all",
			markdown: "Just a paragraph.",
			want:     DefaultTitle,
		},
		{
			name:     "title with trailing spaces",
			markdown: "# Spaced Out   \n",
			want:     "Spaced Out",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExtractTitle(tt.markdown); got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExtractImageRefs - Image Reference Extraction
// ---------------------------------------------------------------------------

func TestExtractImageRefs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     []ImageRef
	}{
		{
			name:     "no images",
			markdown: "# Title\n\nNo pictures here.",
			want:     []ImageRef{},
		},
		{
			name:     "single image with img prefix",
			markdown: "![Diagram](img/diagram.png)",
			want:     []ImageRef{{Alt: "Diagram", Path: "diagram.png"}},
		},
		{
			name:     "single image without prefix",
			markdown: "![Photo](photo.jpg)",
			want:     []ImageRef{{Alt: "Photo", Path: "photo.jpg"}},
		},
		{
			name:     "path with surrounding whitespace",
			markdown: "![x]( img/chart.png )",
			want:     []ImageRef{{Alt: "x", Path: "chart.png"}},
		},
		{
			name:     "empty alt text",
			markdown: "![](img/logo.gif)",
			want:     []ImageRef{{Alt: "", Path: "logo.gif"}},
		},
		{
			name:     "multiple images keep document order",
			markdown: "![a](one.png)\n\ntext\n\n![b](img/two.jpg)",
			want: []ImageRef{
				{Alt: "a", Path: "one.png"},
				{Alt: "b", Path: "two.jpg"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractImageRefs(tt.markdown)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractImageRefs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestStripImageRefs - Placeholder Substitution
// ---------------------------------------------------------------------------

func TestStripImageRefs(t *testing.T) {
	t.Parallel()

	markdown := "# Title\n\n![a](img/a.png)\n\ntext\n\n![b](b.jpg)"
	got := StripImageRefs(markdown)

	if strings.Contains(got, "![") {
		t.Errorf("StripImageRefs() left image syntax in output: %q", got)
	}
	if n := strings.Count(got, ImagePlaceholder); n != 2 {
		t.Errorf("StripImageRefs() produced %d placeholders, want 2", n)
	}
	if !strings.Contains(got, "# Title") {
		t.Error("StripImageRefs() dropped non-image content")
	}
}

func TestStripImageRefs_NoImages(t *testing.T) {
	t.Parallel()

	markdown := "plain text"
	if got := StripImageRefs(markdown); got != markdown {
		t.Errorf("StripImageRefs() = %q, want unchanged input", got)
	}
}

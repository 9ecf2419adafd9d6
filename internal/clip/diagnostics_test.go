package clip

import (
	"strings"
	"testing"

	"github.com/pders01/folderclip/internal/models"
)

var sampleDiags = []Diagnostic{
	{Message: "undefined: foo", StartLine: 3, EndLine: 3, Severity: SeverityError, SourceLine: "foo()"},
	{Message: "unused variable", StartLine: 10, EndLine: 10, Severity: SeverityWarning, SourceLine: "x := 1"},
	{Message: "consider renaming", StartLine: 4, EndLine: 4, Severity: SeverityInfo, SourceLine: "var y int"},
	{Message: "deprecated call", StartLine: 20, EndLine: 22, Severity: SeverityWarning, SourceLine: "old()"},
}

func TestFormatListingFiltersSeverity(t *testing.T) {
	listing := FormatListing(sampleDiags, nil)

	lines := strings.Split(listing, "\n")
	if len(lines) != 3 {
		t.Fatalf("listing has %d lines, want 3 (info excluded):\n%s", len(lines), listing)
	}
	if lines[0] != "1. undefined: foo | 3 | foo()" {
		t.Errorf("line 1 = %q", lines[0])
	}
	if lines[1] != "2. unused variable | 10 | x := 1" {
		t.Errorf("line 2 = %q", lines[1])
	}
	if lines[2] != "3. deprecated call | 20 | old()" {
		t.Errorf("line 3 = %q", lines[2])
	}
}

func TestFormatListingSelectionIntersection(t *testing.T) {
	listing := FormatListing(sampleDiags, &LineRange{Start: 1, End: 5})

	if strings.Contains(listing, "unused variable") {
		t.Error("diagnostic outside the selection should be excluded")
	}
	if !strings.HasPrefix(listing, "1. undefined: foo") {
		t.Errorf("numbering should restart at 1, got %q", listing)
	}
}

func TestFormatListingRangeOverlap(t *testing.T) {
	// The diagnostic spans 20-22; a selection touching 22 intersects.
	listing := FormatListing(sampleDiags, &LineRange{Start: 22, End: 30})
	if !strings.Contains(listing, "deprecated call") {
		t.Errorf("overlapping range should be included, got %q", listing)
	}
}

func TestFormatListingEmpty(t *testing.T) {
	if got := FormatListing(nil, nil); got != "" {
		t.Errorf("empty diagnostics should produce an empty listing, got %q", got)
	}
}

func TestCaptureWithDiagnosticsAppendsListing(t *testing.T) {
	cb := &fakeClipboard{}
	e := NewEngine(cb)

	err := e.CaptureWithDiagnostics(frag("a.go", "CODE", models.FormatNormal), sampleDiags, nil)
	if err != nil {
		t.Fatalf("CaptureWithDiagnostics failed: %v", err)
	}

	fragments := e.Fragments()
	if len(fragments) != 1 {
		t.Fatalf("fragments = %d, want 1", len(fragments))
	}
	if fragments[0].Format != models.FormatError {
		t.Errorf("Format = %q, want %q", fragments[0].Format, models.FormatError)
	}
	if !strings.HasPrefix(fragments[0].Content, "CODE\n\n1. ") {
		t.Errorf("Content should append the listing after the code:\n%s", fragments[0].Content)
	}
}

func TestCaptureWithDiagnosticsNumberingIsPerCapture(t *testing.T) {
	e := NewEngine(&fakeClipboard{})

	first := sampleDiags[:1]
	second := sampleDiags[1:2]
	if err := e.CaptureWithDiagnostics(frag("a.go", "A", models.FormatNormal), first, nil); err != nil {
		t.Fatalf("capture failed: %v", err)
	}
	if err := e.CaptureWithDiagnostics(frag("b.go", "B", models.FormatNormal), second, nil); err != nil {
		t.Fatalf("capture failed: %v", err)
	}

	fragments := e.Fragments()
	if !strings.Contains(fragments[1].Content, "1. unused variable") {
		t.Errorf("numbering must restart per capture, got:\n%s", fragments[1].Content)
	}
}

func TestCaptureWithDiagnosticsCoexistsWithNormal(t *testing.T) {
	e := NewEngine(&fakeClipboard{})

	if err := e.Capture(frag("a.go", "plain", models.FormatNormal)); err != nil {
		t.Fatalf("capture failed: %v", err)
	}
	if err := e.CaptureWithDiagnostics(frag("a.go", "annotated", models.FormatNormal), sampleDiags, nil); err != nil {
		t.Fatalf("capture failed: %v", err)
	}

	if got := len(e.Fragments()); got != 2 {
		t.Errorf("fragments = %d, want 2 (normal and error coexist)", got)
	}
}

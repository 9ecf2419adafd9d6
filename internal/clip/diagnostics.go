package clip

import (
	"fmt"
	"strings"

	"github.com/pders01/folderclip/internal/models"
)

// Severity mirrors the host ordinal: 0=error, 1=warning, 2=info, 3=hint.
type Severity int

const (
	SeverityError   Severity = 0
	SeverityWarning Severity = 1
	SeverityInfo    Severity = 2
	SeverityHint    Severity = 3
)

// Diagnostic is one reported problem for a document. Lines are 1-based.
type Diagnostic struct {
	Message    string   `json:"message"`
	StartLine  int      `json:"startLine"`
	EndLine    int      `json:"endLine"`
	Severity   Severity `json:"severity"`
	SourceLine string   `json:"sourceLine"`
}

// LineRange is a 1-based inclusive selection of lines.
type LineRange struct {
	Start int
	End   int
}

func (r LineRange) intersects(startLine, endLine int) bool {
	return startLine <= r.End && endLine >= r.Start
}

// CaptureWithDiagnostics captures frag with an appended diagnostics
// listing. Only error- and warning-severity entries are listed; with a
// selection, only entries whose range intersects it. Numbering restarts at
// 1 for every capture and is local to the fragment. The resulting fragment
// always carries the error format.
func (e *Engine) CaptureWithDiagnostics(frag models.Fragment, diags []Diagnostic, selection *LineRange) error {
	listing := FormatListing(diags, selection)
	if listing != "" {
		frag.Content = frag.Content + "\n\n" + listing
	}
	frag.Format = models.FormatError

	e.mu.Lock()
	defer e.mu.Unlock()
	e.mergeLocked(frag)
	return e.writePayloadLocked()
}

// FormatListing renders the numbered diagnostics listing:
// "{index}. {message} | {line} | {sourceLineText}" per entry.
func FormatListing(diags []Diagnostic, selection *LineRange) string {
	var lines []string
	for _, d := range diags {
		if d.Severity > SeverityWarning {
			continue
		}
		if selection != nil && !selection.intersects(d.StartLine, d.EndLine) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%d. %s | %d | %s", len(lines)+1, d.Message, d.StartLine, d.SourceLine))
	}
	return strings.Join(lines, "\n")
}

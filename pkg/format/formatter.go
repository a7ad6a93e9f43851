package format

import (
	"errors"
	"fmt"
	"io"

	"github.com/dkoosis/seam/pkg/lint"
)

// ErrNoFormatter reports that a resolved format has no registered
// implementation. Seeing it means a Format constant was added without a
// matching case in New.
var ErrNoFormatter = errors.New("no formatter registered")

// Summary aggregates the outcome of a lint run for final reporting.
type Summary struct {
	Analyzed int
	Skipped  int
	Errors   int
	Warnings int
}

// Formatter renders lint results as they are produced. FileViolations is
// called once per analyzed file (possibly with an empty slice), SkippedFile
// once per unreadable file, and Summary exactly once at the end.
type Formatter interface {
	FileViolations(path string, violations []lint.Violation) error
	SkippedFile(path string, reason error) error
	Summary(s Summary) error
}

// New constructs the formatter registered for f, writing to w.
//
// The mapping is a static dispatch table fixed at compile time; every
// value in All has a case here.
func New(f Format, w io.Writer, cs ColorSettings) (Formatter, error) {
	switch f {
	case FormatXcode:
		return newXcode(w, themeFor(cs)), nil
	case FormatJSON:
		return newJSON(w), nil
	case FormatCodeClimate:
		return newCodeClimate(w), nil
	default:
		return nil, fmt.Errorf("%w for format %q", ErrNoFormatter, string(f))
	}
}

package format

import (
	"fmt"
	"io"

	"github.com/dkoosis/seam/pkg/lint"
)

// Xcode renders diagnostics in the file:line:col form that Xcode, and
// most editors, parse into inline markers.
type Xcode struct {
	w     io.Writer
	theme Theme
}

func newXcode(w io.Writer, theme Theme) *Xcode {
	return &Xcode{w: w, theme: theme}
}

// FileViolations writes one diagnostic line per violation.
func (x *Xcode) FileViolations(_ string, violations []lint.Violation) error {
	for _, v := range violations {
		sevStyle := x.theme.Warning
		if v.Severity == lint.SeverityError {
			sevStyle = x.theme.Error
		}
		_, err := fmt.Fprintf(x.w, "%s: %s: [%s] %s\n",
			x.theme.Path.Render(v.Location()),
			sevStyle.Render(v.Severity.String()),
			x.theme.Rule.Render(v.Rule),
			v.Message,
		)
		if err != nil {
			return fmt.Errorf("write diagnostic: %w", err)
		}
	}
	return nil
}

// SkippedFile notes a file that could not be read.
func (x *Xcode) SkippedFile(path string, reason error) error {
	_, err := fmt.Fprintf(x.w, "%s: %s: %v\n",
		x.theme.Path.Render(path),
		x.theme.Warning.Render("skipped"),
		reason,
	)
	if err != nil {
		return fmt.Errorf("write skip notice: %w", err)
	}
	return nil
}

// Summary writes the run totals in prose.
func (x *Xcode) Summary(s Summary) error {
	line := fmt.Sprintf("Analyzed %s, skipped %s, and detected %s (%d %s, %d %s).",
		plural(s.Analyzed, "file"),
		plural(s.Skipped, "file"),
		plural(s.Errors+s.Warnings, "violation"),
		s.Errors, pluralWord(s.Errors, "error"),
		s.Warnings, pluralWord(s.Warnings, "warning"),
	)
	if _, err := fmt.Fprintln(x.w, x.theme.Bold.Render(line)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

func plural(n int, noun string) string {
	return fmt.Sprintf("%d %s", n, pluralWord(n, noun))
}

func pluralWord(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

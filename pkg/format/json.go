package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dkoosis/seam/pkg/lint"
)

// JSON accumulates results and emits a single document when Summary is
// called, so consumers always receive well-formed JSON even for empty runs.
type JSON struct {
	w   io.Writer
	out jsonOutput
}

func newJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

type jsonOutput struct {
	Files   []jsonFile  `json:"files"`
	Skipped []jsonSkip  `json:"skipped"`
	Summary jsonSummary `json:"summary"`
}

type jsonFile struct {
	Path       string          `json:"path"`
	Violations []jsonViolation `json:"violations"`
}

type jsonViolation struct {
	Line     int    `json:"line"`
	Column   int    `json:"column,omitempty"`
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type jsonSkip struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

type jsonSummary struct {
	Analyzed   int `json:"analyzed"`
	Skipped    int `json:"skipped"`
	Violations int `json:"violations"`
	Errors     int `json:"errors"`
	Warnings   int `json:"warnings"`
}

// FileViolations buffers a file's results for the final document.
func (j *JSON) FileViolations(path string, violations []lint.Violation) error {
	file := jsonFile{Path: path, Violations: make([]jsonViolation, 0, len(violations))}
	for _, v := range violations {
		file.Violations = append(file.Violations, jsonViolation{
			Line:     v.Line,
			Column:   v.Column,
			Rule:     v.Rule,
			Severity: v.Severity.String(),
			Message:  v.Message,
		})
	}
	j.out.Files = append(j.out.Files, file)
	return nil
}

// SkippedFile buffers an unreadable file for the final document.
func (j *JSON) SkippedFile(path string, reason error) error {
	j.out.Skipped = append(j.out.Skipped, jsonSkip{Path: path, Reason: reason.Error()})
	return nil
}

// Summary completes the document and writes it out.
func (j *JSON) Summary(s Summary) error {
	if j.out.Files == nil {
		j.out.Files = []jsonFile{}
	}
	if j.out.Skipped == nil {
		j.out.Skipped = []jsonSkip{}
	}
	j.out.Summary = jsonSummary{
		Analyzed:   s.Analyzed,
		Skipped:    s.Skipped,
		Violations: s.Errors + s.Warnings,
		Errors:     s.Errors,
		Warnings:   s.Warnings,
	}

	data, err := json.MarshalIndent(j.out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal lint results: %w", err)
	}
	if _, err := fmt.Fprintln(j.w, string(data)); err != nil {
		return fmt.Errorf("write lint results: %w", err)
	}
	return nil
}

package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dkoosis/seam/pkg/lint"
)

// CodeClimate emits one Code Climate issue object per line, the shape
// consumed by CI engines that ingest the Code Climate spec.
type CodeClimate struct {
	w io.Writer
}

func newCodeClimate(w io.Writer) *CodeClimate {
	return &CodeClimate{w: w}
}

type ccIssue struct {
	Type        string     `json:"type"`
	CheckName   string     `json:"check_name"`
	Description string     `json:"description"`
	Severity    string     `json:"severity"`
	Location    ccLocation `json:"location"`
}

type ccLocation struct {
	Path  string  `json:"path"`
	Lines ccLines `json:"lines"`
}

type ccLines struct {
	Begin int `json:"begin"`
	End   int `json:"end"`
}

// ccSeverity maps lint severities onto the Code Climate scale.
func ccSeverity(s lint.Severity) string {
	if s == lint.SeverityError {
		return "major"
	}
	return "minor"
}

// FileViolations writes each violation as a standalone JSON object.
func (c *CodeClimate) FileViolations(path string, violations []lint.Violation) error {
	for _, v := range violations {
		issue := ccIssue{
			Type:        "issue",
			CheckName:   v.Rule,
			Description: v.Message,
			Severity:    ccSeverity(v.Severity),
			Location: ccLocation{
				Path:  path,
				Lines: ccLines{Begin: v.Line, End: v.Line},
			},
		}
		data, err := json.Marshal(issue)
		if err != nil {
			return fmt.Errorf("marshal issue: %w", err)
		}
		if _, err := fmt.Fprintln(c.w, string(data)); err != nil {
			return fmt.Errorf("write issue: %w", err)
		}
	}
	return nil
}

// SkippedFile is a no-op: the Code Climate spec has no skip notion.
func (c *CodeClimate) SkippedFile(string, error) error { return nil }

// Summary is a no-op: consumers aggregate issues themselves.
func (c *CodeClimate) Summary(Summary) error { return nil }

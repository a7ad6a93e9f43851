package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/seam/pkg/lint"
)

func sampleViolations() []lint.Violation {
	return []lint.Violation{
		{
			Path: "Source/main.swift", Line: 3, Column: 12,
			Rule: "trailing-whitespace", Severity: lint.SeverityWarning,
			Message: "line contains trailing whitespace",
		},
		{
			Path: "Source/main.swift", Line: 9,
			Rule: "max-file-length", Severity: lint.SeverityError,
			Message: "file exceeds 8 lines (found 9)",
		},
	}
}

func TestXcode_Output(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f, err := New(FormatXcode, &buf, ColorSettings{})
	require.NoError(t, err)

	require.NoError(t, f.FileViolations("Source/main.swift", sampleViolations()))
	require.NoError(t, f.Summary(Summary{Analyzed: 1, Errors: 1, Warnings: 1}))

	out := buf.String()
	assert.Contains(t, out, "Source/main.swift:3:12: warning: [trailing-whitespace] line contains trailing whitespace")
	assert.Contains(t, out, "Source/main.swift:9: error: [max-file-length] file exceeds 8 lines (found 9)")
	assert.Contains(t, out, "Analyzed 1 file, skipped 0 files, and detected 2 violations (1 error, 1 warning).")
}

func TestXcode_SkippedFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f, err := New(FormatXcode, &buf, ColorSettings{})
	require.NoError(t, err)

	require.NoError(t, f.SkippedFile("broken.swift", errors.New("permission denied")))
	assert.Contains(t, buf.String(), "broken.swift: skipped: permission denied")
}

func TestJSON_Output(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f, err := New(FormatJSON, &buf, ColorSettings{})
	require.NoError(t, err)

	require.NoError(t, f.FileViolations("Source/main.swift", sampleViolations()))
	require.NoError(t, f.SkippedFile("broken.swift", errors.New("permission denied")))
	require.NoError(t, f.Summary(Summary{Analyzed: 1, Skipped: 1, Errors: 1, Warnings: 1}))

	var doc struct {
		Files []struct {
			Path       string `json:"path"`
			Violations []struct {
				Line     int    `json:"line"`
				Rule     string `json:"rule"`
				Severity string `json:"severity"`
			} `json:"violations"`
		} `json:"files"`
		Skipped []struct {
			Path   string `json:"path"`
			Reason string `json:"reason"`
		} `json:"skipped"`
		Summary struct {
			Analyzed   int `json:"analyzed"`
			Skipped    int `json:"skipped"`
			Violations int `json:"violations"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.Files, 1)
	assert.Equal(t, "Source/main.swift", doc.Files[0].Path)
	require.Len(t, doc.Files[0].Violations, 2)
	assert.Equal(t, "warning", doc.Files[0].Violations[0].Severity)
	assert.Equal(t, "error", doc.Files[0].Violations[1].Severity)

	require.Len(t, doc.Skipped, 1)
	assert.Equal(t, "permission denied", doc.Skipped[0].Reason)

	assert.Equal(t, 1, doc.Summary.Analyzed)
	assert.Equal(t, 2, doc.Summary.Violations)
}

func TestJSON_EmptyRunStillValid(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f, err := New(FormatJSON, &buf, ColorSettings{})
	require.NoError(t, err)
	require.NoError(t, f.Summary(Summary{}))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.NotNil(t, doc["files"])
	assert.NotNil(t, doc["skipped"])
}

func TestCodeClimate_Output(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f, err := New(FormatCodeClimate, &buf, ColorSettings{})
	require.NoError(t, err)

	require.NoError(t, f.FileViolations("Source/main.swift", sampleViolations()))
	require.NoError(t, f.Summary(Summary{Analyzed: 1, Errors: 1, Warnings: 1}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "one issue object per line, no summary output")

	var issue struct {
		Type      string `json:"type"`
		CheckName string `json:"check_name"`
		Severity  string `json:"severity"`
		Location  struct {
			Path  string `json:"path"`
			Lines struct {
				Begin int `json:"begin"`
			} `json:"lines"`
		} `json:"location"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &issue))
	assert.Equal(t, "issue", issue.Type)
	assert.Equal(t, "trailing-whitespace", issue.CheckName)
	assert.Equal(t, "minor", issue.Severity)
	assert.Equal(t, "Source/main.swift", issue.Location.Path)
	assert.Equal(t, 3, issue.Location.Lines.Begin)

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &issue))
	assert.Equal(t, "major", issue.Severity)
}

func TestThemeFor(t *testing.T) {
	t.Parallel()

	// Disabled color always wins, inverted only applies when enabled.
	mono := themeFor(ColorSettings{Enabled: false, Inverted: true})
	assert.Equal(t, MonoTheme().Path.GetForeground(), mono.Path.GetForeground())

	def := themeFor(ColorSettings{Enabled: true})
	assert.Equal(t, DefaultTheme().Path.GetForeground(), def.Path.GetForeground())

	inv := themeFor(ColorSettings{Enabled: true, Inverted: true})
	assert.Equal(t, InvertedTheme().Path.GetForeground(), inv.Path.GetForeground())
}

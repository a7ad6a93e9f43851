package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/seam/pkg/lint"
)

// execute runs the seam command with args and returns stdout and the
// command error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSeverityValue(t *testing.T) {
	t.Parallel()

	var v severityValue
	assert.Equal(t, "warning", v.String())
	assert.Equal(t, "severity", v.Type())

	require.NoError(t, v.Set("error"))
	assert.Equal(t, "error", v.String())

	err := v.Set("fatal")
	var sevErr *lint.UnknownSeverityError
	require.ErrorAs(t, err, &sevErr)
}

func TestRun_CleanFilePasses(t *testing.T) {
	path := writeSource(t, "clean.swift", "import Foundation\n")

	out, err := execute(t, path, "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Summary struct {
			Analyzed   int `json:"analyzed"`
			Violations int `json:"violations"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 1, doc.Summary.Analyzed)
	assert.Zero(t, doc.Summary.Violations)
}

func TestRun_WarningsBelowThresholdDoNotFail(t *testing.T) {
	path := writeSource(t, "messy.swift", "let a = 1;\n")

	// Default threshold is error; the semicolon rule emits warnings.
	out, err := execute(t, path, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "trailing-semicolon")
}

func TestRun_WarningThresholdFails(t *testing.T) {
	path := writeSource(t, "messy.swift", "let a = 1;\n")

	_, err := execute(t, path, "--format", "json", "--max-severity", "warning")
	require.True(t, errors.Is(err, errViolations))
}

func TestRun_UnknownRuleIsUsageError(t *testing.T) {
	path := writeSource(t, "clean.swift", "import Foundation\n")

	_, err := execute(t, path, "--only", "no-such-rule")
	require.Error(t, err)
	assert.False(t, errors.Is(err, errViolations))
	assert.Contains(t, err.Error(), "no-such-rule")
}

func TestRun_ShowRules(t *testing.T) {
	out, err := execute(t, "--show-rules")
	require.NoError(t, err)
	assert.Contains(t, out, "trailing-whitespace")
	assert.Contains(t, out, "max-line-length")
}

func TestRun_ListFiles(t *testing.T) {
	path := writeSource(t, "main.swift", "import Foundation\n")

	out, err := execute(t, path, "--list-files")
	require.NoError(t, err)
	assert.Contains(t, out, path)
}

func TestRun_OnlyFilterNarrowsOutput(t *testing.T) {
	path := writeSource(t, "messy.swift", "let a = 1;  \n")

	out, err := execute(t, path, "--format", "json", "--only", "trailing-whitespace")
	require.NoError(t, err)
	assert.Contains(t, out, "trailing-whitespace")
	assert.NotContains(t, out, "trailing-semicolon")
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.swift")
	require.NoError(t, os.WriteFile(src, []byte("let a = 1;  \n"), 0o644))

	cfgPath := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("only:\n  - trailing-semicolon\n"), 0o644))

	out, err := execute(t, src, "--config", cfgPath, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "trailing-semicolon")
	assert.NotContains(t, out, "trailing-whitespace")
}

func TestRun_MissingExplicitConfigFails(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "gone.yml"))
	require.Error(t, err)
}

func TestRun_MissingPathFails(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "no-such-dir"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, errViolations))
}

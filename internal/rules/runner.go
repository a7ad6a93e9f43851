package rules

import (
	"fmt"
	"os"
	"strings"

	"github.com/dkoosis/seam/pkg/lint"
)

// Source is the line-oriented view of a file that checks operate on.
type Source struct {
	Path string

	// Lines holds the file's logical lines without terminators. A file
	// ending in a newline does not produce a trailing empty line.
	Lines []string

	// TrailingNewlines counts the newline characters at end of file.
	TrailingNewlines int
}

// ReadSource loads path into a Source. The file handle is held only for
// the duration of the read.
func ReadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}

	trailing := 0
	for i := len(data) - 1; i >= 0 && data[i] == '\n'; i-- {
		trailing++
	}

	text := strings.TrimRight(string(data), "\n")
	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}

	return &Source{
		Path:             path,
		Lines:            lines,
		TrailingNewlines: trailing,
	}, nil
}

// Analyze runs the enabled rules over src and returns the stamped,
// deterministically ordered violations.
func Analyze(src *Source, enabled []Rule, limits lint.Limits) []lint.Violation {
	var out []lint.Violation
	for _, rule := range enabled {
		for _, v := range rule.check(src, limits) {
			v.Path = src.Path
			v.Rule = rule.ID
			v.Severity = rule.Severity
			out = append(out, v)
		}
	}
	lint.SortViolations(out)
	return out
}

// AnalyzeFile reads path and applies the enabled rules to it.
func AnalyzeFile(path string, enabled []Rule, limits lint.Limits) ([]lint.Violation, error) {
	src, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	return Analyze(src, enabled, limits), nil
}

// Package lint defines the data vocabulary shared by rule checks,
// configuration resolution, and output formatters: violations, severities,
// and the numeric limits that parameterize length-based rules.
package lint

import (
	"fmt"
	"sort"
)

// Severity classifies a violation. Severities are ordered: Warning < Error.
type Severity int

const (
	// SeverityWarning marks style issues that do not fail the build by default.
	SeverityWarning Severity = iota

	// SeverityError marks issues that always fail the build.
	SeverityError
)

// severityNames is the closed set of accepted severity spellings.
var severityNames = map[string]Severity{
	"warning": SeverityWarning,
	"error":   SeverityError,
}

// String returns the canonical lowercase name of the severity.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// UnknownSeverityError reports a severity string outside the accepted set.
type UnknownSeverityError struct {
	Value string
}

func (e *UnknownSeverityError) Error() string {
	return fmt.Sprintf("unknown severity %q (expected one of: %s)", e.Value, severityList())
}

// ParseSeverity maps a severity string to its Severity value.
// Matching is exact: no case folding, no abbreviations.
func ParseSeverity(s string) (Severity, error) {
	sev, ok := severityNames[s]
	if !ok {
		return SeverityWarning, &UnknownSeverityError{Value: s}
	}
	return sev, nil
}

func severityList() string {
	names := make([]string, 0, len(severityNames))
	for name := range severityNames {
		names = append(names, name)
	}
	sort.Strings(names)
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

// Violation is a single finding in a source file.
type Violation struct {
	Path     string   `json:"path"`
	Line     int      `json:"line"`
	Column   int      `json:"column,omitempty"`
	Rule     string   `json:"rule"`
	Severity Severity `json:"-"`
	Message  string   `json:"message"`
}

// Location renders the file:line:column prefix used in diagnostics.
// Column 0 means "whole line" and is omitted.
func (v Violation) Location() string {
	if v.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", v.Path, v.Line, v.Column)
	}
	return fmt.Sprintf("%s:%d", v.Path, v.Line)
}

// Limits holds the construct-length thresholds consumed by length rules.
// A zero value disables the corresponding rule.
type Limits struct {
	LineLength int
	FileLength int
}

// DefaultLimits returns the built-in thresholds applied when neither the
// command line nor the configuration file overrides them.
func DefaultLimits() Limits {
	return Limits{
		LineLength: 110,
		FileLength: 0,
	}
}

// SortViolations orders violations by line, then column, then rule name,
// for deterministic output regardless of check execution order.
func SortViolations(violations []Violation) {
	sort.Slice(violations, func(i, j int) bool {
		a, b := violations[i], violations[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.Rule < b.Rule
	})
}

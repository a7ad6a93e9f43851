// Package rules defines the closed universe of lint rules and the runner
// that applies them to Swift source files.
//
// Rules are data: an identifier, a description, a default severity, and a
// check function over the lines of a file. The universe is fixed at build
// time; configuration can narrow which rules run, never extend them.
package rules

import (
	"sort"

	"github.com/dkoosis/seam/pkg/lint"
)

// CheckFunc inspects a source file and reports violations. Returned
// violations carry location and message; the runner stamps rule identity,
// severity, and path.
type CheckFunc func(src *Source, limits lint.Limits) []lint.Violation

// Rule is one entry in the rule universe.
type Rule struct {
	ID          string
	Description string
	Severity    lint.Severity

	check CheckFunc
}

// universe is the fixed set of known rules, kept sorted by ID.
var universe = []Rule{
	{
		ID:          "leading-whitespace",
		Description: "Source files should not begin with whitespace",
		Severity:    lint.SeverityWarning,
		check:       checkLeadingWhitespace,
	},
	{
		ID:          "max-file-length",
		Description: "Source files should not exceed the configured line count",
		Severity:    lint.SeverityWarning,
		check:       checkMaxFileLength,
	},
	{
		ID:          "max-line-length",
		Description: "Lines should not exceed the configured character count",
		Severity:    lint.SeverityWarning,
		check:       checkMaxLineLength,
	},
	{
		ID:          "multiple-blank-lines",
		Description: "Consecutive blank lines should be collapsed into one",
		Severity:    lint.SeverityWarning,
		check:       checkMultipleBlankLines,
	},
	{
		ID:          "terminating-newline",
		Description: "Source files should end with exactly one newline",
		Severity:    lint.SeverityWarning,
		check:       checkTerminatingNewline,
	},
	{
		ID:          "todo-syntax",
		Description: "TODO comments should follow the form // TODO: <description>",
		Severity:    lint.SeverityWarning,
		check:       checkTodoSyntax,
	},
	{
		ID:          "trailing-semicolon",
		Description: "Statements should not end with a semicolon",
		Severity:    lint.SeverityWarning,
		check:       checkTrailingSemicolon,
	},
	{
		ID:          "trailing-whitespace",
		Description: "Lines should not end with whitespace",
		Severity:    lint.SeverityWarning,
		check:       checkTrailingWhitespace,
	},
}

// All returns the rule universe sorted by ID. The slice is a copy; callers
// may filter it freely.
func All() []Rule {
	out := make([]Rule, len(universe))
	copy(out, universe)
	return out
}

// Names returns the sorted identifiers of every known rule.
func Names() []string {
	names := make([]string, len(universe))
	for i, r := range universe {
		names[i] = r.ID
	}
	sort.Strings(names)
	return names
}

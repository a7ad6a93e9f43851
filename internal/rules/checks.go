package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dkoosis/seam/pkg/lint"
)

func checkTrailingWhitespace(src *Source, _ lint.Limits) []lint.Violation {
	var out []lint.Violation
	for i, line := range src.Lines {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed != line {
			out = append(out, lint.Violation{
				Line:    i + 1,
				Column:  len([]rune(trimmed)) + 1,
				Message: "line contains trailing whitespace",
			})
		}
	}
	return out
}

func checkLeadingWhitespace(src *Source, _ lint.Limits) []lint.Violation {
	if len(src.Lines) == 0 {
		return nil
	}
	first := src.Lines[0]
	if first == "" || strings.IndexAny(first, " \t") == 0 {
		return []lint.Violation{{
			Line:    1,
			Column:  1,
			Message: "file begins with whitespace",
		}}
	}
	return nil
}

func checkTerminatingNewline(src *Source, _ lint.Limits) []lint.Violation {
	if len(src.Lines) == 0 {
		return nil
	}
	switch {
	case src.TrailingNewlines == 0:
		return []lint.Violation{{
			Line:    len(src.Lines),
			Message: "file does not end with a newline",
		}}
	case src.TrailingNewlines > 1:
		return []lint.Violation{{
			Line:    len(src.Lines) + 1,
			Message: fmt.Sprintf("file ends with %d blank lines", src.TrailingNewlines-1),
		}}
	}
	return nil
}

func checkMultipleBlankLines(src *Source, _ lint.Limits) []lint.Violation {
	var out []lint.Violation
	run := 0
	for i, line := range src.Lines {
		if strings.TrimSpace(line) == "" {
			run++
			if run == 2 {
				// One violation per run, reported at the second blank line.
				out = append(out, lint.Violation{
					Line:    i + 1,
					Message: "multiple consecutive blank lines",
				})
			}
			continue
		}
		run = 0
	}
	return out
}

func checkTrailingSemicolon(src *Source, _ lint.Limits) []lint.Violation {
	var out []lint.Violation
	for i, line := range src.Lines {
		trimmed := strings.TrimRight(line, " \t")
		if strings.HasSuffix(trimmed, ";") {
			out = append(out, lint.Violation{
				Line:    i + 1,
				Column:  len([]rune(trimmed)),
				Message: "statement ends with a semicolon",
			})
		}
	}
	return out
}

var (
	todoAny   = regexp.MustCompile(`(?i)\btodo\b`)
	todoValid = regexp.MustCompile(`// TODO: \S`)
)

func checkTodoSyntax(src *Source, _ lint.Limits) []lint.Violation {
	var out []lint.Violation
	for i, line := range src.Lines {
		loc := todoAny.FindStringIndex(line)
		if loc == nil {
			continue
		}
		if todoValid.MatchString(line) {
			continue
		}
		out = append(out, lint.Violation{
			Line:    i + 1,
			Column:  loc[0] + 1,
			Message: "TODO comments should follow the form // TODO: <description>",
		})
	}
	return out
}

func checkMaxLineLength(src *Source, limits lint.Limits) []lint.Violation {
	if limits.LineLength <= 0 {
		return nil
	}
	var out []lint.Violation
	for i, line := range src.Lines {
		width := len([]rune(line))
		if width > limits.LineLength {
			out = append(out, lint.Violation{
				Line:    i + 1,
				Column:  limits.LineLength + 1,
				Message: fmt.Sprintf("line exceeds %d characters (found %d)", limits.LineLength, width),
			})
		}
	}
	return out
}

func checkMaxFileLength(src *Source, limits lint.Limits) []lint.Violation {
	if limits.FileLength <= 0 {
		return nil
	}
	if n := len(src.Lines); n > limits.FileLength {
		return []lint.Violation{{
			Line:    limits.FileLength + 1,
			Message: fmt.Sprintf("file exceeds %d lines (found %d)", limits.FileLength, n),
		}}
	}
	return nil
}

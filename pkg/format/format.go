// Package format provides output formatters for lint results.
//
// The set of formats is closed: every Format value maps to exactly one
// Formatter implementation through a static dispatch table in New. There is
// no dynamic lookup; adding a format means adding a constant, a case, and
// an implementation.
package format

import (
	"fmt"
	"strings"
)

// Format identifies an output format.
type Format string

const (
	// FormatXcode emits file:line:col diagnostics that Xcode parses into
	// inline issue markers. This is the default.
	FormatXcode Format = "xcode"

	// FormatJSON emits a single structured JSON document for automation.
	FormatJSON Format = "json"

	// FormatCodeClimate emits one Code Climate issue object per line.
	FormatCodeClimate Format = "codeclimate"
)

// All lists every recognized format in presentation order.
var All = []Format{FormatXcode, FormatJSON, FormatCodeClimate}

// Default returns the format used when neither the command line nor the
// configuration file names one.
func Default() Format { return FormatXcode }

// UnknownFormatError reports a format tag outside the accepted set.
type UnknownFormatError struct {
	Value string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format %q (expected one of: %s)", e.Value, List())
}

// Parse maps a format string to its Format value. Matching is exact
// against the canonical tags: no case folding, no prefixes.
func Parse(s string) (Format, error) {
	for _, f := range All {
		if s == string(f) {
			return f, nil
		}
	}
	return "", &UnknownFormatError{Value: s}
}

// List renders the accepted tags as a comma-separated string for help
// text and error messages.
func List() string {
	names := make([]string, len(All))
	for i, f := range All {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

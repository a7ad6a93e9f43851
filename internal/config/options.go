package config

import "github.com/dkoosis/seam/pkg/lint"

// Options holds the parsed command-line values handed to the resolver.
//
// Absence matters here: precedence rules distinguish "not given" from
// "given with a value", so optional scalars carry an explicit *Set flag
// and optional lists use nil-or-empty slices. Parsing the command line
// itself is the CLI layer's job.
type Options struct {
	// Paths are the positional arguments: files or directory roots.
	Paths []string

	// Only and Except are rule filters. Empty means not given.
	Only   []string
	Except []string

	// Format is the output format tag. Empty means not given.
	Format string

	// MaxSeverity is the failure threshold. Set distinguishes an
	// explicit value from the default.
	MaxSeverity    lint.Severity
	MaxSeveritySet bool

	// Construct-length overrides.
	MaxLineLength    int
	MaxLineLengthSet bool
	MaxFileLength    int
	MaxFileLengthSet bool

	// Mode flags with no file-configuration equivalent.
	ShowRules   bool
	ListFiles   bool
	ForceColor  bool
	NoColor     bool
	InvertColor bool
}

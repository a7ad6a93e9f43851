// Package config resolves the effective configuration for a lint run from
// two independent inputs: the parsed command-line options and an optional
// YAML configuration file.
//
// # Rule Selection Precedence
//
// Exactly one rule filter applies per run, first match wins:
//
//  1. CLI --only list (intersection with the known rules)
//  2. CLI --except list (known rules minus the list)
//  3. File "only" list
//  4. File "except" list
//  5. No filter: all known rules
//
// Only the selected branch is validated; a filter that precedence already
// bypassed is never consulted. An "only" and an "except" list are never
// combined across sources.
//
// # File Discovery Fallback
//
// The branches are mutually exclusive, first applicable wins:
//
//  1. CLI positional paths (files and directory roots)
//  2. File configuration include/exclude patterns, rooted at SRCROOT or
//     the working directory
//  3. SRCROOT as a single directory root
//  4. Nothing: empty file set
//
// # Scalar Precedence
//
// Format, severity threshold, and length limits resolve as CLI value if
// present, else file value if present, else built-in default. A present
// but invalid value is an error, never a silent fall-through to the
// default.
package config

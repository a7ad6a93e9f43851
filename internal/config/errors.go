package config

import (
	"fmt"
	"strings"
)

// UnknownRulesError reports every requested rule identifier that is not in
// the known universe. Names are sorted so the message is deterministic.
type UnknownRulesError struct {
	Names []string
	Known []string
}

func (e *UnknownRulesError) Error() string {
	return fmt.Sprintf("unknown rule(s): %s (known rules: %s)",
		strings.Join(e.Names, ", "),
		strings.Join(e.Known, ", "),
	)
}

// RangeError reports a numeric setting outside its accepted domain.
type RangeError struct {
	Setting string
	Value   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be zero or positive, got %d", e.Setting, e.Value)
}

// PathError reports a path that does not exist or cannot be traversed
// during file discovery.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("cannot analyze %q: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// PatternError reports an include or exclude pattern that failed to
// compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid path pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

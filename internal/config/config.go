package config

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/dkoosis/seam/internal/rules"
	"github.com/dkoosis/seam/pkg/format"
	"github.com/dkoosis/seam/pkg/lint"
)

// Configuration arbitrates between command-line options and an optional
// file configuration, exposing one resolved answer per facet. It is built
// once per invocation and never mutated after Resolve.
type Configuration struct {
	opts    *Options
	file    *FileConfig
	srcRoot string
	infoW   io.Writer
	known   []rules.Rule
}

// New builds a Configuration. file may be nil when no configuration file
// was found. srcRoot is the SRCROOT environment value, passed explicitly
// so tests can substitute it; empty means unset. Informational messages
// (configuration-file provenance) are written to infoW.
func New(opts *Options, file *FileConfig, srcRoot string, infoW io.Writer) *Configuration {
	if infoW == nil {
		infoW = io.Discard
	}
	return &Configuration{
		opts:    opts,
		file:    file,
		srcRoot: srcRoot,
		infoW:   infoW,
		known:   rules.All(),
	}
}

// Effective is the immutable result of a full resolution pass. No partial
// Effective is ever produced: any facet failing aborts the pass.
type Effective struct {
	Rules       []rules.Rule
	Files       []string
	Format      format.Format
	MaxSeverity lint.Severity
	Limits      lint.Limits
}

// Resolve computes every facet and returns the bundle.
func (c *Configuration) Resolve() (*Effective, error) {
	f, err := c.Format()
	if err != nil {
		return nil, err
	}
	enabled, err := c.EnabledRules()
	if err != nil {
		return nil, err
	}
	files, err := c.FilesToAnalyze()
	if err != nil {
		return nil, err
	}
	sev, err := c.MaxSeverity()
	if err != nil {
		return nil, err
	}
	limits, err := c.Limits()
	if err != nil {
		return nil, err
	}
	return &Effective{
		Rules:       enabled,
		Files:       files,
		Format:      f,
		MaxSeverity: sev,
		Limits:      limits,
	}, nil
}

// CLI-only passthrough flags. These have no file-configuration
// equivalent and need no arbitration; the facade exposes them so
// downstream code reads every resolved setting from one place.

func (c *Configuration) ShowRules() bool   { return c.opts.ShowRules }
func (c *Configuration) ListFiles() bool   { return c.opts.ListFiles }
func (c *Configuration) ForceColor() bool  { return c.opts.ForceColor }
func (c *Configuration) NoColor() bool     { return c.opts.NoColor }
func (c *Configuration) InvertColor() bool { return c.opts.InvertColor }

// EnabledRules resolves the rule set from the only/except filters.
func (c *Configuration) EnabledRules() ([]rules.Rule, error) {
	var fileOnly, fileExcept []string
	if c.file != nil {
		fileOnly = c.file.Only
		fileExcept = c.file.Except
	}
	return resolveRules(c.opts.Only, c.opts.Except, fileOnly, fileExcept, c.known)
}

// FilesToAnalyze resolves the set of source files, in sorted order.
func (c *Configuration) FilesToAnalyze() ([]string, error) {
	switch {
	case len(c.opts.Paths) > 0:
		log.Debug("discovering files from command-line paths", "paths", c.opts.Paths)
		return discoverFromPaths(c.opts.Paths)

	case c.file != nil:
		c.printProvenance()
		root := c.srcRoot
		if root == "" {
			root = "."
		}
		f, err := newFinder(root, c.file.Include, c.file.Exclude)
		if err != nil {
			return nil, err
		}
		return f.find()

	case c.srcRoot != "":
		log.Debug("discovering files from SRCROOT", "root", c.srcRoot)
		return discoverFromPaths([]string{c.srcRoot})

	default:
		return nil, nil
	}
}

// printProvenance surfaces where the configuration file came from. The
// note only makes sense under the xcode format, where the tool's output
// lands in a build log; it is informational and never fatal, so a format
// that fails to resolve here just suppresses the note.
func (c *Configuration) printProvenance() {
	if c.file.Location == "" {
		return
	}
	f, err := c.Format()
	if err != nil || f != format.FormatXcode {
		return
	}
	fmt.Fprintf(c.infoW, "Using configuration file at %s\n", c.file.Location)
}

// Format resolves the output format: CLI, then a non-empty file value,
// then the default. A present but unrecognized value is an error.
func (c *Configuration) Format() (format.Format, error) {
	if c.opts.Format != "" {
		return format.Parse(c.opts.Format)
	}
	if c.file != nil && c.file.Format != "" {
		return format.Parse(c.file.Format)
	}
	return format.Default(), nil
}

// Formatter constructs the renderer for the resolved format.
func (c *Configuration) Formatter(w io.Writer, cs format.ColorSettings) (format.Formatter, error) {
	f, err := c.Format()
	if err != nil {
		return nil, err
	}
	return format.New(f, w, cs)
}

// MaxSeverity resolves the failure threshold: CLI, then file, then error.
func (c *Configuration) MaxSeverity() (lint.Severity, error) {
	if c.opts.MaxSeveritySet {
		return c.opts.MaxSeverity, nil
	}
	if c.file != nil && c.file.MaxSeverity != "" {
		return lint.ParseSeverity(c.file.MaxSeverity)
	}
	return lint.SeverityError, nil
}

// Limits resolves construct-length thresholds, range-checking each
// selected value. Zero disables the corresponding rule; negatives are
// out of domain.
func (c *Configuration) Limits() (lint.Limits, error) {
	limits := lint.DefaultLimits()

	var fileLimits FileLimits
	if c.file != nil {
		fileLimits = c.file.Limits
	}

	lineLen, err := resolveLimit("max-line-length", c.opts.MaxLineLength, c.opts.MaxLineLengthSet, fileLimits.MaxLineLength, limits.LineLength)
	if err != nil {
		return lint.Limits{}, err
	}
	fileLen, err := resolveLimit("max-file-length", c.opts.MaxFileLength, c.opts.MaxFileLengthSet, fileLimits.MaxFileLength, limits.FileLength)
	if err != nil {
		return lint.Limits{}, err
	}

	limits.LineLength = lineLen
	limits.FileLength = fileLen
	return limits, nil
}

// resolveLimit applies CLI-over-file-over-default precedence to one
// numeric setting and range-checks the chosen value.
func resolveLimit(name string, cliVal int, cliSet bool, fileVal *int, def int) (int, error) {
	switch {
	case cliSet:
		if cliVal < 0 {
			return 0, &RangeError{Setting: name, Value: cliVal}
		}
		return cliVal, nil
	case fileVal != nil:
		if *fileVal < 0 {
			return 0, &RangeError{Setting: name, Value: *fileVal}
		}
		return *fileVal, nil
	default:
		return def, nil
	}
}

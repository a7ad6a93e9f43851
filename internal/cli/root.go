// Package cli wires the seam command: flag parsing, configuration
// resolution, the analysis loop, and exit-code policy.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/dkoosis/seam/internal/config"
	"github.com/dkoosis/seam/internal/rules"
	"github.com/dkoosis/seam/internal/version"
	"github.com/dkoosis/seam/pkg/format"
	"github.com/dkoosis/seam/pkg/lint"
)

const (
	cmdName = "seam"
	cmdDesc = `Cross-platform style linter for Swift source files.`
)

// errViolations signals that the run found violations at or above the
// failure threshold. It maps to exit code 1 without an error message.
var errViolations = errors.New("violations at or above the failure threshold")

// severityValue adapts lint.Severity to the flag system.
type severityValue lint.Severity

var _ pflag.Value = (*severityValue)(nil)

func (s *severityValue) String() string { return lint.Severity(*s).String() }
func (s *severityValue) Type() string   { return "severity" }

func (s *severityValue) Set(raw string) error {
	sev, err := lint.ParseSeverity(raw)
	if err != nil {
		return err
	}
	*s = severityValue(sev)
	return nil
}

// flagValues collects raw flag state before it becomes config.Options.
type flagValues struct {
	only          []string
	except        []string
	formatTag     string
	maxSeverity   severityValue
	maxLineLength int
	maxFileLength int
	showRules     bool
	listFiles     bool
	color         bool
	noColor       bool
	invertColor   bool
	debug         bool
	configPath    string
}

// NewRootCmd builds the seam command.
func NewRootCmd() *cobra.Command {
	fv := &flagValues{maxSeverity: severityValue(lint.SeverityError)}

	cmd := &cobra.Command{
		Use:           cmdName + " [paths...]",
		Short:         cmdDesc,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, fv)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&fv.only, "only", nil, "run only the named rules")
	flags.StringSliceVar(&fv.except, "except", nil, "run all rules except the named ones")
	flags.StringVarP(&fv.formatTag, "format", "f", "",
		fmt.Sprintf("output format, one of: %s", format.List()))
	flags.Var(&fv.maxSeverity, "max-severity",
		"severity at which violations fail the build (warning, error)")
	flags.IntVar(&fv.maxLineLength, "max-line-length", 0, "maximum characters per line (0 disables)")
	flags.IntVar(&fv.maxFileLength, "max-file-length", 0, "maximum lines per file (0 disables)")
	flags.BoolVar(&fv.showRules, "show-rules", false, "print the known rules and exit")
	flags.BoolVar(&fv.listFiles, "list-files", false, "print the files that would be analyzed and exit")
	flags.BoolVar(&fv.color, "color", false, "colorize output even when not writing to a terminal")
	flags.BoolVar(&fv.noColor, "no-color", false, "disable colorized output")
	flags.BoolVar(&fv.invertColor, "invert-color", false, "use colors suited to light backgrounds")
	flags.BoolVar(&fv.debug, "debug", false, "enable debug tracing of configuration resolution")
	flags.StringVarP(&fv.configPath, "config", "c", config.DefaultFileName, "path to the configuration file")

	return cmd
}

// Execute runs the command and maps its outcome to a process exit code:
// 0 clean, 1 violations at the failure threshold, 2 anything else.
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errViolations) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", cmdName, err)
		return 2
	}
	return 0
}

func run(cmd *cobra.Command, args []string, fv *flagValues) error {
	log.SetOutput(cmd.ErrOrStderr())
	if fv.debug {
		log.SetLevel(log.DebugLevel)
	}

	stdout := cmd.OutOrStdout()

	fileCfg, err := config.Load(fv.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	opts := &config.Options{
		Paths:            args,
		Only:             fv.only,
		Except:           fv.except,
		Format:           fv.formatTag,
		MaxSeverity:      lint.Severity(fv.maxSeverity),
		MaxSeveritySet:   cmd.Flags().Changed("max-severity"),
		MaxLineLength:    fv.maxLineLength,
		MaxLineLengthSet: cmd.Flags().Changed("max-line-length"),
		MaxFileLength:    fv.maxFileLength,
		MaxFileLengthSet: cmd.Flags().Changed("max-file-length"),
		ShowRules:        fv.showRules,
		ListFiles:        fv.listFiles,
		ForceColor:       fv.color,
		NoColor:          fv.noColor,
		InvertColor:      fv.invertColor,
	}

	cfg := config.New(opts, fileCfg, os.Getenv("SRCROOT"), stdout)
	cs := colorSettings(cfg, stdout)

	if cfg.ShowRules() {
		printRuleListing(stdout, cs)
		return nil
	}

	eff, err := cfg.Resolve()
	if err != nil {
		return err
	}

	if cfg.ListFiles() {
		for _, f := range eff.Files {
			fmt.Fprintln(stdout, f)
		}
		return nil
	}

	formatter, err := format.New(eff.Format, stdout, cs)
	if err != nil {
		return err
	}

	return analyze(eff, formatter)
}

// analyze runs the enabled rules over every discovered file and reports
// through the formatter.
func analyze(eff *config.Effective, formatter format.Formatter) error {
	var summary format.Summary
	failed := false

	for _, path := range eff.Files {
		violations, err := rules.AnalyzeFile(path, eff.Rules, eff.Limits)
		if err != nil {
			summary.Skipped++
			if ferr := formatter.SkippedFile(path, err); ferr != nil {
				return ferr
			}
			continue
		}

		summary.Analyzed++
		for _, v := range violations {
			if v.Severity == lint.SeverityError {
				summary.Errors++
			} else {
				summary.Warnings++
			}
			if v.Severity >= eff.MaxSeverity {
				failed = true
			}
		}
		if err := formatter.FileViolations(path, violations); err != nil {
			return err
		}
	}

	if err := formatter.Summary(summary); err != nil {
		return err
	}
	if failed {
		return errViolations
	}
	return nil
}

// colorSettings derives the effective color mode: an explicit --no-color
// wins, then --color, then NO_COLOR, then TTY detection.
func colorSettings(cfg *config.Configuration, w io.Writer) format.ColorSettings {
	enabled := cfg.ForceColor() || (os.Getenv("NO_COLOR") == "" && isTTYWriter(w))
	if cfg.NoColor() {
		enabled = false
	}
	return format.ColorSettings{Enabled: enabled, Inverted: cfg.InvertColor()}
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

package config

import (
	"sort"

	"github.com/charmbracelet/log"

	"github.com/dkoosis/seam/internal/rules"
)

// resolveRules computes the enabled rule set from the CLI and file
// filters, first match wins: CLI only, CLI except, file only, file
// except, everything.
//
// Only the branch selected by precedence is validated. A CLI "only" list
// shadows a CLI "except" list entirely, and any CLI filter shadows both
// file filters; names in a shadowed list are never checked.
func resolveRules(cliOnly, cliExcept, fileOnly, fileExcept []string, known []rules.Rule) ([]rules.Rule, error) {
	switch {
	case len(cliOnly) > 0:
		log.Debug("rule filter selected", "source", "cli", "kind", "only", "names", cliOnly)
		return filterOnly(cliOnly, known)
	case len(cliExcept) > 0:
		log.Debug("rule filter selected", "source", "cli", "kind", "except", "names", cliExcept)
		return filterExcept(cliExcept, known)
	case len(fileOnly) > 0:
		log.Debug("rule filter selected", "source", "file", "kind", "only", "names", fileOnly)
		return filterOnly(fileOnly, known)
	case len(fileExcept) > 0:
		log.Debug("rule filter selected", "source", "file", "kind", "except", "names", fileExcept)
		return filterExcept(fileExcept, known)
	default:
		log.Debug("no rule filter, enabling all rules", "count", len(known))
		return known, nil
	}
}

// filterOnly returns the known rules named in requested.
func filterOnly(requested []string, known []rules.Rule) ([]rules.Rule, error) {
	want, err := validateNames(requested, known)
	if err != nil {
		return nil, err
	}

	var out []rules.Rule
	for _, r := range known {
		if want[r.ID] {
			out = append(out, r)
		}
	}
	return out, nil
}

// filterExcept returns the known rules not named in requested.
func filterExcept(requested []string, known []rules.Rule) ([]rules.Rule, error) {
	drop, err := validateNames(requested, known)
	if err != nil {
		return nil, err
	}

	var out []rules.Rule
	for _, r := range known {
		if !drop[r.ID] {
			out = append(out, r)
		}
	}
	return out, nil
}

// validateNames checks every requested name against the known universe
// and returns the deduplicated request set. All unrecognized names are
// reported together, sorted.
func validateNames(requested []string, known []rules.Rule) (map[string]bool, error) {
	knownIDs := make(map[string]bool, len(known))
	knownNames := make([]string, 0, len(known))
	for _, r := range known {
		knownIDs[r.ID] = true
		knownNames = append(knownNames, r.ID)
	}
	sort.Strings(knownNames)

	want := make(map[string]bool, len(requested))
	var unknown []string
	for _, name := range requested {
		if !knownIDs[name] {
			if !want[name] {
				unknown = append(unknown, name)
			}
		}
		want[name] = true
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &UnknownRulesError{Names: unknown, Known: knownNames}
	}
	return want, nil
}

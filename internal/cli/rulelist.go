package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/seam/internal/rules"
	"github.com/dkoosis/seam/pkg/format"
)

// printRuleListing writes the known rule universe as an aligned table.
func printRuleListing(w io.Writer, cs format.ColorSettings) {
	theme := format.MonoTheme()
	if cs.Enabled {
		theme = format.DefaultTheme()
		if cs.Inverted {
			theme = format.InvertedTheme()
		}
	}

	all := rules.All()
	maxID := 0
	for _, r := range all {
		if width := runewidth.StringWidth(r.ID); width > maxID {
			maxID = width
		}
	}

	fmt.Fprintln(w, theme.Bold.Render("Available rules:"))
	for _, r := range all {
		pad := strings.Repeat(" ", maxID-runewidth.StringWidth(r.ID))
		fmt.Fprintf(w, "  %s%s  %s  %s\n",
			theme.Bold.Render(r.ID),
			pad,
			theme.Muted.Render("["+r.Severity.String()+"]"),
			r.Description,
		)
	}
}

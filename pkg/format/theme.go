package format

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles used by the xcode formatter.
type Theme struct {
	Path    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Rule    lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
}

// ColorSettings carries the user's color preferences into formatter
// construction.
type ColorSettings struct {
	Enabled  bool
	Inverted bool
}

// DefaultTheme returns the color theme for dark terminal backgrounds.
func DefaultTheme() Theme {
	return Theme{
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Bold:    lipgloss.NewStyle().Bold(true),
	}
}

// InvertedTheme returns the color theme for light terminal backgrounds.
func InvertedTheme() Theme {
	return Theme{
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("25")),  // darker blue
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("130")), // brown-orange
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("124")), // dark red
		Rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Bold:    lipgloss.NewStyle().Bold(true),
	}
}

// MonoTheme returns a theme with no color, for pipes and NO_COLOR.
func MonoTheme() Theme {
	return Theme{
		Path:    lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Rule:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle().Bold(true),
	}
}

// themeFor selects the theme matching the user's color settings.
func themeFor(cs ColorSettings) Theme {
	switch {
	case !cs.Enabled:
		return MonoTheme()
	case cs.Inverted:
		return InvertedTheme()
	default:
		return DefaultTheme()
	}
}

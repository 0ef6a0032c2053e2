package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeMonokai ThemeName = "monokai"
	ThemeDracula ThemeName = "dracula"
	ThemeNord    ThemeName = "nord"
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeDracula),
		string(ThemeNord),
	}
}

// IsValidTheme reports whether name is a built-in theme.
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	Primary lipgloss.Color // Titles, emphasis
	Muted   lipgloss.Color // De-emphasized text, timestamps
	Text    lipgloss.Color
	Border  lipgloss.Color

	Seated     lipgloss.Color // Client took a chair
	TurnedAway lipgloss.Color // Client left, room full
	Waiting    lipgloss.Color // Barber asleep
	Serving    lipgloss.Color // Barber cutting hair
	Finished   lipgloss.Color
	Stopped    lipgloss.Color
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Muted:   lipgloss.Color("#9CA3AF"), // Gray
		Text:    lipgloss.Color("#F9FAFB"),
		Border:  lipgloss.Color("#6B7280"),

		Seated:     lipgloss.Color("#60A5FA"), // Blue
		TurnedAway: lipgloss.Color("#F87171"), // Red (red-400)
		Waiting:    lipgloss.Color("#9CA3AF"), // Gray
		Serving:    lipgloss.Color("#10B981"), // Green
		Finished:   lipgloss.Color("#A78BFA"), // Purple
		Stopped:    lipgloss.Color("#F59E0B"), // Amber
	}
}

// MonokaiPalette returns the classic Monokai editor theme palette.
func MonokaiPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#F92672"),
		Muted:   lipgloss.Color("#75715E"),
		Text:    lipgloss.Color("#F8F8F2"),
		Border:  lipgloss.Color("#49483E"),

		Seated:     lipgloss.Color("#66D9EF"),
		TurnedAway: lipgloss.Color("#F92672"),
		Waiting:    lipgloss.Color("#75715E"),
		Serving:    lipgloss.Color("#A6E22E"),
		Finished:   lipgloss.Color("#AE81FF"),
		Stopped:    lipgloss.Color("#FD971F"),
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#BD93F9"),
		Muted:   lipgloss.Color("#6272A4"),
		Text:    lipgloss.Color("#F8F8F2"),
		Border:  lipgloss.Color("#44475A"),

		Seated:     lipgloss.Color("#8BE9FD"),
		TurnedAway: lipgloss.Color("#FF5555"),
		Waiting:    lipgloss.Color("#6272A4"),
		Serving:    lipgloss.Color("#50FA7B"),
		Finished:   lipgloss.Color("#FF79C6"),
		Stopped:    lipgloss.Color("#FFB86C"),
	}
}

// NordPalette returns the Nord cool blue-gray palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#88C0D0"),
		Muted:   lipgloss.Color("#7B88A1"),
		Text:    lipgloss.Color("#ECEFF4"),
		Border:  lipgloss.Color("#4C566A"),

		Seated:     lipgloss.Color("#81A1C1"),
		TurnedAway: lipgloss.Color("#BF616A"),
		Waiting:    lipgloss.Color("#7B88A1"),
		Serving:    lipgloss.Color("#A3BE8C"),
		Finished:   lipgloss.Color("#B48EAD"),
		Stopped:    lipgloss.Color("#EBCB8B"),
	}
}

// GetPalette returns the palette for name, falling back to the default.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeMonokai:
		return MonokaiPalette()
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	default:
		return DefaultPalette()
	}
}

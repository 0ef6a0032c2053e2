// Package styles holds the lipgloss styles shared by the console narrator
// and the dashboard.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles is a set of lipgloss styles bound to one renderer. Binding to a
// renderer lets color output follow the capabilities of the writer being
// rendered to rather than those of stdout.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style
	Box       lipgloss.Style
	HelpKey   lipgloss.Style
	HelpValue lipgloss.Style

	Seated     lipgloss.Style
	TurnedAway lipgloss.Style
	Waiting    lipgloss.Style
	Serving    lipgloss.Style
	Finished   lipgloss.Style
	Stopped    lipgloss.Style

	ChairTaken lipgloss.Style
	ChairFree  lipgloss.Style
}

// New builds Styles for palette p on renderer r. A nil renderer uses
// lipgloss's default (stdout) renderer; a nil palette uses the default theme.
func New(r *lipgloss.Renderer, p *ColorPalette) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	if p == nil {
		p = DefaultPalette()
	}
	fg := func(c lipgloss.Color) lipgloss.Style { return r.NewStyle().Foreground(c) }

	return &Styles{
		Title:    fg(p.Primary).Bold(true),
		Subtitle: fg(p.Muted).Italic(true),
		Muted:    fg(p.Muted),
		Text:     fg(p.Text),
		Box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		HelpKey:   fg(p.Primary).Bold(true),
		HelpValue: fg(p.Muted),

		Seated:     fg(p.Seated),
		TurnedAway: fg(p.TurnedAway).Bold(true),
		Waiting:    fg(p.Waiting),
		Serving:    fg(p.Serving).Bold(true),
		Finished:   fg(p.Finished),
		Stopped:    fg(p.Stopped),

		ChairTaken: fg(p.Seated).Bold(true),
		ChairFree:  fg(p.Muted),
	}
}

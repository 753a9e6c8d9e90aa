package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// theme holds the styles that change with the dark preference.
type theme struct {
	title    lipgloss.Style
	draft    lipgloss.Style
	saved    lipgloss.Style
	selected lipgloss.Style
	muted    lipgloss.Style
	error    lipgloss.Style
	panel    lipgloss.Style
}

func newTheme(dark bool) theme {
	fg, accent, draft, muted, border := lipgloss.Color("235"), lipgloss.Color("25"), lipgloss.Color("130"), lipgloss.Color("244"), lipgloss.Color("250")
	if dark {
		fg, accent, draft, muted, border = lipgloss.Color("252"), lipgloss.Color("81"), lipgloss.Color("222"), lipgloss.Color("242"), lipgloss.Color("238")
	}

	return theme{
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		draft:    lipgloss.NewStyle().Foreground(draft).Italic(true),
		saved:    lipgloss.NewStyle().Foreground(fg),
		selected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		muted:    lipgloss.NewStyle().Foreground(muted),
		error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
		panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
	}
}

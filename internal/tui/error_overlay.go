package tui

import "github.com/charmbracelet/lipgloss"

// errorOverlayModel blocks the board until the user acknowledges a failure
// that left it in an unexpected state, e.g. an unreadable note collection.
type errorOverlayModel struct {
	title   string
	message string
}

func newLoadErrorOverlay(err error) *errorOverlayModel {
	return &errorOverlayModel{
		title:   "Saved notes could not be loaded",
		message: humanizeStorageError(err) + "\nThe board starts empty; saving will overwrite the stored notes.",
	}
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(m.title),
		"",
		m.message,
		"",
		"enter / esc close",
	))
}

package tui

type confirmAction int

const (
	confirmDeleteCard confirmAction = iota
	confirmDeleteTopic
	confirmClearAll
)

type confirmModel struct {
	action confirmAction
	// target is the card id or topic the action applies to.
	target  string
	message string
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

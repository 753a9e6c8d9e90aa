package tui

import (
	"strings"

	"github.com/MKhiriev/note-pilot/internal/view"
	"github.com/charmbracelet/lipgloss"
)

const (
	listBodyWidth = 72
	gridTextWidth = 32
)

func (m model) View() string {
	switch {
	case m.errOverlay != nil:
		return appStyle.Render(m.errOverlay.View())
	case m.confirm != nil:
		return appStyle.Render(m.confirm.View())
	case m.showBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder

	b.WriteString(m.theme.title.Render("Note Pilot"))
	b.WriteString("\n")
	b.WriteString(m.topic.View())
	if m.pending > 0 {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.muted.Render(" thinking..."))
	}
	b.WriteString("\n")
	if m.focus == focusSearch || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString(uiDivider)
	b.WriteString("\n")

	main := m.renderList()
	if m.focus == focusEditor {
		main = m.theme.muted.Render("editing (every keystroke is saved, esc to leave)") + "\n" + m.editor.View()
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, main, "  ", m.renderGrid()))
	b.WriteString("\n")

	b.WriteString(m.renderStatus())
	b.WriteString(m.renderHelp())

	return appStyle.Render(b.String())
}

func (m model) renderList() string {
	cards := m.visibleCards()
	if len(cards) == 0 {
		return m.theme.muted.Render("No notes yet.")
	}

	var b strings.Builder
	for i, c := range cards {
		cursor := "  "
		header := c.Topic + "  " + m.theme.muted.Render(c.Timestamp)
		if m.focus == focusList && i == m.listIdx {
			cursor = "> "
			header = m.theme.selected.Render(c.Topic) + "  " + m.theme.muted.Render(c.Timestamp)
		}

		b.WriteString(cursor)
		b.WriteString(header)
		if c.State == view.Draft {
			b.WriteString(m.theme.draft.Render("  [draft: a accept, x discard]"))
		}
		b.WriteString("\n  ")

		body := fitText(c.Body, listBodyWidth)
		if c.State == view.Draft {
			b.WriteString(m.theme.draft.Render(body))
		} else {
			b.WriteString(m.theme.saved.Render(body))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m model) renderGrid() string {
	grid := m.visibleGrid()

	var b strings.Builder
	b.WriteString(m.theme.title.Render("Saved"))
	b.WriteString("\n")
	if len(grid) == 0 {
		b.WriteString(m.theme.muted.Render("nothing saved"))
	}
	for i, g := range grid {
		topic := fitText(g.Topic, gridTextWidth)
		if m.focus == focusGrid && i == m.gridIdx {
			topic = m.theme.selected.Render("> " + topic)
		}
		b.WriteString(topic)
		b.WriteString("\n")
		b.WriteString(m.theme.muted.Render(g.Timestamp))
		b.WriteString("\n")
		b.WriteString(m.theme.muted.Render(fitText(g.Text, gridTextWidth)))
		b.WriteString("\n")
	}
	return m.theme.panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m model) renderStatus() string {
	switch {
	case m.errMsg != "":
		return m.theme.error.Render("Error: "+m.errMsg) + "\n"
	case m.status != "":
		return m.theme.muted.Render(m.status) + "\n"
	}
	return ""
}

func (m model) renderHelp() string {
	switch m.focus {
	case focusTopic:
		return helpStyle.Render("enter ask • tab notes • ctrl+c quit")
	case focusSearch:
		return helpStyle.Render("type to filter • enter/esc back")
	case focusEditor:
		return helpStyle.Render("esc done")
	case focusGrid:
		return m.help.View(gridHelp{})
	default:
		return m.help.View(listHelp{})
	}
}

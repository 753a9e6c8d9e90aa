package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/note-pilot/internal/logger"
	"github.com/MKhiriev/note-pilot/internal/service"
	"github.com/MKhiriev/note-pilot/internal/view"
	"github.com/MKhiriev/note-pilot/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focus int

const (
	focusTopic focus = iota
	focusList
	focusGrid
	focusSearch
	focusEditor
)

const statusTTL = 3 * time.Second

type model struct {
	ctx       context.Context
	services  *service.ClientServices
	board     *view.Board
	buildInfo models.BuildInfo
	logger    *logger.Logger

	focus   focus
	topic   textinput.Model
	search  textinput.Model
	editor  textarea.Model
	spinner spinner.Model
	help    help.Model

	editingID string
	listIdx   int
	gridIdx   int
	// pending counts suggestion fetches still in flight.
	pending int

	dark  bool
	theme theme

	confirm       *confirmModel
	errOverlay    *errorOverlayModel
	showBuildInfo bool

	status string
	errMsg string
	width  int

	copyText func(string) error
}

func newModel(ctx context.Context, services *service.ClientServices, buildInfo models.BuildInfo, logger *logger.Logger) model {
	topic := textinput.New()
	topic.Placeholder = "Type a topic and press enter"
	topic.Prompt = "topic › "
	topic.CharLimit = 200
	topic.Focus()

	search := textinput.New()
	search.Placeholder = "filter notes"
	search.Prompt = "search › "

	editor := textarea.New()
	editor.ShowLineNumbers = false
	editor.SetHeight(5)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	dark := services.PreferenceService.Dark(ctx)

	m := model{
		ctx:       ctx,
		services:  services,
		board:     view.NewBoard(services.NoteService, logger),
		buildInfo: buildInfo,
		logger:    logger,
		focus:     focusTopic,
		topic:     topic,
		search:    search,
		editor:    editor,
		spinner:   sp,
		help:      help.New(),
		dark:      dark,
		theme:     newTheme(dark),
		copyText:  clipboard.WriteAll,
	}

	if err := m.board.Reload(ctx); err != nil {
		logger.Err(err).Str("func", "newModel").Msg("failed to load notes")
		m.errOverlay = newLoadErrorOverlay(err)
	}

	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.editor.SetWidth(max(msg.Width-8, 20))
		return m, nil

	case suggestionMsg:
		m.pending--
		m.board.AddDraft(msg.topic, msg.text)
		if m.focus == focusList {
			m.listIdx = 0
		}
		return m, m.setStatus("Suggestion ready: " + msg.topic)

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateFocused(msg)
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.errOverlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.errOverlay = nil
		}
		return m, nil
	}
	if m.confirm != nil {
		return m.updateConfirm(msg)
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.focus {
	case focusTopic:
		return m.updateTopic(msg)
	case focusSearch:
		return m.updateSearch(msg)
	case focusEditor:
		return m.updateEditor(msg)
	case focusGrid:
		return m.updateGrid(msg)
	default:
		return m.updateList(msg)
	}
}

func (m model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTopic:
		m.topic, cmd = m.topic.Update(msg)
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	case focusEditor:
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

// ── topic input ──

func (m model) updateTopic(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		topic := strings.TrimSpace(m.topic.Value())
		if topic == "" {
			return m, nil
		}
		m.topic.Reset()
		m.pending++

		cmds := []tea.Cmd{m.cmdSuggest(topic)}
		if m.pending == 1 {
			cmds = append(cmds, m.spinner.Tick)
		}
		return m, tea.Batch(cmds...)
	case key.Matches(msg, keys.tab, keys.esc):
		m.setFocus(focusList)
		return m, nil
	}

	var cmd tea.Cmd
	m.topic, cmd = m.topic.Update(msg)
	return m, cmd
}

func (m model) cmdSuggest(topic string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SuggestionService

	return func() tea.Msg {
		return suggestionMsg{topic: topic, text: svc.Suggest(ctx, topic)}
	}
}

// ── main list ──

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.listIdx > 0 {
			m.listIdx--
		}
	case key.Matches(msg, keys.down):
		if m.listIdx < len(m.visibleCards())-1 {
			m.listIdx++
		}
	case key.Matches(msg, keys.tab, keys.enter):
		m.setFocus(focusTopic)
	case key.Matches(msg, keys.search):
		m.setFocus(focusSearch)
	case key.Matches(msg, keys.grid):
		m.setFocus(focusGrid)
	case key.Matches(msg, keys.theme):
		return m.toggleTheme()
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	case key.Matches(msg, keys.clearAll):
		m.confirm = &confirmModel{action: confirmClearAll, message: "Clear all saved notes?"}
	case key.Matches(msg, keys.accept):
		card, ok := m.currentCard()
		if !ok {
			return m, nil
		}
		if err := m.board.Accept(m.ctx, card.ID); err != nil {
			return m.fail("accept", err)
		}
		return m, m.setStatus("Saved: " + card.Topic)
	case key.Matches(msg, keys.discard):
		card, ok := m.currentCard()
		if !ok {
			return m, nil
		}
		if err := m.board.Discard(card.ID); err != nil {
			return m.fail("discard", err)
		}
		m.clampList()
	case key.Matches(msg, keys.edit):
		card, ok := m.currentCard()
		if !ok {
			return m, nil
		}
		if card.State != view.Saved {
			m.errMsg = "Accept the draft before editing it"
			return m, nil
		}
		m.editingID = card.ID
		m.editor.SetValue(card.Body)
		m.setFocus(focusEditor)
		return m, textarea.Blink
	case key.Matches(msg, keys.delete):
		card, ok := m.currentCard()
		if !ok || card.State != view.Saved {
			return m, nil
		}
		m.confirm = &confirmModel{action: confirmDeleteCard, target: card.ID, message: "Delete this note?"}
	case key.Matches(msg, keys.copy):
		card, ok := m.currentCard()
		if !ok {
			return m, nil
		}
		if err := m.copyText(card.Body); err != nil {
			return m.fail("copy", err)
		}
		return m, m.setStatus("Copied to clipboard")
	}

	return m, nil
}

// ── grid ──

func (m model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.gridIdx > 0 {
			m.gridIdx--
		}
	case key.Matches(msg, keys.down):
		if m.gridIdx < len(m.visibleGrid())-1 {
			m.gridIdx++
		}
	case key.Matches(msg, keys.esc, keys.grid, keys.tab):
		m.setFocus(focusList)
	case key.Matches(msg, keys.search):
		m.setFocus(focusSearch)
	case key.Matches(msg, keys.delete):
		grid := m.visibleGrid()
		if m.gridIdx >= len(grid) {
			return m, nil
		}
		topic := grid[m.gridIdx].Topic
		m.confirm = &confirmModel{action: confirmDeleteTopic, target: topic, message: fmt.Sprintf("Delete %q?", topic)}
	}
	return m, nil
}

// ── search ──

func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.enter, keys.esc, keys.tab) {
		m.setFocus(focusList)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.board.Filter(m.search.Value())
	m.clampList()
	m.clampGrid()
	return m, cmd
}

// ── editor ──

func (m model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		m.editingID = ""
		m.editor.Blur()
		m.setFocus(focusList)
		return m, nil
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if after := m.editor.Value(); after != before {
		if err := m.board.Edit(m.ctx, m.editingID, after); err != nil {
			m.logger.Err(err).Str("func", "model.updateEditor").Msg("autosave failed")
			m.errMsg = "edit: " + humanizeStorageError(err)
		} else {
			m.errMsg = ""
		}
	}
	return m, cmd
}

// ── confirm ──

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		c := *m.confirm
		m.confirm = nil

		var err error
		switch c.action {
		case confirmDeleteCard:
			err = m.board.Delete(m.ctx, c.target)
		case confirmDeleteTopic:
			err = m.board.DeleteTopic(m.ctx, c.target)
		case confirmClearAll:
			err = m.board.ClearAll(m.ctx)
		}
		if err != nil {
			return m.fail("delete", err)
		}
		m.clampList()
		m.clampGrid()
		return m, m.setStatus("Deleted")
	case key.Matches(msg, keys.no):
		m.confirm = nil
	}
	return m, nil
}

// ── helpers ──

func (m model) toggleTheme() (tea.Model, tea.Cmd) {
	dark := !m.dark
	if err := m.services.PreferenceService.SetDark(m.ctx, dark); err != nil {
		return m.fail("theme", err)
	}
	m.dark = dark
	m.theme = newTheme(dark)
	return m, nil
}

func (m model) fail(op string, err error) (tea.Model, tea.Cmd) {
	m.logger.Err(err).Str("op", op).Msg("board operation failed")
	m.errMsg = op + ": " + humanizeStorageError(err)
	return m, nil
}

func (m *model) setStatus(s string) tea.Cmd {
	m.status = s
	m.errMsg = ""
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *model) setFocus(f focus) {
	m.topic.Blur()
	m.search.Blur()
	m.editor.Blur()

	switch f {
	case focusTopic:
		m.topic.Focus()
	case focusSearch:
		m.search.Focus()
	case focusEditor:
		m.editor.Focus()
	}
	m.focus = f
}

func (m model) visibleCards() []view.Card {
	var out []view.Card
	for _, c := range m.board.Cards() {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

func (m model) visibleGrid() []view.GridCard {
	var out []view.GridCard
	for _, g := range m.board.Grid() {
		if !g.Hidden {
			out = append(out, g)
		}
	}
	return out
}

func (m model) currentCard() (view.Card, bool) {
	cards := m.visibleCards()
	if m.listIdx < 0 || m.listIdx >= len(cards) {
		return view.Card{}, false
	}
	return cards[m.listIdx], true
}

func (m *model) clampList() {
	m.listIdx = clamp(m.listIdx, len(m.visibleCards()))
}

func (m *model) clampGrid() {
	m.gridIdx = clamp(m.gridIdx, len(m.visibleGrid()))
}

func clamp(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	return max(idx, 0)
}

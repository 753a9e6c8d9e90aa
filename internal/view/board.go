package view

import (
	"context"
	"fmt"
	"html"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/note-pilot/internal/logger"
	"github.com/MKhiriev/note-pilot/internal/utils"
	"github.com/MKhiriev/note-pilot/models"
)

// NoteStore is the persistence the board writes through.
type NoteStore interface {
	List(ctx context.Context) ([]models.Note, error)
	Upsert(ctx context.Context, note models.Note) error
	UpdateText(ctx context.Context, topic, text string) error
	Remove(ctx context.Context, topic string) error
	Clear(ctx context.Context) error
}

type idGenerator interface {
	Generate() string
}

// Board holds the cards of the main list and the grid of saved notes, and
// keeps both in step with the note store after every mutation.
type Board struct {
	notes NoteStore
	ids   idGenerator
	now   func() time.Time

	cards []*Card
	grid  []GridCard
	query string

	logger *logger.Logger
}

// NewBoard returns an empty board over notes. Call [Board.Reload] to fill it.
func NewBoard(notes NoteStore, logger *logger.Logger) *Board {
	return &Board{
		notes:  notes,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger,
	}
}

// Cards returns a snapshot of the main list, newest draft first.
func (b *Board) Cards() []Card {
	out := make([]Card, len(b.cards))
	for i, c := range b.cards {
		out[i] = *c
	}
	return out
}

// Grid returns a snapshot of the search grid in storage order.
func (b *Board) Grid() []GridCard {
	return slices.Clone(b.grid)
}

// Card returns the card with id.
func (b *Board) Card(id string) (Card, bool) {
	if c := b.find(id); c != nil {
		return *c, true
	}
	return Card{}, false
}

// Query returns the normalized filter query currently applied.
func (b *Board) Query() string {
	return b.query
}

// Reload rebuilds the main list from storage, dropping drafts, and the grid.
func (b *Board) Reload(ctx context.Context) error {
	notes, err := b.notes.List(ctx)
	if err != nil {
		return fmt.Errorf("reload board: %w", err)
	}

	b.cards = make([]*Card, 0, len(notes))
	for _, n := range notes {
		b.cards = append(b.cards, &Card{
			ID:        b.ids.Generate(),
			Topic:     n.Topic,
			Timestamp: n.Timestamp,
			Body:      n.Text,
			State:     Saved,
		})
	}
	b.setGrid(notes)
	b.applyFilter()

	b.logger.Debug().Int("notes", len(notes)).Msg("board reloaded")
	return nil
}

// SyncGrid rebuilds the grid from storage. The main list is left untouched.
func (b *Board) SyncGrid(ctx context.Context) error {
	notes, err := b.notes.List(ctx)
	if err != nil {
		return fmt.Errorf("sync grid: %w", err)
	}
	b.setGrid(notes)
	b.applyFilter()
	return nil
}

// AddDraft prepends an unsaved card for topic and returns its id.
func (b *Board) AddDraft(topic, suggestion string) string {
	card := &Card{
		ID:        b.ids.Generate(),
		Topic:     topic,
		Timestamp: models.FormatTimestamp(b.now()),
		Body:      topicPrefix(topic) + suggestion,
		State:     Draft,
	}
	card.Hidden = !card.matches(b.query)
	b.cards = slices.Insert(b.cards, 0, card)
	return card.ID
}

// Accept persists a draft under its topic, keeping the draft's timestamp.
// The text is the body as shown, "[topic] " marker included; later edits
// drop the marker.
func (b *Board) Accept(ctx context.Context, id string) error {
	card := b.find(id)
	if card == nil {
		return ErrCardNotFound
	}
	if card.State != Draft {
		return ErrNotDraft
	}

	note := models.Note{
		Topic:     card.Topic,
		Text:      html.UnescapeString(card.Body),
		Timestamp: card.Timestamp,
	}
	if err := b.notes.Upsert(ctx, note); err != nil {
		return fmt.Errorf("accept %q: %w", card.Topic, err)
	}
	card.State = Saved

	return b.SyncGrid(ctx)
}

// Discard drops a draft from the main list. Nothing is persisted.
func (b *Board) Discard(id string) error {
	card := b.find(id)
	if card == nil {
		return ErrCardNotFound
	}
	if card.State != Draft {
		return ErrNotDraft
	}
	b.removeCards(func(c *Card) bool { return c.ID == id })
	return nil
}

// Edit replaces the body of a saved card and writes the text through.
func (b *Board) Edit(ctx context.Context, id, body string) error {
	card := b.find(id)
	if card == nil {
		return ErrCardNotFound
	}
	if card.State != Saved {
		return ErrNotSaved
	}

	card.Body = body
	if err := b.notes.UpdateText(ctx, card.Topic, stripTopicPrefix(card.Topic, body)); err != nil {
		return fmt.Errorf("edit %q: %w", card.Topic, err)
	}
	if err := b.SyncGrid(ctx); err != nil {
		return err
	}

	if i := slices.IndexFunc(b.grid, func(g GridCard) bool { return g.Topic == card.Topic }); i >= 0 {
		card.Timestamp = b.grid[i].Timestamp
	}
	card.Hidden = !card.matches(b.query)
	return nil
}

// Delete removes a saved card from storage and from both projections.
func (b *Board) Delete(ctx context.Context, id string) error {
	card := b.find(id)
	if card == nil {
		return ErrCardNotFound
	}
	if card.State != Saved {
		return ErrNotSaved
	}

	if err := b.notes.Remove(ctx, card.Topic); err != nil {
		return fmt.Errorf("delete %q: %w", card.Topic, err)
	}
	b.removeCards(func(c *Card) bool { return c.ID == id })

	return b.SyncGrid(ctx)
}

// DeleteTopic removes topic from storage, every saved card carrying it and
// the grid. Drafts for the same topic survive.
func (b *Board) DeleteTopic(ctx context.Context, topic string) error {
	if err := b.notes.Remove(ctx, topic); err != nil {
		return fmt.Errorf("delete %q: %w", topic, err)
	}
	b.removeCards(func(c *Card) bool { return c.State == Saved && c.Topic == topic })

	return b.SyncGrid(ctx)
}

// ClearAll drops the whole collection and reloads, which discards drafts too.
func (b *Board) ClearAll(ctx context.Context) error {
	if err := b.notes.Clear(ctx); err != nil {
		return fmt.Errorf("clear notes: %w", err)
	}
	return b.Reload(ctx)
}

// Filter hides every card in both projections whose visible text does not
// contain query, ignoring case. An empty query shows everything.
func (b *Board) Filter(query string) {
	b.query = strings.ToLower(strings.TrimSpace(query))
	b.applyFilter()
}

func (b *Board) applyFilter() {
	for _, c := range b.cards {
		c.Hidden = !c.matches(b.query)
	}
	for i := range b.grid {
		b.grid[i].Hidden = !b.grid[i].matches(b.query)
	}
}

func (b *Board) setGrid(notes []models.Note) {
	b.grid = make([]GridCard, 0, len(notes))
	for _, n := range notes {
		b.grid = append(b.grid, GridCard{Topic: n.Topic, Timestamp: n.Timestamp, Text: n.Text})
	}
}

func (b *Board) find(id string) *Card {
	for _, c := range b.cards {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (b *Board) removeCards(drop func(*Card) bool) {
	b.cards = slices.DeleteFunc(b.cards, drop)
}

package service

import (
	"context"

	"github.com/MKhiriev/note-pilot/models"
)

// NoteService owns the saved-note collection. The whole collection is
// persisted as one JSON array under [NotesKey]; every mutating call writes
// it through immediately.
type NoteService interface {
	// List returns the saved notes in storage order. A missing or
	// undecodable blob yields an empty collection; only backend I/O
	// failures are returned as errors.
	List(ctx context.Context) ([]models.Note, error)

	// Upsert replaces the note with the same topic in place, or appends it.
	// Returns [ErrEmptyTopic] for a blank topic.
	Upsert(ctx context.Context, note models.Note) error

	// UpdateText sets the text of the note with topic and regenerates its
	// timestamp. It is a silent no-op when no such note exists.
	UpdateText(ctx context.Context, topic, text string) error

	// Remove deletes every note with topic. An absent topic leaves the
	// collection unchanged.
	Remove(ctx context.Context, topic string) error

	// Clear drops the whole collection.
	Clear(ctx context.Context) error
}

// PreferenceService stores user interface preferences next to the notes.
type PreferenceService interface {
	// Dark reports whether the dark theme is enabled. Storage failures are
	// logged and read as "off".
	Dark(ctx context.Context) bool

	// SetDark persists the dark theme flag.
	SetDark(ctx context.Context, on bool) error
}

// SuggestionService produces a one-sentence explanation of a topic.
type SuggestionService interface {
	// Suggest never fails and never returns an empty string: when no live
	// answer can be obtained it returns [Placeholder] for the topic.
	Suggest(ctx context.Context, topic string) string
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/note-pilot/internal/logger"
	"github.com/MKhiriev/note-pilot/internal/store"
	"github.com/MKhiriev/note-pilot/models"
)

// Storage keys shared by the client services.
const (
	NotesKey    = "savedNotes"
	DarkModeKey = "np_dark"
)

type noteService struct {
	kv  store.KeyValueStore
	now func() time.Time

	logger *logger.Logger
}

// NewNoteService returns a [NoteService] persisting into kv.
func NewNoteService(kv store.KeyValueStore, logger *logger.Logger) NoteService {
	return &noteService{
		kv:     kv,
		now:    time.Now,
		logger: logger,
	}
}

func (s *noteService) List(ctx context.Context) ([]models.Note, error) {
	raw, ok, err := s.kv.Get(ctx, NotesKey)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	if !ok {
		return []models.Note{}, nil
	}

	var notes []models.Note
	if err = json.Unmarshal([]byte(raw), &notes); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "noteService.List").
			Msg("stored notes are not decodable, treating collection as empty")
		return []models.Note{}, nil
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}

func (s *noteService) Upsert(ctx context.Context, note models.Note) error {
	if strings.TrimSpace(note.Topic) == "" {
		return ErrEmptyTopic
	}

	notes, err := s.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range notes {
		if notes[i].Topic == note.Topic {
			notes[i] = note
			replaced = true
			break
		}
	}
	if !replaced {
		notes = append(notes, note)
	}

	return s.save(ctx, notes)
}

func (s *noteService) UpdateText(ctx context.Context, topic, text string) error {
	notes, err := s.List(ctx)
	if err != nil {
		return err
	}

	for i := range notes {
		if notes[i].Topic == topic {
			notes[i].Text = text
			notes[i].Timestamp = models.FormatTimestamp(s.now())
			return s.save(ctx, notes)
		}
	}

	return nil
}

func (s *noteService) Remove(ctx context.Context, topic string) error {
	notes, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := notes[:0]
	for _, n := range notes {
		if n.Topic != topic {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notes) {
		return nil
	}

	return s.save(ctx, kept)
}

func (s *noteService) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, NotesKey); err != nil {
		return fmt.Errorf("clear notes: %w", err)
	}
	return nil
}

func (s *noteService) save(ctx context.Context, notes []models.Note) error {
	raw, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}

	if err = s.kv.Set(ctx, NotesKey, string(raw)); err != nil {
		s.logger.Err(err).
			Str("func", "noteService.save").
			Int("count", len(notes)).
			Msg("failed to persist notes")
		return fmt.Errorf("save notes: %w", err)
	}

	return nil
}

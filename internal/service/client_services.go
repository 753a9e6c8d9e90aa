package service

import (
	"github.com/MKhiriev/note-pilot/internal/adapter"
	"github.com/MKhiriev/note-pilot/internal/logger"
	"github.com/MKhiriev/note-pilot/internal/store"
)

type ClientServices struct {
	NoteService       NoteService
	PreferenceService PreferenceService
	SuggestionService SuggestionService
}

// NewClientServices wires the client services. serverAdapter may be nil when
// no companion server is configured.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		NoteService:       NewNoteService(storages.KeyValueStore, logger),
		PreferenceService: NewPreferenceService(storages.KeyValueStore, logger),
		SuggestionService: NewSuggestionService(serverAdapter, logger),
	}
}

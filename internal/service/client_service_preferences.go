package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/note-pilot/internal/logger"
	"github.com/MKhiriev/note-pilot/internal/store"
)

const darkModeOn = "1"

type preferenceService struct {
	kv store.KeyValueStore

	logger *logger.Logger
}

// NewPreferenceService stores the dark theme flag under [DarkModeKey] in kv.
func NewPreferenceService(kv store.KeyValueStore, logger *logger.Logger) PreferenceService {
	return &preferenceService{kv: kv, logger: logger}
}

func (p *preferenceService) Dark(ctx context.Context) bool {
	value, ok, err := p.kv.Get(ctx, DarkModeKey)
	if err != nil {
		p.logger.Warn().Err(err).Str("func", "preferenceService.Dark").Msg("failed to read theme preference")
		return false
	}

	return ok && value == darkModeOn
}

func (p *preferenceService) SetDark(ctx context.Context, on bool) error {
	var err error
	if on {
		err = p.kv.Set(ctx, DarkModeKey, darkModeOn)
	} else {
		err = p.kv.Remove(ctx, DarkModeKey)
	}
	if err != nil {
		return fmt.Errorf("save theme preference: %w", err)
	}

	return nil
}

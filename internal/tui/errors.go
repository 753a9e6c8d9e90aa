// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/note-pilot/internal/store"
)

func humanizeStorageError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, store.ErrQuotaExceeded) {
		return "storage is full, the note was not saved"
	}
	return err.Error()
}

var errNoServices = errors.New("client services are not set")

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/note-pilot/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", ErrChatMisconfigured, err)
	case errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrInvalidResponse):
		return fmt.Errorf("%w: %w", ErrChatUnavailable, err)
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUpstreamStatus):
		return fmt.Errorf("%w: %w", ErrChatRejected, err)
	default:
		// transport failures: refused connection, timeout, cancelled context
		return fmt.Errorf("%w: %w", ErrChatUnavailable, err)
	}
}

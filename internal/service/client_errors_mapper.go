// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gym-client/internal/adapter"
)

// mapAdapterError tags the adapter's transport error with a service error.
// The original error stays in the chain, so the server message is still
// reachable through app.Message.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var sentinel error
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		sentinel = ErrSessionExpired
	case errors.Is(err, adapter.ErrConflict):
		sentinel = ErrEmailAlreadyUsed
	case errors.Is(err, adapter.ErrNotFound):
		sentinel = ErrNotFound
	case errors.Is(err, adapter.ErrPayloadTooLarge):
		sentinel = ErrAvatarRejected
	case errors.Is(err, adapter.ErrFileUnreadable):
		sentinel = ErrAvatarUnreadable
	default:
		return err
	}

	return fmt.Errorf("%w: %w", sentinel, err)
}

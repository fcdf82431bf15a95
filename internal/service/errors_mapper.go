// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-summary-news/internal/store"
)

// mapStoreError translates a store error into an auth business error.
// Unknown errors are returned unchanged.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrEmailAlreadyRegistered):
		return fmt.Errorf("%w: %w", ErrEmailAlreadyRegistered, err)
	case errors.Is(err, store.ErrNoUserWasFound):
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	return err
}

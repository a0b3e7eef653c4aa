// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-diary/internal/adapter"
	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error so the UI can match with errors.Is.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case ErrAllFieldsRequired.Error():
			return ErrAllFieldsRequired
		case ErrPasswordsDoNotMatch.Error():
			return ErrPasswordsDoNotMatch
		case ErrPasswordTooShort.Error():
			return ErrPasswordTooShort
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgTitleAndContentRequired:
			return ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidEmailOrPassword {
			return ErrWrongPassword
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrNoteNotFound

	case errors.Is(err, adapter.ErrConflict):
		return ErrEmailAlreadyTaken
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

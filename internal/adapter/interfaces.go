// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the diary server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the diary
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Signup or Login, or after restoring a persisted session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Signup sends a registration request. On success it stores the returned
	// bearer token via SetToken and returns the public user record together
	// with the token. Returns [ErrConflict] (wrapped) if the email is already
	// taken, [ErrBadRequest] (wrapped) if the server rejects the fields.
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)

	// Login authenticates with email and password. On success it stores the
	// returned bearer token via SetToken and returns the public user record
	// together with the token. Returns [ErrUnauthorized] (wrapped) on bad
	// credentials.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Logout tells the server to expire the auth cookie. The adapter keeps
	// its own token untouched; clearing client state is the caller's job.
	Logout(ctx context.Context) error

	// ListNotes fetches all notes of the authenticated user, newest first.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// GetNote fetches a single note by ID. Returns [ErrNotFound] (wrapped)
	// if the note does not exist or belongs to another user.
	GetNote(ctx context.Context, noteID int64) (models.Note, error)

	// CreateNote creates a note and returns the stored record with its
	// server-assigned ID and timestamps.
	CreateNote(ctx context.Context, req models.NoteRequest) (models.Note, error)

	// UpdateNote replaces the title and content of an existing note and
	// returns the updated record. Returns [ErrNotFound] (wrapped) if the note
	// does not exist or belongs to another user.
	UpdateNote(ctx context.Context, noteID int64, req models.NoteRequest) (models.Note, error)

	// DeleteNote removes a note. Returns [ErrNotFound] (wrapped) if the note
	// does not exist or belongs to another user.
	DeleteNote(ctx context.Context, noteID int64) error
}

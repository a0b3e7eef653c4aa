package service

import (
	"context"

	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
)

// ClientAuthService defines the client-side contract for account creation and
// session management. Implementations talk to the server through a
// [adapter.ServerAdapter] and persist the resulting session locally so it
// survives client restarts.
type ClientAuthService interface {
	// Signup creates a new account on the server, stores the issued bearer
	// token in the adapter, and persists the session locally.
	// Returns the saved session or an error wrapping [ErrSignupOnServer].
	Signup(ctx context.Context, req models.SignupRequest) (store.Session, error)

	// Login authenticates against the server, stores the issued bearer token
	// in the adapter, and persists the session locally.
	// Returns the saved session or an error wrapping [ErrLoginOnServer].
	Login(ctx context.Context, req models.LoginRequest) (store.Session, error)

	// Logout clears the local session, tells the server to expire its auth
	// cookie while the token is still set, and drops the adapter token on
	// every exit path. A failing server call never blocks the local logout.
	Logout(ctx context.Context) error

	// RestoreSession loads a previously persisted session and primes the
	// adapter with its token. Returns [store.ErrLocalSessionNotFound]
	// (wrapped) when no session is stored.
	RestoreSession(ctx context.Context) (store.Session, error)
}

// ClientNoteService defines the client-side contract for working with the
// authenticated user's notes. All operations go straight to the server; the
// client keeps no local note cache.
type ClientNoteService interface {
	// List returns all notes of the authenticated user, newest first.
	List(ctx context.Context) ([]models.Note, error)

	// Get returns a single note by ID.
	Get(ctx context.Context, noteID int64) (models.Note, error)

	// Create stores a new note on the server and returns the saved record
	// with its server-assigned ID and timestamps.
	Create(ctx context.Context, req models.NoteRequest) (models.Note, error)

	// Update replaces the title and content of an existing note and returns
	// the updated record.
	Update(ctx context.Context, noteID int64, req models.NoteRequest) (models.Note, error)

	// Delete removes a note permanently.
	Delete(ctx context.Context, noteID int64) error
}

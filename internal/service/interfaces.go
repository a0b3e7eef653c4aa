package service

import (
	"context"

	"github.com/MKhiriev/go-diary/models"
)

// AuthService implements signup, login and the session-token lifecycle.
type AuthService interface {
	SignupUser(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService implements owner-scoped CRUD over diary notes. The userID
// argument always comes from a verified token, never from request input.
type NoteService interface {
	CreateNote(ctx context.Context, userID int64, req models.NoteRequest) (models.Note, error)
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)
	GetNote(ctx context.Context, noteID, userID int64) (models.Note, error)
	UpdateNote(ctx context.Context, noteID, userID int64, req models.NoteRequest) (models.Note, error)
	DeleteNote(ctx context.Context, noteID, userID int64) error
}

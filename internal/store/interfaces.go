package store

import (
	"context"

	"github.com/MKhiriev/go-diary/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// NoteRepository persists diary notes. Every method except CreateNote takes
// the owning user id and scopes the underlying query to it, so a note that
// belongs to someone else behaves exactly like a note that does not exist.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNotesByUser(ctx context.Context, userID int64) ([]models.Note, error)
	GetNote(ctx context.Context, noteID, userID int64) (models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, noteID, userID int64) error
}

// ErrorClassificator decides whether a failed database operation was
// transient. Used for diagnostic logging only; no operation is retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

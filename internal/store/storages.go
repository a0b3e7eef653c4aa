package store

import (
	"github.com/MKhiriev/go-diary/internal/logger"
)

// Storages bundles all server-side repositories behind one construction
// point, so main wires a single value into the service layer.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		NoteRepository: NewNoteRepository(db, logger),
	}
}

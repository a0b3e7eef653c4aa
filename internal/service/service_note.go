package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
)

// noteService is the concrete implementation of NoteService. All ownership
// enforcement happens below it, in the repository's owner-scoped queries;
// this layer is responsible for input validation and error normalisation.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService backed by the given repository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// CreateNote validates the request and persists a new note owned by userID.
// Title and content are required and checked for truthiness only; trimming
// is left to callers.
func (n *noteService) CreateNote(ctx context.Context, userID int64, req models.NoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" || req.Content == "" {
		log.Error().Int64("user_id", userID).Msg("note create with missing title or content")
		return models.Note{}, ErrInvalidDataProvided
	}

	note := models.Note{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}

	created, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

// ListNotes returns every note owned by userID, most recently updated first.
// An empty diary is a valid, non-error result.
func (n *noteService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes, err := n.noteRepository.GetNotesByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing notes ended with error")
		return nil, fmt.Errorf("listing notes ended with error: %w", err)
	}

	return notes, nil
}

// GetNote fetches a single note by id, scoped to userID. Cross-user ids and
// absent ids are both store.ErrNoteNotFound.
func (n *noteService) GetNote(ctx context.Context, noteID, userID int64) (models.Note, error) {
	note, err := n.noteRepository.GetNote(ctx, noteID, userID)
	if err != nil {
		return models.Note{}, fmt.Errorf("getting note ended with error: %w", err)
	}

	return note, nil
}

// UpdateNote validates the request and overwrites title/content of the
// owner-scoped note, refreshing its update timestamp. A failed validation
// leaves the stored note untouched.
func (n *noteService) UpdateNote(ctx context.Context, noteID, userID int64, req models.NoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" || req.Content == "" {
		log.Error().Int64("note_id", noteID).Int64("user_id", userID).Msg("note update with missing title or content")
		return models.Note{}, ErrInvalidDataProvided
	}

	note := models.Note{
		NoteID:  noteID,
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}

	updated, err := n.noteRepository.UpdateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("note_id", noteID).Int64("user_id", userID).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteNote removes the owner-scoped note. No soft delete, no recovery;
// a second delete of the same id surfaces store.ErrNoteNotFound.
func (n *noteService) DeleteNote(ctx context.Context, noteID, userID int64) error {
	log := logger.FromContext(ctx)

	if err := n.noteRepository.DeleteNote(ctx, noteID, userID); err != nil {
		log.Err(err).Int64("note_id", noteID).Int64("user_id", userID).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}

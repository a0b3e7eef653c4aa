package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations against the "notes" table using the
// embedded [*DB] connection and squirrel-built queries.
//
// Every method that takes a note id also takes the owning user id and bakes
// both into the WHERE clause, so cross-user access never reaches the data:
// the query simply matches nothing and the caller sees [ErrNoteNotFound].
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote inserts a new note owned by note.UserID and returns the row as
// persisted. The database sets created_at and updated_at to the same NOW()
// value, so a fresh note always satisfies CreatedAt == UpdatedAt.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNoteQuery(note.UserID, note.Title, note.Content)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Note
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := scanNote(row, &created); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CreateNote").
			Int64("user_id", note.UserID).
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetNotesByUser retrieves every note owned by the given user, most recently
// updated first. An empty result is returned as an empty slice, not an error.
func (r *noteRepository) GetNotesByUser(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNotesByUser").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.GetNotesByUser").
			Int64("user_id", userID).
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)

	for rows.Next() {
		var note models.Note
		if scanErr := rows.Scan(&note.NoteID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*noteRepository.GetNotesByUser").
				Int64("user_id", userID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*noteRepository.GetNotesByUser").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// GetNote retrieves a single note by (noteID, userID). A note owned by a
// different user yields [ErrNoteNotFound], identical to a genuinely absent id.
func (r *noteRepository) GetNote(ctx context.Context, noteID, userID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := scanNote(row, &note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "*noteRepository.GetNote").
			Int64("note_id", noteID).
			Int64("user_id", userID).
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("error getting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// UpdateNote overwrites title and content of the note identified by
// (note.NoteID, note.UserID) and refreshes updated_at. Concurrent updates
// race with last-writer-wins semantics; there is no version check.
//
// Returns the updated row, or [ErrNoteNotFound] when the owner-scoped WHERE
// clause matched nothing.
func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(note.NoteID, note.UserID, note.Title, note.Content)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Note
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := scanNote(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "*noteRepository.UpdateNote").
			Int64("note_id", note.NoteID).
			Int64("user_id", note.UserID).
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("error updating note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteNote removes the note identified by (noteID, userID). Deleting an
// absent (or foreign) note yields [ErrNoteNotFound], which makes a repeated
// delete fail cleanly instead of silently succeeding.
func (r *noteRepository) DeleteNote(ctx context.Context, noteID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.DeleteNote").
			Int64("note_id", noteID).
			Int64("user_id", userID).
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("error deleting note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func scanNote(row *sql.Row, note *models.Note) error {
	return row.Scan(&note.NoteID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)
}

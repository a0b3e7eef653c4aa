package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
)

func newTestNoteRepo(t *testing.T) (*noteRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &noteRepository{
		DB:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func noteRows(notes ...models.Note) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"note_id", "user_id", "title", "content", "created_at", "updated_at"})
	for _, n := range notes {
		rows.AddRow(n.NoteID, n.UserID, n.Title, n.Content, n.CreatedAt, n.UpdatedAt)
	}
	return rows
}

func TestCreateNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	want := models.Note{NoteID: 1, UserID: 42, Title: "First entry", Content: "Dear diary", CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery("INSERT INTO notes").
		WithArgs(int64(42), "First entry", "Dear diary").
		WillReturnRows(noteRows(want))

	created, err := repo.CreateNote(ctx, models.Note{UserID: 42, Title: "First entry", Content: "Dear diary"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.NoteID != 1 {
		t.Errorf("expected NoteID=1, got %d", created.NoteID)
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Errorf("fresh note must have CreatedAt == UpdatedAt")
	}
}

func TestCreateNote_DBError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO notes").
		WillReturnError(errors.New("connection lost"))

	_, err := repo.CreateNote(ctx, models.Note{UserID: 42, Title: "t", Content: "c"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestGetNotesByUser_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	newer := models.Note{NoteID: 2, UserID: 42, Title: "Newer", Content: "b", CreatedAt: now, UpdatedAt: now}
	older := models.Note{NoteID: 1, UserID: 42, Title: "Older", Content: "a", CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour)}

	mock.ExpectQuery("SELECT note_id").
		WithArgs(int64(42)).
		WillReturnRows(noteRows(newer, older))

	notes, err := repo.GetNotesByUser(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].NoteID != 2 {
		t.Errorf("expected most recently updated note first, got note %d", notes[0].NoteID)
	}
}

func TestGetNotesByUser_Empty(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT note_id").
		WithArgs(int64(42)).
		WillReturnRows(noteRows())

	notes, err := repo.GetNotesByUser(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notes == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(notes) != 0 {
		t.Fatalf("expected 0 notes, got %d", len(notes))
	}
}

func TestGetNotesByUser_QueryError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT note_id").
		WithArgs(int64(42)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetNotesByUser(ctx, 42)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	want := models.Note{NoteID: 7, UserID: 42, Title: "Entry", Content: "text", CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery("SELECT note_id").
		WithArgs(int64(7), int64(42)).
		WillReturnRows(noteRows(want))

	note, err := repo.GetNote(ctx, 7, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.NoteID != 7 {
		t.Errorf("expected NoteID=7, got %d", note.NoteID)
	}
}

func TestGetNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT note_id").
		WithArgs(int64(7), int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetNote(ctx, 7, 42)
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

// A note owned by another user is indistinguishable from an absent one: the
// owner-scoped WHERE clause matches nothing.
func TestGetNote_ForeignUser(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT note_id").
		WithArgs(int64(7), int64(99)).
		WillReturnRows(noteRows())

	_, err := repo.GetNote(ctx, 7, 99)
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestUpdateNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	want := models.Note{NoteID: 7, UserID: 42, Title: "Renamed", Content: "new text", CreatedAt: now.Add(-time.Hour), UpdatedAt: now}

	mock.ExpectQuery("UPDATE notes").
		WithArgs("Renamed", "new text", int64(7), int64(42)).
		WillReturnRows(noteRows(want))

	updated, err := repo.UpdateNote(ctx, models.Note{NoteID: 7, UserID: 42, Title: "Renamed", Content: "new text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Errorf("expected title Renamed, got %s", updated.Title)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Errorf("expected UpdatedAt to move past CreatedAt")
	}
}

func TestUpdateNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE notes").
		WithArgs("t", "c", int64(7), int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateNote(ctx, models.Note{NoteID: 7, UserID: 42, Title: "t", Content: "c"})
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestDeleteNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteNote(ctx, 7, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteNote(ctx, 7, 42); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestDeleteNote_DBError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs(int64(7), int64(42)).
		WillReturnError(errors.New("db failure"))

	if err := repo.DeleteNote(ctx, 7, 42); !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

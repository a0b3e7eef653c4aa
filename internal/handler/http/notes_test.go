// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock NoteService
// ─────────────────────────────────────────────

type mockNoteService struct {
	createNoteFn func(ctx context.Context, userID int64, req models.NoteRequest) (models.Note, error)
	listNotesFn  func(ctx context.Context, userID int64) ([]models.Note, error)
	getNoteFn    func(ctx context.Context, noteID, userID int64) (models.Note, error)
	updateNoteFn func(ctx context.Context, noteID, userID int64, req models.NoteRequest) (models.Note, error)
	deleteNoteFn func(ctx context.Context, noteID, userID int64) error
}

func (m *mockNoteService) CreateNote(ctx context.Context, userID int64, req models.NoteRequest) (models.Note, error) {
	return m.createNoteFn(ctx, userID, req)
}

func (m *mockNoteService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	return m.listNotesFn(ctx, userID)
}

func (m *mockNoteService) GetNote(ctx context.Context, noteID, userID int64) (models.Note, error) {
	return m.getNoteFn(ctx, noteID, userID)
}

func (m *mockNoteService) UpdateNote(ctx context.Context, noteID, userID int64, req models.NoteRequest) (models.Note, error) {
	return m.updateNoteFn(ctx, noteID, userID, req)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, noteID, userID int64) error {
	return m.deleteNoteFn(ctx, noteID, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testUserID int64 = 1

// newNotesRouter wires a full router around the given NoteService mock.
// Requests go through the real middleware chain, so URL parameters and the
// bearer-token check behave exactly as in production; the auth service stub
// accepts any "Bearer valid-token" header as user 1.
func newNotesRouter(t *testing.T, notes service.NoteService) http.Handler {
	t.Helper()
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "valid-token" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: testUserID}, nil
		},
	}
	svcs := &service.Services{
		AuthService: auth,
		NoteService: notes,
	}
	return NewHandler(svcs, logger.Nop()).Init()
}

// authedNoteRequest builds a request carrying the stub bearer token.
func authedNoteRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer valid-token")
	return req
}

func noteFixture(noteID int64, title string) models.Note {
	ts := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	return models.Note{
		NoteID:    noteID,
		UserID:    testUserID,
		Title:     title,
		Content:   "content of " + title,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// ─────────────────────────────────────────────
// GET /api/notes
// ─────────────────────────────────────────────

func TestListNotes_Success(t *testing.T) {
	notes := []models.Note{noteFixture(2, "newer"), noteFixture(1, "older")}
	router := newNotesRouter(t, &mockNoteService{
		listNotesFn: func(_ context.Context, userID int64) ([]models.Note, error) {
			assert.Equal(t, testUserID, userID)
			return notes, nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedNoteRequest(http.MethodGet, "/api/notes", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	// ordering from the service is passed through untouched
	assert.Equal(t, int64(2), got[0].NoteID)
	assert.Equal(t, int64(1), got[1].NoteID)
}

func TestListNotes_Empty(t *testing.T) {
	router := newNotesRouter(t, &mockNoteService{
		listNotesFn: func(_ context.Context, _ int64) ([]models.Note, error) {
			return []models.Note{}, nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedNoteRequest(http.MethodGet, "/api/notes", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListNotes_NoToken(t *testing.T) {
	router := newNotesRouter(t, &mockNoteService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notes", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestListNotes_ServiceError(t *testing.T) {
	router := newNotesRouter(t, &mockNoteService{
		listNotesFn: func(_ context.Context, _ int64) ([]models.Note, error) {
			return nil, errors.New("connection reset by peer")
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedNoteRequest(http.MethodGet, "/api/notes", ""))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// POST /api/notes
// ─────────────────────────────────────────────

func TestCreateNote_Success(t *testing.T) {
	router := newNotesRouter(t, &mockNoteService{
		createNoteFn: func(_ context.Context, userID int64, req models.NoteRequest) (models.Note, error) {
			assert.Equal(t, testUserID, userID)
			note := noteFixture(7, req.Title)
			note.Content = req.Content
			return note, nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedNoteRequest(http.MethodPost, "/api/notes", `{"title":"Groceries","content":"milk, eggs"}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	var note models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	assert.Equal(t, int64(7), note.NoteID)
	assert.Equal(t, "Groceries", note.Title)
	assert.Equal(t, "milk, eggs", note.Content)
}

func TestCreateNote_InvalidJSON(t *testing.T) {
	router := newNotesRouter(t, &mockNoteService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedNoteRequest(http.MethodPost, "/api/notes", "{broken"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid JSON was passed"}`, rec.Body.String())
}

func TestCreateNote_MissingFields(t *testing.T) {
	router := newNotesRouter(t, &mockNoteService{
		createNoteFn: func(_ context.Context, _ int64, _ models.NoteRequest) (models.Note, error) {
			return models.Note{}, service.ErrInvalidDataProvided
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedNoteRequest(http.MethodPost, "/api/notes", `{"title":"","content":""}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"title and content are required"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// GET /api/notes/{id}
// ─────────────────────────────────────────────

func TestGetNote_Success(t *testing.T) {
	router := newNotesRouter(t, &mockNoteService{
		getNoteFn: func(_ context.Context, noteID, userID int64) (models.Note, error) {
			assert.Equal(t, int64(7), noteID)
			assert.Equal(t, testUserID, userID)
			return noteFixture(7, "found"), nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedNoteRequest(http.MethodGet, "/api/notes/7", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var note models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	assert.Equal(t, "found", note.Title)
}

// A note owned by another user surfaces exactly like a missing one.
func TestGetNote_NotFound(t *testing.T) {
	router := newNotesRouter(t, &mockNoteService{
		getNoteFn: func(_ context.Context, _, _ int64) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedNoteRequest(http.MethodGet, "/api/notes/404", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"note not found"}`, rec.Body.String())
}

// A malformed id never reaches the service and is reported as 404, the same
// as a nonexistent note.
func TestGetNote_MalformedID(t *testing.T) {
	router := newNotesRouter(t, &mockNoteService{
		getNoteFn: func(_ context.Context, _, _ int64) (models.Note, error) {
			t.Fatal("service must not be called for a malformed id")
			return models.Note{}, nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedNoteRequest(http.MethodGet, "/api/notes/not-a-number", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"note not found"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// PUT /api/notes/{id}
// ─────────────────────────────────────────────

func TestUpdateNote_Success(t *testing.T) {
	router := newNotesRouter(t, &mockNoteService{
		updateNoteFn: func(_ context.Context, noteID, userID int64, req models.NoteRequest) (models.Note, error) {
			assert.Equal(t, int64(7), noteID)
			assert.Equal(t, testUserID, userID)
			note := noteFixture(7, req.Title)
			note.Content = req.Content
			return note, nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedNoteRequest(http.MethodPut, "/api/notes/7", `{"title":"Renamed","content":"new text"}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var note models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	assert.Equal(t, "Renamed", note.Title)
}

func TestUpdateNote_MissingFields(t *testing.T) {
	router := newNotesRouter(t, &mockNoteService{
		updateNoteFn: func(_ context.Context, _, _ int64, _ models.NoteRequest) (models.Note, error) {
			return models.Note{}, service.ErrInvalidDataProvided
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedNoteRequest(http.MethodPut, "/api/notes/7", `{"title":"","content":""}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"title and content are required"}`, rec.Body.String())
}

func TestUpdateNote_NotFound(t *testing.T) {
	router := newNotesRouter(t, &mockNoteService{
		updateNoteFn: func(_ context.Context, _, _ int64, _ models.NoteRequest) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedNoteRequest(http.MethodPut, "/api/notes/404", `{"title":"t","content":"c"}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"note not found"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// DELETE /api/notes/{id}
// ─────────────────────────────────────────────

func TestDeleteNote_Success(t *testing.T) {
	router := newNotesRouter(t, &mockNoteService{
		deleteNoteFn: func(_ context.Context, noteID, userID int64) error {
			assert.Equal(t, int64(7), noteID)
			assert.Equal(t, testUserID, userID)
			return nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedNoteRequest(http.MethodDelete, "/api/notes/7", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"note deleted successfully"}`, rec.Body.String())
}

func TestDeleteNote_NotFound(t *testing.T) {
	router := newNotesRouter(t, &mockNoteService{
		deleteNoteFn: func(_ context.Context, _, _ int64) error {
			return store.ErrNoteNotFound
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedNoteRequest(http.MethodDelete, "/api/notes/404", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"note not found"}`, rec.Body.String())
}

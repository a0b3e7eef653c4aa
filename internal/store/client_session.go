package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
)

// ErrLocalSessionNotFound is returned by [SessionStore.LoadSession] when no
// session has been persisted yet (or it has been cleared by logout).
var ErrLocalSessionNotFound = errors.New("local session not found")

// Session is the client-held copy of the authenticated user and the bearer
// token. One copy lives in the adapter's memory for the lifetime of the
// process, this one survives restarts on disk.
type Session struct {
	UserID  int64
	Email   string
	Name    string
	Token   string
	SavedAt time.Time
}

//go:generate mockgen -source=client_session.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore persists the client session locally.
type SessionStore interface {
	SaveSession(ctx context.Context, session Session) error
	LoadSession(ctx context.Context) (Session, error)
	ClearSession(ctx context.Context) error
	Close() error
}

// sqliteSessionStore keeps the session in a single-row SQLite table next to
// the client executable. SQLite is overkill for one row, but gives atomic
// writes for free and matches how the rest of the store layer talks to
// databases.
type sqliteSessionStore struct {
	db     *sql.DB
	logger *logger.Logger
}

const createSessionTable = `
	CREATE TABLE IF NOT EXISTS session (
		id       INTEGER PRIMARY KEY CHECK (id = 1),
		user_id  INTEGER NOT NULL,
		email    TEXT    NOT NULL,
		name     TEXT    NOT NULL,
		token    TEXT    NOT NULL,
		saved_at TIMESTAMP NOT NULL
	);`

// NewSessionStore opens (creating if necessary) the local session database
// and ensures its schema exists.
func NewSessionStore(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (SessionStore, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewSessionStore").Msg("error creating session database file")
		return nil, fmt.Errorf("error creating session database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewSessionStore").Msg("error opening session database")
		return nil, fmt.Errorf("error opening session database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, createSessionTable); err != nil {
		log.Err(err).Str("func", "NewSessionStore").Msg("error creating session table")
		return nil, fmt.Errorf("error creating session table: %w", err)
	}

	return &sqliteSessionStore{db: conn, logger: log}, nil
}

// SaveSession upserts the single session row.
func (s *sqliteSessionStore) SaveSession(ctx context.Context, session Session) error {
	const upsert = `
		INSERT INTO session (id, user_id, email, name, token, saved_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET user_id = excluded.user_id,
		    email = excluded.email,
		    name = excluded.name,
		    token = excluded.token,
		    saved_at = excluded.saved_at;`

	if _, err := s.db.ExecContext(ctx, upsert, session.UserID, session.Email, session.Name, session.Token, time.Now()); err != nil {
		s.logger.Err(err).Str("func", "*sqliteSessionStore.SaveSession").Msg("error saving session")
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

// LoadSession returns the persisted session or [ErrLocalSessionNotFound].
// Token expiry is not checked here: the server is the authority, and an
// expired token will simply bounce with 401 on first use.
func (s *sqliteSessionStore) LoadSession(ctx context.Context) (Session, error) {
	const query = `SELECT user_id, email, name, token, saved_at FROM session WHERE id = 1;`

	var session Session
	row := s.db.QueryRowContext(ctx, query)
	if err := row.Scan(&session.UserID, &session.Email, &session.Name, &session.Token, &session.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrLocalSessionNotFound
		}
		s.logger.Err(err).Str("func", "*sqliteSessionStore.LoadSession").Msg("error loading session")
		return Session{}, fmt.Errorf("error loading session: %w", err)
	}

	return session, nil
}

// ClearSession removes the session row. Clearing an already-empty store is
// not an error: logout must always succeed locally.
func (s *sqliteSessionStore) ClearSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1;`); err != nil {
		s.logger.Err(err).Str("func", "*sqliteSessionStore.ClearSession").Msg("error clearing session")
		return fmt.Errorf("error clearing session: %w", err)
	}

	return nil
}

func (s *sqliteSessionStore) Close() error {
	return s.db.Close()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// User queries are static, so they are kept as plain constants.
const (
	createUser = `INSERT INTO users (email, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, name, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, name, password_hash, created_at
    FROM users
    WHERE email = $1;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// dollar placeholders. Note queries are built with it so that the
// owner-scoping predicate is expressed once per builder, not copy-pasted
// into string literals.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var noteColumns = []string{"note_id", "user_id", "title", "content", "created_at", "updated_at"}

func buildCreateNoteQuery(userID int64, title, content string) (string, []any, error) {
	return psql.Insert("notes").
		Columns("user_id", "title", "content").
		Values(userID, title, content).
		Suffix("RETURNING note_id, user_id, title, content, created_at, updated_at").
		ToSql()
}

// buildListNotesQuery orders by last-update time descending so the most
// recently touched note comes first; creation time breaks ties between
// notes updated within the same timestamp resolution.
func buildListNotesQuery(userID int64) (string, []any, error) {
	return psql.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC", "created_at DESC").
		ToSql()
}

func buildGetNoteQuery(noteID, userID int64) (string, []any, error) {
	return psql.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"note_id": noteID, "user_id": userID}).
		ToSql()
}

func buildUpdateNoteQuery(noteID, userID int64, title, content string) (string, []any, error) {
	return psql.Update("notes").
		Set("title", title).
		Set("content", content).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"note_id": noteID, "user_id": userID}).
		Suffix("RETURNING note_id, user_id, title, content, created_at, updated_at").
		ToSql()
}

func buildDeleteNoteQuery(noteID, userID int64) (string, []any, error) {
	return psql.Delete("notes").
		Where(sq.Eq{"note_id": noteID, "user_id": userID}).
		ToSql()
}

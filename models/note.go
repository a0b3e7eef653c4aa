package models

import "time"

// Note is a single diary entry owned by exactly one user.
//
// Content is opaque text: it may contain markup, but the server never parses
// or interprets it. Visibility is enforced through owner-scoped lookups:
// a note is never listed, fetched, updated or deleted across user boundaries.
type Note struct {
	// NoteID is the internal unique identifier of the note.
	// Assigned by the database on creation.
	NoteID int64 `json:"id"`

	// UserID is the identifier of the owning user.
	// Immutable after creation; never settable by API callers.
	UserID int64 `json:"user_id"`

	// Title is a required, non-empty heading of the entry.
	Title string `json:"title"`

	// Content is the required, non-empty body of the entry.
	// Stored and returned verbatim.
	Content string `json:"content"`

	// CreatedAt is set once at insert time.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt equals CreatedAt at insert time and is refreshed on every
	// successful update. Listing orders by this field, descending.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

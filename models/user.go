package models

import "time"

// User represents a diary account used for authentication and note ownership.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the database on signup.
	UserID int64 `json:"id"`

	// Email is the unique identifier the user signs up and logs in with.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a one-way hash, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user stripped down to the fields that are
// safe to return to API callers: id, email and name.
func (u User) Public() User {
	return User{UserID: u.UserID, Email: u.Email, Name: u.Name}
}

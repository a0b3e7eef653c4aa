package service

import "errors"

// Errors returned by the client-side services.
var (
	// ErrSignupOnServer wraps any failure of the remote signup call.
	ErrSignupOnServer = errors.New("signup on server failed")

	// ErrLoginOnServer wraps any failure of the remote login call.
	ErrLoginOnServer = errors.New("login on server failed")

	// ErrEmailAlreadyTaken is surfaced when the server rejects a signup
	// because the email is already registered.
	ErrEmailAlreadyTaken = errors.New("user already exists")
)

package service

import "errors"

// Validation errors returned by the auth and note services. Their messages
// are part of the API contract: handlers surface them verbatim in the JSON
// error body.
var (
	// ErrAllFieldsRequired is returned by signup when any of the four
	// required fields is missing. Checked first; first failure wins.
	ErrAllFieldsRequired = errors.New("all fields are required")

	// ErrPasswordsDoNotMatch is returned by signup when password and its
	// confirmation differ.
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")

	// ErrPasswordTooShort is returned by signup when the password is
	// shorter than six characters.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrInvalidDataProvided is returned when a note create/update request
	// is missing its title or content, or when login input is incomplete.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)

// Authentication errors.
var (
	// ErrWrongPassword is returned by login when the supplied password does
	// not match the stored hash. Handlers must present it identically to an
	// unknown email, never disclosing which check failed.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenCreationFailed wraps low-level JWT signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the single normalised verification
	// failure: expired, bad signature, malformed payload and wrong issuer
	// all collapse into it so callers cannot distinguish the reasons.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

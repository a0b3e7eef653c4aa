// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// diary server handlers and the terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API and
// lets the client map server responses back to business errors.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a request fails basic
	// validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailOrPassword is returned when the supplied email/password
	// combination does not match any existing user record. Unknown emails and
	// wrong passwords are deliberately indistinguishable.
	MsgInvalidEmailOrPassword = "invalid email or password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTitleAndContentRequired is returned when a note create or update
	// request is missing the title or the content.
	MsgTitleAndContentRequired = "title and content are required"

	// MsgLoggedOut confirms that the auth cookie has been expired.
	MsgLoggedOut = "logged out successfully"

	// MsgNoteDeleted confirms a successful note deletion.
	MsgNoteDeleted = "note deleted successfully"
)

package models

// SignupRequest is the JSON body of POST /api/auth/signup.
// All four fields are required; validation order and messages are part of
// the API contract (first failure wins).
type SignupRequest struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NoteRequest is the JSON body of POST /api/notes and PUT /api/notes/{id}.
// Both fields are required and must be non-empty. The server checks
// truthiness only; trimming is the caller's concern.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AuthResponse is returned by signup and login: the public part of the user
// record plus a freshly issued bearer token.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// MessageResponse is the generic success body for operations that return
// a confirmation message rather than a resource (logout, note delete).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform JSON error body: {"error": "<message>"}.
// The message is safe to show to API callers; details stay in server logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

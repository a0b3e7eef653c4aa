package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
)

// authCookieName is the cookie mirroring the bearer token on the client
// side. The cookie is deliberately NOT HttpOnly so that browser clients can
// read it from script and duplicate it into local storage. A known weakness,
// kept on purpose rather than fixed silently; see DESIGN.md.
const (
	authCookieName   = "authToken"
	authCookieMaxAge = 7 * 24 * 60 * 60 // seconds; matches the token lifetime
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.SignupUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAllFieldsRequired),
			errors.Is(err, service.ErrPasswordsDoNotMatch),
			errors.Is(err, service.ErrPasswordTooShort):
			log.Err(err).Msg("signup validation failed")
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteJSONError(w, store.ErrEmailAlreadyExists.Error(), http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			utils.WriteJSONError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	setAuthCookie(w, token.SignedString, authCookieMaxAge)
	utils.WriteJSON(w, models.AuthResponse{
		User:  registeredUser.Public(),
		Token: token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, service.ErrInvalidDataProvided.Error(), http.StatusBadRequest)
			return
		// an unknown email and a wrong password are presented identically
		case errors.Is(err, store.ErrNoUserWasFound), errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			utils.WriteJSONError(w, app.MsgInvalidEmailOrPassword, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteJSONError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	setAuthCookie(w, token.SignedString, authCookieMaxAge)
	utils.WriteJSON(w, models.AuthResponse{
		User:  foundUser.Public(),
		Token: token.SignedString,
	}, http.StatusOK)
}

// logout expires the auth cookie and reports success unconditionally.
// Tokens are stateless and not revoked server-side: an already-issued token
// stays valid until its natural expiry.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	setAuthCookie(w, "", -1)
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

func setAuthCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: false, // script-readable on purpose
		SameSite: http.SameSiteLaxMode,
	})
}

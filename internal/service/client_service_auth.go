package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/adapter"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
)

type clientAuthService struct {
	sessions store.SessionStore
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
}

func NewClientAuthService(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Signup(ctx context.Context, req models.SignupRequest) (store.Session, error) {
	auth, err := a.adapter.Signup(ctx, req)
	if err != nil {
		if mapped := mapAdapterError(err); mapped != err {
			return store.Session{}, mapped
		}
		return store.Session{}, fmt.Errorf("%w: %v", ErrSignupOnServer, err)
	}

	return a.saveSession(ctx, auth)
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (store.Session, error) {
	auth, err := a.adapter.Login(ctx, req)
	if err != nil {
		if mapped := mapAdapterError(err); mapped != err {
			return store.Session{}, mapped
		}
		return store.Session{}, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	return a.saveSession(ctx, auth)
}

// Logout clears local state first: the user must end up logged out even when
// the server is unreachable.
func (a *clientAuthService) Logout(ctx context.Context) error {
	// the in-memory token is dropped on every exit path: the UI treats
	// logout as done no matter what failed below
	defer a.adapter.SetToken("")

	if err := a.sessions.ClearSession(ctx); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Logout").Msg("error clearing local session")
		return fmt.Errorf("error clearing local session: %w", err)
	}
	if err := a.adapter.Logout(ctx); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Logout").Msg("server logout failed, local session already cleared")
	}

	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (store.Session, error) {
	session, err := a.sessions.LoadSession(ctx)
	if err != nil {
		return store.Session{}, fmt.Errorf("error restoring session: %w", err)
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) saveSession(ctx context.Context, auth models.AuthResponse) (store.Session, error) {
	session := store.Session{
		UserID: auth.User.UserID,
		Email:  auth.User.Email,
		Name:   auth.User.Name,
		Token:  auth.Token,
	}

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		// the server-side login already succeeded; keep going with the
		// in-memory token and let the next restart ask for credentials again
		a.logger.Err(err).Str("func", "*clientAuthService.saveSession").Msg("error persisting session")
	}

	return session, nil
}

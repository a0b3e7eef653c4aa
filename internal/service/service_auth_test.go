// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, email string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, email)
	}
	return models.User{}, nil
}

func newTestAuthService(repo *mockUserRepository) *authService {
	return &authService{
		userRepository: repo,
		tokenSignKey:   "test-sign-key",
		tokenIssuer:    "go-diary-test",
		tokenDuration:  time.Hour,
		logger:         logger.Nop(),
	}
}

func validSignup() models.SignupRequest {
	return models.SignupRequest{
		Email:           "alice@example.com",
		Name:            "Alice",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

// ─────────────────────────────────────────────
// SignupUser
// ─────────────────────────────────────────────

func TestAuthService_SignupUser_Success(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.SignupUser(context.Background(), validSignup())
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "alice@example.com", user.Email)

	// the stored hash must verify against the original password
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
}

func TestAuthService_SignupUser_MissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name   string
		mutate func(*models.SignupRequest)
	}{
		{"no email", func(r *models.SignupRequest) { r.Email = "" }},
		{"no name", func(r *models.SignupRequest) { r.Name = "" }},
		{"no password", func(r *models.SignupRequest) { r.Password = "" }},
		{"no confirmation", func(r *models.SignupRequest) { r.ConfirmPassword = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(&req)

			_, err := svc.SignupUser(context.Background(), req)
			assert.ErrorIs(t, err, ErrAllFieldsRequired)
		})
	}
}

// Validation order: a missing field wins over a password mismatch, a
// mismatch wins over a short password.
func TestAuthService_SignupUser_ValidationOrder(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	req := validSignup()
	req.Name = ""
	req.ConfirmPassword = "different"
	_, err := svc.SignupUser(context.Background(), req)
	assert.ErrorIs(t, err, ErrAllFieldsRequired)

	req = validSignup()
	req.Password = "abc"
	req.ConfirmPassword = "xyz"
	_, err = svc.SignupUser(context.Background(), req)
	assert.ErrorIs(t, err, ErrPasswordsDoNotMatch)
}

func TestAuthService_SignupUser_PasswordTooShort(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	req := validSignup()
	req.Password = "12345"
	req.ConfirmPassword = "12345"

	_, err := svc.SignupUser(context.Background(), req)
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestAuthService_SignupUser_EmailTaken(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.SignupUser(context.Background(), validSignup())
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 1, Email: email, Name: "Alice", PasswordHash: string(hash)}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := &mockUserRepository{
		findFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 1, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	other := newTestAuthService(&mockUserRepository{})
	other.tokenSignKey = "different-key"

	_, err = other.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	svc.tokenDuration = -time.Hour
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

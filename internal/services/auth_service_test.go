package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskhub_backend/internal/auth"
	"taskhub_backend/internal/models"
	"taskhub_backend/internal/repositories"
	"taskhub_backend/internal/services/dto"
	"taskhub_backend/pkg/apperrors"
)

// stubUserRepo is an in-memory UserRepository keyed by email. It ignores
// the *gorm.DB argument entirely.
type stubUserRepo struct {
	repositories.UserRepository
	users map[string]*models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*models.User{}}
}

func (r *stubUserRepo) Create(_ *gorm.DB, user *models.User) error {
	if _, ok := r.users[user.Email]; ok {
		return repositories.ErrUserAlreadyExists
	}
	user.ID = "id-" + user.Email
	user.CreatedAt = time.Now()
	r.users[user.Email] = user
	return nil
}

func (r *stubUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *stubUserRepo) SetResetToken(_ *gorm.DB, userID, token string, expiry time.Time) error {
	for _, u := range r.users {
		if u.ID == userID {
			u.ResetToken = token
			u.ResetTokenExp = &expiry
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *stubUserRepo) ConsumeResetToken(_ *gorm.DB, token, newPasswordHash string) error {
	for _, u := range r.users {
		if u.ResetToken == token && token != "" &&
			u.ResetTokenExp != nil && u.ResetTokenExp.After(time.Now()) {
			u.PasswordHash = newPasswordHash
			u.ResetToken = ""
			u.ResetTokenExp = nil
			return nil
		}
	}
	return repositories.ErrTokenInvalid
}

func (r *stubUserRepo) ConsumeActivationToken(_ *gorm.DB, token string) error {
	for _, u := range r.users {
		if u.ActivationToken == token && token != "" {
			u.IsActive = true
			u.ActivationToken = ""
			return nil
		}
	}
	return repositories.ErrTokenInvalid
}

func newTestAuthService(repo repositories.UserRepository) AuthService {
	tokens := auth.NewTokenManager("service-test-secret", 60)
	return NewAuthService(repo, nil, tokens, "http://localhost:3000")
}

func TestRegisterNormalizesEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(nil, &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "  Alice@Example.COM ",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.IsActive)

	stored := repo.users["alice@example.com"]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.ActivationToken)
	assert.NotEqual(t, "secret123", stored.PasswordHash, "password must be stored hashed")
}

func TestRegisterConflict(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(nil, &dto.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(nil, &dto.RegisterRequest{Name: "B", Email: "A@EXAMPLE.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, err := svc.Register(nil, &dto.RegisterRequest{Name: "A", Email: "a@example.com", Password: "12345"})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(nil, &dto.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	// Unknown email, wrong password and unverified account all return the
	// exact same error value.
	_, unknownErr := svc.Login(nil, &dto.LoginRequest{Email: "ghost@example.com", Password: "secret123"})
	_, wrongPassErr := svc.Login(nil, &dto.LoginRequest{Email: "a@example.com", Password: "wrong-pass"})
	_, inactiveErr := svc.Login(nil, &dto.LoginRequest{Email: "a@example.com", Password: "secret123"})

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, inactiveErr, apperrors.ErrInvalidCredentials)
}

func TestVerifyThenLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(nil, &dto.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	token := repo.users["a@example.com"].ActivationToken
	require.NoError(t, svc.VerifyAccount(nil, token))

	// Single use.
	assert.ErrorIs(t, svc.VerifyAccount(nil, token), apperrors.ErrInvalidToken)
	assert.ErrorIs(t, svc.VerifyAccount(nil, ""), apperrors.ErrInvalidToken)

	response, err := svc.Login(nil, &dto.LoginRequest{Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.Equal(t, "a@example.com", response.User.Email)
}

func TestRequestPasswordResetSilentOnUnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	assert.NoError(t, svc.RequestPasswordReset(nil, "ghost@example.com"))

	_, err := svc.Register(nil, &dto.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(nil, "A@example.com"))

	stored := repo.users["a@example.com"]
	assert.NotEmpty(t, stored.ResetToken)
	require.NotNil(t, stored.ResetTokenExp)
	assert.WithinDuration(t, time.Now().Add(resetTokenTTL), *stored.ResetTokenExp, time.Minute)
}

func TestResetPasswordConsumesToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(nil, &dto.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NoError(t, svc.RequestPasswordReset(nil, "a@example.com"))

	token := repo.users["a@example.com"].ResetToken
	require.NoError(t, svc.ResetPassword(nil, token, "newpassword"))

	stored := repo.users["a@example.com"]
	assert.True(t, auth.CheckPasswordHash("newpassword", stored.PasswordHash))
	assert.Empty(t, stored.ResetToken, "consumed token is cleared")

	// Single use: replaying the consumed token fails.
	assert.ErrorIs(t, svc.ResetPassword(nil, token, "yet-another"), apperrors.ErrInvalidToken)
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(nil, &dto.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NoError(t, svc.RequestPasswordReset(nil, "a@example.com"))

	stored := repo.users["a@example.com"]
	token := stored.ResetToken
	expired := time.Now().Add(-time.Minute)
	stored.ResetTokenExp = &expired

	// The token string still matches; expiry alone must reject it.
	assert.ErrorIs(t, svc.ResetPassword(nil, token, "newpassword"), apperrors.ErrInvalidToken)
	assert.True(t, auth.CheckPasswordHash("secret123", stored.PasswordHash), "password is unchanged")
}

func TestResetPasswordRejectsBadInput(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	assert.ErrorIs(t, svc.ResetPassword(nil, "", "newpassword"), apperrors.ErrInvalidToken)
	assert.ErrorIs(t, svc.ResetPassword(nil, "unknown-token", "12345"), apperrors.ErrWeakPassword)
	assert.ErrorIs(t, svc.ResetPassword(nil, "unknown-token", "longenough"), apperrors.ErrInvalidToken)
}

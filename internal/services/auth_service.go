package services

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"taskhub_backend/internal/auth"
	"taskhub_backend/internal/email"
	"taskhub_backend/internal/logger"
	"taskhub_backend/internal/models"
	"taskhub_backend/internal/repositories"
	"taskhub_backend/internal/services/dto"
	"taskhub_backend/pkg/apperrors"
)

// resetTokenTTL bounds how long a password-reset link stays usable.
const resetTokenTTL = 1 * time.Hour

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserDTO, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	VerifyAccount(db *gorm.DB, token string) error
	RequestPasswordReset(db *gorm.DB, emailAddr string) error
	ResetPassword(db *gorm.DB, token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	tokens        *auth.TokenManager
	publicURL     string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	tokens *auth.TokenManager,
	publicURL string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		tokens:        tokens,
		publicURL:     strings.TrimRight(publicURL, "/"),
	}
}

// NormalizeEmail fixes the email case policy for the whole application:
// addresses are compared and stored lowercased, so uniqueness is
// effectively case-insensitive.
func NormalizeEmail(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// Register creates an inactive account and kicks off email verification.
// The account is persisted first; a failed verification send is logged
// and never rolls the registration back.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserDTO, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	activationToken := auth.GenerateSecureToken()

	user := &models.User{
		Name:            strings.TrimSpace(req.Name),
		Email:           NormalizeEmail(req.Email),
		PasswordHash:    hashedPassword,
		Role:            models.UserRoleUser,
		IsActive:        false,
		ActivationToken: activationToken,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendVerificationEmail(user.Email, user.Name, activationToken)

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

// Login authenticates by email+password. Unknown email, wrong password
// and a not-yet-verified account are deliberately indistinguishable: all
// collapse into ErrInvalidCredentials so responses cannot be used to
// probe which emails are registered.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, NormalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Generate(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		User:        dto.NewUserDTO(user),
	}, nil
}

// VerifyAccount consumes an activation token: the account flips to active
// and the token is cleared in one atomic update, so a second call with
// the same token fails.
func (s *AuthServiceImpl) VerifyAccount(db *gorm.DB, token string) error {
	if token == "" {
		return apperrors.ErrInvalidToken
	}

	if err := s.userRepo.ConsumeActivationToken(db, token); err != nil {
		if apperrors.Is(err, repositories.ErrTokenInvalid) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// RequestPasswordReset stores a fresh reset token and emails the link.
// It reports success whether or not the email exists; only a genuine
// storage failure surfaces, and the caller's handler still answers 200.
func (s *AuthServiceImpl) RequestPasswordReset(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, NormalizeEmail(emailAddr))
	if err != nil {
		// Unknown email: silently succeed.
		return nil
	}

	resetToken := auth.GenerateSecureToken()
	expiry := time.Now().Add(resetTokenTTL)

	if err := s.userRepo.SetResetToken(db, user.ID, resetToken, expiry); err != nil {
		return apperrors.InternalError(err)
	}

	s.sendPasswordResetEmail(user.Email, resetToken)
	return nil
}

// ResetPassword consumes a reset token. Token match and expiry check
// happen in the same atomic update that replaces the hash and clears the
// token, so an expired or already-used token always comes back as
// ErrInvalidToken — including the loser of a racing double submit.
func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, token, newPassword string) error {
	if token == "" {
		return apperrors.ErrInvalidToken
	}
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.ConsumeResetToken(db, token, hashedPassword); err != nil {
		if apperrors.Is(err, repositories.ErrTokenInvalid) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) sendVerificationEmail(to, name, token string) {
	if s.emailProvider == nil {
		return
	}

	verifyURL := fmt.Sprintf("%s/auth/verify/%s", s.publicURL, token)
	go func() {
		if err := s.emailProvider.SendVerification(to, name, verifyURL); err != nil {
			logger.Error("Failed to send verification email", "error", err, "to", to)
		}
	}()
}

func (s *AuthServiceImpl) sendPasswordResetEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.publicURL, token)
	go func() {
		if err := s.emailProvider.SendPasswordReset(to, resetURL); err != nil {
			logger.Error("Failed to send password reset email", "error", err, "to", to)
		}
	}()
}

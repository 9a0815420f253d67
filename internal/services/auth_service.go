package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ourkidney/api-backend/internal/crypto"
	"github.com/ourkidney/api-backend/internal/models"
	"github.com/ourkidney/api-backend/internal/repositories"
	"github.com/sirupsen/logrus"
)

// ResetTokenExpiration is how long a password-reset token stays valid.
const ResetTokenExpiration = time.Hour

// Mailer sends the transactional emails the auth flows depend on.
// It is an interface so tests can substitute a recorder for the SES
// transport.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to string, resetURL string) error
	SendContactMessage(ctx context.Context, to string, name, fromEmail, subject, message string) error
}

// AuthService handles the business logic for admin authentication:
// login, session validation, the password-reset lifecycle, and
// account-settings changes.
type AuthService struct {
	adminRepo *repositories.AdminRepository
	mailer    Mailer
	jwtSecret string
	baseURL   string
}

// AuthConfig holds configuration for the auth service
type AuthConfig struct {
	// JWTSecret signs session tokens. The service refuses to construct
	// without one so a missing secret is a startup failure, not a
	// runtime surprise.
	JWTSecret string
	// BaseURL is the public site origin used to build reset links,
	// e.g. "https://example.org"
	BaseURL string
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	adminRepo *repositories.AdminRepository,
	mailer Mailer,
	config *AuthConfig,
) (*AuthService, error) {
	if adminRepo == nil {
		return nil, fmt.Errorf("admin repository is required")
	}
	if mailer == nil {
		return nil, fmt.Errorf("mailer is required")
	}
	if config == nil {
		return nil, fmt.Errorf("auth config is required")
	}
	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if config.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	return &AuthService{
		adminRepo: adminRepo,
		mailer:    mailer,
		jwtSecret: config.JWTSecret,
		baseURL:   config.BaseURL,
	}, nil
}

// Login verifies the email/password pair and issues a session token.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (token string, expiresAt time.Time, err error) {
	admin, err := s.adminRepo.FindByEmail(email)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	if !crypto.CheckPassword(admin.PasswordHash, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err = crypto.GenerateSessionJWT(admin.ID, admin.Email, s.jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	return token, expiresAt, nil
}

// ValidateToken verifies a session token string.
// This is used by the session-gate middleware on every admin request.
func (s *AuthService) ValidateToken(tokenString string) (*crypto.SessionClaims, error) {
	claims, err := crypto.VerifySessionJWT(tokenString, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	return claims, nil
}

// RequestPasswordReset runs the request phase of the reset flow:
// generate an opaque token, persist it with a 1-hour expiry (overwriting
// any prior token, so the newest request wins), then email the reset link.
//
// An unknown email is NOT an error to the caller: the response is the same
// whether or not the account exists, to avoid account enumeration. The
// miss is only logged server-side.
//
// The token is persisted before the send is attempted. If delivery fails
// the token stays in place and ErrDeliveryFailure is returned; the next
// request simply overwrites it.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	admin, err := s.adminRepo.FindByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		logrus.WithField("email", email).Info("Password reset requested for unknown email")
		return nil
	}

	token, err := crypto.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiry := time.Now().UTC().Add(ResetTokenExpiration)
	if err := s.adminRepo.SetResetToken(admin.ID, token, expiry); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.baseURL, token)
	if err := s.mailer.SendPasswordReset(ctx, admin.Email, resetURL); err != nil {
		logrus.WithError(err).Error("Failed to send password reset email")
		return fmt.Errorf("%w: %v", ErrDeliveryFailure, err)
	}

	logrus.WithField("email", admin.Email).Info("Password reset email sent")
	return nil
}

// ResetPassword runs the consume phase of the reset flow. The token must
// match a stored reset token whose expiry is still in the future; the
// update clears the token pair so a retry with the same token fails.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	if newPassword == "" {
		return ErrInvalidOrExpiredToken
	}

	admin, err := s.adminRepo.FindByValidResetToken(token, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to look up reset token: %w", err)
	}
	if admin == nil {
		return ErrInvalidOrExpiredToken
	}

	hash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.adminRepo.ResetPassword(admin.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	logrus.WithField("email", admin.Email).Info("Password reset completed")
	return nil
}

// GetAdmin returns the admin row referenced by a verified session.
func (s *AuthService) GetAdmin(id uint) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}

	return admin, nil
}

// ChangeEmail updates the login email after re-verifying the current
// password.
func (s *AuthService) ChangeEmail(id uint, newEmail, currentPassword string) error {
	admin, err := s.adminRepo.FindByID(id)
	if err != nil {
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		return ErrAdminNotFound
	}

	if !crypto.CheckPassword(admin.PasswordHash, currentPassword) {
		return ErrInvalidCredentials
	}

	if err := s.adminRepo.UpdateEmail(admin.ID, newEmail); err != nil {
		return fmt.Errorf("failed to update email: %w", err)
	}

	logrus.WithField("email", newEmail).Info("Admin login email changed")
	return nil
}

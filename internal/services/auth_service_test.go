package services

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/ourkidney/api-backend/internal/crypto"
	"github.com/ourkidney/api-backend/internal/models"
	"github.com/ourkidney/api-backend/internal/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubMailer records sent mail instead of talking to SES
type stubMailer struct {
	resetTo   []string
	resetURLs []string
	failSend  bool
}

func (m *stubMailer) SendPasswordReset(_ context.Context, to string, resetURL string) error {
	if m.failSend {
		return errors.New("smtp boom")
	}
	m.resetTo = append(m.resetTo, to)
	m.resetURLs = append(m.resetURLs, resetURL)
	return nil
}

func (m *stubMailer) SendContactMessage(_ context.Context, _ string, _, _, _, _ string) error {
	if m.failSend {
		return errors.New("smtp boom")
	}
	return nil
}

// newTestAuthService builds an auth service over an in-memory database
// with one seeded admin account
func newTestAuthService(t *testing.T) (*AuthService, *repositories.AdminRepository, *stubMailer, *models.Admin) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	adminRepo := repositories.NewAdminRepository(db)
	hash, err := crypto.HashPassword("correct")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	admin := &models.Admin{Email: "admin@example.com", PasswordHash: hash}
	if err := adminRepo.Create(admin); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	mailer := &stubMailer{}
	svc, err := NewAuthService(adminRepo, mailer, &AuthConfig{
		JWTSecret: "unit-test-secret",
		BaseURL:   "https://example.org",
	})
	if err != nil {
		t.Fatalf("NewAuthService() error = %v", err)
	}

	return svc, adminRepo, mailer, admin
}

// TestNewAuthService_MissingSecret tests the fail-fast startup condition
func TestNewAuthService_MissingSecret(t *testing.T) {
	_, err := NewAuthService(nil, nil, nil)
	if err == nil {
		t.Fatal("expected error for nil dependencies, got nil")
	}

	svc, adminRepo, mailer, _ := newTestAuthService(t)
	_ = svc

	if _, err := NewAuthService(adminRepo, mailer, &AuthConfig{JWTSecret: "", BaseURL: "https://example.org"}); err == nil {
		t.Error("expected error for empty JWT secret, got nil")
	}
	if _, err := NewAuthService(adminRepo, mailer, &AuthConfig{JWTSecret: "s", BaseURL: ""}); err == nil {
		t.Error("expected error for empty base URL, got nil")
	}
}

// TestAuthService_Login tests credential verification and token issuance
func TestAuthService_Login(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	token, expiresAt, err := svc.Login("admin@example.com", "correct")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Fatal("Login() returned empty token")
	}

	wantExpiry := time.Now().UTC().Add(crypto.SessionJWTExpiration)
	if diff := expiresAt.Sub(wantExpiry); diff > 5*time.Second || diff < -5*time.Second {
		t.Errorf("expiresAt = %v, want ~%v", expiresAt, wantExpiry)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("claims.Email = %s, want admin@example.com", claims.Email)
	}
}

// TestAuthService_Login_InvalidCredentials tests that unknown email and
// wrong password are indistinguishable
func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	_, _, errWrongPassword := svc.Login("admin@example.com", "wrong")
	_, _, errUnknownEmail := svc.Login("nobody@example.com", "correct")

	if !errors.Is(errWrongPassword, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", errWrongPassword)
	}
	if !errors.Is(errUnknownEmail, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", errUnknownEmail)
	}
	if errWrongPassword.Error() != errUnknownEmail.Error() {
		t.Error("wrong-password and unknown-email errors differ; enables account enumeration")
	}
}

// TestAuthService_ValidateToken_Rejections tests the session gate inputs
func TestAuthService_ValidateToken_Rejections(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	if _, err := svc.ValidateToken("garbage"); err == nil {
		t.Error("expected error for malformed token, got nil")
	}

	otherSecret, _, err := crypto.GenerateSessionJWT(1, "admin@example.com", "a-different-secret")
	if err != nil {
		t.Fatalf("GenerateSessionJWT() error = %v", err)
	}
	if _, err := svc.ValidateToken(otherSecret); err == nil {
		t.Error("expected error for token signed with different secret, got nil")
	}
}

// TestAuthService_RequestPasswordReset tests the request phase: token
// persisted with ~1h expiry, one email sent containing the reset link
func TestAuthService_RequestPasswordReset(t *testing.T) {
	svc, adminRepo, mailer, admin := newTestAuthService(t)

	if err := svc.RequestPasswordReset(context.Background(), "admin@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset() error = %v", err)
	}

	stored, err := adminRepo.FindByID(admin.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if !stored.HasPendingReset() {
		t.Fatal("no reset token stored")
	}
	if len(*stored.ResetToken) != 64 {
		t.Errorf("token length = %d, want 64", len(*stored.ResetToken))
	}
	if _, err := hex.DecodeString(*stored.ResetToken); err != nil {
		t.Errorf("token is not hex: %v", err)
	}

	wantExpiry := time.Now().UTC().Add(ResetTokenExpiration)
	if diff := stored.ResetTokenExpiry.Sub(wantExpiry); diff > 5*time.Second || diff < -5*time.Second {
		t.Errorf("expiry = %v, want ~%v", stored.ResetTokenExpiry, wantExpiry)
	}

	if len(mailer.resetTo) != 1 || mailer.resetTo[0] != "admin@example.com" {
		t.Fatalf("mailer sent to %v, want exactly [admin@example.com]", mailer.resetTo)
	}
	wantURL := "https://example.org/reset-password/" + *stored.ResetToken
	if mailer.resetURLs[0] != wantURL {
		t.Errorf("reset URL = %s, want %s", mailer.resetURLs[0], wantURL)
	}
}

// TestAuthService_RequestPasswordReset_UnknownEmail tests that an unknown
// email neither errors nor sends mail
func TestAuthService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	svc, _, mailer, _ := newTestAuthService(t)

	if err := svc.RequestPasswordReset(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset() error = %v, want nil for unknown email", err)
	}
	if len(mailer.resetTo) != 0 {
		t.Errorf("mail sent for unknown email: %v", mailer.resetTo)
	}
}

// TestAuthService_RequestPasswordReset_DeliveryFailure tests the partial
// failure case: token already persisted, send fails, error surfaces
func TestAuthService_RequestPasswordReset_DeliveryFailure(t *testing.T) {
	svc, adminRepo, mailer, admin := newTestAuthService(t)
	mailer.failSend = true

	err := svc.RequestPasswordReset(context.Background(), "admin@example.com")
	if !errors.Is(err, ErrDeliveryFailure) {
		t.Fatalf("error = %v, want ErrDeliveryFailure", err)
	}

	// The token write is not rolled back; the next request overwrites it
	stored, err := adminRepo.FindByID(admin.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if !stored.HasPendingReset() {
		t.Error("token not persisted after delivery failure")
	}
}

// TestAuthService_ResetPassword tests the consume phase and single use
func TestAuthService_ResetPassword(t *testing.T) {
	svc, adminRepo, _, admin := newTestAuthService(t)

	if err := svc.RequestPasswordReset(context.Background(), "admin@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset() error = %v", err)
	}
	stored, _ := adminRepo.FindByID(admin.ID)
	token := *stored.ResetToken

	if err := svc.ResetPassword(token, "newpass123"); err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}

	// New password works, token pair is cleared
	if _, _, err := svc.Login("admin@example.com", "newpass123"); err != nil {
		t.Errorf("Login() with new password error = %v", err)
	}
	after, _ := adminRepo.FindByID(admin.ID)
	if after.HasPendingReset() {
		t.Error("reset token pair not cleared after consumption")
	}

	// Single use: the same token was valid seconds ago and must now fail
	if err := svc.ResetPassword(token, "anotherpass"); !errors.Is(err, ErrInvalidOrExpiredToken) {
		t.Errorf("second consume error = %v, want ErrInvalidOrExpiredToken", err)
	}
}

// TestAuthService_ResetPassword_InvalidToken tests unknown and expired tokens
func TestAuthService_ResetPassword_InvalidToken(t *testing.T) {
	svc, adminRepo, _, admin := newTestAuthService(t)

	if err := svc.ResetPassword(strings.Repeat("ab", 32), "newpass123"); !errors.Is(err, ErrInvalidOrExpiredToken) {
		t.Errorf("unknown token error = %v, want ErrInvalidOrExpiredToken", err)
	}

	// Expired token
	if err := adminRepo.SetResetToken(admin.ID, "expired-token", time.Now().UTC().Add(-time.Minute)); err != nil {
		t.Fatalf("SetResetToken() error = %v", err)
	}
	if err := svc.ResetPassword("expired-token", "newpass123"); !errors.Is(err, ErrInvalidOrExpiredToken) {
		t.Errorf("expired token error = %v, want ErrInvalidOrExpiredToken", err)
	}
}

// TestAuthService_SecondRequestInvalidatesFirst tests last-write-wins on
// the stored token
func TestAuthService_SecondRequestInvalidatesFirst(t *testing.T) {
	svc, adminRepo, _, admin := newTestAuthService(t)
	ctx := context.Background()

	if err := svc.RequestPasswordReset(ctx, "admin@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset(first) error = %v", err)
	}
	stored, _ := adminRepo.FindByID(admin.ID)
	firstToken := *stored.ResetToken

	if err := svc.RequestPasswordReset(ctx, "admin@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset(second) error = %v", err)
	}

	// First token is rejected even though its original expiry window is open
	if err := svc.ResetPassword(firstToken, "newpass123"); !errors.Is(err, ErrInvalidOrExpiredToken) {
		t.Errorf("first token error = %v, want ErrInvalidOrExpiredToken", err)
	}

	// Second token works
	stored, _ = adminRepo.FindByID(admin.ID)
	if err := svc.ResetPassword(*stored.ResetToken, "newpass123"); err != nil {
		t.Errorf("second token error = %v", err)
	}
}

// TestAuthService_ChangeEmail tests the settings flow
func TestAuthService_ChangeEmail(t *testing.T) {
	svc, _, _, admin := newTestAuthService(t)

	if err := svc.ChangeEmail(admin.ID, "new@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}

	if err := svc.ChangeEmail(admin.ID, "new@example.com", "correct"); err != nil {
		t.Fatalf("ChangeEmail() error = %v", err)
	}

	if _, _, err := svc.Login("new@example.com", "correct"); err != nil {
		t.Errorf("Login() with new email error = %v", err)
	}

	if err := svc.ChangeEmail(9999, "ghost@example.com", "correct"); !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("unknown admin error = %v, want ErrAdminNotFound", err)
	}
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ourkidney/api-backend/internal/crypto"
	"github.com/ourkidney/api-backend/internal/database"
	"github.com/ourkidney/api-backend/internal/middleware"
	"github.com/ourkidney/api-backend/internal/models"
	"github.com/ourkidney/api-backend/internal/repositories"
	"github.com/ourkidney/api-backend/internal/services"
)

type recordingMailer struct {
	resetURLs []string
}

func (m *recordingMailer) SendPasswordReset(ctx context.Context, to string, resetURL string) error {
	m.resetURLs = append(m.resetURLs, resetURL)
	return nil
}

func (m *recordingMailer) SendContactMessage(ctx context.Context, to string, name, fromEmail, subject, message string) error {
	return nil
}

// setupAuthRouter wires a minimal engine with just the auth routes
// against an in-memory database holding one admin account.
func setupAuthRouter(t *testing.T) (*gin.Engine, *recordingMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.InitDB(database.TestConfig())
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close(db)
	})

	adminRepo := repositories.NewAdminRepository(db)
	hash, err := crypto.HashPassword("correct-password")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if err := adminRepo.Create(&models.Admin{Email: "admin@example.com", PasswordHash: hash}); err != nil {
		t.Fatalf("Failed to create admin: %v", err)
	}

	mailer := &recordingMailer{}
	authService, err := services.NewAuthService(adminRepo, mailer, &services.AuthConfig{
		JWTSecret: "test-secret",
		BaseURL:   "https://example.org",
	})
	if err != nil {
		t.Fatalf("Failed to create auth service: %v", err)
	}

	h := NewAuthHandler(authService)
	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/logout", h.Logout)
	r.POST("/api/auth/forgot-password", h.ForgotPassword)
	r.POST("/api/auth/reset-password/:token", h.ResetPassword)

	return r, mailer
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := postJSON(t, r, "/api/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "correct-password",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (%s)", w.Code, w.Body.String())
	}

	cookie := sessionCookie(w)
	if cookie == nil {
		t.Fatal("Expected session cookie to be set")
	}
	if !cookie.HttpOnly {
		t.Error("Expected session cookie to be HttpOnly")
	}
	if cookie.Path != "/" {
		t.Errorf("Expected cookie path /, got %q", cookie.Path)
	}
	if cookie.MaxAge != int(crypto.SessionJWTExpiration.Seconds()) {
		t.Errorf("Expected cookie max age %d, got %d", int(crypto.SessionJWTExpiration.Seconds()), cookie.MaxAge)
	}
	if cookie.Value == "" {
		t.Error("Expected cookie to carry the session token")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := setupAuthRouter(t)

	cases := []struct {
		name  string
		email string
	}{
		{"wrong password", "admin@example.com"},
		{"unknown email", "nobody@example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, r, "/api/auth/login", gin.H{
				"email":    tc.email,
				"password": "wrong-password",
			})

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("Expected status 401, got %d", w.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("Failed to decode body: %v", err)
			}
			if body["message"] != "Invalid credentials" {
				t.Errorf("Expected message 'Invalid credentials', got %q", body["message"])
			}
			if sessionCookie(w) != nil {
				t.Error("Expected no session cookie on failed login")
			}
		})
	}
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	r, _ := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	cookie := sessionCookie(w)
	if cookie == nil {
		t.Fatal("Expected an expired session cookie")
	}
	if cookie.MaxAge >= 0 {
		t.Errorf("Expected negative max age, got %d", cookie.MaxAge)
	}
}

func TestForgotPasswordEmailsResetLink(t *testing.T) {
	r, mailer := setupAuthRouter(t)

	w := postJSON(t, r, "/api/auth/forgot-password", gin.H{"email": "admin@example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (%s)", w.Code, w.Body.String())
	}

	if len(mailer.resetURLs) != 1 {
		t.Fatalf("Expected 1 reset email, got %d", len(mailer.resetURLs))
	}
	if !strings.HasPrefix(mailer.resetURLs[0], "https://example.org/reset-password/") {
		t.Errorf("Unexpected reset URL %q", mailer.resetURLs[0])
	}
}

func TestForgotPasswordResponseUniformForUnknownEmail(t *testing.T) {
	r, mailer := setupAuthRouter(t)

	known := postJSON(t, r, "/api/auth/forgot-password", gin.H{"email": "admin@example.com"})
	unknown := postJSON(t, r, "/api/auth/forgot-password", gin.H{"email": "nobody@example.com"})

	if known.Code != unknown.Code {
		t.Errorf("Expected identical status codes, got %d and %d", known.Code, unknown.Code)
	}
	if known.Body.String() != unknown.Body.String() {
		t.Errorf("Expected identical bodies, got %q and %q", known.Body.String(), unknown.Body.String())
	}
	if len(mailer.resetURLs) != 1 {
		t.Errorf("Expected only the known email to be mailed, got %d emails", len(mailer.resetURLs))
	}
}

func TestResetPasswordFlow(t *testing.T) {
	r, mailer := setupAuthRouter(t)

	w := postJSON(t, r, "/api/auth/forgot-password", gin.H{"email": "admin@example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("Forgot-password failed with status %d", w.Code)
	}
	if len(mailer.resetURLs) != 1 {
		t.Fatalf("Expected 1 reset email, got %d", len(mailer.resetURLs))
	}
	parts := strings.Split(mailer.resetURLs[0], "/")
	token := parts[len(parts)-1]

	w = postJSON(t, r, "/api/auth/reset-password/"+token, gin.H{"password": "brand-new-password"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (%s)", w.Code, w.Body.String())
	}

	// Old password no longer works
	w = postJSON(t, r, "/api/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "correct-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected old password to be rejected, got status %d", w.Code)
	}

	// New password logs in
	w = postJSON(t, r, "/api/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "brand-new-password",
	})
	if w.Code != http.StatusOK {
		t.Errorf("Expected new password to log in, got status %d", w.Code)
	}

	// Token is single use
	w = postJSON(t, r, "/api/auth/reset-password/"+token, gin.H{"password": "another-password"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400 on reuse, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["error"] != "Invalid or expired token." {
		t.Errorf("Expected error 'Invalid or expired token.', got %q", body["error"])
	}
}

func TestResetPasswordRejectsUnknownToken(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := postJSON(t, r, "/api/auth/reset-password/"+strings.Repeat("ab", 32), gin.H{"password": "brand-new-password"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
}

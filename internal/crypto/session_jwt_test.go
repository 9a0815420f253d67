package crypto

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-0123456789abcdef"

// TestGenerateSessionJWT_RoundTrip tests that a generated token verifies
// and carries the embedded identity
func TestGenerateSessionJWT_RoundTrip(t *testing.T) {
	token, expiresAt, err := GenerateSessionJWT(7, "admin@example.com", testSecret)
	if err != nil {
		t.Fatalf("GenerateSessionJWT() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateSessionJWT() returned empty token")
	}

	claims, err := VerifySessionJWT(token, testSecret)
	if err != nil {
		t.Fatalf("VerifySessionJWT() error = %v", err)
	}
	if claims.AdminID != 7 {
		t.Errorf("AdminID = %d, want 7", claims.AdminID)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("Email = %s, want admin@example.com", claims.Email)
	}
	if claims.Issuer != SessionJWTIssuer {
		t.Errorf("Issuer = %s, want %s", claims.Issuer, SessionJWTIssuer)
	}

	// Expiration should be 1 hour out (allow a few seconds of slack)
	wantExpiry := time.Now().UTC().Add(SessionJWTExpiration)
	if diff := expiresAt.Sub(wantExpiry); diff > 5*time.Second || diff < -5*time.Second {
		t.Errorf("expiresAt = %v, want ~%v", expiresAt, wantExpiry)
	}
}

// TestGenerateSessionJWT_MissingInputs tests required-argument validation
func TestGenerateSessionJWT_MissingInputs(t *testing.T) {
	if _, _, err := GenerateSessionJWT(1, "", testSecret); err == nil {
		t.Error("expected error for empty email, got nil")
	}
	if _, _, err := GenerateSessionJWT(1, "admin@example.com", ""); err == nil {
		t.Error("expected error for empty secret, got nil")
	}
}

// TestVerifySessionJWT_WrongSecret tests that a token signed with a
// different secret is rejected
func TestVerifySessionJWT_WrongSecret(t *testing.T) {
	token, _, err := GenerateSessionJWT(1, "admin@example.com", testSecret)
	if err != nil {
		t.Fatalf("GenerateSessionJWT() error = %v", err)
	}

	if _, err := VerifySessionJWT(token, "some-other-secret"); err == nil {
		t.Error("expected error for wrong secret, got nil")
	}
}

// TestVerifySessionJWT_TamperedPayload tests that modifying the payload
// invalidates the signature
func TestVerifySessionJWT_TamperedPayload(t *testing.T) {
	token, _, err := GenerateSessionJWT(1, "admin@example.com", testSecret)
	if err != nil {
		t.Fatalf("GenerateSessionJWT() error = %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}

	// Flip a character in the payload segment
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := VerifySessionJWT(tampered, testSecret); err == nil {
		t.Error("expected error for tampered payload, got nil")
	}
}

// TestVerifySessionJWT_Expired tests that a correctly signed token is
// rejected once its expiry has passed
func TestVerifySessionJWT_Expired(t *testing.T) {
	past := time.Now().UTC().Add(-time.Hour)
	claims := SessionClaims{
		AdminID: 1,
		Email:   "admin@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    SessionJWTIssuer,
			IssuedAt:  jwt.NewNumericDate(past.Add(-SessionJWTExpiration)),
			ExpiresAt: jwt.NewNumericDate(past),
			Subject:   "admin@example.com",
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign expired token: %v", err)
	}

	if _, err := VerifySessionJWT(token, testSecret); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

// TestVerifySessionJWT_Malformed tests that garbage input fails cleanly
func TestVerifySessionJWT_Malformed(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", "a.b", "a.b.c.d", "...."} {
		if _, err := VerifySessionJWT(tok, testSecret); err == nil {
			t.Errorf("VerifySessionJWT(%q) expected error, got nil", tok)
		}
	}
}

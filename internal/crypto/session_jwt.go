package crypto

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims represents JWT claims for an admin session
type SessionClaims struct {
	AdminID uint   `json:"id"`    // Admin row ID
	Email   string `json:"email"` // Admin email
	jwt.RegisteredClaims
}

const (
	// SessionJWTIssuer identifies tokens issued by this service
	SessionJWTIssuer = "ourkidney-api"

	// SessionJWTExpiration is the session token lifetime (1 hour).
	// Tokens are stateless and never revoked server-side, so this is
	// also the maximum exposure window for a leaked token.
	SessionJWTExpiration = time.Hour
)

// GenerateSessionJWT generates a signed session token for the admin panel.
// The signing secret is an explicit argument so the codec can be exercised
// with injected secrets in tests; callers must refuse to start without one.
// Returns the JWT token string and expiration timestamp.
func GenerateSessionJWT(adminID uint, email string, secret string) (token string, expiresAt time.Time, err error) {
	if email == "" {
		return "", time.Time{}, fmt.Errorf("email is required")
	}
	if secret == "" {
		return "", time.Time{}, fmt.Errorf("JWT secret is required")
	}

	now := time.Now().UTC()
	expiresAtTime := now.Add(SessionJWTExpiration)

	claims := SessionClaims{
		AdminID: adminID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    SessionJWTIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAtTime),
			Subject:   email,
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := jwtToken.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign JWT token: %w", err)
	}

	return tokenString, expiresAtTime, nil
}

// VerifySessionJWT verifies a session token and returns the claims.
// Returns an error if the token is malformed, expired, or the signature
// doesn't match; it never panics on untrusted input.
func VerifySessionJWT(tokenString string, secret string) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token is required")
	}
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// ResetTokenBytes is the entropy of a password-reset token (256 bits).
const ResetTokenBytes = 32

// GenerateResetToken generates a cryptographically random password-reset
// token, hex-encoded to 64 characters. The token carries no identity; it is
// meaningful only through its stored association with an admin row.
func GenerateResetToken() (string, error) {
	buf := make([]byte, ResetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

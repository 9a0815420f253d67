package crypto

import (
	"encoding/hex"
	"testing"
)

// TestGenerateResetToken_Format tests the token encoding
func TestGenerateResetToken_Format(t *testing.T) {
	token, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken() error = %v", err)
	}
	if len(token) != ResetTokenBytes*2 {
		t.Errorf("token length = %d, want %d", len(token), ResetTokenBytes*2)
	}
	if _, err := hex.DecodeString(token); err != nil {
		t.Errorf("token is not valid hex: %v", err)
	}
}

// TestGenerateResetToken_Unique tests that successive tokens differ
func TestGenerateResetToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateResetToken()
		if err != nil {
			t.Fatalf("GenerateResetToken() error = %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = true
	}
}

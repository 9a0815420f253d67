package validators

import (
	"strings"
	"testing"
)

// TestIsValidEmail tests email format checks
func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"admin@example.com",
		"first.last@sub.example.org",
		"user+tag@example.co",
	}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
		"user @example.com",
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

// TestValidateMobileNumber tests phone number checks
func TestValidateMobileNumber(t *testing.T) {
	for _, number := range []string{"+9779800000000", "0771234567", "+1 555 0100 200"} {
		if err := ValidateMobileNumber(number, "mobileNumber"); err != nil {
			t.Errorf("ValidateMobileNumber(%q) error = %v", number, err)
		}
	}

	for _, number := range []string{"", "12345", "phone-number", "+123456789012345678"} {
		if err := ValidateMobileNumber(number, "mobileNumber"); err == nil {
			t.Errorf("ValidateMobileNumber(%q) expected error, got nil", number)
		}
	}
}

// TestValidateBlogPost tests the blog form rules
func TestValidateBlogPost(t *testing.T) {
	longContent := strings.Repeat("content ", 10)

	if err := ValidateBlogPost("A valid title", longContent); err != nil {
		t.Errorf("ValidateBlogPost() error = %v for valid input", err)
	}

	if err := ValidateBlogPost("", longContent); err == nil {
		t.Error("expected error for empty title, got nil")
	}
	if err := ValidateBlogPost(strings.Repeat("t", MaxTitleLength+1), longContent); err == nil {
		t.Error("expected error for overlong title, got nil")
	}
	if err := ValidateBlogPost("Title", "too short"); err == nil {
		t.Error("expected error for short content, got nil")
	}

	// Errors carry the failing field name
	err := ValidateBlogPost("Title", "too short")
	var vErr *ValidationError
	if vErr, _ = err.(*ValidationError); vErr == nil || vErr.Field != "content" {
		t.Errorf("error = %v, want ValidationError on field content", err)
	}
}

// TestValidateSlide tests the slide form rules
func TestValidateSlide(t *testing.T) {
	if err := ValidateSlide("Hero title", "A short description"); err != nil {
		t.Errorf("ValidateSlide() error = %v for valid input", err)
	}
	if err := ValidateSlide("", "desc"); err == nil {
		t.Error("expected error for empty title, got nil")
	}
	if err := ValidateSlide("Title", "   "); err == nil {
		t.Error("expected error for blank description, got nil")
	}
}

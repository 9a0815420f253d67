package validators

import (
	"fmt"
	"regexp"
	"strings"
)

// Email validation regex (pragmatic, not RFC 5322)
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Mobile number validation regex: optional +, 7-15 digits
var mobileRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

const (
	// MaxTitleLength bounds blog post and slide titles
	MaxTitleLength = 100

	// MinContentLength is the minimum blog post body length
	MinContentLength = 50
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidEmail checks if the string looks like an email address
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// ValidateEmail validates and returns an error if invalid
func ValidateEmail(email string, fieldName string) error {
	if email == "" {
		return NewValidationError(fieldName, "email is required")
	}
	if !IsValidEmail(email) {
		return NewValidationError(fieldName, "invalid email format")
	}
	return nil
}

// ValidateMobileNumber validates a phone number
func ValidateMobileNumber(number string, fieldName string) error {
	if number == "" {
		return NewValidationError(fieldName, "mobile number is required")
	}
	if !mobileRegex.MatchString(strings.ReplaceAll(number, " ", "")) {
		return NewValidationError(fieldName, "invalid mobile number format")
	}
	return nil
}

// ValidateRequired checks a free-text field is non-blank
func ValidateRequired(value string, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fieldName, fieldName+" is required")
	}
	return nil
}

// ValidateBlogPost enforces the blog form rules: title required and at
// most 100 characters, content required and at least 50 characters.
func ValidateBlogPost(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "title is required")
	}
	if len(title) > MaxTitleLength {
		return NewValidationError("title", fmt.Sprintf("title must be less than %d characters", MaxTitleLength))
	}
	if strings.TrimSpace(content) == "" {
		return NewValidationError("content", "content is required")
	}
	if len(content) < MinContentLength {
		return NewValidationError("content", fmt.Sprintf("content must be at least %d characters", MinContentLength))
	}
	return nil
}

// ValidateSlide enforces the slide form rules
func ValidateSlide(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "title is required")
	}
	if len(title) > MaxTitleLength {
		return NewValidationError("title", fmt.Sprintf("title must be less than %d characters", MaxTitleLength))
	}
	if strings.TrimSpace(description) == "" {
		return NewValidationError("description", "description is required")
	}
	return nil
}

package validators

import (
	"fmt"
	"time"
)

// DateFormat is the wire format of date-only fields on the
// registration form (HTML date inputs submit this shape).
const DateFormat = "2006-01-02"

// ParseDate parses a date-only string to time.Time in UTC
func ParseDate(value string, fieldName string) (time.Time, error) {
	if value == "" {
		return time.Time{}, NewValidationError(fieldName, fieldName+" is required")
	}

	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, NewValidationError(fieldName, fmt.Sprintf("invalid date format (expected: %s)", DateFormat))
	}

	return t.UTC(), nil
}

// ValidateDateOrder checks that the expiry date is strictly after the
// issue date on an identity document
func ValidateDateOrder(issued, expiry time.Time) error {
	if !expiry.After(issued) {
		return NewValidationError("expiryDate", "expiry date must be after issued date")
	}
	return nil
}

// ValidateDateNotFuture checks that a date (birth date, issue date) is
// not in the future
func ValidateDateNotFuture(t time.Time, fieldName string) error {
	if t.After(time.Now().UTC()) {
		return NewValidationError(fieldName, fieldName+" cannot be in the future")
	}
	return nil
}

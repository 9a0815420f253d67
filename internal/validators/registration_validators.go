package validators

import "time"

// RegistrationInput is the raw membership-registration form as submitted.
// Dates arrive as "2006-01-02" strings from HTML date inputs.
type RegistrationInput struct {
	FullName        string
	DateOfBirth     string
	Email           string
	MobileNumber    string
	Gender          string
	Occupation      string
	IDType          string
	IDNumber        string
	IssuedAuthority string
	IssuedPlace     string
	IssuedDate      string
	ExpiryDate      string
}

// RegistrationDates carries the parsed date fields of a valid form
type RegistrationDates struct {
	DateOfBirth time.Time
	IssuedDate  time.Time
	ExpiryDate  time.Time
}

// ValidateRegistration checks every field of the membership form and
// parses the date fields. All fields are required; the identity document
// must not be issued in the future and must expire after its issue date.
func ValidateRegistration(in *RegistrationInput) (*RegistrationDates, error) {
	if in == nil {
		return nil, NewValidationError("registration", "registration payload is required")
	}

	if err := ValidateRequired(in.FullName, "fullName"); err != nil {
		return nil, err
	}
	if err := ValidateEmail(in.Email, "email"); err != nil {
		return nil, err
	}
	if err := ValidateMobileNumber(in.MobileNumber, "mobileNumber"); err != nil {
		return nil, err
	}
	for _, field := range []struct {
		value string
		name  string
	}{
		{in.Gender, "gender"},
		{in.Occupation, "occupation"},
		{in.IDType, "idType"},
		{in.IDNumber, "idNumber"},
		{in.IssuedAuthority, "issuedAuthority"},
		{in.IssuedPlace, "issuedPlace"},
	} {
		if err := ValidateRequired(field.value, field.name); err != nil {
			return nil, err
		}
	}

	dob, err := ParseDate(in.DateOfBirth, "dateOfBirth")
	if err != nil {
		return nil, err
	}
	if err := ValidateDateNotFuture(dob, "dateOfBirth"); err != nil {
		return nil, err
	}

	issued, err := ParseDate(in.IssuedDate, "issuedDate")
	if err != nil {
		return nil, err
	}
	if err := ValidateDateNotFuture(issued, "issuedDate"); err != nil {
		return nil, err
	}

	expiry, err := ParseDate(in.ExpiryDate, "expiryDate")
	if err != nil {
		return nil, err
	}
	if err := ValidateDateOrder(issued, expiry); err != nil {
		return nil, err
	}

	return &RegistrationDates{
		DateOfBirth: dob,
		IssuedDate:  issued,
		ExpiryDate:  expiry,
	}, nil
}

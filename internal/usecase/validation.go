package usecase

import (
	"net/mail"
	"strings"
)

// ValidateAltaInput guards the HTTP boundary. The pipeline itself has no
// failure path: a request without card and policy number is valid and simply
// resolves no identity, so only the fields the ticket cannot exist without
// are checked here.
func ValidateAltaInput(input AltaInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}

package auth

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/centralring-backend/internal/domain"
)

const maxEmailLength = 254

// SendOTPInput holds parameters for requesting a one-time code.
type SendOTPInput struct {
	Email string
}

// Validate validates the send input.
func (i SendOTPInput) Validate() error {
	if errs := validateEmail(i.Email); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// VerifyOTPInput holds parameters for exchanging a code for a session.
type VerifyOTPInput struct {
	Email string
	Token string
}

// Validate validates the verify input.
func (i VerifyOTPInput) Validate() error {
	errs := validateEmail(i.Email)

	if strings.TrimSpace(i.Token) == "" {
		errs = append(errs, domain.FieldError{Field: "token", Message: "required"})
	} else if len(i.Token) > 32 {
		errs = append(errs, domain.FieldError{Field: "token", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		return []domain.FieldError{{Field: "email", Message: "required"}}
	case len(email) > maxEmailLength:
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return []domain.FieldError{{Field: "email", Message: "invalid email address"}}
	}
	return nil
}

// normalizeEmail is the key codes and users are stored under.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package auth

import (
	"net/mail"
	"unicode/utf8"

	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

const (
	maxEmailLen    = 254
	minUsernameLen = 2
	maxUsernameLen = 50
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt ignores anything longer
	maxIDTokenLen  = 4096
)

// RegisterInput holds parameters for password registration.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Validate validates the register input. Email must already be normalized.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)

	if n := utf8.RuneCountInString(i.Username); n < minUsernameLen || n > maxUsernameLen {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be between 2 and 50 characters"})
	}

	if len(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginPasswordInput holds parameters for password login.
type LoginPasswordInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginPasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GoogleLoginInput carries a Google ID token from the client.
type GoogleLoginInput struct {
	IDToken string
}

// Validate validates the Google login input.
func (i GoogleLoginInput) Validate() error {
	if i.IDToken == "" {
		return domain.NewValidationError("id_token", "required")
	}
	if len(i.IDToken) > maxIDTokenLen {
		return domain.NewValidationError("id_token", "too long")
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "required"}}
	}
	if len(email) > maxEmailLen {
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return []domain.FieldError{{Field: "email", Message: "invalid email"}}
	}
	return nil
}

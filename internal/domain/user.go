package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// User is the account record returned by the remote backend on login.
type User struct {
	ID        string `json:"_id,omitempty"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	City      string `json:"city,omitempty"`
}

// Session is the result of a successful login.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Credentials are the login form fields.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up form. Confirm is checked locally and never sent.
type Registration struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	City      string `json:"city"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Confirm   string `json:"-"`
}

// Profile is the locally editable personal info shown on the settings screen.
type Profile struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Birthdate string `json:"birthdate"`
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9+_.-]+@[a-zA-Z0-9.-]+$`)

const passwordSymbols = "@#*+-"

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPassword reports whether s has at least 8 characters, an uppercase
// ASCII letter and one of @ # * + -. Line breaks are not allowed.
func ValidPassword(s string) bool {
	if utf8.RuneCountInString(s) < 8 || strings.ContainsAny(s, "\n\r") {
		return false
	}
	hasUpper := strings.ContainsFunc(s, func(r rune) bool { return r >= 'A' && r <= 'Z' })
	return hasUpper && strings.ContainsAny(s, passwordSymbols)
}

// Validate checks the login form.
func (c Credentials) Validate() error {
	if !ValidEmail(c.Email) {
		return fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if !ValidPassword(c.Password) {
		return fmt.Errorf("%w: password must be at least 8 characters with an uppercase letter and one of %s", ErrValidation, passwordSymbols)
	}
	return nil
}

// Validate checks the sign-up form.
func (r Registration) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("%w: firstname is required", ErrValidation)
	}
	if strings.TrimSpace(r.LastName) == "" {
		return fmt.Errorf("%w: lastname is required", ErrValidation)
	}
	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("%w: city is required", ErrValidation)
	}
	if err := (Credentials{Email: r.Email, Password: r.Password}).Validate(); err != nil {
		return err
	}
	if r.Confirm != r.Password {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	return nil
}

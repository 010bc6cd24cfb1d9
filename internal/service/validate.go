package service

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Length limits count characters, not bytes.
const (
	nameMinLen     = 2
	nameMaxLen     = 50
	passwordMinLen = 6
)

// validEmail reports whether addr is a plain, syntactically valid address.
// mail.ParseAddress accepts display names and dot-less domains; registration
// input allows neither.
func validEmail(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return false
	}
	at := strings.LastIndex(addr, "@")
	return strings.Contains(addr[at+1:], ".")
}

// validateRegisterInput collects every violated rule for a registration
// payload. All three fields are required.
func validateRegisterInput(input RegisterInput) []string {
	var errs []string

	if input.Name == "" {
		errs = append(errs, "Name is required")
	} else if n := utf8.RuneCountInString(strings.TrimSpace(input.Name)); n < nameMinLen {
		errs = append(errs, "Name must be at least 2 characters long")
	} else if n > nameMaxLen {
		errs = append(errs, "Name cannot exceed 50 characters")
	}

	if input.Email == "" {
		errs = append(errs, "Email is required")
	} else if !validEmail(strings.TrimSpace(input.Email)) {
		errs = append(errs, "Please provide a valid email address")
	}

	if input.Password == "" {
		errs = append(errs, "Password is required")
	} else if utf8.RuneCountInString(input.Password) < passwordMinLen {
		errs = append(errs, "Password must be at least 6 characters long")
	}

	return errs
}

// validateUpdateInput collects violations for the fields present in a
// partial-update payload. A nil field is left untouched, not defaulted.
func validateUpdateInput(input UpdateInput) []string {
	var errs []string

	if input.Name != nil {
		if n := utf8.RuneCountInString(strings.TrimSpace(*input.Name)); n < nameMinLen {
			errs = append(errs, "Name must be at least 2 characters long")
		} else if n > nameMaxLen {
			errs = append(errs, "Name cannot exceed 50 characters")
		}
	}

	if input.Email != nil && !validEmail(strings.TrimSpace(*input.Email)) {
		errs = append(errs, "Please provide a valid email address")
	}

	if input.Password != nil && utf8.RuneCountInString(*input.Password) < passwordMinLen {
		errs = append(errs, "Password must be at least 6 characters long")
	}

	return errs
}

package domain

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Explicit field validation, run at the use-case boundary before any write.

type RegisterInput struct {
	Username string
	Password string
	Email    string
	Name     string
	Role     string
}

func (in RegisterInput) Validate() error {
	var fe FieldErrors
	if n := utf8.RuneCountInString(in.Username); n < 3 || n > 10 {
		fe.Add("username", "must be 3-10 characters")
	}
	// bcrypt truncates past 72 bytes
	if n := len(in.Password); n < 6 || n > 72 {
		fe.Add("password", "must be 6-72 characters")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		fe.Add("email", "must be a valid email address")
	}
	if strings.TrimSpace(in.Name) == "" {
		fe.Add("name", "must not be blank")
	}
	if _, err := ParseRole(in.Role); err != nil {
		fe.Add("role", "must be USER or ADMIN")
	}
	return fe.OrNil()
}

type ProductInput struct {
	Name        string
	Price       float64
	Description string
	ImageURL    string
}

func (in ProductInput) Validate() error {
	var fe FieldErrors
	if strings.TrimSpace(in.Name) == "" {
		fe.Add("name", "must not be blank")
	}
	if in.Price < 0 {
		fe.Add("price", "must not be negative")
	}
	if n := utf8.RuneCountInString(in.Description); n < 5 || n > 200 {
		fe.Add("description", "must be 5-200 characters")
	}
	return fe.OrNil()
}

func ValidateQuantity(q int) error {
	var fe FieldErrors
	if q <= 0 {
		fe.Add("quantity", "must be positive")
	}
	return fe.OrNil()
}

package models

import (
	"strings"

	"github.com/google/uuid"
)

type User struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar string    `json:"avatar,omitempty"`
}

// Normalize trims whitespace and lowercases the email address.
func (u *User) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Avatar = strings.TrimSpace(u.Avatar)
}

func (u User) Validate() error {
	if u.Name == "" {
		return invalid("name", "is required")
	}

	if u.Email == "" {
		return invalid("email", "is required")
	}

	return nil
}

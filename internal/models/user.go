package models

import (
	"strings"
	"time"
)

// Registered account
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity attached to a request by the auth middleware
type Identity struct {
	UserID string `json:"id"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
}

// DisplayName is what the stylist calls the user: name, else the email local part, else "friend".
func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	if at := strings.IndexByte(i.Email, '@'); at > 0 {
		return i.Email[:at]
	}
	if i.Email != "" {
		return i.Email
	}
	return "friend"
}

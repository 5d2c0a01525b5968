package models

import "time"

// User is a registered account. OAuth-provider accounts carry Provider
// and no password hash; local accounts are the inverse.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	Provider     string    `json:"provider,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

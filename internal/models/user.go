package models

import "github.com/google/uuid"

// User represents a user in the system
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"` // Not serialized
	Email          *string   `json:"email"`
	Disabled       bool      `json:"disabled"`
}

// UserRead is the user shape returned to clients.
type UserRead struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    *string   `json:"email"`
	Disabled bool      `json:"disabled"`
}

// Read converts a User into its client-facing shape.
func (u *User) Read() UserRead {
	return UserRead{ID: u.ID, Username: u.Username, Email: u.Email, Disabled: u.Disabled}
}

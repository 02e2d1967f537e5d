package models

import "github.com/google/uuid"

// SetRead is the exercise-set shape returned to clients.
type SetRead struct {
	ID       uuid.UUID `json:"id"`
	RepCount int       `json:"rep_count"`
	Weight   int       `json:"weight"`
}

package models

import "github.com/google/uuid"

// WorkoutRead is the workout shape returned to clients.
type WorkoutRead struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Date Date      `json:"date"`
}

// Workout is a workout with its associated exercises, returned by detail
// queries when exercises are requested.
type Workout struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Date      Date           `json:"date"`
	Exercises []ExerciseRead `json:"exercises"`
}

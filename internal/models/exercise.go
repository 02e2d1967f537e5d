package models

import "github.com/google/uuid"

// ExerciseRead is the exercise shape returned to clients.
type ExerciseRead struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Notes *string   `json:"notes"`
}

// ExerciseProgressData is one (workout, exercise) aggregate row in a
// progress report.
type ExerciseProgressData struct {
	Date        Date    `json:"date"`
	AvgRepCount float64 `json:"avg_rep_count"`
	AvgWeight   float64 `json:"avg_weight"`
	MaxWeight   int     `json:"max_weight"`
}

// ExerciseProgressReport groups progress data for a single exercise. Data is
// empty, not nil, for an exercise without any recorded sets.
type ExerciseProgressReport struct {
	ExerciseName string                 `json:"exercise_name"`
	Data         []ExerciseProgressData `json:"data"`
}

// Package database bootstraps the schema and the default seed user.
package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Idempotent bootstrap statements, applied in order at startup.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL,
		email TEXT,
		disabled BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS workouts (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		date DATE NOT NULL,
		UNIQUE (user_id, name, date)
	)`,
	`CREATE TABLE IF NOT EXISTS exercises (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		notes TEXT,
		UNIQUE (user_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS workout_exercises (
		workout_id UUID NOT NULL REFERENCES workouts (id) ON DELETE CASCADE,
		exercise_id UUID NOT NULL REFERENCES exercises (id) ON DELETE CASCADE,
		PRIMARY KEY (workout_id, exercise_id)
	)`,
	`CREATE TABLE IF NOT EXISTS exercise_sets (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		workout_id UUID NOT NULL REFERENCES workouts (id) ON DELETE CASCADE,
		exercise_id UUID NOT NULL REFERENCES exercises (id) ON DELETE CASCADE,
		rep_count INTEGER NOT NULL,
		weight INTEGER NOT NULL
	)`,
}

// Apply creates any missing tables.
func Apply(ctx context.Context, db *sql.DB) error {
	for _, statement := range statements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

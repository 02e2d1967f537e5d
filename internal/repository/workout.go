package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/swoleapp/swole-api/internal/errors"
	"github.com/swoleapp/swole-api/internal/models"
	"github.com/swoleapp/swole-api/internal/schemas"
)

// WorkoutRepository provides owner-scoped workout operations.
type WorkoutRepository struct {
	repository
}

// NewWorkoutRepository initializes a new workout repository
func NewWorkoutRepository(db *sql.DB) *WorkoutRepository {
	return &WorkoutRepository{repository{db: db}}
}

// GetAll returns every workout owned by ownerID, newest first.
func (r *WorkoutRepository) GetAll(ctx context.Context, ownerID uuid.UUID) ([]models.WorkoutRead, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, date
		FROM workouts
		WHERE user_id = $1
		ORDER BY date DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	defer rows.Close()

	workouts := []models.WorkoutRead{}
	for rows.Next() {
		var w models.WorkoutRead
		var date time.Time
		if err := rows.Scan(&w.ID, &w.Name, &date); err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		w.Date = models.NewDate(date)
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// Detail looks up a batch of workouts by id. Every id must match an owned
// workout or the whole call fails. Exercises are attached when requested.
func (r *WorkoutRepository) Detail(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, withExercises bool) ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		workouts = make([]models.Workout, 0, len(ids))
		for _, id := range ids {
			w, err := scanWorkout(tx.QueryRowContext(ctx, `
				SELECT id, name, date
				FROM workouts
				WHERE id = $1 AND user_id = $2`, id, ownerID))
			if err != nil {
				return err
			}
			if withExercises {
				exercises, err := workoutExercises(ctx, tx, w.ID)
				if err != nil {
					return err
				}
				w.Exercises = exercises
			}
			workouts = append(workouts, w)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

// Create inserts a batch of workouts in one transaction. A (name, date)
// collision with an existing workout, or between two elements of the batch,
// aborts the whole insert.
func (r *WorkoutRepository) Create(ctx context.Context, ownerID uuid.UUID, data []schemas.WorkoutCreate) ([]models.WorkoutRead, error) {
	var created []models.WorkoutRead
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		created = make([]models.WorkoutRead, 0, len(data))
		for _, workout := range data {
			var w models.WorkoutRead
			var date time.Time
			err := tx.QueryRowContext(ctx, `
				INSERT INTO workouts (user_id, name, date)
				VALUES ($1, $2, $3)
				RETURNING id, name, date`, ownerID, workout.Name, workout.Date).
				Scan(&w.ID, &w.Name, &date)
			if err != nil {
				return translateUnique(err, apperrors.NameAndDateMustBeUnique)
			}
			w.Date = models.NewDate(date)
			created = append(created, w)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies a batch of partial updates. Fields absent from an element
// keep their stored values. The same workout id may not appear twice in one
// batch.
func (r *WorkoutRepository) Update(ctx context.Context, ownerID uuid.UUID, data []schemas.WorkoutUpdate) ([]models.WorkoutRead, error) {
	ids := make([]uuid.UUID, 0, len(data))
	for _, update := range data {
		ids = append(ids, update.WorkoutID)
	}
	if hasDuplicateIDs(ids) {
		return nil, apperrors.NewBusinessError(apperrors.IDsMustBeUnique)
	}

	var updated []models.WorkoutRead
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		updated = make([]models.WorkoutRead, 0, len(data))
		for _, update := range data {
			var w models.WorkoutRead
			var date time.Time
			err := tx.QueryRowContext(ctx, `
				UPDATE workouts
				SET name = COALESCE($1, name), date = COALESCE($2, date)
				WHERE id = $3 AND user_id = $4
				RETURNING id, name, date`, update.Name, update.Date, update.WorkoutID, ownerID).
				Scan(&w.ID, &w.Name, &date)
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.NewBusinessError(apperrors.NoWorkoutFound)
			}
			if err != nil {
				return translateUnique(err, apperrors.NameAndDateMustBeUnique)
			}
			w.Date = models.NewDate(date)
			updated = append(updated, w)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a batch of workouts, all-or-nothing.
func (r *WorkoutRepository) Delete(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		for _, id := range ids {
			result, err := tx.ExecContext(ctx, `
				DELETE FROM workouts
				WHERE id = $1 AND user_id = $2`, id, ownerID)
			if err != nil {
				return fmt.Errorf("failed to delete workout: %w", err)
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to read delete result: %w", err)
			}
			if affected == 0 {
				return apperrors.NewBusinessError(apperrors.NoWorkoutFound)
			}
		}
		return nil
	})
}

// AddExercises associates exercises with workouts. Re-adding an existing
// association is a no-op; an unmatched workout or exercise id aborts the
// batch.
func (r *WorkoutRepository) AddExercises(ctx context.Context, ownerID uuid.UUID, data []schemas.WorkoutAddExercise) ([]models.WorkoutRead, error) {
	var workouts []models.WorkoutRead
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		workouts = make([]models.WorkoutRead, 0, len(data))
		for _, link := range data {
			w, err := scanWorkout(tx.QueryRowContext(ctx, `
				SELECT id, name, date
				FROM workouts
				WHERE id = $1 AND user_id = $2`, link.WorkoutID, ownerID))
			if err != nil {
				return err
			}

			var exists bool
			err = tx.QueryRowContext(ctx, `
				SELECT EXISTS (
					SELECT 1 FROM exercises
					WHERE id = $1 AND user_id = $2
				)`, link.ExerciseID, ownerID).Scan(&exists)
			if err != nil {
				return fmt.Errorf("failed to check exercise: %w", err)
			}
			if !exists {
				return apperrors.NewBusinessError(apperrors.NoExerciseFound)
			}

			_, err = tx.ExecContext(ctx, `
				INSERT INTO workout_exercises (workout_id, exercise_id)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING`, link.WorkoutID, link.ExerciseID)
			if err != nil {
				return fmt.Errorf("failed to link exercise: %w", err)
			}
			workouts = append(workouts, models.WorkoutRead{ID: w.ID, Name: w.Name, Date: w.Date})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

// Copy duplicates workouts (name and exercise associations) under new dates.
// Copies run in one transaction, so a (name, date) collision between two
// copies in the same batch is rejected like any other uniqueness violation.
func (r *WorkoutRepository) Copy(ctx context.Context, ownerID uuid.UUID, data []schemas.WorkoutCopy) ([]models.WorkoutRead, error) {
	var copies []models.WorkoutRead
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		copies = make([]models.WorkoutRead, 0, len(data))
		for _, c := range data {
			source, err := scanWorkout(tx.QueryRowContext(ctx, `
				SELECT id, name, date
				FROM workouts
				WHERE id = $1 AND user_id = $2`, c.WorkoutID, ownerID))
			if err != nil {
				return err
			}

			var copied models.WorkoutRead
			var date time.Time
			err = tx.QueryRowContext(ctx, `
				INSERT INTO workouts (user_id, name, date)
				VALUES ($1, $2, $3)
				RETURNING id, name, date`, ownerID, source.Name, c.Date).
				Scan(&copied.ID, &copied.Name, &date)
			if err != nil {
				return translateUnique(err, apperrors.NameAndDateMustBeUnique)
			}
			copied.Date = models.NewDate(date)

			_, err = tx.ExecContext(ctx, `
				INSERT INTO workout_exercises (workout_id, exercise_id)
				SELECT $1, exercise_id
				FROM workout_exercises
				WHERE workout_id = $2`, copied.ID, source.ID)
			if err != nil {
				return fmt.Errorf("failed to copy exercise links: %w", err)
			}
			copies = append(copies, copied)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return copies, nil
}

// scanWorkout reads one owned workout row, mapping a miss to NoWorkoutFound.
func scanWorkout(row *sql.Row) (models.Workout, error) {
	var w models.Workout
	var date time.Time
	err := row.Scan(&w.ID, &w.Name, &date)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Workout{}, apperrors.NewBusinessError(apperrors.NoWorkoutFound)
	}
	if err != nil {
		return models.Workout{}, fmt.Errorf("failed to scan workout: %w", err)
	}
	w.Date = models.NewDate(date)
	return w, nil
}

// workoutExercises loads the exercises associated with one workout.
func workoutExercises(ctx context.Context, tx *sql.Tx, workoutID uuid.UUID) ([]models.ExerciseRead, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT e.id, e.name, e.notes
		FROM exercises e
		JOIN workout_exercises we ON we.exercise_id = e.id
		WHERE we.workout_id = $1
		ORDER BY e.name`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workout exercises: %w", err)
	}
	defer rows.Close()

	exercises := []models.ExerciseRead{}
	for rows.Next() {
		var e models.ExerciseRead
		if err := rows.Scan(&e.ID, &e.Name, &e.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/swoleapp/swole-api/internal/errors"
	"github.com/swoleapp/swole-api/internal/models"
	"github.com/swoleapp/swole-api/internal/schemas"
)

// SetRepository provides owner-scoped exercise-set operations. A set is only
// reachable when both its workout and its exercise belong to the caller.
type SetRepository struct {
	repository
}

// NewSetRepository initializes a new set repository
func NewSetRepository(db *sql.DB) *SetRepository {
	return &SetRepository{repository{db: db}}
}

// GetAll returns the sets recorded against one workout/exercise pair.
func (r *SetRepository) GetAll(ctx context.Context, ownerID uuid.UUID, data schemas.SetGetAll) ([]models.SetRead, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.rep_count, s.weight
		FROM exercise_sets s
		JOIN workouts w ON w.id = s.workout_id
		JOIN exercises e ON e.id = s.exercise_id
		WHERE s.workout_id = $1 AND s.exercise_id = $2
			AND w.user_id = $3 AND e.user_id = $3`,
		data.WorkoutID, data.ExerciseID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sets: %w", err)
	}
	defer rows.Close()

	sets := []models.SetRead{}
	for rows.Next() {
		var s models.SetRead
		if err := rows.Scan(&s.ID, &s.RepCount, &s.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan set: %w", err)
		}
		sets = append(sets, s)
	}
	return sets, rows.Err()
}

// Add inserts a batch of sets in one transaction. Each element resolves its
// workout and exercise by id and owner; any miss aborts the batch. Identical
// sets are distinct rows, so duplicates within a batch are fine.
func (r *SetRepository) Add(ctx context.Context, ownerID uuid.UUID, data []schemas.SetAdd) ([]models.SetRead, error) {
	var added []models.SetRead
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		added = make([]models.SetRead, 0, len(data))
		for _, set := range data {
			if err := checkOwned(ctx, tx, "workouts", set.WorkoutID, ownerID, apperrors.NoWorkoutFound); err != nil {
				return err
			}
			if err := checkOwned(ctx, tx, "exercises", set.ExerciseID, ownerID, apperrors.NoExerciseFound); err != nil {
				return err
			}

			var s models.SetRead
			err := tx.QueryRowContext(ctx, `
				INSERT INTO exercise_sets (workout_id, exercise_id, rep_count, weight)
				VALUES ($1, $2, $3, $4)
				RETURNING id, rep_count, weight`,
				set.WorkoutID, set.ExerciseID, set.RepCount, set.Weight).
				Scan(&s.ID, &s.RepCount, &s.Weight)
			if err != nil {
				return fmt.Errorf("failed to insert set: %w", err)
			}
			added = append(added, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// Delete removes one set. The ownership join means a foreign or unknown id
// matches nothing and fails loudly with NoSetFound.
func (r *SetRepository) Delete(ctx context.Context, ownerID uuid.UUID, setID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM exercise_sets s
		USING workouts w, exercises e
		WHERE s.id = $1
			AND w.id = s.workout_id AND e.id = s.exercise_id
			AND w.user_id = $2 AND e.user_id = $2`, setID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete set: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.NewBusinessError(apperrors.NoSetFound)
	}
	return nil
}

// Update applies a partial update to one set under the same ownership join as
// Delete.
func (r *SetRepository) Update(ctx context.Context, ownerID uuid.UUID, data schemas.SetUpdate) (models.SetRead, error) {
	var s models.SetRead
	err := r.db.QueryRowContext(ctx, `
		UPDATE exercise_sets s
		SET rep_count = COALESCE($1, s.rep_count), weight = COALESCE($2, s.weight)
		FROM workouts w, exercises e
		WHERE s.id = $3
			AND w.id = s.workout_id AND e.id = s.exercise_id
			AND w.user_id = $4 AND e.user_id = $4
		RETURNING s.id, s.rep_count, s.weight`,
		data.RepCount, data.Weight, data.SetID, ownerID).
		Scan(&s.ID, &s.RepCount, &s.Weight)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SetRead{}, apperrors.NewBusinessError(apperrors.NoSetFound)
	}
	if err != nil {
		return models.SetRead{}, fmt.Errorf("failed to update set: %w", err)
	}
	return s, nil
}

// checkOwned verifies that an owned row exists in table, failing with the
// given domain message otherwise.
func checkOwned(ctx context.Context, tx *sql.Tx, table string, id, ownerID uuid.UUID, message string) error {
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1 AND user_id = $2)`, table)
	if err := tx.QueryRowContext(ctx, query, id, ownerID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check %s: %w", table, err)
	}
	if !exists {
		return apperrors.NewBusinessError(message)
	}
	return nil
}

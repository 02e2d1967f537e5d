package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	apperrors "github.com/swoleapp/swole-api/internal/errors"
	"github.com/swoleapp/swole-api/internal/models"
	"github.com/swoleapp/swole-api/internal/schemas"
)

// ExerciseRepository provides owner-scoped exercise operations.
type ExerciseRepository struct {
	repository
}

// NewExerciseRepository initializes a new exercise repository
func NewExerciseRepository(db *sql.DB) *ExerciseRepository {
	return &ExerciseRepository{repository{db: db}}
}

// GetAll returns every exercise owned by ownerID.
func (r *ExerciseRepository) GetAll(ctx context.Context, ownerID uuid.UUID) ([]models.ExerciseRead, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, notes
		FROM exercises
		WHERE user_id = $1
		ORDER BY name`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
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

// Detail looks up a batch of exercises by id, all-or-nothing.
func (r *ExerciseRepository) Detail(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]models.ExerciseRead, error) {
	var exercises []models.ExerciseRead
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		exercises = make([]models.ExerciseRead, 0, len(ids))
		for _, id := range ids {
			e, err := scanExercise(tx.QueryRowContext(ctx, `
				SELECT id, name, notes
				FROM exercises
				WHERE id = $1 AND user_id = $2`, id, ownerID))
			if err != nil {
				return err
			}
			exercises = append(exercises, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

// Create inserts a batch of exercises in one transaction. A name collision
// with an existing exercise, or between two elements of the batch, aborts the
// whole insert.
func (r *ExerciseRepository) Create(ctx context.Context, ownerID uuid.UUID, data []schemas.ExerciseCreate) ([]models.ExerciseRead, error) {
	var created []models.ExerciseRead
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		created = make([]models.ExerciseRead, 0, len(data))
		for _, exercise := range data {
			var e models.ExerciseRead
			err := tx.QueryRowContext(ctx, `
				INSERT INTO exercises (user_id, name, notes)
				VALUES ($1, $2, $3)
				RETURNING id, name, notes`, ownerID, exercise.Name, exercise.Notes).
				Scan(&e.ID, &e.Name, &e.Notes)
			if err != nil {
				return translateUnique(err, apperrors.ExerciseWithNameExists)
			}
			created = append(created, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies a batch of partial updates with the same duplicate-id guard
// as workouts.
func (r *ExerciseRepository) Update(ctx context.Context, ownerID uuid.UUID, data []schemas.ExerciseUpdate) ([]models.ExerciseRead, error) {
	ids := make([]uuid.UUID, 0, len(data))
	for _, update := range data {
		ids = append(ids, update.ExerciseID)
	}
	if hasDuplicateIDs(ids) {
		return nil, apperrors.NewBusinessError(apperrors.IDsMustBeUnique)
	}

	var updated []models.ExerciseRead
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		updated = make([]models.ExerciseRead, 0, len(data))
		for _, update := range data {
			var e models.ExerciseRead
			err := tx.QueryRowContext(ctx, `
				UPDATE exercises
				SET name = COALESCE($1, name), notes = COALESCE($2, notes)
				WHERE id = $3 AND user_id = $4
				RETURNING id, name, notes`, update.Name, update.Notes, update.ExerciseID, ownerID).
				Scan(&e.ID, &e.Name, &e.Notes)
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.NewBusinessError(apperrors.NoExerciseFound)
			}
			if err != nil {
				return translateUnique(err, apperrors.ExerciseWithNameExists)
			}
			updated = append(updated, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a batch of exercises, all-or-nothing. Association rows and
// recorded sets go with them through the foreign keys; workouts stay.
func (r *ExerciseRepository) Delete(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		for _, id := range ids {
			result, err := tx.ExecContext(ctx, `
				DELETE FROM exercises
				WHERE id = $1 AND user_id = $2`, id, ownerID)
			if err != nil {
				return fmt.Errorf("failed to delete exercise: %w", err)
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to read delete result: %w", err)
			}
			if affected == 0 {
				return apperrors.NewBusinessError(apperrors.NoExerciseFound)
			}
		}
		return nil
	})
}

// Progress builds one report per distinct requested exercise: its sets are
// grouped by workout, and each group carries the workout date, the average
// rep count and weight (rounded to two decimals) and the max weight. An
// exercise without sets yields an empty data list.
func (r *ExerciseRepository) Progress(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]models.ExerciseProgressReport, error) {
	distinct := distinctIDs(ids)

	var reports []models.ExerciseProgressReport
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		names := make(map[uuid.UUID]string, len(distinct))
		for _, id := range distinct {
			e, err := scanExercise(tx.QueryRowContext(ctx, `
				SELECT id, name, notes
				FROM exercises
				WHERE id = $1 AND user_id = $2`, id, ownerID))
			if err != nil {
				return err
			}
			names[id] = e.Name
		}

		rows, err := tx.QueryContext(ctx, `
			SELECT s.exercise_id, w.date,
				AVG(s.rep_count), AVG(s.weight), MAX(s.weight)
			FROM exercise_sets s
			JOIN workouts w ON w.id = s.workout_id
			WHERE s.exercise_id = ANY($1) AND w.user_id = $2
			GROUP BY s.exercise_id, s.workout_id, w.date
			ORDER BY w.date`, pq.Array(distinct), ownerID)
		if err != nil {
			return fmt.Errorf("failed to aggregate progress: %w", err)
		}
		defer rows.Close()

		dataByExercise := make(map[uuid.UUID][]models.ExerciseProgressData, len(distinct))
		for rows.Next() {
			var exerciseID uuid.UUID
			var date time.Time
			var data models.ExerciseProgressData
			if err := rows.Scan(&exerciseID, &date, &data.AvgRepCount, &data.AvgWeight, &data.MaxWeight); err != nil {
				return fmt.Errorf("failed to scan progress row: %w", err)
			}
			data.Date = models.NewDate(date)
			data.AvgRepCount = roundToTwo(data.AvgRepCount)
			data.AvgWeight = roundToTwo(data.AvgWeight)
			dataByExercise[exerciseID] = append(dataByExercise[exerciseID], data)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		reports = make([]models.ExerciseProgressReport, 0, len(distinct))
		for _, id := range distinct {
			data := dataByExercise[id]
			if data == nil {
				data = []models.ExerciseProgressData{}
			}
			reports = append(reports, models.ExerciseProgressReport{ExerciseName: names[id], Data: data})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// scanExercise reads one owned exercise row, mapping a miss to
// NoExerciseFound.
func scanExercise(row *sql.Row) (models.ExerciseRead, error) {
	var e models.ExerciseRead
	err := row.Scan(&e.ID, &e.Name, &e.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ExerciseRead{}, apperrors.NewBusinessError(apperrors.NoExerciseFound)
	}
	if err != nil {
		return models.ExerciseRead{}, fmt.Errorf("failed to scan exercise: %w", err)
	}
	return e, nil
}

// distinctIDs deduplicates a batch, keeping first-seen order.
func distinctIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	distinct := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	return distinct
}

func roundToTwo(value float64) float64 {
	return math.Round(value*100) / 100
}

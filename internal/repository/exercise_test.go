package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/swoleapp/swole-api/internal/errors"
	"github.com/swoleapp/swole-api/internal/schemas"
)

func exerciseRows(id uuid.UUID, name string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "notes"}).AddRow(id.String(), name, nil)
}

func TestExerciseCreateDuplicateName(t *testing.T) {
	mock, db := newMock(t)
	repo := NewExerciseRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO exercises").
		WillReturnRows(exerciseRows(uuid.New(), "Squat"))
	mock.ExpectQuery("INSERT INTO exercises").
		WillReturnError(uniqueErr)
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), uuid.New(), []schemas.ExerciseCreate{
		{Name: "Squat"},
		{Name: "Squat"},
	})
	assert.EqualError(t, err, apperrors.ExerciseWithNameExists)
}

func TestExerciseUpdateDuplicateIDsInBatch(t *testing.T) {
	_, db := newMock(t)
	repo := NewExerciseRepository(db)
	exerciseID := uuid.New()
	name := "Front Squat"
	notes := "pause at the bottom"

	_, err := repo.Update(context.Background(), uuid.New(), []schemas.ExerciseUpdate{
		{ExerciseID: exerciseID, Name: &name},
		{ExerciseID: exerciseID, Notes: &notes},
	})
	assert.EqualError(t, err, apperrors.IDsMustBeUnique)
}

func TestExerciseDeleteUnmatchedID(t *testing.T) {
	mock, db := newMock(t)
	repo := NewExerciseRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM exercises").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), uuid.New(), []uuid.UUID{uuid.New()})
	assert.EqualError(t, err, apperrors.NoExerciseFound)
}

func TestExerciseProgressAggregation(t *testing.T) {
	mock, db := newMock(t)
	repo := NewExerciseRepository(db)
	ownerID := uuid.New()
	squatID := uuid.New()
	benchID := uuid.New()
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, name, notes").
		WillReturnRows(exerciseRows(squatID, "Squat"))
	mock.ExpectQuery("SELECT id, name, notes").
		WillReturnRows(exerciseRows(benchID, "Bench Press"))
	mock.ExpectQuery("SELECT s.exercise_id, w.date").
		WillReturnRows(sqlmock.NewRows([]string{"exercise_id", "date", "avg_rep_count", "avg_weight", "max_weight"}).
			AddRow(squatID.String(), date, 11.0, 105.0, 110).
			AddRow(squatID.String(), date.AddDate(0, 0, 7), 10.666666666666666, 107.33333333333333, 120))
	mock.ExpectCommit()

	// Squat is requested twice but must yield a single report; the bench
	// press has no sets and must yield an empty data list.
	reports, err := repo.Progress(context.Background(), ownerID, []uuid.UUID{squatID, squatID, benchID})
	require.NoError(t, err)
	require.Len(t, reports, 2)

	squat := reports[0]
	assert.Equal(t, "Squat", squat.ExerciseName)
	require.Len(t, squat.Data, 2)
	assert.Equal(t, 11.0, squat.Data[0].AvgRepCount)
	assert.Equal(t, 105.0, squat.Data[0].AvgWeight)
	assert.Equal(t, 110, squat.Data[0].MaxWeight)
	assert.Equal(t, "2024-01-01", squat.Data[0].Date.String())
	assert.Equal(t, 10.67, squat.Data[1].AvgRepCount)
	assert.Equal(t, 107.33, squat.Data[1].AvgWeight)

	bench := reports[1]
	assert.Equal(t, "Bench Press", bench.ExerciseName)
	assert.NotNil(t, bench.Data)
	assert.Empty(t, bench.Data)
}

func TestExerciseProgressUnmatchedExercise(t *testing.T) {
	mock, db := newMock(t)
	repo := NewExerciseRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, name, notes").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "notes"}))
	mock.ExpectRollback()

	_, err := repo.Progress(context.Background(), uuid.New(), []uuid.UUID{uuid.New()})
	assert.EqualError(t, err, apperrors.NoExerciseFound)
}

func TestExerciseUpdateCoalescesNotes(t *testing.T) {
	mock, db := newMock(t)
	repo := NewExerciseRepository(db)
	ownerID := uuid.New()
	exerciseID := uuid.New()
	notes := "wider grip"

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE exercises").
		WithArgs(nil, &notes, exerciseID, ownerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "notes"}).
			AddRow(exerciseID.String(), "Bench Press", "wider grip"))
	mock.ExpectCommit()

	updated, err := repo.Update(context.Background(), ownerID, []schemas.ExerciseUpdate{
		{ExerciseID: exerciseID, Notes: &notes},
	})
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, "Bench Press", updated[0].Name)
	require.NotNil(t, updated[0].Notes)
	assert.Equal(t, "wider grip", *updated[0].Notes)
}

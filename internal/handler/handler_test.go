package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swoleapp/swole-api/internal/config"
	apperrors "github.com/swoleapp/swole-api/internal/errors"
	"github.com/swoleapp/swole-api/internal/middleware"
	"github.com/swoleapp/swole-api/internal/models"
	"github.com/swoleapp/swole-api/internal/repository"
	"github.com/swoleapp/swole-api/internal/schemas"
	"github.com/swoleapp/swole-api/internal/service"
)

func newHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{JWTSecret: "test-secret", TokenExpireMinutes: 60}
	auth := service.NewAuthService(repository.NewUserRepository(db), cfg, logger, nil)
	h := NewHandler(
		repository.NewWorkoutRepository(db),
		repository.NewExerciseRepository(db),
		repository.NewSetRepository(db),
		auth,
		logger,
	)
	return h, mock
}

// authedRequest builds a request carrying an already-resolved user, the way
// the auth middleware hands it over.
func authedRequest(t *testing.T, target, body string) (*http.Request, *models.User) {
	t.Helper()
	user := &models.User{ID: uuid.New(), Username: "alice"}
	request := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	return request.WithContext(middleware.WithUser(request.Context(), user)), user
}

func TestCreateWorkoutsValidationErrorEnvelope(t *testing.T) {
	h, _ := newHandler(t)
	request, _ := authedRequest(t, "/api/v2/workouts/create", `[{"name":"Leg Day","date":"01-01-2024"}]`)

	recorder := httptest.NewRecorder()
	h.CreateWorkouts(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	var response schemas.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "error", response.Code)
	assert.Equal(t, apperrors.IncorrectDateFormat, response.Message)
}

func TestAllWorkoutsSuccessEnvelope(t *testing.T) {
	h, mock := newHandler(t)
	request, user := authedRequest(t, "/api/v2/workouts/all", "")

	mock.ExpectQuery("SELECT id, name, date").
		WithArgs(user.ID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "date"}).
			AddRow(uuid.NewString(), "Leg Day", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	recorder := httptest.NewRecorder()
	h.AllWorkouts(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, `"code":"ok"`)
	assert.Contains(t, body, `"name":"Leg Day"`)
	assert.Contains(t, body, `"date":"2024-01-01"`)
}

func TestDeleteWorkoutsOmitsResults(t *testing.T) {
	h, mock := newHandler(t)
	workoutID := uuid.New()
	request, _ := authedRequest(t, "/api/v2/workouts/delete", `[{"workout_id":"`+workoutID.String()+`"}]`)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM workouts").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	recorder := httptest.NewRecorder()
	h.DeleteWorkouts(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, `"code":"ok"`)
	assert.NotContains(t, body, "results")
}

func TestDeleteWorkoutsBusinessErrorEnvelope(t *testing.T) {
	h, mock := newHandler(t)
	request, _ := authedRequest(t, "/api/v2/workouts/delete", `[{"workout_id":"`+uuid.NewString()+`"}]`)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM workouts").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	recorder := httptest.NewRecorder()
	h.DeleteWorkouts(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	var response schemas.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, apperrors.NoWorkoutFound, response.Message)
}

func TestUpdateSetRejectsOutOfRangeWeight(t *testing.T) {
	h, _ := newHandler(t)
	request, _ := authedRequest(t, "/api/v2/sets/update",
		`{"set_id":"`+uuid.NewString()+`","weight":10001}`)

	recorder := httptest.NewRecorder()
	h.UpdateSet(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	var response schemas.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "Field cannot be greater than 10000", response.Message)
}

func TestTokenIncorrectCredentialsReturns401(t *testing.T) {
	h, mock := newHandler(t)

	mock.ExpectQuery("SELECT id, username, hashed_password, email, disabled").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "hashed_password", "email", "disabled"}))

	request := httptest.NewRequest(http.MethodPost, "/api/v2/auth/token",
		strings.NewReader(`{"username":"alice","password":"wrong"}`))
	recorder := httptest.NewRecorder()
	h.Token(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	var response schemas.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, apperrors.IncorrectUsernameOrPassword, response.Message)
}

func TestUnauthenticatedRequestIsRejected(t *testing.T) {
	h, _ := newHandler(t)

	request := httptest.NewRequest(http.MethodPost, "/api/v2/workouts/all", nil)
	recorder := httptest.NewRecorder()
	h.AllWorkouts(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestInvalidBodyIsRejectedBeforeAnyQuery(t *testing.T) {
	h, _ := newHandler(t)
	request, _ := authedRequest(t, "/api/v2/workouts/create", `{"not":"a list"}`)

	recorder := httptest.NewRecorder()
	h.CreateWorkouts(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	var response schemas.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "Invalid request body", response.Message)
}

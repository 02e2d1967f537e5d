// Package handler maps HTTP requests onto repository calls: decode JSON,
// validate, call, wrap the result in the response envelope.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	apperrors "github.com/swoleapp/swole-api/internal/errors"
	"github.com/swoleapp/swole-api/internal/middleware"
	"github.com/swoleapp/swole-api/internal/models"
	"github.com/swoleapp/swole-api/internal/repository"
	"github.com/swoleapp/swole-api/internal/schemas"
	"github.com/swoleapp/swole-api/internal/service"
)

type Handler struct {
	workouts  *repository.WorkoutRepository
	exercises *repository.ExerciseRepository
	sets      *repository.SetRepository
	auth      *service.AuthService
	log       *logrus.Logger
}

func NewHandler(
	workouts *repository.WorkoutRepository,
	exercises *repository.ExerciseRepository,
	sets *repository.SetRepository,
	auth *service.AuthService,
	log *logrus.Logger,
) *Handler {
	return &Handler{workouts: workouts, exercises: exercises, sets: sets, auth: auth, log: log}
}

// decode reads the JSON body into v. Numbers stay as json.Number so the
// validators control integer coercion.
func decode(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	return decoder.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeSuccess(w http.ResponseWriter, results any) {
	writeJSON(w, http.StatusOK, schemas.NewSuccessResponse(results))
}

// writeDeleted writes the success envelope without a results field.
func (h *Handler) writeDeleted(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, schemas.SuccessResponse{Code: "ok"})
}

// writeError maps business errors to a 400 envelope with their taxonomy
// message and everything else to a generic 400 without internal detail.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if apperrors.IsBusiness(err) {
		writeJSON(w, http.StatusBadRequest, schemas.NewErrorResponse(err.Error()))
		return
	}
	h.log.Errorf("Unexpected error: %v", err)
	writeJSON(w, http.StatusBadRequest, schemas.NewErrorResponse("Unexpected error"))
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, schemas.NewErrorResponse(message))
}

// currentUser pulls the authenticated user set by the auth middleware.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, schemas.NewErrorResponse(apperrors.CouldNotValidateCredentials))
		return nil, false
	}
	return user, true
}

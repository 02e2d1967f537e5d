package handler

import (
	"net/http"
	"strconv"

	"github.com/swoleapp/swole-api/internal/models"
	"github.com/swoleapp/swole-api/internal/schemas"
)

// AllWorkouts lists the caller's workouts, newest first.
func (h *Handler) AllWorkouts(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	workouts, err := h.workouts.GetAll(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w, workouts)
}

// WorkoutDetail looks up a batch of workouts; ?with_exercises=true attaches
// each workout's exercises.
func (h *Handler) WorkoutDetail(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var requests []schemas.WorkoutIDRequest
	if err := decode(r, &requests); err != nil {
		h.writeBadRequest(w, "Invalid request body")
		return
	}
	ids, err := schemas.ValidateWorkoutIDs(requests)
	if err != nil {
		h.writeError(w, err)
		return
	}
	withExercises, _ := strconv.ParseBool(r.URL.Query().Get("with_exercises"))

	workouts, err := h.workouts.Detail(r.Context(), user.ID, ids, withExercises)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if withExercises {
		h.writeSuccess(w, workouts)
		return
	}
	reads := make([]models.WorkoutRead, 0, len(workouts))
	for _, workout := range workouts {
		reads = append(reads, models.WorkoutRead{ID: workout.ID, Name: workout.Name, Date: workout.Date})
	}
	h.writeSuccess(w, reads)
}

// CreateWorkouts inserts a batch of workouts.
func (h *Handler) CreateWorkouts(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var requests []schemas.WorkoutCreateRequest
	if err := decode(r, &requests); err != nil {
		h.writeBadRequest(w, "Invalid request body")
		return
	}
	creates, err := schemas.ValidateWorkoutCreates(requests)
	if err != nil {
		h.writeError(w, err)
		return
	}
	workouts, err := h.workouts.Create(r.Context(), user.ID, creates)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w, workouts)
}

// UpdateWorkouts applies a batch of partial updates.
func (h *Handler) UpdateWorkouts(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var requests []schemas.WorkoutUpdateRequest
	if err := decode(r, &requests); err != nil {
		h.writeBadRequest(w, "Invalid request body")
		return
	}
	updates, err := schemas.ValidateWorkoutUpdates(requests)
	if err != nil {
		h.writeError(w, err)
		return
	}
	workouts, err := h.workouts.Update(r.Context(), user.ID, updates)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w, workouts)
}

// DeleteWorkouts removes a batch of workouts.
func (h *Handler) DeleteWorkouts(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var requests []schemas.WorkoutIDRequest
	if err := decode(r, &requests); err != nil {
		h.writeBadRequest(w, "Invalid request body")
		return
	}
	ids, err := schemas.ValidateWorkoutIDs(requests)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.workouts.Delete(r.Context(), user.ID, ids); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeDeleted(w)
}

// AddExercisesToWorkouts associates exercises with workouts.
func (h *Handler) AddExercisesToWorkouts(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var requests []schemas.WorkoutAddExerciseRequest
	if err := decode(r, &requests); err != nil {
		h.writeBadRequest(w, "Invalid request body")
		return
	}
	links, err := schemas.ValidateWorkoutAddExercises(requests)
	if err != nil {
		h.writeError(w, err)
		return
	}
	workouts, err := h.workouts.AddExercises(r.Context(), user.ID, links)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w, workouts)
}

// CopyWorkouts duplicates workouts under new dates.
func (h *Handler) CopyWorkouts(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var requests []schemas.WorkoutCopyRequest
	if err := decode(r, &requests); err != nil {
		h.writeBadRequest(w, "Invalid request body")
		return
	}
	copies, err := schemas.ValidateWorkoutCopies(requests)
	if err != nil {
		h.writeError(w, err)
		return
	}
	workouts, err := h.workouts.Copy(r.Context(), user.ID, copies)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w, workouts)
}

package handler

import (
	"net/http"

	"github.com/swoleapp/swole-api/internal/schemas"
)

// AllExercises lists the caller's exercises.
func (h *Handler) AllExercises(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	exercises, err := h.exercises.GetAll(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w, exercises)
}

// ExerciseDetail looks up a batch of exercises.
func (h *Handler) ExerciseDetail(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var requests []schemas.ExerciseIDRequest
	if err := decode(r, &requests); err != nil {
		h.writeBadRequest(w, "Invalid request body")
		return
	}
	ids, err := schemas.ValidateExerciseIDs(requests)
	if err != nil {
		h.writeError(w, err)
		return
	}
	exercises, err := h.exercises.Detail(r.Context(), user.ID, ids)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w, exercises)
}

// CreateExercises inserts a batch of exercises.
func (h *Handler) CreateExercises(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var requests []schemas.ExerciseCreateRequest
	if err := decode(r, &requests); err != nil {
		h.writeBadRequest(w, "Invalid request body")
		return
	}
	creates, err := schemas.ValidateExerciseCreates(requests)
	if err != nil {
		h.writeError(w, err)
		return
	}
	exercises, err := h.exercises.Create(r.Context(), user.ID, creates)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w, exercises)
}

// UpdateExercises applies a batch of partial updates.
func (h *Handler) UpdateExercises(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var requests []schemas.ExerciseUpdateRequest
	if err := decode(r, &requests); err != nil {
		h.writeBadRequest(w, "Invalid request body")
		return
	}
	updates, err := schemas.ValidateExerciseUpdates(requests)
	if err != nil {
		h.writeError(w, err)
		return
	}
	exercises, err := h.exercises.Update(r.Context(), user.ID, updates)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w, exercises)
}

// DeleteExercises removes a batch of exercises, detaching them from every
// workout that referenced them.
func (h *Handler) DeleteExercises(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var requests []schemas.ExerciseIDRequest
	if err := decode(r, &requests); err != nil {
		h.writeBadRequest(w, "Invalid request body")
		return
	}
	ids, err := schemas.ValidateExerciseIDs(requests)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.exercises.Delete(r.Context(), user.ID, ids); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeDeleted(w)
}

// ExerciseProgress reports per-workout aggregates for the requested
// exercises.
func (h *Handler) ExerciseProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var requests []schemas.ExerciseIDRequest
	if err := decode(r, &requests); err != nil {
		h.writeBadRequest(w, "Invalid request body")
		return
	}
	ids, err := schemas.ValidateExerciseIDs(requests)
	if err != nil {
		h.writeError(w, err)
		return
	}
	reports, err := h.exercises.Progress(r.Context(), user.ID, ids)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w, reports)
}

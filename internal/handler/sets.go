package handler

import (
	"net/http"

	"github.com/swoleapp/swole-api/internal/models"
	"github.com/swoleapp/swole-api/internal/schemas"
)

// AllSets lists the sets recorded against one workout/exercise pair.
func (h *Handler) AllSets(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var request schemas.SetGetAllRequest
	if err := decode(r, &request); err != nil {
		h.writeBadRequest(w, "Invalid request body")
		return
	}
	data, err := request.Validate()
	if err != nil {
		h.writeError(w, err)
		return
	}
	sets, err := h.sets.GetAll(r.Context(), user.ID, data)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w, sets)
}

// AddSets records a batch of sets.
func (h *Handler) AddSets(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var requests []schemas.SetAddRequest
	if err := decode(r, &requests); err != nil {
		h.writeBadRequest(w, "Invalid request body")
		return
	}
	adds, err := schemas.ValidateSetAdds(requests)
	if err != nil {
		h.writeError(w, err)
		return
	}
	sets, err := h.sets.Add(r.Context(), user.ID, adds)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w, sets)
}

// UpdateSet applies a partial update to one set.
func (h *Handler) UpdateSet(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var request schemas.SetUpdateRequest
	if err := decode(r, &request); err != nil {
		h.writeBadRequest(w, "Invalid request body")
		return
	}
	data, err := request.Validate()
	if err != nil {
		h.writeError(w, err)
		return
	}
	set, err := h.sets.Update(r.Context(), user.ID, data)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w, []models.SetRead{set})
}

// DeleteSet removes one set.
func (h *Handler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	var request schemas.SetDeleteRequest
	if err := decode(r, &request); err != nil {
		h.writeBadRequest(w, "Invalid request body")
		return
	}
	setID, err := schemas.ParseID(request.SetID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.sets.Delete(r.Context(), user.ID, setID); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeDeleted(w)
}

package handler

import (
	"net/http"

	apperrors "github.com/swoleapp/swole-api/internal/errors"
	"github.com/swoleapp/swole-api/internal/models"
	"github.com/swoleapp/swole-api/internal/schemas"
)

// CreateUsers handles batch signup.
func (h *Handler) CreateUsers(w http.ResponseWriter, r *http.Request) {
	var requests []schemas.UserCreateRequest
	if err := decode(r, &requests); err != nil {
		h.writeBadRequest(w, "Invalid request body")
		return
	}
	creates, err := schemas.ValidateUserCreates(requests)
	if err != nil {
		h.writeError(w, err)
		return
	}
	users, err := h.auth.Register(r.Context(), creates)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w, users)
}

// Profile returns the authenticated user.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	h.writeSuccess(w, []models.UserRead{user.Read()})
}

// Token handles user authentication and issues a bearer token.
func (h *Handler) Token(w http.ResponseWriter, r *http.Request) {
	var request schemas.UserLoginRequest
	if err := decode(r, &request); err != nil {
		h.writeBadRequest(w, "Invalid request body")
		return
	}
	login, err := request.Validate()
	if err != nil {
		h.writeError(w, err)
		return
	}
	token, err := h.auth.Login(r.Context(), login.Username, login.Password)
	if err != nil {
		if apperrors.IsBusiness(err) {
			writeJSON(w, http.StatusUnauthorized, schemas.NewErrorResponse(err.Error()))
			return
		}
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w, []models.Token{token})
}

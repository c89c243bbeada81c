package http

import (
	"net/http"

	"github.com/maxazure/home/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		writeError(w, r, "Handler.listUsers", err)
		return
	}

	writeOK(w, models.NewUserResponses(users))
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.createUser", err)
		return
	}

	user, err := h.services.UserService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, "Handler.createUser", err)
		return
	}

	writeOK(w, models.NewUserResponse(user))
}

// updateUser renames an administrator and/or sets a new password. A new
// password clears the failure counter but leaves a lock in place.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Handler.updateUser", err)
		return
	}

	var req models.UserRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.updateUser", err)
		return
	}

	user, err := h.services.UserService.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, "Handler.updateUser", err)
		return
	}

	writeOK(w, models.NewUserResponse(user))
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Handler.deleteUser", err)
		return
	}

	if err = h.services.UserService.Delete(r.Context(), id); err != nil {
		writeError(w, r, "Handler.deleteUser", err)
		return
	}

	writeMessage(w, "user deleted")
}

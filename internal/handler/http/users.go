package http

import (
	"net/http"

	"github.com/MKhiriev/selisih-berat/internal/app"
	"github.com/MKhiriev/selisih-berat/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.listUsers")
		return
	}

	writeOK(w, http.StatusOK, "", users)
}

func (h *Handler) setUserActive(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.setUserActive")
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		h.writeError(w, r, err, "*Handler.setUserActive")
		return
	}

	var req models.SetActiveRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err, "*Handler.setUserActive")
		return
	}

	if err = h.services.UserService.SetActive(r.Context(), claims, id, req.IsActive); err != nil {
		h.writeError(w, r, err, "*Handler.setUserActive")
		return
	}

	writeOK(w, http.StatusOK, app.MsgUserUpdated, map[string]any{"id": id, "is_active": req.IsActive})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.deleteUser")
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		h.writeError(w, r, err, "*Handler.deleteUser")
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), claims, id); err != nil {
		h.writeError(w, r, err, "*Handler.deleteUser")
		return
	}

	writeOK(w, http.StatusOK, app.MsgUserDeleted, nil)
}

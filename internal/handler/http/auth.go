package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/selisih-berat/internal/app"
	"github.com/MKhiriev/selisih-berat/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err, "*Handler.register")
		return
	}

	user, tokens, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.register")
		return
	}

	writeOK(w, http.StatusCreated, app.MsgRegistrationSuccess, authResponse(user, tokens))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err, "*Handler.login")
		return
	}

	user, tokens, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.login")
		return
	}

	writeOK(w, http.StatusOK, app.MsgLoginSuccess, authResponse(user, tokens))
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err, "*Handler.refresh")
		return
	}

	user, tokens, err := h.services.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.writeError(w, r, err, "*Handler.refresh")
		return
	}

	writeOK(w, http.StatusOK, app.MsgTokenRefreshed, authResponse(user, tokens))
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.me")
		return
	}

	user, err := h.services.AuthService.Me(r.Context(), claims.UserID)
	if err != nil {
		h.writeError(w, r, err, "*Handler.me")
		return
	}

	writeOK(w, http.StatusOK, "", user)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateProfile")
		return
	}

	var req models.UpdateProfileRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err, "*Handler.updateProfile")
		return
	}

	user, err := h.services.AuthService.UpdateProfile(r.Context(), claims.UserID, req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateProfile")
		return
	}

	writeOK(w, http.StatusOK, app.MsgProfileUpdated, user)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.changePassword")
		return
	}

	var req models.ChangePasswordRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err, "*Handler.changePassword")
		return
	}

	if err = h.services.AuthService.ChangePassword(r.Context(), claims.UserID, req); err != nil {
		h.writeError(w, r, err, "*Handler.changePassword")
		return
	}

	writeOK(w, http.StatusOK, app.MsgPasswordChanged, nil)
}

func authResponse(user models.User, tokens models.TokenPair) models.AuthResponse {
	return models.AuthResponse{
		AccessToken:  tokens.Access.SignedString,
		RefreshToken: tokens.Refresh.SignedString,
		TokenType:    "Bearer",
		ExpiresIn:    expiresIn(tokens.Access),
		User:         user,
	}
}

// expiresIn is the token lifetime in seconds, measured from its "iat"
// claim when present.
func expiresIn(token models.Token) int64 {
	if token.ExpiresAt.IsZero() {
		return 0
	}
	issued := time.Now()
	if token.Claims.IssuedAt != nil {
		issued = token.Claims.IssuedAt.Time
	}
	return max(int64(token.ExpiresAt.Sub(issued).Seconds()), 0)
}
